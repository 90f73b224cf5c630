package grant

import "fmt"

// ErrorKind classifies exchange failures. The set is closed: every error
// this package returns is one of these four kinds.
type ErrorKind int

const (
	// KindConfiguration marks a missing required collaborator, detected at
	// construction. Fatal, never retried.
	KindConfiguration ErrorKind = iota

	// KindMalformedRequest marks request fields that are absent or
	// syntactically invalid. A client defect, not a property of the code.
	KindMalformedRequest

	// KindInvalidGrant marks every way a presented code can be unusable:
	// unknown, expired, bound to another client, failed PKCE proof, or
	// already consumed. All causes collapse to one observable error so a
	// caller cannot distinguish them.
	KindInvalidGrant

	// KindCollaboratorContract marks structurally invalid records returned
	// by the storage collaborator. Never caused by client input.
	KindCollaboratorContract
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindMalformedRequest:
		return "malformed_request"
	case KindInvalidGrant:
		return "invalid_grant"
	case KindCollaboratorContract:
		return "collaborator_contract"
	}
	return "unknown"
}

// GrantError is the error type for every failure of the exchange pipeline.
// Code is the RFC 6749 §5.2 error code a transport layer should surface.
type GrantError struct {
	Kind        ErrorKind `json:"-"`
	Code        string    `json:"error"`
	Description string    `json:"error_description,omitempty"`
}

func (e *GrantError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches any GrantError of the same kind, so errors.Is(err,
// grant.ErrInvalidGrant) works regardless of description.
func (e *GrantError) Is(target error) bool {
	t, ok := target.(*GrantError)
	return ok && t.Kind == e.Kind
}

// Kind sentinels for errors.Is matching.
var (
	ErrConfiguration        = &GrantError{Kind: KindConfiguration, Code: "server_error"}
	ErrMalformedRequest     = &GrantError{Kind: KindMalformedRequest, Code: "invalid_request"}
	ErrInvalidGrant         = &GrantError{Kind: KindInvalidGrant, Code: "invalid_grant"}
	ErrCollaboratorContract = &GrantError{Kind: KindCollaboratorContract, Code: "server_error"}
)

func newConfigurationError(description string) *GrantError {
	return &GrantError{
		Kind:        KindConfiguration,
		Code:        "server_error",
		Description: description,
	}
}

func newMalformedRequest(description string) *GrantError {
	return &GrantError{
		Kind:        KindMalformedRequest,
		Code:        "invalid_request",
		Description: description,
	}
}

// newInvalidGrant carries a fixed description: the externally observable
// outcome must not leak which check failed.
func newInvalidGrant() *GrantError {
	return &GrantError{
		Kind:        KindInvalidGrant,
		Code:        "invalid_grant",
		Description: "the provided authorization code is invalid, expired or revoked",
	}
}

func newContractViolation(description string) *GrantError {
	return &GrantError{
		Kind:        KindCollaboratorContract,
		Code:        "server_error",
		Description: description,
	}
}
