package authcode

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Repo when no record exists for a code string.
var ErrNotFound = errors.New("authorization code not found")

// Repo is the persistence capability set required for authorization codes.
type Repo interface {
	// GetAuthorizationCode fetches the record for a code string, or
	// ErrNotFound when no record exists.
	GetAuthorizationCode(ctx context.Context, code string) (*AuthorizationCode, error)

	// RevokeAuthorizationCode marks the code as consumed and returns true
	// only if this call did the consuming. Implementations must serialize
	// revocation per code: under concurrent exchange attempts at most one
	// caller may observe true. The exchange treats false (or an error) as
	// proof the code was already spent.
	RevokeAuthorizationCode(ctx context.Context, code *AuthorizationCode) (bool, error)
}
