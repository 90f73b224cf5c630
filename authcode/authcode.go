package authcode

import (
	"time"

	"github.com/jrsteele09/go-token-exchange/clients"
	"github.com/jrsteele09/go-token-exchange/oauth2"
	"github.com/jrsteele09/go-token-exchange/users"
)

// AuthorizationCode is the single-use credential issued by the authorization
// endpoint and consumed by the token exchange. Records are created and
// persisted outside this module; the exchange reads one exactly once and
// revokes it before issuing a token.
type AuthorizationCode struct {
	Code        string          `json:"code"`
	Client      *clients.Client `json:"client"`
	User        *users.User     `json:"user"`
	ExpiresAt   time.Time       `json:"expires_at"`
	RedirectURI string          `json:"redirect_uri,omitempty"` // Set when the authorization request carried one
	Scope       string          `json:"scope,omitempty"`

	// CodeChallenge and CodeChallengeMethod are set together when the code
	// was issued with PKCE. An empty challenge means the code was issued for
	// an exchange without proof of possession.
	CodeChallenge       string                `json:"code_challenge,omitempty"`
	CodeChallengeMethod oauth2.CodeMethodType `json:"code_challenge_method,omitempty"`
}

// HasChallenge reports whether the code was issued with a PKCE challenge.
func (ac *AuthorizationCode) HasChallenge() bool {
	return ac.CodeChallenge != ""
}

// ExpiredAt reports whether the code is no longer exchangeable at the given
// instant. A code expiring exactly now is already unusable.
func (ac *AuthorizationCode) ExpiredAt(now time.Time) bool {
	return !ac.ExpiresAt.After(now)
}
