package token

import (
	"time"

	"github.com/jrsteele09/go-token-exchange/oauth2"
)

// Token is the terminal artifact of a successful exchange. It is handed to
// the store for persistence and not retained afterwards.
type Token struct {
	AccessToken      string     `json:"access_token"`
	RefreshToken     string     `json:"refresh_token,omitempty"`
	AccessExpiresAt  time.Time  `json:"access_expires_at"`
	RefreshExpiresAt *time.Time `json:"refresh_expires_at,omitempty"`
	Scope            string     `json:"scope,omitempty"`

	// AuthorizationCode is the (already revoked) code string this token was
	// exchanged for, kept for audit correlation.
	AuthorizationCode string `json:"authorization_code"`

	ClientID string `json:"client_id"`
	UserID   string `json:"user_id"`
}

// Response maps the token onto the RFC 6749 §5.1 wire shape. expires_in is
// computed relative to now.
func (t *Token) Response(now time.Time) *oauth2.TokenResponse {
	tr := &oauth2.TokenResponse{
		AccessToken: &t.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   int(t.AccessExpiresAt.Sub(now).Seconds()),
		Scope:       t.Scope,
	}
	if t.RefreshToken != "" {
		tr.RefreshToken = &t.RefreshToken
	}
	return tr
}
