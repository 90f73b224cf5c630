package grant

import (
	"context"
	"net/url"

	"github.com/jrsteele09/go-token-exchange/authcode"
	"github.com/jrsteele09/go-token-exchange/clients"
	"github.com/jrsteele09/go-token-exchange/oauthmodel"
)

// getAuthorizationCode fetches the record for the requested code and runs
// the validation chain against the presenting client. Checks are ordered
// fail-fast: the first violation aborts the exchange.
func (gs *GrantService) getAuthorizationCode(ctx context.Context, request *oauthmodel.TokenRequest, client *clients.Client) (*authcode.AuthorizationCode, error) {
	// Reject malformed code strings before touching storage.
	if !isVisibleASCII(request.Code) {
		return nil, newMalformedRequest("invalid or missing code parameter")
	}

	code, err := gs.store.GetAuthorizationCode(ctx, request.Code)
	if err != nil || code == nil {
		// Absence is indistinguishable from an invalid or expired code.
		gs.logger.Debug().Err(err).Str("client_id", client.ID).Msg("authorization code lookup failed")
		return nil, newInvalidGrant()
	}

	if code.Client == nil || code.User == nil {
		gs.logger.Error().Str("client_id", client.ID).Msg("stored authorization code missing client or user reference")
		return nil, newContractViolation("stored authorization code is missing its client or user reference")
	}

	// Exact identity match. A mismatch must look the same as an unknown
	// code so an unauthorized client learns nothing about the code.
	if code.Client.ID != client.ID {
		gs.logger.Debug().Str("client_id", client.ID).Msg("authorization code bound to a different client")
		return nil, newInvalidGrant()
	}

	if code.ExpiresAt.IsZero() {
		gs.logger.Error().Str("client_id", client.ID).Msg("stored authorization code has no expiry timestamp")
		return nil, newContractViolation("stored authorization code has no expiry timestamp")
	}
	if code.ExpiredAt(gs.nowTime()) {
		return nil, newInvalidGrant()
	}

	// The stored redirect URI models attacker-influenced data, so a value
	// that fails to parse invalidates the grant rather than the server.
	if code.RedirectURI != "" {
		if _, err := url.ParseRequestURI(code.RedirectURI); err != nil {
			gs.logger.Debug().Str("client_id", client.ID).Msg("stored redirect URI does not parse")
			return nil, newInvalidGrant()
		}
	}

	if code.HasChallenge() {
		if err := VerifyCodeChallenge(code.CodeChallenge, code.CodeChallengeMethod, request.CodeVerifier); err != nil {
			return nil, err
		}
	} else if request.CodeVerifier != "" {
		// A verifier without a stored challenge is never valid: accepting it
		// would let a client fake a binding that was never registered.
		return nil, newInvalidGrant()
	}

	return code, nil
}

// isVisibleASCII reports whether s is non-empty and contains only visible
// ASCII characters (no space, no control characters), the VSCHAR-minus-SP
// class authorization codes are issued from.
func isVisibleASCII(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= 0x20 || s[i] >= 0x7f {
			return false
		}
	}
	return true
}
