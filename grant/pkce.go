package grant

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/jrsteele09/go-token-exchange/oauth2"
)

// VerifyCodeChallenge checks a PKCE code_verifier against the challenge the
// authorization code was issued with. Comparisons are constant-time with
// respect to the secret material.
func VerifyCodeChallenge(challenge string, method oauth2.CodeMethodType, verifier string) error {
	if verifier == "" {
		return newInvalidGrant()
	}

	switch method {
	case oauth2.CodeMethodTypeS256:
		hash := sha256.Sum256([]byte(verifier))
		computed := base64.RawURLEncoding.EncodeToString(hash[:])
		if subtle.ConstantTimeCompare([]byte(computed), []byte(challenge)) != 1 {
			return newInvalidGrant()
		}
	case oauth2.CodeMethodTypePlain:
		if subtle.ConstantTimeCompare([]byte(verifier), []byte(challenge)) != 1 {
			return newInvalidGrant()
		}
	default:
		// Only the two methods above are ever legitimately persisted, so an
		// unrecognized value is a storage defect, not a client error.
		return newContractViolation(fmt.Sprintf("unrecognized code challenge method %q", method))
	}
	return nil
}
