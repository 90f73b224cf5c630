package grant_test

import (
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/jrsteele09/go-token-exchange/grant"
	"github.com/jrsteele09/go-token-exchange/oauth2"
	"github.com/stretchr/testify/require"
)

// RFC 7636 appendix B test vector.
const (
	rfcVerifier  = "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	rfcChallenge = "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM"
)

func s256Challenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}

func TestVerifyCodeChallenge_S256(t *testing.T) {
	t.Run("rfc vector", func(t *testing.T) {
		err := grant.VerifyCodeChallenge(rfcChallenge, oauth2.CodeMethodTypeS256, rfcVerifier)
		require.NoError(t, err)
	})

	t.Run("derived challenge", func(t *testing.T) {
		err := grant.VerifyCodeChallenge(s256Challenge("verifier-xyz"), oauth2.CodeMethodTypeS256, "verifier-xyz")
		require.NoError(t, err)
	})

	t.Run("single character mutation fails", func(t *testing.T) {
		challenge := s256Challenge("verifier-xyz")
		for i := 0; i < len("verifier-xyz"); i++ {
			mutated := []byte("verifier-xyz")
			mutated[i] ^= 0x01
			err := grant.VerifyCodeChallenge(challenge, oauth2.CodeMethodTypeS256, string(mutated))
			require.ErrorIs(t, err, grant.ErrInvalidGrant)
		}
	})

	t.Run("verifier is not hashed challenge", func(t *testing.T) {
		err := grant.VerifyCodeChallenge(rfcChallenge, oauth2.CodeMethodTypeS256, rfcChallenge)
		require.ErrorIs(t, err, grant.ErrInvalidGrant)
	})
}

func TestVerifyCodeChallenge_Plain(t *testing.T) {
	t.Run("byte identical", func(t *testing.T) {
		err := grant.VerifyCodeChallenge(rfcVerifier, oauth2.CodeMethodTypePlain, rfcVerifier)
		require.NoError(t, err)
	})

	t.Run("mismatch", func(t *testing.T) {
		err := grant.VerifyCodeChallenge(rfcVerifier, oauth2.CodeMethodTypePlain, rfcVerifier+"x")
		require.ErrorIs(t, err, grant.ErrInvalidGrant)
	})

	t.Run("plain never accepts the hash", func(t *testing.T) {
		err := grant.VerifyCodeChallenge(rfcVerifier, oauth2.CodeMethodTypePlain, s256Challenge(rfcVerifier))
		require.ErrorIs(t, err, grant.ErrInvalidGrant)
	})
}

func TestVerifyCodeChallenge_MissingVerifier(t *testing.T) {
	err := grant.VerifyCodeChallenge(rfcChallenge, oauth2.CodeMethodTypeS256, "")
	require.ErrorIs(t, err, grant.ErrInvalidGrant)
}

func TestVerifyCodeChallenge_UnrecognizedMethod(t *testing.T) {
	err := grant.VerifyCodeChallenge(rfcChallenge, "S512", rfcVerifier)
	require.ErrorIs(t, err, grant.ErrCollaboratorContract)
	require.Contains(t, err.Error(), "S512")
}
