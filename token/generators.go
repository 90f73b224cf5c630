package token

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/go-token-exchange/clients"
	"github.com/jrsteele09/go-token-exchange/users"
	"github.com/pkg/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// OpaqueTokenGenerator returns a Generator producing random base64url
// strings of the given byte length.
func OpaqueTokenGenerator(length int) Generator {
	return func(_ context.Context, _ *users.User, _ *clients.Client, _ string) (string, error) {
		bytes := make([]byte, length)
		if _, err := rand.Read(bytes); err != nil {
			return "", errors.Wrap(err, "OpaqueTokenGenerator rand.Read")
		}
		return base64.RawURLEncoding.EncodeToString(bytes), nil
	}
}

// UUIDTokenGenerator returns a Generator producing random UUID token strings.
func UUIDTokenGenerator() Generator {
	return func(_ context.Context, _ *users.User, _ *clients.Client, _ string) (string, error) {
		return uuid.NewString(), nil
	}
}

// JWTAccessTokenGenerator returns a Generator producing HS256-signed JWT
// access tokens carrying the standard OAuth2 claim set.
func JWTAccessTokenGenerator(issuer, audience string, secret []byte, expiry time.Duration) Generator {
	return func(_ context.Context, user *users.User, client *clients.Client, scope string) (string, error) {
		claims := jwtlib.MapClaims{
			"iss":        issuer,                           // The issuer of the token
			"aud":        audience,                         // The audience for which the token is intended
			"sub":        user.ID,                          // The resource owner who authorized the exchange
			"client_id":  client.ID,                        // The OAuth2 client that requested the token
			"scope":      scope,                            // OAuth2 scopes granted to this token
			"iat":        NowTimeFunc().Unix(),             // Issued At: the time at which the token was issued
			"exp":        NowTimeFunc().Add(expiry).Unix(), // Expiry: when the token will expire
			"jti":        uuid.New().String(),              // Unique token ID for revocation
			"token_type": "user",                           // User-delegated token (authorization code flow)
		}

		signedToken, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(secret)
		if err != nil {
			return "", errors.Wrap(err, "JWTAccessTokenGenerator SignedString")
		}
		return signedToken, nil
	}
}
