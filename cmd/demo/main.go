// Command demo wires the exchange core to the in-memory store, seeds a
// PKCE-bound authorization code and exchanges it twice, showing single-use
// enforcement on the replay.
package main

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-token-exchange/authcode"
	"github.com/jrsteele09/go-token-exchange/clients"
	"github.com/jrsteele09/go-token-exchange/grant"
	"github.com/jrsteele09/go-token-exchange/oauth2"
	"github.com/jrsteele09/go-token-exchange/oauthmodel"
	"github.com/jrsteele09/go-token-exchange/store/memory"
	"github.com/jrsteele09/go-token-exchange/token"
	"github.com/jrsteele09/go-token-exchange/users"
	"github.com/rs/zerolog"
)

const codeVerifier = "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running demo: %s\n", err)
	}
}

func run() error {
	displayAppname("token exchange")
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	store := memory.New()
	defer store.Close()

	issuer, err := token.NewIssuer(store,
		token.WithAccessTokenGenerator(token.JWTAccessTokenGenerator(
			"com.demo.issuer", "api", []byte("demo-signing-secret"), time.Hour)),
		token.WithTokenExpiry(time.Hour, 7*24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("token.NewIssuer: %w", err)
	}

	grantService, err := grant.NewGrantService(store, issuer, grant.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("grant.NewGrantService: %w", err)
	}

	client := &clients.Client{
		ID:     "demo-client",
		Type:   clients.ClientTypePublic,
		Scopes: []string{"openid", "profile"},
	}
	user := &users.User{ID: "user-1", Email: "john.doe@example.com"}

	challenge := sha256.Sum256([]byte(codeVerifier))
	ctx := context.Background()
	if err := store.SaveAuthorizationCode(ctx, &authcode.AuthorizationCode{
		Code:                "abc123",
		Client:              client,
		User:                user,
		ExpiresAt:           time.Now().Add(15 * time.Minute),
		RedirectURI:         "http://localhost:3000/callback",
		Scope:               "openid profile",
		CodeChallenge:       base64.RawURLEncoding.EncodeToString(challenge[:]),
		CodeChallengeMethod: oauth2.CodeMethodTypeS256,
	}); err != nil {
		return fmt.Errorf("store.SaveAuthorizationCode: %w", err)
	}

	request := &oauthmodel.TokenRequest{
		Code:         "abc123",
		CodeVerifier: codeVerifier,
		RedirectURI:  "http://localhost:3000/callback",
	}

	tok, err := grantService.Exchange(ctx, request, client)
	if err != nil {
		return fmt.Errorf("first exchange: %w", err)
	}
	logger.Info().
		Str("access_token", tok.AccessToken).
		Str("scope", tok.Scope).
		Str("authorization_code", tok.AuthorizationCode).
		Msg("first exchange succeeded")

	if _, err := grantService.Exchange(ctx, request, client); err != nil {
		logger.Info().Err(err).Msg("replayed exchange rejected")
		return nil
	}
	return fmt.Errorf("replayed exchange unexpectedly succeeded")
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
