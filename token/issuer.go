package token

import (
	"context"
	"time"

	"github.com/jrsteele09/go-token-exchange/clients"
	"github.com/jrsteele09/go-token-exchange/internal/config"
	"github.com/jrsteele09/go-token-exchange/users"
	"github.com/pkg/errors"
)

// ScopeResolver decides the scope actually granted to a token, given the
// scope the authorization code was issued for. It may narrow the request or
// reject it outright.
type ScopeResolver func(ctx context.Context, user *users.User, client *clients.Client, requestedScope string) (string, error)

// Generator produces a token string for the given subject.
type Generator func(ctx context.Context, user *users.User, client *clients.Client, scope string) (string, error)

// Issuer assembles and persists tokens for successful exchanges. Scope
// policy, token-string generation and expiry policy are all injectable;
// the defaults produce opaque access tokens, uuid refresh tokens and the
// lifetimes from the package config.
type Issuer struct {
	repo                 Repo
	resolveScope         ScopeResolver
	generateAccessToken  Generator
	generateRefreshToken Generator
	accessTokenExpiry    time.Duration
	refreshTokenExpiry   time.Duration
	createRefreshToken   bool
	nowTime              func() time.Time
}

// IssuerOption defines a function type to modify the Issuer instance.
type IssuerOption func(*Issuer)

// WithTokenExpiry sets the access and refresh token lifetimes. A zero or
// negative refresh expiry disables refresh tokens.
func WithTokenExpiry(accessTokenExpiry, refreshTokenExpiry time.Duration) IssuerOption {
	return func(i *Issuer) {
		i.accessTokenExpiry = accessTokenExpiry
		i.refreshTokenExpiry = refreshTokenExpiry
		i.createRefreshToken = refreshTokenExpiry > 0
	}
}

// WithScopeResolver replaces the default client-allowlist scope policy.
func WithScopeResolver(resolver ScopeResolver) IssuerOption {
	return func(i *Issuer) {
		i.resolveScope = resolver
	}
}

// WithAccessTokenGenerator replaces the default opaque access token generator.
func WithAccessTokenGenerator(generator Generator) IssuerOption {
	return func(i *Issuer) {
		i.generateAccessToken = generator
	}
}

// WithRefreshTokenGenerator replaces the default refresh token generator.
func WithRefreshTokenGenerator(generator Generator) IssuerOption {
	return func(i *Issuer) {
		i.generateRefreshToken = generator
	}
}

// WithNowFunc sets the now time function (primarily for testing)
func WithNowFunc(now func() time.Time) IssuerOption {
	return func(i *Issuer) {
		i.nowTime = now
	}
}

// NewIssuer initializes an Issuer with the required persistence dependency.
func NewIssuer(repo Repo, options ...IssuerOption) (*Issuer, error) {
	if repo == nil {
		return nil, errors.New("[NewIssuer] token repo is required")
	}

	cfg := config.New()
	issuer := &Issuer{
		repo:                 repo,
		resolveScope:         DefaultScopeResolver,
		generateAccessToken:  OpaqueTokenGenerator(cfg.GetTokenGenerationLength()),
		generateRefreshToken: UUIDTokenGenerator(),
		accessTokenExpiry:    cfg.GetDefaultAccessTokenExpiry(),
		refreshTokenExpiry:   cfg.GetDefaultRefreshTokenExpiry(),
		createRefreshToken:   true,
		nowTime:              time.Now,
	}

	for _, opt := range options {
		opt(issuer)
	}

	return issuer, nil
}

// SaveToken resolves the scope, generates the token strings, stamps the
// expiries and persists the assembled Token. authorizationCode is the
// consumed code string, carried on the token for audit correlation.
func (i *Issuer) SaveToken(ctx context.Context, user *users.User, client *clients.Client, authorizationCode, scope string) (*Token, error) {
	resolvedScope, err := i.resolveScope(ctx, user, client, scope)
	if err != nil {
		return nil, errors.Wrap(err, "[Issuer.SaveToken] resolveScope")
	}

	accessToken, err := i.generateAccessToken(ctx, user, client, resolvedScope)
	if err != nil {
		return nil, errors.Wrap(err, "[Issuer.SaveToken] generateAccessToken")
	}

	now := i.nowTime()
	tok := &Token{
		AccessToken:       accessToken,
		AccessExpiresAt:   now.Add(i.accessTokenExpiry),
		Scope:             resolvedScope,
		AuthorizationCode: authorizationCode,
		ClientID:          client.ID,
		UserID:            user.ID,
	}

	if i.createRefreshToken {
		refreshToken, err := i.generateRefreshToken(ctx, user, client, resolvedScope)
		if err != nil {
			return nil, errors.Wrap(err, "[Issuer.SaveToken] generateRefreshToken")
		}
		refreshExpiresAt := now.Add(i.refreshTokenExpiry)
		tok.RefreshToken = refreshToken
		tok.RefreshExpiresAt = &refreshExpiresAt
	}

	persisted, err := i.repo.SaveToken(ctx, tok, client, user)
	if err != nil {
		return nil, errors.Wrap(err, "[Issuer.SaveToken] repo.SaveToken")
	}
	return persisted, nil
}

// DefaultScopeResolver grants the requested scope unchanged after checking
// it against the client's allowlist. An empty request resolves to an empty
// grant.
func DefaultScopeResolver(_ context.Context, _ *users.User, client *clients.Client, requestedScope string) (string, error) {
	if err := client.ValidateScopes(requestedScope); err != nil {
		return "", err
	}
	return requestedScope, nil
}
