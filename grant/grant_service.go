package grant

import (
	"context"
	"time"

	"github.com/jrsteele09/go-token-exchange/clients"
	"github.com/jrsteele09/go-token-exchange/oauthmodel"
	"github.com/jrsteele09/go-token-exchange/token"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GrantService coordinates the authorization-code exchange end to end:
// fetch and validate the code, enforce redirect-URI consistency, revoke the
// code, then issue and persist a token. Storage, scope policy and token
// generation are external collaborators.
type GrantService struct {
	store   Store            // Storage collaborator for codes and tokens
	issuer  *token.Issuer    // Assembles and persists issued tokens
	nowTime func() time.Time // nowTime function (injectable for testing)
	logger  zerolog.Logger
}

// GrantServiceOption defines a function type to modify the GrantService instance.
type GrantServiceOption func(*GrantService)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) GrantServiceOption {
	return func(gs *GrantService) {
		gs.nowTime = nowFunc
	}
}

// WithLogger sets the logger used for collaborator-defect reporting.
// The default discards everything.
func WithLogger(logger zerolog.Logger) GrantServiceOption {
	return func(gs *GrantService) {
		gs.logger = logger
	}
}

// NewGrantService initializes a GrantService with its required
// collaborators. Missing collaborators are a configuration error, raised
// here rather than at exchange time.
func NewGrantService(store Store, issuer *token.Issuer, options ...GrantServiceOption) (*GrantService, error) {
	if store == nil {
		return nil, newConfigurationError("store is required")
	}
	if issuer == nil {
		return nil, newConfigurationError("token issuer is required")
	}

	grantService := &GrantService{
		store:   store,
		issuer:  issuer,
		nowTime: time.Now,
		logger:  zerolog.Nop(),
	}

	for _, opt := range options {
		opt(grantService)
	}

	return grantService, nil
}

// Exchange performs the authorization-code grant for a client that has
// already been authenticated by the caller. On success the code is
// permanently consumed and the persisted token is returned.
//
// The code is revoked before token issuance, so a generation failure can
// never leave a reusable code behind. The inverse also holds: once the
// revoke commits there is no compensating re-issuance, a later failure
// simply loses the code.
func (gs *GrantService) Exchange(ctx context.Context, request *oauthmodel.TokenRequest, client *clients.Client) (*token.Token, error) {
	if request == nil {
		return nil, newMalformedRequest("missing token request")
	}
	if client == nil {
		return nil, newMalformedRequest("missing client")
	}

	code, err := gs.getAuthorizationCode(ctx, request, client)
	if err != nil {
		return nil, err
	}

	if err := checkRedirectURI(request, code); err != nil {
		return nil, err
	}

	// Single-use enforcement. The store serializes revocation per code; a
	// false result or an error means another attempt already spent it.
	revoked, err := gs.store.RevokeAuthorizationCode(ctx, code)
	if err != nil {
		gs.logger.Debug().Err(err).Str("client_id", client.ID).Msg("authorization code revocation failed")
		return nil, newInvalidGrant()
	}
	if !revoked {
		return nil, newInvalidGrant()
	}

	tok, err := gs.issuer.SaveToken(ctx, code.User, client, code.Code, code.Scope)
	if err != nil {
		gs.logger.Error().Err(err).Str("client_id", client.ID).Msg("token issuance failed after code revocation")
		return nil, errors.Wrap(err, "[GrantService.Exchange] issuer.SaveToken")
	}
	return tok, nil
}
