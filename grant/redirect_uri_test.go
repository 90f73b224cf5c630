package grant_test

import (
	"context"
	"testing"

	"github.com/jrsteele09/go-token-exchange/authcode"
	"github.com/jrsteele09/go-token-exchange/grant"
	"github.com/stretchr/testify/require"
)

func TestExchange_RedirectURI(t *testing.T) {
	t.Run("exact match succeeds", func(t *testing.T) {
		f := setupTestFixture(t)
		f.seedCode()
		_, err := f.service.Exchange(context.Background(), validRequest(), f.client)
		require.NoError(t, err)
	})

	t.Run("omitted when stored", func(t *testing.T) {
		f := setupTestFixture(t)
		f.seedCode()
		request := validRequest()
		request.RedirectURI = ""
		_, err := f.service.Exchange(context.Background(), request, f.client)
		require.ErrorIs(t, err, grant.ErrMalformedRequest)
	})

	t.Run("mismatch", func(t *testing.T) {
		f := setupTestFixture(t)
		f.seedCode()
		request := validRequest()
		request.RedirectURI = "http://localhost:3000/other"
		_, err := f.service.Exchange(context.Background(), request, f.client)
		require.ErrorIs(t, err, grant.ErrMalformedRequest)
	})

	t.Run("no normalization", func(t *testing.T) {
		f := setupTestFixture(t)
		f.seedCode()
		request := validRequest()
		request.RedirectURI = testRedirectURI + "/"
		_, err := f.service.Exchange(context.Background(), request, f.client)
		require.ErrorIs(t, err, grant.ErrMalformedRequest)
	})

	t.Run("unparseable request value", func(t *testing.T) {
		f := setupTestFixture(t)
		f.seedCode()
		request := validRequest()
		request.RedirectURI = "://not-a-uri"
		_, err := f.service.Exchange(context.Background(), request, f.client)
		require.ErrorIs(t, err, grant.ErrMalformedRequest)
	})

	t.Run("query fallback", func(t *testing.T) {
		f := setupTestFixture(t)
		f.seedCode()
		request := validRequest()
		request.RedirectURI = ""
		request.RedirectURIQuery = testRedirectURI
		_, err := f.service.Exchange(context.Background(), request, f.client)
		require.NoError(t, err)
	})

	t.Run("body preferred over query", func(t *testing.T) {
		f := setupTestFixture(t)
		f.seedCode()
		request := validRequest()
		request.RedirectURI = "http://localhost:3000/other"
		request.RedirectURIQuery = testRedirectURI
		_, err := f.service.Exchange(context.Background(), request, f.client)
		require.ErrorIs(t, err, grant.ErrMalformedRequest)
	})

	t.Run("no stored redirect is a no-op", func(t *testing.T) {
		f := setupTestFixture(t)
		f.seedCode(func(c *authcode.AuthorizationCode) { c.RedirectURI = "" })
		request := validRequest()
		request.RedirectURI = "http://localhost:3000/anything"
		_, err := f.service.Exchange(context.Background(), request, f.client)
		require.NoError(t, err)
	})
}
