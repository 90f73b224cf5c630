package clients_test

import (
	"testing"

	"github.com/jrsteele09/go-token-exchange/clients"
	"github.com/stretchr/testify/require"
)

func TestClient_ValidateScopes(t *testing.T) {
	client := &clients.Client{
		ID:     "test-client-1",
		Type:   clients.ClientTypeConfidential,
		Scopes: []string{"openid", "profile"},
	}

	t.Run("allowed scopes", func(t *testing.T) {
		require.NoError(t, client.ValidateScopes("openid profile"))
	})

	t.Run("empty request", func(t *testing.T) {
		require.NoError(t, client.ValidateScopes(""))
	})

	t.Run("disallowed scope", func(t *testing.T) {
		require.ErrorIs(t, client.ValidateScopes("openid admin"), clients.ErrInvalidScope)
	})
}

func TestClient_IsPublic(t *testing.T) {
	require.True(t, (&clients.Client{Type: clients.ClientTypePublic}).IsPublic())
	require.False(t, (&clients.Client{Type: clients.ClientTypeConfidential}).IsPublic())
}
