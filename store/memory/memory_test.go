package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jrsteele09/go-token-exchange/authcode"
	"github.com/jrsteele09/go-token-exchange/clients"
	"github.com/jrsteele09/go-token-exchange/store/memory"
	"github.com/jrsteele09/go-token-exchange/token"
	"github.com/jrsteele09/go-token-exchange/users"
	"github.com/stretchr/testify/require"
)

func newTestCode(code string, ttl time.Duration) *authcode.AuthorizationCode {
	return &authcode.AuthorizationCode{
		Code:      code,
		Client:    &clients.Client{ID: "test-client-1"},
		User:      &users.User{ID: "user-1"},
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestStore_CodeRoundTrip(t *testing.T) {
	store := memory.New()
	defer store.Close()
	ctx := context.Background()

	seeded := newTestCode("abc123", time.Minute)
	require.NoError(t, store.SaveAuthorizationCode(ctx, seeded))

	fetched, err := store.GetAuthorizationCode(ctx, "abc123")
	require.NoError(t, err)
	require.Equal(t, seeded, fetched)

	_, err = store.GetAuthorizationCode(ctx, "no-such-code")
	require.ErrorIs(t, err, authcode.ErrNotFound)
}

func TestStore_CodeExpiry(t *testing.T) {
	store := memory.New()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.SaveAuthorizationCode(ctx, newTestCode("short-lived", 30*time.Millisecond)))

	_, err := store.GetAuthorizationCode(ctx, "short-lived")
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)
	_, err = store.GetAuthorizationCode(ctx, "short-lived")
	require.ErrorIs(t, err, authcode.ErrNotFound)
}

func TestStore_AlreadyExpiredCode(t *testing.T) {
	store := memory.New()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.SaveAuthorizationCode(ctx, newTestCode("stale", -time.Minute)))

	time.Sleep(time.Millisecond)
	_, err := store.GetAuthorizationCode(ctx, "stale")
	require.ErrorIs(t, err, authcode.ErrNotFound)
}

func TestStore_RevokeSingleWinner(t *testing.T) {
	store := memory.New()
	defer store.Close()
	ctx := context.Background()

	code := newTestCode("contested", time.Minute)
	require.NoError(t, store.SaveAuthorizationCode(ctx, code))

	const attempts = 16
	results := make(chan bool, attempts)
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			revoked, err := store.RevokeAuthorizationCode(ctx, code)
			results <- revoked && err == nil
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for won := range results {
		if won {
			wins++
		}
	}
	require.Equal(t, 1, wins, "exactly one concurrent revoke may win")
	_, err := store.GetAuthorizationCode(ctx, "contested")
	require.ErrorIs(t, err, authcode.ErrNotFound)
}

func TestStore_RevokeUnknownCode(t *testing.T) {
	store := memory.New()
	defer store.Close()

	revoked, err := store.RevokeAuthorizationCode(context.Background(), newTestCode("ghost", time.Minute))
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestStore_TokenRoundTrip(t *testing.T) {
	store := memory.New()
	defer store.Close()
	ctx := context.Background()

	client := &clients.Client{ID: "test-client-1"}
	user := &users.User{ID: "user-1"}
	tok := &token.Token{
		AccessToken:       "access-token-value",
		AccessExpiresAt:   time.Now().Add(time.Hour),
		AuthorizationCode: "abc123",
		ClientID:          client.ID,
		UserID:            user.ID,
	}

	persisted, err := store.SaveToken(ctx, tok, client, user)
	require.NoError(t, err)
	require.Equal(t, tok, persisted)

	fetched, err := store.GetToken(ctx, "access-token-value")
	require.NoError(t, err)
	require.Equal(t, tok, fetched)

	_, err = store.GetToken(ctx, "unknown")
	require.ErrorIs(t, err, memory.ErrTokenNotFound)
}
