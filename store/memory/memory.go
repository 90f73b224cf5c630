// Package memory provides an in-memory grant.Store backed by a TTL cache.
// Codes age out of the cache on their own expiry; revocation is serialized
// per store so concurrent exchanges of one code elect a single winner. It
// is intended for tests, examples and single-process deployments.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/jrsteele09/go-token-exchange/authcode"
	"github.com/jrsteele09/go-token-exchange/clients"
	"github.com/jrsteele09/go-token-exchange/grant"
	"github.com/jrsteele09/go-token-exchange/token"
	"github.com/jrsteele09/go-token-exchange/users"
)

var _ grant.Store = (*Store)(nil)

// ErrTokenNotFound is returned by GetToken for unknown access tokens.
var ErrTokenNotFound = errors.New("token not found")

type Store struct {
	codes  *ttlcache.Cache[string, *authcode.AuthorizationCode]
	tokens map[string]*token.Token
	lock   sync.Mutex
}

// New creates an in-memory store with automatic expiry cleanup.
func New() *Store {
	cache := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[string, *authcode.AuthorizationCode](),
	)
	go cache.Start()

	return &Store{
		codes:  cache,
		tokens: make(map[string]*token.Token),
	}
}

// SaveAuthorizationCode stores a code record until its expiry. This is the
// authorization endpoint's half of the code lifecycle and is not part of
// the grant.Store contract.
func (s *Store) SaveAuthorizationCode(_ context.Context, code *authcode.AuthorizationCode) error {
	ttl := time.Until(code.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Nanosecond // already expired, let the cache drop it
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.codes.Set(code.Code, code, ttl)
	return nil
}

func (s *Store) GetAuthorizationCode(_ context.Context, code string) (*authcode.AuthorizationCode, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	item := s.codes.Get(code)
	if item == nil {
		return nil, authcode.ErrNotFound
	}
	return item.Value(), nil
}

// RevokeAuthorizationCode deletes the record under the store lock, so of
// any number of concurrent callers exactly one observes true.
func (s *Store) RevokeAuthorizationCode(_ context.Context, code *authcode.AuthorizationCode) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.codes.Has(code.Code) {
		return false, nil
	}
	s.codes.Delete(code.Code)
	return true, nil
}

func (s *Store) SaveToken(_ context.Context, tok *token.Token, _ *clients.Client, _ *users.User) (*token.Token, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.tokens[tok.AccessToken] = tok
	return tok, nil
}

// GetToken returns a persisted token by its access-token string.
func (s *Store) GetToken(_ context.Context, accessToken string) (*token.Token, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	tok, ok := s.tokens[accessToken]
	if !ok {
		return nil, ErrTokenNotFound
	}
	return tok, nil
}

// Close stops the expiry cleanup goroutine.
func (s *Store) Close() {
	s.codes.Stop()
}
