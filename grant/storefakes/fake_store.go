package storefakes

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-token-exchange/authcode"
	"github.com/jrsteele09/go-token-exchange/clients"
	"github.com/jrsteele09/go-token-exchange/grant"
	"github.com/jrsteele09/go-token-exchange/token"
	"github.com/jrsteele09/go-token-exchange/users"
)

var _ grant.Store = (*FakeStore)(nil)

// FakeStore is an in-memory grant.Store for tests. The exported error
// fields inject failures into individual capabilities.
type FakeStore struct {
	codes  map[string]*authcode.AuthorizationCode
	tokens []*token.Token
	lock   sync.RWMutex

	GetErr       error
	RevokeErr    error
	RevokeDenied bool // Revoke reports false, as if another attempt won the race
	SaveTokenErr error

	getCalls int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		codes: make(map[string]*authcode.AuthorizationCode),
	}
}

// AddCode seeds an authorization code record.
func (fs *FakeStore) AddCode(code *authcode.AuthorizationCode) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.codes[code.Code] = code
}

func (fs *FakeStore) GetAuthorizationCode(_ context.Context, code string) (*authcode.AuthorizationCode, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.getCalls++
	if fs.GetErr != nil {
		return nil, fs.GetErr
	}
	record, ok := fs.codes[code]
	if !ok {
		return nil, authcode.ErrNotFound
	}
	return record, nil
}

func (fs *FakeStore) RevokeAuthorizationCode(_ context.Context, code *authcode.AuthorizationCode) (bool, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if fs.RevokeErr != nil {
		return false, fs.RevokeErr
	}
	if fs.RevokeDenied {
		return false, nil
	}
	if _, ok := fs.codes[code.Code]; !ok {
		return false, nil
	}
	delete(fs.codes, code.Code)
	return true, nil
}

func (fs *FakeStore) SaveToken(_ context.Context, tok *token.Token, _ *clients.Client, _ *users.User) (*token.Token, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if fs.SaveTokenErr != nil {
		return nil, fs.SaveTokenErr
	}
	fs.tokens = append(fs.tokens, tok)
	return tok, nil
}

// Tokens returns every token persisted so far.
func (fs *FakeStore) Tokens() []*token.Token {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	return append([]*token.Token(nil), fs.tokens...)
}

// HasCode reports whether the code record is still present (not revoked).
func (fs *FakeStore) HasCode(code string) bool {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	_, ok := fs.codes[code]
	return ok
}

// GetCalls returns how many lookups have been performed.
func (fs *FakeStore) GetCalls() int {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	return fs.getCalls
}
