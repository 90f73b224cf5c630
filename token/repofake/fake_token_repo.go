package repofake

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-token-exchange/clients"
	"github.com/jrsteele09/go-token-exchange/token"
	"github.com/jrsteele09/go-token-exchange/users"
)

var _ token.Repo = (*FakeTokenRepo)(nil)

type FakeTokenRepo struct {
	tokens []*token.Token
	lock   sync.RWMutex

	SaveErr error
}

func NewFakeTokenRepo() *FakeTokenRepo {
	return &FakeTokenRepo{}
}

func (tr *FakeTokenRepo) SaveToken(_ context.Context, tok *token.Token, _ *clients.Client, _ *users.User) (*token.Token, error) {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	if tr.SaveErr != nil {
		return nil, tr.SaveErr
	}
	tr.tokens = append(tr.tokens, tok)
	return tok, nil
}

func (tr *FakeTokenRepo) Tokens() []*token.Token {
	tr.lock.RLock()
	defer tr.lock.RUnlock()
	return append([]*token.Token(nil), tr.tokens...)
}
