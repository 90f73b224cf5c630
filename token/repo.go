package token

import (
	"context"

	"github.com/jrsteele09/go-token-exchange/clients"
	"github.com/jrsteele09/go-token-exchange/users"
)

// Repo is the persistence capability required for issued tokens.
type Repo interface {
	// SaveToken persists the assembled token and returns the stored record,
	// which the store may have enriched.
	SaveToken(ctx context.Context, tok *Token, client *clients.Client, user *users.User) (*Token, error)
}
