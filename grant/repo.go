package grant

import (
	"github.com/jrsteele09/go-token-exchange/authcode"
	"github.com/jrsteele09/go-token-exchange/token"
)

// Store is the full capability set the exchange requires from its storage
// collaborator: code lookup, atomic single-use revocation and token
// persistence. Implementing the interface is the compile-time capability
// check; NewGrantService additionally rejects a nil store.
//
// The single-use guarantee of the exchange is only as strong as the store's
// RevokeAuthorizationCode atomicity — see authcode.Repo.
type Store interface {
	authcode.Repo
	token.Repo
}
