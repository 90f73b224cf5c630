package grant

import (
	"net/url"

	"github.com/jrsteele09/go-token-exchange/authcode"
	"github.com/jrsteele09/go-token-exchange/oauthmodel"
)

// checkRedirectURI enforces redirect-URI consistency between authorization
// and exchange. When the code was issued without one the check is a no-op;
// otherwise the request value (body preferred, query fallback) must parse
// and equal the stored value exactly, with no normalization.
func checkRedirectURI(request *oauthmodel.TokenRequest, code *authcode.AuthorizationCode) error {
	if code.RedirectURI == "" {
		return nil
	}

	supplied := request.RedirectURI
	if supplied == "" {
		supplied = request.RedirectURIQuery
	}
	if supplied == "" {
		return newMalformedRequest("redirect_uri is required")
	}
	if _, err := url.ParseRequestURI(supplied); err != nil {
		return newMalformedRequest("redirect_uri is not a valid URI")
	}
	if supplied != code.RedirectURI {
		return newMalformedRequest("redirect_uri does not match the authorization request")
	}
	return nil
}
