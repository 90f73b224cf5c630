package oauthmodel

// TokenRequest holds the parameters of an authorization-code token request.
// This represents the subset of the /token request body this module consumes;
// client authentication fields are handled by the caller before the exchange.
type TokenRequest struct {
	// Code is the authorization code received from the authorization endpoint.
	// Required: Yes
	// Example: "SplxlOBeZQQYbYS6WxSbIA"
	// Usage: Exchanged once for tokens, then becomes invalid
	Code string

	// CodeVerifier is the PKCE code verifier that matches the code_challenge
	// registered when the code was issued.
	// Required: Yes, if the code was issued with a challenge
	// Example: "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	CodeVerifier string

	// RedirectURI is the redirect_uri field from the request body. It must
	// exactly match the redirect URI presented at the authorization endpoint,
	// when one was presented there.
	RedirectURI string

	// RedirectURIQuery is the redirect_uri taken from the query string.
	// Only consulted when the body carries no redirect_uri.
	RedirectURIQuery string
}
