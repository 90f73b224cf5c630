package users

// User is the resource owner who authorized an exchange. It is opaque to
// this module: the identity is carried through from the authorization code
// to the issued token unchanged.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}
