package models

import "time"

// Token is the opaque credential bound to exactly one user.
//
// The same token is returned on every successful authentication of its user;
// it has no expiry and is never rotated.
type Token struct {
	// Key is the opaque string presented by clients in the
	// "Authorization" header.
	Key string `json:"token"`

	// UserID is the owner of the token.
	UserID int64 `json:"-"`

	// CreatedAt is the moment the token was first issued.
	CreatedAt time.Time `json:"-"`
}

// String returns the key of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.Key
}
