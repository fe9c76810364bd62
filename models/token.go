package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT claim set issued at login.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (sub, exp,
// iat, iss) and adds the username so that clients can display the logged-in
// identity without an extra round trip. The "sub" claim carries the user ID
// encoded as a base-10 string.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the login name of the token holder.
	Username string `json:"username"`
}

// Token wraps a validated JWT with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID and Username are parsed copies of the corresponding claims so that
// downstream code does not need to re-parse the token.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Username is the login name extracted from the "username" claim.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
