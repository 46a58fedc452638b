package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// JSON response bodies.
//
// Email is a cached copy of the "sub" (subject) claim. It is populated
// during token construction or after a successful parse and avoids
// repeated claim lookups.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Email is the user identity extracted from the "sub" claim.
	Email string `json:"-"`
}

// GetEmail returns the user identity carried by the token. The value is
// cached from the "sub" claim at construction or parse time.
func (t *Token) GetEmail() string {
	return t.Email
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
