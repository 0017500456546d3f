package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the claim set embedded in every issued session token.
// It extends the registered JWT claims with the user's email so that the
// payload mirrors what the session cookie is expected to carry. The payload
// is signed, not encrypted: integrity is protected, legibility is accepted.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Email is the authenticated user's email at issuance time.
	Email string `json:"email"`
}

// Token wraps a session JWT with convenience accessors for authentication
// flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be stored in the session cookie.
// UserID and Email are parsed copies of the corresponding claims, populated
// during generation or validation so that callers do not re-inspect claims.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Email is the owner email extracted from the custom "email" claim.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
