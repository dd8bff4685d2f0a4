// Package token abstracts bearer-token issuing and verification so that the
// authentication scheme can change without touching handlers or services.
package token

import "errors"

var ErrInvalidToken = errors.New("invalid or expired token")

// Issuer creates a signed bearer token for a user.
type Issuer interface {
	Issue(userID uint64) (string, error)
}

// Verifier checks a bearer token and returns the user id it was issued for.
type Verifier interface {
	Verify(tokenString string) (uint64, error)
}
