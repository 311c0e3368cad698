package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity assertions carried by the credential token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// DecodeClaims structurally decodes a credential token without verifying its
// signature. The client never holds the signing key; the remote profile fetch
// is the authoritative validity check, so decoding only filters out tokens
// that are not even well-formed.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return claims, nil
}
