package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IDClaims is the shape of the ID tokens the frontend sends: registered
// claims plus the account email.
type IDClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewIDClaims(email string, ttl time.Duration) IDClaims {
	now := time.Now()
	return IDClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}
