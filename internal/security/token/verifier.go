package token

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what a verified bearer token resolves to.
type Identity struct {
	Email string
}

// Verifier turns an opaque bearer token into an Identity or fails. The
// auth gate depends on this interface only, so the concrete token format
// (and the issuing service) stays swappable.
type Verifier interface {
	Verify(ctx context.Context, tokenStr string) (Identity, error)
}

// JWTVerifier verifies HS256 ID tokens carrying an email claim.
type JWTVerifier struct {
	cfg Config
}

func NewJWTVerifier(cfg Config) *JWTVerifier {
	return &JWTVerifier{cfg: cfg}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenStr string) (Identity, error) {
	parser := jwt.NewParser(jwt.WithLeeway(v.cfg.ClockSkew), jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &IDClaims{}, func(t *jwt.Token) (interface{}, error) {
		return v.cfg.Secret, nil
	})
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*IDClaims)
	if !ok || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}
	if claims.Email == "" {
		return Identity{}, errors.New("token has no email claim")
	}
	return Identity{Email: claims.Email}, nil
}

// Sign issues an ID token for email; used by local tooling and tests.
func Sign(cfg Config, email string, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, NewIDClaims(email, ttl))
	return t.SignedString(cfg.Secret)
}
