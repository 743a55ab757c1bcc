package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// Claims mirrors the access tokens issued by the hosted auth server.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTResolver verifies HS256 access tokens locally with the project secret.
type JWTResolver struct {
	secret   []byte
	audience string
}

// NewJWTResolver builds a resolver; an empty audience disables the aud check.
func NewJWTResolver(secret, audience string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret), audience: audience}
}

func (r *JWTResolver) Resolve(_ context.Context, token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, ErrMissingCredential
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	if r.audience != "" && !claims.VerifyAudience(r.audience, true) {
		return Identity{}, fmt.Errorf("%w: audience mismatch", ErrInvalidCredential)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Identity{}, fmt.Errorf("%w: empty subject", ErrInvalidCredential)
	}

	return Identity{
		UserID: strings.TrimSpace(claims.Subject),
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
