// Package jwtauth verifies HS256 bearer tokens and issues them for tests and tools.
package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"courierdispatch/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

var ErrSecretIsRequired = errors.New("jwt secret is required")

// Claims carries the verified email next to the registered claims.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier implements ports.IdentityVerifier with a shared HMAC secret.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Verify returns ports.ErrUnauthenticated for every malformed, expired or
// wrongly signed token, and for tokens without an email.
func (v *Verifier) Verify(_ context.Context, token string) (ports.Identity, error) {
	claims := &Claims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ports.Identity{}, fmt.Errorf("%w: %v", ports.ErrUnauthenticated, err)
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		return ports.Identity{}, fmt.Errorf("%w: token has no email", ports.ErrUnauthenticated)
	}

	return ports.Identity{Subject: claims.Subject, Email: email}, nil
}

// Issue signs a token for email that expires after ttl.
func (v *Verifier) Issue(subject, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

var _ ports.IdentityVerifier = (*Verifier)(nil)
