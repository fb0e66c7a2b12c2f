package ports

import (
	"context"
	"errors"
)

// ErrUnauthenticated is returned by an IdentityVerifier that rejects a credential.
var ErrUnauthenticated = errors.New("unauthenticated")

// Identity is a verified caller.
type Identity struct {
	Subject string
	Email   string
}

// IdentityVerifier checks an opaque bearer credential.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
