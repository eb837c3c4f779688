// Package auth issues and validates the user identities the storefront
// trusts. Carts and orders only ever see the opaque user id carried in
// the token; no other package touches credentials.
package auth

import (
	"context"
	"errors"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID          string
	Email       string
	DisplayName string
	Hash        []byte
}

type UserStore interface {
	Create(ctx context.Context, id, email, displayName, password string) error
	Verify(ctx context.Context, email, password string) (User, error)
	Ping(ctx context.Context) error
}
