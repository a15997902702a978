// Package store is the persistence boundary for accounts. The rest of the
// service consumes the UserStore interface and never sees driver errors:
// duplicate-email and not-found conditions surface as the typed sentinels
// below, everything else is an infrastructure fault.
package store

import (
	"context"
	"errors"
)

// ErrDuplicateEmail is returned by Create when the email uniqueness
// constraint is violated.
var ErrDuplicateEmail = errors.New("store: email already exists")

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("store: user not found")

// UserStore is the credential store consumed by the authentication flow.
// Uniqueness on Create is enforced atomically by the backing store; callers
// must not pre-check existence and assume the answer holds.
type UserStore interface {
	// Create persists a new user. The store assigns the ID.
	// Returns ErrDuplicateEmail if the email is already registered.
	Create(ctx context.Context, user *User) error

	// FindByEmail returns the user registered under email,
	// or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the user with the given identifier, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*User, error)

	// DeleteByID removes the user with the given identifier. Used by
	// administrative flows, not by the authentication core itself.
	DeleteByID(ctx context.Context, id string) error
}
