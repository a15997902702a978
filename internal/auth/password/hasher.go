// Package password provides password hashing and verification.
//
// Hashing uses bcrypt with a randomized per-call salt, so hashing the same
// plaintext twice yields different digests that both verify. Verification is
// constant-time and treats a malformed digest as a mismatch, never a crash.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Verify when the password does not match the
// stored digest, or the digest is malformed.
var ErrMismatch = errors.New("password: invalid password")

// Hasher defines the interface for password hashing and verification.
type Hasher interface {
	// Hash returns a salted one-way digest of the password.
	Hash(password string) (string, error)

	// Verify checks if a password matches the given digest.
	// Returns nil if they match, ErrMismatch otherwise.
	Verify(password, digest string) error
}

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// BcryptOption configures the bcrypt hasher.
type BcryptOption func(*BcryptHasher)

// WithCost sets the bcrypt cost parameter (default: 10, range: 4-31).
func WithCost(cost int) BcryptOption {
	return func(h *BcryptHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewBcryptHasher creates a bcrypt-based password hasher.
func NewBcryptHasher(opts ...BcryptOption) *BcryptHasher {
	h := &BcryptHasher{cost: DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > 72 {
		return "", errors.New("password: maximum length is 72 characters (bcrypt limit)")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

// Verify compares the password against the digest. All failure modes,
// including an unparseable digest, collapse into ErrMismatch.
func (h *BcryptHasher) Verify(password, digest string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}
