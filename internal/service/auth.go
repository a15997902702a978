// Package service contains the business logic of the identity service:
// registration, login, and profile retrieval. It orchestrates the password
// hasher, the token service, and the credential store, and maps store
// outcomes onto the client-facing error taxonomy.
package service

import (
	"context"
	"errors"

	"github.com/skillsenselab/identity/internal/apperrors"
	"github.com/skillsenselab/identity/internal/auth/password"
	"github.com/skillsenselab/identity/internal/auth/token"
	"github.com/skillsenselab/identity/internal/logger"
	"github.com/skillsenselab/identity/internal/store"
)

// AuthService handles registration and login.
type AuthService struct {
	users  store.UserStore
	hasher password.Hasher
	tokens *token.Service
	log    *logger.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(users store.UserStore, hasher password.Hasher, tokens *token.Service, log *logger.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		log:    log.WithComponent("auth"),
	}
}

// Register hashes the password and creates the account. Input shape is
// validated by the caller; this flow assumes validated input. A uniqueness
// violation from the store maps to the duplicate-identity client error.
func (s *AuthService) Register(ctx context.Context, email, plaintext string) error {
	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return apperrors.Internal(err)
	}

	user := &store.User{Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return apperrors.EmailExists()
		}
		return apperrors.DatabaseError(err)
	}

	s.log.Info("User registered", logger.Fields(logger.FieldUserID, user.ID.String()))
	return nil
}

// Login verifies the credentials and issues a bearer token bound to the
// account identifier. Existence is checked before credential comparison;
// the two failures are distinguishable on the wire by contract.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", apperrors.UserNotFound()
		}
		return "", apperrors.DatabaseError(err)
	}

	if err := s.hasher.Verify(plaintext, user.PasswordHash); err != nil {
		return "", apperrors.InvalidCredentials()
	}

	tok, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		return "", apperrors.Internal(err)
	}

	s.log.Info("User logged in", logger.Fields(logger.FieldUserID, user.ID.String()))
	return tok, nil
}
