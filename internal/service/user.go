package service

import (
	"context"
	"errors"

	"github.com/skillsenselab/identity/internal/apperrors"
	"github.com/skillsenselab/identity/internal/logger"
	"github.com/skillsenselab/identity/internal/store"
)

// UserService serves account data to authenticated callers.
type UserService struct {
	users store.UserStore
	log   *logger.Logger
}

// NewUserService constructs a UserService.
func NewUserService(users store.UserStore, log *logger.Logger) *UserService {
	return &UserService{users: users, log: log.WithComponent("user")}
}

// Profile resolves the account behind an authenticated identifier. A
// verified token is not proof of a live account: if the account has been
// deleted since issuance, this reports not-found rather than trusting the
// token.
func (s *UserService) Profile(ctx context.Context, id string) (*store.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.UserNotFound()
		}
		return nil, apperrors.DatabaseError(err)
	}
	return user, nil
}
