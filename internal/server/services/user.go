// Package services contains the server-side business logic composed by the
// HTTP handlers: account registration and login, list and item operations,
// the bought-status visibility policy, and presigned image uploads.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/server/models"
	"github.com/GURUTIKI/presently/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// UserService handles registration and login.
//
// Passwords are stored and compared as raw text. That is a known weakness of
// the system carried over deliberately; see DESIGN.md before "fixing" it.
type UserService struct {
	repomanager repomanager.RepositoryManager
}

func NewUserService(m repomanager.RepositoryManager) *UserService {
	return &UserService{repomanager: m}
}

// Register creates a new account. Missing fields yield ErrorValidation; a
// taken username yields ErrorAlreadyExists. Uniqueness is enforced by the
// storage layer, not by a lookup here, so concurrent registrations of the
// same username cannot both succeed.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: password,
	}

	repo := s.repomanager.Users()
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and returns the account. An unknown
// username and a wrong password are both ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users()
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if user.PasswordHash != password {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}
