package users

import (
	"context"

	"github.com/GURUTIKI/presently/internal/server/models"
)

// Repository persists identity records. Create must enforce username
// uniqueness and return common.ErrorAlreadyExists on a duplicate.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
