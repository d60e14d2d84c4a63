package lists

import (
	"context"

	"github.com/GURUTIKI/presently/internal/server/models"
)

// Repository persists gift lists. GetByID returns common.ErrorNotFound for
// an unknown id.
type Repository interface {
	Create(ctx context.Context, list *models.GiftList) (*models.GiftList, error)
	GetByID(ctx context.Context, id string) (*models.GiftList, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.GiftList, error)
}
