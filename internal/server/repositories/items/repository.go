package items

import (
	"context"

	"github.com/GURUTIKI/presently/internal/server/models"
)

// Repository persists wishlist entries.
//
// Create verifies in the same storage operation that the target list exists
// and belongs to ownerID, returning common.ErrorNotFound otherwise; a list
// owned by someone else is indistinguishable from a missing one.
// UpdateStatus returns common.ErrorNotFound for an unknown id. Delete
// reports whether a record was removed.
type Repository interface {
	Create(ctx context.Context, item *models.GiftItem, ownerID string) (*models.GiftItem, error)
	ListByList(ctx context.Context, listID string) ([]*models.GiftItem, error)
	UpdateStatus(ctx context.Context, id string, isBought bool, boughtBy string) (*models.GiftItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}
