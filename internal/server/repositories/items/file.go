package items

import (
	"context"
	"errors"
	"fmt"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/server/models"
	"github.com/GURUTIKI/presently/internal/server/repositories/filestore"
)

// FileRepository implements item storage over the shared JSON document.
// Because the whole document is available under the store mutex, the
// ownership check on Create is atomic with the insert.
type FileRepository struct {
	store *filestore.Store
}

func NewFileRepository(store *filestore.Store) *FileRepository {
	return &FileRepository{store: store}
}

func (r *FileRepository) Create(ctx context.Context, item *models.GiftItem, ownerID string) (*models.GiftItem, error) {
	err := r.store.Update(func(doc *filestore.Document) error {
		for _, l := range doc.Lists {
			if l.ID == item.ListID && l.OwnerID == ownerID {
				doc.Items = append(doc.Items, item)
				return nil
			}
		}
		return common.ErrorNotFound
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("file store error: %w", err)
	}
	return item, nil
}

func (r *FileRepository) ListByList(ctx context.Context, listID string) ([]*models.GiftItem, error) {
	var result []*models.GiftItem
	err := r.store.View(func(doc *filestore.Document) error {
		for _, i := range doc.Items {
			if i.ListID == listID {
				c := *i
				result = append(result, &c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("file store error: %w", err)
	}
	return result, nil
}

func (r *FileRepository) UpdateStatus(ctx context.Context, id string, isBought bool, boughtBy string) (*models.GiftItem, error) {
	var updated *models.GiftItem
	err := r.store.Update(func(doc *filestore.Document) error {
		for _, i := range doc.Items {
			if i.ID == id {
				i.IsBought = isBought
				i.BoughtBy = boughtBy
				c := *i
				updated = &c
				return nil
			}
		}
		return common.ErrorNotFound
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("file store error: %w", err)
	}
	return updated, nil
}

func (r *FileRepository) Delete(ctx context.Context, id string) (bool, error) {
	removed := false
	err := r.store.Update(func(doc *filestore.Document) error {
		for idx, i := range doc.Items {
			if i.ID == id {
				doc.Items = append(doc.Items[:idx], doc.Items[idx+1:]...)
				removed = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("file store error: %w", err)
	}
	return removed, nil
}
