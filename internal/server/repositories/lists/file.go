package lists

import (
	"context"
	"errors"
	"fmt"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/server/models"
	"github.com/GURUTIKI/presently/internal/server/repositories/filestore"
)

// FileRepository implements list storage over the shared JSON document.
type FileRepository struct {
	store *filestore.Store
}

func NewFileRepository(store *filestore.Store) *FileRepository {
	return &FileRepository{store: store}
}

func (r *FileRepository) Create(ctx context.Context, list *models.GiftList) (*models.GiftList, error) {
	err := r.store.Update(func(doc *filestore.Document) error {
		doc.Lists = append(doc.Lists, list)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("file store error: %w", err)
	}
	return list, nil
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (*models.GiftList, error) {
	var found *models.GiftList
	err := r.store.View(func(doc *filestore.Document) error {
		for _, l := range doc.Lists {
			if l.ID == id {
				c := *l
				found = &c
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
	return found, nil
}

func (r *FileRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.GiftList, error) {
	var result []*models.GiftList
	err := r.store.View(func(doc *filestore.Document) error {
		for _, l := range doc.Lists {
			if l.OwnerID == ownerID {
				c := *l
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
