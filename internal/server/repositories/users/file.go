package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/server/models"
	"github.com/GURUTIKI/presently/internal/server/repositories/filestore"
)

// FileRepository implements user storage over the shared JSON document.
// The duplicate check and the insert run under the store mutex, so
// concurrent registrations of the same username cannot both succeed.
type FileRepository struct {
	store *filestore.Store
}

func NewFileRepository(store *filestore.Store) *FileRepository {
	return &FileRepository{store: store}
}

func (r *FileRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.store.Update(func(doc *filestore.Document) error {
		for _, u := range doc.Users {
			if u.Username == user.Username {
				return common.ErrorAlreadyExists
			}
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("file store error: %w", err)
	}
	return user, nil
}

func (r *FileRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var found *models.User
	err := r.store.View(func(doc *filestore.Document) error {
		for _, u := range doc.Users {
			if u.Username == username {
				c := *u
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
