package repomanager

import (
	"context"

	"github.com/GURUTIKI/presently/internal/server/repositories/filestore"
	"github.com/GURUTIKI/presently/internal/server/repositories/items"
	"github.com/GURUTIKI/presently/internal/server/repositories/lists"
	"github.com/GURUTIKI/presently/internal/server/repositories/users"
)

// FileRepositoryManager vends repositories sharing one flat-file JSON store.
type FileRepositoryManager struct {
	store *filestore.Store
}

func NewFileRepositoryManager(path string) *FileRepositoryManager {
	return &FileRepositoryManager{store: filestore.New(path)}
}

func (m *FileRepositoryManager) Init(ctx context.Context) error {
	return m.store.Init()
}

func (m *FileRepositoryManager) Close(ctx context.Context) error {
	return nil
}

func (m *FileRepositoryManager) Users() users.Repository {
	return users.NewFileRepository(m.store)
}

func (m *FileRepositoryManager) Lists() lists.Repository {
	return lists.NewFileRepository(m.store)
}

func (m *FileRepositoryManager) Items() items.Repository {
	return items.NewFileRepository(m.store)
}
