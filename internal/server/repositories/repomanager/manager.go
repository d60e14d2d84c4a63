// Package repomanager selects and wires a storage backend. Selection happens
// exactly once, at process start; handlers and services only ever see the
// per-collection Repository interfaces.
package repomanager

import (
	"context"

	"github.com/GURUTIKI/presently/internal/server/config"
	"github.com/GURUTIKI/presently/internal/server/repositories/items"
	"github.com/GURUTIKI/presently/internal/server/repositories/lists"
	"github.com/GURUTIKI/presently/internal/server/repositories/users"
)

// RepositoryManager vends the per-collection repositories of one backend.
// Init prepares the backend (schema migrations, indexes, or the seed file)
// and Close releases its resources.
type RepositoryManager interface {
	Init(ctx context.Context) error
	Close(ctx context.Context) error
	Users() users.Repository
	Lists() lists.Repository
	Items() items.Repository
}

// New picks a backend from the configuration: MongoDSN wins when set, then
// DatabaseDSN, otherwise the flat-file store.
func New(cfg *config.Config) (RepositoryManager, error) {
	switch {
	case cfg.MongoDSN != "":
		return NewMongoRepositoryManager(cfg.MongoDSN, cfg.MongoDatabase)
	case cfg.DatabaseDSN != "":
		return NewPostgresRepositoryManager(cfg.DatabaseDSN)
	default:
		return NewFileRepositoryManager(cfg.FileStorePath), nil
	}
}
