package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GURUTIKI/presently/internal/server/migrations"
	"github.com/GURUTIKI/presently/internal/server/repositories/items"
	"github.com/GURUTIKI/presently/internal/server/repositories/lists"
	"github.com/GURUTIKI/presently/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and runs
// the embedded goose migrations on Init.
type PostgresRepositoryManager struct {
	db *sql.DB
}

func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return &PostgresRepositoryManager{db: db}, nil
}

func (m *PostgresRepositoryManager) Init(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Close(ctx context.Context) error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return users.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Lists() lists.Repository {
	return lists.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Items() items.Repository {
	return items.NewPostgresRepository(m.db)
}
