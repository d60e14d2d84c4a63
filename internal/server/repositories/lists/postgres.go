// Package lists provides storage backends for gift lists.
package lists

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/dbx"
	"github.com/GURUTIKI/presently/internal/server/models"
)

// PostgresRepository implements list storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, list *models.GiftList) (*models.GiftList, error) {
	query :=
		`INSERT INTO lists (id, owner_id, title, description, theme)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		list.ID, list.OwnerID, list.Title, list.Description, list.Theme)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.GiftList, error) {
	query :=
		`SELECT id, owner_id, title, description, theme FROM lists
		 WHERE id = $1
		 `

	list := &models.GiftList{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&list.ID, &list.OwnerID, &list.Title, &list.Description, &list.Theme)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.GiftList, error) {
	query :=
		`SELECT id, owner_id, title, description, theme FROM lists
		 WHERE owner_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.GiftList
	for rows.Next() {
		var list models.GiftList
		if err := rows.Scan(&list.ID, &list.OwnerID, &list.Title, &list.Description, &list.Theme); err != nil {
			return nil, err
		}
		result = append(result, &list)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
