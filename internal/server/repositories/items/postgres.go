// Package items provides storage backends for wishlist entries.
package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/dbx"
	"github.com/GURUTIKI/presently/internal/server/models"
)

// PostgresRepository implements item storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an item only when the target list belongs to ownerID.
// The ownership check and the insert are a single statement, so no window
// exists between verifying the list and writing the item.
func (r *PostgresRepository) Create(ctx context.Context, item *models.GiftItem, ownerID string) (*models.GiftItem, error) {
	query := `
		INSERT INTO items (id, list_id, name, url, price, image_url, is_bought, bought_by, created_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9
		WHERE EXISTS (SELECT 1 FROM lists WHERE id = $2 AND owner_id = $10)
	`
	res, err := r.db.ExecContext(ctx, query,
		item.ID, item.ListID, item.Name, item.URL, item.Price, item.ImageURL,
		item.IsBought, item.BoughtBy, item.CreatedAt, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return item, nil
	case 0:
		return nil, common.ErrorNotFound
	default:
		return nil, fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *PostgresRepository) ListByList(ctx context.Context, listID string) ([]*models.GiftItem, error) {
	query :=
		`SELECT id, list_id, name, url, price, image_url, is_bought, bought_by, created_at FROM items
		 WHERE list_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.GiftItem
	for rows.Next() {
		var item models.GiftItem
		if err := rows.Scan(
			&item.ID, &item.ListID, &item.Name, &item.URL, &item.Price,
			&item.ImageURL, &item.IsBought, &item.BoughtBy, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, isBought bool, boughtBy string) (*models.GiftItem, error) {
	query :=
		`UPDATE items SET is_bought = $2, bought_by = $3
		 WHERE id = $1
		 RETURNING id, list_id, name, url, price, image_url, is_bought, bought_by, created_at
		 `

	item := &models.GiftItem{}
	err := r.db.QueryRowContext(ctx, query, id, isBought, boughtBy).Scan(
		&item.ID, &item.ListID, &item.Name, &item.URL, &item.Price,
		&item.ImageURL, &item.IsBought, &item.BoughtBy, &item.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}
