package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/server/models"
	"github.com/GURUTIKI/presently/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// ItemService handles wishlist entries and owns the visibility policy on
// every item read path.
type ItemService struct {
	repomanager repomanager.RepositoryManager
}

func NewItemService(m repomanager.RepositoryManager) *ItemService {
	return &ItemService{repomanager: m}
}

// NewItemParams carries the caller-supplied fields of a new item.
type NewItemParams struct {
	ListID   string
	Name     string
	URL      string
	Price    string
	ImageURL string
}

// Create adds an item to a list owned by ownerID. A missing list and a list
// owned by someone else both come back as ErrorNotFound, so callers cannot
// probe which lists exist.
func (s *ItemService) Create(ctx context.Context, ownerID string, p NewItemParams) (*models.GiftItem, error) {
	if p.ListID == "" || p.Name == "" {
		return nil, common.ErrorValidation
	}

	item := &models.GiftItem{
		ID:        uuid.NewString(),
		ListID:    p.ListID,
		Name:      p.Name,
		URL:       p.URL,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		IsBought:  false,
		CreatedAt: time.Now().UnixMilli(),
	}

	repo := s.repomanager.Items()
	i, err := repo.Create(ctx, item, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	return i, nil
}

// ListForRequester returns the items of a list as seen by requesterID.
// When the requester owns the list the bought status is masked; everyone
// else sees the stored values. An empty requesterID is an anonymous visitor.
func (s *ItemService) ListForRequester(ctx context.Context, listID, requesterID string) ([]*models.GiftItem, error) {
	result, err := s.repomanager.Items().ListByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}

	list, err := s.repomanager.Lists().GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return result, nil
		}
		return nil, fmt.Errorf("error loading list: %w", err)
	}

	if requesterID != "" && list.OwnerID == requesterID {
		return MaskBoughtStatus(result), nil
	}
	return result, nil
}

// UpdateStatus sets the bought flag and buyer of an item. Deliberately
// requires no identity; see DESIGN.md.
func (s *ItemService) UpdateStatus(ctx context.Context, id string, isBought bool, boughtBy string) (*models.GiftItem, error) {
	item, err := s.repomanager.Items().UpdateStatus(ctx, id, isBought, boughtBy)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating item: %w", err)
	}
	return item, nil
}

// Delete removes an item by id. The caller must be authenticated but is not
// required to own the containing list; see DESIGN.md.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	removed, err := s.repomanager.Items().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}
	if !removed {
		return common.ErrorNotFound
	}
	return nil
}

// MaskBoughtStatus returns a view of items with every bought flag forced
// false and every buyer cleared. It is the single place the surprise-keeping
// rule lives; all owner-facing read paths must go through it. The stored
// records are never mutated.
func MaskBoughtStatus(items []*models.GiftItem) []*models.GiftItem {
	masked := make([]*models.GiftItem, len(items))
	for idx, item := range items {
		c := *item
		c.IsBought = false
		c.BoughtBy = ""
		masked[idx] = &c
	}
	return masked
}
