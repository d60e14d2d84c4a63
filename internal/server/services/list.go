package services

import (
	"context"
	"fmt"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/server/models"
	"github.com/GURUTIKI/presently/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// DefaultTheme is the display tag stamped on lists created without one.
const DefaultTheme = "default"

// ListService handles gift-list creation and enumeration. The owner comes
// from the session identity, never from the request body.
type ListService struct {
	repomanager repomanager.RepositoryManager
}

func NewListService(m repomanager.RepositoryManager) *ListService {
	return &ListService{repomanager: m}
}

func (s *ListService) Create(ctx context.Context, ownerID, title, description string) (*models.GiftList, error) {
	if title == "" {
		return nil, common.ErrorValidation
	}

	list := &models.GiftList{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Theme:       DefaultTheme,
	}

	repo := s.repomanager.Lists()
	l, err := repo.Create(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("error creating list: %w", err)
	}
	return l, nil
}

func (s *ListService) ListByOwner(ctx context.Context, ownerID string) ([]*models.GiftList, error) {
	repo := s.repomanager.Lists()
	result, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing lists: %w", err)
	}
	return result, nil
}
