package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/place-search-service/internal/domain"
)

// SavedSearchRepository persists named searches.
type SavedSearchRepository interface {
	Create(ctx context.Context, s *domain.SavedSearch) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedSearch, error)
	List(ctx context.Context, limit int) ([]domain.SavedSearch, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
