package repository

import (
	"context"

	"github.com/place-search-service/internal/domain"
)

// HistoryRepository stores recent searches, newest first.
type HistoryRepository interface {
	Add(ctx context.Context, entry domain.HistoryEntry) error
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	Clear(ctx context.Context) error
}
