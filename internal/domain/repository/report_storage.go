package repository

import (
	"context"

	"github.com/place-search-service/internal/domain"
)

// ReportStorage persists rendered documents and tells where to fetch them.
type ReportStorage interface {
	Save(ctx context.Context, name string, data []byte) (*domain.StoredReport, error)
}
