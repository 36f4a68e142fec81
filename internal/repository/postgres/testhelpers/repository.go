package testhelpers

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/domain/repository"
	"github.com/place-search-service/internal/repository/postgres"
)

// NewMigratedDB wraps db and applies the schema.
func NewMigratedDB(ctx context.Context, db *sqlx.DB, logger *zap.Logger) (*postgres.DB, error) {
	pgDB := postgres.NewWithDB(db, logger)
	if err := pgDB.Migrate(ctx); err != nil {
		return nil, err
	}
	return pgDB, nil
}

func NewSavedSearchRepositoryForTest(db *postgres.DB) repository.SavedSearchRepository {
	return postgres.NewSavedSearchRepository(db)
}
