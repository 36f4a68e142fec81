package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
	"github.com/place-search-service/internal/pkg/errors"
)

type savedSearchRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSavedSearchRepository(db *DB) repository.SavedSearchRepository {
	return &savedSearchRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Create fills in ID and CreatedAt when they are zero.
func (r *savedSearchRepository) Create(ctx context.Context, s *domain.SavedSearch) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO saved_searches (id, name, query, lat, lon, mode, result_limit, created_at)
		VALUES (:id, :name, :query, :lat, :lon, :mode, :result_limit, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		r.logger.Error("Failed to create saved search", zap.String("name", s.Name), zap.Error(err))
		return errors.ErrDatabase.Wrap(err)
	}

	return nil
}

func (r *savedSearchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedSearch, error) {
	query := `
		SELECT id, name, query, lat, lon, mode, result_limit, created_at
		FROM saved_searches
		WHERE id = $1
	`

	var s domain.SavedSearch
	err := r.db.GetContext(ctx, &s, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrNotFound.WithMessage("Saved search not found")
	}
	if err != nil {
		r.logger.Error("Failed to get saved search", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabase.Wrap(err)
	}

	return &s, nil
}

func (r *savedSearchRepository) List(ctx context.Context, limit int) ([]domain.SavedSearch, error) {
	query := `
		SELECT id, name, query, lat, lon, mode, result_limit, created_at
		FROM saved_searches
		ORDER BY created_at DESC, id
		LIMIT $1
	`

	searches := []domain.SavedSearch{}
	if err := r.db.SelectContext(ctx, &searches, query, limit); err != nil {
		r.logger.Error("Failed to list saved searches", zap.Error(err))
		return nil, errors.ErrDatabase.Wrap(err)
	}

	return searches, nil
}

func (r *savedSearchRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_searches WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete saved search", zap.String("id", id.String()), zap.Error(err))
		return false, errors.ErrDatabase.Wrap(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.ErrDatabase.Wrap(err)
	}
	return n > 0, nil
}
