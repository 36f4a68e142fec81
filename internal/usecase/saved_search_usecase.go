package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
	"github.com/place-search-service/internal/pkg/errors"
	"github.com/place-search-service/internal/pkg/validator"
	"github.com/place-search-service/internal/usecase/dto"
)

const (
	defaultSavedListLimit = 50
	maxSavedListLimit     = 200
)

var errSavedSearchesDisabled = errors.ErrFeatureDisabled.WithMessage("Saved searches are not configured")

type SavedSearchUseCase struct {
	repo   repository.SavedSearchRepository
	search *SearchUseCase
	logger *zap.Logger
}

// NewSavedSearchUseCase accepts a nil repo when no database is configured;
// every call then fails with FEATURE_UNAVAILABLE.
func NewSavedSearchUseCase(repo repository.SavedSearchRepository, search *SearchUseCase, logger *zap.Logger) *SavedSearchUseCase {
	return &SavedSearchUseCase{repo: repo, search: search, logger: logger}
}

func (uc *SavedSearchUseCase) Create(ctx context.Context, req dto.SavedSearchRequest) (*domain.SavedSearch, error) {
	if uc.repo == nil {
		return nil, errSavedSearchesDisabled
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	q, err := uc.search.BuildQuery(dto.SearchRequest{
		Query: req.Query,
		Lat:   req.Lat,
		Lon:   req.Lon,
		Mode:  req.Mode,
		Limit: req.Limit,
	})
	if err != nil {
		return nil, err
	}

	saved := &domain.SavedSearch{
		Name:  req.Name,
		Query: q.Text,
		Lat:   q.Origin.Lat,
		Lon:   q.Origin.Lon,
		Mode:  q.Mode,
		Limit: q.Limit,
	}
	if err := uc.repo.Create(ctx, saved); err != nil {
		return nil, err
	}

	uc.logger.Info("Saved search created", zap.String("id", saved.ID.String()), zap.String("name", saved.Name))
	return saved, nil
}

func (uc *SavedSearchUseCase) List(ctx context.Context, limit int) (*dto.SavedSearchListResponse, error) {
	if uc.repo == nil {
		return nil, errSavedSearchesDisabled
	}
	if limit <= 0 {
		limit = defaultSavedListLimit
	}
	if limit > maxSavedListLimit {
		limit = maxSavedListLimit
	}

	searches, err := uc.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &dto.SavedSearchListResponse{SavedSearches: searches, Total: len(searches)}, nil
}

func (uc *SavedSearchUseCase) Delete(ctx context.Context, rawID string) error {
	if uc.repo == nil {
		return errSavedSearchesDisabled
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.ErrNotFound.WithMessage("Saved search not found")
	}
	return nil
}

// Run re-executes a saved search against the live provider.
func (uc *SavedSearchUseCase) Run(ctx context.Context, rawID string) ([]domain.ResultRecord, error) {
	if uc.repo == nil {
		return nil, errSavedSearchesDisabled
	}
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	saved, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.search.Run(ctx, saved.ToQuery())
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.ErrValidation.WithMessage("id must be a UUID").Wrap(err)
	}
	return id, nil
}
