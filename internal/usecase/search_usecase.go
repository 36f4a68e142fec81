package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/place-search-service/internal/config"
	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
	"github.com/place-search-service/internal/metrics"
	"github.com/place-search-service/internal/pkg/errors"
	"github.com/place-search-service/internal/pkg/utils"
	"github.com/place-search-service/internal/pkg/validator"
	"github.com/place-search-service/internal/usecase/dto"
)

type SearchOptions struct {
	EnableRouting bool
	DefaultLimit  int
	MaxLimit      int
	// RoutingConcurrency above 1 routes candidates in parallel.
	RoutingConcurrency int
	GeohashPrecision   uint
}

func NewSearchOptions(search config.SearchConfig, history config.HistoryConfig) SearchOptions {
	return SearchOptions{
		EnableRouting:      search.EnableRouting,
		DefaultLimit:       search.DefaultLimit,
		MaxLimit:           search.MaxLimit,
		RoutingConcurrency: search.RoutingConcurrency,
		GeohashPrecision:   history.GeohashPrecision,
	}
}

// SearchUseCase geocodes a query near an origin and enriches every candidate
// with travel metrics.
type SearchUseCase struct {
	geocoder repository.GeocodingRepository
	router   repository.RoutingRepository
	history  repository.HistoryRepository
	metrics  *metrics.Metrics
	opts     SearchOptions
	logger   *zap.Logger
}

// NewSearchUseCase accepts a nil history repository when history is disabled.
func NewSearchUseCase(
	geocoder repository.GeocodingRepository,
	router repository.RoutingRepository,
	history repository.HistoryRepository,
	m *metrics.Metrics,
	opts SearchOptions,
	logger *zap.Logger,
) *SearchUseCase {
	if opts.DefaultLimit < 1 {
		opts.DefaultLimit = 5
	}
	if opts.MaxLimit < opts.DefaultLimit {
		opts.MaxLimit = opts.DefaultLimit
	}
	return &SearchUseCase{
		geocoder: geocoder,
		router:   router,
		history:  history,
		metrics:  m,
		opts:     opts,
		logger:   logger,
	}
}

// Search validates req and runs it.
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) ([]domain.ResultRecord, error) {
	query, err := uc.BuildQuery(req)
	if err != nil {
		return nil, err
	}
	return uc.Run(ctx, query)
}

// BuildQuery turns request parameters into a SearchQuery, applying the mode
// fallback and the limit bounds.
func (uc *SearchUseCase) BuildQuery(req dto.SearchRequest) (domain.SearchQuery, error) {
	req.Query = strings.TrimSpace(req.Query)
	if err := validator.Validate(req); err != nil {
		return domain.SearchQuery{}, err
	}

	return domain.SearchQuery{
		Text:   req.Query,
		Origin: domain.Coordinate{Lat: *req.Lat, Lon: *req.Lon},
		Mode:   domain.ParseTravelMode(req.Mode),
		Limit:  uc.clampLimit(req.Limit),
	}, nil
}

func (uc *SearchUseCase) clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return uc.opts.DefaultLimit
	case limit > uc.opts.MaxLimit:
		return uc.opts.MaxLimit
	default:
		return limit
	}
}

// Run executes an already validated query. Records come back in geocoding
// order; a candidate whose route failed keeps nil duration and distance.
func (uc *SearchUseCase) Run(ctx context.Context, q domain.SearchQuery) ([]domain.ResultRecord, error) {
	candidates, err := uc.geocoder.Geocode(ctx, q.Text, q.Origin, q.Limit)
	if err != nil {
		uc.logger.Error("Geocoding failed",
			zap.String("operation", "search"),
			zap.String("query", q.Text),
			zap.Error(err),
		)
		return nil, errors.ErrUpstream.Wrap(err)
	}
	if len(candidates) > q.Limit {
		candidates = candidates[:q.Limit]
	}

	routes := uc.routeAll(ctx, q, candidates)

	records := make([]domain.ResultRecord, len(candidates))
	routed := 0
	for i, c := range candidates {
		records[i] = domain.NewResultRecord(c, routes[i], q.Text)
		if routes[i].Available() {
			routed++
		}
	}

	uc.logger.Info("Search completed",
		zap.String("query", q.Text),
		zap.String("mode", string(q.Mode)),
		zap.Int("results", len(records)),
		zap.Int("routed", routed),
	)

	uc.metrics.SearchCompleted(len(records))
	uc.recordHistory(ctx, q, len(records))

	return records, nil
}

func (uc *SearchUseCase) routeAll(ctx context.Context, q domain.SearchQuery, candidates []domain.Candidate) []domain.RouteInfo {
	routes := make([]domain.RouteInfo, len(candidates))
	if !uc.opts.EnableRouting || uc.router == nil {
		return routes
	}

	if uc.opts.RoutingConcurrency <= 1 {
		for i, c := range candidates {
			routes[i] = uc.route(ctx, q, c)
		}
		return routes
	}

	// each goroutine owns its slot, so order survives and no lock is needed
	var g errgroup.Group
	g.SetLimit(uc.opts.RoutingConcurrency)
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			routes[i] = uc.route(ctx, q, c)
			return nil
		})
	}
	_ = g.Wait()

	return routes
}

func (uc *SearchUseCase) route(ctx context.Context, q domain.SearchQuery, c domain.Candidate) domain.RouteInfo {
	info, err := uc.router.Route(ctx, q.Origin, c.Position, q.Mode)
	if err != nil {
		uc.logger.Warn("Routing failed, keeping candidate without metrics",
			zap.String("operation", "route"),
			zap.String("candidate", c.Name),
			zap.String("mode", string(q.Mode)),
			zap.Error(err),
		)
		uc.metrics.RoutingFailed()
		return domain.RouteInfo{}
	}
	return info
}

func (uc *SearchUseCase) recordHistory(ctx context.Context, q domain.SearchQuery, results int) {
	if uc.history == nil {
		return
	}

	entry := domain.HistoryEntry{
		ID:            uuid.New(),
		Query:         q.Text,
		Mode:          q.Mode,
		Limit:         q.Limit,
		OriginGeohash: utils.CoarseGeohash(q.Origin.Lat, q.Origin.Lon, uc.opts.GeohashPrecision),
		ResultCount:   results,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.history.Add(ctx, entry); err != nil {
		uc.logger.Warn("Failed to record search history", zap.Error(err))
	}
}

// Route computes travel metrics between two arbitrary points.
func (uc *SearchUseCase) Route(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	mode := domain.ParseTravelMode(req.Mode)
	from := domain.Coordinate{Lat: *req.FromLat, Lon: *req.FromLon}
	to := domain.Coordinate{Lat: *req.ToLat, Lon: *req.ToLon}

	info, err := uc.router.Route(ctx, from, to, mode)
	if err != nil {
		uc.logger.Error("Routing failed",
			zap.String("operation", "route"),
			zap.String("mode", string(mode)),
			zap.Error(err),
		)
		return nil, errors.ErrUpstream.WithMessage("Upstream routing service failed").Wrap(err)
	}

	return &dto.RouteResponse{
		Mode:     mode,
		Duration: info.DurationMinutes,
		Distance: info.DistanceKm,
	}, nil
}

// History returns the most recent searches, newest first.
func (uc *SearchUseCase) History(ctx context.Context, limit int) (*dto.HistoryResponse, error) {
	if uc.history == nil {
		return nil, errors.ErrFeatureDisabled.WithMessage("Search history is not configured")
	}

	entries, err := uc.history.List(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to list history", zap.String("operation", "history"), zap.Error(err))
		return nil, errors.ErrInternalServer.Wrap(err)
	}

	return &dto.HistoryResponse{Entries: entries, Total: len(entries)}, nil
}

func (uc *SearchUseCase) ClearHistory(ctx context.Context) error {
	if uc.history == nil {
		return errors.ErrFeatureDisabled.WithMessage("Search history is not configured")
	}

	if err := uc.history.Clear(ctx); err != nil {
		uc.logger.Error("Failed to clear history", zap.String("operation", "history"), zap.Error(err))
		return errors.ErrInternalServer.Wrap(err)
	}
	return nil
}
