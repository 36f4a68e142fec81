package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/place-search-service/internal/config"
	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/metrics"
	"github.com/place-search-service/internal/pkg/utils"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

const (
	providerName = "google"

	// searchRadiusMeters is the location bias radius for text search (API maximum).
	searchRadiusMeters = 50000
)

var (
	ErrMissingAPIKey = errors.New("google maps API key is not configured")
	ErrNoRoute       = errors.New("google directions returned no routes")
)

// APIClient is the subset of *maps.Client the provider needs.
type APIClient interface {
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// Provider implements geocoding and routing on top of the Google Places text
// search and Directions APIs.
type Provider struct {
	api     APIClient
	timeout time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// New builds a Provider from configuration. Without an API key the provider is
// still returned, but every call fails with ErrMissingAPIKey.
func New(cfg *config.GoogleConfig, logger *zap.Logger, m *metrics.Metrics) (*Provider, error) {
	p := &Provider{
		timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		logger:  logger,
		metrics: m,
	}
	if cfg.APIKey == "" {
		return p, nil
	}

	opts := []maps.ClientOption{maps.WithAPIKey(cfg.APIKey)}
	if cfg.RateLimit > 0 {
		opts = append(opts, maps.WithRateLimit(cfg.RateLimit))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create google maps client: %w", err)
	}
	p.api = client
	return p, nil
}

// NewWithClient is used by tests to inject a fake APIClient.
func NewWithClient(api APIClient, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *Provider {
	return &Provider{api: api, timeout: timeout, logger: logger, metrics: m}
}

func (p *Provider) Geocode(
	ctx context.Context,
	query string,
	origin domain.Coordinate,
	limit int,
) (_ []domain.Candidate, err error) {
	if p.api == nil {
		return nil, ErrMissingAPIKey
	}
	start := time.Now()
	defer func() { p.metrics.ObserveUpstream(providerName, "geocode", start, err) }()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.logger.Debug("Geocoding using Google Places", zap.String("query", query))

	resp, err := p.api.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    query,
		Location: &maps.LatLng{Lat: origin.Lat, Lng: origin.Lon},
		Radius:   searchRadiusMeters,
	})
	if err != nil {
		return nil, fmt.Errorf("google text search: %w", err)
	}

	results := resp.Results
	if len(results) > limit {
		results = results[:limit]
	}

	candidates := make([]domain.Candidate, 0, len(results))
	for _, r := range results {
		candidates = append(candidates, domain.Candidate{
			ID:      r.PlaceID,
			Name:    r.Name,
			Address: r.FormattedAddress,
			Position: domain.Coordinate{
				Lat: r.Geometry.Location.Lat,
				Lon: r.Geometry.Location.Lng,
			},
		})
	}
	return candidates, nil
}

func (p *Provider) Route(
	ctx context.Context,
	origin, destination domain.Coordinate,
	mode domain.TravelMode,
) (_ domain.RouteInfo, err error) {
	if p.api == nil {
		return domain.RouteInfo{}, ErrMissingAPIKey
	}
	start := time.Now()
	defer func() { p.metrics.ObserveUpstream(providerName, "route", start, err) }()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	routes, _, err := p.api.Directions(ctx, &maps.DirectionsRequest{
		Origin:      latLngString(origin),
		Destination: latLngString(destination),
		Mode:        travelMode(mode),
	})
	if err != nil {
		return domain.RouteInfo{}, fmt.Errorf("google directions: %w", err)
	}
	if len(routes) == 0 {
		return domain.RouteInfo{}, ErrNoRoute
	}

	var seconds float64
	var meters int
	for _, leg := range routes[0].Legs {
		seconds += leg.Duration.Seconds()
		meters += leg.Distance.Meters
	}

	return domain.NewRouteInfo(
		utils.RoundTenth(seconds/60),
		utils.RoundTenth(float64(meters)/1000),
	), nil
}

func travelMode(mode domain.TravelMode) maps.Mode {
	switch mode {
	case domain.TravelModeWalking:
		return maps.TravelModeWalking
	case domain.TravelModeCycling:
		return maps.TravelModeBicycling
	default:
		return maps.TravelModeDriving
	}
}

func latLngString(c domain.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lon)
}
