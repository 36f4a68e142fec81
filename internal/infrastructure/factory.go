package infrastructure

import (
	"fmt"

	"github.com/place-search-service/internal/config"
	"github.com/place-search-service/internal/domain/repository"
	"github.com/place-search-service/internal/infrastructure/googlemaps"
	"github.com/place-search-service/internal/infrastructure/mapbox"
	"github.com/place-search-service/internal/metrics"
	"go.uber.org/zap"
)

// Providers groups the upstream clients selected by configuration.
type Providers struct {
	Name      string
	Geocoding repository.GeocodingRepository
	Routing   repository.RoutingRepository
}

// NewProviders builds the geocoding and routing clients for cfg.Provider.
func NewProviders(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*Providers, error) {
	switch cfg.Provider {
	case config.ProviderMapbox:
		client := mapbox.NewMapboxClient(&cfg.Mapbox, logger.Named("mapbox"), m)
		return &Providers{Name: config.ProviderMapbox, Geocoding: client, Routing: client}, nil
	case config.ProviderGoogle:
		p, err := googlemaps.New(&cfg.Google, logger.Named("googlemaps"), m)
		if err != nil {
			return nil, err
		}
		return &Providers{Name: config.ProviderGoogle, Geocoding: p, Routing: p}, nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", cfg.Provider)
	}
}
