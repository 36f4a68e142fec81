package infrastructure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/config"
	"github.com/place-search-service/internal/infrastructure"
	"github.com/place-search-service/internal/infrastructure/googlemaps"
	"github.com/place-search-service/internal/infrastructure/mapbox"
)

func TestNewProviders(t *testing.T) {
	logger := zap.NewNop()

	t.Run("mapbox", func(t *testing.T) {
		cfg := &config.Config{Provider: config.ProviderMapbox, Mapbox: config.MapboxConfig{AccessToken: "pk", RequestTimeout: 5}}

		p, err := infrastructure.NewProviders(cfg, logger, nil)
		require.NoError(t, err)
		assert.Equal(t, "mapbox", p.Name)
		assert.IsType(t, &mapbox.Client{}, p.Geocoding)
		assert.IsType(t, &mapbox.Client{}, p.Routing)
	})

	t.Run("google", func(t *testing.T) {
		cfg := &config.Config{Provider: config.ProviderGoogle, Google: config.GoogleConfig{APIKey: "AIza-test", RequestTimeout: 5}}

		p, err := infrastructure.NewProviders(cfg, logger, nil)
		require.NoError(t, err)
		assert.Equal(t, "google", p.Name)
		assert.IsType(t, &googlemaps.Provider{}, p.Geocoding)
	})

	t.Run("unknown", func(t *testing.T) {
		p, err := infrastructure.NewProviders(&config.Config{Provider: "here"}, logger, nil)
		assert.Nil(t, p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported provider type")
	})
}
