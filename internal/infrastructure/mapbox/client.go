package mapbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/place-search-service/internal/config"
	"github.com/place-search-service/internal/metrics"
	"go.uber.org/zap"
)

const providerName = "mapbox"

var (
	// ErrMissingAccessToken is returned before any request is made when no
	// MAPBOX_ACCESS_TOKEN is configured.
	ErrMissingAccessToken = errors.New("mapbox access token is not configured")
	// ErrNoRoute is returned when the Directions API answers without routes.
	ErrNoRoute = errors.New("mapbox directions returned no routes")
)

// Client talks to the Mapbox Geocoding and Directions APIs. It satisfies both
// repository.GeocodingRepository and repository.RoutingRepository.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

// NewMapboxClient builds a client; a missing token only fails at call time.
func NewMapboxClient(cfg *config.MapboxConfig, logger *zap.Logger, m *metrics.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		logger:      logger,
		metrics:     m,
	}
}

// getJSON performs a GET against path (relative to the base URL), adding the
// access token, and decodes a 200 response into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	if c.accessToken == "" {
		return ErrMissingAccessToken
	}

	c.logger.Debug("Calling Mapbox API",
		zap.String("path", path),
		zap.String("params", params.Encode()))

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("access_token", c.accessToken)
	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full URL, token included
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		c.logger.Error("Failed to execute request", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Mapbox API returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("mapbox API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func formatLonLat(lon, lat float64) string {
	return strconv.FormatFloat(lon, 'f', -1, 64) + "," + strconv.FormatFloat(lat, 'f', -1, 64)
}
