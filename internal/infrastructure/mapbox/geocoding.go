package mapbox

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/pkg/utils"
	"go.uber.org/zap"
)

const unknownPlaceName = "Unknown place"

type geocodingResponse struct {
	Features []geocodingFeature `json:"features"`
}

type geocodingFeature struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"` // [lon, lat]
}

// Geocode searches mapbox.places for query, biased towards origin.
func (c *Client) Geocode(
	ctx context.Context,
	query string,
	origin domain.Coordinate,
	limit int,
) (_ []domain.Candidate, err error) {
	start := time.Now()
	defer func() { c.metrics.ObserveUpstream(providerName, "geocode", start, err) }()

	params := url.Values{}
	params.Set("proximity", formatLonLat(origin.Lon, origin.Lat))
	params.Set("limit", strconv.Itoa(limit))

	var resp geocodingResponse
	path := "/geocoding/v5/mapbox.places/" + url.PathEscape(query) + ".json"
	if err := c.getJSON(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, len(resp.Features))
	for _, f := range resp.Features {
		if len(f.Center) < 2 || !utils.ValidateCoordinates(f.Center[1], f.Center[0]) {
			c.logger.Debug("Skipping feature without usable center", zap.String("id", f.ID))
			continue
		}
		name := f.Text
		if name == "" {
			name = unknownPlaceName
		}
		candidates = append(candidates, domain.Candidate{
			ID:       f.ID,
			Name:     name,
			Address:  f.PlaceName,
			Position: domain.Coordinate{Lat: f.Center[1], Lon: f.Center[0]},
		})
	}

	c.logger.Debug("Mapbox geocoding call successful",
		zap.String("query", query),
		zap.Int("features", len(resp.Features)),
		zap.Int("candidates", len(candidates)))

	return candidates, nil
}
