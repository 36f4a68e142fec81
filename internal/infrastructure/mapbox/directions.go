package mapbox

import (
	"context"
	"net/url"
	"time"

	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/pkg/utils"
	"go.uber.org/zap"
)

type directionsResponse struct {
	Code   string           `json:"code"`
	Routes []directionRoute `json:"routes"`
}

type directionRoute struct {
	Duration float64 `json:"duration"` // seconds
	Distance float64 `json:"distance"` // meters
}

// Route asks the Directions API for a full-geometry route from origin to
// destination. Metrics are minutes and kilometers rounded to one decimal.
func (c *Client) Route(
	ctx context.Context,
	origin, destination domain.Coordinate,
	mode domain.TravelMode,
) (_ domain.RouteInfo, err error) {
	start := time.Now()
	defer func() { c.metrics.ObserveUpstream(providerName, "route", start, err) }()

	params := url.Values{}
	params.Set("overview", "full")
	params.Set("geometries", "geojson")

	path := "/directions/v5/mapbox/" + string(mode) + "/" +
		formatLonLat(origin.Lon, origin.Lat) + ";" + formatLonLat(destination.Lon, destination.Lat)

	var resp directionsResponse
	if err := c.getJSON(ctx, path, params, &resp); err != nil {
		return domain.RouteInfo{}, err
	}

	if len(resp.Routes) == 0 {
		c.logger.Debug("Mapbox directions returned no routes", zap.String("code", resp.Code))
		return domain.RouteInfo{}, ErrNoRoute
	}

	route := resp.Routes[0]
	return domain.NewRouteInfo(
		utils.RoundTenth(route.Duration/60),
		utils.RoundTenth(route.Distance/1000),
	), nil
}
