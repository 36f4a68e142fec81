package repository

import (
	"context"

	"github.com/place-search-service/internal/domain"
)

// RoutingRepository computes travel metrics between two points.
type RoutingRepository interface {
	// Route returns the first route's metrics. On any failure, including an
	// empty route list, it returns an absent RouteInfo together with the reason.
	Route(ctx context.Context, origin, destination domain.Coordinate, mode domain.TravelMode) (domain.RouteInfo, error)
}
