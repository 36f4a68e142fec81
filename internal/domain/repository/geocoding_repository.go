package repository

import (
	"context"

	"github.com/place-search-service/internal/domain"
)

// GeocodingRepository resolves free-text place queries near an origin.
type GeocodingRepository interface {
	// Geocode returns at most limit candidates in upstream relevance order.
	// An empty result is not an error.
	Geocode(ctx context.Context, query string, origin domain.Coordinate, limit int) ([]domain.Candidate, error)
}
