package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedSearch is a named search the user can re-run later.
type SavedSearch struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Query     string     `json:"query" db:"query"`
	Lat       float64    `json:"lat" db:"lat"`
	Lon       float64    `json:"lon" db:"lon"`
	Mode      TravelMode `json:"mode" db:"mode"`
	Limit     int        `json:"limit" db:"result_limit"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

func (s SavedSearch) ToQuery() SearchQuery {
	return SearchQuery{
		Text:   s.Query,
		Origin: Coordinate{Lat: s.Lat, Lon: s.Lon},
		Mode:   ParseTravelMode(string(s.Mode)),
		Limit:  s.Limit,
	}
}
