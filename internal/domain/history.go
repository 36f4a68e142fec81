package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one recorded search. The origin is kept only as a coarse
// geohash cell.
type HistoryEntry struct {
	ID            uuid.UUID  `json:"id"`
	Query         string     `json:"query"`
	Mode          TravelMode `json:"mode"`
	Limit         int        `json:"limit"`
	OriginGeohash string     `json:"origin_geohash"`
	ResultCount   int        `json:"result_count"`
	CreatedAt     time.Time  `json:"created_at"`
}
