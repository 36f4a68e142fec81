package dto

import (
	"time"

	"github.com/place-search-service/internal/domain"
)

type ReportResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type RouteResponse struct {
	Mode     domain.TravelMode `json:"mode"`
	Duration *float64          `json:"duration"`
	Distance *float64          `json:"distance"`
}

type HistoryResponse struct {
	Entries []domain.HistoryEntry `json:"entries"`
	Total   int                   `json:"total"`
}

type SavedSearchListResponse struct {
	SavedSearches []domain.SavedSearch `json:"saved_searches"`
	Total         int                  `json:"total"`
}

// HealthResponse is always returned with 200; token_configured tells whether
// upstream calls can succeed at all.
type HealthResponse struct {
	Status          string    `json:"status"`
	Message         string    `json:"message"`
	Provider        string    `json:"provider"`
	TokenConfigured bool      `json:"token_configured"`
	Time            time.Time `json:"time"`

	Dependencies map[string]string `json:"dependencies,omitempty"`
}
