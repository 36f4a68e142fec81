package dto

import "github.com/place-search-service/internal/domain"

// SearchRequest carries the /search query parameters. Coordinates are
// pointers so that 0 is distinguishable from a missing value.
type SearchRequest struct {
	Query string   `query:"query" json:"query" validate:"required"`
	Lat   *float64 `query:"lat" json:"lat" validate:"required,gte=-90,lte=90"`
	Lon   *float64 `query:"lon" json:"lon" validate:"required,gte=-180,lte=180"`
	Mode  string   `query:"mode" json:"mode,omitempty"`
	Limit int      `query:"limit" json:"limit,omitempty" validate:"omitempty,min=1"`
}

// RouteRequest asks for travel metrics between two points.
type RouteRequest struct {
	FromLat *float64 `query:"from_lat" validate:"required,gte=-90,lte=90"`
	FromLon *float64 `query:"from_lon" validate:"required,gte=-180,lte=180"`
	ToLat   *float64 `query:"to_lat" validate:"required,gte=-90,lte=90"`
	ToLon   *float64 `query:"to_lon" validate:"required,gte=-180,lte=180"`
	Mode    string   `query:"mode"`
}

// ReportRequest is the /generate_pdf body; places use the search output schema.
type ReportRequest struct {
	Places []domain.ResultRecord `json:"places"`
}

type SavedSearchRequest struct {
	Name  string   `json:"name" validate:"required,max=100"`
	Query string   `json:"query" validate:"required,max=200"`
	Lat   *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon   *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
	Mode  string   `json:"mode,omitempty" validate:"omitempty,oneof=driving walking cycling"`
	Limit int      `json:"limit,omitempty" validate:"omitempty,min=1"`
}
