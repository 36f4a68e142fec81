package domain

import "strings"

// TravelMode is the profile used for routing between the origin and a place.
type TravelMode string

const (
	TravelModeDriving TravelMode = "driving"
	TravelModeWalking TravelMode = "walking"
	TravelModeCycling TravelMode = "cycling"
)

// ParseTravelMode never fails: empty or unknown values fall back to driving.
func ParseTravelMode(s string) TravelMode {
	switch m := TravelMode(strings.ToLower(strings.TrimSpace(s))); m {
	case TravelModeDriving, TravelModeWalking, TravelModeCycling:
		return m
	default:
		return TravelModeDriving
	}
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// SearchQuery is the validated input of a single search.
type SearchQuery struct {
	Text   string
	Origin Coordinate
	Mode   TravelMode
	Limit  int
}

// Candidate is a geocoding match before route enrichment.
type Candidate struct {
	ID       string
	Name     string
	Address  string
	Position Coordinate
}

// RouteInfo holds travel metrics; a nil field means routing did not produce it.
type RouteInfo struct {
	DurationMinutes *float64
	DistanceKm      *float64
}

func (r RouteInfo) Available() bool {
	return r.DurationMinutes != nil && r.DistanceKm != nil
}

// NewRouteInfo builds a populated RouteInfo.
func NewRouteInfo(durationMinutes, distanceKm float64) RouteInfo {
	return RouteInfo{DurationMinutes: &durationMinutes, DistanceKm: &distanceKm}
}

// ResultRecord is the externally visible search result and the report input.
// Duration and distance serialize as null when routing failed or was skipped.
type ResultRecord struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	Address   string   `json:"place_name"`
	Latitude  float64  `json:"lat"`
	Longitude float64  `json:"lon"`
	Duration  *float64 `json:"duration"`
	Distance  *float64 `json:"distance"`
	Category  string   `json:"category"`
}

// NewResultRecord merges a candidate with its route; category is the query text.
func NewResultRecord(c Candidate, route RouteInfo, category string) ResultRecord {
	return ResultRecord{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Latitude:  c.Position.Lat,
		Longitude: c.Position.Lon,
		Duration:  route.DurationMinutes,
		Distance:  route.DistanceKm,
		Category:  category,
	}
}
