package dto

// CoordinateDTO is the wire form of a geographic coordinate.
type CoordinateDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ComputeRouteRequest struct {
	Origin      CoordinateDTO `json:"origin"`
	Destination CoordinateDTO `json:"destination"`
}

type RouteSegmentResponse struct {
	Modality   string          `json:"modality"`
	Path       []CoordinateDTO `json:"path"`
	DistanceKm float64         `json:"distance_km"`
	Label      string          `json:"label"`
}

type RouteOptionResponse struct {
	Modality        string                 `json:"modality"`
	Label           string                 `json:"label"`
	Description     string                 `json:"description"`
	TotalDistanceKm float64                `json:"total_distance_km"`
	TotalDurationHr float64                `json:"total_duration_hours"`
	Segments        []RouteSegmentResponse `json:"segments"`
}

type ComputeRouteResponse struct {
	Options []RouteOptionResponse `json:"options"`
}
