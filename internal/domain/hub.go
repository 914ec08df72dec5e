package domain

// HubKind distinguishes the transport modality a hub serves.
type HubKind string

const (
	HubAirport HubKind = "airport"
	HubSeaport HubKind = "seaport"
)

// Hub is a fixed transportation access point (airport or seaport) used as an
// intermediate waypoint for multimodal routes. Hubs are static reference
// data: loaded once at startup and read-only thereafter.
type Hub struct {
	Name       string
	Coordinate Coordinate
	Kind       HubKind
}
