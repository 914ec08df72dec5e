package dto

type PlaceResponse struct {
	Name       string        `json:"name"`
	Coordinate CoordinateDTO `json:"coordinate"`
	ExternalID string        `json:"external_id"`
}

type GeocodeResponse struct {
	Places []PlaceResponse `json:"places"`
}
