package domain

// Place is the result of resolving a free-text query against a geocoding
// provider. Places are not persisted; they live for the duration of a request.
type Place struct {
	Name       string
	Coordinate Coordinate
	ExternalID string
}
