package ports

import "context"

// GeocodeResult is one candidate match for a free-text place query.
type GeocodeResult struct {
	Name       string
	Lat        float64
	Lng        float64
	ExternalID string
}

// Contract for resolving free-text queries into geographic coordinates.
// Implementations must return an empty slice (not an error) when the query
// matches nothing; errors are reserved for transport-level failures.
type GeocodeLookup interface {
	Search(ctx context.Context, query string, limit int) ([]GeocodeResult, error)
}
