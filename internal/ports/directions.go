package ports

import (
	"context"
	"errors"

	"travelbrain/internal/domain"
)

// ErrUnavailable marks a provider that failed, timed out, or returned an
// unusable payload. It is a first-class outcome, not a fault: callers are
// expected to degrade to a geometric estimate rather than abort.
var ErrUnavailable = errors.New("directions provider unavailable")

// Travel profile for point-to-point directions.
type Profile string

const (
	ProfileDriving Profile = "driving"
	ProfileWalking Profile = "walking"
)

// DirectionsResult is a computed point-to-point route.
type DirectionsResult struct {
	Geometry        []domain.Coordinate
	DistanceMeters  float64
	DurationSeconds float64
}

// Contract for retrieving a routed path between two coordinates.
type DirectionsLookup interface {
	// Route returns ErrUnavailable (possibly wrapped) when the provider
	// cannot produce a usable route.
	Route(ctx context.Context, origin, destination domain.Coordinate, profile Profile) (DirectionsResult, error)
}
