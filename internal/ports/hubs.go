package ports

import (
	"context"

	"travelbrain/internal/domain"
)

// Optional capability for real-time hub discovery near a coordinate.
// The core must work without it: a static, pre-loaded hub list is always
// available as the default, so this port has no hard runtime dependency.
type NearbyHubLookup interface {
	Nearby(ctx context.Context, point domain.Coordinate, radiusKm float64) ([]domain.Hub, error)
}
