package services

import (
	"context"
	"errors"
	"log"

	"travelbrain/internal/domain"
	"travelbrain/internal/geomath"
	"travelbrain/internal/ports"
)

// liveLookupRadiusKm bounds the optional real-time hub search around a point.
const liveLookupRadiusKm = 100

// HubLocator finds the nearest transportation hub to a coordinate. It always
// carries a static, ordered hub list loaded at startup; an optional live
// lookup is consulted first when wired, with the static set as fallback.
type HubLocator struct {
	hubs []domain.Hub
	live ports.NearbyHubLookup
}

// NewHubLocator rejects an empty hub set. That is a configuration error and
// must stop the process at startup, never a request.
func NewHubLocator(hubs []domain.Hub, live ports.NearbyHubLookup) (*HubLocator, error) {
	if len(hubs) == 0 {
		return nil, errors.New("hub locator: reference hub set is empty")
	}
	return &HubLocator{hubs: hubs, live: live}, nil
}

// Nearest returns the hub of the given kind closest to point by great-circle
// distance. Ties resolve to the first hub in list order, which keeps results
// deterministic. A live lookup failure silently degrades to the static set.
func (l *HubLocator) Nearest(ctx context.Context, point domain.Coordinate, kind domain.HubKind) domain.Hub {
	if l.live != nil {
		found, err := l.live.Nearby(ctx, point, liveLookupRadiusKm)
		if err != nil {
			log.Printf("live hub lookup failed: %v", err)
		} else if hub, ok := nearestOf(point, found, kind); ok {
			return hub
		}
	}

	if hub, ok := nearestOf(point, l.hubs, kind); ok {
		return hub
	}
	// No hub of the requested kind; any hub can anchor the leg.
	hub, _ := nearestOf(point, l.hubs, "")
	return hub
}

func nearestOf(point domain.Coordinate, hubs []domain.Hub, kind domain.HubKind) (domain.Hub, bool) {
	var (
		best     domain.Hub
		bestDist float64
		found    bool
	)
	for _, h := range hubs {
		if kind != "" && h.Kind != kind {
			continue
		}
		d := geomath.HaversineKm(point, h.Coordinate)
		if !found || d < bestDist {
			best = h
			bestDist = d
			found = true
		}
	}
	return best, found
}
