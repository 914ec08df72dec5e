// Package hubs supplies transportation hub reference data: a static
// JSON-seeded set loaded at startup, plus an optional live nearby lookup.
package hubs

import (
	"encoding/json"
	"fmt"
	"os"

	"travelbrain/internal/domain"
)

type hubSeed struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Kind string  `json:"kind"`
}

// LoadHubs reads the static hub reference set from a JSON seed file.
// An empty or invalid set is a configuration error: callers are expected to
// refuse to start rather than fail per-request. The returned slice preserves
// file order so nearest-hub tie-breaking stays deterministic.
func LoadHubs(path string) ([]domain.Hub, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load hubs: read %q: %w", path, err)
	}

	var seeds []hubSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("load hubs: parse %q: %w", path, err)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("load hubs: %q contains no hubs", path)
	}

	out := make([]domain.Hub, 0, len(seeds))
	for i, s := range seeds {
		coord := domain.Coordinate{Lat: s.Lat, Lng: s.Lng}
		if err := coord.Validate(); err != nil {
			return nil, fmt.Errorf("load hubs: hub %d (%q): %w", i, s.Name, err)
		}

		var kind domain.HubKind
		switch s.Kind {
		case string(domain.HubAirport):
			kind = domain.HubAirport
		case string(domain.HubSeaport):
			kind = domain.HubSeaport
		default:
			return nil, fmt.Errorf("load hubs: hub %d (%q): unknown kind %q", i, s.Name, s.Kind)
		}

		out = append(out, domain.Hub{Name: s.Name, Coordinate: coord, Kind: kind})
	}

	return out, nil
}
