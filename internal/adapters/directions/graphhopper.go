// Package directions binds the DirectionsLookup port to external routing
// services. Providers here make a single attempt per call: the routing
// layer degrades to geometric estimates instead of retrying.
package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"travelbrain/internal/domain"
	"travelbrain/internal/platform/obs"
	"travelbrain/internal/ports"
)

// GraphHopperProvider implements DirectionsLookup using the GraphHopper
// routing API. It is the primary provider in the directions chain.
type GraphHopperProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewGraphHopperProvider(apiKey string) (*GraphHopperProvider, error) {
	if apiKey == "" {
		return nil, errors.New("graphhopper api key is empty")
	}
	return &GraphHopperProvider{
		session: &http.Client{Timeout: 15 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://graphhopper.com/api/1",
	}, nil
}

type graphHopperResponse struct {
	Paths []struct {
		Distance float64 `json:"distance"`
		Time     int64   `json:"time"` // milliseconds
		Points   struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"points"`
	} `json:"paths"`
}

func (g *GraphHopperProvider) Route(
	ctx context.Context,
	origin, destination domain.Coordinate,
	profile ports.Profile,
) (_ ports.DirectionsResult, err error) {
	defer obs.Time(ctx, "graphhopper.Route")(&err)

	vehicle := "car"
	if profile == ports.ProfileWalking {
		vehicle = "foot"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/route", nil)
	if err != nil {
		return ports.DirectionsResult{}, fmt.Errorf("graphhopper route: create request: %w", err)
	}

	// GraphHopper expects repeated point params, each "lat,lng".
	q := req.URL.Query()
	q.Add("point", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	q.Add("point", fmt.Sprintf("%f,%f", destination.Lat, destination.Lng))
	q.Set("vehicle", vehicle)
	q.Set("locale", "en")
	q.Set("points_encoded", "false")
	q.Set("key", g.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := g.session.Do(req)
	if err != nil {
		return ports.DirectionsResult{}, fmt.Errorf("graphhopper route: %w: %w", ports.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.DirectionsResult{}, fmt.Errorf("graphhopper route: status %d: %w", resp.StatusCode, ports.ErrUnavailable)
	}

	var decoded graphHopperResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.DirectionsResult{}, fmt.Errorf("graphhopper route: decode response: %w: %w", ports.ErrUnavailable, err)
	}

	if len(decoded.Paths) == 0 {
		return ports.DirectionsResult{}, fmt.Errorf("graphhopper route: empty paths: %w", ports.ErrUnavailable)
	}

	path := decoded.Paths[0]
	geometry, err := geometryFromLonLat(path.Points.Coordinates)
	if err != nil {
		return ports.DirectionsResult{}, fmt.Errorf("graphhopper route: %w: %w", ports.ErrUnavailable, err)
	}

	return ports.DirectionsResult{
		Geometry:        geometry,
		DistanceMeters:  path.Distance,
		DurationSeconds: float64(path.Time) / 1000,
	}, nil
}

// geometryFromLonLat converts [lng, lat] pairs (the GeoJSON convention both
// providers use) into domain coordinates.
func geometryFromLonLat(pairs [][]float64) ([]domain.Coordinate, error) {
	if len(pairs) < 2 {
		return nil, errors.New("geometry must contain at least two points")
	}
	out := make([]domain.Coordinate, 0, len(pairs))
	for _, p := range pairs {
		if len(p) < 2 {
			return nil, errors.New("geometry contains a malformed coordinate pair")
		}
		out = append(out, domain.Coordinate{Lat: p[1], Lng: p[0]})
	}
	return out, nil
}
