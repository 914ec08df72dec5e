package directions

import (
	"bytes"
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

// ORSProvider implements DirectionsLookup using OpenRouteService.
// It serves as the secondary provider when GraphHopper is unavailable.
type ORSProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewORSProvider(apiKey string) (*ORSProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}
	return &ORSProvider{
		session: &http.Client{Timeout: 20 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
	}, nil
}

type orsDirectionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type orsDirectionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"` // meters
				Duration float64 `json:"duration"` // seconds
			} `json:"summary"`
		} `json:"properties"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func (o *ORSProvider) Route(
	ctx context.Context,
	origin, destination domain.Coordinate,
	profile ports.Profile,
) (_ ports.DirectionsResult, err error) {
	defer obs.Time(ctx, "ors.Route")(&err)

	orsProfile := "driving-car"
	if profile == ports.ProfileWalking {
		orsProfile = "foot-walking"
	}
	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, orsProfile)

	payload, err := json.Marshal(orsDirectionsRequest{
		Coordinates: [][]float64{origin.LonLat(), destination.LonLat()},
	})
	if err != nil {
		return ports.DirectionsResult{}, fmt.Errorf("ors route: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return ports.DirectionsResult{}, fmt.Errorf("ors route: create request: %w", err)
	}
	req.Header.Set("Authorization", o.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, application/geo+json")

	resp, err := o.session.Do(req)
	if err != nil {
		return ports.DirectionsResult{}, fmt.Errorf("ors route: %w: %w", ports.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.DirectionsResult{}, fmt.Errorf("ors route: status %d: %w", resp.StatusCode, ports.ErrUnavailable)
	}

	var decoded orsDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.DirectionsResult{}, fmt.Errorf("ors route: decode response: %w: %w", ports.ErrUnavailable, err)
	}

	if len(decoded.Features) == 0 {
		return ports.DirectionsResult{}, fmt.Errorf("ors route: empty features: %w", ports.ErrUnavailable)
	}

	feature := decoded.Features[0]
	geometry, err := geometryFromLonLat(feature.Geometry.Coordinates)
	if err != nil {
		return ports.DirectionsResult{}, fmt.Errorf("ors route: %w: %w", ports.ErrUnavailable, err)
	}

	return ports.DirectionsResult{
		Geometry:        geometry,
		DistanceMeters:  feature.Properties.Summary.Distance,
		DurationSeconds: feature.Properties.Summary.Duration,
	}, nil
}
