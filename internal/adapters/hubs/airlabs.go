package hubs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"travelbrain/internal/domain"
	"travelbrain/internal/platform/obs"
)

// AirLabsLookup implements NearbyHubLookup against the AirLabs nearby
// endpoint. Wiring it is optional; the static hub set remains the default.
type AirLabsLookup struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewAirLabsLookup(apiKey string) (*AirLabsLookup, error) {
	if apiKey == "" {
		return nil, errors.New("airlabs api key is empty")
	}
	return &AirLabsLookup{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://airlabs.co/api/v9",
	}, nil
}

type airLabsNearbyResponse struct {
	Response struct {
		Airports []struct {
			Name string  `json:"name"`
			Lat  float64 `json:"lat"`
			Lng  float64 `json:"lng"`
		} `json:"airports"`
	} `json:"response"`
}

func (a *AirLabsLookup) Nearby(
	ctx context.Context,
	point domain.Coordinate,
	radiusKm float64,
) (_ []domain.Hub, err error) {
	defer obs.Time(ctx, "airlabs.Nearby")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/nearby", nil)
	if err != nil {
		return nil, fmt.Errorf("airlabs nearby: create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("lat", fmt.Sprintf("%f", point.Lat))
	q.Set("lng", fmt.Sprintf("%f", point.Lng))
	q.Set("distance", fmt.Sprintf("%.0f", radiusKm))
	q.Set("api_key", a.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := a.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airlabs nearby: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("airlabs nearby: unexpected status %d", resp.StatusCode)
	}

	var decoded airLabsNearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("airlabs nearby: decode response: %w", err)
	}

	out := make([]domain.Hub, 0, len(decoded.Response.Airports))
	for _, ap := range decoded.Response.Airports {
		out = append(out, domain.Hub{
			Name:       ap.Name,
			Coordinate: domain.Coordinate{Lat: ap.Lat, Lng: ap.Lng},
			Kind:       domain.HubAirport,
		})
	}

	return out, nil
}
