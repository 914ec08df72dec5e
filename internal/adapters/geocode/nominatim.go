package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"travelbrain/internal/platform/obs"
	"travelbrain/internal/ports"
)

// NominatimGeocoder implements GeocodeLookup using the OpenStreetMap
// Nominatim search endpoint. A single attempt is made per call; transient
// failures are reported to the caller, which treats them as "no match".
//
// The provider is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
}

func NewNominatimGeocoder(userAgent string) *NominatimGeocoder {
	return &NominatimGeocoder{
		session:   &http.Client{Timeout: 30 * time.Second},
		baseURL:   "https://nominatim.openstreetmap.org",
		userAgent: userAgent,
	}
}

// Nominatim serializes lat/lon as JSON strings.
type nominatimResult struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (n *NominatimGeocoder) Search(
	ctx context.Context,
	query string,
	limit int,
) (_ []ports.GeocodeResult, err error) {
	defer obs.Time(ctx, "nominatim.Search")(&err)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("nominatim search: query must be non-empty")
	}
	if limit < 1 {
		limit = 5
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search", nil)
	if err != nil {
		return nil, fmt.Errorf("nominatim search: create request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("format", "json")
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()

	resp, err := n.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim search: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("nominatim search: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("nominatim search: decode response: %w", err)
	}

	out := make([]ports.GeocodeResult, 0, len(decoded))
	for _, r := range decoded {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lng, lngErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		out = append(out, ports.GeocodeResult{
			Name:       r.DisplayName,
			Lat:        lat,
			Lng:        lng,
			ExternalID: strconv.FormatInt(r.PlaceID, 10),
		})
	}

	return out, nil
}
