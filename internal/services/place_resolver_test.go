package services

import (
	"context"
	"errors"
	"testing"

	"travelbrain/internal/ports"
)

type stubGeocoder struct {
	results []ports.GeocodeResult
	err     error
	calls   int
}

func (s *stubGeocoder) Search(ctx context.Context, query string, limit int) ([]ports.GeocodeResult, error) {
	s.calls++
	return s.results, s.err
}

func TestResolveReturnsPlaces(t *testing.T) {
	geocoder := &stubGeocoder{results: []ports.GeocodeResult{
		{Name: "Madrid, Spain", Lat: 40.4168, Lng: -3.7038, ExternalID: "12345"},
		{Name: "Madrid, Colombia", Lat: 4.73, Lng: -74.26, ExternalID: "67890"},
	}}
	resolver := NewPlaceResolver(geocoder, nil)

	places := resolver.Resolve(context.Background(), "madrid", 5)
	if len(places) != 2 {
		t.Fatalf("got %d places, want 2", len(places))
	}
	if places[0].Name != "Madrid, Spain" {
		t.Fatalf("first place = %q, provider order must be preserved", places[0].Name)
	}
}

func TestResolveAbsorbsProviderFailure(t *testing.T) {
	geocoder := &stubGeocoder{err: errors.New("upstream 503")}
	resolver := NewPlaceResolver(geocoder, nil)

	places := resolver.Resolve(context.Background(), "madrid", 5)
	if places == nil {
		t.Fatal("Resolve must return an empty slice, not nil")
	}
	if len(places) != 0 {
		t.Fatalf("got %d places, want 0", len(places))
	}
	if geocoder.calls != 1 {
		t.Fatalf("provider called %d times, want a single attempt", geocoder.calls)
	}
}

func TestResolveTruncatesToLimit(t *testing.T) {
	geocoder := &stubGeocoder{results: []ports.GeocodeResult{
		{Name: "A", Lat: 1, Lng: 1},
		{Name: "B", Lat: 2, Lng: 2},
		{Name: "C", Lat: 3, Lng: 3},
	}}
	resolver := NewPlaceResolver(geocoder, nil)

	places := resolver.Resolve(context.Background(), "abc", 2)
	if len(places) != 2 {
		t.Fatalf("got %d places, want 2", len(places))
	}
}

func TestResolveDropsOutOfRangeCoordinates(t *testing.T) {
	geocoder := &stubGeocoder{results: []ports.GeocodeResult{
		{Name: "Broken", Lat: 120, Lng: 0},
		{Name: "Valid", Lat: 40, Lng: -3},
	}}
	resolver := NewPlaceResolver(geocoder, nil)

	places := resolver.Resolve(context.Background(), "q", 5)
	if len(places) != 1 || places[0].Name != "Valid" {
		t.Fatalf("places = %+v, want only the valid result", places)
	}
}
