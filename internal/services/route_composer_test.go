package services

import (
	"context"
	"math"
	"testing"

	"travelbrain/internal/adapters/directions"
	"travelbrain/internal/domain"
	"travelbrain/internal/geomath"
	"travelbrain/internal/ports"
)

var testHubs = []domain.Hub{
	{Name: "John F. Kennedy International", Coordinate: domain.Coordinate{Lat: 40.6413, Lng: -73.7781}, Kind: domain.HubAirport},
	{Name: "Paris Charles de Gaulle", Coordinate: domain.Coordinate{Lat: 49.0097, Lng: 2.5479}, Kind: domain.HubAirport},
	{Name: "Port of Rotterdam", Coordinate: domain.Coordinate{Lat: 51.9526, Lng: 4.0535}, Kind: domain.HubSeaport},
}

func newTestComposer(t *testing.T, primary, secondary ports.DirectionsLookup) *RouteComposer {
	t.Helper()

	locator, err := NewHubLocator(testHubs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider := NewRouteProvider(primary, secondary, nil)
	classifier := NewModalityClassifier(DefaultClassifierConfig())
	return NewRouteComposer(provider, locator, classifier)
}

func TestComputeRouteRejectsInvalidCoordinates(t *testing.T) {
	composer := newTestComposer(t, &directions.MockProvider{}, &directions.MockProvider{})

	_, err := composer.ComputeRoute(
		context.Background(),
		domain.Coordinate{Lat: 95, Lng: 0},
		domain.Coordinate{Lat: 0, Lng: 0},
	)
	if err == nil {
		t.Fatal("expected a validation error for out-of-range latitude")
	}
}

func TestComputeRouteGroundFallbackWhenProvidersUnavailable(t *testing.T) {
	// Both providers report unavailable; the ground option must still be
	// produced from the winding-factor estimate, without an error.
	composer := newTestComposer(t, &directions.MockProvider{}, &directions.MockProvider{})

	madrid := domain.Coordinate{Lat: 40.4168, Lng: -3.7038}
	toledo := domain.Coordinate{Lat: 39.8628, Lng: -4.0273}

	options, err := composer.ComputeRoute(context.Background(), madrid, toledo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 1 {
		t.Fatalf("expected 1 option for a short trip, got %d", len(options))
	}

	ground := options[0]
	if ground.Modality != domain.ModalityGround {
		t.Fatalf("modality = %q, want ground", ground.Modality)
	}

	straight := geomath.HaversineKm(madrid, toledo)
	wantDistance := straight * roadWindingFactor
	if math.Abs(ground.TotalDistance-wantDistance) > 1e-9 {
		t.Fatalf("TotalDistance = %f, want %f", ground.TotalDistance, wantDistance)
	}
	if math.Abs(ground.TotalDuration-wantDistance/groundSpeedKmH) > 1e-9 {
		t.Fatalf("TotalDuration = %f, want %f", ground.TotalDuration, wantDistance/groundSpeedKmH)
	}
	if len(ground.Segments) != 1 || len(ground.Segments[0].Path) < 2 {
		t.Fatal("fallback ground option must carry a single segment with a usable path")
	}
}

func TestComputeRouteUsesRoutedGroundLeg(t *testing.T) {
	routed := &ports.DirectionsResult{
		Geometry: []domain.Coordinate{
			{Lat: 40.4168, Lng: -3.7038},
			{Lat: 40.1, Lng: -3.9},
			{Lat: 39.8628, Lng: -4.0273},
		},
		DistanceMeters:  72000,
		DurationSeconds: 3600,
	}
	composer := newTestComposer(t, &directions.MockProvider{Result: routed}, &directions.MockProvider{})

	options, err := composer.ComputeRoute(
		context.Background(),
		domain.Coordinate{Lat: 40.4168, Lng: -3.7038},
		domain.Coordinate{Lat: 39.8628, Lng: -4.0273},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ground := options[0]
	if ground.TotalDistance != 72 {
		t.Fatalf("TotalDistance = %f, want 72", ground.TotalDistance)
	}
	if ground.TotalDuration != 1 {
		t.Fatalf("TotalDuration = %f, want 1", ground.TotalDuration)
	}
	if len(ground.Segments[0].Path) != 3 {
		t.Fatalf("path length = %d, want routed geometry", len(ground.Segments[0].Path))
	}
}

func TestComputeRouteSecondaryProviderFallback(t *testing.T) {
	routed := &ports.DirectionsResult{
		Geometry: []domain.Coordinate{
			{Lat: 40.4168, Lng: -3.7038},
			{Lat: 39.8628, Lng: -4.0273},
		},
		DistanceMeters:  80000,
		DurationSeconds: 4000,
	}
	primary := &directions.MockProvider{}
	secondary := &directions.MockProvider{Result: routed}
	composer := newTestComposer(t, primary, secondary)

	options, err := composer.ComputeRoute(
		context.Background(),
		domain.Coordinate{Lat: 40.4168, Lng: -3.7038},
		domain.Coordinate{Lat: 39.8628, Lng: -4.0273},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.Calls == 0 {
		t.Fatal("primary provider was never attempted")
	}
	if secondary.Calls == 0 {
		t.Fatal("secondary provider was never attempted")
	}
	if options[0].TotalDistance != 80 {
		t.Fatalf("TotalDistance = %f, want 80 from secondary provider", options[0].TotalDistance)
	}
}

func TestComputeRouteOffersAirPastGroundThreshold(t *testing.T) {
	composer := newTestComposer(t, &directions.MockProvider{}, &directions.MockProvider{})

	madrid := domain.Coordinate{Lat: 40.4168, Lng: -3.7038}
	berlin := domain.Coordinate{Lat: 52.52, Lng: 13.405}

	options, err := composer.ComputeRoute(context.Background(), madrid, berlin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("expected ground and air options, got %d", len(options))
	}

	air := options[1]
	if air.Modality != domain.ModalityAir {
		t.Fatalf("second option modality = %q, want air", air.Modality)
	}

	straight := geomath.HaversineKm(madrid, berlin)
	if math.Abs(air.TotalDistance-straight) > 1e-9 {
		t.Fatalf("air distance = %f, want straight-line %f", air.TotalDistance, straight)
	}
	if math.Abs(air.TotalDuration-straight/airSpeedKmH) > 1e-9 {
		t.Fatalf("air duration = %f, want %f", air.TotalDuration, straight/airSpeedKmH)
	}
	if len(air.Segments[0].Path) != curvePathPoints+1 {
		t.Fatalf("air path length = %d, want %d", len(air.Segments[0].Path), curvePathPoints+1)
	}
}

func TestComputeRouteMultimodalAtlanticCrossing(t *testing.T) {
	composer := newTestComposer(t, &directions.MockProvider{}, &directions.MockProvider{})

	newYork := domain.Coordinate{Lat: 40.7, Lng: -74.0}
	paris := domain.Coordinate{Lat: 48.8, Lng: 2.3}

	options, err := composer.ComputeRoute(context.Background(), newYork, paris)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("expected ground, air and multimodal options, got %d", len(options))
	}

	multi := options[2]
	if multi.Modality != domain.ModalityMultimodal {
		t.Fatalf("modality = %q, want multimodal", multi.Modality)
	}
	if len(multi.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(multi.Segments))
	}

	wantModalities := []domain.Modality{domain.ModalityGround, domain.ModalitySea, domain.ModalityGround}
	var sumDistance float64
	for i, s := range multi.Segments {
		if s.Modality != wantModalities[i] {
			t.Fatalf("segment %d modality = %q, want %q", i, s.Modality, wantModalities[i])
		}
		if len(s.Path) < 2 {
			t.Fatalf("segment %d path has %d points", i, len(s.Path))
		}
		if s.DistanceKm < 0 {
			t.Fatalf("segment %d distance is negative", i)
		}
		sumDistance += s.DistanceKm
	}

	if math.Abs(multi.TotalDistance-sumDistance) > 1e-6 {
		t.Fatalf("TotalDistance = %f, want sum of segments %f", multi.TotalDistance, sumDistance)
	}
}

func TestComputeRouteIsIdempotent(t *testing.T) {
	composer := newTestComposer(t, &directions.MockProvider{}, &directions.MockProvider{})

	newYork := domain.Coordinate{Lat: 40.7, Lng: -74.0}
	paris := domain.Coordinate{Lat: 48.8, Lng: 2.3}

	first, err := composer.ComputeRoute(context.Background(), newYork, paris)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := composer.ComputeRoute(context.Background(), newYork, paris)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("option counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Modality != second[i].Modality {
			t.Fatalf("option %d modality differs", i)
		}
		if first[i].TotalDistance != second[i].TotalDistance {
			t.Fatalf("option %d total distance differs", i)
		}
	}
}
