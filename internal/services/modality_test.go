package services

import (
	"testing"

	"travelbrain/internal/domain"
	"travelbrain/internal/geomath"
)

// The classifier is a coarse geographic heuristic: these cases pin its
// documented behavior, not geographic truth.
func TestModalityClassifier(t *testing.T) {
	classifier := NewModalityClassifier(DefaultClassifierConfig())

	cases := []struct {
		name        string
		origin      domain.Coordinate
		destination domain.Coordinate
		straightKm  float64
		want        domain.Modality
	}{
		{
			name:        "short trip is always ground",
			origin:      domain.Coordinate{Lat: 40.4, Lng: -3.7},
			destination: domain.Coordinate{Lat: 41.4, Lng: -3.0},
			straightKm:  120,
			want:        domain.ModalityGround,
		},
		{
			name:        "exactly at the ground threshold",
			origin:      domain.Coordinate{Lat: 40.0, Lng: -3.0},
			destination: domain.Coordinate{Lat: 42.5, Lng: -3.0},
			straightKm:  300,
			want:        domain.ModalityGround,
		},
		{
			name:        "drivable range without ocean stays ground",
			origin:      domain.Coordinate{Lat: 40.4, Lng: -3.7},
			destination: domain.Coordinate{Lat: 43.3, Lng: -6.0},
			straightKm:  450,
			want:        domain.ModalityGround,
		},
		{
			name:        "long overland trip is air",
			origin:      domain.Coordinate{Lat: 40.4, Lng: -3.7},
			destination: domain.Coordinate{Lat: 52.5, Lng: 13.4},
			straightKm:  1860,
			want:        domain.ModalityAir,
		},
		{
			name:        "atlantic crossing is multimodal",
			origin:      domain.Coordinate{Lat: 40.7, Lng: -74.0},
			destination: domain.Coordinate{Lat: 48.8, Lng: 2.3},
			straightKm:  5830,
			want:        domain.ModalityMultimodal,
		},
		{
			name:        "pacific crossing is multimodal",
			origin:      domain.Coordinate{Lat: 34.0, Lng: -118.2},
			destination: domain.Coordinate{Lat: 35.7, Lng: 139.7},
			straightKm:  8800,
			want:        domain.ModalityMultimodal,
		},
		{
			name:        "wide east-west crossing is multimodal",
			origin:      domain.Coordinate{Lat: 55.8, Lng: 37.6},
			destination: domain.Coordinate{Lat: 39.9, Lng: 116.4},
			straightKm:  5800,
			want:        domain.ModalityMultimodal,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifier.Classify(tc.origin, tc.destination, tc.straightKm)
			if got != tc.want {
				t.Fatalf("Classify = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClassifierNewYorkParisFiresAtlanticHeuristic(t *testing.T) {
	classifier := NewModalityClassifier(DefaultClassifierConfig())

	newYork := domain.Coordinate{Lat: 40.7, Lng: -74.0}
	paris := domain.Coordinate{Lat: 48.8, Lng: 2.3}
	straight := geomath.HaversineKm(newYork, paris)

	if got := classifier.Classify(newYork, paris, straight); got != domain.ModalityMultimodal {
		t.Fatalf("Classify(NY, Paris, %f) = %q, want multimodal", straight, got)
	}
}
