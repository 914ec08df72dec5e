package geomath

import (
	"math"
	"testing"

	"travelbrain/internal/domain"
)

func TestHaversineKm(t *testing.T) {
	newYork := domain.Coordinate{Lat: 40.7, Lng: -74.0}
	paris := domain.Coordinate{Lat: 48.8, Lng: 2.3}

	t.Run("distance to self is zero", func(t *testing.T) {
		if d := HaversineKm(newYork, newYork); d != 0 {
			t.Fatalf("HaversineKm(a, a) = %f, want 0", d)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := HaversineKm(newYork, paris)
		ba := HaversineKm(paris, newYork)
		if math.Abs(ab-ba) > 1e-9 {
			t.Fatalf("HaversineKm not symmetric: %f vs %f", ab, ba)
		}
	})

	t.Run("known transatlantic distance", func(t *testing.T) {
		d := HaversineKm(newYork, paris)
		// New York to Paris is roughly 5830 km great-circle.
		if d < 5700 || d > 5950 {
			t.Fatalf("HaversineKm(NY, Paris) = %f, want ~5830", d)
		}
	})
}

func TestCurvedPath(t *testing.T) {
	a := domain.Coordinate{Lat: 40.7, Lng: -74.0}
	b := domain.Coordinate{Lat: 48.8, Lng: 2.3}

	path := CurvedPath(a, b, 50)

	if len(path) != 51 {
		t.Fatalf("len(path) = %d, want 51", len(path))
	}
	if path[0] != a {
		t.Fatalf("first point = %+v, want %+v", path[0], a)
	}
	if path[len(path)-1] != b {
		t.Fatalf("last point = %+v, want %+v", path[len(path)-1], b)
	}

	// The bow makes the curve longer than the straight line. That is the
	// point of the approximation, not an error.
	straight := HaversineKm(a, b)
	curved := PathLengthKm(path)
	if curved <= straight {
		t.Fatalf("curved length %f should exceed straight %f", curved, straight)
	}
}

func TestCurvedPathMinimumPoints(t *testing.T) {
	a := domain.Coordinate{Lat: 0, Lng: 0}
	b := domain.Coordinate{Lat: 1, Lng: 1}

	path := CurvedPath(a, b, 0)
	if len(path) < 3 {
		t.Fatalf("len(path) = %d, want at least 3", len(path))
	}
	if path[0] != a || path[len(path)-1] != b {
		t.Fatal("endpoints must equal the inputs")
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(3.14159, 2); got != 3.14 {
		t.Fatalf("RoundTo(3.14159, 2) = %f, want 3.14", got)
	}
}
