// Package geomath provides the pure geometric primitives shared by the
// routing services: great-circle distance and synthetic curved paths.
// Functions here are deterministic arithmetic over validated input and
// have no failure modes beyond NaN propagation.
package geomath

import (
	"math"

	"github.com/golang/geo/s2"

	"travelbrain/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// curveOffsetRatio controls how far the Bézier control point sits off the
// straight line, as a fraction of the endpoint separation.
const curveOffsetRatio = 0.15

// HaversineKm returns the great-circle distance between two coordinates
// in kilometers.
func HaversineKm(a, b domain.Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// CurvedPath generates a quadratic-Bézier approximation between two points,
// bowed perpendicular to the straight line. It is used to render plausible
// paths for air and sea legs where no real route geometry exists. The result
// has numPoints+1 coordinates; the first equals a and the last equals b.
// The curve is intentionally longer than the straight-line distance.
func CurvedPath(a, b domain.Coordinate, numPoints int) []domain.Coordinate {
	if numPoints < 2 {
		numPoints = 2
	}

	dLat := b.Lat - a.Lat
	dLng := b.Lng - a.Lng

	// Control point: midpoint pushed perpendicular to the chord.
	ctrl := domain.Coordinate{
		Lat: (a.Lat+b.Lat)/2 - dLng*curveOffsetRatio,
		Lng: (a.Lng+b.Lng)/2 + dLat*curveOffsetRatio,
	}

	path := make([]domain.Coordinate, 0, numPoints+1)
	for i := 0; i <= numPoints; i++ {
		t := float64(i) / float64(numPoints)
		u := 1 - t
		path = append(path, domain.Coordinate{
			Lat: u*u*a.Lat + 2*u*t*ctrl.Lat + t*t*b.Lat,
			Lng: u*u*a.Lng + 2*u*t*ctrl.Lng + t*t*b.Lng,
		})
	}

	// Endpoints must match the inputs exactly, independent of floating error.
	path[0] = a
	path[len(path)-1] = b
	return path
}

// PathLengthKm sums the great-circle length of a polyline.
func PathLengthKm(path []domain.Coordinate) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += HaversineKm(path[i-1], path[i])
	}
	return total
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
