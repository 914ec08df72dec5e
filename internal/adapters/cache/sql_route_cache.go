package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"travelbrain/internal/domain"
	"travelbrain/internal/platform/obs"
	"travelbrain/internal/ports"
)

// SQLRouteCache is a SQL-backed cache of ground routes keyed by the
// origin/destination coordinate pair and profile.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// routeKey builds a stable cache key. Coordinates are truncated to five
// decimal places (~1m) so near-identical requests share an entry.
func routeKey(origin, destination domain.Coordinate, profile ports.Profile) string {
	return fmt.Sprintf("%.5f,%.5f|%.5f,%.5f|%s",
		origin.Lat, origin.Lng, destination.Lat, destination.Lng, profile)
}

// Get returns the cached route for a pair, or (zero, false, nil) on a miss.
func (s *SQLRouteCache) Get(
	ctx context.Context,
	origin, destination domain.Coordinate,
	profile ports.Profile,
) (_ ports.DirectionsResult, _ bool, err error) {
	if s == nil {
		return ports.DirectionsResult{}, false, nil
	}
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return ports.DirectionsResult{}, false, errors.New("route cache: db is nil")
	}

	var (
		meters, seconds float64
		rawGeometry     string
	)
	row := s.DB.QueryRowContext(ctx, `
	SELECT distance_m, duration_s, geometry FROM route_cache WHERE route_key = $1;
	`, routeKey(origin, destination, profile))
	if err := row.Scan(&meters, &seconds, &rawGeometry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.DirectionsResult{}, false, nil
		}
		return ports.DirectionsResult{}, false, fmt.Errorf("route cache: query route_cache table: %w", err)
	}

	var geometry []domain.Coordinate
	if err := json.Unmarshal([]byte(rawGeometry), &geometry); err != nil {
		return ports.DirectionsResult{}, false, fmt.Errorf("route cache: decode cached geometry: %w", err)
	}

	return ports.DirectionsResult{
		Geometry:        geometry,
		DistanceMeters:  meters,
		DurationSeconds: seconds,
	}, true, nil
}

// Put stores a route for a pair, replacing any previous entry.
func (s *SQLRouteCache) Put(
	ctx context.Context,
	origin, destination domain.Coordinate,
	profile ports.Profile,
	result ports.DirectionsResult,
) error {
	if s == nil {
		return nil
	}
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	rawGeometry, err := json.Marshal(result.Geometry)
	if err != nil {
		return fmt.Errorf("route cache: encode geometry: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO route_cache (route_key, distance_m, duration_s, geometry)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (route_key) DO UPDATE SET
		distance_m = EXCLUDED.distance_m,
		duration_s = EXCLUDED.duration_s,
		geometry   = EXCLUDED.geometry;
	`, routeKey(origin, destination, profile), result.DistanceMeters, result.DurationSeconds, string(rawGeometry))
	if err != nil {
		return fmt.Errorf("route cache: insert route_cache row: %w", err)
	}

	return nil
}
