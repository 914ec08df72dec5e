package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"travelbrain/internal/platform/obs"
	"travelbrain/internal/ports"
)

// SQLGeocodeCache is a SQL-backed cache of geocode results keyed by the
// normalized query text.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// normalize collapses whitespace so cache keys stay consistent.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Get returns the cached results for a query, or (nil, false, nil) on a miss.
func (s *SQLGeocodeCache) Get(
	ctx context.Context,
	query string,
) (_ []ports.GeocodeResult, _ bool, err error) {
	if s == nil {
		return nil, false, nil
	}
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("geocode cache: db is nil")
	}

	key := normalize(query)
	if key == "" {
		return nil, false, errors.New("geocode cache: query must be non-empty")
	}

	var raw string
	row := s.DB.QueryRowContext(ctx, `SELECT results FROM geocode_cache WHERE query = $1;`, key)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("geocode cache: query geocode_cache table: %w", err)
	}

	var results []ports.GeocodeResult
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		return nil, false, fmt.Errorf("geocode cache: decode cached results: %w", err)
	}

	return results, true, nil
}

// Put stores the results for a query, replacing any previous entry.
func (s *SQLGeocodeCache) Put(
	ctx context.Context,
	query string,
	results []ports.GeocodeResult,
) error {
	if s == nil {
		return nil
	}
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	key := normalize(query)
	if key == "" {
		return errors.New("geocode cache: query must be non-empty")
	}

	raw, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("geocode cache: encode results: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO geocode_cache (query, results)
	VALUES ($1, $2)
	ON CONFLICT (query) DO UPDATE SET results = EXCLUDED.results;
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("geocode cache: insert geocode_cache row: %w", err)
	}

	return nil
}
