package services

import (
	"context"
	"log"

	"travelbrain/internal/adapters/cache"
	"travelbrain/internal/domain"
	"travelbrain/internal/ports"
)

// PlaceResolver turns a free-text query into a ranked list of candidate
// places. Provider failures are absorbed: callers receive an empty list and
// must treat it as "no match found", never as a system fault.
type PlaceResolver struct {
	Geocoder ports.GeocodeLookup
	Cache    *cache.SQLGeocodeCache
}

func NewPlaceResolver(geocoder ports.GeocodeLookup, geocodeCache *cache.SQLGeocodeCache) *PlaceResolver {
	return &PlaceResolver{Geocoder: geocoder, Cache: geocodeCache}
}

// Resolve performs a single geocoding attempt, consulting the persistent
// cache first. No retries: a failed lookup degrades to an empty result.
func (p *PlaceResolver) Resolve(ctx context.Context, query string, limit int) []domain.Place {
	if limit < 1 {
		limit = 5
	}

	if results, ok, err := p.Cache.Get(ctx, query); err != nil {
		log.Printf("geocode cache read failed: %v", err)
	} else if ok {
		return placesFromResults(results, limit)
	}

	results, err := p.Geocoder.Search(ctx, query, limit)
	if err != nil {
		log.Printf("geocode lookup failed query=%q err=%v", query, err)
		return []domain.Place{}
	}

	if err := p.Cache.Put(ctx, query, results); err != nil {
		log.Printf("geocode cache write failed: %v", err)
	}

	return placesFromResults(results, limit)
}

func placesFromResults(results []ports.GeocodeResult, limit int) []domain.Place {
	out := make([]domain.Place, 0, len(results))
	for _, r := range results {
		if len(out) == limit {
			break
		}
		coord := domain.Coordinate{Lat: r.Lat, Lng: r.Lng}
		if coord.Validate() != nil {
			continue
		}
		out = append(out, domain.Place{
			Name:       r.Name,
			Coordinate: coord,
			ExternalID: r.ExternalID,
		})
	}
	return out
}
