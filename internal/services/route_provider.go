package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"travelbrain/internal/adapters/cache"
	"travelbrain/internal/domain"
	"travelbrain/internal/ports"
)

// GroundLeg is a routed ground segment together with its travel time.
type GroundLeg struct {
	Segment       domain.RouteSegment
	DurationHours float64
}

// RouteProvider computes point-to-point ground routes with a fixed two-tier
// provider chain: primary first, then secondary. When both fail the result
// is nil, never an error; callers apply the documented geometric fallback.
type RouteProvider struct {
	Primary   ports.DirectionsLookup
	Secondary ports.DirectionsLookup
	Cache     *cache.SQLRouteCache
}

func NewRouteProvider(primary, secondary ports.DirectionsLookup, routeCache *cache.SQLRouteCache) *RouteProvider {
	return &RouteProvider{Primary: primary, Secondary: secondary, Cache: routeCache}
}

// GroundRoute requests a driving route. A nil result means every provider
// in the chain was unavailable; that outcome is expected and must be
// handled by the caller's fallback policy.
func (p *RouteProvider) GroundRoute(ctx context.Context, origin, destination domain.Coordinate, label string) *GroundLeg {
	if result, ok, err := p.Cache.Get(ctx, origin, destination, ports.ProfileDriving); err != nil {
		log.Printf("route cache read failed: %v", err)
	} else if ok {
		return legFromResult(result, label)
	}

	result, err := p.route(ctx, origin, destination)
	if err != nil {
		if !errors.Is(err, ports.ErrUnavailable) && !errors.Is(err, context.Canceled) {
			log.Printf("ground route failed: %v", err)
		}
		return nil
	}

	if err := p.Cache.Put(ctx, origin, destination, ports.ProfileDriving, result); err != nil {
		log.Printf("route cache write failed: %v", err)
	}

	return legFromResult(result, label)
}

// route walks the provider chain in fixed order. Each provider gets exactly
// one attempt; a cancelled context short-circuits the chain.
func (p *RouteProvider) route(ctx context.Context, origin, destination domain.Coordinate) (ports.DirectionsResult, error) {
	result, primaryErr := p.Primary.Route(ctx, origin, destination, ports.ProfileDriving)
	if primaryErr == nil {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return ports.DirectionsResult{}, err
	}

	result, secondaryErr := p.Secondary.Route(ctx, origin, destination, ports.ProfileDriving)
	if secondaryErr == nil {
		return result, nil
	}

	return ports.DirectionsResult{}, fmt.Errorf("directions chain: primary: %v; secondary: %w", primaryErr, secondaryErr)
}

func legFromResult(result ports.DirectionsResult, label string) *GroundLeg {
	if len(result.Geometry) < 2 {
		return nil
	}
	return &GroundLeg{
		Segment: domain.RouteSegment{
			Modality:   domain.ModalityGround,
			Path:       result.Geometry,
			DistanceKm: result.DistanceMeters / 1000,
			Label:      label,
		},
		DurationHours: result.DurationSeconds / 3600,
	}
}
