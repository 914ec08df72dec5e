package services

import (
	"context"
	"fmt"
	"sync"

	"travelbrain/internal/domain"
	"travelbrain/internal/geomath"
)

// Speed and shape assumptions for geometric estimates. These back the
// fallback paths when no external provider data is available.
const (
	roadWindingFactor = 1.4 // empirical road distance over straight line
	groundSpeedKmH    = 80
	airSpeedKmH       = 800
	seaSpeedKmH       = 40
	curvePathPoints   = 50
)

// RouteComposer orchestrates the modality classifier, hub locator, and
// route provider into complete route options. Each request is stateless;
// external failures degrade to curved-path estimates and never abort the
// request. Only an out-of-range input coordinate is a hard error.
type RouteComposer struct {
	Provider   *RouteProvider
	Locator    *HubLocator
	Classifier *ModalityClassifier
}

func NewRouteComposer(provider *RouteProvider, locator *HubLocator, classifier *ModalityClassifier) *RouteComposer {
	return &RouteComposer{Provider: provider, Locator: locator, Classifier: classifier}
}

// ComputeRoute builds every applicable route option for the pair:
// ground always, air past the ground threshold, multimodal when the
// ocean-crossing heuristic fires. The caller picks one; the first option
// is the default. The returned slice is never empty on success.
func (c *RouteComposer) ComputeRoute(ctx context.Context, origin, destination domain.Coordinate) ([]domain.RouteOption, error) {
	if err := origin.Validate(); err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	straightKm := geomath.HaversineKm(origin, destination)
	modality := c.Classifier.Classify(origin, destination, straightKm)

	options := []domain.RouteOption{
		c.groundOption(ctx, origin, destination, straightKm),
	}

	if straightKm > c.Classifier.cfg.GroundMaxKm {
		options = append(options, c.airOption(origin, destination, straightKm))
	}

	if modality == domain.ModalityMultimodal {
		options = append(options, c.multimodalOption(ctx, origin, destination))
	}

	return options, nil
}

// groundOption returns the routed driving option, or the winding-factor
// estimate when every directions provider is unavailable.
func (c *RouteComposer) groundOption(ctx context.Context, origin, destination domain.Coordinate, straightKm float64) domain.RouteOption {
	leg := c.Provider.GroundRoute(ctx, origin, destination, "Driving route")
	if leg == nil {
		leg = estimatedGroundLeg(origin, destination, straightKm, "Driving route (estimated)")
	}

	return domain.RouteOption{
		Segments:      []domain.RouteSegment{leg.Segment},
		TotalDistance: leg.Segment.DistanceKm,
		TotalDuration: leg.DurationHours,
		Modality:      domain.ModalityGround,
		Label:         "Ground",
		Description:   "Drive the whole way",
	}
}

// airOption is always computable without external dependencies: a curved
// path stands in for the flight geometry and the straight-line distance is
// the flight distance.
func (c *RouteComposer) airOption(origin, destination domain.Coordinate, straightKm float64) domain.RouteOption {
	segment := domain.RouteSegment{
		Modality:   domain.ModalityAir,
		Path:       geomath.CurvedPath(origin, destination, curvePathPoints),
		DistanceKm: straightKm,
		Label:      "Direct flight",
	}

	return domain.RouteOption{
		Segments:      []domain.RouteSegment{segment},
		TotalDistance: straightKm,
		TotalDuration: straightKm / airSpeedKmH,
		Modality:      domain.ModalityAir,
		Label:         "Air",
		Description:   "Fly between the nearest major airports",
	}
}

// multimodalOption chains ground legs through the nearest hubs around a sea
// crossing. The two ground legs are independent and fetched concurrently;
// results are combined only after both have settled.
func (c *RouteComposer) multimodalOption(ctx context.Context, origin, destination domain.Coordinate) domain.RouteOption {
	originHub := c.Locator.Nearest(ctx, origin, domain.HubAirport)
	destHub := c.Locator.Nearest(ctx, destination, domain.HubAirport)

	var (
		wg         sync.WaitGroup
		toHubLeg   *GroundLeg
		fromHubLeg *GroundLeg
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		toHubLeg = c.Provider.GroundRoute(ctx, origin, originHub.Coordinate, "Drive to "+originHub.Name)
	}()
	go func() {
		defer wg.Done()
		fromHubLeg = c.Provider.GroundRoute(ctx, destHub.Coordinate, destination, "Drive from "+destHub.Name)
	}()
	wg.Wait()

	if toHubLeg == nil {
		straight := geomath.HaversineKm(origin, originHub.Coordinate)
		toHubLeg = estimatedGroundLeg(origin, originHub.Coordinate, straight, "Drive to "+originHub.Name+" (estimated)")
	}
	if fromHubLeg == nil {
		straight := geomath.HaversineKm(destHub.Coordinate, destination)
		fromHubLeg = estimatedGroundLeg(destHub.Coordinate, destination, straight, "Drive from "+destHub.Name+" (estimated)")
	}

	seaKm := geomath.HaversineKm(originHub.Coordinate, destHub.Coordinate)
	seaLeg := domain.RouteSegment{
		Modality:   domain.ModalitySea,
		Path:       geomath.CurvedPath(originHub.Coordinate, destHub.Coordinate, curvePathPoints),
		DistanceKm: seaKm,
		Label:      fmt.Sprintf("%s to %s (sea crossing)", originHub.Name, destHub.Name),
	}

	segments := []domain.RouteSegment{toHubLeg.Segment, seaLeg, fromHubLeg.Segment}

	return domain.RouteOption{
		Segments:      segments,
		TotalDistance: toHubLeg.Segment.DistanceKm + seaKm + fromHubLeg.Segment.DistanceKm,
		TotalDuration: toHubLeg.DurationHours + seaKm/seaSpeedKmH + fromHubLeg.DurationHours,
		Modality:      domain.OptionModality(segments),
		Label:         "Multimodal",
		Description:   fmt.Sprintf("Drive to %s, cross to %s, then drive on", originHub.Name, destHub.Name),
	}
}

// estimatedGroundLeg is the self-contained geometric fallback for ground
// legs: straight-line distance scaled by the road winding factor, at an
// assumed average road speed.
func estimatedGroundLeg(origin, destination domain.Coordinate, straightKm float64, label string) *GroundLeg {
	distanceKm := straightKm * roadWindingFactor
	return &GroundLeg{
		Segment: domain.RouteSegment{
			Modality:   domain.ModalityGround,
			Path:       geomath.CurvedPath(origin, destination, curvePathPoints),
			DistanceKm: distanceKm,
			Label:      label,
		},
		DurationHours: distanceKm / groundSpeedKmH,
	}
}
