package services

import (
	"math"

	"travelbrain/internal/domain"
)

// ClassifierConfig names the distance and longitude thresholds of the
// modality decision. The defaults are tuning parameters, not physical
// constants.
type ClassifierConfig struct {
	// GroundMaxKm is the straight-line distance at or under which a trip is
	// always ground-only.
	GroundMaxKm float64
	// DrivableMaxKm extends the ground classification for trips that do not
	// cross an ocean.
	DrivableMaxKm float64
	// AtlanticMinKm gates the Atlantic-like crossing check.
	AtlanticMinKm float64
	// AtlanticWestLng / AtlanticEastLng: one endpoint west of the first and
	// the other east of the second suggests an Atlantic-like crossing.
	AtlanticWestLng float64
	AtlanticEastLng float64
	// PacificWestLng / PacificEastLng: endpoints on opposite far sides of
	// these bounds suggest a Pacific-like crossing.
	PacificWestLng float64
	PacificEastLng float64
	// WideCrossingMinKm and WideCrossingLonDiff catch remaining long
	// east-west crossings.
	WideCrossingMinKm   float64
	WideCrossingLonDiff float64
}

func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		GroundMaxKm:         300,
		DrivableMaxKm:       500,
		AtlanticMinKm:       4000,
		AtlanticWestLng:     -30,
		AtlanticEastLng:     0,
		PacificWestLng:      -100,
		PacificEastLng:      100,
		WideCrossingMinKm:   3000,
		WideCrossingLonDiff: 40,
	}
}

// ModalityClassifier decides which transportation modality applies to a
// trip from its straight-line distance and the geographic spread of its
// endpoints. This is a coarse heuristic, not authoritative geospatial
// routing: it approximates ocean crossings from longitude spans.
type ModalityClassifier struct {
	cfg ClassifierConfig
}

func NewModalityClassifier(cfg ClassifierConfig) *ModalityClassifier {
	return &ModalityClassifier{cfg: cfg}
}

// Classify returns Ground, Air, or Multimodal for the given endpoints and
// their precomputed straight-line distance.
func (c *ModalityClassifier) Classify(origin, destination domain.Coordinate, straightKm float64) domain.Modality {
	if straightKm <= c.cfg.GroundMaxKm {
		return domain.ModalityGround
	}
	if c.crossesOcean(origin, destination, straightKm) {
		return domain.ModalityMultimodal
	}
	if straightKm <= c.cfg.DrivableMaxKm {
		return domain.ModalityGround
	}
	return domain.ModalityAir
}

func (c *ModalityClassifier) crossesOcean(origin, destination domain.Coordinate, straightKm float64) bool {
	lonDiff := math.Abs(origin.Lng - destination.Lng)

	atlantic := straightKm > c.cfg.AtlanticMinKm &&
		((origin.Lng < c.cfg.AtlanticWestLng && destination.Lng > c.cfg.AtlanticEastLng) ||
			(destination.Lng < c.cfg.AtlanticWestLng && origin.Lng > c.cfg.AtlanticEastLng))

	pacific := (origin.Lng < c.cfg.PacificWestLng && destination.Lng > c.cfg.PacificEastLng) ||
		(destination.Lng < c.cfg.PacificWestLng && origin.Lng > c.cfg.PacificEastLng)

	wide := straightKm > c.cfg.WideCrossingMinKm && lonDiff > c.cfg.WideCrossingLonDiff

	return atlantic || pacific || wide
}
