package domain

// Modality is the transportation mode of a route segment or option.
type Modality string

const (
	ModalityGround     Modality = "ground"
	ModalityAir        Modality = "air"
	ModalitySea        Modality = "sea"
	ModalityMultimodal Modality = "multimodal"
)

// RouteSegment is one leg of a route. Its path always contains at least two
// points. Air and sea legs carry a curved approximation instead of real
// geometry, so their path length can exceed the haversine distance.
type RouteSegment struct {
	Modality   Modality
	Path       []Coordinate
	DistanceKm float64
	Label      string
}

// RouteOption is one complete way of getting from origin to destination:
// an ordered, non-empty sequence of segments with aggregate metrics.
// It is immutable planning data and contains no side effects.
type RouteOption struct {
	Segments      []RouteSegment
	TotalDistance float64 // km
	TotalDuration float64 // hours
	Modality      Modality
	Label         string
	Description   string
}

// OptionModality derives the aggregate modality for a set of segments:
// multimodal iff more than one distinct segment modality is present.
func OptionModality(segments []RouteSegment) Modality {
	if len(segments) == 0 {
		return ModalityGround
	}
	first := segments[0].Modality
	for _, s := range segments[1:] {
		if s.Modality != first {
			return ModalityMultimodal
		}
	}
	return first
}
