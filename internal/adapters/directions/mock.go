package directions

import (
	"context"

	"travelbrain/internal/domain"
	"travelbrain/internal/ports"
)

// MockProvider is an in-memory DirectionsLookup for tests. When Result is
// nil every call reports ErrUnavailable, exercising the fallback path.
type MockProvider struct {
	Result *ports.DirectionsResult
	Calls  int
}

func (m *MockProvider) Route(
	ctx context.Context,
	origin, destination domain.Coordinate,
	profile ports.Profile,
) (ports.DirectionsResult, error) {
	m.Calls++
	if m.Result == nil {
		return ports.DirectionsResult{}, ports.ErrUnavailable
	}
	return *m.Result, nil
}
