package api

import (
	"net/http"

	"github.com/rs/cors"

	"travelbrain/internal/api/handlers"
	"travelbrain/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete provider adapters.
func NewRouter(
	composer *services.RouteComposer,
	resolver *services.PlaceResolver,
	planner *services.ItineraryPlanner,
) http.Handler {
	mux := http.NewServeMux()

	routing := &handlers.RoutingHandler{Composer: composer, Resolver: resolver}
	itineraries := &handlers.ItineraryHandler{Planner: planner}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/routing/compute", routing.Compute)
	mux.HandleFunc("/api/routing/geocode", routing.Geocode)
	mux.HandleFunc("/api/itineraries/generate", itineraries.Generate)

	// The SPA consumes this API cross-origin.
	return loggingMiddleware(cors.Default().Handler(mux))
}
