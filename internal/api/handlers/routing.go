package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"travelbrain/internal/api/dto"
	"travelbrain/internal/domain"
	"travelbrain/internal/services"
)

// requestDeadline bounds every outbound call made on behalf of one routing
// request. Providers inside carry their own shorter per-call timeouts.
const requestDeadline = 60 * time.Second

// RoutingHandler exposes route computation and place resolution.
type RoutingHandler struct {
	Composer *services.RouteComposer
	Resolver *services.PlaceResolver
}

// Compute builds every applicable route option for a coordinate pair.
func (h *RoutingHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ComputeRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestDeadline)
	defer cancel()

	options, err := h.Composer.ComputeRoute(
		ctx,
		domain.Coordinate{Lat: req.Origin.Lat, Lng: req.Origin.Lng},
		domain.Coordinate{Lat: req.Destination.Lat, Lng: req.Destination.Lng},
	)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	res := dto.ComputeRouteResponse{Options: make([]dto.RouteOptionResponse, 0, len(options))}
	for _, opt := range options {
		segments := make([]dto.RouteSegmentResponse, 0, len(opt.Segments))
		for _, s := range opt.Segments {
			path := make([]dto.CoordinateDTO, 0, len(s.Path))
			for _, c := range s.Path {
				path = append(path, dto.CoordinateDTO{Lat: c.Lat, Lng: c.Lng})
			}
			segments = append(segments, dto.RouteSegmentResponse{
				Modality:   string(s.Modality),
				Path:       path,
				DistanceKm: s.DistanceKm,
				Label:      s.Label,
			})
		}

		res.Options = append(res.Options, dto.RouteOptionResponse{
			Modality:        string(opt.Modality),
			Label:           opt.Label,
			Description:     opt.Description,
			TotalDistanceKm: opt.TotalDistance,
			TotalDurationHr: opt.TotalDuration,
			Segments:        segments,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Geocode resolves a free-text query into candidate places. An unavailable
// geocoding provider yields an empty list, never an error status.
func (h *RoutingHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "query parameter q is required")
		return
	}

	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 20 {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 20")
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestDeadline)
	defer cancel()

	places := h.Resolver.Resolve(ctx, query, limit)

	res := dto.GeocodeResponse{Places: make([]dto.PlaceResponse, 0, len(places))}
	for _, p := range places {
		res.Places = append(res.Places, dto.PlaceResponse{
			Name:       p.Name,
			Coordinate: dto.CoordinateDTO{Lat: p.Coordinate.Lat, Lng: p.Coordinate.Lng},
			ExternalID: p.ExternalID,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
