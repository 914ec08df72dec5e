package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"travelbrain/internal/api/dto"
	"travelbrain/internal/domain"
	"travelbrain/internal/services"
)

const dateLayout = "2006-01-02"

// ItineraryHandler exposes itinerary generation.
type ItineraryHandler struct {
	Planner *services.ItineraryPlanner
}

func (h *ItineraryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.GenerateItineraryRequest

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

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	var tierOverride *domain.BudgetTier
	if req.BudgetTier != "" {
		switch tier := domain.BudgetTier(req.BudgetTier); tier {
		case domain.TierLow, domain.TierMid, domain.TierHigh:
			tierOverride = &tier
		default:
			writeError(w, r, http.StatusBadRequest, "budget_tier must be low, mid, or high")
			return
		}
	}

	window := domain.TripWindow{StartDate: start, EndDate: end, TotalBudget: req.TotalBudget}

	plans, budget, err := h.Planner.BuildItinerary(window, req.InterestCategory, tierOverride)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	tier := h.Planner.ClassifyBudgetTier(window.TotalBudget, window.Days())
	if tierOverride != nil {
		tier = *tierOverride
	}

	res := dto.GenerateItineraryResponse{
		BudgetTier: string(tier),
		DayPlans:   make([]dto.DayPlanResponse, 0, len(plans)),
		Budget: dto.BudgetBreakdownResponse{
			Accommodation: budget.Accommodation,
			Food:          budget.Food,
			Activities:    budget.Activities,
			Transport:     budget.Transport,
			Extras:        budget.Extras,
			Total:         budget.Total,
		},
	}

	for _, p := range plans {
		activities := make([]dto.ActivityResponse, 0, len(p.Activities))
		for _, a := range p.Activities {
			activities = append(activities, dto.ActivityResponse{
				Time:        a.Time,
				Title:       a.Title,
				Description: a.Description,
				Cost:        a.Cost,
			})
		}
		res.DayPlans = append(res.DayPlans, dto.DayPlanResponse{
			Day:        p.DayIndex,
			Date:       p.Date.Format(dateLayout),
			Activities: activities,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
