package services

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"travelbrain/internal/catalog"
	"travelbrain/internal/domain"
)

// Daily budget thresholds separating the tiers.
const (
	midTierDailyBudget  = 100
	highTierDailyBudget = 300
)

// Budget allocation percentages per tier. Each category amount is rounded
// independently; the rounded parts are allowed to drift from the total.
var tierPercentages = map[domain.BudgetTier]map[string]float64{
	domain.TierLow:  {"accommodation": 0.35, "food": 0.30, "activities": 0.20, "transport": 0.10, "extras": 0.05},
	domain.TierMid:  {"accommodation": 0.35, "food": 0.25, "activities": 0.25, "transport": 0.10, "extras": 0.05},
	domain.TierHigh: {"accommodation": 0.40, "food": 0.20, "activities": 0.30, "transport": 0.05, "extras": 0.05},
}

type scheduleSlot struct {
	Time   string
	Period domain.TimeOfDay
}

// Fixed daily time slots per tier. Higher tiers pack more activities.
var tierSlots = map[domain.BudgetTier][]scheduleSlot{
	domain.TierLow: {
		{"09:00", domain.Morning},
		{"12:30", domain.Afternoon},
		{"15:00", domain.Afternoon},
		{"19:00", domain.Evening},
	},
	domain.TierMid: {
		{"08:30", domain.Morning},
		{"11:00", domain.Morning},
		{"14:00", domain.Afternoon},
		{"17:30", domain.Afternoon},
		{"20:00", domain.Evening},
	},
	domain.TierHigh: {
		{"08:00", domain.Morning},
		{"10:30", domain.Morning},
		{"13:00", domain.Afternoon},
		{"16:00", domain.Afternoon},
		{"19:30", domain.Evening},
		{"22:00", domain.Evening},
	},
}

// ItineraryPlanner builds day-by-day schedules and budget breakdowns for a
// trip window. Activity selection is the only intentionally non-deterministic
// output: the random source is injected so tests can seed it.
type ItineraryPlanner struct {
	catalog *catalog.Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

func NewItineraryPlanner(cat *catalog.Catalog, rng *rand.Rand) *ItineraryPlanner {
	return &ItineraryPlanner{catalog: cat, rng: rng}
}

// ClassifyBudgetTier derives the tier from the trip's daily spending power.
func (p *ItineraryPlanner) ClassifyBudgetTier(totalBudget float64, days int) domain.BudgetTier {
	if days < 1 {
		days = 1
	}
	daily := totalBudget / float64(days)
	switch {
	case daily < midTierDailyBudget:
		return domain.TierLow
	case daily < highTierDailyBudget:
		return domain.TierMid
	default:
		return domain.TierHigh
	}
}

// BudgetBreakdown applies the tier percentage table to the total budget.
// Total carries the original budget, not the sum of the rounded parts.
func (p *ItineraryPlanner) BudgetBreakdown(totalBudget float64, tier domain.BudgetTier) domain.BudgetBreakdown {
	pct := tierPercentages[tier]
	return domain.BudgetBreakdown{
		Accommodation: math.Round(totalBudget * pct["accommodation"]),
		Food:          math.Round(totalBudget * pct["food"]),
		Activities:    math.Round(totalBudget * pct["activities"]),
		Transport:     math.Round(totalBudget * pct["transport"]),
		Extras:        math.Round(totalBudget * pct["extras"]),
		Total:         totalBudget,
	}
}

// DailySchedule fills the tier's time slots with activities matching each
// slot's time of day, one picked at random. Slots with no matching catalog
// entry are skipped; that is acceptable degraded output, not an error.
func (p *ItineraryPlanner) DailySchedule(tier domain.BudgetTier, category string) []domain.ActivityInstance {
	entries := p.catalog.Activities(category, tier)
	slots := tierSlots[tier]

	out := make([]domain.ActivityInstance, 0, len(slots))
	for _, slot := range slots {
		matching := make([]catalog.Entry, 0, len(entries))
		for _, e := range entries {
			if e.TimeOfDay == slot.Period {
				matching = append(matching, e)
			}
		}
		if len(matching) == 0 {
			continue
		}

		picked := matching[p.pick(len(matching))]
		out = append(out, domain.ActivityInstance{
			Time:        slot.Time,
			Title:       picked.Title,
			Description: picked.Title + " - included in the itinerary",
			Cost:        picked.Cost,
		})
	}
	return out
}

// BuildItinerary produces one DayPlan per trip day plus a single budget
// breakdown. An explicit tier override takes precedence over the derived
// tier and is not re-derived. An unknown interest category is a validation
// error, never silently defaulted.
func (p *ItineraryPlanner) BuildItinerary(
	window domain.TripWindow,
	category string,
	tierOverride *domain.BudgetTier,
) ([]domain.DayPlan, domain.BudgetBreakdown, error) {
	if err := window.Validate(); err != nil {
		return nil, domain.BudgetBreakdown{}, err
	}
	if !p.catalog.HasCategory(category) {
		return nil, domain.BudgetBreakdown{}, &domain.ValidationError{
			Field:   "interestCategory",
			Message: fmt.Sprintf("unknown interest category %q", category),
		}
	}

	days := window.Days()
	tier := p.ClassifyBudgetTier(window.TotalBudget, days)
	if tierOverride != nil {
		tier = *tierOverride
	}

	plans := make([]domain.DayPlan, 0, days)
	for day := 1; day <= days; day++ {
		plans = append(plans, domain.DayPlan{
			DayIndex:   day,
			Date:       window.StartDate.AddDate(0, 0, day-1),
			Activities: p.DailySchedule(tier, category),
		})
	}

	return plans, p.BudgetBreakdown(window.TotalBudget, tier), nil
}

// pick serializes access to the shared random source; *rand.Rand is not
// safe for concurrent use.
func (p *ItineraryPlanner) pick(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}
