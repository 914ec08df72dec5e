package domain

import (
	"math"
	"time"
)

// TripWindow bounds an itinerary request: a date range and a total budget.
type TripWindow struct {
	StartDate   time.Time
	EndDate     time.Time
	TotalBudget float64
}

// Validate rejects inverted date ranges and negative budgets.
func (w TripWindow) Validate() error {
	if w.EndDate.Before(w.StartDate) {
		return &ValidationError{Field: "endDate", Message: "end date must not be before start date"}
	}
	if w.TotalBudget < 0 {
		return &ValidationError{Field: "totalBudget", Message: "budget must be non-negative"}
	}
	return nil
}

// Days returns the trip duration in calendar days, minimum 1.
func (w TripWindow) Days() int {
	days := int(math.Ceil(w.EndDate.Sub(w.StartDate).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// BudgetTier is a coarse classification of a trip's daily spending power.
// It drives both activity selection and budget-category percentages.
type BudgetTier string

const (
	TierLow  BudgetTier = "low"
	TierMid  BudgetTier = "mid"
	TierHigh BudgetTier = "high"
)

// BudgetBreakdown allocates a trip's total budget across spending categories.
// Category amounts are independently rounded; their sum is allowed to drift
// from Total by rounding, which is accepted rather than corrected.
type BudgetBreakdown struct {
	Accommodation float64
	Food          float64
	Activities    float64
	Transport     float64
	Extras        float64
	Total         float64
}

// TimeOfDay tags catalog activities and schedule slots.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// ActivityInstance is one scheduled activity within a day plan.
type ActivityInstance struct {
	Time        string // "HH:MM"
	Title       string
	Description string
	Cost        float64
}

// DayPlan is the schedule for a single day of a trip.
type DayPlan struct {
	DayIndex   int
	Date       time.Time
	Activities []ActivityInstance
}
