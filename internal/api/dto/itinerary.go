package dto

// Dates travel as "YYYY-MM-DD" strings; handlers parse and validate them.
type GenerateItineraryRequest struct {
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	TotalBudget      float64 `json:"total_budget"`
	InterestCategory string  `json:"interest_category"`
	BudgetTier       string  `json:"budget_tier,omitempty"`
}

type ActivityResponse struct {
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

type DayPlanResponse struct {
	Day        int                `json:"day"`
	Date       string             `json:"date"`
	Activities []ActivityResponse `json:"activities"`
}

type BudgetBreakdownResponse struct {
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
	Extras        float64 `json:"extras"`
	Total         float64 `json:"total"`
}

type GenerateItineraryResponse struct {
	BudgetTier string                  `json:"budget_tier"`
	DayPlans   []DayPlanResponse       `json:"day_plans"`
	Budget     BudgetBreakdownResponse `json:"budget"`
}
