// Package catalog holds the static activity reference data the itinerary
// planner draws from. The catalog is loaded once at startup and read-only
// thereafter, so concurrent requests share it without locking.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"travelbrain/internal/domain"
)

// Entry is one bookable activity template.
type Entry struct {
	Title     string           `json:"title"`
	Cost      float64          `json:"cost"`
	TimeOfDay domain.TimeOfDay `json:"timeOfDay"`
}

// Catalog maps (interest category, budget tier) to activity entries.
type Catalog struct {
	entries map[string]map[domain.BudgetTier][]Entry
}

// New validates a set of entries and wraps them into a Catalog. An empty
// catalog is a configuration error: the planner refuses to initialize
// without one.
func New(entries map[string]map[domain.BudgetTier][]Entry) (*Catalog, error) {
	c := &Catalog{entries: entries}
	if len(c.Categories()) == 0 {
		return nil, errors.New("catalog contains no activity categories")
	}

	for category, tiers := range entries {
		for tier, list := range tiers {
			for i, e := range list {
				if e.Title == "" || e.Cost < 0 {
					return nil, fmt.Errorf("catalog: category %q tier %q entry %d is invalid", category, tier, i)
				}
				switch e.TimeOfDay {
				case domain.Morning, domain.Afternoon, domain.Evening:
				default:
					return nil, fmt.Errorf("catalog: category %q tier %q entry %d: unknown time of day %q", category, tier, i, e.TimeOfDay)
				}
			}
		}
	}

	return c, nil
}

// Load reads the activity catalog from a JSON seed file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: read %q: %w", path, err)
	}

	var entries map[string]map[domain.BudgetTier][]Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("load catalog: parse %q: %w", path, err)
	}

	c, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %q: %w", path, err)
	}
	return c, nil
}

// Activities returns the entries for a category and tier; nil when the
// combination has no entries.
func (c *Catalog) Activities(category string, tier domain.BudgetTier) []Entry {
	tiers, ok := c.entries[category]
	if !ok {
		return nil
	}
	return tiers[tier]
}

// HasCategory reports whether any tier of the category has entries.
func (c *Catalog) HasCategory(category string) bool {
	for _, list := range c.entries[category] {
		if len(list) > 0 {
			return true
		}
	}
	return false
}

// Categories lists the interest categories with at least one entry, sorted.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.entries))
	for category := range c.entries {
		if c.HasCategory(category) {
			out = append(out, category)
		}
	}
	sort.Strings(out)
	return out
}
