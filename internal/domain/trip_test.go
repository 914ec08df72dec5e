package domain

import (
	"testing"
	"time"
)

func TestTripWindowDays(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same day counts as one", start, 1},
		{"three full days", start.AddDate(0, 0, 3), 3},
		{"partial day rounds up", start.Add(36 * time.Hour), 2},
		{"one week", start.AddDate(0, 0, 7), 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := TripWindow{StartDate: start, EndDate: tc.end}
			if got := w.Days(); got != tc.want {
				t.Fatalf("Days() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestTripWindowValidate(t *testing.T) {
	start := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		window  TripWindow
		wantErr bool
	}{
		{"valid window", TripWindow{StartDate: start, EndDate: start.AddDate(0, 0, 2), TotalBudget: 500}, false},
		{"zero-length window", TripWindow{StartDate: start, EndDate: start, TotalBudget: 0}, false},
		{"inverted dates", TripWindow{StartDate: start, EndDate: start.AddDate(0, 0, -1), TotalBudget: 500}, true},
		{"negative budget", TripWindow{StartDate: start, EndDate: start.AddDate(0, 0, 2), TotalBudget: -1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.window.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
