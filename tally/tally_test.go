// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"testing"

	"github.com/youpick/backend/models"
)

func slots(labels [3]string, votes [3]int) [models.NumTimeSlots]models.SlotOption {
	var out [models.NumTimeSlots]models.SlotOption
	for i := range out {
		out[i] = models.SlotOption{Label: labels[i], Votes: votes[i]}
	}
	return out
}

func TestWinningSlot(t *testing.T) {
	labels := [3]string{"Fri", "Sat", "Sun"}

	tests := []struct {
		name     string
		votes    [3]int
		expected string
	}{
		{
			name:     "clear winner",
			votes:    [3]int{1, 3, 2},
			expected: "Sat",
		},
		{
			name:     "tie keeps earliest option",
			votes:    [3]int{2, 2, 1},
			expected: "Fri",
		},
		{
			name:     "later tie keeps earlier of the pair",
			votes:    [3]int{1, 3, 3},
			expected: "Sat",
		},
		{
			name:     "all zero defaults to first option",
			votes:    [3]int{0, 0, 0},
			expected: "Fri",
		},
		{
			name:     "last option can win outright",
			votes:    [3]int{1, 2, 5},
			expected: "Sun",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WinningSlot(slots(labels, tt.votes))
			if got != tt.expected {
				t.Errorf("WinningSlot(%v) = %q, want %q", tt.votes, got, tt.expected)
			}
		})
	}
}

func TestWinningActivity(t *testing.T) {
	tests := []struct {
		name         string
		activities   []models.ActivityOption
		locations    []string
		wantActivity string
		wantLocation string
	}{
		{
			name: "clear winner with paired location",
			activities: []models.ActivityOption{
				{Name: "Bowling", Votes: 1},
				{Name: "Karaoke", Votes: 4},
				{Name: "Hiking", Votes: 2},
			},
			locations:    []string{"Main St Lanes", "Sing City", "Eagle Trail"},
			wantActivity: "Karaoke",
			wantLocation: "Sing City",
		},
		{
			name: "tie resolves to earliest proposed",
			activities: []models.ActivityOption{
				{Name: "Bowling", Votes: 3},
				{Name: "Karaoke", Votes: 3},
			},
			locations:    []string{"Main St Lanes", "Sing City"},
			wantActivity: "Bowling",
			wantLocation: "Main St Lanes",
		},
		{
			name: "no votes at all defaults to first",
			activities: []models.ActivityOption{
				{Name: "Bowling"},
				{Name: "Karaoke"},
			},
			locations:    []string{"Main St Lanes", "Sing City"},
			wantActivity: "Bowling",
			wantLocation: "Main St Lanes",
		},
		{
			name: "missing location entry yields empty location",
			activities: []models.ActivityOption{
				{Name: "Bowling", Votes: 0},
				{Name: "Karaoke", Votes: 2},
			},
			locations:    []string{"Main St Lanes"},
			wantActivity: "Karaoke",
			wantLocation: "",
		},
		{
			name:         "no activities",
			activities:   nil,
			locations:    nil,
			wantActivity: "",
			wantLocation: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activity, location := WinningActivity(tt.activities, tt.locations)
			if activity != tt.wantActivity {
				t.Errorf("activity = %q, want %q", activity, tt.wantActivity)
			}
			if location != tt.wantLocation {
				t.Errorf("location = %q, want %q", location, tt.wantLocation)
			}
		})
	}
}

func TestOutcomeIndependentAxes(t *testing.T) {
	h := &models.Hangout{
		Activities: []models.ActivityOption{
			{Name: "Bowling", Votes: 1},
			{Name: "Karaoke", Votes: 2},
		},
		Locations: []string{"Main St Lanes", "Sing City"},
		Dates:     slots([3]string{"Fri", "Sat", "Sun"}, [3]int{0, 2, 1}),
		Times:     slots([3]string{"18:00", "19:00", "20:00"}, [3]int{3, 0, 0}),
	}

	out := Outcome(h)

	// Date winner is option 2 while time winner is option 1; the axes
	// are tallied separately.
	if out.FinalDate != "Sat" {
		t.Errorf("FinalDate = %q, want %q", out.FinalDate, "Sat")
	}
	if out.FinalTime != "18:00" {
		t.Errorf("FinalTime = %q, want %q", out.FinalTime, "18:00")
	}
	if out.FinalActivity != "Karaoke" || out.FinalLocation != "Sing City" {
		t.Errorf("activity/location = %q/%q, want Karaoke/Sing City", out.FinalActivity, out.FinalLocation)
	}
}
