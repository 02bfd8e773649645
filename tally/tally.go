// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "github.com/youpick/backend/models"

// WinningSlot selects the plurality winner among the three proposed
// slots. Ties resolve to the earliest-declared option: option 1 is
// compared against option 2 keeping option 1 on equal counts, and the
// survivor is compared against option 3 the same way. With all counts
// at zero, option 1 wins by that rule.
func WinningSlot(slots [models.NumTimeSlots]models.SlotOption) string {
	best := slots[0]
	for _, s := range slots[1:] {
		if s.Votes > best.Votes {
			best = s
		}
	}
	return best.Label
}

// WinningActivity selects the activity with the strictly highest vote
// count, resolving ties to the earliest-proposed activity, and returns
// it together with its paired location. Locations are positionally
// aligned with the activity proposal order; a missing location entry
// yields an empty location rather than a panic.
func WinningActivity(activities []models.ActivityOption, locations []string) (activity, location string) {
	if len(activities) == 0 {
		return "", ""
	}

	winner := 0
	for i, a := range activities[1:] {
		if a.Votes > activities[winner].Votes {
			winner = i + 1
		}
	}

	activity = activities[winner].Name
	if winner < len(locations) {
		location = locations[winner]
	}
	return activity, location
}

// Outcome reduces a fully-voted hangout to its final date, time,
// activity, and location. The date and time winners are selected
// independently, so they need not come from the same option index.
func Outcome(h *models.Hangout) models.Outcome {
	activity, location := WinningActivity(h.Activities, h.Locations)
	return models.Outcome{
		FinalDate:     WinningSlot(h.Dates),
		FinalTime:     WinningSlot(h.Times),
		FinalActivity: activity,
		FinalLocation: location,
	}
}
