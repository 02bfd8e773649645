// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally implements the pure vote-aggregation rules.

# Slot Tally

WinningSlot picks the plurality winner among the three proposed date
options (or, independently, the three time options):

	finalDate := tally.WinningSlot(hangout.Dates)

Ties resolve first-seen-wins: option 1 beats option 2 on equal counts,
and the survivor beats option 3 on equal counts. Three zero counts
therefore yield option 1, the default when nobody expressed a
preference, rather than an error.

# Activity Winner

WinningActivity picks the activity with the strictly highest vote count,
resolving ties to the earliest-proposed activity (lowest index in the
proposal order). The winner's positionally-paired location is returned
alongside it.

# Finalization

Outcome combines both reductions into the write-once result recorded
when a hangout finalizes. It is called exactly once per hangout, over
whatever counts have accumulated by the time the last participant
finishes voting.
*/
package tally
