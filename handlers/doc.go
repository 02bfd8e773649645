// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the YouPick API.

# Handler Types

Each handler is a struct holding its service dependencies:

  - HangoutHandler: Hangout lifecycle (create, fetch, join, reject,
    slot preferences, ballots)
  - UserHandler: User profiles and per-user hangout lists
  - AIHandler: Activity and image suggestion proxying

Handlers are created via constructor functions:

	hangoutHandler := handlers.NewHangoutHandler(svc)

# Hangout Lifecycle

Hangouts progress through two states: Pending → Finalized

	POST /hangouts                  → CreateHangout (returns hangout_code)
	GET  /hangouts/{code}           → GetHangout
	GET  /hangouts/{code}/timeslots → GetTimeSlots
	POST /hangouts/{code}/join      → Join
	POST /hangouts/{code}/reject    → Reject (shrinks capacity)
	POST /hangouts/{code}/slots     → SlotPreference
	POST /hangouts/{code}/ballot    → SubmitBallot

The final ballot to arrive triggers the one-time Finalized transition
inside the service; handlers only report the resulting vote status.

# Error Mapping

Service sentinels translate to HTTP statuses in writeServiceError:
validation failures are 400, missing records are 404, precondition and
lifecycle violations (self-join, duplicate join, full hangout,
late ballots, lost conditional writes) are 409, and storage outages
are 503. Anything unexpected is logged and returned as a bare 500.

# Suggestion Proxy

AIHandler forwards query parameters to the external suggestion service
and relays its JSON payloads. When no suggestion service is configured
the routes answer 503.
*/
package handlers
