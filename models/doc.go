// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateUserRequest: auth_id, name, email
  - UpdateUserRequest: name, bio (pointer fields, partial update)
  - CreateHangoutRequest: organizer info, activities, locations, dates, times
  - JoinHangoutRequest: participant_id, participant_email
  - RejectHangoutRequest: participant_id
  - SlotPreferenceRequest: options (1-based slot indexes)
  - SubmitBallotRequest: participant_id, accepted activity names

# Response Types

Types for JSON responses:

  - CreateHangoutResponse: hangout_code, hangout
  - JoinHangoutResponse: hangout_code, message
  - SubmitBallotResponse: vote_status, voted_num, finalized
  - TimeSlotsResponse: the three date and time proposals
  - UserHangoutsResponse: pending/finalized split of a user's hangouts
  - ErrorResponse: error, message

# Domain Types

Internal data structures, stored as MongoDB documents:

  - Hangout: the aggregate the group votes on
  - SlotOption: one (label, votes) date or time proposal
  - ActivityOption: one (name, votes) activity proposal, in proposal order
  - Outcome: the write-once finalization result
  - User: per-person document with hangout membership

# Constants

Status values:

	StatusPending   = "Pending"
	StatusFinalized = "Finalized"

A hangout always proposes exactly NumTimeSlots (3) date and time options.
*/
package models
