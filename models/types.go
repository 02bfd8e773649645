// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vote status constants
const (
	StatusPending   = "Pending"
	StatusFinalized = "Finalized"
)

// NumTimeSlots is the fixed number of proposed date/time options per hangout.
const NumTimeSlots = 3

// Request types

type CreateUserRequest struct {
	AuthID string `json:"auth_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Pointer fields distinguish "not provided" from "set to empty".
type UpdateUserRequest struct {
	Name *string `json:"name,omitempty"`
	Bio  *string `json:"bio,omitempty"`
}

type CreateHangoutRequest struct {
	OrganizerID     string            `json:"organizer_id"`
	OrganizerName   string            `json:"organizer_name"`
	OrganizerEmail  string            `json:"organizer_email"`
	Name            string            `json:"name"`
	Activities      []string          `json:"activities"`
	Locations       []string          `json:"locations"`
	Images          map[string]string `json:"images,omitempty"`
	NumParticipants int               `json:"num_participants"`
	Dates           []string          `json:"dates"`
	Times           []string          `json:"times"`
}

type JoinHangoutRequest struct {
	ParticipantID    string `json:"participant_id"`
	ParticipantEmail string `json:"participant_email"`
}

type RejectHangoutRequest struct {
	ParticipantID string `json:"participant_id"`
}

// Options are 1-based slot indexes (1, 2, or 3).
type SlotPreferenceRequest struct {
	Options []int `json:"options"`
}

// Accepted holds the activity names the participant swiped right on,
// in review order. Rejected activities are simply absent.
type SubmitBallotRequest struct {
	ParticipantID string   `json:"participant_id"`
	Accepted      []string `json:"accepted"`
}

// Response types

type CreateHangoutResponse struct {
	Code    int     `json:"hangout_code"`
	Hangout Hangout `json:"hangout"`
}

type JoinHangoutResponse struct {
	Code    int    `json:"hangout_code"`
	Message string `json:"message"`
}

type SubmitBallotResponse struct {
	VoteStatus string `json:"vote_status"`
	VotedNum   int    `json:"voted_num"`
	Finalized  bool   `json:"finalized"`
}

type TimeSlotsResponse struct {
	Dates [NumTimeSlots]SlotOption `json:"dates"`
	Times [NumTimeSlots]SlotOption `json:"times"`
}

type UserHangoutsResponse struct {
	Email          string    `json:"email"`
	PendingCount   int       `json:"pending_count"`
	FinalizedCount int       `json:"finalized_count"`
	Pending        []Hangout `json:"pending_hangouts"`
	Finalized      []Hangout `json:"finalized_hangouts"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// SlotOption is one proposed date or time label with its accumulated
// vote count. Counts are non-negative and only ever increase.
type SlotOption struct {
	Label string `bson:"label" json:"label"`
	Votes int    `bson:"votes" json:"votes"`
}

// ActivityOption is one proposed activity with its accumulated vote
// count. The slice order in Hangout.Activities is the proposal order,
// which tie-breaking and location lookup both depend on.
type ActivityOption struct {
	Name  string `bson:"name" json:"name"`
	Votes int    `bson:"votes" json:"votes"`
}

// Hangout is the shared record a group votes on. It is mutated
// concurrently by participants; counters and membership sets are only
// ever changed through field-scoped atomic updates (see the store
// package), never by writing the whole document back.
type Hangout struct {
	ID                primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	Code              int                      `bson:"hangoutCode" json:"hangout_code"`
	Name              string                   `bson:"hangoutName" json:"hangout_name"`
	OrganizerID       string                   `bson:"organizerId" json:"organizer_id"`
	OrganizerName     string                   `bson:"organizerName" json:"organizer_name"`
	OrganizerEmail    string                   `bson:"organizerEmail" json:"organizer_email"`
	Activities        []ActivityOption         `bson:"activities" json:"activities"`
	Locations         []string                 `bson:"locations" json:"locations"`
	Images            map[string]string        `bson:"images,omitempty" json:"images,omitempty"`
	Dates             [NumTimeSlots]SlotOption `bson:"dates" json:"dates"`
	Times             [NumTimeSlots]SlotOption `bson:"times" json:"times"`
	NumParticipants   int                      `bson:"numParticipants" json:"num_participants"`
	VotedNum          int                      `bson:"votedNum" json:"voted_num"`
	IDParticipants    []string                 `bson:"idParticipants" json:"id_participants"`
	EmailParticipants []string                 `bson:"emailParticipants" json:"email_participants"`
	FinalDate         string                   `bson:"finalDate" json:"final_date"`
	FinalTime         string                   `bson:"finalTime" json:"final_time"`
	FinalActivity     string                   `bson:"finalActivity" json:"final_activity"`
	FinalLocation     string                   `bson:"finalLocation" json:"final_location"`
	VoteStatus        string                   `bson:"voteStatus" json:"vote_status"`
	CreatedAt         time.Time                `bson:"createdAt" json:"created_at"`
	UpdatedAt         time.Time                `bson:"updatedAt,omitempty" json:"updated_at,omitempty"`
}

// ActivityIndex returns the proposal index of the named activity, or -1
// if it was never proposed.
func (h *Hangout) ActivityIndex(name string) int {
	for i, a := range h.Activities {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// HasParticipant reports whether the identifier already joined.
func (h *Hangout) HasParticipant(id string) bool {
	for _, p := range h.IDParticipants {
		if p == id {
			return true
		}
	}
	return false
}

// Outcome is the write-once result of finalization.
type Outcome struct {
	FinalDate     string `bson:"finalDate" json:"final_date"`
	FinalTime     string `bson:"finalTime" json:"final_time"`
	FinalActivity string `bson:"finalActivity" json:"final_activity"`
	FinalLocation string `bson:"finalLocation" json:"final_location"`
}

// User is the per-person document; HangoutIDs lists every hangout the
// user organized or joined.
type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	AuthID     string               `bson:"authId" json:"auth_id"`
	Name       string               `bson:"name" json:"name"`
	Email      string               `bson:"email" json:"email"`
	Bio        string               `bson:"bio,omitempty" json:"bio,omitempty"`
	HangoutIDs []primitive.ObjectID `bson:"hangoutIds" json:"hangout_ids"`
	CreatedAt  time.Time            `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time            `bson:"updatedAt,omitempty" json:"updated_at,omitempty"`
}
