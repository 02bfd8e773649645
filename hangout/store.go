// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hangout

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/youpick/backend/models"
)

// Store is the document-store contract the consensus engine runs on.
// Every mutator is a field-scoped conditional write: it touches only
// the named fields and reports models.ErrConcurrentUpdate when its
// precondition no longer held at write time, so the engine can retry
// from a fresh read instead of clobbering another writer.
type Store interface {
	// InsertHangout stores a new hangout and returns its storage id.
	InsertHangout(ctx context.Context, h *models.Hangout) (primitive.ObjectID, error)

	// FindHangoutByCode returns models.ErrHangoutNotFound when no live
	// hangout carries the code.
	FindHangoutByCode(ctx context.Context, code int) (*models.Hangout, error)

	// FindHangoutsByIDs returns the hangouts for the given storage ids,
	// silently skipping ids that no longer resolve.
	FindHangoutsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Hangout, error)

	// AddParticipant appends the identifier and email to the membership
	// sets, guarded so the identifier is added at most once and the
	// declared capacity is never oversubscribed.
	AddParticipant(ctx context.Context, code int, participantID, email string) error

	// ReduceCapacity decrements numParticipants by one, guarded so the
	// capacity never drops below the progress already recorded
	// (votedNum and joined-participant count) and only while Pending.
	ReduceCapacity(ctx context.Context, code int) error

	// IncrementSlotVotes atomically increments the date and time vote
	// counters for each zero-based option index, only while Pending.
	IncrementSlotVotes(ctx context.Context, code int, options []int) error

	// RecordBallot atomically increments the vote counter of each
	// accepted activity (by zero-based proposal index) together with
	// votedNum, guarded by status Pending and votedNum < numParticipants.
	RecordBallot(ctx context.Context, code int, activityIdx []int) error

	// Finalize writes the outcome and flips the status to Finalized in
	// one conditional update that only matches while the status is still
	// Pending. It reports whether this caller won the transition; a
	// false return with nil error means another writer finalized first.
	Finalize(ctx context.Context, code int, out models.Outcome) (bool, error)

	// InsertUser stores a new user document.
	InsertUser(ctx context.Context, u *models.User) (primitive.ObjectID, error)

	// FindUserByAuthID returns models.ErrUserNotFound when absent.
	FindUserByAuthID(ctx context.Context, authID string) (*models.User, error)

	// FindUserByEmail returns models.ErrUserNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateUserFields applies only the given fields to the user
	// document, never requiring the caller to know the rest of it.
	UpdateUserFields(ctx context.Context, authID string, fields map[string]any) error

	// AppendUserHangout adds the hangout storage id to the user's
	// personal hangout list (at most once).
	AppendUserHangout(ctx context.Context, authID string, hangoutID primitive.ObjectID) error
}
