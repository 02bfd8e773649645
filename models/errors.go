// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Lookup failures. Surfaced to the caller, never retried automatically.
var (
	ErrHangoutNotFound     = errors.New("hangout not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrParticipantNotFound = errors.New("participant has not joined this hangout")
)

// Enrollment precondition violations. Detected before any mutation is
// attempted, so a failed call has no side effect.
var (
	ErrSelfJoin          = errors.New("organizer cannot join their own hangout")
	ErrAlreadyJoined     = errors.New("participant already joined this hangout")
	ErrCapacityExceeded  = errors.New("hangout is full")
	ErrRejectUnavailable = errors.New("hangout can no longer be declined")
)

// Lifecycle and concurrency failures.
var (
	// ErrAlreadyFinalized marks operations arriving after the outcome
	// was decided; the outcome fields are write-once and unchanged.
	ErrAlreadyFinalized = errors.New("hangout is already finalized")

	// ErrConcurrentUpdate means a conditional write matched nothing
	// because another writer got there first; retry from a fresh read.
	ErrConcurrentUpdate = errors.New("concurrent update lost")
)

// ErrUpstreamUnavailable wraps storage or collaborator failures that
// are retryable from the caller's point of view.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// ErrValidation marks malformed input rejected before any mutation.
var ErrValidation = errors.New("validation error")
