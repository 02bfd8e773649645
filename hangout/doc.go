// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package hangout implements the hangout lifecycle and consensus engine.

# Lifecycle

A hangout has exactly two states:

	Pending   → created, collecting enrollment and votes
	Finalized → outcome decided, write-once, terminal

The Service is the only component that flips voteStatus. The transition
fires when a participant-finished-voting event makes votedNum equal
numParticipants: the final date, time, activity, and location are
computed by the tally package, written with a conditional
status-still-Pending update, and the notifier is invoked exactly once
with the deduplicated participant emails. A second finished-voting event
after finalization finds the condition gone and changes nothing.

# Operations

	svc := hangout.NewService(store, notifier)

	svc.Create(ctx, req)                     // organizer creates, code generated
	svc.Join(ctx, code, id, email)           // enrollment with precondition checks
	svc.Reject(ctx, code, id)                // decline before joining, capacity -1
	svc.RecordSlotPreference(ctx, code, ns)  // boost selected date/time options
	svc.SubmitBallot(ctx, code, id, liked)   // seal swipe decisions, maybe finalize
	svc.Get(ctx, code)                       // current record

plus user-document operations (CreateUser, GetUser, UpdateUser,
ListUserHangouts).

# Concurrency

Every mutation is read → compute → conditional field-scoped write
against the Store interface. Counters and membership sets are changed
with atomic store primitives ($inc, $addToSet), never by writing the
whole record back, so concurrent participants acting on disjoint fields
commute and racing increments on the same counter are never lost. A
conditional write that matches nothing surfaces
models.ErrConcurrentUpdate; callers retry from a fresh read, and no vote
is ever partially applied.
*/
package hangout
