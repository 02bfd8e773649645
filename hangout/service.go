// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hangout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/youpick/backend/codegen"
	"github.com/youpick/backend/models"
	"github.com/youpick/backend/notify"
	"github.com/youpick/backend/tally"
)

// codeAttempts bounds the regenerate-on-collision loop at creation.
const codeAttempts = 5

// Service owns the hangout lifecycle: creation, enrollment, preference
// collection, vote aggregation, and the one-time Pending → Finalized
// transition. It is the only component that flips voteStatus.
type Service struct {
	store    Store
	notifier notify.Notifier
}

func NewService(store Store, notifier notify.Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// Create stores a new hangout in the Pending state with zeroed vote
// counters and a freshly generated share code, and records the hangout
// on the organizer's personal list.
func (s *Service) Create(ctx context.Context, req models.CreateHangoutRequest) (*models.Hangout, error) {
	if len(req.Activities) == 0 {
		return nil, fmt.Errorf("%w: at least one activity is required", models.ErrValidation)
	}
	if len(req.Locations) != len(req.Activities) {
		return nil, fmt.Errorf("%w: locations must pair with activities", models.ErrValidation)
	}
	if req.NumParticipants < 1 {
		return nil, fmt.Errorf("%w: num_participants must be at least 1", models.ErrValidation)
	}
	if len(req.Dates) != models.NumTimeSlots || len(req.Times) != models.NumTimeSlots {
		return nil, fmt.Errorf("%w: exactly %d date and time options are required", models.ErrValidation, models.NumTimeSlots)
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	h := &models.Hangout{
		Code:            code,
		Name:            req.Name,
		OrganizerID:     req.OrganizerID,
		OrganizerName:   req.OrganizerName,
		OrganizerEmail:  req.OrganizerEmail,
		Locations:       req.Locations,
		Images:          req.Images,
		NumParticipants: req.NumParticipants,
		VoteStatus:      models.StatusPending,
		CreatedAt:       time.Now(),
	}
	for _, name := range req.Activities {
		h.Activities = append(h.Activities, models.ActivityOption{Name: name})
	}
	for i := 0; i < models.NumTimeSlots; i++ {
		h.Dates[i] = models.SlotOption{Label: req.Dates[i]}
		h.Times[i] = models.SlotOption{Label: req.Times[i]}
	}

	id, err := s.store.InsertHangout(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("insert hangout: %w", err)
	}
	h.ID = id

	// The organizer tracks the hangout too, even though they never vote.
	if err := s.store.AppendUserHangout(ctx, req.OrganizerID, id); err != nil {
		slog.Warn("failed to record hangout on organizer", "code", code, "error", err)
	}

	slog.Info("hangout created", "code", code, "organizer", req.OrganizerID, "activities", len(h.Activities))
	return h, nil
}

// Get returns the hangout for the code.
func (s *Service) Get(ctx context.Context, code int) (*models.Hangout, error) {
	return s.store.FindHangoutByCode(ctx, code)
}

// Join enrolls a participant. Preconditions are checked in order
// (existence, creator exclusion, uniqueness, capacity) and a failed
// precondition leaves the record untouched. The membership write itself
// is conditional, so two racing joins cannot both slip past capacity.
func (s *Service) Join(ctx context.Context, code int, participantID, email string) error {
	h, err := s.store.FindHangoutByCode(ctx, code)
	if err != nil {
		return err
	}

	if h.OrganizerID == participantID {
		return models.ErrSelfJoin
	}
	if h.HasParticipant(participantID) {
		return models.ErrAlreadyJoined
	}
	if len(h.IDParticipants) >= h.NumParticipants || h.VotedNum >= h.NumParticipants {
		return models.ErrCapacityExceeded
	}

	if err := s.store.AddParticipant(ctx, code, participantID, email); err != nil {
		return err
	}

	// Best-effort: joining still succeeded if the user document is
	// missing, the hangout just won't show on their personal list.
	if err := s.store.AppendUserHangout(ctx, participantID, h.ID); err != nil {
		slog.Warn("failed to record hangout on participant", "code", code, "participant", participantID, "error", err)
	}

	slog.Info("participant joined", "code", code, "participant", participantID)
	return nil
}

// Reject lets an invited user decline before joining. The declared
// capacity shrinks by one so the remaining cohort can still reach full
// agreement. Rejecting is only possible while Pending, only for users
// who never joined, and only while capacity stays at or above the
// progress already recorded.
func (s *Service) Reject(ctx context.Context, code int, participantID string) error {
	h, err := s.store.FindHangoutByCode(ctx, code)
	if err != nil {
		return err
	}

	if h.VoteStatus != models.StatusPending {
		return models.ErrRejectUnavailable
	}
	if h.HasParticipant(participantID) {
		// Joined users are counted in the cohort; they finish voting
		// instead of declining.
		return models.ErrRejectUnavailable
	}
	if h.NumParticipants-1 < h.VotedNum || h.NumParticipants-1 < len(h.IDParticipants) {
		return models.ErrRejectUnavailable
	}

	if err := s.store.ReduceCapacity(ctx, code); err != nil {
		return err
	}
	slog.Info("invite rejected", "code", code, "participant", participantID)

	// The shrunken cohort may already be complete.
	if _, err := s.maybeFinalize(ctx, code); err != nil {
		return err
	}
	return nil
}

// RecordSlotPreference boosts the date and time vote counters for each
// selected option. A participant may boost several options; selecting
// none is a valid no-op (the all-zero tie-break default covers it).
// Options are 1-based as presented to participants.
func (s *Service) RecordSlotPreference(ctx context.Context, code int, options []int) error {
	seen := make(map[int]bool, len(options))
	var idx []int
	for _, opt := range options {
		if opt < 1 || opt > models.NumTimeSlots {
			return fmt.Errorf("%w: slot option %d out of range", models.ErrValidation, opt)
		}
		if !seen[opt] {
			seen[opt] = true
			idx = append(idx, opt-1)
		}
	}

	h, err := s.store.FindHangoutByCode(ctx, code)
	if err != nil {
		return err
	}
	if h.VoteStatus != models.StatusPending {
		return models.ErrAlreadyFinalized
	}

	if len(idx) == 0 {
		return nil
	}

	if err := s.store.IncrementSlotVotes(ctx, code, idx); err != nil {
		return err
	}

	slog.Info("slot preference recorded", "code", code, "options", len(idx))
	return nil
}

// SubmitBallot seals a participant's swipe decisions: each accepted
// activity's counter is incremented and the participant is counted as
// finished voting, in one atomic write. When that makes votedNum reach
// numParticipants the hangout finalizes. Submissions arriving after
// finalization change nothing.
func (s *Service) SubmitBallot(ctx context.Context, code int, participantID string, accepted []string) (*models.SubmitBallotResponse, error) {
	h, err := s.store.FindHangoutByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if h.VoteStatus != models.StatusPending {
		return nil, models.ErrAlreadyFinalized
	}
	if !h.HasParticipant(participantID) {
		return nil, models.ErrParticipantNotFound
	}

	seen := make(map[int]bool, len(accepted))
	idx := make([]int, 0, len(accepted))
	for _, name := range accepted {
		i := h.ActivityIndex(name)
		if i < 0 {
			return nil, fmt.Errorf("%w: unknown activity %q", models.ErrValidation, name)
		}
		if !seen[i] {
			seen[i] = true
			idx = append(idx, i)
		}
	}

	if err := s.store.RecordBallot(ctx, code, idx); err != nil {
		return nil, err
	}
	slog.Info("ballot recorded", "code", code, "participant", participantID, "accepted", len(idx))

	finalized, err := s.maybeFinalize(ctx, code)
	if err != nil {
		return nil, err
	}

	h, err = s.store.FindHangoutByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return &models.SubmitBallotResponse{
		VoteStatus: h.VoteStatus,
		VotedNum:   h.VotedNum,
		Finalized:  finalized,
	}, nil
}

// maybeFinalize runs the one-time transition when the cohort is
// complete. The outcome is computed from a fresh read and written with
// a conditional update that only matches while the status is still
// Pending; the loser of a concurrent race treats the outcome as already
// decided and does not notify.
func (s *Service) maybeFinalize(ctx context.Context, code int) (bool, error) {
	h, err := s.store.FindHangoutByCode(ctx, code)
	if err != nil {
		return false, err
	}
	if h.VoteStatus != models.StatusPending || h.VotedNum < h.NumParticipants {
		return false, nil
	}

	out := tally.Outcome(h)
	won, err := s.store.Finalize(ctx, code, out)
	if err != nil {
		return false, fmt.Errorf("finalize hangout: %w", err)
	}
	if !won {
		return false, nil
	}

	slog.Info("hangout finalized", "code", code,
		"activity", out.FinalActivity, "location", out.FinalLocation,
		"date", out.FinalDate, "time", out.FinalTime)

	emails := dedupe(append([]string{h.OrganizerEmail}, h.EmailParticipants...))
	summary := notify.Summary{
		HangoutName:   h.Name,
		FinalActivity: out.FinalActivity,
		FinalLocation: out.FinalLocation,
		FinalDate:     out.FinalDate,
		FinalTime:     out.FinalTime,
	}
	go func() {
		if err := s.notifier.HangoutFinalized(context.WithoutCancel(ctx), emails, summary); err != nil {
			slog.Warn("finalization notification failed", "code", code, "error", err)
		}
	}()

	return true, nil
}

// uniqueCode draws codes until one is free, bounded by codeAttempts.
func (s *Service) uniqueCode(ctx context.Context) (int, error) {
	for i := 0; i < codeAttempts; i++ {
		code, err := codegen.HangoutCode()
		if err != nil {
			return 0, err
		}
		_, err = s.store.FindHangoutByCode(ctx, code)
		if errors.Is(err, models.ErrHangoutNotFound) {
			return code, nil
		}
		if err != nil {
			return 0, fmt.Errorf("check code availability: %w", err)
		}
	}
	return 0, fmt.Errorf("%w: could not find a free hangout code", models.ErrUpstreamUnavailable)
}

func dedupe(emails []string) []string {
	seen := make(map[string]bool, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
