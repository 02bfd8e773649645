// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hangout_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youpick/backend/hangout"
	"github.com/youpick/backend/models"
	"github.com/youpick/backend/notify"
	"github.com/youpick/backend/store"
	"github.com/youpick/backend/testutil"
)

// recordingNotifier captures the finalization email so tests can wait
// for the fire-and-forget send.
type recordingNotifier struct {
	sent chan sentMail
}

type sentMail struct {
	emails  []string
	summary notify.Summary
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan sentMail, 1)}
}

func (r *recordingNotifier) HangoutFinalized(ctx context.Context, emails []string, s notify.Summary) error {
	r.sent <- sentMail{emails: emails, summary: s}
	return nil
}

func (r *recordingNotifier) wait(t *testing.T) sentMail {
	t.Helper()
	select {
	case m := <-r.sent:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for finalization notification")
		return sentMail{}
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := testutil.NewTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.CreateHangoutRequest)
	}{
		{
			name:   "no activities",
			mutate: func(r *models.CreateHangoutRequest) { r.Activities = nil; r.Locations = nil },
		},
		{
			name:   "unpaired locations",
			mutate: func(r *models.CreateHangoutRequest) { r.Locations = r.Locations[:1] },
		},
		{
			name:   "zero participants",
			mutate: func(r *models.CreateHangoutRequest) { r.NumParticipants = 0 },
		},
		{
			name:   "wrong date count",
			mutate: func(r *models.CreateHangoutRequest) { r.Dates = r.Dates[:2] },
		},
		{
			name:   "wrong time count",
			mutate: func(r *models.CreateHangoutRequest) { r.Times = append(r.Times, "21:00") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.HangoutRequest(2)
			tt.mutate(&req)

			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestCreateInitialState(t *testing.T) {
	svc, _ := testutil.NewTestService(t)

	h := testutil.CreateTestHangout(t, svc, 3)

	assert.GreaterOrEqual(t, h.Code, 10000)
	assert.LessOrEqual(t, h.Code, 99999)
	assert.Equal(t, models.StatusPending, h.VoteStatus)
	assert.Zero(t, h.VotedNum)
	assert.Empty(t, h.IDParticipants)
	for _, a := range h.Activities {
		assert.Zero(t, a.Votes)
	}
	for i := 0; i < models.NumTimeSlots; i++ {
		assert.Zero(t, h.Dates[i].Votes)
		assert.Zero(t, h.Times[i].Votes)
	}
}

func TestJoinPreconditions(t *testing.T) {
	svc, _ := testutil.NewTestService(t)
	ctx := context.Background()

	req := testutil.HangoutRequest(1)
	h, err := svc.Create(ctx, req)
	require.NoError(t, err)

	t.Run("unknown code", func(t *testing.T) {
		missing := h.Code + 1
		if missing > 99999 {
			missing = 10000
		}
		err := svc.Join(ctx, missing, "p1", "p1@example.com")
		assert.ErrorIs(t, err, models.ErrHangoutNotFound)
	})

	t.Run("organizer cannot join", func(t *testing.T) {
		err := svc.Join(ctx, h.Code, req.OrganizerID, req.OrganizerEmail)
		assert.ErrorIs(t, err, models.ErrSelfJoin)
	})

	t.Run("duplicate join", func(t *testing.T) {
		require.NoError(t, svc.Join(ctx, h.Code, "p1", "p1@example.com"))
		err := svc.Join(ctx, h.Code, "p1", "p1@example.com")
		assert.ErrorIs(t, err, models.ErrAlreadyJoined)
	})

	t.Run("capacity exceeded", func(t *testing.T) {
		err := svc.Join(ctx, h.Code, "p2", "p2@example.com")
		assert.ErrorIs(t, err, models.ErrCapacityExceeded)
	})
}

func TestJoinRecordsMembership(t *testing.T) {
	svc, _ := testutil.NewTestService(t)
	ctx := context.Background()

	h := testutil.CreateTestHangout(t, svc, 2)
	id, email := testutil.JoinTestParticipant(t, svc, h.Code)

	got, err := svc.Get(ctx, h.Code)
	require.NoError(t, err)
	assert.Equal(t, []string{id}, got.IDParticipants)
	assert.Equal(t, []string{email}, got.EmailParticipants)
	assert.Zero(t, got.VotedNum, "joining must not count as voting")
}

func TestRejectShrinksCapacity(t *testing.T) {
	svc, _ := testutil.NewTestService(t)
	ctx := context.Background()

	h := testutil.CreateTestHangout(t, svc, 3)

	require.NoError(t, svc.Reject(ctx, h.Code, "decliner"))

	got, err := svc.Get(ctx, h.Code)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NumParticipants)
	assert.Equal(t, models.StatusPending, got.VoteStatus)
}

func TestRejectUnavailable(t *testing.T) {
	svc, _ := testutil.NewTestService(t)
	ctx := context.Background()

	t.Run("joined participant cannot decline", func(t *testing.T) {
		h := testutil.CreateTestHangout(t, svc, 2)
		id, _ := testutil.JoinTestParticipant(t, svc, h.Code)

		err := svc.Reject(ctx, h.Code, id)
		assert.ErrorIs(t, err, models.ErrRejectUnavailable)
	})

	t.Run("capacity cannot drop below joined members", func(t *testing.T) {
		h := testutil.CreateTestHangout(t, svc, 1)
		testutil.JoinTestParticipant(t, svc, h.Code)

		err := svc.Reject(ctx, h.Code, "decliner")
		assert.ErrorIs(t, err, models.ErrRejectUnavailable)
	})

	t.Run("finalized hangout cannot be declined", func(t *testing.T) {
		h := testutil.CreateTestHangout(t, svc, 1)
		id, _ := testutil.JoinTestParticipant(t, svc, h.Code)
		_, err := svc.SubmitBallot(ctx, h.Code, id, []string{"Bowling"})
		require.NoError(t, err)

		err = svc.Reject(ctx, h.Code, "decliner")
		assert.ErrorIs(t, err, models.ErrRejectUnavailable)
	})
}

func TestRejectFinalizesCompleteCohort(t *testing.T) {
	mem := store.NewMemory()
	notifier := newRecordingNotifier()
	svc := hangout.NewService(mem, notifier)
	ctx := context.Background()

	req := testutil.HangoutRequest(2)
	h, err := svc.Create(ctx, req)
	require.NoError(t, err)

	id, _ := testutil.JoinTestParticipant(t, svc, h.Code)
	resp, err := svc.SubmitBallot(ctx, h.Code, id, []string{"Karaoke"})
	require.NoError(t, err)
	assert.False(t, resp.Finalized, "one of two votes must not finalize")

	// The second invitee declines; the remaining cohort of one has
	// already voted, so the hangout finalizes.
	require.NoError(t, svc.Reject(ctx, h.Code, "decliner"))

	got, err := svc.Get(ctx, h.Code)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinalized, got.VoteStatus)
	assert.Equal(t, "Karaoke", got.FinalActivity)

	notifier.wait(t)
}

func TestRecordSlotPreference(t *testing.T) {
	svc, _ := testutil.NewTestService(t)
	ctx := context.Background()

	h := testutil.CreateTestHangout(t, svc, 2)

	t.Run("out of range option", func(t *testing.T) {
		err := svc.RecordSlotPreference(ctx, h.Code, []int{0})
		assert.ErrorIs(t, err, models.ErrValidation)
		err = svc.RecordSlotPreference(ctx, h.Code, []int{4})
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("empty selection is a no-op", func(t *testing.T) {
		require.NoError(t, svc.RecordSlotPreference(ctx, h.Code, nil))

		got, err := svc.Get(ctx, h.Code)
		require.NoError(t, err)
		for i := 0; i < models.NumTimeSlots; i++ {
			assert.Zero(t, got.Dates[i].Votes)
			assert.Zero(t, got.Times[i].Votes)
		}
	})

	t.Run("selections accumulate and duplicates collapse", func(t *testing.T) {
		require.NoError(t, svc.RecordSlotPreference(ctx, h.Code, []int{1, 2, 2}))
		require.NoError(t, svc.RecordSlotPreference(ctx, h.Code, []int{2}))

		got, err := svc.Get(ctx, h.Code)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Dates[0].Votes)
		assert.Equal(t, 2, got.Dates[1].Votes)
		assert.Zero(t, got.Dates[2].Votes)
		assert.Equal(t, 1, got.Times[0].Votes)
		assert.Equal(t, 2, got.Times[1].Votes)
	})
}

func TestSubmitBallot(t *testing.T) {
	svc, _ := testutil.NewTestService(t)
	ctx := context.Background()

	h := testutil.CreateTestHangout(t, svc, 2)
	id1, _ := testutil.JoinTestParticipant(t, svc, h.Code)

	t.Run("non-participant rejected", func(t *testing.T) {
		_, err := svc.SubmitBallot(ctx, h.Code, "stranger", []string{"Bowling"})
		assert.ErrorIs(t, err, models.ErrParticipantNotFound)
	})

	t.Run("unknown activity rejected", func(t *testing.T) {
		_, err := svc.SubmitBallot(ctx, h.Code, id1, []string{"Skydiving"})
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("accepted activities counted", func(t *testing.T) {
		resp, err := svc.SubmitBallot(ctx, h.Code, id1, []string{"Bowling", "Karaoke"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.VotedNum)
		assert.False(t, resp.Finalized)
		assert.Equal(t, models.StatusPending, resp.VoteStatus)

		got, err := svc.Get(ctx, h.Code)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Activities[0].Votes)
		assert.Equal(t, 1, got.Activities[1].Votes)
	})

	t.Run("empty ballot still counts the voter", func(t *testing.T) {
		id2, _ := testutil.JoinTestParticipant(t, svc, h.Code)
		resp, err := svc.SubmitBallot(ctx, h.Code, id2, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.VotedNum)
		assert.True(t, resp.Finalized)
	})

	t.Run("late ballot rejected", func(t *testing.T) {
		_, err := svc.SubmitBallot(ctx, h.Code, id1, []string{"Bowling"})
		assert.ErrorIs(t, err, models.ErrAlreadyFinalized)
	})
}

func TestFinalizationOutcomeAndNotification(t *testing.T) {
	mem := store.NewMemory()
	notifier := newRecordingNotifier()
	svc := hangout.NewService(mem, notifier)
	ctx := context.Background()

	req := testutil.HangoutRequest(3)
	h, err := svc.Create(ctx, req)
	require.NoError(t, err)

	var ids []string
	var emails []string
	for i := 0; i < 3; i++ {
		id, email := testutil.JoinTestParticipant(t, svc, h.Code)
		ids = append(ids, id)
		emails = append(emails, email)
	}

	require.NoError(t, svc.RecordSlotPreference(ctx, h.Code, []int{2}))
	require.NoError(t, svc.RecordSlotPreference(ctx, h.Code, []int{2, 3}))
	require.NoError(t, svc.RecordSlotPreference(ctx, h.Code, []int{1}))

	_, err = svc.SubmitBallot(ctx, h.Code, ids[0], []string{"Karaoke"})
	require.NoError(t, err)
	_, err = svc.SubmitBallot(ctx, h.Code, ids[1], []string{"Karaoke", "Bowling"})
	require.NoError(t, err)

	resp, err := svc.SubmitBallot(ctx, h.Code, ids[2], []string{"Bowling"})
	require.NoError(t, err)
	assert.True(t, resp.Finalized)
	assert.Equal(t, models.StatusFinalized, resp.VoteStatus)
	assert.Equal(t, 3, resp.VotedNum)

	got, err := svc.Get(ctx, h.Code)
	require.NoError(t, err)
	assert.Equal(t, "Karaoke", got.FinalActivity)
	assert.Equal(t, "Sing City", got.FinalLocation)
	assert.Equal(t, "2025-06-02", got.FinalDate)
	assert.Equal(t, "19:00", got.FinalTime)

	mail := notifier.wait(t)
	assert.Equal(t, "Karaoke", mail.summary.FinalActivity)
	assert.Equal(t, got.Name, mail.summary.HangoutName)
	assert.Contains(t, mail.emails, req.OrganizerEmail)
	for _, e := range emails {
		assert.Contains(t, mail.emails, e)
	}
}

func TestFinalizeHappensOnce(t *testing.T) {
	mem := store.NewMemory()
	notifier := newRecordingNotifier()
	svc := hangout.NewService(mem, notifier)
	ctx := context.Background()

	h, err := svc.Create(ctx, testutil.HangoutRequest(1))
	require.NoError(t, err)
	id, _ := testutil.JoinTestParticipant(t, svc, h.Code)

	_, err = svc.SubmitBallot(ctx, h.Code, id, []string{"Bowling"})
	require.NoError(t, err)
	notifier.wait(t)

	before, err := svc.Get(ctx, h.Code)
	require.NoError(t, err)

	_, err = svc.SubmitBallot(ctx, h.Code, id, []string{"Karaoke"})
	assert.ErrorIs(t, err, models.ErrAlreadyFinalized)

	// Outcome fields are write-once.
	after, err := svc.Get(ctx, h.Code)
	require.NoError(t, err)
	assert.Equal(t, before.FinalActivity, after.FinalActivity)
	assert.Equal(t, before.VotedNum, after.VotedNum)

	select {
	case <-notifier.sent:
		t.Fatal("Second notification must not be sent")
	case <-time.After(100 * time.Millisecond):
	}
}
