// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/youpick/backend/models"
)

// Memory implements hangout.Store in process with the same conditional
// update semantics as the Mongo implementation. The whole store runs
// under one mutex, which stands in for the per-document atomicity the
// database provides. Used by the test suite and as a development
// fallback when no MongoDB is configured.
type Memory struct {
	mu       sync.Mutex
	hangouts map[int]*models.Hangout
	users    map[string]*models.User
}

func NewMemory() *Memory {
	return &Memory{
		hangouts: make(map[int]*models.Hangout),
		users:    make(map[string]*models.User),
	}
}

func (m *Memory) InsertHangout(ctx context.Context, h *models.Hangout) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := copyHangout(h)
	cp.ID = primitive.NewObjectID()
	m.hangouts[cp.Code] = cp
	return cp.ID, nil
}

func (m *Memory) FindHangoutByCode(ctx context.Context, code int) (*models.Hangout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hangouts[code]
	if !ok {
		return nil, models.ErrHangoutNotFound
	}
	return copyHangout(h), nil
}

func (m *Memory) FindHangoutsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Hangout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Hangout
	for _, id := range ids {
		for _, h := range m.hangouts {
			if h.ID == id {
				out = append(out, *copyHangout(h))
				break
			}
		}
	}
	return out, nil
}

func (m *Memory) AddParticipant(ctx context.Context, code int, participantID, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hangouts[code]
	if !ok || h.VoteStatus != models.StatusPending || h.HasParticipant(participantID) ||
		len(h.IDParticipants) >= h.NumParticipants || h.VotedNum >= h.NumParticipants {
		return models.ErrConcurrentUpdate
	}

	h.IDParticipants = append(h.IDParticipants, participantID)
	h.EmailParticipants = append(h.EmailParticipants, email)
	h.UpdatedAt = time.Now()
	return nil
}

func (m *Memory) ReduceCapacity(ctx context.Context, code int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hangouts[code]
	if !ok || h.VoteStatus != models.StatusPending ||
		h.NumParticipants <= h.VotedNum || h.NumParticipants <= len(h.IDParticipants) {
		return models.ErrConcurrentUpdate
	}

	h.NumParticipants--
	h.UpdatedAt = time.Now()
	return nil
}

func (m *Memory) IncrementSlotVotes(ctx context.Context, code int, options []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hangouts[code]
	if !ok || h.VoteStatus != models.StatusPending {
		return models.ErrConcurrentUpdate
	}

	for _, i := range options {
		h.Dates[i].Votes++
		h.Times[i].Votes++
	}
	h.UpdatedAt = time.Now()
	return nil
}

func (m *Memory) RecordBallot(ctx context.Context, code int, activityIdx []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hangouts[code]
	if !ok || h.VoteStatus != models.StatusPending || h.VotedNum >= h.NumParticipants {
		return models.ErrConcurrentUpdate
	}

	for _, i := range activityIdx {
		h.Activities[i].Votes++
	}
	h.VotedNum++
	h.UpdatedAt = time.Now()
	return nil
}

func (m *Memory) Finalize(ctx context.Context, code int, out models.Outcome) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hangouts[code]
	if !ok || h.VoteStatus != models.StatusPending {
		return false, nil
	}

	h.VoteStatus = models.StatusFinalized
	h.FinalDate = out.FinalDate
	h.FinalTime = out.FinalTime
	h.FinalActivity = out.FinalActivity
	h.FinalLocation = out.FinalLocation
	h.UpdatedAt = time.Now()
	return true, nil
}

func (m *Memory) InsertUser(ctx context.Context, u *models.User) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := copyUser(u)
	cp.ID = primitive.NewObjectID()
	m.users[cp.AuthID] = cp
	return cp.ID, nil
}

func (m *Memory) FindUserByAuthID(ctx context.Context, authID string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[authID]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (m *Memory) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (m *Memory) UpdateUserFields(ctx context.Context, authID string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[authID]
	if !ok {
		return models.ErrUserNotFound
	}

	for k, v := range fields {
		switch k {
		case "name":
			u.Name, _ = v.(string)
		case "bio":
			u.Bio, _ = v.(string)
		case "updatedAt":
			if t, ok := v.(time.Time); ok {
				u.UpdatedAt = t
			}
		}
	}
	return nil
}

func (m *Memory) AppendUserHangout(ctx context.Context, authID string, hangoutID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[authID]
	if !ok {
		return models.ErrUserNotFound
	}

	for _, id := range u.HangoutIDs {
		if id == hangoutID {
			return nil
		}
	}
	u.HangoutIDs = append(u.HangoutIDs, hangoutID)
	u.UpdatedAt = time.Now()
	return nil
}

func copyHangout(h *models.Hangout) *models.Hangout {
	cp := *h
	cp.Activities = append([]models.ActivityOption(nil), h.Activities...)
	cp.Locations = append([]string(nil), h.Locations...)
	cp.IDParticipants = append([]string(nil), h.IDParticipants...)
	cp.EmailParticipants = append([]string(nil), h.EmailParticipants...)
	if h.Images != nil {
		cp.Images = make(map[string]string, len(h.Images))
		for k, v := range h.Images {
			cp.Images[k] = v
		}
	}
	return &cp
}

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.HangoutIDs = append([]primitive.ObjectID(nil), u.HangoutIDs...)
	return &cp
}
