// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/youpick/backend/hangout"
	"github.com/youpick/backend/models"
	"github.com/youpick/backend/notify"
	"github.com/youpick/backend/store"
)

// NewTestService returns a service over a fresh in-memory store with
// notifications disabled. The store is returned too so tests can assert
// on stored state directly.
func NewTestService(t *testing.T) (*hangout.Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	return hangout.NewService(mem, notify.Noop{}), mem
}

// HangoutRequest builds a valid creation request for the given cohort
// size: two activities with paired locations and three date/time slots.
func HangoutRequest(numParticipants int) models.CreateHangoutRequest {
	return models.CreateHangoutRequest{
		OrganizerID:     "organizer-" + uuid.NewString(),
		OrganizerName:   "Organizer",
		OrganizerEmail:  "organizer@example.com",
		Name:            "Test Hangout",
		Activities:      []string{"Bowling", "Karaoke"},
		Locations:       []string{"Main St Lanes", "Sing City"},
		NumParticipants: numParticipants,
		Dates:           []string{"2025-06-01", "2025-06-02", "2025-06-03"},
		Times:           []string{"18:00", "19:00", "20:00"},
	}
}

// CreateTestHangout creates a hangout through the service and returns
// the stored record.
func CreateTestHangout(t *testing.T, svc *hangout.Service, numParticipants int) *models.Hangout {
	t.Helper()

	h, err := svc.Create(context.Background(), HangoutRequest(numParticipants))
	if err != nil {
		t.Fatalf("Failed to create test hangout: %v", err)
	}
	return h
}

// JoinTestParticipant enrolls a fresh participant and returns their
// generated identifier and email.
func JoinTestParticipant(t *testing.T, svc *hangout.Service, code int) (id, email string) {
	t.Helper()

	id = uuid.NewString()
	email = fmt.Sprintf("%s@example.com", id[:8])
	if err := svc.Join(context.Background(), code, id, email); err != nil {
		t.Fatalf("Failed to join test participant: %v", err)
	}
	return id, email
}

// CreateTestUser registers a user document through the service.
func CreateTestUser(t *testing.T, svc *hangout.Service, name, email string) *models.User {
	t.Helper()

	u, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		AuthID: uuid.NewString(),
		Name:   name,
		Email:  email,
	})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return u
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
