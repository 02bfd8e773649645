// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/youpick/backend/models"
	"github.com/youpick/backend/testutil"
)

func TestCreateHangout(t *testing.T) {
	svc, _ := testutil.NewTestService(t)
	handler := NewHangoutHandler(svc)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.CreateHangoutResponse)
	}{
		{
			name:           "valid hangout",
			requestBody:    testutil.HangoutRequest(3),
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.CreateHangoutResponse) {
				if resp.Code < 10000 || resp.Code > 99999 {
					t.Errorf("Expected 5-digit hangout code, got %d", resp.Code)
				}
				if resp.Hangout.VoteStatus != models.StatusPending {
					t.Errorf("Expected Pending status, got %q", resp.Hangout.VoteStatus)
				}
				if len(resp.Hangout.Activities) != 2 {
					t.Errorf("Expected 2 activities, got %d", len(resp.Hangout.Activities))
				}
			},
		},
		{
			name: "missing name",
			requestBody: func() models.CreateHangoutRequest {
				r := testutil.HangoutRequest(3)
				r.Name = ""
				return r
			}(),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing organizer",
			requestBody: func() models.CreateHangoutRequest {
				r := testutil.HangoutRequest(3)
				r.OrganizerID = ""
				return r
			}(),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no activities",
			requestBody: func() models.CreateHangoutRequest {
				r := testutil.HangoutRequest(3)
				r.Activities = nil
				r.Locations = nil
				return r
			}(),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "wrong slot count",
			requestBody: func() models.CreateHangoutRequest {
				r := testutil.HangoutRequest(3)
				r.Dates = r.Dates[:1]
				return r
			}(),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/hangouts", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.CreateHangout(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp models.CreateHangoutResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestGetHangout(t *testing.T) {
	svc, _ := testutil.NewTestService(t)
	handler := NewHangoutHandler(svc)

	h := testutil.CreateTestHangout(t, svc, 2)

	// A code guaranteed to differ from the generated one.
	missing := h.Code + 1
	if missing > 99999 {
		missing = 10000
	}

	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{
			name:           "existing hangout",
			code:           strconv.Itoa(h.Code),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown code",
			code:           strconv.Itoa(missing),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric code",
			code:           "abcde",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/hangouts/"+tt.code, nil, nil)
			req.SetPathValue("code", tt.code)
			w := httptest.NewRecorder()

			handler.GetHangout(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK {
				var resp models.Hangout
				testutil.AssertJSON(t, w, &resp)
				if resp.Code != h.Code {
					t.Errorf("Expected code %d, got %d", h.Code, resp.Code)
				}
			}
		})
	}
}

func TestGetTimeSlots(t *testing.T) {
	svc, _ := testutil.NewTestService(t)
	handler := NewHangoutHandler(svc)

	h := testutil.CreateTestHangout(t, svc, 2)

	req := testutil.MakeRequest("GET", "/hangouts/"+strconv.Itoa(h.Code)+"/timeslots", nil, nil)
	req.SetPathValue("code", strconv.Itoa(h.Code))
	w := httptest.NewRecorder()

	handler.GetTimeSlots(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.TimeSlotsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Dates[0].Label != "2025-06-01" {
		t.Errorf("Expected first date label 2025-06-01, got %q", resp.Dates[0].Label)
	}
	if resp.Times[2].Label != "20:00" {
		t.Errorf("Expected last time label 20:00, got %q", resp.Times[2].Label)
	}
}
