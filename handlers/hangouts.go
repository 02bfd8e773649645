// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/youpick/backend/hangout"
	"github.com/youpick/backend/middleware"
	"github.com/youpick/backend/models"
)

type HangoutHandler struct {
	svc *hangout.Service
}

func NewHangoutHandler(svc *hangout.Service) *HangoutHandler {
	return &HangoutHandler{svc: svc}
}

// CreateHangout handles POST /hangouts
func (h *HangoutHandler) CreateHangout(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHangoutRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.OrganizerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "organizer_id is required")
		return
	}

	created, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateHangoutResponse{
		Code:    created.Code,
		Hangout: *created,
	})
}

// GetHangout handles GET /hangouts/:code
func (h *HangoutHandler) GetHangout(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCode(w, r)
	if !ok {
		return
	}

	found, err := h.svc.Get(r.Context(), code)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, found)
}

// GetTimeSlots handles GET /hangouts/:code/timeslots
func (h *HangoutHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCode(w, r)
	if !ok {
		return
	}

	found, err := h.svc.Get(r.Context(), code)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TimeSlotsResponse{
		Dates: found.Dates,
		Times: found.Times,
	})
}

// parseCode extracts the hangout code path parameter. Writes a 400 and
// returns false when the parameter is missing or not a number.
func parseCode(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("code")
	code, err := strconv.Atoi(raw)
	if err != nil || code <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "hangout code must be a number")
		return 0, false
	}
	return code, true
}

// writeServiceError maps service sentinels onto HTTP statuses. Unknown
// errors are logged and reported as a plain 500 so internals never leak
// to clients.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrHangoutNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Hangout not found")
	case errors.Is(err, models.ErrUserNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
	case errors.Is(err, models.ErrParticipantNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Participant has not joined this hangout")
	case errors.Is(err, models.ErrSelfJoin):
		middleware.ErrorResponse(w, http.StatusConflict, "Organizer cannot join their own hangout")
	case errors.Is(err, models.ErrAlreadyJoined):
		middleware.ErrorResponse(w, http.StatusConflict, "Already joined this hangout")
	case errors.Is(err, models.ErrCapacityExceeded):
		middleware.ErrorResponse(w, http.StatusConflict, "Hangout is full")
	case errors.Is(err, models.ErrRejectUnavailable):
		middleware.ErrorResponse(w, http.StatusConflict, "Hangout can no longer be declined")
	case errors.Is(err, models.ErrAlreadyFinalized):
		middleware.ErrorResponse(w, http.StatusConflict, "Hangout is already finalized")
	case errors.Is(err, models.ErrConcurrentUpdate):
		middleware.ErrorResponse(w, http.StatusConflict, "Conflicting update, please retry")
	case errors.Is(err, models.ErrUpstreamUnavailable):
		slog.Error("upstream failure", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		slog.Error("unhandled service error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}
