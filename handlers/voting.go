// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"

	"github.com/youpick/backend/middleware"
	"github.com/youpick/backend/models"
)

// Join handles POST /hangouts/:code/join
func (h *HangoutHandler) Join(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCode(w, r)
	if !ok {
		return
	}

	var req models.JoinHangoutRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ParticipantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_id is required")
		return
	}

	if err := h.svc.Join(r.Context(), code, req.ParticipantID, req.ParticipantEmail); err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.JoinHangoutResponse{
		Code:    code,
		Message: fmt.Sprintf("joined hangout %d", code),
	})
}

// Reject handles POST /hangouts/:code/reject
func (h *HangoutHandler) Reject(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCode(w, r)
	if !ok {
		return
	}

	var req models.RejectHangoutRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ParticipantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_id is required")
		return
	}

	if err := h.svc.Reject(r.Context(), code, req.ParticipantID); err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.JoinHangoutResponse{
		Code:    code,
		Message: fmt.Sprintf("declined hangout %d", code),
	})
}

// SlotPreference handles POST /hangouts/:code/slots
func (h *HangoutHandler) SlotPreference(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCode(w, r)
	if !ok {
		return
	}

	var req models.SlotPreferenceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.RecordSlotPreference(r.Context(), code, req.Options); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SubmitBallot handles POST /hangouts/:code/ballot
func (h *HangoutHandler) SubmitBallot(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCode(w, r)
	if !ok {
		return
	}

	var req models.SubmitBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ParticipantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_id is required")
		return
	}

	resp, err := h.svc.SubmitBallot(r.Context(), code, req.ParticipantID, req.Accepted)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
