// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/youpick/backend/ai"
	"github.com/youpick/backend/middleware"
)

type AIHandler struct {
	client *ai.Client
}

func NewAIHandler(client *ai.Client) *AIHandler {
	return &AIHandler{client: client}
}

// GetActivities handles GET /ai/activities
func (h *AIHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Suggestions are not configured")
		return
	}

	prompt := r.URL.Query().Get("user_prompt")
	location := r.URL.Query().Get("location")
	if prompt == "" || location == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_prompt and location are required")
		return
	}

	suggestions, err := h.client.GetActivities(r.Context(), prompt, location)
	if err != nil {
		slog.Error("activity suggestions failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Suggestion service unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"activities": suggestions,
	})
}

// GetImages handles GET /ai/images
func (h *AIHandler) GetImages(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Suggestions are not configured")
		return
	}

	raw := r.URL.Query().Get("activities")
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "activities is required")
		return
	}

	var activities []string
	for _, a := range strings.Split(raw, ",") {
		if a = strings.TrimSpace(a); a != "" {
			activities = append(activities, a)
		}
	}

	images, err := h.client.GetImages(r.Context(), activities)
	if err != nil {
		slog.Error("image suggestions failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Suggestion service unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"activity_images": images,
	})
}
