// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/youpick/backend/ai"
	"github.com/youpick/backend/handlers"
	"github.com/youpick/backend/hangout"
	"github.com/youpick/backend/middleware"
)

// NewRouter wires every endpoint. aiClient may be nil, in which case
// the suggestion routes answer 503.
func NewRouter(svc *hangout.Service, aiClient *ai.Client) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	hangoutHandler := handlers.NewHangoutHandler(svc)
	userHandler := handlers.NewUserHandler(svc)
	aiHandler := handlers.NewAIHandler(aiClient)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// User profiles
	mux.HandleFunc("POST /users", middleware.WithLogging(userHandler.CreateUser))
	mux.HandleFunc("GET /users/{id}", middleware.WithLogging(userHandler.GetUser))
	mux.HandleFunc("PUT /users/{id}", middleware.WithLogging(userHandler.UpdateUser))
	mux.HandleFunc("GET /users/{email}/hangouts", middleware.WithLogging(userHandler.ListUserHangouts))

	// Hangout lifecycle
	mux.HandleFunc("POST /hangouts", middleware.WithLogging(hangoutHandler.CreateHangout))
	mux.HandleFunc("GET /hangouts/{code}", middleware.WithLogging(hangoutHandler.GetHangout))
	mux.HandleFunc("GET /hangouts/{code}/timeslots", middleware.WithLogging(hangoutHandler.GetTimeSlots))

	// Voting operations
	mux.HandleFunc("POST /hangouts/{code}/join", middleware.WithLogging(hangoutHandler.Join))
	mux.HandleFunc("POST /hangouts/{code}/reject", middleware.WithLogging(hangoutHandler.Reject))
	mux.HandleFunc("POST /hangouts/{code}/slots", middleware.WithLogging(hangoutHandler.SlotPreference))
	mux.HandleFunc("POST /hangouts/{code}/ballot", middleware.WithLogging(hangoutHandler.SubmitBallot))

	// Activity suggestions
	mux.HandleFunc("GET /ai/activities", middleware.WithLogging(aiHandler.GetActivities))
	mux.HandleFunc("GET /ai/images", middleware.WithLogging(aiHandler.GetImages))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("youpick API v1"))
	})

	return mux
}
