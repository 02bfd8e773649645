// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the YouPick API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, aiClient)

# Endpoints

Health:

	GET /health

User profiles:

	POST /users                  - Create (or fetch existing) user
	GET  /users/{id}             - Get user profile
	PUT  /users/{id}             - Update name/bio
	GET  /users/{email}/hangouts - Hangouts split by vote status

Hangout lifecycle:

	POST /hangouts                  - Create hangout (returns share code)
	GET  /hangouts/{code}           - Full hangout record
	GET  /hangouts/{code}/timeslots - Date/time options with counts

Voting (public, uses the share code):

	POST /hangouts/{code}/join   - Enroll a participant
	POST /hangouts/{code}/reject - Decline an invite (shrinks capacity)
	POST /hangouts/{code}/slots  - Boost date/time options
	POST /hangouts/{code}/ballot - Seal activity swipe decisions

Activity suggestions (proxied, 503 when unconfigured):

	GET /ai/activities - Suggested activities for a prompt and location
	GET /ai/images     - One image URL per activity

# Handler Initialization

The router creates handler instances with dependency injection:

	hangoutHandler := handlers.NewHangoutHandler(svc)
	userHandler := handlers.NewUserHandler(svc)
	aiHandler := handlers.NewAIHandler(aiClient)
*/
package router
