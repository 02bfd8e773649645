// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the YouPick API server.

YouPick is a group hangout planner: an organizer proposes activities
and three date/time options, invitees join by share code, vote on when
to meet and swipe on what to do, and the plan finalizes automatically
once everyone has voted.

# Starting the Server

The server reads environment variables (optionally from a .env file)
or CLI flags:

	MONGODB_URI=mongodb://... go run main.go

Or with flags:

	go run main.go -p 3000 -m "mongodb://..."

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - MONGODB_URI (-m): MongoDB connection string (in-memory store when unset)
  - MONGODB_DB (-db): Database name (default: "users")
  - EMAILJS_SERVICE_ID / EMAILJS_TEMPLATE_ID / EMAILJS_PUBLIC_KEY:
    finalization email credentials (emails disabled when unset)
  - AI_SERVICE_URL (--ai): activity suggestion service (routes answer
    503 when unset)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (hangouts, voting, users, suggestions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain documents and request/response types
  - hangout: Lifecycle service (enrollment, voting, finalization)
  - tally: Plurality winner selection with first-seen tie-breaks
  - store: MongoDB and in-memory persistence
  - notify: Finalization emails via EmailJS
  - ai: Suggestion service client
  - codegen: Share code generation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
