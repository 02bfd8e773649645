// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ai is a thin client for the external activity-suggestion
service. It proxies two read-only endpoints, activity suggestions for
a prompt/location and image lookups for chosen activities, with a
90-second timeout to ride out the service's cold starts.

The suggestion service is an optional collaborator: when it is not
configured the AI routes answer 503, and nothing in the hangout
lifecycle depends on it.
*/
package ai
