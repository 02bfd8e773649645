// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify delivers the one-time finalization announcement.

The consensus engine calls the Notifier exactly once, when a hangout
flips to Finalized, with the deduplicated list of every participant
email (organizer included). Delivery is fire-and-forget: failures are
logged, never retried by the engine, and never undo finalization.

Implementations:

  - EmailJS: one templated email per recipient via the EmailJS REST API
  - Noop: used when no notification transport is configured
*/
package notify
