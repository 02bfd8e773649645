// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import "context"

// Summary carries the finalized outcome into the notification template.
type Summary struct {
	HangoutName   string
	FinalActivity string
	FinalLocation string
	FinalDate     string
	FinalTime     string
}

// Notifier delivers the finalization announcement. Implementations are
// best-effort: finalization never blocks on, or is rolled back by, a
// delivery failure.
type Notifier interface {
	HangoutFinalized(ctx context.Context, emails []string, s Summary) error
}

// Noop is used when no notification transport is configured.
type Noop struct{}

func (Noop) HangoutFinalized(ctx context.Context, emails []string, s Summary) error {
	return nil
}
