// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
)

// var so tests can point sends at a local server.
var emailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJS sends one templated email per recipient through the EmailJS
// REST API, the same transport the web client used.
type EmailJS struct {
	client     *httpclient.Client
	serviceID  string
	templateID string
	publicKey  string
}

// NewEmailJS builds an EmailJS notifier with a retrying HTTP client.
func NewEmailJS(serviceID, templateID, publicKey string) *EmailJS {
	backoff := heimdall.NewConstantBackoff(500*time.Millisecond, 50*time.Millisecond)
	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(10*time.Second),
		httpclient.WithRetrier(heimdall.NewRetrier(backoff)),
		httpclient.WithRetryCount(2),
	)

	return &EmailJS{
		client:     client,
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
	}
}

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// HangoutFinalized emails every participant the final plan. Failed
// recipients are logged and skipped; the last error is returned so
// callers that care can see delivery was incomplete.
func (e *EmailJS) HangoutFinalized(ctx context.Context, emails []string, s Summary) error {
	var lastErr error
	for _, email := range emails {
		if err := e.send(ctx, email, s); err != nil {
			slog.Warn("finalization email failed", "email", email, "error", err)
			lastErr = err
		}
	}
	return lastErr
}

func (e *EmailJS) send(ctx context.Context, email string, s Summary) error {
	payload := emailJSPayload{
		ServiceID:  e.serviceID,
		TemplateID: e.templateID,
		UserID:     e.publicKey,
		TemplateParams: map[string]string{
			"email":         email,
			"hangoutName":   s.HangoutName,
			"finalActivity": s.FinalActivity,
			"finalLocation": s.FinalLocation,
			"finalDate":     s.FinalDate,
			"finalTime":     s.FinalTime,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, emailJSEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("email send failed: %s", resp.Status)
	}
	return nil
}
