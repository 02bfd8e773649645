// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHangoutFinalizedSendsPerRecipient(t *testing.T) {
	var payloads []emailJSPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p emailJSPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("Failed to decode payload: %v", err)
		}
		payloads = append(payloads, p)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	orig := emailJSEndpoint
	emailJSEndpoint = server.URL
	defer func() { emailJSEndpoint = orig }()

	n := NewEmailJS("svc-1", "tpl-1", "key-1")
	summary := Summary{
		HangoutName:   "Birthday",
		FinalActivity: "Karaoke",
		FinalLocation: "Sing City",
		FinalDate:     "2025-06-02",
		FinalTime:     "19:00",
	}

	err := n.HangoutFinalized(context.Background(), []string{"a@example.com", "b@example.com"}, summary)
	if err != nil {
		t.Fatalf("HangoutFinalized failed: %v", err)
	}

	if len(payloads) != 2 {
		t.Fatalf("Expected 2 sends, got %d", len(payloads))
	}

	first := payloads[0]
	if first.ServiceID != "svc-1" || first.TemplateID != "tpl-1" || first.UserID != "key-1" {
		t.Errorf("Unexpected credentials in payload: %+v", first)
	}
	if first.TemplateParams["email"] != "a@example.com" {
		t.Errorf("Expected first recipient a@example.com, got %q", first.TemplateParams["email"])
	}
	if first.TemplateParams["hangoutName"] != "Birthday" ||
		first.TemplateParams["finalActivity"] != "Karaoke" ||
		first.TemplateParams["finalLocation"] != "Sing City" ||
		first.TemplateParams["finalDate"] != "2025-06-02" ||
		first.TemplateParams["finalTime"] != "19:00" {
		t.Errorf("Unexpected template params: %+v", first.TemplateParams)
	}
}

func TestHangoutFinalizedReportsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	orig := emailJSEndpoint
	emailJSEndpoint = server.URL
	defer func() { emailJSEndpoint = orig }()

	n := NewEmailJS("svc-1", "tpl-1", "key-1")
	err := n.HangoutFinalized(context.Background(), []string{"a@example.com"}, Summary{})
	if err == nil {
		t.Error("Expected error when the email API rejects the send")
	}
}

func TestNoopNotifier(t *testing.T) {
	if err := (Noop{}).HangoutFinalized(context.Background(), []string{"a@example.com"}, Summary{}); err != nil {
		t.Errorf("Noop notifier must never fail, got %v", err)
	}
}
