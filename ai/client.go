// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
)

// suggestionTimeout is generous because the suggestion service runs on
// scale-to-zero hosting and cold starts take tens of seconds.
const suggestionTimeout = 90 * time.Second

// Client proxies the activity/image suggestion service.
type Client struct {
	client  *httpclient.Client
	baseURL string
}

func NewClient(baseURL string) *Client {
	backoff := heimdall.NewConstantBackoff(2*time.Second, 100*time.Millisecond)
	return &Client{
		client: httpclient.NewClient(
			httpclient.WithHTTPTimeout(suggestionTimeout),
			httpclient.WithRetrier(heimdall.NewRetrier(backoff)),
			httpclient.WithRetryCount(1),
		),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Suggestion is one proposed activity with its location.
type Suggestion struct {
	Activity string `json:"activity"`
	Location string `json:"location"`
}

// GetActivities asks the suggestion service for activities matching the
// prompt near the location.
func (c *Client) GetActivities(ctx context.Context, prompt, location string) ([]Suggestion, error) {
	q := url.Values{}
	q.Set("user_prompt", prompt)
	q.Set("location", location)

	var payload struct {
		Activities []Suggestion `json:"activities"`
	}
	if err := c.get(ctx, "/get-activities", q, &payload); err != nil {
		return nil, err
	}
	return payload.Activities, nil
}

// GetImages resolves one image URL per activity name.
func (c *Client) GetImages(ctx context.Context, activities []string) (map[string]string, error) {
	q := url.Values{}
	q.Set("activities", strings.Join(activities, ","))

	var payload struct {
		ActivityImages map[string]string `json:"activity_images"`
	}
	if err := c.get(ctx, "/get-images", q, &payload); err != nil {
		return nil, err
	}
	return payload.ActivityImages, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build suggestion request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("suggestion service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("suggestion service returned %s: %s", resp.Status, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode suggestion response: %w", err)
	}
	return nil
}
