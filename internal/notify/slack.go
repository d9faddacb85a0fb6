// Package notify posts digest entries to a Slack-compatible incoming
// webhook. Delivery is fire-and-forget: failures are surfaced as errors for
// the caller to log, never retried.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"eventradar/internal/radar"
)

// Webhook is a thin client around an incoming-webhook URL.
type Webhook struct {
	url        string
	httpClient *http.Client
}

// NewWebhook constructs a webhook client with sane defaults.
func NewWebhook(url string, opts ...func(*Webhook)) *Webhook {
	w := &Webhook{
		url: url,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WithHTTPClient overrides the internal HTTP client.
func WithHTTPClient(hc *http.Client) func(*Webhook) {
	return func(w *Webhook) {
		w.httpClient = hc
	}
}

type message struct {
	Title   string `json:"title,omitempty"`
	URL     string `json:"url,omitempty"`
	Source  string `json:"source,omitempty"`
	Country string `json:"country,omitempty"`
	Signal  string `json:"signal,omitempty"`
	Text    string `json:"text"`
}

// Deliver posts one announcement as a structured payload plus a rendered
// text line.
func (w *Webhook) Deliver(ctx context.Context, a radar.Announcement) error {
	signal := a.Signal
	if signal == "" {
		signal = string(a.Category)
	}
	msg := message{
		Title:   a.Title,
		URL:     a.URL,
		Source:  a.Source,
		Country: a.Country,
		Signal:  signal,
		Text: fmt.Sprintf("🎟️ %s\n• Source: %s • Country: %s\n• %s\n🔗 %s",
			a.Title, a.Source, a.Country, signal, a.URL),
	}
	return w.post(ctx, msg)
}

// PostText posts a plain text message, used for report alerts.
func (w *Webhook) PostText(ctx context.Context, text string) error {
	return w.post(ctx, message{Text: text})
}

func (w *Webhook) post(ctx context.Context, msg message) error {
	if w.url == "" {
		return fmt.Errorf("notify: missing webhook URL")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("notify: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notify: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("notify: webhook error %d: %s", resp.StatusCode, string(data))
	}
	return nil
}
