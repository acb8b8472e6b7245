// Package discord implements notify.Sink over a Discord webhook URL.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lottery-tracker/internal/notify"
)

// DefaultTimeout bounds a webhook delivery.
const DefaultTimeout = 30 * time.Second

// Webhook posts messages to a Discord webhook URL.
type Webhook struct {
	url    string
	client *http.Client
}

// Option configures Webhook.
type Option func(*Webhook)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(w *Webhook) {
		w.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(w *Webhook) {
		w.client = client
	}
}

// NewWebhook creates a webhook sink.
func NewWebhook(url string, opts ...Option) *Webhook {
	w := &Webhook{
		url:    url,
		client: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Compile-time interface check.
var _ notify.Sink = (*Webhook)(nil)

// Send delivers one message. Non-2xx responses are failures.
func (w *Webhook) Send(ctx context.Context, msg notify.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
