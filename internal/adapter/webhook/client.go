package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/polkiloo/agromart/internal/domain/event"
)

// Sink receives lifecycle events for out-of-process delivery.
type Sink interface {
	Send(ctx context.Context, evt event.Event) error
}

// HTTPSink implements Sink by POSTing events to a configured endpoint.
type HTTPSink struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSink creates an HTTP webhook sink with a default timeout.
func NewHTTPSink(endpoint string, logger *slog.Logger) (*HTTPSink, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse webhook url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("webhook url must be absolute")
	}
	return &HTTPSink{
		endpoint: parsed,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send delivers one event. Any non-2xx response is an error; the caller
// decides whether to drop or retry.
func (s *HTTPSink) Send(ctx context.Context, evt event.Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		s.logger.Error("webhook delivery failed", slog.Int("status", resp.StatusCode), slog.String("body", string(respBody)))
		return fmt.Errorf("webhook error: %s", resp.Status)
	}
	return nil
}

// NopSink discards events; used when no webhook endpoint is configured.
type NopSink struct{}

// Send implements Sink.
func (NopSink) Send(context.Context, event.Event) error { return nil }
