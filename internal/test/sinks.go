package test

import (
	"context"
	"sync"

	"github.com/polkiloo/agromart/internal/adapter/webhook"
	"github.com/polkiloo/agromart/internal/domain/event"
)

// SinkStub records delivered events for assertions.
type SinkStub struct {
	SendFn func(context.Context, event.Event) error

	mu     sync.Mutex
	events []event.Event
}

// Send stores the event and delegates to the override when present.
func (s *SinkStub) Send(ctx context.Context, evt event.Event) error {
	s.mu.Lock()
	s.events = append(s.events, evt)
	s.mu.Unlock()
	if s.SendFn != nil {
		return s.SendFn(ctx, evt)
	}
	return nil
}

// Events returns a snapshot of everything delivered so far.
func (s *SinkStub) Events() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]event.Event, len(s.events))
	copy(out, s.events)
	return out
}

var _ webhook.Sink = (*SinkStub)(nil)
