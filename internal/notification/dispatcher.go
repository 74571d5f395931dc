// Package notification fans lifecycle events out to delivery sinks without
// ever blocking the operations that emit them.
package notification

import (
	"context"
	"log/slog"
	"sync"

	"github.com/polkiloo/agromart/internal/adapter/webhook"
	"github.com/polkiloo/agromart/internal/domain/event"
)

// Dispatcher buffers events and delivers them to the sink in the background.
// Publish never blocks; when the buffer is full the event is dropped with a
// warning. Notification delivery is best-effort, never transactional.
type Dispatcher struct {
	sink   webhook.Sink
	logger *slog.Logger

	events chan event.Event
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDispatcher constructs a dispatcher with the given buffer capacity.
func NewDispatcher(sink webhook.Sink, buffer int, logger *slog.Logger) *Dispatcher {
	if buffer <= 0 {
		buffer = 1
	}
	return &Dispatcher{
		sink:   sink,
		logger: logger,
		events: make(chan event.Event, buffer),
	}
}

// Start launches background delivery.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	d.wg.Add(1)
	go d.deliver(runCtx)
}

// Stop halts delivery and waits for the background goroutine to exit.
// Buffered events that were not yet delivered are discarded.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Publish enqueues events for delivery without blocking the caller.
func (d *Dispatcher) Publish(events ...event.Event) {
	for _, evt := range events {
		select {
		case d.events <- evt:
		default:
			d.logger.Warn("notification buffer full, event dropped",
				slog.String("kind", string(evt.Kind)),
				slog.Int64("order_id", evt.OrderID))
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-d.events:
			if err := d.sink.Send(ctx, evt); err != nil {
				d.logger.Error("notification delivery failed",
					slog.String("kind", string(evt.Kind)),
					slog.String("error", err.Error()))
			}
		}
	}
}
