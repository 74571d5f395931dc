package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/polkiloo/agromart/internal/domain/model"
	testhelpers "github.com/polkiloo/agromart/internal/test"
)

var _ LedgerFacade = (*testhelpers.LedgerFacadeStub)(nil)

func TestNewOverdueMonitorDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	monitor := NewOverdueMonitor(&testhelpers.LedgerFacadeStub{}, time.Second, 0, 0, logger)
	if monitor.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", monitor.batchSize)
	}
	if monitor.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", monitor.workers)
	}
}

func TestOverdueMonitorNotifiesClaimedOrders(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.LedgerFacadeStub{
		Batches: [][]model.Order{{{ID: 1, Number: "SW-2025000001"}}},
	}
	monitor := NewOverdueMonitor(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	monitor.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		notified := len(facade.Notified) > 0
		facade.Unlock()
		if notified {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for overdue notification")
		case <-time.After(10 * time.Millisecond):
		}
	}

	monitor.Stop()
	facade.Lock()
	defer facade.Unlock()
	if len(facade.Notified) == 0 {
		t.Fatal("expected notified order")
	}
	if facade.Notified[0].Number != "SW-2025000001" {
		t.Fatalf("unexpected order number: %s", facade.Notified[0].Number)
	}
}

func TestOverdueMonitorSurvivesClaimErrors(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := int32(0)
	facade := &testhelpers.LedgerFacadeStub{
		ClaimFn: func(ctx context.Context, limit int) ([]model.Order, error) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return nil, errors.New("database unavailable")
			}
			return []model.Order{{ID: 2, Number: "SW-2025000002"}}, nil
		},
	}

	monitor := NewOverdueMonitor(facade, 5*time.Millisecond, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	monitor.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		notified := len(facade.Notified) > 0
		facade.Unlock()
		if notified {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for recovery after claim error")
		case <-time.After(5 * time.Millisecond):
		}
	}

	monitor.Stop()
	if atomic.LoadInt32(&attempts) < 2 {
		t.Fatalf("expected at least two claim attempts, got %d", attempts)
	}
}

func TestOverdueMonitorSurvivesNotifyErrors(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	notified := int32(0)
	facade := &testhelpers.LedgerFacadeStub{
		Batches: [][]model.Order{
			{{ID: 1, Number: "SW-2025000001"}},
			{{ID: 2, Number: "SW-2025000002"}},
		},
		NotifyFn: func(ctx context.Context, order model.Order) error {
			if atomic.AddInt32(&notified, 1) == 1 {
				return errors.New("webhook down")
			}
			return nil
		},
	}

	monitor := NewOverdueMonitor(facade, 5*time.Millisecond, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	monitor.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for atomic.LoadInt32(&notified) < 2 {
		select {
		case <-deadline:
			t.Fatalf("timeout: %d notifications attempted", atomic.LoadInt32(&notified))
		case <-time.After(5 * time.Millisecond):
		}
	}

	monitor.Stop()
}

func TestOverdueMonitorStopBeforeTick(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.LedgerFacadeStub{
		Batches: [][]model.Order{{{ID: 1, Number: "SW-2025000001"}}},
	}
	monitor := NewOverdueMonitor(facade, time.Hour, 1, 2, logger)

	monitor.Start(context.Background())
	monitor.Stop()

	facade.Lock()
	defer facade.Unlock()
	if len(facade.Notified) != 0 {
		t.Fatalf("expected no notifications before first tick, got %d", len(facade.Notified))
	}
}
