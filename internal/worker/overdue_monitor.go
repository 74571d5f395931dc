package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/agromart/internal/domain/model"
)

// LedgerFacade exposes the subset of application functionality required by the monitor.
type LedgerFacade interface {
	ClaimOverduePayments(ctx context.Context, limit int) ([]model.Order, error)
	NotifyPaymentOverdue(ctx context.Context, order model.Order) error
}

// OverdueMonitor periodically claims past-due unpaid orders and fans their
// notifications out over a worker pool. Claims use skip-locked scans, so
// multiple instances never double-report the same order.
type OverdueMonitor struct {
	facade       LedgerFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOverdueMonitor constructs the overdue payment monitor.
func NewOverdueMonitor(facade LedgerFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *OverdueMonitor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OverdueMonitor{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background monitoring.
func (m *OverdueMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.worker(runCtx)
	}

	m.wg.Add(1)
	go m.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (m *OverdueMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *OverdueMonitor) dispatch(ctx context.Context) {
	defer m.wg.Done()
	defer close(m.jobs)
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.claimAndDispatch(ctx)
		}
	}
}

func (m *OverdueMonitor) claimAndDispatch(ctx context.Context) {
	orders, err := m.facade.ClaimOverduePayments(ctx, m.batchSize)
	if err != nil {
		m.logger.Error("claim overdue payments failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case m.jobs <- order:
		}
	}
}

func (m *OverdueMonitor) worker(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-m.jobs:
			if !ok {
				return
			}
			if err := m.facade.NotifyPaymentOverdue(ctx, order); err != nil {
				m.logger.Error("overdue notification failed",
					slog.String("order", order.Number),
					slog.String("error", err.Error()))
			}
		}
	}
}
