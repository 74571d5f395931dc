package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/agromart/internal/domain/model"
)

// LedgerFacadeStub mimics overdue monitoring interactions with the market facade.
type LedgerFacadeStub struct {
	Batches  [][]model.Order
	ClaimFn  func(context.Context, int) ([]model.Order, error)
	NotifyFn func(context.Context, model.Order) error

	Notified []model.Order

	mu             sync.Mutex
	claimCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *LedgerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *LedgerFacadeStub) Unlock() { s.mu.Unlock() }

// ClaimOverduePayments returns batches from the configured queue.
func (s *LedgerFacadeStub) ClaimOverduePayments(ctx context.Context, limit int) ([]model.Order, error) {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.claimCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// NotifyPaymentOverdue records notified orders.
func (s *LedgerFacadeStub) NotifyPaymentOverdue(ctx context.Context, order model.Order) error {
	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notified = append(s.Notified, order)
	return nil
}
