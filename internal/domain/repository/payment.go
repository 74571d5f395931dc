package repository

import (
	"context"

	"github.com/polkiloo/agromart/internal/domain/model"
)

// PaymentRepository describes persistence operations for payment records.
// Every mutation recomputes the owning order's paid amount and payment
// status inside the same transaction and returns the refreshed order.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.PaymentRecord) (*model.PaymentRecord, *model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.PaymentRecord, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.PaymentRecord, error)

	// Verify confirms a pending payment. Re-verifying a settled record is
	// an invalid-state error, never a silent no-op.
	Verify(ctx context.Context, paymentID, verifierID int64, notes string) (*model.PaymentRecord, *model.Order, error)

	// Reject declines a pending payment.
	Reject(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, *model.Order, error)

	// Refund reverses a verified payment.
	Refund(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, *model.Order, error)

	// Recompute re-derives paid_amount and payment_status from verified
	// payment records.
	Recompute(ctx context.Context, orderID int64) (*model.Order, error)
}
