package usecase

import (
	"context"
	"strconv"
	"time"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/event"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/domain/repository"
)

// PaymentLedgerUseCase records payment evidence against orders and drives
// each record through verification. The repository recomputes the owning
// order's paid amount and payment status with every mutation.
type PaymentLedgerUseCase struct {
	payments repository.PaymentRepository
	orders   repository.OrderRepository
	now      func() time.Time
}

// NewPaymentLedgerUseCase constructs PaymentLedgerUseCase.
func NewPaymentLedgerUseCase(payments repository.PaymentRepository, orders repository.OrderRepository) *PaymentLedgerUseCase {
	return &PaymentLedgerUseCase{payments: payments, orders: orders, now: time.Now}
}

// RecordPaymentInput carries buyer-supplied fields of a payment submission.
type RecordPaymentInput struct {
	TransactionID string
	Amount        float64
	Notes         string
	EvidenceRef   string
}

// Record registers payment evidence for an order. The record awaits manual
// verification; only verified records count toward the paid amount.
func (u *PaymentLedgerUseCase) Record(ctx context.Context, orderID int64, in RecordPaymentInput) (*model.PaymentRecord, *model.Order, []event.Event, error) {
	if in.Amount <= 0 {
		return nil, nil, nil, domainErrors.Validation("amount", "must be positive")
	}

	existing, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, nil, err
	}

	payment, order, err := u.payments.Create(ctx, &model.PaymentRecord{
		OrderID:       orderID,
		TransactionID: in.TransactionID,
		Amount:        in.Amount,
		Currency:      existing.Currency,
		Method:        model.PaymentMethodWireTransfer,
		Status:        model.PaymentRecordPendingVerification,
		Notes:         in.Notes,
		EvidenceRef:   in.EvidenceRef,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	events := []event.Event{paymentEvent(event.KindPaymentRecorded, payment, order)}
	return payment, order, events, nil
}

// Verify confirms a pending payment record on behalf of the verifier. The
// returned order carries the recomputed payment status; callers advance the
// order lifecycle when the status reaches paid.
func (u *PaymentLedgerUseCase) Verify(ctx context.Context, paymentID, verifierID int64, notes string) (*model.PaymentRecord, *model.Order, []event.Event, error) {
	payment, order, err := u.payments.Verify(ctx, paymentID, verifierID, notes)
	if err != nil {
		return nil, nil, nil, err
	}
	events := []event.Event{paymentEvent(event.KindPaymentVerified, payment, order)}
	return payment, order, events, nil
}

// Reject declines a pending payment record with a reason.
func (u *PaymentLedgerUseCase) Reject(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, *model.Order, []event.Event, error) {
	payment, order, err := u.payments.Reject(ctx, paymentID, verifierID, reason)
	if err != nil {
		return nil, nil, nil, err
	}
	events := []event.Event{paymentEvent(event.KindPaymentRejected, payment, order)}
	return payment, order, events, nil
}

// Refund reverses a verified payment record; the order's paid amount drops
// accordingly.
func (u *PaymentLedgerUseCase) Refund(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, *model.Order, []event.Event, error) {
	payment, order, err := u.payments.Refund(ctx, paymentID, verifierID, reason)
	if err != nil {
		return nil, nil, nil, err
	}
	events := []event.Event{paymentEvent(event.KindPaymentRefunded, payment, order)}
	return payment, order, events, nil
}

// GetPayment fetches one payment record.
func (u *PaymentLedgerUseCase) GetPayment(ctx context.Context, id int64) (*model.PaymentRecord, error) {
	return u.payments.GetByID(ctx, id)
}

// ListByOrder returns an order's payment records, newest first.
func (u *PaymentLedgerUseCase) ListByOrder(ctx context.Context, orderID int64) ([]model.PaymentRecord, error) {
	return u.payments.ListByOrder(ctx, orderID)
}

// ClaimOverdue marks up to limit past-due unpaid orders overdue and returns
// them for notification. Partially paid orders are never claimed.
func (u *PaymentLedgerUseCase) ClaimOverdue(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.ClaimOverdue(ctx, limit, u.now())
}

// OverdueNotice builds the notification for one overdue order.
func OverdueNotice(o *model.Order) event.Event {
	return event.New(event.KindPaymentOverdue, []int64{o.BuyerID, o.SellerID}, o.ID, map[string]string{
		"order_number":     o.Number,
		"payment_due_date": o.PaymentDueDate.Format(time.RFC3339),
	})
}

func paymentEvent(kind event.Kind, payment *model.PaymentRecord, order *model.Order) event.Event {
	return event.New(kind, []int64{order.BuyerID, order.SellerID}, order.ID, map[string]string{
		"payment_id":     strconv.FormatInt(payment.ID, 10),
		"amount":         strconv.FormatFloat(payment.Amount, 'f', 2, 64),
		"currency":       payment.Currency,
		"payment_status": string(order.PaymentStatus),
	})
}
