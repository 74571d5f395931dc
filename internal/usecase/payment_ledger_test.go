package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/event"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/test"
)

func TestPaymentLedgerRecordRejectsNonPositiveAmount(t *testing.T) {
	uc := NewPaymentLedgerUseCase(&test.PaymentRepositoryStub{}, &test.OrderRepositoryStub{})

	for _, amount := range []float64{0, -50} {
		if _, _, _, err := uc.Record(context.Background(), 1, RecordPaymentInput{Amount: amount}); !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("amount %v: expected validation error, got %v", amount, err)
		}
	}
}

func TestPaymentLedgerRecordUsesOrderCurrency(t *testing.T) {
	orders := &test.OrderRepositoryStub{Orders: []model.Order{{ID: 9, BuyerID: 1, SellerID: 2, Currency: "EUR", Status: model.OrderStatusPaymentPending}}}
	payments := &test.PaymentRepositoryStub{}

	var created *model.PaymentRecord
	payments.CreateFn = func(ctx context.Context, p *model.PaymentRecord) (*model.PaymentRecord, *model.Order, error) {
		created = p
		rec := *p
		rec.ID = 3
		return &rec, &model.Order{ID: 9, BuyerID: 1, SellerID: 2, PaymentStatus: model.PaymentStatusPending}, nil
	}

	uc := NewPaymentLedgerUseCase(payments, orders)
	payment, _, events, err := uc.Record(context.Background(), 9, RecordPaymentInput{
		TransactionID: "TX-100",
		Amount:        2500,
		EvidenceRef:   "receipts/tx-100.pdf",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Currency != "EUR" {
		t.Fatalf("expected order currency, got %s", created.Currency)
	}
	if created.Method != model.PaymentMethodWireTransfer {
		t.Fatalf("expected wire transfer, got %s", created.Method)
	}
	if created.Status != model.PaymentRecordPendingVerification {
		t.Fatalf("expected pending verification, got %s", created.Status)
	}
	if payment.ID != 3 {
		t.Fatalf("unexpected payment id %d", payment.ID)
	}
	if len(events) != 1 || events[0].Kind != event.KindPaymentRecorded {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestPaymentLedgerRecordUnknownOrder(t *testing.T) {
	uc := NewPaymentLedgerUseCase(&test.PaymentRepositoryStub{}, &test.OrderRepositoryStub{})

	if _, _, _, err := uc.Record(context.Background(), 404, RecordPaymentInput{Amount: 100}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPaymentLedgerVerifyEmitsEvent(t *testing.T) {
	payments := &test.PaymentRepositoryStub{
		VerifyFn: func(ctx context.Context, paymentID, verifierID int64, notes string) (*model.PaymentRecord, *model.Order, error) {
			return &model.PaymentRecord{ID: paymentID, Amount: 100, Currency: "USD", Status: model.PaymentRecordVerified},
				&model.Order{ID: 7, BuyerID: 1, SellerID: 2, PaymentStatus: model.PaymentStatusPaid}, nil
		},
	}
	uc := NewPaymentLedgerUseCase(payments, &test.OrderRepositoryStub{})

	_, order, events, err := uc.Verify(context.Background(), 3, 5, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.PaymentStatus != model.PaymentStatusPaid {
		t.Fatalf("unexpected payment status %s", order.PaymentStatus)
	}
	if len(events) != 1 || events[0].Kind != event.KindPaymentVerified {
		t.Fatalf("unexpected events %+v", events)
	}
	if events[0].Payload["payment_status"] != "paid" {
		t.Fatalf("unexpected payload %+v", events[0].Payload)
	}
}

func TestPaymentLedgerVerifySettledRecordPropagates(t *testing.T) {
	payments := &test.PaymentRepositoryStub{
		VerifyFn: func(ctx context.Context, paymentID, verifierID int64, notes string) (*model.PaymentRecord, *model.Order, error) {
			return nil, nil, domainErrors.InvalidState("payment", paymentID, "verified", "verify")
		},
	}
	uc := NewPaymentLedgerUseCase(payments, &test.OrderRepositoryStub{})

	if _, _, _, err := uc.Verify(context.Background(), 3, 5, ""); !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestPaymentLedgerClaimOverdue(t *testing.T) {
	now := time.Date(2025, time.July, 1, 8, 0, 0, 0, time.UTC)
	orders := &test.OrderRepositoryStub{
		ClaimOverdueFn: func(ctx context.Context, limit int, claimedAt time.Time) ([]model.Order, error) {
			if limit != 16 {
				t.Fatalf("unexpected limit %d", limit)
			}
			if !claimedAt.Equal(now) {
				t.Fatalf("unexpected time %v", claimedAt)
			}
			return []model.Order{{ID: 1, Number: "SW-2025000031", BuyerID: 4, SellerID: 5, PaymentDueDate: now.Add(-24 * time.Hour)}}, nil
		},
	}
	uc := NewPaymentLedgerUseCase(&test.PaymentRepositoryStub{}, orders)
	uc.now = func() time.Time { return now }

	claimed, err := uc.ClaimOverdue(context.Background(), 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(claimed) != 1 {
		t.Fatalf("expected 1 order, got %d", len(claimed))
	}

	notice := OverdueNotice(&claimed[0])
	if notice.Kind != event.KindPaymentOverdue {
		t.Fatalf("unexpected kind %s", notice.Kind)
	}
	if notice.Payload["order_number"] != "SW-2025000031" {
		t.Fatalf("unexpected payload %+v", notice.Payload)
	}
	if len(notice.Recipients) != 2 {
		t.Fatalf("expected both parties notified, got %+v", notice.Recipients)
	}
}
