package model

import (
	"testing"
	"time"
)

func TestDerivePaymentStatus(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	cases := []struct {
		name   string
		amount float64
		paid   float64
		due    time.Time
		want   PaymentStatus
	}{
		{"unpaid before due date", 1000, 0, future, PaymentStatusPending},
		{"unpaid past due date", 1000, 0, past, PaymentStatusOverdue},
		{"partially paid before due date", 1000, 400, future, PaymentStatusPartial},
		{"partially paid past due date stays partial", 1000, 400, past, PaymentStatusPartial},
		{"fully paid", 1000, 1000, future, PaymentStatusPaid},
		{"overpaid", 1000, 1200, past, PaymentStatusPaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DerivePaymentStatus(tc.amount, tc.paid, tc.due, now); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled} {
		if !s.Terminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	for _, s := range []OrderStatus{OrderStatusDraft, OrderStatusShipped, OrderStatusDelivered} {
		if s.Terminal() {
			t.Fatalf("expected %s not to be terminal", s)
		}
	}
}

func TestOrderCanBeEdited(t *testing.T) {
	editable := []OrderStatus{OrderStatusDraft, OrderStatusProformaIssued, OrderStatusPaymentPending}
	for _, s := range editable {
		if !(&Order{Status: s}).CanBeEdited() {
			t.Fatalf("expected %s order to be editable", s)
		}
	}
	if (&Order{Status: OrderStatusPaymentVerified}).CanBeEdited() {
		t.Fatal("payment_verified order should not be editable")
	}
}

func TestOrderCanBeCancelled(t *testing.T) {
	blocked := []OrderStatus{OrderStatusShipped, OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled}
	for _, s := range blocked {
		if (&Order{Status: s}).CanBeCancelled() {
			t.Fatalf("expected %s order not to be cancellable", s)
		}
	}
	if !(&Order{Status: OrderStatusInspectionPassed}).CanBeCancelled() {
		t.Fatal("inspection_passed order should be cancellable")
	}
}

func TestNextOrderNumberStartsSequence(t *testing.T) {
	got, err := NextOrderNumber(OrderNumberPrefix("SW", 2025), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "SW-2025000001" {
		t.Fatalf("unexpected first number %s", got)
	}
}

func TestNextOrderNumberIncrements(t *testing.T) {
	got, err := NextOrderNumber("SW-2025", "SW-2025000041")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "SW-2025000042" {
		t.Fatalf("unexpected next number %s", got)
	}
}

func TestNextOrderNumberResetsAcrossYears(t *testing.T) {
	// The sequence restarts because the new year produces a new prefix and
	// the previous year's last number no longer matches it.
	if _, err := NextOrderNumber("SW-2026", "SW-2025000917"); err == nil {
		t.Fatal("expected mismatched prefix error")
	}
	got, err := NextOrderNumber("SW-2026", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "SW-2026000001" {
		t.Fatalf("unexpected number %s", got)
	}
}

func TestNextOrderNumberRejectsMalformedSequence(t *testing.T) {
	if _, err := NextOrderNumber("SW-2025", "SW-2025abcdef"); err == nil {
		t.Fatal("expected malformed sequence error")
	}
}
