package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OrderStatus describes the order lifecycle from draft to completion.
type OrderStatus string

const (
	OrderStatusDraft             OrderStatus = "draft"
	OrderStatusProformaIssued    OrderStatus = "proforma_issued"
	OrderStatusPaymentPending    OrderStatus = "payment_pending"
	OrderStatusPaymentVerified   OrderStatus = "payment_verified"
	OrderStatusInPreparation     OrderStatus = "in_preparation"
	OrderStatusInspectionPending OrderStatus = "inspection_pending"
	OrderStatusInspectionPassed  OrderStatus = "inspection_passed"
	OrderStatusReadyForShipping  OrderStatus = "ready_for_shipping"
	OrderStatusShipped           OrderStatus = "shipped"
	OrderStatusDelivered         OrderStatus = "delivered"
	OrderStatusCompleted         OrderStatus = "completed"
	OrderStatusCancelled         OrderStatus = "cancelled"
)

// Terminal reports whether no further lifecycle transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// PaymentStatus is the aggregate payment state derived from verified payments.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// DerivePaymentStatus computes the aggregate payment status. Partial payment
// takes priority over lateness: a partially paid order past its due date
// stays partial, never overdue.
func DerivePaymentStatus(amount, paidAmount float64, dueDate, now time.Time) PaymentStatus {
	switch {
	case paidAmount >= amount:
		return PaymentStatusPaid
	case paidAmount > 0:
		return PaymentStatusPartial
	case dueDate.Before(now):
		return PaymentStatusOverdue
	default:
		return PaymentStatusPending
	}
}

// ShippingDetails captures how goods move from seller to buyer.
type ShippingDetails struct {
	Method      string `json:"method"`
	Terms       string `json:"terms,omitempty"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
}

// Order is the central trade entity, created once when a quote is accepted.
type Order struct {
	ID                    int64
	BuyerID               int64
	SellerID              int64
	RfqID                 int64
	QuoteID               int64
	Number                string
	Status                OrderStatus
	Currency              string
	Amount                float64
	PaidAmount            float64
	PaymentStatus         PaymentStatus
	InspectionStatus      InspectionStatus
	Shipping              ShippingDetails
	PaymentDueDate        time.Time
	EstimatedDeliveryDate *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// CanBeEdited reports whether shipping details may still be changed.
func (o *Order) CanBeEdited() bool {
	switch o.Status {
	case OrderStatusDraft, OrderStatusProformaIssued, OrderStatusPaymentPending:
		return true
	}
	return false
}

// CanBeCancelled reports whether the order may still be cancelled.
func (o *Order) CanBeCancelled() bool {
	switch o.Status {
	case OrderStatusShipped, OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled:
		return false
	}
	return true
}

// StatusHistoryEntry is one append-only audit record per status change.
type StatusHistoryEntry struct {
	ID        int64
	OrderID   int64
	UserID    int64
	Status    OrderStatus
	Notes     string
	Metadata  map[string]string
	CreatedAt time.Time
}

const orderNumberSeqWidth = 6

// OrderNumberPrefix builds the shared prefix of all order numbers in a year.
func OrderNumberPrefix(org string, year int) string {
	return fmt.Sprintf("%s-%d", org, year)
}

// NextOrderNumber derives the next order number after lastNumber within the
// prefix's year. An empty lastNumber starts the yearly sequence at 1.
func NextOrderNumber(prefix, lastNumber string) (string, error) {
	seq := 1
	if lastNumber != "" {
		if !strings.HasPrefix(lastNumber, prefix) || len(lastNumber) < orderNumberSeqWidth {
			return "", fmt.Errorf("order number %q does not match prefix %q", lastNumber, prefix)
		}
		last, err := strconv.Atoi(lastNumber[len(lastNumber)-orderNumberSeqWidth:])
		if err != nil {
			return "", fmt.Errorf("order number %q has malformed sequence: %w", lastNumber, err)
		}
		seq = last + 1
	}
	return fmt.Sprintf("%s%0*d", prefix, orderNumberSeqWidth, seq), nil
}
