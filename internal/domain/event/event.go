// Package event defines lifecycle notifications the core emits for external
// collaborators. The core never blocks on their delivery.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Kind enumerates lifecycle notification kinds.
type Kind string

const (
	KindOrderCreated        Kind = "order_created"
	KindOrderStatusChanged  Kind = "order_status_changed"
	KindPaymentRecorded     Kind = "payment_recorded"
	KindPaymentVerified     Kind = "payment_verified"
	KindPaymentRejected     Kind = "payment_rejected"
	KindPaymentRefunded     Kind = "payment_refunded"
	KindPaymentOverdue      Kind = "payment_overdue"
	KindInspectionCreated   Kind = "inspection_created"
	KindInspectionUpdated   Kind = "inspection_updated"
	KindInspectionCompleted Kind = "inspection_completed"
	KindQuoteStatusChanged  Kind = "quote_status_changed"
)

// Event is one notification addressed to one or more users.
type Event struct {
	ID         string            `json:"id"`
	Kind       Kind              `json:"kind"`
	Recipients []int64           `json:"recipients"`
	OrderID    int64             `json:"order_id,omitempty"`
	Payload    map[string]string `json:"payload,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// New builds an event with a fresh identifier and timestamp.
func New(kind Kind, recipients []int64, orderID int64, payload map[string]string) Event {
	return Event{
		ID:         uuid.NewString(),
		Kind:       kind,
		Recipients: recipients,
		OrderID:    orderID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}
