package dto

import (
	"time"

	"github.com/polkiloo/agromart/internal/domain/model"
)

// RecordPaymentRequest describes payment evidence submitted by a buyer.
type RecordPaymentRequest struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Notes         string  `json:"notes"`
	EvidenceRef   string  `json:"evidence_ref"`
}

// SettlePaymentRequest carries the reason for a rejection or refund.
type SettlePaymentRequest struct {
	Reason string `json:"reason"`
}

// PaymentResponse is the API shape of a payment record.
type PaymentResponse struct {
	ID            int64      `json:"id"`
	OrderID       int64      `json:"order_id"`
	TransactionID string     `json:"transaction_id,omitempty"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes,omitempty"`
	EvidenceRef   string     `json:"evidence_ref,omitempty"`
	VerifiedBy    *int64     `json:"verified_by,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NewPaymentResponse maps a payment record to its API shape.
func NewPaymentResponse(p *model.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Method:        p.Method,
		Status:        string(p.Status),
		Notes:         p.Notes,
		EvidenceRef:   p.EvidenceRef,
		VerifiedBy:    p.VerifiedBy,
		VerifiedAt:    p.VerifiedAt,
		CreatedAt:     p.CreatedAt,
	}
}
