package model

import "time"

// PaymentRecordStatus describes the verification lifecycle of a payment.
// Transitions are one-way except verified payments may later be refunded.
type PaymentRecordStatus string

const (
	PaymentRecordPendingVerification PaymentRecordStatus = "pending_verification"
	PaymentRecordVerified            PaymentRecordStatus = "verified"
	PaymentRecordRejected            PaymentRecordStatus = "rejected"
	PaymentRecordRefunded            PaymentRecordStatus = "refunded"
)

// PaymentMethodWireTransfer is the only payment method the platform accepts.
const PaymentMethodWireTransfer = "wire_transfer"

// PaymentRecord is one payment evidence unit submitted against an order.
// EvidenceRef points at the uploaded receipt in the file store; the core
// never interprets its contents.
type PaymentRecord struct {
	ID            int64
	OrderID       int64
	TransactionID string
	Amount        float64
	Currency      string
	Method        string
	Status        PaymentRecordStatus
	Notes         string
	EvidenceRef   string
	VerifiedBy    *int64
	VerifiedAt    *time.Time
	CreatedAt     time.Time
}

// IsPending reports whether the record still awaits verification.
func (p *PaymentRecord) IsPending() bool {
	return p.Status == PaymentRecordPendingVerification
}

// IsVerified reports whether the record counts toward the paid amount.
func (p *PaymentRecord) IsVerified() bool {
	return p.Status == PaymentRecordVerified
}
