package model

import "time"

// RfqStatus describes the sourcing request lifecycle.
type RfqStatus string

const (
	RfqStatusOpen    RfqStatus = "open"
	RfqStatusClosed  RfqStatus = "closed"
	RfqStatusExpired RfqStatus = "expired"
)

// QuoteStatus describes a seller offer lifecycle.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// Rfq is a buyer's request for quotes against a product listing.
type Rfq struct {
	ID               int64
	BuyerID          int64
	Product          string
	Quantity         float64
	QuantityUnit     string
	DeliveryLocation string
	Status           RfqStatus
	ValidUntil       time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsOpen reports whether the RFQ still accepts quotes at the given moment.
// An RFQ past its valid_until date is expired regardless of stored status.
func (r *Rfq) IsOpen(now time.Time) bool {
	return r.Status == RfqStatusOpen && !r.IsExpired(now)
}

// IsExpired reports whether the RFQ validity window has passed.
func (r *Rfq) IsExpired(now time.Time) bool {
	return r.Status == RfqStatusExpired || r.ValidUntil.Before(now)
}

// RfqQuote is a seller's priced offer against an RFQ.
type RfqQuote struct {
	ID             int64
	RfqID          int64
	SellerID       int64
	Price          float64
	Quantity       float64
	QuantityUnit   string
	ShippingMethod string
	ShippingTerms  string
	DeliveryDate   time.Time
	Status         QuoteStatus
	ValidUntil     time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsPending reports whether the quote can still be accepted or rejected.
func (q *RfqQuote) IsPending() bool {
	return q.Status == QuoteStatusPending
}

// IsExpired reports whether the quote validity window has passed.
func (q *RfqQuote) IsExpired(now time.Time) bool {
	return q.Status == QuoteStatusExpired || q.ValidUntil.Before(now)
}

// Total returns the full order value of the quote.
func (q *RfqQuote) Total() float64 {
	return q.Price * q.Quantity
}
