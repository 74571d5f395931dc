package dto

import (
	"time"

	"github.com/polkiloo/agromart/internal/domain/model"
)

// CreateRfqRequest describes a new sourcing request payload.
type CreateRfqRequest struct {
	Product          string    `json:"product"`
	Quantity         float64   `json:"quantity"`
	QuantityUnit     string    `json:"quantity_unit"`
	DeliveryLocation string    `json:"delivery_location"`
	ValidUntil       time.Time `json:"valid_until"`
}

// RfqResponse is the API shape of a sourcing request.
type RfqResponse struct {
	ID               int64     `json:"id"`
	BuyerID          int64     `json:"buyer_id"`
	Product          string    `json:"product"`
	Quantity         float64   `json:"quantity"`
	QuantityUnit     string    `json:"quantity_unit,omitempty"`
	DeliveryLocation string    `json:"delivery_location,omitempty"`
	Status           string    `json:"status"`
	ValidUntil       time.Time `json:"valid_until"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewRfqResponse maps a domain RFQ to its API shape.
func NewRfqResponse(r *model.Rfq) RfqResponse {
	return RfqResponse{
		ID:               r.ID,
		BuyerID:          r.BuyerID,
		Product:          r.Product,
		Quantity:         r.Quantity,
		QuantityUnit:     r.QuantityUnit,
		DeliveryLocation: r.DeliveryLocation,
		Status:           string(r.Status),
		ValidUntil:       r.ValidUntil,
		CreatedAt:        r.CreatedAt,
	}
}

// SubmitQuoteRequest describes a seller quote payload.
type SubmitQuoteRequest struct {
	Price          float64   `json:"price"`
	Quantity       float64   `json:"quantity"`
	QuantityUnit   string    `json:"quantity_unit"`
	ShippingMethod string    `json:"shipping_method"`
	ShippingTerms  string    `json:"shipping_terms"`
	DeliveryDate   time.Time `json:"delivery_date"`
	ValidUntil     time.Time `json:"valid_until"`
}

// QuoteResponse is the API shape of a seller quote.
type QuoteResponse struct {
	ID             int64     `json:"id"`
	RfqID          int64     `json:"rfq_id"`
	SellerID       int64     `json:"seller_id"`
	Price          float64   `json:"price"`
	Quantity       float64   `json:"quantity"`
	QuantityUnit   string    `json:"quantity_unit,omitempty"`
	ShippingMethod string    `json:"shipping_method"`
	ShippingTerms  string    `json:"shipping_terms,omitempty"`
	DeliveryDate   time.Time `json:"delivery_date"`
	Status         string    `json:"status"`
	ValidUntil     time.Time `json:"valid_until"`
	Total          float64   `json:"total"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewQuoteResponse maps a domain quote to its API shape.
func NewQuoteResponse(q *model.RfqQuote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		RfqID:          q.RfqID,
		SellerID:       q.SellerID,
		Price:          q.Price,
		Quantity:       q.Quantity,
		QuantityUnit:   q.QuantityUnit,
		ShippingMethod: q.ShippingMethod,
		ShippingTerms:  q.ShippingTerms,
		DeliveryDate:   q.DeliveryDate,
		Status:         string(q.Status),
		ValidUntil:     q.ValidUntil,
		Total:          q.Total(),
		CreatedAt:      q.CreatedAt,
	}
}
