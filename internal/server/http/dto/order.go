package dto

import (
	"time"

	"github.com/polkiloo/agromart/internal/domain/model"
)

// ShippingDetails is the API shape of order shipping terms.
type ShippingDetails struct {
	Method      string `json:"method"`
	Terms       string `json:"terms,omitempty"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
}

// OrderResponse is the API shape of an order.
type OrderResponse struct {
	ID                    int64           `json:"id"`
	Number                string          `json:"number"`
	BuyerID               int64           `json:"buyer_id"`
	SellerID              int64           `json:"seller_id"`
	RfqID                 int64           `json:"rfq_id"`
	QuoteID               int64           `json:"quote_id"`
	Status                string          `json:"status"`
	Currency              string          `json:"currency"`
	Amount                float64         `json:"amount"`
	PaidAmount            float64         `json:"paid_amount"`
	PaymentStatus         string          `json:"payment_status"`
	InspectionStatus      string          `json:"inspection_status"`
	Shipping              ShippingDetails `json:"shipping"`
	PaymentDueDate        time.Time       `json:"payment_due_date"`
	EstimatedDeliveryDate *time.Time      `json:"estimated_delivery_date,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// NewOrderResponse maps a domain order to its API shape.
func NewOrderResponse(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		Number:           o.Number,
		BuyerID:          o.BuyerID,
		SellerID:         o.SellerID,
		RfqID:            o.RfqID,
		QuoteID:          o.QuoteID,
		Status:           string(o.Status),
		Currency:         o.Currency,
		Amount:           o.Amount,
		PaidAmount:       o.PaidAmount,
		PaymentStatus:    string(o.PaymentStatus),
		InspectionStatus: string(o.InspectionStatus),
		Shipping: ShippingDetails{
			Method:      o.Shipping.Method,
			Terms:       o.Shipping.Terms,
			Origin:      o.Shipping.Origin,
			Destination: o.Shipping.Destination,
		},
		PaymentDueDate:        o.PaymentDueDate,
		EstimatedDeliveryDate: o.EstimatedDeliveryDate,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

// AdvanceOrderRequest names the target lifecycle status.
type AdvanceOrderRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// CancelOrderRequest carries the mandatory cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// UpdateShippingRequest replaces order shipping details.
type UpdateShippingRequest struct {
	Shipping              ShippingDetails `json:"shipping"`
	EstimatedDeliveryDate *time.Time      `json:"estimated_delivery_date"`
}

// HistoryEntryResponse is the API shape of one status history record.
type HistoryEntryResponse struct {
	Status    string            `json:"status"`
	UserID    int64             `json:"user_id"`
	Notes     string            `json:"notes,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewHistoryEntryResponse maps a history entry to its API shape.
func NewHistoryEntryResponse(e *model.StatusHistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		Status:    string(e.Status),
		UserID:    e.UserID,
		Notes:     e.Notes,
		Metadata:  e.Metadata,
		CreatedAt: e.CreatedAt,
	}
}
