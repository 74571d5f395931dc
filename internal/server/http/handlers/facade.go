package handlers

import (
	"context"
	"time"

	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/domain/repository"
	"github.com/polkiloo/agromart/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string, role model.Role, country string) (*model.User, string, error)
	Authenticate(ctx context.Context, login, password string) (*model.User, string, error)
	ParseToken(token string) (int64, model.Role, error)
}

// RfqFacade encapsulates sourcing request and quote operations.
type RfqFacade interface {
	CreateRfq(ctx context.Context, buyerID int64, in usecase.CreateRfqInput) (*model.Rfq, error)
	GetRfq(ctx context.Context, id int64) (*model.Rfq, error)
	ListRfqsByBuyer(ctx context.Context, buyerID int64) ([]model.Rfq, error)
	ListOpenRfqs(ctx context.Context) ([]model.Rfq, error)
	SubmitQuote(ctx context.Context, sellerID, rfqID int64, in usecase.SubmitQuoteInput) (*model.RfqQuote, error)
	ListQuotes(ctx context.Context, rfqID int64) ([]model.RfqQuote, error)
	AcceptQuote(ctx context.Context, buyerID, quoteID int64) (*model.Order, error)
	RejectQuote(ctx context.Context, buyerID, quoteID int64) (*model.RfqQuote, error)
}

// OrderFacade encapsulates order lifecycle operations exposed via HTTP.
type OrderFacade interface {
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error)
	OrderHistory(ctx context.Context, orderID int64) ([]model.StatusHistoryEntry, error)
	AdvanceOrder(ctx context.Context, orderID, actorID int64, status model.OrderStatus, notes string) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID, actorID int64, reason string) (*model.Order, error)
	UpdateOrderShipping(ctx context.Context, orderID int64, shipping model.ShippingDetails, estimatedDelivery *time.Time) (*model.Order, error)
}

// PaymentFacade encapsulates payment ledger operations.
type PaymentFacade interface {
	RecordPayment(ctx context.Context, orderID int64, in usecase.RecordPaymentInput) (*model.PaymentRecord, error)
	VerifyPayment(ctx context.Context, paymentID, verifierID int64) (*model.PaymentRecord, error)
	RejectPayment(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, error)
	RefundPayment(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, error)
	GetPayment(ctx context.Context, id int64) (*model.PaymentRecord, error)
	ListPayments(ctx context.Context, orderID int64) ([]model.PaymentRecord, error)
}

// InspectionFacade encapsulates inspection operations.
type InspectionFacade interface {
	CreateInspection(ctx context.Context, orderID, inspectorID int64, in usecase.CreateInspectionInput) (*model.InspectionRecord, error)
	GetInspection(ctx context.Context, id int64) (*model.InspectionRecord, error)
	ListInspections(ctx context.Context, orderID int64) ([]model.InspectionRecord, error)
	UpdateInspectionChecklist(ctx context.Context, id int64, items []model.ChecklistItem) (*model.InspectionRecord, error)
	AddInspectionPhoto(ctx context.Context, id int64, path, caption string) (*model.InspectionRecord, error)
	CompleteInspection(ctx context.Context, id int64, notes string) (*model.InspectionRecord, error)
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	RfqFacade
	OrderFacade
	PaymentFacade
	InspectionFacade
}
