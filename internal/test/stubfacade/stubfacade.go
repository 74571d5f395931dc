package stubfacade

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/domain/repository"
	"github.com/polkiloo/agromart/internal/usecase"
)

// AuthFacadeStub mimics authentication capabilities behind HTTP handlers.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, model.Role, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, model.Role, error)
}

func (s AuthFacadeStub) Register(ctx context.Context, login, password string, role model.Role, country string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password, role, country)
	}
	return &model.User{ID: 1, Login: login, Role: role, Country: country}, "token", nil
}

func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return &model.User{ID: 1, Login: login, Role: model.RoleBuyer}, "token", nil
}

func (s AuthFacadeStub) ParseToken(token string) (int64, model.Role, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, model.RoleBuyer, nil
}

// RfqFacadeStub mimics sourcing request operations behind HTTP handlers.
type RfqFacadeStub struct {
	CreateRfqFn   func(context.Context, int64, usecase.CreateRfqInput) (*model.Rfq, error)
	GetRfqFn      func(context.Context, int64) (*model.Rfq, error)
	ListByBuyerFn func(context.Context, int64) ([]model.Rfq, error)
	ListOpenFn    func(context.Context) ([]model.Rfq, error)
	SubmitQuoteFn func(context.Context, int64, int64, usecase.SubmitQuoteInput) (*model.RfqQuote, error)
	ListQuotesFn  func(context.Context, int64) ([]model.RfqQuote, error)
	AcceptFn      func(context.Context, int64, int64) (*model.Order, error)
	RejectFn      func(context.Context, int64, int64) (*model.RfqQuote, error)
}

func (s RfqFacadeStub) CreateRfq(ctx context.Context, buyerID int64, in usecase.CreateRfqInput) (*model.Rfq, error) {
	if s.CreateRfqFn != nil {
		return s.CreateRfqFn(ctx, buyerID, in)
	}
	return &model.Rfq{ID: 1, BuyerID: buyerID, Product: in.Product, Status: model.RfqStatusOpen}, nil
}

func (s RfqFacadeStub) GetRfq(ctx context.Context, id int64) (*model.Rfq, error) {
	if s.GetRfqFn != nil {
		return s.GetRfqFn(ctx, id)
	}
	return &model.Rfq{ID: id, Status: model.RfqStatusOpen}, nil
}

func (s RfqFacadeStub) ListRfqsByBuyer(ctx context.Context, buyerID int64) ([]model.Rfq, error) {
	if s.ListByBuyerFn != nil {
		return s.ListByBuyerFn(ctx, buyerID)
	}
	return nil, nil
}

func (s RfqFacadeStub) ListOpenRfqs(ctx context.Context) ([]model.Rfq, error) {
	if s.ListOpenFn != nil {
		return s.ListOpenFn(ctx)
	}
	return nil, nil
}

func (s RfqFacadeStub) SubmitQuote(ctx context.Context, sellerID, rfqID int64, in usecase.SubmitQuoteInput) (*model.RfqQuote, error) {
	if s.SubmitQuoteFn != nil {
		return s.SubmitQuoteFn(ctx, sellerID, rfqID, in)
	}
	return &model.RfqQuote{ID: 1, RfqID: rfqID, SellerID: sellerID, Status: model.QuoteStatusPending}, nil
}

func (s RfqFacadeStub) ListQuotes(ctx context.Context, rfqID int64) ([]model.RfqQuote, error) {
	if s.ListQuotesFn != nil {
		return s.ListQuotesFn(ctx, rfqID)
	}
	return nil, nil
}

func (s RfqFacadeStub) AcceptQuote(ctx context.Context, buyerID, quoteID int64) (*model.Order, error) {
	if s.AcceptFn != nil {
		return s.AcceptFn(ctx, buyerID, quoteID)
	}
	return &model.Order{ID: 1, BuyerID: buyerID, QuoteID: quoteID, Status: model.OrderStatusDraft}, nil
}

func (s RfqFacadeStub) RejectQuote(ctx context.Context, buyerID, quoteID int64) (*model.RfqQuote, error) {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, buyerID, quoteID)
	}
	return &model.RfqQuote{ID: quoteID, Status: model.QuoteStatusRejected}, nil
}

// OrderFacadeStub mimics order lifecycle operations behind HTTP handlers.
type OrderFacadeStub struct {
	GetFn      func(context.Context, int64) (*model.Order, error)
	ListFn     func(context.Context, repository.OrderFilter) ([]model.Order, error)
	HistoryFn  func(context.Context, int64) ([]model.StatusHistoryEntry, error)
	AdvanceFn  func(context.Context, int64, int64, model.OrderStatus, string) (*model.Order, error)
	CancelFn   func(context.Context, int64, int64, string) (*model.Order, error)
	ShippingFn func(context.Context, int64, model.ShippingDetails, *time.Time) (*model.Order, error)

	Order *model.Order
}

func (s OrderFacadeStub) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	if s.Order != nil {
		return s.Order, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s OrderFacadeStub) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	if s.Order != nil {
		return []model.Order{*s.Order}, nil
	}
	return nil, nil
}

func (s OrderFacadeStub) OrderHistory(ctx context.Context, orderID int64) ([]model.StatusHistoryEntry, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, orderID)
	}
	return nil, nil
}

func (s OrderFacadeStub) AdvanceOrder(ctx context.Context, orderID, actorID int64, status model.OrderStatus, notes string) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, orderID, actorID, status, notes)
	}
	if s.Order == nil {
		return nil, domainErrors.ErrNotFound
	}
	updated := *s.Order
	updated.Status = status
	return &updated, nil
}

func (s OrderFacadeStub) CancelOrder(ctx context.Context, orderID, actorID int64, reason string) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, actorID, reason)
	}
	if s.Order == nil {
		return nil, domainErrors.ErrNotFound
	}
	updated := *s.Order
	updated.Status = model.OrderStatusCancelled
	return &updated, nil
}

func (s OrderFacadeStub) UpdateOrderShipping(ctx context.Context, orderID int64, shipping model.ShippingDetails, estimatedDelivery *time.Time) (*model.Order, error) {
	if s.ShippingFn != nil {
		return s.ShippingFn(ctx, orderID, shipping, estimatedDelivery)
	}
	if s.Order == nil {
		return nil, domainErrors.ErrNotFound
	}
	updated := *s.Order
	updated.Shipping = shipping
	updated.EstimatedDeliveryDate = estimatedDelivery
	return &updated, nil
}

// PaymentFacadeStub mimics payment ledger operations behind HTTP handlers.
type PaymentFacadeStub struct {
	RecordFn func(context.Context, int64, usecase.RecordPaymentInput) (*model.PaymentRecord, error)
	VerifyFn func(context.Context, int64, int64) (*model.PaymentRecord, error)
	RejectFn func(context.Context, int64, int64, string) (*model.PaymentRecord, error)
	RefundFn func(context.Context, int64, int64, string) (*model.PaymentRecord, error)
	GetFn    func(context.Context, int64) (*model.PaymentRecord, error)
	ListFn   func(context.Context, int64) ([]model.PaymentRecord, error)
}

func (s PaymentFacadeStub) RecordPayment(ctx context.Context, orderID int64, in usecase.RecordPaymentInput) (*model.PaymentRecord, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, orderID, in)
	}
	return &model.PaymentRecord{ID: 1, OrderID: orderID, Amount: in.Amount, Status: model.PaymentRecordPendingVerification}, nil
}

func (s PaymentFacadeStub) VerifyPayment(ctx context.Context, paymentID, verifierID int64) (*model.PaymentRecord, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, paymentID, verifierID)
	}
	return &model.PaymentRecord{ID: paymentID, Status: model.PaymentRecordVerified}, nil
}

func (s PaymentFacadeStub) RejectPayment(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, error) {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, paymentID, verifierID, reason)
	}
	return &model.PaymentRecord{ID: paymentID, Status: model.PaymentRecordRejected, Notes: reason}, nil
}

func (s PaymentFacadeStub) RefundPayment(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, error) {
	if s.RefundFn != nil {
		return s.RefundFn(ctx, paymentID, verifierID, reason)
	}
	return &model.PaymentRecord{ID: paymentID, Status: model.PaymentRecordRefunded, Notes: reason}, nil
}

func (s PaymentFacadeStub) GetPayment(ctx context.Context, id int64) (*model.PaymentRecord, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s PaymentFacadeStub) ListPayments(ctx context.Context, orderID int64) ([]model.PaymentRecord, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, orderID)
	}
	return nil, nil
}

// InspectionFacadeStub mimics inspection operations behind HTTP handlers.
type InspectionFacadeStub struct {
	CreateFn    func(context.Context, int64, int64, usecase.CreateInspectionInput) (*model.InspectionRecord, error)
	GetFn       func(context.Context, int64) (*model.InspectionRecord, error)
	ListFn      func(context.Context, int64) ([]model.InspectionRecord, error)
	ChecklistFn func(context.Context, int64, []model.ChecklistItem) (*model.InspectionRecord, error)
	PhotoFn     func(context.Context, int64, string, string) (*model.InspectionRecord, error)
	CompleteFn  func(context.Context, int64, string) (*model.InspectionRecord, error)
}

func (s InspectionFacadeStub) CreateInspection(ctx context.Context, orderID, inspectorID int64, in usecase.CreateInspectionInput) (*model.InspectionRecord, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, orderID, inspectorID, in)
	}
	return &model.InspectionRecord{ID: 1, OrderID: orderID, InspectorID: inspectorID, Status: model.InspectionStatusPending}, nil
}

func (s InspectionFacadeStub) GetInspection(ctx context.Context, id int64) (*model.InspectionRecord, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s InspectionFacadeStub) ListInspections(ctx context.Context, orderID int64) ([]model.InspectionRecord, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, orderID)
	}
	return nil, nil
}

func (s InspectionFacadeStub) UpdateInspectionChecklist(ctx context.Context, id int64, items []model.ChecklistItem) (*model.InspectionRecord, error) {
	if s.ChecklistFn != nil {
		return s.ChecklistFn(ctx, id, items)
	}
	return &model.InspectionRecord{ID: id, Checklist: items, Status: model.EvaluateChecklist(items)}, nil
}

func (s InspectionFacadeStub) AddInspectionPhoto(ctx context.Context, id int64, path, caption string) (*model.InspectionRecord, error) {
	if s.PhotoFn != nil {
		return s.PhotoFn(ctx, id, path, caption)
	}
	return &model.InspectionRecord{ID: id, Photos: []model.InspectionPhoto{{Path: path, Caption: caption}}}, nil
}

func (s InspectionFacadeStub) CompleteInspection(ctx context.Context, id int64, notes string) (*model.InspectionRecord, error) {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, id, notes)
	}
	return &model.InspectionRecord{ID: id, Status: model.InspectionStatusPassed, Findings: notes}, nil
}

// MarketFacadeStub aggregates every handler facade for router level tests.
type MarketFacadeStub struct {
	AuthFacadeStub
	RfqFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
	InspectionFacadeStub
}
