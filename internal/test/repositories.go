package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.Role, country string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Role: role, Country: country}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// RfqRepositoryStub allows tests to customize sourcing request behaviour.
type RfqRepositoryStub struct {
	CreateFn      func(context.Context, *model.Rfq) (*model.Rfq, error)
	GetByIDFn     func(context.Context, int64) (*model.Rfq, error)
	ListByBuyerFn func(context.Context, int64) ([]model.Rfq, error)
	ListOpenFn    func(context.Context) ([]model.Rfq, error)

	Rfqs []model.Rfq
}

func (s *RfqRepositoryStub) Create(ctx context.Context, rfq *model.Rfq) (*model.Rfq, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, rfq)
	}
	created := *rfq
	created.ID = int64(len(s.Rfqs) + 1)
	s.Rfqs = append(s.Rfqs, created)
	return &created, nil
}

func (s *RfqRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Rfq, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, r := range s.Rfqs {
		if r.ID == id {
			rfq := r
			return &rfq, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *RfqRepositoryStub) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Rfq, error) {
	if s.ListByBuyerFn != nil {
		return s.ListByBuyerFn(ctx, buyerID)
	}
	var out []model.Rfq
	for _, r := range s.Rfqs {
		if r.BuyerID == buyerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *RfqRepositoryStub) ListOpen(ctx context.Context) ([]model.Rfq, error) {
	if s.ListOpenFn != nil {
		return s.ListOpenFn(ctx)
	}
	var out []model.Rfq
	for _, r := range s.Rfqs {
		if r.Status == model.RfqStatusOpen {
			out = append(out, r)
		}
	}
	return out, nil
}

// QuoteRepositoryStub allows tests to customize quote behaviour.
type QuoteRepositoryStub struct {
	CreateFn    func(context.Context, *model.RfqQuote) (*model.RfqQuote, error)
	GetByIDFn   func(context.Context, int64) (*model.RfqQuote, error)
	ListByRfqFn func(context.Context, int64) ([]model.RfqQuote, error)
	AcceptFn    func(context.Context, int64, int64, *model.Order) (*model.Order, error)
	RejectFn    func(context.Context, int64) (*model.RfqQuote, error)

	Quotes []model.RfqQuote
}

func (s *QuoteRepositoryStub) Create(ctx context.Context, quote *model.RfqQuote) (*model.RfqQuote, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, quote)
	}
	created := *quote
	created.ID = int64(len(s.Quotes) + 1)
	s.Quotes = append(s.Quotes, created)
	return &created, nil
}

func (s *QuoteRepositoryStub) GetByID(ctx context.Context, id int64) (*model.RfqQuote, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, q := range s.Quotes {
		if q.ID == id {
			quote := q
			return &quote, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *QuoteRepositoryStub) ListByRfq(ctx context.Context, rfqID int64) ([]model.RfqQuote, error) {
	if s.ListByRfqFn != nil {
		return s.ListByRfqFn(ctx, rfqID)
	}
	var out []model.RfqQuote
	for _, q := range s.Quotes {
		if q.RfqID == rfqID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *QuoteRepositoryStub) Accept(ctx context.Context, quoteID, actorID int64, order *model.Order) (*model.Order, error) {
	if s.AcceptFn != nil {
		return s.AcceptFn(ctx, quoteID, actorID, order)
	}
	accepted := *order
	accepted.ID = 1
	accepted.Number = "SW-2025000001"
	return &accepted, nil
}

func (s *QuoteRepositoryStub) Reject(ctx context.Context, quoteID int64) (*model.RfqQuote, error) {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, quoteID)
	}
	quote, err := s.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	quote.Status = model.QuoteStatusRejected
	return quote, nil
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	GetByIDFn        func(context.Context, int64) (*model.Order, error)
	GetByNumberFn    func(context.Context, string) (*model.Order, error)
	ListFn           func(context.Context, repository.OrderFilter) ([]model.Order, error)
	UpdateStatusFn   func(context.Context, int64, int64, model.OrderStatus, string, map[string]string) (*model.Order, error)
	CancelFn         func(context.Context, int64, int64, string) (*model.Order, error)
	UpdateShippingFn func(context.Context, int64, model.ShippingDetails, *time.Time) (*model.Order, error)
	HistoryFn        func(context.Context, int64) ([]model.StatusHistoryEntry, error)
	ClaimOverdueFn   func(context.Context, int, time.Time) ([]model.Order, error)

	Orders      []model.Order
	StatusCalls []StatusCall
}

// StatusCall records one UpdateStatus invocation.
type StatusCall struct {
	OrderID  int64
	ActorID  int64
	Status   model.OrderStatus
	Notes    string
	Metadata map[string]string
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.GetByNumberFn != nil {
		return s.GetByNumberFn(ctx, number)
	}
	for _, o := range s.Orders {
		if o.Number == number {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Orders, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID, actorID int64, status model.OrderStatus, notes string, metadata map[string]string) (*model.Order, error) {
	s.StatusCalls = append(s.StatusCalls, StatusCall{OrderID: orderID, ActorID: actorID, Status: status, Notes: notes, Metadata: metadata})
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, actorID, status, notes, metadata)
	}
	order, err := s.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, domainErrors.InvalidState("order", orderID, string(order.Status), string(status))
	}
	order.Status = status
	return order, nil
}

func (s *OrderRepositoryStub) Cancel(ctx context.Context, orderID, actorID int64, reason string) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, actorID, reason)
	}
	order, err := s.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanBeCancelled() {
		return nil, domainErrors.InvalidState("order", orderID, string(order.Status), "cancel")
	}
	order.Status = model.OrderStatusCancelled
	return order, nil
}

func (s *OrderRepositoryStub) UpdateShipping(ctx context.Context, orderID int64, shipping model.ShippingDetails, estimatedDelivery *time.Time) (*model.Order, error) {
	if s.UpdateShippingFn != nil {
		return s.UpdateShippingFn(ctx, orderID, shipping, estimatedDelivery)
	}
	order, err := s.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanBeEdited() {
		return nil, domainErrors.InvalidState("order", orderID, string(order.Status), "update shipping")
	}
	order.Shipping = shipping
	order.EstimatedDeliveryDate = estimatedDelivery
	return order, nil
}

func (s *OrderRepositoryStub) History(ctx context.Context, orderID int64) ([]model.StatusHistoryEntry, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, orderID)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) ClaimOverdue(ctx context.Context, limit int, now time.Time) ([]model.Order, error) {
	if s.ClaimOverdueFn != nil {
		return s.ClaimOverdueFn(ctx, limit, now)
	}
	return nil, nil
}

// PaymentRepositoryStub allows tests to customize payment behaviour.
type PaymentRepositoryStub struct {
	CreateFn      func(context.Context, *model.PaymentRecord) (*model.PaymentRecord, *model.Order, error)
	GetByIDFn     func(context.Context, int64) (*model.PaymentRecord, error)
	ListByOrderFn func(context.Context, int64) ([]model.PaymentRecord, error)
	VerifyFn      func(context.Context, int64, int64, string) (*model.PaymentRecord, *model.Order, error)
	RejectFn      func(context.Context, int64, int64, string) (*model.PaymentRecord, *model.Order, error)
	RefundFn      func(context.Context, int64, int64, string) (*model.PaymentRecord, *model.Order, error)
	RecomputeFn   func(context.Context, int64) (*model.Order, error)
}

func (s *PaymentRepositoryStub) Create(ctx context.Context, payment *model.PaymentRecord) (*model.PaymentRecord, *model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, payment)
	}
	created := *payment
	created.ID = 1
	return &created, &model.Order{ID: payment.OrderID}, nil
}

func (s *PaymentRepositoryStub) GetByID(ctx context.Context, id int64) (*model.PaymentRecord, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PaymentRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.PaymentRecord, error) {
	if s.ListByOrderFn != nil {
		return s.ListByOrderFn(ctx, orderID)
	}
	return nil, nil
}

func (s *PaymentRepositoryStub) Verify(ctx context.Context, paymentID, verifierID int64, notes string) (*model.PaymentRecord, *model.Order, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, paymentID, verifierID, notes)
	}
	return nil, nil, domainErrors.ErrNotFound
}

func (s *PaymentRepositoryStub) Reject(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, *model.Order, error) {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, paymentID, verifierID, reason)
	}
	return nil, nil, domainErrors.ErrNotFound
}

func (s *PaymentRepositoryStub) Refund(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, *model.Order, error) {
	if s.RefundFn != nil {
		return s.RefundFn(ctx, paymentID, verifierID, reason)
	}
	return nil, nil, domainErrors.ErrNotFound
}

func (s *PaymentRepositoryStub) Recompute(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.RecomputeFn != nil {
		return s.RecomputeFn(ctx, orderID)
	}
	return nil, domainErrors.ErrNotFound
}

// InspectionRepositoryStub allows tests to customize inspection behaviour.
type InspectionRepositoryStub struct {
	CreateFn       func(context.Context, *model.InspectionRecord) (*model.InspectionRecord, error)
	GetByIDFn      func(context.Context, int64) (*model.InspectionRecord, error)
	ListByOrderFn  func(context.Context, int64) ([]model.InspectionRecord, error)
	SetChecklistFn func(context.Context, int64, []model.ChecklistItem, model.InspectionStatus) (*model.InspectionRecord, error)
	AddPhotoFn     func(context.Context, int64, model.InspectionPhoto) (*model.InspectionRecord, error)
	CompleteFn     func(context.Context, int64, model.InspectionStatus, string) (*model.InspectionRecord, error)
}

func (s *InspectionRepositoryStub) Create(ctx context.Context, record *model.InspectionRecord) (*model.InspectionRecord, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, record)
	}
	created := *record
	created.ID = 1
	return &created, nil
}

func (s *InspectionRepositoryStub) GetByID(ctx context.Context, id int64) (*model.InspectionRecord, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *InspectionRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.InspectionRecord, error) {
	if s.ListByOrderFn != nil {
		return s.ListByOrderFn(ctx, orderID)
	}
	return nil, nil
}

func (s *InspectionRepositoryStub) SetChecklist(ctx context.Context, id int64, items []model.ChecklistItem, status model.InspectionStatus) (*model.InspectionRecord, error) {
	if s.SetChecklistFn != nil {
		return s.SetChecklistFn(ctx, id, items, status)
	}
	return &model.InspectionRecord{ID: id, Checklist: items, Status: status}, nil
}

func (s *InspectionRepositoryStub) AddPhoto(ctx context.Context, id int64, photo model.InspectionPhoto) (*model.InspectionRecord, error) {
	if s.AddPhotoFn != nil {
		return s.AddPhotoFn(ctx, id, photo)
	}
	return &model.InspectionRecord{ID: id, Photos: []model.InspectionPhoto{photo}}, nil
}

func (s *InspectionRepositoryStub) Complete(ctx context.Context, id int64, status model.InspectionStatus, findings string) (*model.InspectionRecord, error) {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, id, status, findings)
	}
	return &model.InspectionRecord{ID: id, Status: status, Findings: findings}, nil
}

var _ repository.UserRepository = (*UserRepositoryStub)(nil)
var _ repository.RfqRepository = (*RfqRepositoryStub)(nil)
var _ repository.QuoteRepository = (*QuoteRepositoryStub)(nil)
var _ repository.OrderRepository = (*OrderRepositoryStub)(nil)
var _ repository.PaymentRepository = (*PaymentRepositoryStub)(nil)
var _ repository.InspectionRepository = (*InspectionRepositoryStub)(nil)
