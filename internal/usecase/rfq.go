package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/domain/repository"
)

// RfqUseCase handles buyer sourcing requests and incoming seller quotes.
type RfqUseCase struct {
	rfqs   repository.RfqRepository
	quotes repository.QuoteRepository
	now    func() time.Time
}

// NewRfqUseCase constructs RfqUseCase.
func NewRfqUseCase(rfqs repository.RfqRepository, quotes repository.QuoteRepository) *RfqUseCase {
	return &RfqUseCase{rfqs: rfqs, quotes: quotes, now: time.Now}
}

// CreateRfqInput carries buyer-supplied fields of a new sourcing request.
type CreateRfqInput struct {
	Product          string
	Quantity         float64
	QuantityUnit     string
	DeliveryLocation string
	ValidUntil       time.Time
}

// CreateRfq opens a new sourcing request on behalf of a buyer.
func (u *RfqUseCase) CreateRfq(ctx context.Context, buyerID int64, in CreateRfqInput) (*model.Rfq, error) {
	now := u.now()
	if strings.TrimSpace(in.Product) == "" {
		return nil, domainErrors.Validation("product", "must not be empty")
	}
	if in.Quantity <= 0 {
		return nil, domainErrors.Validation("quantity", "must be positive")
	}
	if !in.ValidUntil.After(now) {
		return nil, domainErrors.Validation("valid_until", "must be in the future")
	}

	return u.rfqs.Create(ctx, &model.Rfq{
		BuyerID:          buyerID,
		Product:          strings.TrimSpace(in.Product),
		Quantity:         in.Quantity,
		QuantityUnit:     in.QuantityUnit,
		DeliveryLocation: in.DeliveryLocation,
		Status:           model.RfqStatusOpen,
		ValidUntil:       in.ValidUntil,
	})
}

// GetRfq fetches a sourcing request by identifier.
func (u *RfqUseCase) GetRfq(ctx context.Context, id int64) (*model.Rfq, error) {
	return u.rfqs.GetByID(ctx, id)
}

// ListByBuyer returns a buyer's sourcing requests, newest first.
func (u *RfqUseCase) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Rfq, error) {
	return u.rfqs.ListByBuyer(ctx, buyerID)
}

// ListOpen returns sourcing requests still accepting quotes.
func (u *RfqUseCase) ListOpen(ctx context.Context) ([]model.Rfq, error) {
	return u.rfqs.ListOpen(ctx)
}

// SubmitQuoteInput carries seller-supplied fields of a new quote.
type SubmitQuoteInput struct {
	Price          float64
	Quantity       float64
	QuantityUnit   string
	ShippingMethod string
	ShippingTerms  string
	DeliveryDate   time.Time
	ValidUntil     time.Time
}

// SubmitQuote records a seller offer against an open sourcing request.
func (u *RfqUseCase) SubmitQuote(ctx context.Context, sellerID, rfqID int64, in SubmitQuoteInput) (*model.RfqQuote, error) {
	now := u.now()
	if in.Price <= 0 {
		return nil, domainErrors.Validation("price", "must be positive")
	}
	if in.Quantity <= 0 {
		return nil, domainErrors.Validation("quantity", "must be positive")
	}
	if !in.ValidUntil.After(now) {
		return nil, domainErrors.Validation("valid_until", "must be in the future")
	}

	rfq, err := u.rfqs.GetByID(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	if rfq.BuyerID == sellerID {
		return nil, domainErrors.Validation("rfq_id", "cannot quote own request")
	}
	if !rfq.IsOpen(now) {
		return nil, domainErrors.InvalidState("rfq", rfq.ID, string(rfq.Status), "submit quote")
	}

	method := in.ShippingMethod
	if method == "" {
		method = "standard"
	}

	return u.quotes.Create(ctx, &model.RfqQuote{
		RfqID:          rfqID,
		SellerID:       sellerID,
		Price:          in.Price,
		Quantity:       in.Quantity,
		QuantityUnit:   in.QuantityUnit,
		ShippingMethod: method,
		ShippingTerms:  in.ShippingTerms,
		DeliveryDate:   in.DeliveryDate,
		Status:         model.QuoteStatusPending,
		ValidUntil:     in.ValidUntil,
	})
}

// ListQuotes returns quotes submitted against a sourcing request.
func (u *RfqUseCase) ListQuotes(ctx context.Context, rfqID int64) ([]model.RfqQuote, error) {
	return u.quotes.ListByRfq(ctx, rfqID)
}
