package usecase

import (
	"context"
	"strconv"
	"time"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/event"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/domain/repository"
)

// paymentDueTerm is how long a buyer has to settle a new order.
const paymentDueTerm = 7 * 24 * time.Hour

// QuoteResolutionUseCase converts exactly one accepted quote into an order
// and forecloses every rival quote on the same sourcing request.
type QuoteResolutionUseCase struct {
	rfqs   repository.RfqRepository
	quotes repository.QuoteRepository
	users  repository.UserRepository
	now    func() time.Time
}

// NewQuoteResolutionUseCase constructs QuoteResolutionUseCase.
func NewQuoteResolutionUseCase(rfqs repository.RfqRepository, quotes repository.QuoteRepository, users repository.UserRepository) *QuoteResolutionUseCase {
	return &QuoteResolutionUseCase{rfqs: rfqs, quotes: quotes, users: users, now: time.Now}
}

// AcceptQuote accepts a pending quote on behalf of the requesting buyer.
// The resulting order starts in draft with the settlement currency derived
// from the buyer's country and payment due seven days out. Acceptance,
// RFQ closure, rival rejection and order creation commit atomically; the
// repository serializes concurrent acceptances on the RFQ row.
func (u *QuoteResolutionUseCase) AcceptQuote(ctx context.Context, buyerID, quoteID int64) (*model.Order, []event.Event, error) {
	now := u.now()

	quote, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}
	rfq, err := u.rfqs.GetByID(ctx, quote.RfqID)
	if err != nil {
		return nil, nil, err
	}
	if rfq.BuyerID != buyerID {
		return nil, nil, domainErrors.ErrNotFound
	}
	if !quote.IsPending() {
		return nil, nil, domainErrors.InvalidState("quote", quote.ID, string(quote.Status), "accept")
	}
	if quote.IsExpired(now) {
		return nil, nil, domainErrors.InvalidState("quote", quote.ID, "expired", "accept")
	}
	if !rfq.IsOpen(now) {
		return nil, nil, domainErrors.InvalidState("rfq", rfq.ID, string(rfq.Status), "accept quote")
	}

	buyer, err := u.users.GetByID(ctx, buyerID)
	if err != nil {
		return nil, nil, err
	}
	seller, err := u.users.GetByID(ctx, quote.SellerID)
	if err != nil {
		return nil, nil, err
	}

	delivery := quote.DeliveryDate
	draft := &model.Order{
		BuyerID:        buyerID,
		SellerID:       quote.SellerID,
		RfqID:          rfq.ID,
		QuoteID:        quote.ID,
		Status:         model.OrderStatusDraft,
		Currency:       model.DefaultCurrency(buyer.Country),
		Amount:         quote.Total(),
		PaymentStatus:  model.PaymentStatusPending,
		PaymentDueDate: now.Add(paymentDueTerm),
		Shipping: model.ShippingDetails{
			Method:      quote.ShippingMethod,
			Terms:       quote.ShippingTerms,
			Origin:      seller.Country,
			Destination: rfq.DeliveryLocation,
		},
		EstimatedDeliveryDate: &delivery,
	}

	order, err := u.quotes.Accept(ctx, quoteID, buyerID, draft)
	if err != nil {
		return nil, nil, err
	}

	events := []event.Event{
		event.New(event.KindQuoteStatusChanged, []int64{quote.SellerID}, order.ID, map[string]string{
			"quote_id": strconv.FormatInt(quote.ID, 10),
			"status":   string(model.QuoteStatusAccepted),
		}),
		event.New(event.KindOrderCreated, []int64{order.BuyerID, order.SellerID}, order.ID, map[string]string{
			"order_number": order.Number,
			"amount":       strconv.FormatFloat(order.Amount, 'f', 2, 64),
			"currency":     order.Currency,
		}),
	}
	return order, events, nil
}

// RejectQuote declines a pending quote on behalf of the requesting buyer.
func (u *QuoteResolutionUseCase) RejectQuote(ctx context.Context, buyerID, quoteID int64) (*model.RfqQuote, []event.Event, error) {
	quote, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}
	rfq, err := u.rfqs.GetByID(ctx, quote.RfqID)
	if err != nil {
		return nil, nil, err
	}
	if rfq.BuyerID != buyerID {
		return nil, nil, domainErrors.ErrNotFound
	}

	rejected, err := u.quotes.Reject(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}

	events := []event.Event{
		event.New(event.KindQuoteStatusChanged, []int64{rejected.SellerID}, 0, map[string]string{
			"quote_id": strconv.FormatInt(rejected.ID, 10),
			"status":   string(model.QuoteStatusRejected),
		}),
	}
	return rejected, events, nil
}
