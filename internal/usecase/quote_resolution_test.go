package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/event"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/test"
)

var resolutionNow = time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC)

func resolutionFixture(t *testing.T) (*QuoteResolutionUseCase, *test.QuoteRepositoryStub) {
	t.Helper()

	users := test.NewUserRepositoryStub()
	if _, err := users.Create(context.Background(), "buyer", "hash", model.RoleBuyer, "DE"); err != nil {
		t.Fatalf("seed buyer: %v", err)
	}
	if _, err := users.Create(context.Background(), "seller", "hash", model.RoleSeller, "BR"); err != nil {
		t.Fatalf("seed seller: %v", err)
	}

	rfqs := &test.RfqRepositoryStub{Rfqs: []model.Rfq{{
		ID:               10,
		BuyerID:          1,
		Product:          "durum wheat",
		Quantity:         500,
		DeliveryLocation: "Hamburg",
		Status:           model.RfqStatusOpen,
		ValidUntil:       resolutionNow.Add(48 * time.Hour),
	}}}
	quotes := &test.QuoteRepositoryStub{Quotes: []model.RfqQuote{{
		ID:             20,
		RfqID:          10,
		SellerID:       2,
		Price:          12.5,
		Quantity:       500,
		ShippingMethod: "sea_freight",
		ShippingTerms:  "CIF",
		DeliveryDate:   resolutionNow.Add(30 * 24 * time.Hour),
		Status:         model.QuoteStatusPending,
		ValidUntil:     resolutionNow.Add(24 * time.Hour),
	}}}

	uc := NewQuoteResolutionUseCase(rfqs, quotes, users)
	uc.now = func() time.Time { return resolutionNow }
	return uc, quotes
}

func TestAcceptQuoteBuildsOrderFromQuoteAndRfq(t *testing.T) {
	uc, quotes := resolutionFixture(t)

	var draft *model.Order
	quotes.AcceptFn = func(ctx context.Context, quoteID, actorID int64, order *model.Order) (*model.Order, error) {
		if quoteID != 20 || actorID != 1 {
			t.Fatalf("unexpected arguments: %d %d", quoteID, actorID)
		}
		draft = order
		accepted := *order
		accepted.ID = 100
		accepted.Number = "SW-2025000001"
		return &accepted, nil
	}

	order, events, err := uc.AcceptQuote(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if draft.Status != model.OrderStatusDraft {
		t.Fatalf("expected draft status, got %s", draft.Status)
	}
	if draft.Currency != "EUR" {
		t.Fatalf("expected EUR for German buyer, got %s", draft.Currency)
	}
	if draft.Amount != 6250 {
		t.Fatalf("expected amount 6250, got %v", draft.Amount)
	}
	wantDue := resolutionNow.Add(7 * 24 * time.Hour)
	if !draft.PaymentDueDate.Equal(wantDue) {
		t.Fatalf("expected due date %v, got %v", wantDue, draft.PaymentDueDate)
	}
	if draft.Shipping.Method != "sea_freight" || draft.Shipping.Terms != "CIF" {
		t.Fatalf("unexpected shipping %+v", draft.Shipping)
	}
	if draft.Shipping.Destination != "Hamburg" {
		t.Fatalf("expected destination from rfq, got %q", draft.Shipping.Destination)
	}
	if draft.Shipping.Origin != "BR" {
		t.Fatalf("expected origin from seller profile, got %q", draft.Shipping.Origin)
	}
	if order.Number != "SW-2025000001" {
		t.Fatalf("unexpected order number %s", order.Number)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != event.KindQuoteStatusChanged || events[1].Kind != event.KindOrderCreated {
		t.Fatalf("unexpected event kinds %s %s", events[0].Kind, events[1].Kind)
	}
}

func TestAcceptQuoteRejectsForeignBuyer(t *testing.T) {
	uc, _ := resolutionFixture(t)

	if _, _, err := uc.AcceptQuote(context.Background(), 99, 20); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for foreign buyer, got %v", err)
	}
}

func TestAcceptQuoteRejectsSettledQuote(t *testing.T) {
	uc, quotes := resolutionFixture(t)
	quotes.Quotes[0].Status = model.QuoteStatusRejected

	if _, _, err := uc.AcceptQuote(context.Background(), 1, 20); !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestAcceptQuoteRejectsExpiredQuote(t *testing.T) {
	uc, quotes := resolutionFixture(t)
	quotes.Quotes[0].ValidUntil = resolutionNow.Add(-time.Minute)

	if _, _, err := uc.AcceptQuote(context.Background(), 1, 20); !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestAcceptQuoteRejectsClosedRfq(t *testing.T) {
	uc, quotes := resolutionFixture(t)
	_ = quotes

	urfqs := uc.rfqs.(*test.RfqRepositoryStub)
	urfqs.Rfqs[0].Status = model.RfqStatusClosed

	if _, _, err := uc.AcceptQuote(context.Background(), 1, 20); !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestRejectQuote(t *testing.T) {
	uc, _ := resolutionFixture(t)

	quote, events, err := uc.RejectQuote(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Status != model.QuoteStatusRejected {
		t.Fatalf("expected rejected status, got %s", quote.Status)
	}
	if len(events) != 1 || events[0].Kind != event.KindQuoteStatusChanged {
		t.Fatalf("unexpected events %+v", events)
	}
}
