package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/test"
)

var rfqNow = time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)

func newRfqUseCase(rfqs *test.RfqRepositoryStub, quotes *test.QuoteRepositoryStub) *RfqUseCase {
	uc := NewRfqUseCase(rfqs, quotes)
	uc.now = func() time.Time { return rfqNow }
	return uc
}

func TestRfqUseCaseCreateValidation(t *testing.T) {
	uc := newRfqUseCase(&test.RfqRepositoryStub{}, &test.QuoteRepositoryStub{})

	cases := []struct {
		name string
		in   CreateRfqInput
	}{
		{"empty product", CreateRfqInput{Quantity: 10, ValidUntil: rfqNow.Add(time.Hour)}},
		{"non-positive quantity", CreateRfqInput{Product: "wheat", ValidUntil: rfqNow.Add(time.Hour)}},
		{"valid_until in the past", CreateRfqInput{Product: "wheat", Quantity: 10, ValidUntil: rfqNow.Add(-time.Hour)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.CreateRfq(context.Background(), 1, tc.in); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRfqUseCaseCreateSuccess(t *testing.T) {
	rfqs := &test.RfqRepositoryStub{}
	uc := newRfqUseCase(rfqs, &test.QuoteRepositoryStub{})

	rfq, err := uc.CreateRfq(context.Background(), 7, CreateRfqInput{
		Product:    "  organic wheat ",
		Quantity:   500,
		ValidUntil: rfqNow.Add(72 * time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rfq.Product != "organic wheat" {
		t.Fatalf("expected trimmed product, got %q", rfq.Product)
	}
	if rfq.Status != model.RfqStatusOpen {
		t.Fatalf("expected open status, got %s", rfq.Status)
	}
}

func TestRfqUseCaseSubmitQuoteOwnRequest(t *testing.T) {
	rfqs := &test.RfqRepositoryStub{Rfqs: []model.Rfq{{
		ID: 1, BuyerID: 7, Status: model.RfqStatusOpen, ValidUntil: rfqNow.Add(time.Hour),
	}}}
	uc := newRfqUseCase(rfqs, &test.QuoteRepositoryStub{})

	_, err := uc.SubmitQuote(context.Background(), 7, 1, SubmitQuoteInput{
		Price: 10, Quantity: 5, ValidUntil: rfqNow.Add(time.Hour),
	})
	if !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for own rfq, got %v", err)
	}
}

func TestRfqUseCaseSubmitQuoteClosedRequest(t *testing.T) {
	rfqs := &test.RfqRepositoryStub{Rfqs: []model.Rfq{{
		ID: 1, BuyerID: 7, Status: model.RfqStatusClosed, ValidUntil: rfqNow.Add(time.Hour),
	}}}
	uc := newRfqUseCase(rfqs, &test.QuoteRepositoryStub{})

	_, err := uc.SubmitQuote(context.Background(), 9, 1, SubmitQuoteInput{
		Price: 10, Quantity: 5, ValidUntil: rfqNow.Add(time.Hour),
	})
	if !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state error, got %v", err)
	}
}

func TestRfqUseCaseSubmitQuoteDefaultsShippingMethod(t *testing.T) {
	rfqs := &test.RfqRepositoryStub{Rfqs: []model.Rfq{{
		ID: 1, BuyerID: 7, Status: model.RfqStatusOpen, ValidUntil: rfqNow.Add(time.Hour),
	}}}
	quotes := &test.QuoteRepositoryStub{}
	uc := newRfqUseCase(rfqs, quotes)

	quote, err := uc.SubmitQuote(context.Background(), 9, 1, SubmitQuoteInput{
		Price: 12.5, Quantity: 40, ValidUntil: rfqNow.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.ShippingMethod != "standard" {
		t.Fatalf("expected default shipping method, got %q", quote.ShippingMethod)
	}
	if quote.Status != model.QuoteStatusPending {
		t.Fatalf("expected pending status, got %s", quote.Status)
	}
}
