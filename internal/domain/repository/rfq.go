package repository

import (
	"context"

	"github.com/polkiloo/agromart/internal/domain/model"
)

// RfqRepository describes persistence operations for sourcing requests.
type RfqRepository interface {
	Create(ctx context.Context, rfq *model.Rfq) (*model.Rfq, error)
	GetByID(ctx context.Context, id int64) (*model.Rfq, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]model.Rfq, error)
	ListOpen(ctx context.Context) ([]model.Rfq, error)
}

// QuoteRepository describes persistence operations for seller quotes.
type QuoteRepository interface {
	Create(ctx context.Context, quote *model.RfqQuote) (*model.RfqQuote, error)
	GetByID(ctx context.Context, id int64) (*model.RfqQuote, error)
	ListByRfq(ctx context.Context, rfqID int64) ([]model.RfqQuote, error)

	// Accept atomically marks the quote accepted, closes its RFQ, rejects
	// every rival quote, and instantiates the order with a freshly assigned
	// order number. The RFQ row is locked for the duration; a quote whose
	// RFQ is no longer open fails with an invalid-state error.
	Accept(ctx context.Context, quoteID int64, actorID int64, order *model.Order) (*model.Order, error)

	// Reject marks a single pending quote rejected.
	Reject(ctx context.Context, quoteID int64) (*model.RfqQuote, error)
}
