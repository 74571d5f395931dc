package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/model"
)

const quoteColumns = `id, rfq_id, seller_id, price, quantity, quantity_unit, shipping_method, shipping_terms, delivery_date, status, valid_until, created_at, updated_at`

func (r *quoteRepository) Create(ctx context.Context, quote *model.RfqQuote) (*model.RfqQuote, error) {
	const query = `INSERT INTO rfq_quotes
                   (rfq_id, seller_id, price, quantity, quantity_unit, shipping_method, shipping_terms, delivery_date, status, valid_until)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING id, created_at, updated_at`
	stored := *quote
	err := r.storage.pool.QueryRow(ctx, query,
		quote.RfqID, quote.SellerID, quote.Price, quote.Quantity, quote.QuantityUnit,
		quote.ShippingMethod, quote.ShippingTerms, quote.DeliveryDate, quote.Status, quote.ValidUntil).
		Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *quoteRepository) GetByID(ctx context.Context, id int64) (*model.RfqQuote, error) {
	query := `SELECT ` + quoteColumns + ` FROM rfq_quotes WHERE id=$1 AND deleted_at IS NULL`
	return scanQuoteRow(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *quoteRepository) ListByRfq(ctx context.Context, rfqID int64) ([]model.RfqQuote, error) {
	query := `SELECT ` + quoteColumns + ` FROM rfq_quotes WHERE rfq_id=$1 AND deleted_at IS NULL ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, rfqID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.RfqQuote
	for rows.Next() {
		var q model.RfqQuote
		if err := scanQuote(rows, &q); err != nil {
			return nil, err
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Accept serializes quote acceptance per RFQ with a row lock on the RFQ.
// A second concurrent acceptance finds the RFQ closed under the lock and
// fails before touching anything.
func (r *quoteRepository) Accept(ctx context.Context, quoteID, actorID int64, order *model.Order) (*model.Order, error) {
	stored := *order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		quote, err := scanQuoteRow(tx.QueryRow(ctx,
			`SELECT `+quoteColumns+` FROM rfq_quotes WHERE id=$1 AND deleted_at IS NULL FOR UPDATE`, quoteID))
		if err != nil {
			return err
		}
		if !quote.IsPending() {
			return domainErrors.InvalidState("quote", quote.ID, string(quote.Status), "accept")
		}

		rfq, err := scanRfqRow(tx.QueryRow(ctx,
			`SELECT `+rfqColumns+` FROM rfqs WHERE id=$1 AND deleted_at IS NULL FOR UPDATE`, quote.RfqID))
		if err != nil {
			return err
		}
		if rfq.Status != model.RfqStatusOpen {
			return domainErrors.InvalidState("rfq", rfq.ID, string(rfq.Status), "accept quote")
		}

		number, err := r.nextOrderNumber(ctx, tx)
		if err != nil {
			return err
		}
		stored.Number = number

		shipping, err := json.Marshal(stored.Shipping)
		if err != nil {
			return fmt.Errorf("marshal shipping details: %w", err)
		}

		const insertOrder = `INSERT INTO orders
            (buyer_id, seller_id, rfq_id, quote_id, order_number, status, currency, amount, paid_amount,
             payment_status, inspection_status, shipping_details, payment_due_date, estimated_delivery_date)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10, $11, $12, $13)
            RETURNING id, created_at, updated_at`
		err = tx.QueryRow(ctx, insertOrder,
			stored.BuyerID, stored.SellerID, stored.RfqID, stored.QuoteID, stored.Number,
			stored.Status, stored.Currency, stored.Amount, stored.PaymentStatus,
			stored.InspectionStatus, shipping, stored.PaymentDueDate, stored.EstimatedDeliveryDate).
			Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrConflict
			}
			return err
		}

		if err := insertHistory(ctx, tx, stored.ID, actorID, stored.Status, "order created from accepted quote", nil); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `UPDATE rfq_quotes SET status=$1, updated_at=NOW() WHERE id=$2`,
			model.QuoteStatusAccepted, quote.ID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE rfqs SET status=$1, updated_at=NOW() WHERE id=$2`,
			model.RfqStatusClosed, rfq.ID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE rfq_quotes SET status=$1, updated_at=NOW() WHERE rfq_id=$2 AND id<>$3 AND status=$4`,
			model.QuoteStatusRejected, rfq.ID, quote.ID, model.QuoteStatusPending); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *quoteRepository) Reject(ctx context.Context, quoteID int64) (*model.RfqQuote, error) {
	var rejected *model.RfqQuote
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		quote, err := scanQuoteRow(tx.QueryRow(ctx,
			`SELECT `+quoteColumns+` FROM rfq_quotes WHERE id=$1 AND deleted_at IS NULL FOR UPDATE`, quoteID))
		if err != nil {
			return err
		}
		if !quote.IsPending() {
			return domainErrors.InvalidState("quote", quote.ID, string(quote.Status), "reject")
		}
		if _, err := tx.Exec(ctx, `UPDATE rfq_quotes SET status=$1, updated_at=NOW() WHERE id=$2`,
			model.QuoteStatusRejected, quote.ID); err != nil {
			return err
		}
		quote.Status = model.QuoteStatusRejected
		rejected = quote
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}

// nextOrderNumber assigns the next sequence within the current year. The
// lock on the newest row of the year serializes concurrent assignments.
func (r *quoteRepository) nextOrderNumber(ctx context.Context, tx pgx.Tx) (string, error) {
	prefix := model.OrderNumberPrefix(r.storage.orderPrefix, r.storage.now().Year())

	var last string
	err := tx.QueryRow(ctx,
		`SELECT order_number FROM orders WHERE order_number LIKE $1 ORDER BY order_number DESC LIMIT 1 FOR UPDATE`,
		prefix+"%").Scan(&last)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}
	return model.NextOrderNumber(prefix, last)
}

func scanQuote(row pgx.Row, q *model.RfqQuote) error {
	return row.Scan(&q.ID, &q.RfqID, &q.SellerID, &q.Price, &q.Quantity, &q.QuantityUnit,
		&q.ShippingMethod, &q.ShippingTerms, &q.DeliveryDate, &q.Status, &q.ValidUntil,
		&q.CreatedAt, &q.UpdatedAt)
}

func scanQuoteRow(row pgx.Row) (*model.RfqQuote, error) {
	var q model.RfqQuote
	if err := scanQuote(row, &q); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}
