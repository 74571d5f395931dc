package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/model"
)

const rfqColumns = `id, buyer_id, product, quantity, quantity_unit, delivery_location, status, valid_until, created_at, updated_at`

func (r *rfqRepository) Create(ctx context.Context, rfq *model.Rfq) (*model.Rfq, error) {
	const query = `INSERT INTO rfqs (buyer_id, product, quantity, quantity_unit, delivery_location, status, valid_until)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at, updated_at`
	stored := *rfq
	err := r.storage.pool.QueryRow(ctx, query,
		rfq.BuyerID, rfq.Product, rfq.Quantity, rfq.QuantityUnit, rfq.DeliveryLocation, rfq.Status, rfq.ValidUntil).
		Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *rfqRepository) GetByID(ctx context.Context, id int64) (*model.Rfq, error) {
	query := `SELECT ` + rfqColumns + ` FROM rfqs WHERE id=$1 AND deleted_at IS NULL`
	return scanRfqRow(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *rfqRepository) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Rfq, error) {
	query := `SELECT ` + rfqColumns + ` FROM rfqs WHERE buyer_id=$1 AND deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRfqs(rows)
}

func (r *rfqRepository) ListOpen(ctx context.Context) ([]model.Rfq, error) {
	query := `SELECT ` + rfqColumns + ` FROM rfqs
              WHERE status='open' AND valid_until >= $1 AND deleted_at IS NULL
              ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, r.storage.now())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRfqs(rows)
}

func scanRfq(row pgx.Row, rfq *model.Rfq) error {
	return row.Scan(&rfq.ID, &rfq.BuyerID, &rfq.Product, &rfq.Quantity, &rfq.QuantityUnit,
		&rfq.DeliveryLocation, &rfq.Status, &rfq.ValidUntil, &rfq.CreatedAt, &rfq.UpdatedAt)
}

func scanRfqRow(row pgx.Row) (*model.Rfq, error) {
	var rfq model.Rfq
	if err := scanRfq(row, &rfq); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rfq, nil
}

func collectRfqs(rows pgx.Rows) ([]model.Rfq, error) {
	var result []model.Rfq
	for rows.Next() {
		var rfq model.Rfq
		if err := scanRfq(rows, &rfq); err != nil {
			return nil, err
		}
		result = append(result, rfq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
