package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/model"
)

const paymentColumns = `id, order_id, transaction_id, amount, currency, payment_method, status, notes, evidence_ref, verified_by, verified_at, created_at`

func (r *paymentRepository) Create(ctx context.Context, payment *model.PaymentRecord) (*model.PaymentRecord, *model.Order, error) {
	stored := *payment
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		locked, err := lockOrder(ctx, tx, payment.OrderID)
		if err != nil {
			return err
		}
		if locked.Status.Terminal() {
			return domainErrors.InvalidState("order", locked.ID, string(locked.Status), "record payment")
		}

		const insert = `INSERT INTO payment_records
            (order_id, transaction_id, amount, currency, payment_method, status, notes, evidence_ref)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            RETURNING id, created_at`
		err = tx.QueryRow(ctx, insert,
			stored.OrderID, stored.TransactionID, stored.Amount, stored.Currency,
			stored.Method, stored.Status, stored.Notes, stored.EvidenceRef).
			Scan(&stored.ID, &stored.CreatedAt)
		if err != nil {
			return err
		}

		order, err = r.recomputeTx(ctx, tx, locked)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return &stored, order, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*model.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_records WHERE id=$1`
	return scanPaymentRow(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_records WHERE order_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PaymentRecord
	for rows.Next() {
		var p model.PaymentRecord
		if err := scanPayment(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *paymentRepository) Verify(ctx context.Context, paymentID, verifierID int64, notes string) (*model.PaymentRecord, *model.Order, error) {
	return r.settle(ctx, paymentID, verifierID, notes, model.PaymentRecordPendingVerification, model.PaymentRecordVerified)
}

func (r *paymentRepository) Reject(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, *model.Order, error) {
	return r.settle(ctx, paymentID, verifierID, reason, model.PaymentRecordPendingVerification, model.PaymentRecordRejected)
}

func (r *paymentRepository) Refund(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, *model.Order, error) {
	return r.settle(ctx, paymentID, verifierID, reason, model.PaymentRecordVerified, model.PaymentRecordRefunded)
}

func (r *paymentRepository) Recompute(ctx context.Context, orderID int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		locked, err := lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		order, err = r.recomputeTx(ctx, tx, locked)
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// settle applies a one-way payment status transition and recomputes the
// owning order inside one transaction. A record outside the required status
// fails with an invalid-state error, never a silent no-op.
func (r *paymentRepository) settle(ctx context.Context, paymentID, verifierID int64, notes string, required, next model.PaymentRecordStatus) (*model.PaymentRecord, *model.Order, error) {
	var (
		payment *model.PaymentRecord
		order   *model.Order
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		locked, err := scanPaymentRow(tx.QueryRow(ctx,
			`SELECT `+paymentColumns+` FROM payment_records WHERE id=$1 FOR UPDATE`, paymentID))
		if err != nil {
			return err
		}
		if locked.Status != required {
			return domainErrors.InvalidState("payment", locked.ID, string(locked.Status), string(next))
		}

		now := r.storage.now()
		if _, err := tx.Exec(ctx,
			`UPDATE payment_records SET status=$1, notes=$2, verified_by=$3, verified_at=$4 WHERE id=$5`,
			next, notes, verifierID, now, locked.ID); err != nil {
			return err
		}
		locked.Status = next
		locked.Notes = notes
		locked.VerifiedBy = &verifierID
		locked.VerifiedAt = &now
		payment = locked

		lockedOrder, err := lockOrder(ctx, tx, locked.OrderID)
		if err != nil {
			return err
		}
		order, err = r.recomputeTx(ctx, tx, lockedOrder)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return payment, order, nil
}

// recomputeTx re-derives paid_amount and payment_status for a locked order.
// paid_amount is always the sum of verified payment records, never set
// independently.
func (r *paymentRepository) recomputeTx(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error) {
	var paid float64
	err := tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payment_records WHERE order_id=$1 AND status=$2`,
		order.ID, model.PaymentRecordVerified).Scan(&paid)
	if err != nil {
		return nil, err
	}

	status := model.DerivePaymentStatus(order.Amount, paid, order.PaymentDueDate, r.storage.now())
	if _, err := tx.Exec(ctx,
		`UPDATE orders SET paid_amount=$1, payment_status=$2, updated_at=NOW() WHERE id=$3`,
		paid, status, order.ID); err != nil {
		return nil, err
	}

	order.PaidAmount = paid
	order.PaymentStatus = status
	return order, nil
}

func scanPayment(row pgx.Row, p *model.PaymentRecord) error {
	return row.Scan(&p.ID, &p.OrderID, &p.TransactionID, &p.Amount, &p.Currency, &p.Method,
		&p.Status, &p.Notes, &p.EvidenceRef, &p.VerifiedBy, &p.VerifiedAt, &p.CreatedAt)
}

func scanPaymentRow(row pgx.Row) (*model.PaymentRecord, error) {
	var p model.PaymentRecord
	if err := scanPayment(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
