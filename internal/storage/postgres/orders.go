package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/domain/repository"
)

const orderColumns = `id, buyer_id, seller_id, rfq_id, quote_id, order_number, status, currency, amount, paid_amount, payment_status, inspection_status, shipping_details, payment_due_date, estimated_delivery_date, created_at, updated_at`

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND deleted_at IS NULL`
	return scanOrderRow(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number=$1 AND deleted_at IS NULL`
	return scanOrderRow(r.storage.pool.QueryRow(ctx, query, number))
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	conditions := []string{"deleted_at IS NULL"}
	var args []any

	if filter.BuyerID != nil {
		args = append(args, *filter.BuyerID)
		conditions = append(conditions, fmt.Sprintf("buyer_id=$%d", len(args)))
	}
	if filter.SellerID != nil {
		args = append(args, *filter.SellerID)
		conditions = append(conditions, fmt.Sprintf("seller_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		conditions = append(conditions, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ", ")))
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID, actorID int64, status model.OrderStatus, notes string, metadata map[string]string) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		order, err := lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order.Status.Terminal() {
			return domainErrors.InvalidState("order", order.ID, string(order.Status), "transition to "+string(status))
		}

		if _, err := tx.Exec(ctx, `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`, status, order.ID); err != nil {
			return err
		}
		if err := insertHistory(ctx, tx, order.ID, actorID, status, notes, metadata); err != nil {
			return err
		}
		order.Status = status
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *orderRepository) Cancel(ctx context.Context, orderID, actorID int64, reason string) (*model.Order, error) {
	var cancelled *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		order, err := lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !order.CanBeCancelled() {
			return domainErrors.InvalidState("order", order.ID, string(order.Status), "cancel")
		}

		if _, err := tx.Exec(ctx,
			`UPDATE orders SET status=$1, deleted_at=NOW(), updated_at=NOW() WHERE id=$2`,
			model.OrderStatusCancelled, order.ID); err != nil {
			return err
		}
		if err := insertHistory(ctx, tx, order.ID, actorID, model.OrderStatusCancelled, reason, nil); err != nil {
			return err
		}
		order.Status = model.OrderStatusCancelled
		cancelled = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (r *orderRepository) UpdateShipping(ctx context.Context, orderID int64, shipping model.ShippingDetails, estimatedDelivery *time.Time) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		order, err := lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !order.CanBeEdited() {
			return domainErrors.InvalidState("order", order.ID, string(order.Status), "update shipping")
		}

		encoded, err := json.Marshal(shipping)
		if err != nil {
			return fmt.Errorf("marshal shipping details: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE orders SET shipping_details=$1, estimated_delivery_date=$2, updated_at=NOW() WHERE id=$3`,
			encoded, estimatedDelivery, order.ID); err != nil {
			return err
		}
		order.Shipping = shipping
		order.EstimatedDeliveryDate = estimatedDelivery
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *orderRepository) History(ctx context.Context, orderID int64) ([]model.StatusHistoryEntry, error) {
	const query = `SELECT id, order_id, user_id, status, notes, metadata, created_at
                   FROM order_status_history WHERE order_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.StatusHistoryEntry
	for rows.Next() {
		var (
			entry model.StatusHistoryEntry
			meta  []byte
		)
		if err := rows.Scan(&entry.ID, &entry.OrderID, &entry.UserID, &entry.Status, &entry.Notes, &meta, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal history metadata: %w", err)
			}
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ClaimOverdue(ctx context.Context, limit int, now time.Time) ([]model.Order, error) {
	selectQuery := `SELECT ` + orderColumns + ` FROM orders
                    WHERE payment_status=$1 AND payment_due_date < $2 AND deleted_at IS NULL
                    ORDER BY payment_due_date
                    LIMIT $3
                    FOR UPDATE SKIP LOCKED`

	var orders []model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, model.PaymentStatusPending, now, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		orders, err = collectOrders(rows)
		if err != nil {
			return err
		}
		for i := range orders {
			if _, err := tx.Exec(ctx, `UPDATE orders SET payment_status=$1, updated_at=NOW() WHERE id=$2`,
				model.PaymentStatusOverdue, orders[i].ID); err != nil {
				return err
			}
			orders[i].PaymentStatus = model.PaymentStatusOverdue
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func lockOrder(ctx context.Context, tx pgx.Tx, orderID int64) (*model.Order, error) {
	return scanOrderRow(tx.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1 AND deleted_at IS NULL FOR UPDATE`, orderID))
}

func insertHistory(ctx context.Context, tx pgx.Tx, orderID, actorID int64, status model.OrderStatus, notes string, metadata map[string]string) error {
	var meta []byte
	if len(metadata) > 0 {
		var err error
		meta, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("marshal history metadata: %w", err)
		}
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO order_status_history (order_id, user_id, status, notes, metadata) VALUES ($1, $2, $3, $4, $5)`,
		orderID, actorID, status, notes, meta)
	return err
}

func scanOrder(row pgx.Row, o *model.Order) error {
	var shipping []byte
	err := row.Scan(&o.ID, &o.BuyerID, &o.SellerID, &o.RfqID, &o.QuoteID, &o.Number, &o.Status,
		&o.Currency, &o.Amount, &o.PaidAmount, &o.PaymentStatus, &o.InspectionStatus,
		&shipping, &o.PaymentDueDate, &o.EstimatedDeliveryDate, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return err
	}
	if len(shipping) > 0 {
		if err := json.Unmarshal(shipping, &o.Shipping); err != nil {
			return fmt.Errorf("unmarshal shipping details: %w", err)
		}
	}
	return nil
}

func scanOrderRow(row pgx.Row) (*model.Order, error) {
	var o model.Order
	if err := scanOrder(row, &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
