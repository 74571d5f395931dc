package repository

import (
	"context"
	"time"

	"github.com/polkiloo/agromart/internal/domain/model"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	BuyerID  *int64
	SellerID *int64
	Statuses []model.OrderStatus
}

// OrderRepository describes persistence operations for orders and their
// append-only status history. Writes to a single order are serialized with
// row locks; soft-deleted orders read as not found.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)

	// UpdateStatus sets the lifecycle status and appends one history entry
	// in the same transaction. Orders in a terminal status cannot move.
	UpdateStatus(ctx context.Context, orderID, actorID int64, status model.OrderStatus, notes string, metadata map[string]string) (*model.Order, error)

	// Cancel moves the order to cancelled and soft-deletes it, keeping the
	// row and its history recoverable.
	Cancel(ctx context.Context, orderID, actorID int64, reason string) (*model.Order, error)

	// UpdateShipping replaces shipping details while the order is editable.
	UpdateShipping(ctx context.Context, orderID int64, shipping model.ShippingDetails, estimatedDelivery *time.Time) (*model.Order, error)

	History(ctx context.Context, orderID int64) ([]model.StatusHistoryEntry, error)

	// ClaimOverdue picks up to limit due, still-pending orders with a
	// skip-locked scan, marks their payment status overdue, and returns them.
	ClaimOverdue(ctx context.Context, limit int, now time.Time) ([]model.Order, error)
}
