package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/event"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/domain/repository"
)

// OrderUseCase drives the order lifecycle through named transitions. Each
// transition appends one status history entry attributed to the acting user;
// the repository rejects transitions out of a terminal status.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Get fetches an order by identifier.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// GetByNumber fetches an order by its human-facing number.
func (u *OrderUseCase) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	return u.orders.GetByNumber(ctx, number)
}

// List returns orders matching the filter, newest first.
func (u *OrderUseCase) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	return u.orders.List(ctx, filter)
}

// History returns the append-only status trail of an order, newest first.
func (u *OrderUseCase) History(ctx context.Context, orderID int64) ([]model.StatusHistoryEntry, error) {
	return u.orders.History(ctx, orderID)
}

// MarkProformaIssued records that the seller issued the proforma invoice.
func (u *OrderUseCase) MarkProformaIssued(ctx context.Context, orderID, actorID int64, notes string) (*model.Order, []event.Event, error) {
	return u.transition(ctx, orderID, actorID, model.OrderStatusProformaIssued, notes, nil)
}

// MarkPaymentPending records that the order now awaits buyer payment.
func (u *OrderUseCase) MarkPaymentPending(ctx context.Context, orderID, actorID int64, notes string) (*model.Order, []event.Event, error) {
	return u.transition(ctx, orderID, actorID, model.OrderStatusPaymentPending, notes, nil)
}

// MarkPaymentVerified records that payment covering the order was confirmed.
func (u *OrderUseCase) MarkPaymentVerified(ctx context.Context, orderID, actorID int64, notes string, metadata map[string]string) (*model.Order, []event.Event, error) {
	return u.transition(ctx, orderID, actorID, model.OrderStatusPaymentVerified, notes, metadata)
}

// MarkInPreparation records that the seller started preparing the goods.
func (u *OrderUseCase) MarkInPreparation(ctx context.Context, orderID, actorID int64, notes string) (*model.Order, []event.Event, error) {
	return u.transition(ctx, orderID, actorID, model.OrderStatusInPreparation, notes, nil)
}

// MarkInspectionPending records that the goods await inspection.
func (u *OrderUseCase) MarkInspectionPending(ctx context.Context, orderID, actorID int64, notes string, metadata map[string]string) (*model.Order, []event.Event, error) {
	return u.transition(ctx, orderID, actorID, model.OrderStatusInspectionPending, notes, metadata)
}

// MarkInspectionPassed records that inspection concluded favorably.
func (u *OrderUseCase) MarkInspectionPassed(ctx context.Context, orderID, actorID int64, notes string, metadata map[string]string) (*model.Order, []event.Event, error) {
	return u.transition(ctx, orderID, actorID, model.OrderStatusInspectionPassed, notes, metadata)
}

// MarkReadyForShipping records that the goods are cleared to ship.
func (u *OrderUseCase) MarkReadyForShipping(ctx context.Context, orderID, actorID int64, notes string) (*model.Order, []event.Event, error) {
	return u.transition(ctx, orderID, actorID, model.OrderStatusReadyForShipping, notes, nil)
}

// MarkShipped records that the goods left the seller.
func (u *OrderUseCase) MarkShipped(ctx context.Context, orderID, actorID int64, notes string) (*model.Order, []event.Event, error) {
	return u.transition(ctx, orderID, actorID, model.OrderStatusShipped, notes, nil)
}

// MarkDelivered records that the goods reached the buyer.
func (u *OrderUseCase) MarkDelivered(ctx context.Context, orderID, actorID int64, notes string) (*model.Order, []event.Event, error) {
	return u.transition(ctx, orderID, actorID, model.OrderStatusDelivered, notes, nil)
}

// MarkCompleted closes the order; no further transitions are possible.
func (u *OrderUseCase) MarkCompleted(ctx context.Context, orderID, actorID int64, notes string) (*model.Order, []event.Event, error) {
	return u.transition(ctx, orderID, actorID, model.OrderStatusCompleted, notes, nil)
}

// Cancel retires the order with a mandatory reason. The row is soft-deleted
// so the audit trail survives.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID, actorID int64, reason string) (*model.Order, []event.Event, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, nil, domainErrors.Validation("reason", "must not be empty")
	}

	order, err := u.orders.Cancel(ctx, orderID, actorID, reason)
	if err != nil {
		return nil, nil, err
	}

	events := []event.Event{statusChanged(order, reason)}
	return order, events, nil
}

// UpdateShipping replaces shipping details while the order is still editable.
func (u *OrderUseCase) UpdateShipping(ctx context.Context, orderID int64, shipping model.ShippingDetails, estimatedDelivery *time.Time) (*model.Order, error) {
	if strings.TrimSpace(shipping.Method) == "" {
		return nil, domainErrors.Validation("shipping.method", "must not be empty")
	}
	return u.orders.UpdateShipping(ctx, orderID, shipping, estimatedDelivery)
}

func (u *OrderUseCase) transition(ctx context.Context, orderID, actorID int64, status model.OrderStatus, notes string, metadata map[string]string) (*model.Order, []event.Event, error) {
	order, err := u.orders.UpdateStatus(ctx, orderID, actorID, status, notes, metadata)
	if err != nil {
		return nil, nil, err
	}
	return order, []event.Event{statusChanged(order, notes)}, nil
}

func statusChanged(order *model.Order, notes string) event.Event {
	payload := map[string]string{
		"order_number": order.Number,
		"status":       string(order.Status),
	}
	if notes != "" {
		payload["notes"] = notes
	}
	return event.New(event.KindOrderStatusChanged, []int64{order.BuyerID, order.SellerID}, order.ID, payload)
}
