package app

import (
	"context"
	"strconv"
	"time"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/event"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/domain/repository"
	"github.com/polkiloo/agromart/internal/notification"
	"github.com/polkiloo/agromart/internal/usecase"
)

// MarketFacade aggregates the marketplace use cases behind one surface and
// orchestrates the cascades between them: a payment covering the full order
// amount advances the order to payment_verified, a passed inspection advances
// it to inspection_passed, a freshly opened inspection parks it at
// inspection_pending. Every operation's lifecycle events go to the
// notification dispatcher, which never blocks the caller.
type MarketFacade struct {
	auth        *usecase.AuthUseCase
	rfqs        *usecase.RfqUseCase
	resolution  *usecase.QuoteResolutionUseCase
	orders      *usecase.OrderUseCase
	ledger      *usecase.PaymentLedgerUseCase
	inspections *usecase.InspectionUseCase
	notifier    *notification.Dispatcher
}

func NewMarketFacade(
	auth *usecase.AuthUseCase,
	rfqs *usecase.RfqUseCase,
	resolution *usecase.QuoteResolutionUseCase,
	orders *usecase.OrderUseCase,
	ledger *usecase.PaymentLedgerUseCase,
	inspections *usecase.InspectionUseCase,
	notifier *notification.Dispatcher,
) *MarketFacade {
	return &MarketFacade{
		auth:        auth,
		rfqs:        rfqs,
		resolution:  resolution,
		orders:      orders,
		ledger:      ledger,
		inspections: inspections,
		notifier:    notifier,
	}
}

func (f *MarketFacade) Register(ctx context.Context, login, password string, role model.Role, country string) (*model.User, string, error) {
	return f.auth.Register(ctx, login, password, role, country)
}

func (f *MarketFacade) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, login, password)
}

func (f *MarketFacade) ParseToken(token string) (int64, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketFacade) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *MarketFacade) CreateRfq(ctx context.Context, buyerID int64, in usecase.CreateRfqInput) (*model.Rfq, error) {
	return f.rfqs.CreateRfq(ctx, buyerID, in)
}

func (f *MarketFacade) GetRfq(ctx context.Context, id int64) (*model.Rfq, error) {
	return f.rfqs.GetRfq(ctx, id)
}

func (f *MarketFacade) ListRfqsByBuyer(ctx context.Context, buyerID int64) ([]model.Rfq, error) {
	return f.rfqs.ListByBuyer(ctx, buyerID)
}

func (f *MarketFacade) ListOpenRfqs(ctx context.Context) ([]model.Rfq, error) {
	return f.rfqs.ListOpen(ctx)
}

func (f *MarketFacade) SubmitQuote(ctx context.Context, sellerID, rfqID int64, in usecase.SubmitQuoteInput) (*model.RfqQuote, error) {
	return f.rfqs.SubmitQuote(ctx, sellerID, rfqID, in)
}

func (f *MarketFacade) ListQuotes(ctx context.Context, rfqID int64) ([]model.RfqQuote, error) {
	return f.rfqs.ListQuotes(ctx, rfqID)
}

// AcceptQuote converts a pending quote into an order, closing the RFQ and
// rejecting every rival quote in the same transaction.
func (f *MarketFacade) AcceptQuote(ctx context.Context, buyerID, quoteID int64) (*model.Order, error) {
	order, events, err := f.resolution.AcceptQuote(ctx, buyerID, quoteID)
	if err != nil {
		return nil, err
	}
	f.notifier.Publish(events...)
	return order, nil
}

func (f *MarketFacade) RejectQuote(ctx context.Context, buyerID, quoteID int64) (*model.RfqQuote, error) {
	quote, events, err := f.resolution.RejectQuote(ctx, buyerID, quoteID)
	if err != nil {
		return nil, err
	}
	f.notifier.Publish(events...)
	return quote, nil
}

func (f *MarketFacade) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *MarketFacade) GetOrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	return f.orders.GetByNumber(ctx, number)
}

func (f *MarketFacade) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *MarketFacade) OrderHistory(ctx context.Context, orderID int64) ([]model.StatusHistoryEntry, error) {
	return f.orders.History(ctx, orderID)
}

// AdvanceOrder applies the named lifecycle transition for the target status.
// An unknown or cancel target is a validation error; cancellation goes
// through CancelOrder with its mandatory reason.
func (f *MarketFacade) AdvanceOrder(ctx context.Context, orderID, actorID int64, status model.OrderStatus, notes string) (*model.Order, error) {
	var (
		order  *model.Order
		events []event.Event
		err    error
	)
	switch status {
	case model.OrderStatusProformaIssued:
		order, events, err = f.orders.MarkProformaIssued(ctx, orderID, actorID, notes)
	case model.OrderStatusPaymentPending:
		order, events, err = f.orders.MarkPaymentPending(ctx, orderID, actorID, notes)
	case model.OrderStatusPaymentVerified:
		order, events, err = f.orders.MarkPaymentVerified(ctx, orderID, actorID, notes, nil)
	case model.OrderStatusInPreparation:
		order, events, err = f.orders.MarkInPreparation(ctx, orderID, actorID, notes)
	case model.OrderStatusInspectionPending:
		order, events, err = f.orders.MarkInspectionPending(ctx, orderID, actorID, notes, nil)
	case model.OrderStatusInspectionPassed:
		order, events, err = f.orders.MarkInspectionPassed(ctx, orderID, actorID, notes, nil)
	case model.OrderStatusReadyForShipping:
		order, events, err = f.orders.MarkReadyForShipping(ctx, orderID, actorID, notes)
	case model.OrderStatusShipped:
		order, events, err = f.orders.MarkShipped(ctx, orderID, actorID, notes)
	case model.OrderStatusDelivered:
		order, events, err = f.orders.MarkDelivered(ctx, orderID, actorID, notes)
	case model.OrderStatusCompleted:
		order, events, err = f.orders.MarkCompleted(ctx, orderID, actorID, notes)
	default:
		return nil, domainErrors.Validation("status", "is not an advanceable status")
	}
	if err != nil {
		return nil, err
	}
	f.notifier.Publish(events...)
	return order, nil
}

func (f *MarketFacade) CancelOrder(ctx context.Context, orderID, actorID int64, reason string) (*model.Order, error) {
	order, events, err := f.orders.Cancel(ctx, orderID, actorID, reason)
	if err != nil {
		return nil, err
	}
	f.notifier.Publish(events...)
	return order, nil
}

func (f *MarketFacade) UpdateOrderShipping(ctx context.Context, orderID int64, shipping model.ShippingDetails, estimatedDelivery *time.Time) (*model.Order, error) {
	return f.orders.UpdateShipping(ctx, orderID, shipping, estimatedDelivery)
}

func (f *MarketFacade) RecordPayment(ctx context.Context, orderID int64, in usecase.RecordPaymentInput) (*model.PaymentRecord, error) {
	payment, _, events, err := f.ledger.Record(ctx, orderID, in)
	if err != nil {
		return nil, err
	}
	f.notifier.Publish(events...)
	return payment, nil
}

// VerifyPayment confirms a pending payment. When the verified total covers
// the order amount the order advances to payment_verified.
func (f *MarketFacade) VerifyPayment(ctx context.Context, paymentID, verifierID int64) (*model.PaymentRecord, error) {
	payment, order, events, err := f.ledger.Verify(ctx, paymentID, verifierID, "")
	if err != nil {
		return nil, err
	}
	f.notifier.Publish(events...)

	if order.PaymentStatus == model.PaymentStatusPaid && awaitingPayment(order.Status) {
		_, cascadeEvents, err := f.orders.MarkPaymentVerified(ctx, order.ID, verifierID,
			"payment verified in full",
			map[string]string{"payment_id": strconv.FormatInt(payment.ID, 10)})
		if err != nil {
			return nil, err
		}
		f.notifier.Publish(cascadeEvents...)
	}
	return payment, nil
}

func (f *MarketFacade) RejectPayment(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, error) {
	payment, _, events, err := f.ledger.Reject(ctx, paymentID, verifierID, reason)
	if err != nil {
		return nil, err
	}
	f.notifier.Publish(events...)
	return payment, nil
}

func (f *MarketFacade) RefundPayment(ctx context.Context, paymentID, verifierID int64, reason string) (*model.PaymentRecord, error) {
	payment, _, events, err := f.ledger.Refund(ctx, paymentID, verifierID, reason)
	if err != nil {
		return nil, err
	}
	f.notifier.Publish(events...)
	return payment, nil
}

func (f *MarketFacade) GetPayment(ctx context.Context, id int64) (*model.PaymentRecord, error) {
	return f.ledger.GetPayment(ctx, id)
}

func (f *MarketFacade) ListPayments(ctx context.Context, orderID int64) ([]model.PaymentRecord, error) {
	return f.ledger.ListByOrder(ctx, orderID)
}

// CreateInspection opens an inspection pass and parks the order at
// inspection_pending until the verdict lands.
func (f *MarketFacade) CreateInspection(ctx context.Context, orderID, inspectorID int64, in usecase.CreateInspectionInput) (*model.InspectionRecord, error) {
	record, events, err := f.inspections.Create(ctx, orderID, inspectorID, in)
	if err != nil {
		return nil, err
	}
	f.notifier.Publish(events...)

	_, cascadeEvents, err := f.orders.MarkInspectionPending(ctx, orderID, inspectorID,
		"inspection scheduled",
		map[string]string{"inspection_id": strconv.FormatInt(record.ID, 10)})
	if err != nil {
		return nil, err
	}
	f.notifier.Publish(cascadeEvents...)
	return record, nil
}

func (f *MarketFacade) GetInspection(ctx context.Context, id int64) (*model.InspectionRecord, error) {
	return f.inspections.Get(ctx, id)
}

func (f *MarketFacade) ListInspections(ctx context.Context, orderID int64) ([]model.InspectionRecord, error) {
	return f.inspections.ListByOrder(ctx, orderID)
}

// UpdateInspectionChecklist rescores the checklist; a passed verdict
// advances the order to inspection_passed right away.
func (f *MarketFacade) UpdateInspectionChecklist(ctx context.Context, id int64, items []model.ChecklistItem) (*model.InspectionRecord, error) {
	record, events, err := f.inspections.UpdateChecklist(ctx, id, items)
	if err != nil {
		return nil, err
	}
	f.notifier.Publish(events...)

	if record.Status == model.InspectionStatusPassed {
		_, cascadeEvents, err := f.orders.MarkInspectionPassed(ctx, record.OrderID, record.InspectorID,
			"inspection passed",
			map[string]string{"inspection_id": strconv.FormatInt(record.ID, 10)})
		if err != nil {
			return nil, err
		}
		f.notifier.Publish(cascadeEvents...)
	}
	return record, nil
}

func (f *MarketFacade) AddInspectionPhoto(ctx context.Context, id int64, path, caption string) (*model.InspectionRecord, error) {
	return f.inspections.AddPhoto(ctx, id, path, caption)
}

// CompleteInspection finalizes an inspection; a passed verdict advances the
// order to inspection_passed.
func (f *MarketFacade) CompleteInspection(ctx context.Context, id int64, notes string) (*model.InspectionRecord, error) {
	record, events, err := f.inspections.Complete(ctx, id, notes)
	if err != nil {
		return nil, err
	}
	f.notifier.Publish(events...)

	if record.Status == model.InspectionStatusPassed {
		_, cascadeEvents, err := f.orders.MarkInspectionPassed(ctx, record.OrderID, record.InspectorID,
			"inspection passed",
			map[string]string{"inspection_id": strconv.FormatInt(record.ID, 10)})
		if err != nil {
			return nil, err
		}
		f.notifier.Publish(cascadeEvents...)
	}
	return record, nil
}

// ClaimOverduePayments is the monitor entry point: it marks due unpaid
// orders overdue and hands them back for fan-out.
func (f *MarketFacade) ClaimOverduePayments(ctx context.Context, limit int) ([]model.Order, error) {
	return f.ledger.ClaimOverdue(ctx, limit)
}

// NotifyPaymentOverdue publishes the overdue notice for one claimed order.
func (f *MarketFacade) NotifyPaymentOverdue(ctx context.Context, order model.Order) error {
	f.notifier.Publish(usecase.OverdueNotice(&order))
	return nil
}

// awaitingPayment reports whether the order has not yet moved past the
// payment stage.
func awaitingPayment(s model.OrderStatus) bool {
	switch s {
	case model.OrderStatusDraft, model.OrderStatusProformaIssued, model.OrderStatusPaymentPending:
		return true
	}
	return false
}
