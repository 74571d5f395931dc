package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/event"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/test"
)

func TestOrderUseCaseNamedTransitions(t *testing.T) {
	cases := []struct {
		name string
		call func(*OrderUseCase) (*model.Order, []event.Event, error)
		want model.OrderStatus
	}{
		{"proforma issued", func(u *OrderUseCase) (*model.Order, []event.Event, error) {
			return u.MarkProformaIssued(context.Background(), 1, 5, "")
		}, model.OrderStatusProformaIssued},
		{"payment pending", func(u *OrderUseCase) (*model.Order, []event.Event, error) {
			return u.MarkPaymentPending(context.Background(), 1, 5, "")
		}, model.OrderStatusPaymentPending},
		{"payment verified", func(u *OrderUseCase) (*model.Order, []event.Event, error) {
			return u.MarkPaymentVerified(context.Background(), 1, 5, "", nil)
		}, model.OrderStatusPaymentVerified},
		{"shipped", func(u *OrderUseCase) (*model.Order, []event.Event, error) {
			return u.MarkShipped(context.Background(), 1, 5, "container loaded")
		}, model.OrderStatusShipped},
		{"completed", func(u *OrderUseCase) (*model.Order, []event.Event, error) {
			return u.MarkCompleted(context.Background(), 1, 5, "")
		}, model.OrderStatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders := &test.OrderRepositoryStub{Orders: []model.Order{{ID: 1, BuyerID: 2, SellerID: 3, Status: model.OrderStatusDraft}}}
			uc := NewOrderUseCase(orders)

			order, events, err := tc.call(uc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if order.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, order.Status)
			}
			if len(orders.StatusCalls) != 1 || orders.StatusCalls[0].ActorID != 5 {
				t.Fatalf("unexpected status calls %+v", orders.StatusCalls)
			}
			if len(events) != 1 || events[0].Kind != event.KindOrderStatusChanged {
				t.Fatalf("unexpected events %+v", events)
			}
		})
	}
}

func TestOrderUseCaseTransitionOutOfTerminalState(t *testing.T) {
	orders := &test.OrderRepositoryStub{Orders: []model.Order{{ID: 1, Status: model.OrderStatusCompleted}}}
	uc := NewOrderUseCase(orders)

	if _, _, err := uc.MarkShipped(context.Background(), 1, 5, ""); !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestOrderUseCaseCancelRequiresReason(t *testing.T) {
	orders := &test.OrderRepositoryStub{Orders: []model.Order{{ID: 1, Status: model.OrderStatusDraft}}}
	uc := NewOrderUseCase(orders)

	if _, _, err := uc.Cancel(context.Background(), 1, 5, "   "); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderUseCaseCancelShippedOrder(t *testing.T) {
	orders := &test.OrderRepositoryStub{Orders: []model.Order{{ID: 1, Status: model.OrderStatusShipped}}}
	uc := NewOrderUseCase(orders)

	if _, _, err := uc.Cancel(context.Background(), 1, 5, "changed my mind"); !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

func TestOrderUseCaseCancelSuccess(t *testing.T) {
	orders := &test.OrderRepositoryStub{Orders: []model.Order{{ID: 1, BuyerID: 2, SellerID: 3, Status: model.OrderStatusPaymentPending}}}
	uc := NewOrderUseCase(orders)

	order, events, err := uc.Cancel(context.Background(), 1, 2, "supplier can no longer deliver")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", order.Status)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}

func TestOrderUseCaseUpdateShippingRequiresMethod(t *testing.T) {
	uc := NewOrderUseCase(&test.OrderRepositoryStub{})

	if _, err := uc.UpdateShipping(context.Background(), 1, model.ShippingDetails{}, nil); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderUseCaseUpdateShippingLockedOrder(t *testing.T) {
	orders := &test.OrderRepositoryStub{Orders: []model.Order{{ID: 1, Status: model.OrderStatusPaymentVerified}}}
	uc := NewOrderUseCase(orders)

	_, err := uc.UpdateShipping(context.Background(), 1, model.ShippingDetails{Method: "air_freight"}, nil)
	if !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}
