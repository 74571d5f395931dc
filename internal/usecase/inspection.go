package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/event"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/domain/repository"
)

// InspectionUseCase manages quality inspections of order goods. Checklist
// updates re-derive the verdict from item outcomes; photos accumulate
// append-only.
type InspectionUseCase struct {
	inspections repository.InspectionRepository
	orders      repository.OrderRepository
	now         func() time.Time
}

// NewInspectionUseCase constructs InspectionUseCase.
func NewInspectionUseCase(inspections repository.InspectionRepository, orders repository.OrderRepository) *InspectionUseCase {
	return &InspectionUseCase{inspections: inspections, orders: orders, now: time.Now}
}

// CreateInspectionInput carries inspector-supplied fields of a new pass.
type CreateInspectionInput struct {
	Location       string
	InspectionDate time.Time
}

// Create opens a new inspection pass over an order's goods.
func (u *InspectionUseCase) Create(ctx context.Context, orderID, inspectorID int64, in CreateInspectionInput) (*model.InspectionRecord, []event.Event, error) {
	date := in.InspectionDate
	if date.IsZero() {
		date = u.now()
	}

	record, err := u.inspections.Create(ctx, &model.InspectionRecord{
		OrderID:        orderID,
		InspectorID:    inspectorID,
		Status:         model.InspectionStatusPending,
		Location:       in.Location,
		InspectionDate: date,
	})
	if err != nil {
		return nil, nil, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	events := []event.Event{inspectionEvent(event.KindInspectionCreated, record, order)}
	return record, events, nil
}

// Get fetches one inspection record.
func (u *InspectionUseCase) Get(ctx context.Context, id int64) (*model.InspectionRecord, error) {
	return u.inspections.GetByID(ctx, id)
}

// ListByOrder returns an order's inspection passes, newest first.
func (u *InspectionUseCase) ListByOrder(ctx context.Context, orderID int64) ([]model.InspectionRecord, error) {
	return u.inspections.ListByOrder(ctx, orderID)
}

// UpdateChecklist replaces the checklist and re-derives the verdict from
// item outcomes. Any failed item fails the pass outright.
func (u *InspectionUseCase) UpdateChecklist(ctx context.Context, id int64, items []model.ChecklistItem) (*model.InspectionRecord, []event.Event, error) {
	if len(items) == 0 {
		return nil, nil, domainErrors.Validation("checklist", "must not be empty")
	}
	for _, item := range items {
		if strings.TrimSpace(item.Item) == "" {
			return nil, nil, domainErrors.Validation("checklist.item", "must not be empty")
		}
		if !model.ValidChecklistItemStatus(item.Status) {
			return nil, nil, domainErrors.Validation("checklist.status", "is not a known outcome")
		}
	}

	verdict := model.EvaluateChecklist(items)
	record, err := u.inspections.SetChecklist(ctx, id, items, verdict)
	if err != nil {
		return nil, nil, err
	}

	order, err := u.orders.GetByID(ctx, record.OrderID)
	if err != nil {
		return nil, nil, err
	}

	events := []event.Event{inspectionEvent(event.KindInspectionUpdated, record, order)}
	return record, events, nil
}

// AddPhoto appends one photo reference to the inspection.
func (u *InspectionUseCase) AddPhoto(ctx context.Context, id int64, path, caption string) (*model.InspectionRecord, error) {
	if strings.TrimSpace(path) == "" {
		return nil, domainErrors.Validation("path", "must not be empty")
	}
	return u.inspections.AddPhoto(ctx, id, model.InspectionPhoto{
		Path:      path,
		Caption:   caption,
		Timestamp: u.now(),
	})
}

// Complete finalizes an open inspection with closing notes. The verdict is
// re-derived from the stored checklist; callers advance the order lifecycle
// when the verdict is passed.
func (u *InspectionUseCase) Complete(ctx context.Context, id int64, notes string) (*model.InspectionRecord, []event.Event, error) {
	current, err := u.inspections.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if len(current.Checklist) == 0 {
		return nil, nil, domainErrors.Validation("checklist", "must be filled before completion")
	}

	verdict := model.EvaluateChecklist(current.Checklist)
	findings := current.Findings
	if strings.TrimSpace(notes) != "" {
		if findings != "" {
			findings += "\n"
		}
		findings += "Final Notes: " + notes
	}

	record, err := u.inspections.Complete(ctx, id, verdict, findings)
	if err != nil {
		return nil, nil, err
	}

	order, err := u.orders.GetByID(ctx, record.OrderID)
	if err != nil {
		return nil, nil, err
	}

	events := []event.Event{inspectionEvent(event.KindInspectionCompleted, record, order)}
	return record, events, nil
}

func inspectionEvent(kind event.Kind, record *model.InspectionRecord, order *model.Order) event.Event {
	summary := record.Summary()
	return event.New(kind, []int64{order.BuyerID, order.SellerID, record.InspectorID}, order.ID, map[string]string{
		"inspection_id": strconv.FormatInt(record.ID, 10),
		"status":        string(record.Status),
		"score":         strconv.Itoa(summary.Score),
	})
}
