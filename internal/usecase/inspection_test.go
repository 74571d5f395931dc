package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/event"
	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/test"
)

func inspectionOrders() *test.OrderRepositoryStub {
	return &test.OrderRepositoryStub{Orders: []model.Order{{ID: 1, BuyerID: 2, SellerID: 3, Status: model.OrderStatusInPreparation}}}
}

func TestInspectionCreateDefaultsDate(t *testing.T) {
	now := time.Date(2025, time.August, 20, 14, 0, 0, 0, time.UTC)
	inspections := &test.InspectionRepositoryStub{}
	uc := NewInspectionUseCase(inspections, inspectionOrders())
	uc.now = func() time.Time { return now }

	record, events, err := uc.Create(context.Background(), 1, 9, CreateInspectionInput{Location: "warehouse 4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !record.InspectionDate.Equal(now) {
		t.Fatalf("expected default inspection date, got %v", record.InspectionDate)
	}
	if record.Status != model.InspectionStatusPending {
		t.Fatalf("expected pending, got %s", record.Status)
	}
	if len(events) != 1 || events[0].Kind != event.KindInspectionCreated {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestInspectionUpdateChecklistValidation(t *testing.T) {
	uc := NewInspectionUseCase(&test.InspectionRepositoryStub{}, inspectionOrders())

	if _, _, err := uc.UpdateChecklist(context.Background(), 1, nil); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for empty checklist, got %v", err)
	}

	bad := []model.ChecklistItem{{Item: "moisture", Status: "unknown"}}
	if _, _, err := uc.UpdateChecklist(context.Background(), 1, bad); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for bad status, got %v", err)
	}

	unnamed := []model.ChecklistItem{{Status: model.ChecklistItemPassed}}
	if _, _, err := uc.UpdateChecklist(context.Background(), 1, unnamed); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for unnamed item, got %v", err)
	}
}

func TestInspectionUpdateChecklistDerivesVerdict(t *testing.T) {
	inspections := &test.InspectionRepositoryStub{
		SetChecklistFn: func(ctx context.Context, id int64, items []model.ChecklistItem, status model.InspectionStatus) (*model.InspectionRecord, error) {
			if status != model.InspectionStatusFailed {
				t.Fatalf("expected failed verdict, got %s", status)
			}
			return &model.InspectionRecord{ID: id, OrderID: 1, Checklist: items, Status: status}, nil
		},
	}
	uc := NewInspectionUseCase(inspections, inspectionOrders())

	items := []model.ChecklistItem{
		{Item: "moisture", Status: model.ChecklistItemPassed},
		{Item: "pest damage", Status: model.ChecklistItemFailed},
	}
	record, events, err := uc.UpdateChecklist(context.Background(), 5, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Status != model.InspectionStatusFailed {
		t.Fatalf("expected failed, got %s", record.Status)
	}
	if len(events) != 1 || events[0].Kind != event.KindInspectionUpdated {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestInspectionCompleteRequiresChecklist(t *testing.T) {
	inspections := &test.InspectionRepositoryStub{
		GetByIDFn: func(ctx context.Context, id int64) (*model.InspectionRecord, error) {
			return &model.InspectionRecord{ID: id, OrderID: 1}, nil
		},
	}
	uc := NewInspectionUseCase(inspections, inspectionOrders())

	if _, _, err := uc.Complete(context.Background(), 5, "all good"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestInspectionCompleteAppendsFinalNotes(t *testing.T) {
	checklist := []model.ChecklistItem{
		{Item: "moisture", Status: model.ChecklistItemPassed},
		{Item: "grain size", Status: model.ChecklistItemPassed},
	}
	var savedFindings string
	inspections := &test.InspectionRepositoryStub{
		GetByIDFn: func(ctx context.Context, id int64) (*model.InspectionRecord, error) {
			return &model.InspectionRecord{ID: id, OrderID: 1, InspectorID: 9, Checklist: checklist, Findings: "initial walkthrough done"}, nil
		},
		CompleteFn: func(ctx context.Context, id int64, status model.InspectionStatus, findings string) (*model.InspectionRecord, error) {
			savedFindings = findings
			return &model.InspectionRecord{ID: id, OrderID: 1, InspectorID: 9, Checklist: checklist, Status: status, Findings: findings}, nil
		},
	}
	uc := NewInspectionUseCase(inspections, inspectionOrders())

	record, events, err := uc.Complete(context.Background(), 5, "sealed and ready")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Status != model.InspectionStatusPassed {
		t.Fatalf("expected passed, got %s", record.Status)
	}
	if !strings.Contains(savedFindings, "initial walkthrough done") {
		t.Fatalf("existing findings lost: %q", savedFindings)
	}
	if !strings.Contains(savedFindings, "Final Notes: sealed and ready") {
		t.Fatalf("final notes missing: %q", savedFindings)
	}
	if len(events) != 1 || events[0].Kind != event.KindInspectionCompleted {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestInspectionAddPhotoRequiresPath(t *testing.T) {
	uc := NewInspectionUseCase(&test.InspectionRepositoryStub{}, inspectionOrders())

	if _, err := uc.AddPhoto(context.Background(), 1, "", "front of container"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
