package repository

import (
	"context"

	"github.com/polkiloo/agromart/internal/domain/model"
)

// InspectionRepository describes persistence operations for inspections.
type InspectionRepository interface {
	Create(ctx context.Context, record *model.InspectionRecord) (*model.InspectionRecord, error)
	GetByID(ctx context.Context, id int64) (*model.InspectionRecord, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.InspectionRecord, error)

	// SetChecklist replaces checklist results and the derived status.
	SetChecklist(ctx context.Context, id int64, items []model.ChecklistItem, status model.InspectionStatus) (*model.InspectionRecord, error)

	// AddPhoto appends one photo reference; existing entries never change.
	AddPhoto(ctx context.Context, id int64, photo model.InspectionPhoto) (*model.InspectionRecord, error)

	// Complete finalizes an open inspection, appending notes to findings.
	Complete(ctx context.Context, id int64, status model.InspectionStatus, findings string) (*model.InspectionRecord, error)
}
