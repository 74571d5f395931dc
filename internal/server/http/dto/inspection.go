package dto

import (
	"time"

	"github.com/polkiloo/agromart/internal/domain/model"
)

// CreateInspectionRequest describes a new inspection pass payload.
type CreateInspectionRequest struct {
	Location       string    `json:"location"`
	InspectionDate time.Time `json:"inspection_date"`
}

// ChecklistItem is the API shape of one inspected criterion.
type ChecklistItem struct {
	Item   string `json:"item"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// UpdateChecklistRequest replaces the inspection checklist.
type UpdateChecklistRequest struct {
	Checklist []ChecklistItem `json:"checklist"`
}

// AddPhotoRequest appends one photo reference.
type AddPhotoRequest struct {
	Path    string `json:"path"`
	Caption string `json:"caption"`
}

// CompleteInspectionRequest carries closing notes.
type CompleteInspectionRequest struct {
	Notes string `json:"notes"`
}

// InspectionPhoto is the API shape of one photo reference.
type InspectionPhoto struct {
	Path      string    `json:"path"`
	Caption   string    `json:"caption,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// InspectionResponse is the API shape of an inspection record.
type InspectionResponse struct {
	ID             int64                  `json:"id"`
	OrderID        int64                  `json:"order_id"`
	InspectorID    int64                  `json:"inspector_id"`
	Status         string                 `json:"status"`
	Findings       string                 `json:"findings,omitempty"`
	Checklist      []ChecklistItem        `json:"checklist"`
	Photos         []InspectionPhoto      `json:"photos"`
	Summary        model.ChecklistSummary `json:"summary"`
	Location       string                 `json:"location,omitempty"`
	InspectionDate time.Time              `json:"inspection_date"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// NewInspectionResponse maps an inspection record to its API shape.
func NewInspectionResponse(r *model.InspectionRecord) InspectionResponse {
	checklist := make([]ChecklistItem, 0, len(r.Checklist))
	for _, item := range r.Checklist {
		checklist = append(checklist, ChecklistItem{
			Item:   item.Item,
			Status: string(item.Status),
			Notes:  item.Notes,
		})
	}
	photos := make([]InspectionPhoto, 0, len(r.Photos))
	for _, photo := range r.Photos {
		photos = append(photos, InspectionPhoto{
			Path:      photo.Path,
			Caption:   photo.Caption,
			Timestamp: photo.Timestamp,
		})
	}
	return InspectionResponse{
		ID:             r.ID,
		OrderID:        r.OrderID,
		InspectorID:    r.InspectorID,
		Status:         string(r.Status),
		Findings:       r.Findings,
		Checklist:      checklist,
		Photos:         photos,
		Summary:        r.Summary(),
		Location:       r.Location,
		InspectionDate: r.InspectionDate,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
