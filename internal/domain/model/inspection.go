package model

import (
	"math"
	"time"
)

// InspectionStatus describes an inspection pass over an order.
type InspectionStatus string

const (
	InspectionStatusPending     InspectionStatus = "pending"
	InspectionStatusInProgress  InspectionStatus = "in_progress"
	InspectionStatusPassed      InspectionStatus = "passed"
	InspectionStatusFailed      InspectionStatus = "failed"
	InspectionStatusNeedsReview InspectionStatus = "needs_review"
)

// ChecklistItemStatus is the outcome of a single checklist item.
type ChecklistItemStatus string

const (
	ChecklistItemPassed  ChecklistItemStatus = "passed"
	ChecklistItemFailed  ChecklistItemStatus = "failed"
	ChecklistItemSkipped ChecklistItemStatus = "skipped"
)

// ValidChecklistItemStatus reports whether s is a known item outcome.
func ValidChecklistItemStatus(s ChecklistItemStatus) bool {
	switch s {
	case ChecklistItemPassed, ChecklistItemFailed, ChecklistItemSkipped:
		return true
	}
	return false
}

// ChecklistItem is one inspected criterion.
type ChecklistItem struct {
	Item   string              `json:"item"`
	Status ChecklistItemStatus `json:"status"`
	Notes  string              `json:"notes,omitempty"`
}

// InspectionPhoto references one uploaded photo; the list is append-only.
type InspectionPhoto struct {
	Path      string    `json:"path"`
	Caption   string    `json:"caption,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// InspectionRecord is one inspection pass; an order can accumulate several
// across re-inspections.
type InspectionRecord struct {
	ID             int64
	OrderID        int64
	InspectorID    int64
	Status         InspectionStatus
	Findings       string
	Checklist      []ChecklistItem
	Photos         []InspectionPhoto
	Location       string
	InspectionDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ChecklistSummary aggregates checklist item counts and the overall score.
type ChecklistSummary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Score   int `json:"score"`
}

// Summarize counts item outcomes. Score is the rounded percentage of passed
// items out of all items, 0 for an empty checklist.
func Summarize(items []ChecklistItem) ChecklistSummary {
	s := ChecklistSummary{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case ChecklistItemPassed:
			s.Passed++
		case ChecklistItemFailed:
			s.Failed++
		}
	}
	s.Skipped = s.Total - s.Passed - s.Failed
	if s.Total > 0 {
		s.Score = int(math.Round(float64(s.Passed) / float64(s.Total) * 100))
	}
	return s
}

// Summary returns the checklist summary of the record.
func (r *InspectionRecord) Summary() ChecklistSummary {
	return Summarize(r.Checklist)
}

// EvaluateChecklist derives the inspection verdict from item outcomes.
// A single failed item fails the inspection regardless of score.
func EvaluateChecklist(items []ChecklistItem) InspectionStatus {
	summary := Summarize(items)
	switch {
	case summary.Failed > 0:
		return InspectionStatusFailed
	case summary.Score >= 90:
		return InspectionStatusPassed
	case summary.Score >= 70:
		return InspectionStatusNeedsReview
	default:
		return InspectionStatusFailed
	}
}
