package model

import "testing"

func checklist(passed, failed, skipped int) []ChecklistItem {
	items := make([]ChecklistItem, 0, passed+failed+skipped)
	for i := 0; i < passed; i++ {
		items = append(items, ChecklistItem{Item: "criterion", Status: ChecklistItemPassed})
	}
	for i := 0; i < failed; i++ {
		items = append(items, ChecklistItem{Item: "criterion", Status: ChecklistItemFailed})
	}
	for i := 0; i < skipped; i++ {
		items = append(items, ChecklistItem{Item: "criterion", Status: ChecklistItemSkipped})
	}
	return items
}

func TestSummarizeCountsAndScore(t *testing.T) {
	s := Summarize(checklist(9, 0, 1))
	if s.Total != 10 || s.Passed != 9 || s.Failed != 0 || s.Skipped != 1 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Score != 90 {
		t.Fatalf("expected score 90, got %d", s.Score)
	}
}

func TestSummarizeEmptyChecklist(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.Score != 0 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestEvaluateChecklist(t *testing.T) {
	cases := []struct {
		name  string
		items []ChecklistItem
		want  InspectionStatus
	}{
		{"single failure fails regardless of score", checklist(19, 1, 0), InspectionStatusFailed},
		{"score at ninety passes", checklist(9, 0, 1), InspectionStatusPassed},
		{"all passed", checklist(5, 0, 0), InspectionStatusPassed},
		{"score at seventy needs review", checklist(7, 0, 3), InspectionStatusNeedsReview},
		{"score between seventy and ninety needs review", checklist(8, 0, 2), InspectionStatusNeedsReview},
		{"score below seventy fails", checklist(6, 0, 4), InspectionStatusFailed},
		{"all skipped fails", checklist(0, 0, 5), InspectionStatusFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EvaluateChecklist(tc.items); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestValidChecklistItemStatus(t *testing.T) {
	for _, s := range []ChecklistItemStatus{ChecklistItemPassed, ChecklistItemFailed, ChecklistItemSkipped} {
		if !ValidChecklistItemStatus(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if ValidChecklistItemStatus("pending") {
		t.Fatal("expected unknown status to be invalid")
	}
}
