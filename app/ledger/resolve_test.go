package ledger

import (
	"testing"
	"time"

	"github.com/charlykso/smart-s-sub003/app/models"
)

func strPtr(s string) *string { return &s }

func typePtr(t models.StudentType) *models.StudentType { return &t }

func TestResolveFees(t *testing.T) {
	armA := "arm-a"
	fees := []models.Fee{
		{ID: "fee-general", SchoolID: "sch-1", TermID: "term-1", Name: "Tuition", Amount: 50_000, IsApproved: true},
		{ID: "fee-arm-a", SchoolID: "sch-1", TermID: "term-1", Name: "Lab", Amount: 5_000, ClassArmID: &armA, IsApproved: true},
		{ID: "fee-boarding", SchoolID: "sch-1", TermID: "term-1", Name: "Hostel", Amount: 30_000, StudentType: typePtr(models.BoardingStudent), IsApproved: true},
		{ID: "fee-unapproved", SchoolID: "sch-1", TermID: "term-1", Name: "Draft", Amount: 1_000},
		{ID: "fee-other-term", SchoolID: "sch-1", TermID: "term-2", Name: "Tuition", Amount: 50_000, IsApproved: true},
		{ID: "fee-other-school", SchoolID: "sch-2", TermID: "term-1", Name: "Tuition", Amount: 50_000, IsApproved: true},
	}

	tests := []struct {
		name    string
		student *models.Student
		termID  string
		wantIDs []string
	}{
		{
			name:    "boarding student in arm A",
			student: &models.Student{ID: "s1", SchoolID: "sch-1", ClassArmID: strPtr("arm-a"), Type: models.BoardingStudent},
			termID:  "term-1",
			wantIDs: []string{"fee-general", "fee-arm-a", "fee-boarding"},
		},
		{
			name:    "day student in another arm",
			student: &models.Student{ID: "s2", SchoolID: "sch-1", ClassArmID: strPtr("arm-b"), Type: models.DayStudent},
			termID:  "term-1",
			wantIDs: []string{"fee-general"},
		},
		{
			name:    "unassigned student still owes school-wide fees",
			student: &models.Student{ID: "s3", SchoolID: "sch-1", Type: models.DayStudent},
			termID:  "term-1",
			wantIDs: []string{"fee-general"},
		},
		{
			name:    "term with no approved fees",
			student: &models.Student{ID: "s1", SchoolID: "sch-1", Type: models.DayStudent},
			termID:  "term-9",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveFees(tt.student, tt.termID, fees)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("resolved %d fees, want %d: %+v", len(got), len(tt.wantIDs), got)
			}
			seen := make(map[string]bool, len(got))
			for _, f := range got {
				seen[f.ID] = true
			}
			for _, id := range tt.wantIDs {
				if !seen[id] {
					t.Errorf("fee %s missing from result", id)
				}
			}
		})
	}
}

func TestResolveFeesStableOrder(t *testing.T) {
	base := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	fees := []models.Fee{
		{ID: "fee-b", SchoolID: "sch-1", TermID: "term-1", Amount: 100, IsApproved: true, CreatedAt: base.Add(time.Hour)},
		{ID: "fee-c", SchoolID: "sch-1", TermID: "term-1", Amount: 100, IsApproved: true, CreatedAt: base},
		{ID: "fee-a", SchoolID: "sch-1", TermID: "term-1", Amount: 100, IsApproved: true, CreatedAt: base},
	}
	student := &models.Student{ID: "s1", SchoolID: "sch-1", Type: models.DayStudent}

	got := ResolveFees(student, "term-1", fees)
	wantOrder := []string{"fee-a", "fee-c", "fee-b"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d = %s, want %s (order must be creation time, then id)", i, got[i].ID, id)
		}
	}
}
