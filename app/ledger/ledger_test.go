package ledger

import (
	"reflect"
	"testing"

	"github.com/charlykso/smart-s-sub003/app/models"
)

func TestReduceTuitionPartialPayment(t *testing.T) {
	// Tuition of 50,000 in major units, held as 5,000,000 minor units.
	fees := []models.Fee{
		{ID: "fee-1", SchoolID: "sch-1", Name: "Tuition", Type: "tuition", Amount: 5_000_000},
	}
	payments := []models.Payment{
		{FeeID: "fee-1", StudentID: "stu-1", SchoolID: "sch-1", Amount: 3_000_000, Status: models.PaymentSuccess, TrxRef: "t1"},
		{FeeID: "fee-1", StudentID: "stu-1", SchoolID: "sch-1", Amount: 2_000_000, Status: models.PaymentPending, TrxRef: "t2"},
	}

	ledgers := Reduce("stu-1", fees, payments)
	if len(ledgers) != 1 {
		t.Fatalf("expected 1 ledger, got %d", len(ledgers))
	}

	l := ledgers[0]
	if l.Paid != 3_000_000 {
		t.Errorf("Paid = %d, want 3000000", l.Paid)
	}
	if l.Outstanding != 2_000_000 {
		t.Errorf("Outstanding = %d, want 2000000", l.Outstanding)
	}
	if l.PendingAmount != 2_000_000 {
		t.Errorf("PendingAmount = %d, want 2000000", l.PendingAmount)
	}
	if l.Status != models.LedgerPartial {
		t.Errorf("Status = %q, want %q", l.Status, models.LedgerPartial)
	}
}

func TestReduceStatuses(t *testing.T) {
	fee := models.Fee{ID: "fee-1", SchoolID: "sch-1", Name: "Tuition", Amount: 10_000}

	tests := []struct {
		name        string
		payments    []models.Payment
		wantPaid    int64
		wantOut     int64
		wantPending int64
		wantStatus  models.LedgerStatus
	}{
		{
			name:       "no payments",
			payments:   nil,
			wantOut:    10_000,
			wantStatus: models.LedgerUnpaid,
		},
		{
			name: "failed payments ignored",
			payments: []models.Payment{
				{FeeID: "fee-1", StudentID: "stu-1", SchoolID: "sch-1", Amount: 10_000, Status: models.PaymentFailed},
			},
			wantOut:    10_000,
			wantStatus: models.LedgerUnpaid,
		},
		{
			name: "pending alone stays unpaid",
			payments: []models.Payment{
				{FeeID: "fee-1", StudentID: "stu-1", SchoolID: "sch-1", Amount: 10_000, Status: models.PaymentPending},
			},
			wantOut:     10_000,
			wantPending: 10_000,
			wantStatus:  models.LedgerUnpaid,
		},
		{
			name: "exact payment",
			payments: []models.Payment{
				{FeeID: "fee-1", StudentID: "stu-1", SchoolID: "sch-1", Amount: 10_000, Status: models.PaymentSuccess},
			},
			wantPaid:   10_000,
			wantStatus: models.LedgerPaid,
		},
		{
			name: "other student's payments excluded",
			payments: []models.Payment{
				{FeeID: "fee-1", StudentID: "stu-2", SchoolID: "sch-1", Amount: 10_000, Status: models.PaymentSuccess},
			},
			wantOut:    10_000,
			wantStatus: models.LedgerUnpaid,
		},
		{
			name: "other fee's payments excluded",
			payments: []models.Payment{
				{FeeID: "fee-9", StudentID: "stu-1", SchoolID: "sch-1", Amount: 10_000, Status: models.PaymentSuccess},
			},
			wantOut:    10_000,
			wantStatus: models.LedgerUnpaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledgers := Reduce("stu-1", []models.Fee{fee}, tt.payments)
			l := ledgers[0]
			if l.Paid != tt.wantPaid {
				t.Errorf("Paid = %d, want %d", l.Paid, tt.wantPaid)
			}
			if l.Outstanding != tt.wantOut {
				t.Errorf("Outstanding = %d, want %d", l.Outstanding, tt.wantOut)
			}
			if l.PendingAmount != tt.wantPending {
				t.Errorf("PendingAmount = %d, want %d", l.PendingAmount, tt.wantPending)
			}
			if l.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", l.Status, tt.wantStatus)
			}
		})
	}
}

func TestReduceOverpayment(t *testing.T) {
	fees := []models.Fee{
		{ID: "fee-1", SchoolID: "sch-1", Name: "Tuition", Amount: 10_000},
	}
	payments := []models.Payment{
		{FeeID: "fee-1", StudentID: "stu-1", SchoolID: "sch-1", Amount: 12_000, Status: models.PaymentSuccess, TrxRef: "t1"},
	}

	l := Reduce("stu-1", fees, payments)[0]
	if l.Outstanding != 0 {
		t.Errorf("Outstanding = %d, want 0 (never negative)", l.Outstanding)
	}
	if l.Overpaid != 2_000 {
		t.Errorf("Overpaid = %d, want 2000", l.Overpaid)
	}
	if l.Status != models.LedgerPaid {
		t.Errorf("Status = %q, want %q", l.Status, models.LedgerPaid)
	}
	if len(l.Violations) != 1 || l.Violations[0].Code != ViolationOverpayment {
		t.Errorf("Violations = %+v, want one %q violation", l.Violations, ViolationOverpayment)
	}
}

func TestReduceSchoolMismatch(t *testing.T) {
	fees := []models.Fee{
		{ID: "fee-1", SchoolID: "sch-1", Name: "Tuition", Amount: 10_000},
	}
	payments := []models.Payment{
		{FeeID: "fee-1", StudentID: "stu-1", SchoolID: "sch-2", Amount: 10_000, Status: models.PaymentSuccess, TrxRef: "t1"},
	}

	l := Reduce("stu-1", fees, payments)[0]
	if l.Paid != 0 {
		t.Errorf("Paid = %d, want 0 (mismatched payment must not count)", l.Paid)
	}
	if len(l.Violations) != 1 || l.Violations[0].Code != ViolationSchoolMismatch {
		t.Errorf("Violations = %+v, want one %q violation", l.Violations, ViolationSchoolMismatch)
	}
}

func TestReduceDeterministic(t *testing.T) {
	fees := []models.Fee{
		{ID: "fee-1", SchoolID: "sch-1", Name: "Tuition", Amount: 50_000},
		{ID: "fee-2", SchoolID: "sch-1", Name: "Transport", Amount: 20_000},
	}
	payments := []models.Payment{
		{FeeID: "fee-1", StudentID: "stu-1", SchoolID: "sch-1", Amount: 30_000, Status: models.PaymentSuccess, TrxRef: "t1"},
		{FeeID: "fee-2", StudentID: "stu-1", SchoolID: "sch-1", Amount: 5_000, Status: models.PaymentPending, TrxRef: "t2"},
		{FeeID: "fee-1", StudentID: "stu-1", SchoolID: "sch-1", Amount: 1_000, Status: models.PaymentFailed, TrxRef: "t3"},
	}

	first := Reduce("stu-1", fees, payments)
	for i := 0; i < 5; i++ {
		if got := Reduce("stu-1", fees, payments); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs from first run:\n got %+v\nwant %+v", i+1, got, first)
		}
	}
}
