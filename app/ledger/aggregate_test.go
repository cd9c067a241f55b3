package ledger

import (
	"testing"
	"time"

	"github.com/charlykso/smart-s-sub003/app/models"
)

func TestAggregateSumsLedgers(t *testing.T) {
	ledgers := []PerFeeLedger{
		{Expected: 50_000, Paid: 30_000, Outstanding: 20_000, PendingAmount: 5_000},
		{Expected: 20_000, Paid: 20_000, Outstanding: 0},
		{Expected: 10_000, Paid: 12_000, Outstanding: 0, Overpaid: 2_000,
			Violations: []Violation{{Code: ViolationOverpayment}}},
	}

	s := Aggregate(ScopeKey{Level: ScopeStudent, ID: "stu-1"}, ledgers)

	if s.TotalExpected != 80_000 {
		t.Errorf("TotalExpected = %d, want 80000", s.TotalExpected)
	}
	if s.TotalPaid != 62_000 {
		t.Errorf("TotalPaid = %d, want 62000", s.TotalPaid)
	}
	if s.TotalOutstanding != 20_000 {
		t.Errorf("TotalOutstanding = %d, want 20000", s.TotalOutstanding)
	}
	if s.TotalPending != 5_000 {
		t.Errorf("TotalPending = %d, want 5000", s.TotalPending)
	}
	if s.TotalOverpaid != 2_000 {
		t.Errorf("TotalOverpaid = %d, want 2000", s.TotalOverpaid)
	}
	if s.ViolationCount != 1 {
		t.Errorf("ViolationCount = %d, want 1", s.ViolationCount)
	}
}

func TestMergeGroupReconciliation(t *testing.T) {
	schoolA := Summary{
		Scope:     ScopeKey{Level: ScopeSchool, ID: "sch-a"},
		TotalPaid: 100_000, TotalExpected: 150_000, TotalOutstanding: 50_000, StudentCount: 40,
	}
	schoolB := Summary{
		Scope:     ScopeKey{Level: ScopeSchool, ID: "sch-b"},
		TotalPaid: 250_000, TotalExpected: 250_000, StudentCount: 60,
	}

	group := Merge(ScopeKey{Level: ScopeGroup, ID: "grp-1"}, schoolA, schoolB)

	if group.TotalPaid != 350_000 {
		t.Errorf("TotalPaid = %d, want 350000", group.TotalPaid)
	}
	if group.TotalExpected != 400_000 {
		t.Errorf("TotalExpected = %d, want 400000", group.TotalExpected)
	}
	if group.TotalOutstanding != 50_000 {
		t.Errorf("TotalOutstanding = %d, want 50000", group.TotalOutstanding)
	}
	if group.StudentCount != 100 {
		t.Errorf("StudentCount = %d, want 100", group.StudentCount)
	}
	// Parent totals must reconcile exactly to the sum of children.
	if group.TotalPaid != schoolA.TotalPaid+schoolB.TotalPaid {
		t.Error("group paid total does not reconcile to children")
	}
}

func TestMergeBreakdowns(t *testing.T) {
	schoolA := Summary{
		TotalPaid: 60_000,
		MethodBreakdown: map[string]MethodStat{
			"cash":     {TotalAmount: 40_000, TransactionCount: 4},
			"paystack": {TotalAmount: 20_000, TransactionCount: 1},
		},
	}
	schoolB := Summary{
		TotalPaid: 40_000,
		MethodBreakdown: map[string]MethodStat{
			"cash": {TotalAmount: 40_000, TransactionCount: 2},
		},
	}

	group := Merge(ScopeKey{Level: ScopeGroup, ID: "grp-1"}, schoolA, schoolB)

	cash := group.MethodBreakdown["cash"]
	if cash.TotalAmount != 80_000 || cash.TransactionCount != 6 {
		t.Errorf("cash = %+v, want amount 80000 count 6", cash)
	}
	if cash.PercentageOfTotalPaid != 80 {
		t.Errorf("cash percentage = %v, want 80", cash.PercentageOfTotalPaid)
	}
	paystack := group.MethodBreakdown["paystack"]
	if paystack.PercentageOfTotalPaid != 20 {
		t.Errorf("paystack percentage = %v, want 20", paystack.PercentageOfTotalPaid)
	}
}

func TestCollectionRate(t *testing.T) {
	tests := []struct {
		name     string
		paid     int64
		expected int64
		want     int
	}{
		{"zero expected", 0, 0, 0},
		{"negative expected", 100, -5, 0},
		{"zero paid", 0, 1000, 0},
		{"exact", 1000, 1000, 100},
		{"rounds half up", 625, 1000, 63},
		{"rounds down", 624, 1000, 62},
		{"overpayment exceeds hundred", 1200, 1000, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collectionRate(tt.paid, tt.expected); got != tt.want {
				t.Errorf("collectionRate(%d, %d) = %d, want %d", tt.paid, tt.expected, got, tt.want)
			}
		})
	}
}

func TestMethodBreakdownUnknownBucket(t *testing.T) {
	payments := []models.Payment{
		{Amount: 5_000, Mode: models.ModeCash, Status: models.PaymentSuccess},
		{Amount: 3_000, Mode: models.ModePaystack, Status: models.PaymentSuccess},
		{Amount: 2_000, Mode: "cheque", Status: models.PaymentSuccess},
		{Amount: 9_000, Mode: models.ModeCash, Status: models.PaymentPending},
		{Amount: 9_000, Mode: models.ModeCash, Status: models.PaymentFailed},
	}

	breakdown := MethodBreakdown(payments)

	if got := breakdown["cash"]; got.TotalAmount != 5_000 || got.TransactionCount != 1 {
		t.Errorf("cash = %+v, want amount 5000 count 1 (non-successful excluded)", got)
	}
	if got := breakdown[UnknownMethod]; got.TotalAmount != 2_000 || got.TransactionCount != 1 {
		t.Errorf("unknown = %+v, want the cheque payment bucketed here", got)
	}
	if got := breakdown["cash"].PercentageOfTotalPaid; got != 50 {
		t.Errorf("cash percentage = %v, want 50", got)
	}
}

func TestPeriodRevenue(t *testing.T) {
	ref := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	sessionStart := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	sessionEnd := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	payments := []models.Payment{
		{Amount: 1_000, Status: models.PaymentSuccess, TransDate: time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)},
		{Amount: 2_000, Status: models.PaymentSuccess, TransDate: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)},
		{Amount: 4_000, Status: models.PaymentSuccess, TransDate: time.Date(2024, 10, 5, 8, 0, 0, 0, time.UTC)},
		{Amount: 8_000, Status: models.PaymentSuccess, TransDate: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)},
		{Amount: 16_000, Status: models.PaymentPending, TransDate: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		name   string
		bucket PeriodBucket
		want   int64
	}{
		{"day", BucketDay, 1_000},
		{"month", BucketMonth, 3_000},
		{"session", BucketSession, 7_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodRevenue(payments, ref, tt.bucket, sessionStart, sessionEnd)
			if got != tt.want {
				t.Errorf("PeriodRevenue(%s) = %d, want %d", tt.bucket, got, tt.want)
			}
		})
	}
}

func TestPeriodRevenueReproducible(t *testing.T) {
	ref := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{Amount: 1_000, Status: models.PaymentSuccess, TransDate: ref.Add(-time.Hour)},
	}

	first := PeriodRevenue(payments, ref, BucketDay, time.Time{}, time.Time{})
	for i := 0; i < 3; i++ {
		if got := PeriodRevenue(payments, ref, BucketDay, time.Time{}, time.Time{}); got != first {
			t.Fatalf("rerun %d returned %d, first run returned %d", i+1, got, first)
		}
	}
}

func TestRevenueBuckets(t *testing.T) {
	ref := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	session := &models.Session{
		StartDate: models.CustomDate{Time: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)},
		EndDate:   models.CustomDate{Time: time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)},
	}
	payments := []models.Payment{
		{Amount: 1_000, Status: models.PaymentSuccess, TransDate: time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)},
		{Amount: 2_000, Status: models.PaymentSuccess, TransDate: time.Date(2024, 11, 2, 8, 0, 0, 0, time.UTC)},
	}

	r := Revenue(payments, ref, session)
	if r.Today != 1_000 {
		t.Errorf("Today = %d, want 1000", r.Today)
	}
	if r.ThisMonth != 1_000 {
		t.Errorf("ThisMonth = %d, want 1000", r.ThisMonth)
	}
	if r.ThisSession != 3_000 {
		t.Errorf("ThisSession = %d, want 3000", r.ThisSession)
	}

	// Without a session window the session bucket stays zero.
	if r := Revenue(payments, ref, nil); r.ThisSession != 0 {
		t.Errorf("ThisSession without session = %d, want 0", r.ThisSession)
	}
}
