package ledger

import (
	"time"

	"github.com/charlykso/smart-s-sub003/app/models"
)

// ScopeLevel identifies the rollup level of a summary.
type ScopeLevel string

const (
	ScopeStudent  ScopeLevel = "student"
	ScopeClassArm ScopeLevel = "class_arm"
	ScopeSchool   ScopeLevel = "school"
	ScopeGroup    ScopeLevel = "group"
)

// ScopeKey names the entity a summary was rolled up for.
type ScopeKey struct {
	Level ScopeLevel `json:"level"`
	ID    string     `json:"id"`
}

// MethodStat is the per-payment-mode slice of a summary's breakdown,
// computed only over successful payments.
type MethodStat struct {
	TotalAmount           int64   `json:"total_amount"`
	TransactionCount      int     `json:"transaction_count"`
	PercentageOfTotalPaid float64 `json:"percentage_of_total_paid"`
}

// UnknownMethod is the breakdown bucket for legacy or unrecognized payment
// mode strings. They are aggregated here rather than dropped.
const UnknownMethod = "unknown"

// Summary is a rolled-up financial view at some scope. Totals are integer
// minor currency units and purely additive: a parent summary is always the
// sum of its children, so group totals reconcile exactly to their schools.
type Summary struct {
	Scope            ScopeKey              `json:"scope"`
	TotalExpected    int64                 `json:"total_expected"`
	TotalPaid        int64                 `json:"total_paid"`
	TotalOutstanding int64                 `json:"total_outstanding"`
	TotalPending     int64                 `json:"total_pending"`
	TotalOverpaid    int64                 `json:"total_overpaid,omitempty"`
	CollectionRate   int                   `json:"collection_rate"`
	ViolationCount   int                   `json:"violation_count,omitempty"`
	StudentCount     int                   `json:"student_count,omitempty"`
	MethodBreakdown  map[string]MethodStat `json:"payment_method_breakdown,omitempty"`
}

// Aggregate sums a set of per-fee ledgers into a summary at the given
// scope. Rates are derived from the summed totals, never from raw
// payments, so rollups stay consistent with Merge.
func Aggregate(scope ScopeKey, ledgers []PerFeeLedger) Summary {
	s := Summary{Scope: scope}
	for _, l := range ledgers {
		s.TotalExpected += l.Expected
		s.TotalPaid += l.Paid
		s.TotalOutstanding += l.Outstanding
		s.TotalPending += l.PendingAmount
		s.TotalOverpaid += l.Overpaid
		s.ViolationCount += len(l.Violations)
	}
	s.CollectionRate = collectionRate(s.TotalPaid, s.TotalExpected)
	return s
}

// Merge rolls child summaries up to a parent scope by straight addition.
// Method breakdowns are merged bucket-wise with percentages recomputed
// over the merged paid total.
func Merge(scope ScopeKey, children ...Summary) Summary {
	s := Summary{Scope: scope}
	var breakdown map[string]MethodStat
	for _, c := range children {
		s.TotalExpected += c.TotalExpected
		s.TotalPaid += c.TotalPaid
		s.TotalOutstanding += c.TotalOutstanding
		s.TotalPending += c.TotalPending
		s.TotalOverpaid += c.TotalOverpaid
		s.ViolationCount += c.ViolationCount
		s.StudentCount += c.StudentCount
		if len(c.MethodBreakdown) > 0 {
			if breakdown == nil {
				breakdown = make(map[string]MethodStat)
			}
			for method, stat := range c.MethodBreakdown {
				merged := breakdown[method]
				merged.TotalAmount += stat.TotalAmount
				merged.TransactionCount += stat.TransactionCount
				breakdown[method] = merged
			}
		}
	}
	if breakdown != nil {
		rescale(breakdown)
		s.MethodBreakdown = breakdown
	}
	s.CollectionRate = collectionRate(s.TotalPaid, s.TotalExpected)
	return s
}

// collectionRate returns round(paid/expected*100). Zero expected yields an
// explicit zero, never a division error.
func collectionRate(paid, expected int64) int {
	if expected <= 0 {
		return 0
	}
	return int((paid*100 + expected/2) / expected)
}

// MethodBreakdown distributes successful payment amounts across payment
// modes. Unrecognized mode strings land in the "unknown" bucket.
func MethodBreakdown(payments []models.Payment) map[string]MethodStat {
	breakdown := make(map[string]MethodStat, len(models.PaymentModes))
	for _, p := range payments {
		if !p.IsSuccessful() {
			continue
		}
		key := string(p.Mode)
		if !p.Mode.IsKnown() {
			key = UnknownMethod
		}
		stat := breakdown[key]
		stat.TotalAmount += p.Amount
		stat.TransactionCount++
		breakdown[key] = stat
	}
	rescale(breakdown)
	return breakdown
}

func rescale(breakdown map[string]MethodStat) {
	var total int64
	for _, stat := range breakdown {
		total += stat.TotalAmount
	}
	if total == 0 {
		return
	}
	for method, stat := range breakdown {
		stat.PercentageOfTotalPaid = float64(stat.TotalAmount) * 100 / float64(total)
		breakdown[method] = stat
	}
}

// PeriodBucket selects the window for period revenue sums.
type PeriodBucket string

const (
	BucketDay     PeriodBucket = "day"
	BucketMonth   PeriodBucket = "month"
	BucketSession PeriodBucket = "session"
)

// PeriodRevenue sums successful payment amounts whose transaction date
// falls within the bucket relative to the caller-supplied reference time.
// The session bucket uses the provided session date range; day and month
// are resolved in the reference time's location. The wall clock is never
// read here, so reruns with the same reference are reproducible.
func PeriodRevenue(payments []models.Payment, ref time.Time, bucket PeriodBucket, sessionStart, sessionEnd time.Time) int64 {
	var total int64
	for _, p := range payments {
		if !p.IsSuccessful() {
			continue
		}
		if inBucket(p.TransDate, ref, bucket, sessionStart, sessionEnd) {
			total += p.Amount
		}
	}
	return total
}

func inBucket(at, ref time.Time, bucket PeriodBucket, sessionStart, sessionEnd time.Time) bool {
	switch bucket {
	case BucketDay:
		y1, m1, d1 := at.In(ref.Location()).Date()
		y2, m2, d2 := ref.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case BucketMonth:
		y1, m1, _ := at.In(ref.Location()).Date()
		y2, m2, _ := ref.Date()
		return y1 == y2 && m1 == m2
	case BucketSession:
		return !at.Before(sessionStart) && !at.After(sessionEnd)
	}
	return false
}

// RevenueBuckets is the dashboard-facing trio of period revenue figures.
type RevenueBuckets struct {
	Today       int64 `json:"today"`
	ThisMonth   int64 `json:"this_month"`
	ThisSession int64 `json:"this_session"`
}

// Revenue computes all three period buckets at once against a reference
// time and an optional session window.
func Revenue(payments []models.Payment, ref time.Time, session *models.Session) RevenueBuckets {
	r := RevenueBuckets{
		Today:     PeriodRevenue(payments, ref, BucketDay, time.Time{}, time.Time{}),
		ThisMonth: PeriodRevenue(payments, ref, BucketMonth, time.Time{}, time.Time{}),
	}
	if session != nil {
		r.ThisSession = PeriodRevenue(payments, ref, BucketSession, session.StartDate.Time, session.EndDate.Time)
	}
	return r
}
