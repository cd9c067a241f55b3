package ledger

import (
	"fmt"

	"github.com/charlykso/smart-s-sub003/app/models"
)

// Violation codes surfaced in ledger output. Violations are data, not
// control flow: a flagged ledger is still returned so dashboards (e.g. the
// auditor's) can display the condition instead of crashing.
const (
	ViolationOverpayment    = "overpayment"
	ViolationSchoolMismatch = "school_mismatch"
)

// Violation flags a detected data inconsistency on a per-fee ledger.
type Violation struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// PerFeeLedger is the reduced payment state of a single fee for a single
// student. All amounts are integer minor currency units.
//
// PendingAmount carries payments awaiting confirmation; it is never merged
// into Paid or Outstanding. Overpaid carries any excess of Paid over
// Expected: Outstanding is clamped at zero, the excess is reported, not
// silently clipped.
type PerFeeLedger struct {
	FeeID         string              `json:"fee_id"`
	FeeName       string              `json:"fee_name"`
	FeeType       string              `json:"fee_type"`
	Expected      int64               `json:"expected"`
	Paid          int64               `json:"paid"`
	Outstanding   int64               `json:"outstanding"`
	PendingAmount int64               `json:"pending_amount"`
	Overpaid      int64               `json:"overpaid,omitempty"`
	Status        models.LedgerStatus `json:"status"`
	Violations    []Violation         `json:"violations,omitempty"`
}

// Reduce folds the student's payment transactions into one ledger per
// resolved fee. Only successful payments count toward Paid; pending
// payments accumulate in PendingAmount; failed payments are ignored.
//
// The function is pure: identical inputs always produce identical output,
// and no wall clock is consulted.
func Reduce(studentID string, fees []models.Fee, payments []models.Payment) []PerFeeLedger {
	ledgers := make([]PerFeeLedger, 0, len(fees))
	for _, fee := range fees {
		l := PerFeeLedger{
			FeeID:    fee.ID,
			FeeName:  fee.Name,
			FeeType:  fee.Type,
			Expected: fee.Amount,
		}
		for _, p := range payments {
			if p.FeeID != fee.ID || p.StudentID != studentID {
				continue
			}
			if p.SchoolID != "" && fee.SchoolID != "" && p.SchoolID != fee.SchoolID {
				l.Violations = append(l.Violations, Violation{
					Code:   ViolationSchoolMismatch,
					Detail: fmt.Sprintf("payment %s school %s does not match fee school %s", p.TrxRef, p.SchoolID, fee.SchoolID),
				})
				continue
			}
			switch p.Status {
			case models.PaymentSuccess:
				l.Paid += p.Amount
			case models.PaymentPending:
				l.PendingAmount += p.Amount
			}
		}

		l.Outstanding = l.Expected - l.Paid
		if l.Outstanding < 0 {
			l.Overpaid = -l.Outstanding
			l.Outstanding = 0
			l.Violations = append(l.Violations, Violation{
				Code:   ViolationOverpayment,
				Detail: fmt.Sprintf("paid %d exceeds expected %d for fee %s", l.Paid, l.Expected, fee.ID),
			})
		}

		switch {
		case l.Paid == 0:
			l.Status = models.LedgerUnpaid
		case l.Paid < l.Expected:
			l.Status = models.LedgerPartial
		default:
			l.Status = models.LedgerPaid
		}
		ledgers = append(ledgers, l)
	}
	return ledgers
}
