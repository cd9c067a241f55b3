package database

import (
	"database/sql"

	"github.com/charlykso/smart-s-sub003/app/ledger"
	"github.com/charlykso/smart-s-sub003/app/models"
)

// This file assembles engine inputs: it fetches entity snapshots and runs
// them through the pure resolution/reduction/aggregation functions. All
// figures come out of the engine; nothing is derived directly in SQL so
// every dashboard shares one computation path.

// BuildStudentLedger resolves the student's fees for the term and reduces
// their payments into per-fee ledgers.
func BuildStudentLedger(db *sql.DB, studentID, termID string) (*models.Student, []ledger.PerFeeLedger, error) {
	student, err := GetStudentByID(db, studentID)
	if err != nil {
		return nil, nil, err
	}
	fees, err := GetApprovedFeesForTerm(db, student.SchoolID, termID)
	if err != nil {
		return nil, nil, err
	}
	payments, err := GetPaymentsByStudent(db, studentID)
	if err != nil {
		return nil, nil, err
	}

	resolved := ledger.ResolveFees(student, termID, fees)
	return student, ledger.Reduce(studentID, resolved, payments), nil
}

// BuildStudentSummary aggregates one student's ledgers for a term.
func BuildStudentSummary(db *sql.DB, studentID, termID string) (ledger.Summary, []ledger.PerFeeLedger, error) {
	_, ledgers, err := BuildStudentLedger(db, studentID, termID)
	if err != nil {
		return ledger.Summary{}, nil, err
	}
	summary := ledger.Aggregate(ledger.ScopeKey{Level: ledger.ScopeStudent, ID: studentID}, ledgers)
	summary.StudentCount = 1
	return summary, ledgers, nil
}

// BuildSchoolSummary rolls every active student of the school up into one
// summary for the term, with the payment-method breakdown attached.
func BuildSchoolSummary(db *sql.DB, schoolID, termID string) (ledger.Summary, error) {
	fees, err := GetApprovedFeesForTerm(db, schoolID, termID)
	if err != nil {
		return ledger.Summary{}, err
	}
	payments, err := GetPaymentsForTerm(db, schoolID, termID)
	if err != nil {
		return ledger.Summary{}, err
	}
	studentIDs, err := GetStudentIDsBySchool(db, schoolID)
	if err != nil {
		return ledger.Summary{}, err
	}

	children := make([]ledger.Summary, 0, len(studentIDs))
	for _, id := range studentIDs {
		student, err := GetStudentByID(db, id)
		if err != nil {
			return ledger.Summary{}, err
		}
		resolved := ledger.ResolveFees(student, termID, fees)
		ledgers := ledger.Reduce(id, resolved, payments)
		child := ledger.Aggregate(ledger.ScopeKey{Level: ledger.ScopeStudent, ID: id}, ledgers)
		child.StudentCount = 1
		children = append(children, child)
	}

	summary := ledger.Merge(ledger.ScopeKey{Level: ledger.ScopeSchool, ID: schoolID}, children...)
	summary.MethodBreakdown = ledger.MethodBreakdown(payments)
	return summary, nil
}

// BuildClassArmSummary rolls the active students of one class arm up into
// a summary for the term.
func BuildClassArmSummary(db *sql.DB, armID, termID string) (ledger.Summary, error) {
	arm, err := GetClassArmByID(db, armID)
	if err != nil {
		return ledger.Summary{}, err
	}
	fees, err := GetApprovedFeesForTerm(db, arm.SchoolID, termID)
	if err != nil {
		return ledger.Summary{}, err
	}
	payments, err := GetPaymentsForTerm(db, arm.SchoolID, termID)
	if err != nil {
		return ledger.Summary{}, err
	}
	students, err := GetActiveStudentsByClassArm(db, armID)
	if err != nil {
		return ledger.Summary{}, err
	}

	children := make([]ledger.Summary, 0, len(students))
	for _, student := range students {
		resolved := ledger.ResolveFees(student, termID, fees)
		ledgers := ledger.Reduce(student.ID, resolved, payments)
		child := ledger.Aggregate(ledger.ScopeKey{Level: ledger.ScopeStudent, ID: student.ID}, ledgers)
		child.StudentCount = 1
		children = append(children, child)
	}
	return ledger.Merge(ledger.ScopeKey{Level: ledger.ScopeClassArm, ID: armID}, children...), nil
}

// BuildGroupSummary merges the school summaries under a group school.
// The rollup is purely additive, so the group totals always reconcile
// exactly to the sum of the schools'.
func BuildGroupSummary(db *sql.DB, groupID string) (ledger.Summary, []ledger.Summary, error) {
	schoolIDs, err := GetSchoolIDsByGroup(db, groupID)
	if err != nil {
		return ledger.Summary{}, nil, err
	}

	children := make([]ledger.Summary, 0, len(schoolIDs))
	for _, schoolID := range schoolIDs {
		term, err := GetActiveTerm(db, schoolID)
		if err == ErrNotFound {
			// A school without an active term contributes nothing.
			continue
		}
		if err != nil {
			return ledger.Summary{}, nil, err
		}
		child, err := BuildSchoolSummary(db, schoolID, term.ID)
		if err != nil {
			return ledger.Summary{}, nil, err
		}
		children = append(children, child)
	}
	group := ledger.Merge(ledger.ScopeKey{Level: ledger.ScopeGroup, ID: groupID}, children...)
	return group, children, nil
}
