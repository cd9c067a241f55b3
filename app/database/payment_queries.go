package database

import (
	"database/sql"
	"fmt"

	"github.com/charlykso/smart-s-sub003/app/models"
)

const paymentColumns = `id, fee_id, student_id, school_id, amount, mode_of_payment, status, trans_date, trx_ref, created_at, updated_at`

func scanPayment(row interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	p := &models.Payment{}
	err := row.Scan(
		&p.ID, &p.FeeID, &p.StudentID, &p.SchoolID, &p.Amount,
		&p.Mode, &p.Status, &p.TransDate, &p.TrxRef, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetPaymentByTrxRef retrieves a payment by its transaction reference
func GetPaymentByTrxRef(db *sql.DB, trxRef string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE trx_ref = $1 AND deleted_at IS NULL`
	p, err := scanPayment(db.QueryRow(query, trxRef))
	if err != nil {
		return nil, trapNoRows(err)
	}
	return p, nil
}

// CreatePayment records a payment transaction. TrxRef is the idempotency
// key: recording the same reference twice returns the already stored
// payment instead of inserting a duplicate.
func CreatePayment(db *sql.DB, p *models.Payment) (created bool, err error) {
	query := `INSERT INTO payments (fee_id, student_id, school_id, amount, mode_of_payment, status, trans_date, trx_ref)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (trx_ref) DO NOTHING
	          RETURNING id, created_at, updated_at`
	err = db.QueryRow(query, p.FeeID, p.StudentID, p.SchoolID, p.Amount, p.Mode, p.Status, p.TransDate, p.TrxRef).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		existing, getErr := GetPaymentByTrxRef(db, p.TrxRef)
		if getErr != nil {
			return false, fmt.Errorf("failed to load existing payment %s: %v", p.TrxRef, getErr)
		}
		*p = *existing
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert payment: %v", err)
	}
	return true, nil
}

// UpdatePaymentStatus transitions a pending payment to success or failed.
// Settled payments stay settled.
func UpdatePaymentStatus(db *sql.DB, trxRef string, status models.PaymentStatus) error {
	query := `UPDATE payments SET status = $1, updated_at = NOW()
	          WHERE trx_ref = $2 AND status = 'pending' AND deleted_at IS NULL`
	res, err := db.Exec(query, status, trxRef)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPaymentsByStudent retrieves all payments of a student, newest first
func GetPaymentsByStudent(db *sql.DB, studentID string) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
	          WHERE student_id = $1 AND deleted_at IS NULL
	          ORDER BY trans_date DESC`
	return queryPayments(db, query, studentID)
}

// GetPaymentsBySchool retrieves all payments of a school, newest first
func GetPaymentsBySchool(db *sql.DB, schoolID string) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
	          WHERE school_id = $1 AND deleted_at IS NULL
	          ORDER BY trans_date DESC`
	return queryPayments(db, query, schoolID)
}

// GetPaymentsForTerm retrieves the payments of a school made against the
// fee definitions of a term
func GetPaymentsForTerm(db *sql.DB, schoolID, termID string) ([]models.Payment, error) {
	query := `SELECT p.id, p.fee_id, p.student_id, p.school_id, p.amount, p.mode_of_payment, p.status, p.trans_date, p.trx_ref, p.created_at, p.updated_at
	          FROM payments p
	          JOIN fees f ON p.fee_id = f.id
	          WHERE p.school_id = $1 AND f.term_id = $2 AND p.deleted_at IS NULL
	          ORDER BY p.trans_date DESC`
	return queryPayments(db, query, schoolID, termID)
}

func queryPayments(db *sql.DB, query string, args ...interface{}) ([]models.Payment, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}
