package database

import (
	"database/sql"

	"github.com/charlykso/smart-s-sub003/app/models"
)

const feeColumns = `id, school_id, term_id, name, type, amount, class_arm_id, student_type, is_approved, approved_by, approved_at, created_at, updated_at`

func scanFee(row interface{ Scan(...interface{}) error }) (*models.Fee, error) {
	f := &models.Fee{}
	err := row.Scan(
		&f.ID, &f.SchoolID, &f.TermID, &f.Name, &f.Type, &f.Amount,
		&f.ClassArmID, &f.StudentType, &f.IsApproved, &f.ApprovedBy, &f.ApprovedAt,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// GetFeeByID retrieves a single fee definition
func GetFeeByID(db *sql.DB, feeID string) (*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees WHERE id = $1 AND deleted_at IS NULL`
	f, err := scanFee(db.QueryRow(query, feeID))
	if err != nil {
		return nil, trapNoRows(err)
	}
	return f, nil
}

// GetApprovedFeesForTerm retrieves the approved fee definitions of a
// school for a term, in creation order. These are the only fees eligible
// for resolution and outstanding calculations.
func GetApprovedFeesForTerm(db *sql.DB, schoolID, termID string) ([]models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees
	          WHERE school_id = $1 AND term_id = $2 AND is_approved = true AND deleted_at IS NULL
	          ORDER BY created_at ASC, id ASC`
	rows, err := db.Query(query, schoolID, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []models.Fee
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, *f)
	}
	return fees, rows.Err()
}

// GetFeesBySchool retrieves all fee definitions of a school, approved or not
func GetFeesBySchool(db *sql.DB, schoolID string, termID string) ([]models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees
	          WHERE school_id = $1 AND ($2 = '' OR term_id = $2) AND deleted_at IS NULL
	          ORDER BY created_at ASC, id ASC`
	rows, err := db.Query(query, schoolID, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []models.Fee
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, *f)
	}
	return fees, rows.Err()
}

// CreateFee inserts a new fee definition. New fees start unapproved.
func CreateFee(db *sql.DB, f *models.Fee) error {
	query := `INSERT INTO fees (school_id, term_id, name, type, amount, class_arm_id, student_type)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query, f.SchoolID, f.TermID, f.Name, f.Type, f.Amount, f.ClassArmID, f.StudentType).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

// ApproveFee marks a fee as approved by the given user
func ApproveFee(db *sql.DB, feeID, approverID string) error {
	query := `UPDATE fees SET is_approved = true, approved_by = $1, approved_at = NOW(), updated_at = NOW()
	          WHERE id = $2 AND deleted_at IS NULL`
	res, err := db.Exec(query, approverID, feeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateFee updates an unapproved fee definition. Approved fees are
// immutable; revoke approval first.
func UpdateFee(db *sql.DB, f *models.Fee) error {
	query := `UPDATE fees SET name = $1, type = $2, amount = $3, class_arm_id = $4, student_type = $5, updated_at = NOW()
	          WHERE id = $6 AND is_approved = false AND deleted_at IS NULL`
	res, err := db.Exec(query, f.Name, f.Type, f.Amount, f.ClassArmID, f.StudentType, f.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteFee soft-deletes an unapproved fee definition
func DeleteFee(db *sql.DB, feeID string) error {
	res, err := db.Exec(`UPDATE fees SET deleted_at = NOW() WHERE id = $1 AND is_approved = false AND deleted_at IS NULL`, feeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
