package database

import (
	"database/sql"
	"fmt"

	"github.com/charlykso/smart-s-sub003/app/models"
)

const studentColumns = `id, school_id, class_arm_id, reg_no, first_name, last_name, gender, type, is_active, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.SchoolID, &s.ClassArmID, &s.RegNo, &s.FirstName, &s.LastName,
		&s.Gender, &s.Type, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetStudentByID retrieves a single student
func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND deleted_at IS NULL`
	s, err := scanStudent(db.QueryRow(query, studentID))
	if err != nil {
		return nil, trapNoRows(err)
	}
	return s, nil
}

// GetStudentsBySchool retrieves students of a school with pagination
func GetStudentsBySchool(db *sql.DB, schoolID string, limit, offset int) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
	          WHERE school_id = $1 AND deleted_at IS NULL
	          ORDER BY last_name ASC, first_name ASC
	          LIMIT $2 OFFSET $3`
	rows, err := db.Query(query, schoolID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetActiveStudentsByClassArm retrieves the active students of a class arm
func GetActiveStudentsByClassArm(db *sql.DB, armID string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
	          WHERE class_arm_id = $1 AND is_active = true AND deleted_at IS NULL
	          ORDER BY last_name ASC, first_name ASC`
	rows, err := db.Query(query, armID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// CreateStudent inserts a new student. RegNo must be unique per school.
func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (school_id, class_arm_id, reg_no, first_name, last_name, gender, type, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, true)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, s.SchoolID, s.ClassArmID, s.RegNo, s.FirstName, s.LastName, s.Gender, s.Type).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert student: %v", err)
	}
	s.IsActive = true
	return nil
}

// UpdateStudent updates mutable student fields including class assignment
// and the active flag. Cached class-arm counts are not touched here; the
// membership counter recomputes them.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students
	          SET class_arm_id = $1, first_name = $2, last_name = $3, gender = $4, type = $5, is_active = $6, updated_at = NOW()
	          WHERE id = $7 AND deleted_at IS NULL`
	res, err := db.Exec(query, s.ClassArmID, s.FirstName, s.LastName, s.Gender, s.Type, s.IsActive, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetStudentIDsBySchool returns the ids of all active students of a school
func GetStudentIDsBySchool(db *sql.DB, schoolID string) ([]string, error) {
	rows, err := db.Query(`SELECT id FROM students WHERE school_id = $1 AND is_active = true AND deleted_at IS NULL`, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
