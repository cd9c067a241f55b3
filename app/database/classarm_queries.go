package database

import (
	"database/sql"

	"github.com/charlykso/smart-s-sub003/app/models"
)

// GetClassArmsBySchool retrieves all class arms of a school
func GetClassArmsBySchool(db *sql.DB, schoolID string) ([]*models.ClassArm, error) {
	query := `SELECT id, school_id, name, class_teacher_id, capacity, cached_student_count, created_at, updated_at
	          FROM class_arms
	          WHERE school_id = $1 AND deleted_at IS NULL
	          ORDER BY name ASC`
	rows, err := db.Query(query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var arms []*models.ClassArm
	for rows.Next() {
		arm := &models.ClassArm{}
		err := rows.Scan(
			&arm.ID, &arm.SchoolID, &arm.Name, &arm.ClassTeacherID,
			&arm.Capacity, &arm.CachedStudentCount, &arm.CreatedAt, &arm.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		arms = append(arms, arm)
	}
	return arms, rows.Err()
}

// GetClassArmByID retrieves a single class arm
func GetClassArmByID(db *sql.DB, armID string) (*models.ClassArm, error) {
	arm := &models.ClassArm{}
	query := `SELECT id, school_id, name, class_teacher_id, capacity, cached_student_count, created_at, updated_at
	          FROM class_arms
	          WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, armID).Scan(
		&arm.ID, &arm.SchoolID, &arm.Name, &arm.ClassTeacherID,
		&arm.Capacity, &arm.CachedStudentCount, &arm.CreatedAt, &arm.UpdatedAt,
	)
	if err != nil {
		return nil, trapNoRows(err)
	}
	return arm, nil
}

// CreateClassArm inserts a new class arm
func CreateClassArm(db *sql.DB, arm *models.ClassArm) error {
	query := `INSERT INTO class_arms (school_id, name, class_teacher_id, capacity)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query, arm.SchoolID, arm.Name, arm.ClassTeacherID, arm.Capacity).
		Scan(&arm.ID, &arm.CreatedAt, &arm.UpdatedAt)
}

// UpdateClassArm updates name, teacher and capacity
func UpdateClassArm(db *sql.DB, arm *models.ClassArm) error {
	query := `UPDATE class_arms SET name = $1, class_teacher_id = $2, capacity = $3, updated_at = NOW()
	          WHERE id = $4 AND deleted_at IS NULL`
	res, err := db.Exec(query, arm.Name, arm.ClassTeacherID, arm.Capacity, arm.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// armCountStore backs services.ArmCountStore with live student rows. The
// cached_student_count column is only ever written here; readers treat it
// as a hint, not a source of truth.
type armCountStore struct {
	db *sql.DB
}

// NewArmCountStore returns the SQL-backed store for the membership counter.
func NewArmCountStore(db *sql.DB) *armCountStore {
	return &armCountStore{db: db}
}

func (s *armCountStore) ListClassArmIDs(schoolID string) ([]string, error) {
	rows, err := s.db.Query(`SELECT id FROM class_arms WHERE school_id = $1 AND deleted_at IS NULL ORDER BY name ASC`, schoolID)
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

func (s *armCountStore) CountActiveStudents(armID string) (int, error) {
	// The join against class_arms distinguishes "arm does not exist" from
	// "arm exists with zero students".
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM class_arms WHERE id = $1 AND deleted_at IS NULL)`, armID).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrNotFound
	}

	var count int
	err = s.db.QueryRow(`SELECT COUNT(*) FROM students WHERE class_arm_id = $1 AND is_active = true AND deleted_at IS NULL`, armID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *armCountStore) SaveStudentCount(armID string, count int) error {
	res, err := s.db.Exec(`UPDATE class_arms SET cached_student_count = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`, count, armID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
