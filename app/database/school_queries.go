package database

import (
	"database/sql"
	"fmt"

	"github.com/charlykso/smart-s-sub003/app/models"
)

// GetGroupSchools retrieves all group schools
func GetGroupSchools(db *sql.DB) ([]*models.GroupSchool, error) {
	rows, err := db.Query(`SELECT id, name, created_at, updated_at FROM group_schools WHERE deleted_at IS NULL ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.GroupSchool
	for rows.Next() {
		g := &models.GroupSchool{}
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// CreateGroupSchool inserts a new group school
func CreateGroupSchool(db *sql.DB, g *models.GroupSchool) error {
	return db.QueryRow(`INSERT INTO group_schools (name) VALUES ($1) RETURNING id, created_at, updated_at`, g.Name).
		Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

// RenameGroupSchool renames a group school. Renames are the only mutation
// allowed once schools reference the group.
func RenameGroupSchool(db *sql.DB, groupID, name string) error {
	res, err := db.Exec(`UPDATE group_schools SET name = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`, name, groupID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSchoolByID retrieves a single school
func GetSchoolByID(db *sql.DB, schoolID string) (*models.School, error) {
	s := &models.School{}
	query := `SELECT id, group_school_id, name, email, phone, address, is_active, created_at, updated_at
	          FROM schools WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, schoolID).Scan(
		&s.ID, &s.GroupSchoolID, &s.Name, &s.Email, &s.Phone, &s.Address,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, trapNoRows(err)
	}
	return s, nil
}

// GetSchoolsByGroup retrieves the schools under a group school
func GetSchoolsByGroup(db *sql.DB, groupID string) ([]*models.School, error) {
	query := `SELECT id, group_school_id, name, email, phone, address, is_active, created_at, updated_at
	          FROM schools WHERE group_school_id = $1 AND deleted_at IS NULL ORDER BY name ASC`
	rows, err := db.Query(query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		s := &models.School{}
		err := rows.Scan(
			&s.ID, &s.GroupSchoolID, &s.Name, &s.Email, &s.Phone, &s.Address,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		schools = append(schools, s)
	}
	return schools, rows.Err()
}

// GetSchoolIDsByGroup returns the ids of schools under a group school
func GetSchoolIDsByGroup(db *sql.DB, groupID string) ([]string, error) {
	rows, err := db.Query(`SELECT id FROM schools WHERE group_school_id = $1 AND deleted_at IS NULL`, groupID)
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

// GetActiveSchoolIDs returns the ids of all active schools
func GetActiveSchoolIDs(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT id FROM schools WHERE is_active = true AND deleted_at IS NULL`)
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

// CreateSchool inserts a new school under a group school
func CreateSchool(db *sql.DB, s *models.School) error {
	query := `INSERT INTO schools (group_school_id, name, email, phone, address, is_active)
	          VALUES ($1, $2, $3, $4, $5, true)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, s.GroupSchoolID, s.Name, s.Email, s.Phone, s.Address).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert school: %v", err)
	}
	s.IsActive = true
	return nil
}

// GetSessionByID retrieves a single session
func GetSessionByID(db *sql.DB, sessionID string) (*models.Session, error) {
	s := &models.Session{}
	query := `SELECT id, school_id, name, start_date, end_date, is_active, created_at, updated_at
	          FROM sessions WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, sessionID).Scan(
		&s.ID, &s.SchoolID, &s.Name, &s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, trapNoRows(err)
	}
	return s, nil
}

// GetActiveSession retrieves the active session of a school
func GetActiveSession(db *sql.DB, schoolID string) (*models.Session, error) {
	s := &models.Session{}
	query := `SELECT id, school_id, name, start_date, end_date, is_active, created_at, updated_at
	          FROM sessions WHERE school_id = $1 AND is_active = true AND deleted_at IS NULL
	          ORDER BY start_date DESC LIMIT 1`
	err := db.QueryRow(query, schoolID).Scan(
		&s.ID, &s.SchoolID, &s.Name, &s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, trapNoRows(err)
	}
	return s, nil
}

// GetSessionsBySchool retrieves all sessions of a school, newest first
func GetSessionsBySchool(db *sql.DB, schoolID string) ([]*models.Session, error) {
	query := `SELECT id, school_id, name, start_date, end_date, is_active, created_at, updated_at
	          FROM sessions WHERE school_id = $1 AND deleted_at IS NULL ORDER BY start_date DESC`
	rows, err := db.Query(query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s := &models.Session{}
		err := rows.Scan(&s.ID, &s.SchoolID, &s.Name, &s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// CreateSession inserts a new session. New sessions start inactive.
func CreateSession(db *sql.DB, s *models.Session) error {
	query := `INSERT INTO sessions (school_id, name, start_date, end_date)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query, s.SchoolID, s.Name, s.StartDate, s.EndDate).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// ActivateSession marks a session active and deactivates its siblings in
// one transaction, keeping at most one active session per school.
func ActivateSession(db *sql.DB, sessionID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var schoolID string
	err = tx.QueryRow(`SELECT school_id FROM sessions WHERE id = $1 AND deleted_at IS NULL`, sessionID).Scan(&schoolID)
	if err != nil {
		return trapNoRows(err)
	}

	if _, err := tx.Exec(`UPDATE sessions SET is_active = false, updated_at = NOW() WHERE school_id = $1 AND is_active = true`, schoolID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE sessions SET is_active = true, updated_at = NOW() WHERE id = $1`, sessionID); err != nil {
		return err
	}
	return tx.Commit()
}

// GetTermByID retrieves a single term
func GetTermByID(db *sql.DB, termID string) (*models.Term, error) {
	t := &models.Term{}
	query := `SELECT id, session_id, name, start_date, end_date, is_active, created_at, updated_at
	          FROM terms WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, termID).Scan(
		&t.ID, &t.SessionID, &t.Name, &t.StartDate, &t.EndDate, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, trapNoRows(err)
	}
	return t, nil
}

// GetActiveTerm retrieves the active term of a school's active session
func GetActiveTerm(db *sql.DB, schoolID string) (*models.Term, error) {
	t := &models.Term{}
	query := `SELECT t.id, t.session_id, t.name, t.start_date, t.end_date, t.is_active, t.created_at, t.updated_at
	          FROM terms t
	          JOIN sessions s ON t.session_id = s.id
	          WHERE s.school_id = $1 AND s.is_active = true AND t.is_active = true AND t.deleted_at IS NULL
	          ORDER BY t.start_date DESC LIMIT 1`
	err := db.QueryRow(query, schoolID).Scan(
		&t.ID, &t.SessionID, &t.Name, &t.StartDate, &t.EndDate, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, trapNoRows(err)
	}
	return t, nil
}

// GetTermsBySession retrieves the terms of a session in date order
func GetTermsBySession(db *sql.DB, sessionID string) ([]*models.Term, error) {
	query := `SELECT id, session_id, name, start_date, end_date, is_active, created_at, updated_at
	          FROM terms WHERE session_id = $1 AND deleted_at IS NULL ORDER BY start_date ASC`
	rows, err := db.Query(query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []*models.Term
	for rows.Next() {
		t := &models.Term{}
		err := rows.Scan(&t.ID, &t.SessionID, &t.Name, &t.StartDate, &t.EndDate, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// CreateTerm inserts a new term. End date must be after start date.
func CreateTerm(db *sql.DB, t *models.Term) error {
	if !t.EndDate.After(t.StartDate.Time) {
		return ErrInvalidDates
	}
	query := `INSERT INTO terms (session_id, name, start_date, end_date)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query, t.SessionID, t.Name, t.StartDate, t.EndDate).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// ActivateTerm marks a term active and deactivates its siblings within the
// same session in one transaction.
func ActivateTerm(db *sql.DB, termID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var sessionID string
	err = tx.QueryRow(`SELECT session_id FROM terms WHERE id = $1 AND deleted_at IS NULL`, termID).Scan(&sessionID)
	if err != nil {
		return trapNoRows(err)
	}

	if _, err := tx.Exec(`UPDATE terms SET is_active = false, updated_at = NOW() WHERE session_id = $1 AND is_active = true`, sessionID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE terms SET is_active = true, updated_at = NOW() WHERE id = $1`, termID); err != nil {
		return err
	}
	return tx.Commit()
}
