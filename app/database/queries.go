package database

import (
	"database/sql"
	"fmt"

	"github.com/charlykso/smart-s-sub003/app/models"
)

// GetUserByEmail retrieves a user with role associations by email
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, phone, school_id, group_school_id, student_id, is_active, created_at, updated_at
	          FROM users WHERE email = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName, &user.Phone,
		&user.SchoolID, &user.GroupSchoolID, &user.StudentID, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by id
func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, phone, school_id, group_school_id, student_id, is_active, created_at, updated_at
	          FROM users WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName, &user.Phone,
		&user.SchoolID, &user.GroupSchoolID, &user.StudentID, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, trapNoRows(err)
	}
	return user, nil
}

// GetUserRoles retrieves the roles assigned to a user
func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `SELECT r.id, r.name, r.is_active, r.created_at, r.updated_at
	          FROM roles r
	          JOIN user_roles ur ON r.id = ur.role_id
	          WHERE ur.user_id = $1 AND r.is_active = true AND ur.deleted_at IS NULL`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name, &role.IsActive, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// CreateUser inserts a new user account
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, first_name, last_name, phone, school_id, group_school_id, student_id, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		user.Email, user.Password, user.FirstName, user.LastName, user.Phone,
		user.SchoolID, user.GroupSchoolID, user.StudentID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %v", err)
	}
	user.IsActive = true
	return nil
}

// UpdateUserPassword replaces a user's password hash
func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	res, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`, hashedPassword, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// AssignUserRole links a user to a role by role name
func AssignUserRole(db *sql.DB, userID string, roleName string) error {
	var roleID string
	err := db.QueryRow(`SELECT id FROM roles WHERE name = $1 AND is_active = true`, roleName).Scan(&roleID)
	if err == sql.ErrNoRows {
		err = db.QueryRow(`INSERT INTO roles (name, is_active) VALUES ($1, true) RETURNING id`, roleName).Scan(&roleID)
		if err != nil {
			return fmt.Errorf("failed to create role %s: %v", roleName, err)
		}
	} else if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, roleID)
	return err
}

// GetChildIDs retrieves the student ids linked to a parent account
func GetChildIDs(db *sql.DB, parentID string) ([]string, error) {
	rows, err := db.Query(`SELECT student_id FROM parent_students WHERE parent_id = $1 AND deleted_at IS NULL`, parentID)
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

// GetChildren retrieves the student records linked to a parent account
func GetChildren(db *sql.DB, parentID string) ([]*models.Student, error) {
	query := `SELECT s.id, s.school_id, s.class_arm_id, s.reg_no, s.first_name, s.last_name, s.gender, s.type, s.is_active, s.created_at, s.updated_at
	          FROM students s
	          JOIN parent_students ps ON s.id = ps.student_id
	          WHERE ps.parent_id = $1 AND ps.deleted_at IS NULL AND s.deleted_at IS NULL
	          ORDER BY s.last_name ASC, s.first_name ASC`
	rows, err := db.Query(query, parentID)
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

// LinkParentStudent links a parent account to a child's student record
func LinkParentStudent(db *sql.DB, link *models.ParentStudent) error {
	query := `INSERT INTO parent_students (parent_id, student_id, relationship)
	          VALUES ($1, $2, $3)
	          ON CONFLICT DO NOTHING
	          RETURNING id, created_at`
	err := db.QueryRow(query, link.ParentID, link.StudentID, link.Relationship).Scan(&link.ID, &link.CreatedAt)
	if err == sql.ErrNoRows {
		// Link already exists; treat as success.
		return nil
	}
	return err
}

// UnlinkParentStudent removes a parent-child link
func UnlinkParentStudent(db *sql.DB, parentID, studentID string) error {
	res, err := db.Exec(`UPDATE parent_students SET deleted_at = NOW() WHERE parent_id = $1 AND student_id = $2 AND deleted_at IS NULL`, parentID, studentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
