package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	// 1. Create the base tables on a fresh database
	if err := createBaseTables(db); err != nil {
		return err
	}

	// 2. Add cached_student_count column to class_arms if not exists
	if err := addCachedStudentCountColumn(db); err != nil {
		return err
	}

	// 3. Add school_id column to payments if not exists
	if err := addPaymentSchoolColumn(db); err != nil {
		return err
	}

	// 4. Ensure the unique transaction reference index exists
	if err := addPaymentTrxRefIndex(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// createBaseTables brings a fresh database up to the working schema.
// Every statement is idempotent, so existing deployments pass through
// unchanged.
func createBaseTables(db *sql.DB) error {
	for _, stmt := range baseSchemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to run base schema migration: %v", err)
			return err
		}
	}
	return nil
}

var baseSchemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS group_schools (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS schools (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		group_school_id UUID NOT NULL REFERENCES group_schools(id),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		phone VARCHAR(50),
		address TEXT,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		school_id UUID NOT NULL REFERENCES schools(id),
		name VARCHAR(100) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS terms (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		session_id UUID NOT NULL REFERENCES sessions(id),
		name VARCHAR(100) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		phone VARCHAR(50),
		school_id UUID,
		group_school_id UUID,
		student_id UUID,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(50) NOT NULL UNIQUE,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_roles (
		user_id UUID NOT NULL REFERENCES users(id),
		role_id UUID NOT NULL REFERENCES roles(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ,
		PRIMARY KEY (user_id, role_id)
	)`,
	`CREATE TABLE IF NOT EXISTS class_arms (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		school_id UUID NOT NULL REFERENCES schools(id),
		name VARCHAR(100) NOT NULL,
		class_teacher_id UUID,
		capacity INT NOT NULL DEFAULT 0,
		cached_student_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		school_id UUID NOT NULL REFERENCES schools(id),
		class_arm_id UUID,
		reg_no VARCHAR(100) NOT NULL,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		gender VARCHAR(10) NOT NULL,
		type VARCHAR(20) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS parent_students (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		parent_id UUID NOT NULL REFERENCES users(id),
		student_id UUID NOT NULL REFERENCES students(id),
		relationship VARCHAR(20),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_parent_students_link
		ON parent_students (parent_id, student_id) WHERE deleted_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS fees (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		school_id UUID NOT NULL REFERENCES schools(id),
		term_id UUID NOT NULL REFERENCES terms(id),
		name VARCHAR(255) NOT NULL,
		type VARCHAR(50) NOT NULL,
		amount BIGINT NOT NULL DEFAULT 0,
		class_arm_id UUID,
		student_type VARCHAR(20),
		is_approved BOOLEAN NOT NULL DEFAULT false,
		approved_by UUID,
		approved_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		fee_id UUID NOT NULL REFERENCES fees(id),
		student_id UUID NOT NULL REFERENCES students(id),
		school_id UUID,
		amount BIGINT NOT NULL,
		mode_of_payment VARCHAR(50) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		trans_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		trx_ref VARCHAR(100) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,
}

func addCachedStudentCountColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'class_arms'
				AND column_name = 'cached_student_count'
			) THEN
				ALTER TABLE class_arms ADD COLUMN cached_student_count INT NOT NULL DEFAULT 0;
				RAISE NOTICE 'Added cached_student_count column to class_arms';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for cached_student_count column: %v", err)
		return err
	}
	return nil
}

func addPaymentSchoolColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'payments'
				AND column_name = 'school_id'
			) THEN
				ALTER TABLE payments ADD COLUMN school_id UUID;
				UPDATE payments p SET school_id = s.school_id FROM students s WHERE p.student_id = s.id;
				RAISE NOTICE 'Added school_id column to payments';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for payments school_id column: %v", err)
		return err
	}
	return nil
}

func addPaymentTrxRefIndex(db *sql.DB) error {
	query := `CREATE UNIQUE INDEX IF NOT EXISTS idx_payments_trx_ref ON payments (trx_ref)`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for payments trx_ref index: %v", err)
		return err
	}
	return nil
}
