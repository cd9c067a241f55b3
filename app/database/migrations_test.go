package database

import (
	"strings"
	"testing"
)

// The base schema must cover every table the query layer touches and
// stay safe to re-run against an already-migrated database.
func TestBaseSchemaStatements(t *testing.T) {
	all := strings.Join(baseSchemaStatements, "\n")

	tables := []string{
		"group_schools", "schools", "sessions", "terms",
		"users", "roles", "user_roles",
		"class_arms", "students", "parent_students", "fees", "payments",
	}
	for _, table := range tables {
		if !strings.Contains(all, "CREATE TABLE IF NOT EXISTS "+table+" (") {
			t.Errorf("base schema does not create table %s", table)
		}
	}

	for i, stmt := range baseSchemaStatements {
		if !strings.Contains(stmt, "IF NOT EXISTS") {
			t.Errorf("statement %d is not idempotent: %s", i, stmt)
		}
	}
}
