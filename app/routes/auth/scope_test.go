package auth

import (
	"testing"

	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/scope"
)

func TestStrongestRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  string
	}{
		{"bursar", []string{models.RoleBursar}, models.RoleBursar},
		{"admin wins over bursar", []string{models.RoleBursar, models.RoleAdmin}, models.RoleAdmin},
		{"ict wins over auditor", []string{models.RoleAuditor, models.RoleICTAdmin}, models.RoleICTAdmin},
		{"parent never qualifies", []string{models.RoleParent}, ""},
		{"student never qualifies", []string{models.RoleStudent, models.RoleParent}, ""},
		{"no roles", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrongestRole(tt.roles); got != tt.want {
				t.Errorf("StrongestRole(%v) = %q, want %q", tt.roles, got, tt.want)
			}
		})
	}
}

// School-bound roles derive their scope from the claims alone, so these
// checks run without a database.
func TestAuthorizeSchoolScope(t *testing.T) {
	bursar := &JWTClaims{UserID: "user-1", Roles: []string{models.RoleBursar}, SchoolID: "sch-1"}

	if err := AuthorizeSchoolScope(nil, bursar, "sch-1"); err != nil {
		t.Errorf("bursar denied own school: %v", err)
	}
	if err := AuthorizeSchoolScope(nil, bursar, "sch-2"); err != scope.ErrPermissionDenied {
		t.Errorf("bursar reading another school = %v, want ErrPermissionDenied", err)
	}

	admin := &JWTClaims{UserID: "user-2", Roles: []string{models.RoleAdmin}}
	if err := AuthorizeSchoolScope(nil, admin, "sch-2"); err != nil {
		t.Errorf("admin denied: %v", err)
	}

	parent := &JWTClaims{UserID: "user-3", Roles: []string{models.RoleParent}}
	if err := AuthorizeSchoolScope(nil, parent, "sch-1"); err != scope.ErrPermissionDenied {
		t.Errorf("parent granted school access = %v, want ErrPermissionDenied", err)
	}

	nobody := &JWTClaims{UserID: "user-4"}
	if err := AuthorizeSchoolScope(nil, nobody, "sch-1"); err != scope.ErrPermissionDenied {
		t.Errorf("role-less user = %v, want ErrPermissionDenied", err)
	}

	unplaced := &JWTClaims{UserID: "user-5", Roles: []string{models.RoleBursar}}
	if err := AuthorizeSchoolScope(nil, unplaced, "sch-1"); err != scope.ErrNoScope {
		t.Errorf("bursar without a school = %v, want ErrNoScope", err)
	}
}

func TestAuthorizeGroupScope(t *testing.T) {
	admin := &JWTClaims{UserID: "user-1", Roles: []string{models.RoleAdmin}}
	if err := AuthorizeGroupScope(admin, "grp-2"); err != nil {
		t.Errorf("admin denied: %v", err)
	}

	ict := &JWTClaims{UserID: "user-2", Roles: []string{models.RoleICTAdmin}, GroupSchoolID: "grp-1"}
	if err := AuthorizeGroupScope(ict, "grp-1"); err != nil {
		t.Errorf("ict admin denied own group: %v", err)
	}
	if err := AuthorizeGroupScope(ict, "grp-2"); err != scope.ErrPermissionDenied {
		t.Errorf("ict admin reading another group = %v, want ErrPermissionDenied", err)
	}

	unplaced := &JWTClaims{UserID: "user-3", Roles: []string{models.RoleICTAdmin}}
	if err := AuthorizeGroupScope(unplaced, ""); err != scope.ErrPermissionDenied {
		t.Errorf("empty group id matched empty claim = %v, want ErrPermissionDenied", err)
	}
}

func TestAuthorizeStudentScope(t *testing.T) {
	bursar := &JWTClaims{UserID: "user-1", Roles: []string{models.RoleBursar}, SchoolID: "sch-1"}

	if err := AuthorizeStudentScope(nil, bursar, "stu-1", "sch-1"); err != nil {
		t.Errorf("bursar denied student of own school: %v", err)
	}
	if err := AuthorizeStudentScope(nil, bursar, "stu-2", "sch-2"); err != scope.ErrPermissionDenied {
		t.Errorf("bursar reading another school's student = %v, want ErrPermissionDenied", err)
	}

	student := &JWTClaims{UserID: "user-2", Roles: []string{models.RoleStudent}, StudentID: "stu-9", SchoolID: "sch-1"}
	if err := AuthorizeStudentScope(nil, student, "stu-9", "sch-1"); err != nil {
		t.Errorf("student denied own record: %v", err)
	}
	// A school match must not widen a student to classmates' records.
	if err := AuthorizeStudentScope(nil, student, "stu-8", "sch-1"); err != scope.ErrPermissionDenied {
		t.Errorf("student reading a classmate = %v, want ErrPermissionDenied", err)
	}
}
