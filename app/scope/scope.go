package scope

import (
	"errors"

	"github.com/charlykso/smart-s-sub003/app/models"
)

var (
	// ErrPermissionDenied rejects a request outside the caller's scope.
	// It is never downgraded to an empty result: silently returning "no
	// data" for an out-of-scope request would leak which ids exist.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNoScope means the role's stored associations are missing (e.g. a
	// principal account without a school reference).
	ErrNoScope = errors.New("role has no scope associations")
)

// Associations are the stored links a role's scope is derived from:
// the user's own school, the schools under their group, their children,
// or their own student record.
type Associations struct {
	SchoolID       string
	GroupSchoolIDs []string // school ids under the user's group school
	ChildIDs       []string // student ids linked to a parent
	StudentID      string
}

// RoleScope is the computed visibility of one request: the set of schools
// the role may see and, for parent/student roles, the permitted student
// ids. It is derived per request and holds no session state.
type RoleScope struct {
	Role         string
	Unrestricted bool
	SchoolIDs    []string
	StudentIDs   []string
}

// Derive computes the scope for a role from its associations.
func Derive(role string, assoc Associations) (RoleScope, error) {
	switch role {
	case models.RoleAdmin:
		return RoleScope{Role: role, Unrestricted: true}, nil

	case models.RoleICTAdmin, models.RoleProprietor:
		if len(assoc.GroupSchoolIDs) == 0 {
			return RoleScope{}, ErrNoScope
		}
		return RoleScope{Role: role, SchoolIDs: assoc.GroupSchoolIDs}, nil

	case models.RolePrincipal, models.RoleHeadteacher, models.RoleBursar, models.RoleAuditor:
		if assoc.SchoolID == "" {
			return RoleScope{}, ErrNoScope
		}
		return RoleScope{Role: role, SchoolIDs: []string{assoc.SchoolID}}, nil

	case models.RoleParent:
		if len(assoc.ChildIDs) == 0 {
			return RoleScope{}, ErrNoScope
		}
		return RoleScope{Role: role, StudentIDs: assoc.ChildIDs}, nil

	case models.RoleStudent:
		if assoc.StudentID == "" {
			return RoleScope{}, ErrNoScope
		}
		s := RoleScope{Role: role, StudentIDs: []string{assoc.StudentID}}
		if assoc.SchoolID != "" {
			s.SchoolIDs = []string{assoc.SchoolID}
		}
		return s, nil
	}
	return RoleScope{}, ErrPermissionDenied
}

// AuthorizeSchool checks that the scope covers the requested school.
func (s RoleScope) AuthorizeSchool(schoolID string) error {
	if s.Unrestricted {
		return nil
	}
	for _, id := range s.SchoolIDs {
		if id == schoolID {
			return nil
		}
	}
	return ErrPermissionDenied
}

// AuthorizeStudent checks that the scope covers the requested student.
// School-scoped roles see every student of their schools; parent and
// student roles only their listed student ids.
func (s RoleScope) AuthorizeStudent(studentID, studentSchoolID string) error {
	if s.Unrestricted {
		return nil
	}
	for _, id := range s.StudentIDs {
		if id == studentID {
			return nil
		}
	}
	if len(s.StudentIDs) > 0 {
		// Parent/student roles are bound to explicit student ids; a
		// school match must not widen them.
		return ErrPermissionDenied
	}
	return s.AuthorizeSchool(studentSchoolID)
}

// FilterSchoolIDs restricts a candidate school set to those in scope.
// Unrestricted scopes pass the set through unchanged.
func (s RoleScope) FilterSchoolIDs(ids []string) []string {
	if s.Unrestricted {
		return ids
	}
	allowed := make(map[string]bool, len(s.SchoolIDs))
	for _, id := range s.SchoolIDs {
		allowed[id] = true
	}
	filtered := make([]string, 0, len(ids))
	for _, id := range ids {
		if allowed[id] {
			filtered = append(filtered, id)
		}
	}
	return filtered
}
