package auth

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/config"
	"github.com/charlykso/smart-s-sub003/app/database"
	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/scope"
)

// DeriveScope resolves the stored associations behind the claims and
// computes the request's role scope. Group roles expand to the school ids
// under their group; parents to their current children links.
func DeriveScope(db *sql.DB, claims *JWTClaims, role string) (scope.RoleScope, error) {
	assoc := scope.Associations{
		SchoolID:  claims.SchoolID,
		StudentID: claims.StudentID,
	}

	switch role {
	case models.RoleICTAdmin, models.RoleProprietor:
		if claims.GroupSchoolID != "" {
			ids, err := database.GetSchoolIDsByGroup(db, claims.GroupSchoolID)
			if err != nil {
				return scope.RoleScope{}, err
			}
			assoc.GroupSchoolIDs = ids
		}
	case models.RoleParent:
		ids, err := database.GetChildIDs(db, claims.UserID)
		if err != nil {
			return scope.RoleScope{}, err
		}
		assoc.ChildIDs = ids
	}

	return scope.Derive(role, assoc)
}

// StrongestRole returns the widest school-facing role among the given
// roles, or "" when none qualifies. Parent and student roles never widen
// to school access.
func StrongestRole(roles []string) string {
	order := []string{
		models.RoleAdmin, models.RoleICTAdmin, models.RoleProprietor,
		models.RolePrincipal, models.RoleBursar, models.RoleHeadteacher, models.RoleAuditor,
	}
	for _, want := range order {
		for _, r := range roles {
			if r == want {
				return want
			}
		}
	}
	return ""
}

// AuthorizeSchoolScope checks a school id against the scope of the
// caller's strongest school-facing role. Out-of-scope schools yield
// scope.ErrPermissionDenied, never an empty result.
func AuthorizeSchoolScope(db *sql.DB, claims *JWTClaims, schoolID string) error {
	role := StrongestRole(claims.Roles)
	if role == "" {
		return scope.ErrPermissionDenied
	}
	sc, err := DeriveScope(db, claims, role)
	if err != nil {
		return err
	}
	return sc.AuthorizeSchool(schoolID)
}

// AuthorizeStudentScope checks a student against the caller's scope,
// honoring parent/student bindings over school membership.
func AuthorizeStudentScope(db *sql.DB, claims *JWTClaims, studentID, studentSchoolID string) error {
	role := StrongestRole(claims.Roles)
	if role == "" {
		// Parent and student accounts fall back to their own bindings.
		for _, r := range claims.Roles {
			if r == models.RoleParent || r == models.RoleStudent {
				sc, err := DeriveScope(db, claims, r)
				if err != nil {
					return err
				}
				return sc.AuthorizeStudent(studentID, studentSchoolID)
			}
		}
		return scope.ErrPermissionDenied
	}
	sc, err := DeriveScope(db, claims, role)
	if err != nil {
		return err
	}
	return sc.AuthorizeStudent(studentID, studentSchoolID)
}

// scopeFiberError maps scope failures onto the app error handler.
func scopeFiberError(err error) error {
	switch err {
	case scope.ErrPermissionDenied:
		return fiber.NewError(403, "You do not have access to this resource")
	case scope.ErrNoScope:
		return fiber.NewError(403, "Your account has no scope assigned")
	}
	return fiber.NewError(500, "Failed to resolve your scope")
}

// RequireSchoolScope rejects requests for schools outside the caller's
// scope. Handlers return the error unchanged; the app error handler
// renders it.
func RequireSchoolScope(c *fiber.Ctx, schoolID string) error {
	if err := AuthorizeSchoolScope(config.GetDB(), Claims(c), schoolID); err != nil {
		return scopeFiberError(err)
	}
	return nil
}

// RequireStudentScope rejects requests for students outside the caller's
// scope, honoring parent/student bindings over school membership.
func RequireStudentScope(c *fiber.Ctx, studentID, studentSchoolID string) error {
	if err := AuthorizeStudentScope(config.GetDB(), Claims(c), studentID, studentSchoolID); err != nil {
		return scopeFiberError(err)
	}
	return nil
}

// AuthorizeGroupScope limits group-level reads and writes to the admin
// and to users whose token carries that group.
func AuthorizeGroupScope(claims *JWTClaims, groupID string) error {
	for _, r := range claims.Roles {
		if r == models.RoleAdmin {
			return nil
		}
	}
	if claims.GroupSchoolID != "" && claims.GroupSchoolID == groupID {
		return nil
	}
	return scope.ErrPermissionDenied
}

// RequireGroupScope rejects requests for group schools outside the
// caller's scope.
func RequireGroupScope(c *fiber.Ctx, groupID string) error {
	if err := AuthorizeGroupScope(Claims(c), groupID); err != nil {
		return scopeFiberError(err)
	}
	return nil
}
