package dashboard

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/config"
	"github.com/charlykso/smart-s-sub003/app/database"
	"github.com/charlykso/smart-s-sub003/app/ledger"
	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
	"github.com/charlykso/smart-s-sub003/app/scope"
)

// referenceTime resolves the reference time for period buckets. Clients
// may pin it with ?at=RFC3339 so reruns are reproducible; the engine
// itself never reads the clock.
func referenceTime(c *fiber.Ctx) time.Time {
	if at := c.Query("at"); at != "" {
		if t, err := time.Parse(time.RFC3339, at); err == nil {
			return t
		}
	}
	return time.Now()
}

func scopedError(c *fiber.Ctx, err error) error {
	switch err {
	case scope.ErrPermissionDenied:
		return c.Status(403).JSON(fiber.Map{"error": "You do not have access to this resource"})
	case scope.ErrNoScope:
		return c.Status(403).JSON(fiber.Map{"error": "Your account has no scope assigned"})
	case database.ErrNotFound:
		return c.Status(404).JSON(fiber.Map{"error": "Record not found"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Failed to build dashboard"})
}

// AdminDashboardAPI returns the unrestricted, all-groups overview
func AdminDashboardAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	groups, err := database.GetGroupSchools(db)
	if err != nil {
		return scopedError(c, err)
	}

	summaries := make([]ledger.Summary, 0, len(groups))
	for _, g := range groups {
		summary, _, err := database.BuildGroupSummary(db, g.ID)
		if err != nil {
			return scopedError(c, err)
		}
		summaries = append(summaries, summary)
	}
	total := ledger.Merge(ledger.ScopeKey{Level: ledger.ScopeGroup, ID: "all"}, summaries...)

	return c.JSON(fiber.Map{
		"success": true,
		"summary": total,
		"groups":  summaries,
	})
}

// groupDashboard serves the group-scoped roles (ICT administrator,
// proprietor): the group rollup plus the per-school children so the two
// always reconcile on screen.
func groupDashboard(c *fiber.Ctx, role string) error {
	db := config.GetDB()
	claims := auth.Claims(c)

	sc, err := auth.DeriveScope(db, claims, role)
	if err != nil {
		return scopedError(c, err)
	}

	groupID := c.Query("group_school_id", claims.GroupSchoolID)
	if groupID != claims.GroupSchoolID {
		return scopedError(c, scope.ErrPermissionDenied)
	}

	summary, schools, err := database.BuildGroupSummary(db, groupID)
	if err != nil {
		return scopedError(c, err)
	}
	for _, child := range schools {
		if err := sc.AuthorizeSchool(child.Scope.ID); err != nil {
			return scopedError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"summary": summary,
		"schools": schools,
	})
}

func ICTDashboardAPI(c *fiber.Ctx) error        { return groupDashboard(c, models.RoleICTAdmin) }
func ProprietorDashboardAPI(c *fiber.Ctx) error { return groupDashboard(c, models.RoleProprietor) }

// schoolDashboard serves the school-scoped roles. A school_id outside the
// role's assigned school is a permission error, never an empty result.
func schoolDashboard(c *fiber.Ctx, role string) error {
	db := config.GetDB()
	claims := auth.Claims(c)

	sc, err := auth.DeriveScope(db, claims, role)
	if err != nil {
		return scopedError(c, err)
	}

	schoolID := c.Query("school_id", claims.SchoolID)
	if err := sc.AuthorizeSchool(schoolID); err != nil {
		return scopedError(c, err)
	}

	termID := c.Query("term_id")
	var session *models.Session
	if termID == "" {
		term, err := database.GetActiveTerm(db, schoolID)
		if err != nil {
			return scopedError(c, err)
		}
		termID = term.ID
	}
	session, err = database.GetActiveSession(db, schoolID)
	if err != nil && err != database.ErrNotFound {
		return scopedError(c, err)
	}

	summary, err := database.BuildSchoolSummary(db, schoolID, termID)
	if err != nil {
		return scopedError(c, err)
	}

	payments, err := database.GetPaymentsForTerm(db, schoolID, termID)
	if err != nil {
		return scopedError(c, err)
	}
	revenue := ledger.Revenue(payments, referenceTime(c), session)

	arms, err := database.GetClassArmsBySchool(db, schoolID)
	if err != nil {
		return scopedError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"summary":    summary,
		"revenue":    revenue,
		"class_arms": arms,
		"term_id":    termID,
	})
}

func PrincipalDashboardAPI(c *fiber.Ctx) error   { return schoolDashboard(c, models.RolePrincipal) }
func HeadteacherDashboardAPI(c *fiber.Ctx) error { return schoolDashboard(c, models.RoleHeadteacher) }
func BursarDashboardAPI(c *fiber.Ctx) error      { return schoolDashboard(c, models.RoleBursar) }
func AuditorDashboardAPI(c *fiber.Ctx) error     { return schoolDashboard(c, models.RoleAuditor) }

// ClassArmDashboardAPI returns the rollup for one class arm
func ClassArmDashboardAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	claims := auth.Claims(c)
	armID := c.Params("id")

	arm, err := database.GetClassArmByID(db, armID)
	if err != nil {
		return scopedError(c, err)
	}

	role := firstSchoolRole(claims.Roles)
	if role == "" {
		return scopedError(c, scope.ErrPermissionDenied)
	}
	sc, err := auth.DeriveScope(db, claims, role)
	if err != nil {
		return scopedError(c, err)
	}
	if err := sc.AuthorizeSchool(arm.SchoolID); err != nil {
		return scopedError(c, err)
	}

	termID := c.Query("term_id")
	if termID == "" {
		term, err := database.GetActiveTerm(db, arm.SchoolID)
		if err != nil {
			return scopedError(c, err)
		}
		termID = term.ID
	}

	summary, err := database.BuildClassArmSummary(db, armID, termID)
	if err != nil {
		return scopedError(c, err)
	}
	summary.StudentCount = arm.CachedStudentCount

	return c.JSON(fiber.Map{
		"success": true,
		"summary": summary,
		"arm":     arm,
	})
}

// StudentDashboardAPI returns the student's own ledger and summary
func StudentDashboardAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	claims := auth.Claims(c)

	sc, err := auth.DeriveScope(db, claims, models.RoleStudent)
	if err != nil {
		return scopedError(c, err)
	}
	return studentLedgerResponse(c, db, sc, claims.StudentID)
}

// ParentChildDashboardAPI returns the ledger of one of the parent's
// children. Any other student id is rejected, not emptied.
func ParentChildDashboardAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	claims := auth.Claims(c)

	sc, err := auth.DeriveScope(db, claims, models.RoleParent)
	if err != nil {
		return scopedError(c, err)
	}
	return studentLedgerResponse(c, db, sc, c.Params("studentId"))
}

func studentLedgerResponse(c *fiber.Ctx, db *sql.DB, sc scope.RoleScope, studentID string) error {
	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		// An id outside the caller's children must look the same whether
		// or not it exists, so authorization is checked first.
		if err == database.ErrNotFound {
			if authErr := sc.AuthorizeStudent(studentID, ""); authErr != nil {
				return scopedError(c, authErr)
			}
		}
		return scopedError(c, err)
	}
	if err := sc.AuthorizeStudent(student.ID, student.SchoolID); err != nil {
		return scopedError(c, err)
	}

	termID := c.Query("term_id")
	if termID == "" {
		term, err := database.GetActiveTerm(db, student.SchoolID)
		if err != nil {
			return scopedError(c, err)
		}
		termID = term.ID
	}

	summary, ledgers, err := database.BuildStudentSummary(db, studentID, termID)
	if err != nil {
		return scopedError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"student": student,
		"summary": summary,
		"ledgers": ledgers,
		"term_id": termID,
	})
}

func firstSchoolRole(roles []string) string {
	for _, r := range roles {
		switch r {
		case models.RoleAdmin, models.RolePrincipal, models.RoleHeadteacher, models.RoleBursar, models.RoleAuditor:
			return r
		}
	}
	return ""
}
