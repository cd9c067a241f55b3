package schools

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/config"
	"github.com/charlykso/smart-s-sub003/app/database"
	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

// GetGroupSchoolsAPI lists group schools. The admin sees every tenant;
// everyone else sees at most their own group.
func GetGroupSchoolsAPI(c *fiber.Ctx) error {
	groups, err := database.GetGroupSchools(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group schools"})
	}

	claims := auth.Claims(c)
	if auth.StrongestRole(claims.Roles) != models.RoleAdmin {
		visible := make([]*models.GroupSchool, 0, 1)
		for _, g := range groups {
			if g.ID == claims.GroupSchoolID {
				visible = append(visible, g)
			}
		}
		groups = visible
	}
	return c.JSON(fiber.Map{"success": true, "data": groups})
}

// CreateGroupSchoolAPI creates a new group school tenant
func CreateGroupSchoolAPI(c *fiber.Ctx) error {
	var group models.GroupSchool
	if err := c.BodyParser(&group); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&group); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateGroupSchool(config.GetDB(), &group); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create group school"})
	}
	return c.Status(201).JSON(fiber.Map{
		"message": "Group school created successfully",
		"data":    group,
	})
}

// RenameGroupSchoolAPI renames a group school. Renames are the only edit
// allowed once schools reference the group.
func RenameGroupSchoolAPI(c *fiber.Ctx) error {
	type RenameRequest struct {
		Name string `json:"name" validate:"required"`
	}

	var req RenameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.RenameGroupSchool(config.GetDB(), c.Params("id"), req.Name); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Group school not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to rename group school"})
	}
	return c.JSON(fiber.Map{"message": "Group school renamed successfully"})
}

// GetSchoolsAPI lists the schools of a group
func GetSchoolsAPI(c *fiber.Ctx) error {
	groupID := c.Query("group_school_id")
	if groupID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "group_school_id is required"})
	}
	if err := auth.RequireGroupScope(c, groupID); err != nil {
		return err
	}

	schools, err := database.GetSchoolsByGroup(config.GetDB(), groupID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schools"})
	}
	return c.JSON(fiber.Map{"success": true, "data": schools})
}

// GetSchoolAPI returns one school
func GetSchoolAPI(c *fiber.Ctx) error {
	if err := auth.RequireSchoolScope(c, c.Params("id")); err != nil {
		return err
	}
	school, err := database.GetSchoolByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "School not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"success": true, "data": school})
}

// CreateSchoolAPI creates a school under a group
func CreateSchoolAPI(c *fiber.Ctx) error {
	var school models.School
	if err := c.BodyParser(&school); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&school); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	school.IsActive = true
	if err := auth.RequireGroupScope(c, school.GroupSchoolID); err != nil {
		return err
	}

	if err := database.CreateSchool(config.GetDB(), &school); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create school"})
	}
	return c.Status(201).JSON(fiber.Map{
		"message": "School created successfully",
		"data":    school,
	})
}

// GetSessionsAPI lists the academic sessions of a school
func GetSessionsAPI(c *fiber.Ctx) error {
	schoolID := c.Query("school_id")
	if schoolID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "school_id is required"})
	}
	if err := auth.RequireSchoolScope(c, schoolID); err != nil {
		return err
	}

	sessions, err := database.GetSessionsBySchool(config.GetDB(), schoolID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sessions"})
	}
	return c.JSON(fiber.Map{"success": true, "data": sessions})
}

// CreateSessionAPI creates a new academic session. Sessions start inactive;
// activation is a separate, explicit step.
func CreateSessionAPI(c *fiber.Ctx) error {
	var session models.Session
	if err := c.BodyParser(&session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !session.EndDate.Time.After(session.StartDate.Time) {
		return c.Status(400).JSON(fiber.Map{"error": "end_date must be after start_date"})
	}
	if err := auth.RequireSchoolScope(c, session.SchoolID); err != nil {
		return err
	}
	session.IsActive = false

	if err := database.CreateSession(config.GetDB(), &session); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}
	return c.Status(201).JSON(fiber.Map{
		"message": "Session created successfully",
		"data":    session,
	})
}

// ActivateSessionAPI makes a session the school's active one, deactivating
// any sibling session in the same transaction
func ActivateSessionAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	session, err := database.GetSessionByID(db, c.Params("id"))
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, session.SchoolID); err != nil {
		return err
	}

	if err := database.ActivateSession(db, c.Params("id")); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to activate session"})
	}
	return c.JSON(fiber.Map{"message": "Session activated successfully"})
}

// GetTermsAPI lists the terms of a session
func GetTermsAPI(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "session_id is required"})
	}

	db := config.GetDB()
	session, err := database.GetSessionByID(db, sessionID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, session.SchoolID); err != nil {
		return err
	}

	terms, err := database.GetTermsBySession(db, sessionID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch terms"})
	}
	return c.JSON(fiber.Map{"success": true, "data": terms})
}

// CreateTermAPI creates a term inside a session
func CreateTermAPI(c *fiber.Ctx) error {
	var term models.Term
	if err := c.BodyParser(&term); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&term); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	term.IsActive = false

	db := config.GetDB()
	session, err := database.GetSessionByID(db, term.SessionID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, session.SchoolID); err != nil {
		return err
	}

	if err := database.CreateTerm(db, &term); err != nil {
		if err == database.ErrInvalidDates {
			return c.Status(400).JSON(fiber.Map{"error": "end_date must be after start_date"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create term"})
	}
	return c.Status(201).JSON(fiber.Map{
		"message": "Term created successfully",
		"data":    term,
	})
}

// ActivateTermAPI makes a term the active one within its session,
// deactivating siblings in the same transaction
func ActivateTermAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	term, err := database.GetTermByID(db, c.Params("id"))
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Term not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	session, err := database.GetSessionByID(db, term.SessionID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, session.SchoolID); err != nil {
		return err
	}

	if err := database.ActivateTerm(db, c.Params("id")); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Term not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to activate term"})
	}
	return c.JSON(fiber.Map{"message": "Term activated successfully"})
}
