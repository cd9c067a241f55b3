package parents

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/config"
	"github.com/charlykso/smart-s-sub003/app/database"
	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

// GetChildrenAPI lists the students linked to a parent account. Parents can
// only list their own children; staff are checked against each child's school.
func GetChildrenAPI(c *fiber.Ctx) error {
	claims := auth.Claims(c)
	parentID := c.Params("parentId")

	self := claims.UserID == parentID
	if !self && auth.StrongestRole(claims.Roles) == "" {
		return fiber.NewError(fiber.StatusForbidden, "You can only view your own children")
	}

	children, err := database.GetChildren(config.GetDB(), parentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch children"})
	}
	if !self {
		for _, child := range children {
			if err := auth.RequireSchoolScope(c, child.SchoolID); err != nil {
				return err
			}
		}
	}
	return c.JSON(fiber.Map{"success": true, "data": children})
}

// LinkChildAPI links a parent account to a student
func LinkChildAPI(c *fiber.Ctx) error {
	type LinkRequest struct {
		StudentID    string `json:"student_id" validate:"required,uuid"`
		Relationship string `json:"relationship" validate:"omitempty,oneof=father mother guardian other"`
	}

	db := config.GetDB()
	parentID := c.Params("parentId")

	var req LinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := database.GetUserByID(db, parentID); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Parent not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	student, err := database.GetStudentByID(db, req.StudentID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, student.SchoolID); err != nil {
		return err
	}

	link := &models.ParentStudent{
		ParentID:     parentID,
		StudentID:    req.StudentID,
		Relationship: req.Relationship,
	}
	if err := database.LinkParentStudent(db, link); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to link student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student linked successfully",
		"data":    link,
	})
}

// UnlinkChildAPI removes the link between a parent and a student
func UnlinkChildAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	studentID := c.Params("studentId")

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, student.SchoolID); err != nil {
		return err
	}

	err = database.UnlinkParentStudent(db, c.Params("parentId"), studentID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Link not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to unlink student"})
	}
	return c.JSON(fiber.Map{"message": "Student unlinked successfully"})
}
