package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/config"
	"github.com/charlykso/smart-s-sub003/app/database"
	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
	"github.com/charlykso/smart-s-sub003/app/services"
)

// GetClassArmsAPI lists the class arms of a school with cached counts
func GetClassArmsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	schoolID := c.Query("school_id")
	if schoolID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "school_id is required"})
	}
	if err := auth.RequireSchoolScope(c, schoolID); err != nil {
		return err
	}

	arms, err := database.GetClassArmsBySchool(db, schoolID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class arms"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    arms,
	})
}

// GetClassArmAPI returns one class arm with its active roster
func GetClassArmAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	armID := c.Params("id")

	arm, err := database.GetClassArmByID(db, armID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Class arm not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, arm.SchoolID); err != nil {
		return err
	}

	students, err := database.GetActiveStudentsByClassArm(db, armID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"data":     arm,
		"students": students,
	})
}

// CreateClassArmAPI creates a class arm in a school
func CreateClassArmAPI(c *fiber.Ctx) error {
	type CreateArmRequest struct {
		SchoolID string `json:"school_id" validate:"required,uuid"`
		Name     string `json:"name" validate:"required"`
		Capacity int    `json:"capacity" validate:"gte=0"`
	}

	var req CreateArmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := auth.RequireSchoolScope(c, req.SchoolID); err != nil {
		return err
	}

	arm := &models.ClassArm{
		SchoolID: req.SchoolID,
		Name:     req.Name,
		Capacity: req.Capacity,
	}
	if err := database.CreateClassArm(config.GetDB(), arm); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class arm"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Class arm created successfully",
		"data":    arm,
	})
}

// UpdateClassArmAPI updates a class arm's name, class teacher or capacity
func UpdateClassArmAPI(c *fiber.Ctx) error {
	type UpdateArmRequest struct {
		Name           string  `json:"name" validate:"required"`
		ClassTeacherID *string `json:"class_teacher_id,omitempty" validate:"omitempty,uuid"`
		Capacity       int     `json:"capacity" validate:"gte=0"`
	}

	db := config.GetDB()
	armID := c.Params("id")

	arm, err := database.GetClassArmByID(db, armID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Class arm not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, arm.SchoolID); err != nil {
		return err
	}

	var req UpdateArmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	arm.Name = req.Name
	arm.ClassTeacherID = req.ClassTeacherID
	arm.Capacity = req.Capacity
	if err := database.UpdateClassArm(db, arm); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class arm"})
	}

	return c.JSON(fiber.Map{
		"message": "Class arm updated successfully",
		"data":    arm,
	})
}

// RecountClassArmAPI recomputes one arm's cached student count from the roster
func RecountClassArmAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	armID := c.Params("id")

	arm, err := database.GetClassArmByID(db, armID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Class arm not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, arm.SchoolID); err != nil {
		return err
	}

	svc := services.NewCounterService(database.NewArmCountStore(db))
	count, err := svc.RecomputeCount(armID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Class arm not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to recompute count"})
	}

	return c.JSON(fiber.Map{
		"message":       "Student count recomputed",
		"class_arm_id":  armID,
		"student_count": count,
	})
}

// RecountSchoolAPI recomputes cached counts for every arm in a school.
// Failures on individual arms do not stop the run; the report lists them.
func RecountSchoolAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	schoolID := c.Params("schoolId")

	if err := auth.RequireSchoolScope(c, schoolID); err != nil {
		return err
	}
	if _, err := database.GetSchoolByID(db, schoolID); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "School not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	svc := services.NewCounterService(database.NewArmCountStore(db))
	report, err := svc.RecomputeAll(schoolID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to list class arms"})
	}

	return c.JSON(fiber.Map{
		"message": "Recount complete",
		"report":  report,
	})
}
