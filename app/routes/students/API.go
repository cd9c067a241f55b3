package students

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/config"
	"github.com/charlykso/smart-s-sub003/app/database"
	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

// GetStudentsAPI lists the students of a school, paginated
func GetStudentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	schoolID := c.Query("school_id")
	if schoolID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "school_id is required"})
	}
	if err := auth.RequireSchoolScope(c, schoolID); err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	students, err := database.GetStudentsBySchool(db, schoolID, limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetStudentAPI returns one student record
func GetStudentAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, student.SchoolID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// CreateStudentAPI enrolls a student in a school. Assignment to a class
// arm is optional; unassigned students still owe school-wide fees.
func CreateStudentAPI(c *fiber.Ctx) error {
	type CreateStudentRequest struct {
		SchoolID   string  `json:"school_id" validate:"required,uuid"`
		ClassArmID *string `json:"class_arm_id,omitempty" validate:"omitempty,uuid"`
		RegNo      string  `json:"reg_no" validate:"required"`
		FirstName  string  `json:"first_name" validate:"required"`
		LastName   string  `json:"last_name" validate:"required"`
		Gender     string  `json:"gender" validate:"required,oneof=male female"`
		Type       string  `json:"type" validate:"required,oneof=day boarding"`
	}

	db := config.GetDB()

	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := auth.RequireSchoolScope(c, req.SchoolID); err != nil {
		return err
	}

	if req.ClassArmID != nil {
		arm, err := database.GetClassArmByID(db, *req.ClassArmID)
		if err != nil {
			if err == database.ErrNotFound {
				return c.Status(404).JSON(fiber.Map{"error": "Class arm not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if arm.SchoolID != req.SchoolID {
			return c.Status(400).JSON(fiber.Map{"error": "Class arm belongs to a different school"})
		}
	}

	student := &models.Student{
		SchoolID:   req.SchoolID,
		ClassArmID: req.ClassArmID,
		RegNo:      req.RegNo,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Gender:     models.Gender(req.Gender),
		Type:       models.StudentType(req.Type),
		IsActive:   true,
	}
	if err := database.CreateStudent(db, student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student created successfully",
		"data":    student,
	})
}

// UpdateStudentAPI updates a student record, including moving them between
// class arms or deactivating them. Cached arm counts are not touched here;
// the recount endpoints and nightly job bring them back in line.
func UpdateStudentAPI(c *fiber.Ctx) error {
	type UpdateStudentRequest struct {
		ClassArmID *string `json:"class_arm_id,omitempty" validate:"omitempty,uuid"`
		FirstName  string  `json:"first_name" validate:"required"`
		LastName   string  `json:"last_name" validate:"required"`
		Type       string  `json:"type" validate:"required,oneof=day boarding"`
		IsActive   *bool   `json:"is_active,omitempty"`
	}

	db := config.GetDB()

	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, student.SchoolID); err != nil {
		return err
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.ClassArmID != nil {
		arm, err := database.GetClassArmByID(db, *req.ClassArmID)
		if err != nil {
			if err == database.ErrNotFound {
				return c.Status(404).JSON(fiber.Map{"error": "Class arm not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if arm.SchoolID != student.SchoolID {
			return c.Status(400).JSON(fiber.Map{"error": "Class arm belongs to a different school"})
		}
	}

	student.ClassArmID = req.ClassArmID
	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Type = models.StudentType(req.Type)
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := database.UpdateStudent(db, student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"message": "Student updated successfully",
		"data":    student,
	})
}
