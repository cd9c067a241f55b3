package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/config"
	"github.com/charlykso/smart-s-sub003/app/database"
	"github.com/charlykso/smart-s-sub003/app/ledger"
	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

// GetFeesAPI returns the fee definitions of a school with optional term filtering
func GetFeesAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	claims := auth.Claims(c)

	schoolID := c.Query("school_id", claims.SchoolID)
	if schoolID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "school_id is required"})
	}
	if err := auth.RequireSchoolScope(c, schoolID); err != nil {
		return err
	}

	fees, err := database.GetFeesBySchool(db, schoolID, c.Query("term_id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fees,
	})
}

// CreateFeeAPI creates a new fee definition. New fees start unapproved and
// stay out of every outstanding calculation until approved.
func CreateFeeAPI(c *fiber.Ctx) error {
	type CreateFeeRequest struct {
		SchoolID    string  `json:"school_id" validate:"required,uuid"`
		TermID      string  `json:"term_id" validate:"required,uuid"`
		Name        string  `json:"name" validate:"required"`
		Type        string  `json:"type" validate:"required"`
		Amount      int64   `json:"amount" validate:"gte=0"`
		AmountMajor string  `json:"amount_major,omitempty"`
		ClassArmID  *string `json:"class_arm_id,omitempty" validate:"omitempty,uuid"`
		StudentType *string `json:"student_type,omitempty" validate:"omitempty,oneof=day boarding"`
	}

	var req CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	amount, err := feeAmount(req.Amount, req.AmountMajor)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "amount_major must be a decimal amount"})
	}
	if err := auth.RequireSchoolScope(c, req.SchoolID); err != nil {
		return err
	}

	fee := &models.Fee{
		SchoolID:   req.SchoolID,
		TermID:     req.TermID,
		Name:       req.Name,
		Type:       req.Type,
		Amount:     amount,
		ClassArmID: req.ClassArmID,
	}
	if req.StudentType != nil {
		st := models.StudentType(*req.StudentType)
		fee.StudentType = &st
	}

	if err := database.CreateFee(config.GetDB(), fee); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Fee created successfully",
		"fee":     fee,
	})
}

// ApproveFeeAPI marks a fee as approved, making it eligible for payment
// and outstanding calculations
func ApproveFeeAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	feeID := c.Params("id")

	fee, err := database.GetFeeByID(db, feeID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, fee.SchoolID); err != nil {
		return err
	}

	approverID := c.Locals("user_id").(string)
	if err := database.ApproveFee(db, feeID, approverID); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to approve fee"})
	}

	return c.JSON(fiber.Map{"message": "Fee approved successfully"})
}

// UpdateFeeAPI updates an unapproved fee definition
func UpdateFeeAPI(c *fiber.Ctx) error {
	type UpdateFeeRequest struct {
		Name        string  `json:"name" validate:"required"`
		Type        string  `json:"type" validate:"required"`
		Amount      int64   `json:"amount" validate:"gte=0"`
		ClassArmID  *string `json:"class_arm_id,omitempty" validate:"omitempty,uuid"`
		StudentType *string `json:"student_type,omitempty" validate:"omitempty,oneof=day boarding"`
	}

	db := config.GetDB()
	feeID := c.Params("id")

	fee, err := database.GetFeeByID(db, feeID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, fee.SchoolID); err != nil {
		return err
	}
	if fee.IsApproved {
		return c.Status(409).JSON(fiber.Map{"error": "Approved fees cannot be edited"})
	}

	var req UpdateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	fee.Name = req.Name
	fee.Type = req.Type
	fee.Amount = req.Amount
	fee.ClassArmID = req.ClassArmID
	fee.StudentType = nil
	if req.StudentType != nil {
		st := models.StudentType(*req.StudentType)
		fee.StudentType = &st
	}

	if err := database.UpdateFee(db, fee); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee"})
	}

	return c.JSON(fiber.Map{
		"message": "Fee updated successfully",
		"fee":     fee,
	})
}

// DeleteFeeAPI soft-deletes an unapproved fee definition
func DeleteFeeAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	feeID := c.Params("id")

	fee, err := database.GetFeeByID(db, feeID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, fee.SchoolID); err != nil {
		return err
	}

	if err := database.DeleteFee(db, feeID); err != nil {
		if err == database.ErrNotFound {
			return c.Status(409).JSON(fiber.Map{"error": "Approved fees cannot be deleted"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete fee"})
	}

	return c.JSON(fiber.Map{"message": "Fee deleted successfully"})
}

// ResolveStudentFeesAPI returns the approved fees that apply to a student
// for a term, with their reduced ledgers
func ResolveStudentFeesAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	studentID := c.Params("studentId")
	termID := c.Query("term_id")

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

	if termID == "" {
		term, err := database.GetActiveTerm(db, student.SchoolID)
		if err != nil {
			if err == database.ErrNotFound {
				return c.Status(404).JSON(fiber.Map{"error": "No active term for school"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		termID = term.ID
	}

	fees, err := database.GetApprovedFeesForTerm(db, student.SchoolID, termID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}
	payments, err := database.GetPaymentsByStudent(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	resolved := ledger.ResolveFees(student, termID, fees)
	ledgers := ledger.Reduce(studentID, resolved, payments)

	return c.JSON(fiber.Map{
		"success": true,
		"fees":    resolved,
		"ledgers": ledgers,
		"term_id": termID,
	})
}
