package payments

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/config"
	"github.com/charlykso/smart-s-sub003/app/database"
	"github.com/charlykso/smart-s-sub003/app/ledger"
	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

// RecordPaymentAPI records a payment against a fee. Submitting the same
// trx_ref twice returns the first record instead of creating a duplicate.
func RecordPaymentAPI(c *fiber.Ctx) error {
	type RecordPaymentRequest struct {
		FeeID     string `json:"fee_id" validate:"required,uuid"`
		StudentID string `json:"student_id" validate:"required,uuid"`
		Amount    int64  `json:"amount" validate:"required,gt=0"`
		Mode      string `json:"mode" validate:"required"`
		Status    string `json:"status" validate:"omitempty,oneof=pending success failed"`
		TrxRef    string `json:"trx_ref"`
		TransDate string `json:"trans_date" validate:"omitempty"`
	}

	db := config.GetDB()

	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	fee, err := database.GetFeeByID(db, req.FeeID)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
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

	if !fee.IsApproved {
		return c.Status(400).JSON(fiber.Map{"error": "Fee is not approved for payment"})
	}
	if fee.SchoolID != student.SchoolID {
		return c.Status(400).JSON(fiber.Map{"error": "Fee and student belong to different schools"})
	}

	transDate := time.Now()
	if req.TransDate != "" {
		transDate, err = time.Parse(time.RFC3339, req.TransDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "trans_date must be RFC3339"})
		}
	}

	status := models.PaymentPending
	if req.Status != "" {
		status = models.PaymentStatus(req.Status)
	}
	trxRef := req.TrxRef
	if trxRef == "" {
		trxRef = auth.NewTrxRef()
	}

	payment := &models.Payment{
		FeeID:     req.FeeID,
		StudentID: req.StudentID,
		SchoolID:  student.SchoolID,
		Amount:    req.Amount,
		Mode:      models.PaymentMode(req.Mode),
		Status:    status,
		TransDate: transDate,
		TrxRef:    trxRef,
	}

	created, err := database.CreatePayment(db, payment)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}
	if !created {
		return c.Status(200).JSON(fiber.Map{
			"message": "Payment already recorded",
			"payment": payment,
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Payment recorded successfully",
		"payment": payment,
	})
}

// UpdatePaymentStatusAPI settles or fails a pending payment, keyed by
// trx_ref the way gateway callbacks report it
func UpdatePaymentStatusAPI(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status string `json:"status" validate:"required,oneof=success failed"`
	}

	db := config.GetDB()
	trxRef := c.Params("trxRef")

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	payment, err := database.GetPaymentByTrxRef(db, trxRef)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "No pending payment with that reference"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, payment.SchoolID); err != nil {
		return err
	}

	if err := database.UpdatePaymentStatus(db, trxRef, models.PaymentStatus(req.Status)); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "No pending payment with that reference"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update payment"})
	}

	return c.JSON(fiber.Map{"message": "Payment status updated"})
}

// GetPaymentAPI looks up a single payment by transaction reference
func GetPaymentAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	payment, err := database.GetPaymentByTrxRef(db, c.Params("trxRef"))
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := auth.RequireSchoolScope(c, payment.SchoolID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"payment":        payment,
		"amount_display": ledger.FormatMinor(payment.Amount),
	})
}

// GetStudentPaymentsAPI lists a student's payments with their per-fee ledger
func GetStudentPaymentsAPI(c *fiber.Ctx) error {
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

	payments, err := database.GetPaymentsByStudent(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	var totalPaid int64
	for _, p := range payments {
		if p.Status == models.PaymentSuccess {
			totalPaid += p.Amount
		}
	}
	return c.JSON(fiber.Map{
		"success":            true,
		"payments":           payments,
		"total_paid":         totalPaid,
		"total_paid_display": ledger.FormatMinor(totalPaid),
	})
}

// GetSchoolPaymentsAPI lists a school's payments with a method breakdown
func GetSchoolPaymentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	schoolID := c.Params("schoolId")

	if err := auth.RequireSchoolScope(c, schoolID); err != nil {
		return err
	}

	var (
		payments []models.Payment
		err      error
	)
	if termID := c.Query("term_id"); termID != "" {
		payments, err = database.GetPaymentsForTerm(db, schoolID, termID)
	} else {
		payments, err = database.GetPaymentsBySchool(db, schoolID)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	var totalCollected int64
	for _, p := range payments {
		if p.Status == models.PaymentSuccess {
			totalCollected += p.Amount
		}
	}
	return c.JSON(fiber.Map{
		"success":                 true,
		"payments":                payments,
		"method_breakdown":        ledger.MethodBreakdown(payments),
		"total_collected":         totalCollected,
		"total_collected_display": ledger.FormatMinor(totalCollected),
	})
}
