package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/config"
	"github.com/charlykso/smart-s-sub003/app/database"
	"github.com/charlykso/smart-s-sub003/app/models"
)

// validRoles guards role assignment against typos; roles are created
// lazily on first assignment.
var validRoles = map[string]bool{
	models.RoleAdmin:       true,
	models.RoleICTAdmin:    true,
	models.RoleProprietor:  true,
	models.RolePrincipal:   true,
	models.RoleHeadteacher: true,
	models.RoleBursar:      true,
	models.RoleAuditor:     true,
	models.RoleStudent:     true,
	models.RoleParent:      true,
}

// CreateUserAPI creates an account with its scope associations and
// initial roles
func CreateUserAPI(c *fiber.Ctx) error {
	type CreateUserRequest struct {
		Email         string   `json:"email" validate:"required,email"`
		Password      string   `json:"password" validate:"required,min=8"`
		FirstName     string   `json:"first_name" validate:"required"`
		LastName      string   `json:"last_name" validate:"required"`
		Phone         string   `json:"phone"`
		SchoolID      *string  `json:"school_id,omitempty" validate:"omitempty,uuid"`
		GroupSchoolID *string  `json:"group_school_id,omitempty" validate:"omitempty,uuid"`
		StudentID     *string  `json:"student_id,omitempty" validate:"omitempty,uuid"`
		Roles         []string `json:"roles" validate:"required,min=1"`
	}

	db := config.GetDB()

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	for _, role := range req.Roles {
		if !validRoles[role] {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown role: " + role})
		}
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Email:         req.Email,
		Password:      hashedPassword,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		SchoolID:      req.SchoolID,
		GroupSchoolID: req.GroupSchoolID,
		StudentID:     req.StudentID,
		IsActive:      true,
	}
	if err := database.CreateUser(db, user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}
	for _, role := range req.Roles {
		if err := database.AssignUserRole(db, user.ID, role); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to assign role " + role})
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

// AssignRoleAPI adds a role to an existing user
func AssignRoleAPI(c *fiber.Ctx) error {
	type AssignRoleRequest struct {
		Role string `json:"role" validate:"required"`
	}

	db := config.GetDB()
	userID := c.Params("id")

	var req AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !validRoles[req.Role] {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role: " + req.Role})
	}

	if _, err := database.GetUserByID(db, userID); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := database.AssignUserRole(db, userID, req.Role); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to assign role"})
	}

	return c.JSON(fiber.Map{"message": "Role assigned successfully"})
}

// GetUserAPI returns one user with their roles
func GetUserAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	user, err := database.GetUserByID(db, c.Params("id"))
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	roles, err := database.GetUserRoles(db, user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roles"})
	}
	user.Roles = roles

	return c.JSON(fiber.Map{"success": true, "user": user})
}

// SetupUserRoutes wires the user administration endpoints
func SetupUserRoutes(app *fiber.App) {
	api := app.Group("/api/users", AuthMiddleware)

	adminRoles := []string{models.RoleAdmin, models.RoleICTAdmin}

	api.Post("/", RequireAnyRole(adminRoles...), CreateUserAPI)
	api.Get("/:id", RequireAnyRole(adminRoles...), GetUserAPI)
	api.Post("/:id/roles", RequireAnyRole(adminRoles...), AssignRoleAPI)
}
