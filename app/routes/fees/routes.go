package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

func SetupFeeRoutes(app *fiber.App) {
	api := app.Group("/api/fees", auth.AuthMiddleware)

	viewRoles := []string{
		models.RoleAdmin, models.RoleICTAdmin, models.RoleProprietor,
		models.RolePrincipal, models.RoleBursar, models.RoleHeadteacher, models.RoleAuditor,
	}
	manageRoles := []string{models.RoleAdmin, models.RoleICTAdmin, models.RoleBursar}

	api.Get("/", auth.RequireAnyRole(viewRoles...), GetFeesAPI)
	api.Post("/", auth.RequireAnyRole(manageRoles...), CreateFeeAPI)
	api.Put("/:id", auth.RequireAnyRole(manageRoles...), UpdateFeeAPI)
	api.Delete("/:id", auth.RequireAnyRole(manageRoles...), DeleteFeeAPI)

	// Approval is restricted to school leadership
	api.Post("/:id/approve", auth.RequireAnyRole(models.RoleAdmin, models.RolePrincipal), ApproveFeeAPI)

	api.Get("/students/:studentId", auth.RequireAnyRole(viewRoles...), ResolveStudentFeesAPI)
}
