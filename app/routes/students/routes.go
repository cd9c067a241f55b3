package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

func SetupStudentRoutes(app *fiber.App) {
	api := app.Group("/api/students", auth.AuthMiddleware)

	viewRoles := []string{
		models.RoleAdmin, models.RoleICTAdmin, models.RoleProprietor,
		models.RolePrincipal, models.RoleBursar, models.RoleHeadteacher, models.RoleAuditor,
	}
	manageRoles := []string{models.RoleAdmin, models.RoleICTAdmin, models.RolePrincipal, models.RoleHeadteacher}

	api.Get("/", auth.RequireAnyRole(viewRoles...), GetStudentsAPI)
	api.Post("/", auth.RequireAnyRole(manageRoles...), CreateStudentAPI)
	api.Get("/:id", auth.RequireAnyRole(viewRoles...), GetStudentAPI)
	api.Put("/:id", auth.RequireAnyRole(manageRoles...), UpdateStudentAPI)
}
