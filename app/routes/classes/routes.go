package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

func SetupClassRoutes(app *fiber.App) {
	api := app.Group("/api/class-arms", auth.AuthMiddleware)

	viewRoles := []string{
		models.RoleAdmin, models.RoleICTAdmin, models.RoleProprietor,
		models.RolePrincipal, models.RoleBursar, models.RoleHeadteacher, models.RoleAuditor,
	}
	manageRoles := []string{models.RoleAdmin, models.RoleICTAdmin, models.RolePrincipal}

	api.Get("/", auth.RequireAnyRole(viewRoles...), GetClassArmsAPI)
	api.Post("/", auth.RequireAnyRole(manageRoles...), CreateClassArmAPI)
	api.Post("/recount/schools/:schoolId", auth.RequireAnyRole(manageRoles...), RecountSchoolAPI)
	api.Get("/:id", auth.RequireAnyRole(viewRoles...), GetClassArmAPI)
	api.Put("/:id", auth.RequireAnyRole(manageRoles...), UpdateClassArmAPI)
	api.Post("/:id/recount", auth.RequireAnyRole(manageRoles...), RecountClassArmAPI)
}
