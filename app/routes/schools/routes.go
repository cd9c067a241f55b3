package schools

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

func SetupSchoolRoutes(app *fiber.App) {
	viewRoles := []string{
		models.RoleAdmin, models.RoleICTAdmin, models.RoleProprietor,
		models.RolePrincipal, models.RoleBursar, models.RoleHeadteacher, models.RoleAuditor,
	}
	tenantRoles := []string{models.RoleAdmin, models.RoleICTAdmin}
	calendarRoles := []string{models.RoleAdmin, models.RoleICTAdmin, models.RolePrincipal}

	// Group schools are super-admin territory
	groups := app.Group("/api/group-schools", auth.AuthMiddleware)
	groups.Get("/", auth.RequireAnyRole(viewRoles...), GetGroupSchoolsAPI)
	groups.Post("/", auth.RequireRole(models.RoleAdmin), CreateGroupSchoolAPI)
	groups.Put("/:id", auth.RequireRole(models.RoleAdmin), RenameGroupSchoolAPI)

	schools := app.Group("/api/schools", auth.AuthMiddleware)
	schools.Get("/", auth.RequireAnyRole(viewRoles...), GetSchoolsAPI)
	schools.Post("/", auth.RequireAnyRole(tenantRoles...), CreateSchoolAPI)
	schools.Get("/:id", auth.RequireAnyRole(viewRoles...), GetSchoolAPI)

	sessions := app.Group("/api/sessions", auth.AuthMiddleware)
	sessions.Get("/", auth.RequireAnyRole(viewRoles...), GetSessionsAPI)
	sessions.Post("/", auth.RequireAnyRole(calendarRoles...), CreateSessionAPI)
	sessions.Post("/:id/activate", auth.RequireAnyRole(calendarRoles...), ActivateSessionAPI)

	terms := app.Group("/api/terms", auth.AuthMiddleware)
	terms.Get("/", auth.RequireAnyRole(viewRoles...), GetTermsAPI)
	terms.Post("/", auth.RequireAnyRole(calendarRoles...), CreateTermAPI)
	terms.Post("/:id/activate", auth.RequireAnyRole(calendarRoles...), ActivateTermAPI)
}
