package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/admin", auth.RequireRole(models.RoleAdmin), AdminDashboardAPI)
	api.Get("/ict", auth.RequireRole(models.RoleICTAdmin), ICTDashboardAPI)
	api.Get("/proprietor", auth.RequireRole(models.RoleProprietor), ProprietorDashboardAPI)
	api.Get("/principal", auth.RequireRole(models.RolePrincipal), PrincipalDashboardAPI)
	api.Get("/headteacher", auth.RequireRole(models.RoleHeadteacher), HeadteacherDashboardAPI)
	api.Get("/bursar", auth.RequireRole(models.RoleBursar), BursarDashboardAPI)
	api.Get("/auditor", auth.RequireRole(models.RoleAuditor), AuditorDashboardAPI)
	api.Get("/student", auth.RequireRole(models.RoleStudent), StudentDashboardAPI)
	api.Get("/parent/:studentId", auth.RequireRole(models.RoleParent), ParentChildDashboardAPI)

	api.Get("/class-arms/:id",
		auth.RequireAnyRole(models.RoleAdmin, models.RolePrincipal, models.RoleHeadteacher, models.RoleBursar, models.RoleAuditor),
		ClassArmDashboardAPI)
}
