package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

func SetupPaymentRoutes(app *fiber.App) {
	api := app.Group("/api/payments", auth.AuthMiddleware)

	recordRoles := []string{models.RoleAdmin, models.RoleICTAdmin, models.RoleBursar}
	viewRoles := []string{
		models.RoleAdmin, models.RoleICTAdmin, models.RoleProprietor,
		models.RolePrincipal, models.RoleBursar, models.RoleHeadteacher, models.RoleAuditor,
	}

	api.Post("/", auth.RequireAnyRole(recordRoles...), RecordPaymentAPI)
	api.Put("/:trxRef/status", auth.RequireAnyRole(recordRoles...), UpdatePaymentStatusAPI)

	// Static prefixes are registered before /:trxRef so they win the match
	api.Get("/students/:studentId", auth.RequireAnyRole(viewRoles...), GetStudentPaymentsAPI)
	api.Get("/schools/:schoolId", auth.RequireAnyRole(viewRoles...), GetSchoolPaymentsAPI)
	api.Get("/:trxRef", auth.RequireAnyRole(viewRoles...), GetPaymentAPI)
}
