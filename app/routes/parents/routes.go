package parents

import (
	"github.com/gofiber/fiber/v2"

	"github.com/charlykso/smart-s-sub003/app/models"
	"github.com/charlykso/smart-s-sub003/app/routes/auth"
)

func SetupParentRoutes(app *fiber.App) {
	api := app.Group("/api/parents", auth.AuthMiddleware)

	manageRoles := []string{models.RoleAdmin, models.RoleICTAdmin, models.RolePrincipal}

	api.Get("/:parentId/children", auth.RequireAnyRole(append(manageRoles, models.RoleParent)...), GetChildrenAPI)
	api.Post("/:parentId/children", auth.RequireAnyRole(manageRoles...), LinkChildAPI)
	api.Delete("/:parentId/children/:studentId", auth.RequireAnyRole(manageRoles...), UnlinkChildAPI)
}
