package routes

import (
	"github.com/gin-gonic/gin"

	inventoryhandler "klevant/internal/interfaces/http/handlers/inventory"
	summaryhandler "klevant/internal/interfaces/http/handlers/summary"
	userhandler "klevant/internal/interfaces/http/handlers/user"
	"klevant/internal/shared/authorization"
)

// RegisterAdminRoutes mounts technician administration, stock assignment
// and the dashboard summary.
func RegisterAdminRoutes(
	api *gin.RouterGroup,
	users *userhandler.Handler,
	inventory *inventoryhandler.Handler,
	summary *summaryhandler.Handler,
	authMW gin.HandlerFunc,
) {
	admin := api.Group("/admin", authMW, authorization.RequireAdmin())
	{
		admin.GET("/summary", summary.Get)
		admin.POST("/technicians", users.CreateTechnician)
		admin.GET("/technicians", users.ListTechnicians)
		admin.POST("/assignments", inventory.Create)
	}

	assignments := api.Group("/assignments", authMW,
		authorization.RequireRole(authorization.RoleAdmin, authorization.RoleTechnician))
	{
		assignments.GET("", inventory.List)
		assignments.POST("/:id/return", inventory.Return)
	}
}
