// Package routes wires handlers to the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	tickethandler "klevant/internal/interfaces/http/handlers/ticket"
	"klevant/internal/shared/authorization"
)

// RegisterTicketRoutes mounts the workflow endpoints. Submission is public
// (rate limited); everything else requires authentication, with the
// accept/reject/assign/quotation writes restricted to admins.
func RegisterTicketRoutes(
	api *gin.RouterGroup,
	handler *tickethandler.Handler,
	quotations *tickethandler.QuotationHandler,
	authMW gin.HandlerFunc,
	rateLimitMW gin.HandlerFunc,
) {
	api.POST("/tickets", rateLimitMW, handler.Submit)

	tickets := api.Group("/tickets", authMW)
	{
		staff := tickets.Group("", authorization.RequireRole(authorization.RoleAdmin, authorization.RoleTechnician))
		{
			staff.GET("", handler.List)
			staff.GET("/:id", handler.Get)
			staff.PATCH("/:id", handler.Update)
			staff.POST("/:id/resolve", handler.Resolve)
			staff.POST("/:id/complete", handler.Complete)
			staff.POST("/:id/products", handler.AddProduct)
		}

		admin := tickets.Group("", authorization.RequireAdmin())
		{
			admin.POST("/:id/accept", handler.Accept)
			admin.POST("/:id/reject", handler.Reject)
			admin.POST("/:id/assign", handler.Assign)
			admin.POST("/:id/quotation", quotations.Create)
		}

		tickets.GET("/:id/quotation/pdf", quotations.DownloadPDF)
		tickets.POST("/:id/quotation/accept", quotations.Accept)
		tickets.POST("/:id/quotation/reject", quotations.Reject)
	}
}
