package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandler "klevant/internal/interfaces/http/handlers/notification"
)

func RegisterNotificationRoutes(api *gin.RouterGroup, handler *notificationhandler.Handler, authMW gin.HandlerFunc) {
	notifications := api.Group("/notifications", authMW)
	{
		notifications.GET("", handler.List)
		notifications.POST("/:id/read", handler.MarkRead)
	}
}
