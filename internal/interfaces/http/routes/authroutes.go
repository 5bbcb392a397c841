package routes

import (
	"github.com/gin-gonic/gin"

	authhandler "klevant/internal/interfaces/http/handlers/auth"
)

func RegisterAuthRoutes(api *gin.RouterGroup, handler *authhandler.Handler, authMW gin.HandlerFunc) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", handler.Login)
		auth.POST("/refresh", handler.Refresh)
		auth.GET("/profile", authMW, handler.Profile)
		auth.PUT("/profile", authMW, handler.UpdateProfile)
	}
}
