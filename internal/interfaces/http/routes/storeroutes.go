package routes

import (
	"github.com/gin-gonic/gin"

	cataloghandler "klevant/internal/interfaces/http/handlers/catalog"
	orderhandler "klevant/internal/interfaces/http/handlers/order"
	"klevant/internal/shared/authorization"
)

// RegisterStoreRoutes mounts the storefront: public browsing, admin CRUD,
// and the authenticated cart/order flows.
func RegisterStoreRoutes(
	api *gin.RouterGroup,
	catalog *cataloghandler.Handler,
	orders *orderhandler.Handler,
	authMW gin.HandlerFunc,
) {
	api.GET("/products", catalog.ListProducts)
	api.GET("/products/:id", catalog.GetProduct)
	api.GET("/categories", catalog.ListCategories)

	adminCatalog := api.Group("", authMW, authorization.RequireAdmin())
	{
		adminCatalog.POST("/products", catalog.CreateProduct)
		adminCatalog.PUT("/products/:id", catalog.UpdateProduct)
		adminCatalog.DELETE("/products/:id", catalog.DeleteProduct)
		adminCatalog.POST("/categories", catalog.CreateCategory)
		adminCatalog.DELETE("/categories/:id", catalog.DeleteCategory)
	}

	cart := api.Group("/cart", authMW)
	{
		cart.GET("", orders.GetCart)
		cart.POST("/items", orders.AddToCart)
		cart.DELETE("/items/:product_id", orders.RemoveFromCart)
	}

	orderGroup := api.Group("/orders", authMW)
	{
		orderGroup.GET("", orders.ListOrders)
		orderGroup.POST("", orders.PlaceOrder)
		orderGroup.POST("/:id/cancel", orders.CancelOrder)
	}
}
