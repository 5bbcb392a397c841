// Package order exposes the storefront cart and order endpoints.
package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apporder "klevant/internal/application/order"
	"klevant/internal/shared/authorization"
	"klevant/internal/shared/constants"
	"klevant/internal/shared/utils"
)

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type Handler struct {
	service *apporder.Service
}

func NewHandler(service *apporder.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetCart(c *gin.Context) {
	result, err := h.service.GetCart(c.Request.Context(), utils.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.service.AddToCart(c.Request.Context(), utils.ActorID(c), req.ProductID, req.Quantity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Added to cart", result)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	productID, err := utils.ParseIDParam(c, "product_id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemoveFromCart(c.Request.Context(), utils.ActorID(c), productID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	result, err := h.service.PlaceOrder(c.Request.Context(), utils.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Order placed")
}

// ListOrders returns the caller's own orders, or every order for admins.
func (h *Handler) ListOrders(c *gin.Context) {
	customerID := utils.ActorID(c)
	if c.GetString(constants.ContextKeyUserRole) == string(authorization.RoleAdmin) {
		customerID = 0
	}

	result, err := h.service.ListOrders(c.Request.Context(), customerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) CancelOrder(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	customerID := utils.ActorID(c)
	if c.GetString(constants.ContextKeyUserRole) == string(authorization.RoleAdmin) {
		customerID = 0
	}

	result, err := h.service.CancelOrder(c.Request.Context(), id, customerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Order cancelled", result)
}
