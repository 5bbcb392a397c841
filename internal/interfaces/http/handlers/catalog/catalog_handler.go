// Package catalog exposes product and category CRUD endpoints.
package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appcatalog "klevant/internal/application/catalog"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/utils"
)

type ProductRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type Handler struct {
	service *appcatalog.Service
}

func NewHandler(service *appcatalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateProduct(c *gin.Context) {
	input, err := bindProduct(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateProduct(c.Request.Context(), *input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Product created")
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	input, err := bindProduct(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.UpdateProduct(c.Request.Context(), id, *input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Product updated", result)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) ListProducts(c *gin.Context) {
	result, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	result, err := h.service.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Category created")
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *Handler) ListCategories(c *gin.Context) {
	result, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func bindProduct(c *gin.Context) (*appcatalog.ProductInput, error) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.NewValidationError("invalid request body: " + err.Error())
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, errors.NewValidationError("invalid price: " + req.Price)
	}
	return &appcatalog.ProductInput{
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Price:       price,
		CategoryID:  req.CategoryID,
	}, nil
}
