// Package inventory exposes outward stock assignment endpoints.
package inventory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"klevant/internal/application/inventory/usecases"
	"klevant/internal/shared/authorization"
	"klevant/internal/shared/constants"
	"klevant/internal/shared/utils"
)

type CreateAssignmentRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
	ProductID    uint `json:"product_id" binding:"required"`
	Quantity     int  `json:"quantity" binding:"required,min=1"`
}

type ReturnStockRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type Handler struct {
	createAssignment usecases.CreateAssignmentExecutor
	returnStock      usecases.ReturnStockExecutor
	listAssignments  usecases.ListAssignmentsExecutor
}

func NewHandler(
	createAssignment usecases.CreateAssignmentExecutor,
	returnStock usecases.ReturnStockExecutor,
	listAssignments usecases.ListAssignmentsExecutor,
) *Handler {
	return &Handler{
		createAssignment: createAssignment,
		returnStock:      returnStock,
		listAssignments:  listAssignments,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createAssignment.Execute(c.Request.Context(), usecases.CreateAssignmentCommand{
		TechnicianID: req.TechnicianID,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Stock assigned")
}

func (h *Handler) Return(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "assignment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReturnStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.returnStock.Execute(c.Request.Context(), usecases.ReturnStockCommand{
		AssignmentID: id,
		Quantity:     req.Quantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Stock return recorded", result)
}

// List scopes technicians to their own assignments; admins see all.
func (h *Handler) List(c *gin.Context) {
	query := usecases.ListAssignmentsQuery{}
	role := c.GetString(constants.ContextKeyUserRole)
	if role == string(authorization.RoleTechnician) {
		query.TechnicianID = utils.ActorID(c)
	}

	result, err := h.listAssignments.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
