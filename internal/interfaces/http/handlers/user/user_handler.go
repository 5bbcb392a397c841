// Package user exposes technician administration endpoints.
package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"klevant/internal/application/user/usecases"
	"klevant/internal/shared/utils"
)

type CreateTechnicianRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Mobile  string `json:"mobile" validate:"omitempty,max=15"`
	Address string `json:"address"`
}

type Handler struct {
	createTechnician usecases.CreateTechnicianExecutor
	listTechnicians  usecases.ListTechniciansExecutor
}

func NewHandler(
	createTechnician usecases.CreateTechnicianExecutor,
	listTechnicians usecases.ListTechniciansExecutor,
) *Handler {
	return &Handler{
		createTechnician: createTechnician,
		listTechnicians:  listTechnicians,
	}
}

func (h *Handler) CreateTechnician(c *gin.Context) {
	var req CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTechnician.Execute(c.Request.Context(), usecases.CreateTechnicianCommand{
		Name:    req.Name,
		Email:   req.Email,
		Mobile:  req.Mobile,
		Address: req.Address,
		ActorID: utils.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Technician created, credentials emailed")
}

func (h *Handler) ListTechnicians(c *gin.Context) {
	result, err := h.listTechnicians.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
