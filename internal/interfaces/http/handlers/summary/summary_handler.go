// Package summary exposes the admin dashboard summary endpoint.
package summary

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"klevant/internal/application/summary/usecases"
	"klevant/internal/shared/utils"
)

type Handler struct {
	getSummary usecases.GetSummaryExecutor
}

func NewHandler(getSummary usecases.GetSummaryExecutor) *Handler {
	return &Handler{getSummary: getSummary}
}

func (h *Handler) Get(c *gin.Context) {
	result, err := h.getSummary.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
