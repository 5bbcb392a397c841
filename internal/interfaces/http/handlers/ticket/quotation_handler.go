package ticket

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"klevant/internal/application/ticket/usecases"
	"klevant/internal/shared/utils"
)

type QuotationHandler struct {
	createQuotation usecases.CreateQuotationExecutor
	acceptQuotation usecases.AcceptQuotationExecutor
	rejectQuotation usecases.RejectQuotationExecutor
	renderPDF       usecases.RenderQuotationPDFExecutor
}

func NewQuotationHandler(
	createQuotation usecases.CreateQuotationExecutor,
	acceptQuotation usecases.AcceptQuotationExecutor,
	rejectQuotation usecases.RejectQuotationExecutor,
	renderPDF usecases.RenderQuotationPDFExecutor,
) *QuotationHandler {
	return &QuotationHandler{
		createQuotation: createQuotation,
		acceptQuotation: acceptQuotation,
		rejectQuotation: rejectQuotation,
		renderPDF:       renderPDF,
	}
}

func (h *QuotationHandler) Create(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	items, err := req.toItems()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createQuotation.Execute(c.Request.Context(), usecases.CreateQuotationCommand{
		TicketID: id,
		Notes:    req.Notes,
		Items:    items,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Quotation created")
}

func (h *QuotationHandler) Accept(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.acceptQuotation.Execute(c.Request.Context(), usecases.AcceptQuotationCommand{TicketID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Quotation accepted", nil)
}

func (h *QuotationHandler) Reject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.rejectQuotation.Execute(c.Request.Context(), usecases.RejectQuotationCommand{TicketID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Quotation rejected", nil)
}

// DownloadPDF streams the rendered quotation document.
func (h *QuotationHandler) DownloadPDF(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.renderPDF.Execute(c.Request.Context(), usecases.RenderQuotationPDFCommand{TicketID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, "application/pdf", result.Content)
}
