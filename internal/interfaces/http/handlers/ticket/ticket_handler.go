// Package ticket exposes the workflow engine over HTTP.
package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"klevant/internal/application/ticket/usecases"
	"klevant/internal/shared/utils"
)

type Handler struct {
	submitTicket     usecases.SubmitTicketExecutor
	acceptTicket     usecases.AcceptTicketExecutor
	rejectTicket     usecases.RejectTicketExecutor
	assignTechnician usecases.AssignTechnicianExecutor
	markResolved     usecases.MarkResolvedExecutor
	markCompleted    usecases.MarkCompletedExecutor
	addProduct       usecases.AddAdditionalProductExecutor
	updateTicket     usecases.UpdateTicketExecutor
	getTicket        usecases.GetTicketExecutor
	listTickets      usecases.ListTicketsExecutor
}

func NewHandler(
	submitTicket usecases.SubmitTicketExecutor,
	acceptTicket usecases.AcceptTicketExecutor,
	rejectTicket usecases.RejectTicketExecutor,
	assignTechnician usecases.AssignTechnicianExecutor,
	markResolved usecases.MarkResolvedExecutor,
	markCompleted usecases.MarkCompletedExecutor,
	addProduct usecases.AddAdditionalProductExecutor,
	updateTicket usecases.UpdateTicketExecutor,
	getTicket usecases.GetTicketExecutor,
	listTickets usecases.ListTicketsExecutor,
) *Handler {
	return &Handler{
		submitTicket:     submitTicket,
		acceptTicket:     acceptTicket,
		rejectTicket:     rejectTicket,
		assignTechnician: assignTechnician,
		markResolved:     markResolved,
		markCompleted:    markCompleted,
		addProduct:       addProduct,
		updateTicket:     updateTicket,
		getTicket:        getTicket,
		listTickets:      listTickets,
	}
}

// Submit handles the public customer-facing ticket creation.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.submitTicket.Execute(c.Request.Context(), usecases.SubmitTicketCommand{
		CustomerName:   req.CustomerName,
		CustomerMobile: req.CustomerMobile,
		CustomerEmail:  req.CustomerEmail,
		Address:        req.Address,
		ServiceType:    req.ServiceType,
		Description:    req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Ticket submitted successfully")
}

func (h *Handler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListTicketsQuery{
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if raw := c.Query("technician_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
			technicianID := uint(id)
			query.TechnicianID = &technicianID
		}
	}

	result, err := h.listTickets.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicket.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) Accept(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.acceptTicket.Execute(c.Request.Context(), usecases.AcceptTicketCommand{
		TicketID: id,
		ActorID:  utils.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Ticket accepted", result)
}

func (h *Handler) Reject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.rejectTicket.Execute(c.Request.Context(), usecases.RejectTicketCommand{
		TicketID: id,
		ActorID:  utils.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Ticket rejected", result)
}

func (h *Handler) Assign(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.assignTechnician.Execute(c.Request.Context(), usecases.AssignTechnicianCommand{
		TicketID:     id,
		TechnicianID: req.TechnicianID,
		ActorID:      utils.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Technician assigned", result)
}

func (h *Handler) Resolve(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markResolved.Execute(c.Request.Context(), usecases.MarkResolvedCommand{
		TicketID: id,
		ActorID:  utils.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Ticket resolved", result)
}

func (h *Handler) Complete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markCompleted.Execute(c.Request.Context(), usecases.MarkCompletedCommand{
		TicketID: id,
		ActorID:  utils.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Ticket completed", result)
}

func (h *Handler) AddProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addProduct.Execute(c.Request.Context(), usecases.AddAdditionalProductCommand{
		TicketID:    id,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Product added to ticket")
}

func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID:      id,
		Notes:         req.Notes,
		DateAttending: req.DateAttending,
	}
	if req.Payment != nil {
		payment, err := parsePrice(*req.Payment)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.Payment = &payment
	}

	if err := h.updateTicket.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Ticket updated", nil)
}
