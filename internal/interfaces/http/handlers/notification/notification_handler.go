// Package notification exposes the recipient-scoped notification endpoints.
package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"klevant/internal/application/notification/usecases"
	"klevant/internal/shared/utils"
)

type Handler struct {
	list     usecases.ListNotificationsExecutor
	markRead usecases.MarkNotificationReadExecutor
}

func NewHandler(
	list usecases.ListNotificationsExecutor,
	markRead usecases.MarkNotificationReadExecutor,
) *Handler {
	return &Handler{list: list, markRead: markRead}
}

func (h *Handler) List(c *gin.Context) {
	result, err := h.list.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		RecipientID: utils.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.markRead.Execute(c.Request.Context(), usecases.MarkNotificationReadCommand{
		NotificationID: id,
		RecipientID:    utils.ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}
