// Package auth exposes login, token refresh and profile endpoints.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"klevant/internal/application/user/usecases"
	"klevant/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateProfileRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"omitempty,min=8"`
}

type Handler struct {
	login         usecases.LoginExecutor
	refresh       usecases.RefreshTokenExecutor
	getProfile    usecases.GetProfileExecutor
	updateProfile usecases.UpdateProfileExecutor
}

func NewHandler(
	login usecases.LoginExecutor,
	refresh usecases.RefreshTokenExecutor,
	getProfile usecases.GetProfileExecutor,
	updateProfile usecases.UpdateProfileExecutor,
) *Handler {
	return &Handler{
		login:         login,
		refresh:       refresh,
		getProfile:    getProfile,
		updateProfile: updateProfile,
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.login.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	pair, err := h.refresh.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", pair)
}

func (h *Handler) Profile(c *gin.Context) {
	result, err := h.getProfile.Execute(c.Request.Context(), utils.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateProfile.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:          utils.ActorID(c),
		Name:            req.Name,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Profile updated", result)
}
