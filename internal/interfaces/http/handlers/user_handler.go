package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/interfaces/http/response"
	"havenly.backend/internal/usecases"
)

// UserHandler handles the admin user-management endpoints
type UserHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(authUsecase *usecases.AuthUsecase) *UserHandler {
	return &UserHandler{
		authUsecase: authUsecase,
	}
}

// List lists platform users
// GET /api/v1/admin/users
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	users, err := h.authUsecase.ListUsers(c.Request.Context(), actor, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// SetRole promotes or demotes a user
// PATCH /api/v1/admin/users/:id/role
func (h *UserHandler) SetRole(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Role entities.UserRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	user, err := h.authUsecase.SetUserRole(c.Request.Context(), actor, userID, input.Role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// SetIDVerified flips a user's global identity flag
// PATCH /api/v1/admin/users/:id/id-verified
func (h *UserHandler) SetIDVerified(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Verified *bool `json:"verified" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation("verified flag is required"))
		return
	}

	user, err := h.authUsecase.SetIDVerified(c.Request.Context(), actor, userID, *input.Verified)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}
