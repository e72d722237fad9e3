package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/interfaces/http/response"
	"havenly.backend/internal/usecases"
)

// AdviceHandler handles the AI concierge endpoints
type AdviceHandler struct {
	adviceUsecase *usecases.AdviceUsecase
}

// NewAdviceHandler creates a new advice handler
func NewAdviceHandler(adviceUsecase *usecases.AdviceUsecase) *AdviceHandler {
	return &AdviceHandler{
		adviceUsecase: adviceUsecase,
	}
}

// PropertyAdvice explains why a listing fits the stated needs
// POST /api/v1/advice/property
func (h *AdviceHandler) PropertyAdvice(c *gin.Context) {
	var input struct {
		PropertyID string `json:"propertyId" binding:"required"`
		Needs      string `json:"needs" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	propertyID, err := uuid.Parse(input.PropertyID)
	if err != nil {
		response.Error(c, domainerrors.Validation("invalid propertyId"))
		return
	}

	advice, err := h.adviceUsecase.PropertyAdvice(c.Request.Context(), propertyID, input.Needs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"advice": advice})
}

// SmartDescription turns raw listing details into marketing copy
// POST /api/v1/advice/description
func (h *AdviceHandler) SmartDescription(c *gin.Context) {
	var input struct {
		Details string `json:"details" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	description, err := h.adviceUsecase.SmartDescription(c.Request.Context(), input.Details)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"description": description})
}
