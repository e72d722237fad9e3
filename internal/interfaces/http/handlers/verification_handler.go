package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/interfaces/http/response"
	"havenly.backend/internal/usecases"
)

// VerificationHandler handles the per-host identity gate endpoints
type VerificationHandler struct {
	verificationUsecase *usecases.VerificationUsecase
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase *usecases.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{
		verificationUsecase: verificationUsecase,
	}
}

// Eligibility answers whether the actor may book this listing
// GET /api/v1/properties/:id/eligibility
func (h *VerificationHandler) Eligibility(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	eligibility, err := h.verificationUsecase.CheckEligibility(c.Request.Context(), actor.ID, propertyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, eligibility)
}

// Submit files a verification document towards a listing's host
// POST /api/v1/verifications
func (h *VerificationHandler) Submit(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var input entities.SubmitVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	request, err := h.verificationUsecase.Submit(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"request": request})
}

// Decide approves or rejects a pending request
// PATCH /api/v1/verifications/:id
func (h *VerificationHandler) Decide(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Decision entities.VerificationDecision `json:"decision" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation("decision is required"))
		return
	}

	request, err := h.verificationUsecase.Decide(c.Request.Context(), actor, requestID, input.Decision)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"request": request})
}

// List lists the requests visible to the actor
// GET /api/v1/verifications
func (h *VerificationHandler) List(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	requests, err := h.verificationUsecase.List(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}
