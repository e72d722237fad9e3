package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/interfaces/http/response"
	"havenly.backend/internal/usecases"
)

// PropertyHandler handles catalog and watchlist endpoints
type PropertyHandler struct {
	propertyUsecase *usecases.PropertyUsecase
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyUsecase *usecases.PropertyUsecase) *PropertyHandler {
	return &PropertyHandler{
		propertyUsecase: propertyUsecase,
	}
}

// List lists catalog entries
// GET /api/v1/properties
func (h *PropertyHandler) List(c *gin.Context) {
	var filter entities.PropertyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	properties, err := h.propertyUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": properties})
}

// Get returns one listing
// GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	property, err := h.propertyUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"property": property})
}

// Create creates a listing owned by the acting host
// POST /api/v1/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var input entities.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	property, err := h.propertyUsecase.Create(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"property": property})
}

// Update edits a listing
// PUT /api/v1/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	property, err := h.propertyUsecase.Update(c.Request.Context(), actor, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"property": property})
}

// SetStatus toggles listing availability
// PATCH /api/v1/properties/:id/status
func (h *PropertyHandler) SetStatus(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status entities.PropertyStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation("status is required"))
		return
	}

	property, err := h.propertyUsecase.SetStatus(c.Request.Context(), actor, id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"property": property})
}

// Delete removes a listing
// DELETE /api/v1/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.propertyUsecase.Delete(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "listing deleted"})
}

// ToggleWatchlist flips the actor's favorite mark on a listing
// POST /api/v1/watchlist/:propertyId
func (h *PropertyHandler) ToggleWatchlist(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	propertyID, ok := parseIDParam(c, "propertyId")
	if !ok {
		return
	}

	added, err := h.propertyUsecase.ToggleWatchlist(c.Request.Context(), actor.ID, propertyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"watchlisted": added})
}

// Watchlist lists the actor's favorite listings
// GET /api/v1/watchlist
func (h *PropertyHandler) Watchlist(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	properties, err := h.propertyUsecase.Watchlist(c.Request.Context(), actor.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": properties})
}
