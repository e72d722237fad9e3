package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/interfaces/http/response"
	"havenly.backend/internal/usecases"
)

// SiteConfigHandler handles the platform settings endpoints
type SiteConfigHandler struct {
	configUsecase *usecases.SiteConfigUsecase
}

// NewSiteConfigHandler creates a new site config handler
func NewSiteConfigHandler(configUsecase *usecases.SiteConfigUsecase) *SiteConfigHandler {
	return &SiteConfigHandler{
		configUsecase: configUsecase,
	}
}

// Get returns the public platform settings
// GET /api/v1/config
func (h *SiteConfigHandler) Get(c *gin.Context) {
	config, err := h.configUsecase.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, config)
}

// Update replaces the platform settings
// PUT /api/v1/admin/config
func (h *SiteConfigHandler) Update(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var input entities.UpdateSiteConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	config, err := h.configUsecase.Update(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, config)
}
