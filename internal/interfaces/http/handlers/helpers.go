package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/interfaces/http/middleware"
	"havenly.backend/internal/interfaces/http/response"
)

// currentUser fetches the authenticated user set by the auth middleware,
// writing the 401 itself when absent.
func currentUser(c *gin.Context) (*entities.User, bool) {
	user, exists := middleware.CurrentUser(c)
	if !exists {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return nil, false
	}
	return user, true
}

// parseIDParam parses a UUID path parameter, writing the 400 itself on
// malformed input.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, domainerrors.Validation("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}
