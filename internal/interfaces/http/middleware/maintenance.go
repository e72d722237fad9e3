package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"havenly.backend/internal/usecases"
)

// MaintenanceMiddleware rejects traffic while the platform is flagged
// under maintenance. Admins keep access so they can turn the flag back
// off. A config read failure keeps the site up.
func MaintenanceMiddleware(configUsecase *usecases.SiteConfigUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		config, err := configUsecase.Get(c.Request.Context())
		if err != nil || !config.MaintenanceMode {
			c.Next()
			return
		}

		if user, exists := CurrentUser(c); exists && user.IsAdmin() {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error": "The platform is under maintenance, please try again later",
		})
	}
}
