package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"havenly.backend/internal/domain/entities"
	"havenly.backend/internal/interfaces/http/middleware"
	"havenly.backend/internal/usecases"
)

type stubConfigRepo struct {
	config entities.SiteConfig
}

func (r *stubConfigRepo) Get(ctx context.Context) (*entities.SiteConfig, error) {
	c := r.config
	return &c, nil
}

func (r *stubConfigRepo) Update(ctx context.Context, config *entities.SiteConfig) error {
	r.config = *config
	return nil
}

func newMaintenanceRouter(maintenance bool, user *entities.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	configUsecase := usecases.NewSiteConfigUsecase(&stubConfigRepo{
		config: entities.SiteConfig{SiteName: "Havenly", MaintenanceMode: maintenance},
	})

	router := gin.New()
	router.GET("/properties",
		func(c *gin.Context) {
			if user != nil {
				c.Set(middleware.CurrentUserKey, user)
			}
		},
		middleware.MaintenanceMiddleware(configUsecase),
		func(c *gin.Context) {
			c.Status(http.StatusOK)
		},
	)
	return router
}

func TestMaintenance_Off(t *testing.T) {
	router := newMaintenanceRouter(false, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaintenance_BlocksGuests(t *testing.T) {
	guest := &entities.User{ID: uuid.New(), Role: entities.UserRoleGuest}
	router := newMaintenanceRouter(true, guest)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMaintenance_AdminsPass(t *testing.T) {
	admin := &entities.User{ID: uuid.New(), Role: entities.UserRoleSuperAdmin}
	router := newMaintenanceRouter(true, admin)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
