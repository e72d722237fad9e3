package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"havenly.backend/internal/domain/entities"
	"havenly.backend/internal/interfaces/http/middleware"
	"havenly.backend/pkg/redis"
)

func setupMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func newLockRouter(user *entities.User, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bookings",
		func(c *gin.Context) {
			c.Set(middleware.CurrentUserKey, user)
		},
		middleware.PaymentLockMiddleware(30*time.Second),
		handler,
	)
	return router
}

func TestPaymentLock_AcquiresAndReleases(t *testing.T) {
	mr := setupMiniRedis(t)
	user := &entities.User{ID: uuid.New(), Role: entities.UserRoleGuest}

	router := newLockRouter(user, func(c *gin.Context) {
		// lock held while the handler runs
		assert.True(t, mr.Exists("payment_lock:"+user.ID.String()))
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	assert.False(t, mr.Exists("payment_lock:"+user.ID.String()), "lock released after the request")
}

func TestPaymentLock_ConcurrentRequestRejected(t *testing.T) {
	mr := setupMiniRedis(t)
	user := &entities.User{ID: uuid.New(), Role: entities.UserRoleGuest}

	// another request already holds this user's lock
	require.NoError(t, mr.Set("payment_lock:"+user.ID.String(), "processing"))

	router := newLockRouter(user, func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPaymentLock_OtherUsersUnaffected(t *testing.T) {
	mr := setupMiniRedis(t)
	require.NoError(t, mr.Set("payment_lock:"+uuid.NewString(), "processing"))

	user := &entities.User{ID: uuid.New(), Role: entities.UserRoleGuest}
	router := newLockRouter(user, func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPaymentLock_MissingUser(t *testing.T) {
	setupMiniRedis(t)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bookings", middleware.PaymentLockMiddleware(30*time.Second), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
