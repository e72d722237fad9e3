package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"havenly.backend/internal/domain/entities"
	"havenly.backend/internal/infrastructure/advice"
	"havenly.backend/internal/infrastructure/gateway"
	"havenly.backend/internal/infrastructure/models"
	infrarepos "havenly.backend/internal/infrastructure/repositories"
	"havenly.backend/internal/interfaces/http/handlers"
	"havenly.backend/internal/interfaces/http/middleware"
	"havenly.backend/internal/usecases"
	"havenly.backend/pkg/crypto"
	"havenly.backend/pkg/jwt"
	"havenly.backend/pkg/logger"
	"havenly.backend/pkg/utils"
)

const declinedTestCard = "4000000000000002"

// testServer runs the handlers against real sqlite-backed usecases
type testServer struct {
	t        *testing.T
	router   *gin.Engine
	userRepo *infrarepos.UserRepository
	jwt      *jwt.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("development")

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.WatchlistItem{},
		&models.VerificationRequest{},
		&models.Booking{},
		&models.ChatThread{},
		&models.ChatMessage{},
		&models.SiteConfig{},
	), "migrate")

	userRepo := infrarepos.NewUserRepository(db)
	propertyRepo := infrarepos.NewPropertyRepository(db)
	watchlistRepo := infrarepos.NewWatchlistRepository(db)
	verificationRepo := infrarepos.NewVerificationRepository(db)
	bookingRepo := infrarepos.NewBookingRepository(db)
	chatRepo := infrarepos.NewChatRepository(db)
	configRepo := infrarepos.NewSiteConfigRepository(db)
	require.NoError(t, db.Create(&models.SiteConfig{SiteName: "Havenly", Currency: "USD", Language: "es"}).Error)

	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, time.Hour)
	verificationUsecase := usecases.NewVerificationUsecase(verificationRepo, propertyRepo, userRepo)
	sim := gateway.NewCardSimulator(0, declinedTestCard)

	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, "")
	propertyUsecase := usecases.NewPropertyUsecase(propertyRepo, watchlistRepo)
	bookingUsecase := usecases.NewBookingUsecase(bookingRepo, propertyRepo, verificationUsecase, sim, nil)
	chatUsecase := usecases.NewChatUsecase(chatRepo, userRepo)
	configUsecase := usecases.NewSiteConfigUsecase(configRepo)
	adviceUsecase := usecases.NewAdviceUsecase(propertyRepo, advice.NewDisabledClient())

	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(authUsecase)
	propertyHandler := handlers.NewPropertyHandler(propertyUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	bookingHandler := handlers.NewBookingHandler(bookingUsecase)
	chatHandler := handlers.NewChatHandler(chatUsecase)
	configHandler := handlers.NewSiteConfigHandler(configUsecase)
	adviceHandler := handlers.NewAdviceHandler(adviceUsecase)

	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.RefreshToken)
	api.GET("/properties", propertyHandler.List)
	api.GET("/properties/:id", propertyHandler.Get)
	api.GET("/config", configHandler.Get)
	api.POST("/advice/property", adviceHandler.PropertyAdvice)
	api.POST("/advice/description", adviceHandler.SmartDescription)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService, userRepo))
	authed.GET("/auth/me", authHandler.Me)
	authed.PUT("/auth/me", authHandler.UpdateProfile)
	authed.POST("/properties", middleware.RequireHost(), propertyHandler.Create)
	authed.PUT("/properties/:id", middleware.RequireHost(), propertyHandler.Update)
	authed.PATCH("/properties/:id/status", middleware.RequireHost(), propertyHandler.SetStatus)
	authed.DELETE("/properties/:id", middleware.RequireHost(), propertyHandler.Delete)
	authed.GET("/properties/:id/eligibility", verificationHandler.Eligibility)
	authed.POST("/watchlist/:propertyId", propertyHandler.ToggleWatchlist)
	authed.GET("/watchlist", propertyHandler.Watchlist)
	authed.POST("/verifications", verificationHandler.Submit)
	authed.GET("/verifications", verificationHandler.List)
	authed.PATCH("/verifications/:id", verificationHandler.Decide)
	authed.GET("/bookings/quote", bookingHandler.Quote)
	authed.POST("/bookings", bookingHandler.Create)
	authed.GET("/bookings", bookingHandler.List)
	authed.GET("/bookings/stats", bookingHandler.Stats)
	authed.GET("/bookings/:id", bookingHandler.Get)
	authed.PATCH("/bookings/:id", bookingHandler.Decide)
	authed.POST("/chat/threads", chatHandler.OpenThread)
	authed.GET("/chat/threads", chatHandler.ListThreads)
	authed.POST("/chat/threads/:id/messages", chatHandler.SendMessage)
	authed.GET("/chat/threads/:id/messages", chatHandler.ListMessages)

	admin := authed.Group("/admin", middleware.RequireAdmin())
	admin.GET("/users", userHandler.List)
	admin.PATCH("/users/:id/role", userHandler.SetRole)
	admin.PATCH("/users/:id/id-verified", userHandler.SetIDVerified)
	admin.PUT("/config", configHandler.Update)

	return &testServer{t: t, router: router, userRepo: userRepo, jwt: jwtService}
}

// createUser inserts a user directly and returns it with a valid token
func (s *testServer) createUser(email string, role entities.UserRole) (*entities.User, string) {
	s.t.Helper()
	hash, err := crypto.HashPassword("secret99")
	require.NoError(s.t, err)
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        email,
		Name:         email,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(s.t, s.userRepo.Create(context.Background(), user))

	pair, err := s.jwt.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	require.NoError(s.t, err)
	return user, pair.AccessToken
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response body: %s", w.Body.String())
	return body
}

// createListing creates a property through the API and returns its ID
func (s *testServer) createListing(hostToken string, price float64) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/v1/properties", hostToken, gin.H{
		"title":         "Villa Moderna",
		"pricePerNight": price,
		"location":      "Marbella",
		"category":      "Villas",
		"maxGuests":     4,
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(s.t, w)
	property := body["property"].(map[string]interface{})
	return property["id"].(string)
}
