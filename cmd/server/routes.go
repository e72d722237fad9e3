package main

import (
	"github.com/gin-gonic/gin"

	"havenly.backend/internal/interfaces/http/handlers"
	"havenly.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler           *handlers.AuthHandler
	userHandler           *handlers.UserHandler
	propertyHandler       *handlers.PropertyHandler
	verificationHandler   *handlers.VerificationHandler
	bookingHandler        *handlers.BookingHandler
	chatHandler           *handlers.ChatHandler
	configHandler         *handlers.SiteConfigHandler
	adviceHandler         *handlers.AdviceHandler
	authMiddleware        gin.HandlerFunc
	paymentLockMiddleware gin.HandlerFunc
	maintenanceMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.PUT("/me", d.authMiddleware, d.authHandler.UpdateProfile)
		}

		// Platform settings (public read)
		v1.GET("/config", d.configHandler.Get)

		// Catalog routes (public read, host write)
		properties := v1.Group("/properties")
		{
			properties.GET("", d.maintenanceMiddleware, d.propertyHandler.List)
			properties.GET("/:id", d.maintenanceMiddleware, d.propertyHandler.Get)
			properties.GET("/:id/eligibility", d.authMiddleware, d.maintenanceMiddleware, d.verificationHandler.Eligibility)
			properties.POST("", d.authMiddleware, d.maintenanceMiddleware, middleware.RequireHost(), d.propertyHandler.Create)
			properties.PUT("/:id", d.authMiddleware, d.maintenanceMiddleware, middleware.RequireHost(), d.propertyHandler.Update)
			properties.PATCH("/:id/status", d.authMiddleware, d.maintenanceMiddleware, middleware.RequireHost(), d.propertyHandler.SetStatus)
			properties.DELETE("/:id", d.authMiddleware, d.maintenanceMiddleware, middleware.RequireHost(), d.propertyHandler.Delete)
		}

		// Watchlist routes (protected)
		watchlist := v1.Group("/watchlist")
		watchlist.Use(d.authMiddleware, d.maintenanceMiddleware)
		{
			watchlist.GET("", d.propertyHandler.Watchlist)
			watchlist.POST("/:propertyId", d.propertyHandler.ToggleWatchlist)
		}

		// Identity verification routes (protected)
		verifications := v1.Group("/verifications")
		verifications.Use(d.authMiddleware, d.maintenanceMiddleware)
		{
			verifications.POST("", d.verificationHandler.Submit)
			verifications.GET("", d.verificationHandler.List)
			verifications.PATCH("/:id", d.verificationHandler.Decide)
		}

		// Booking routes (protected). Creation runs under the per-user
		// payment lock.
		bookings := v1.Group("/bookings")
		bookings.Use(d.authMiddleware, d.maintenanceMiddleware)
		{
			bookings.GET("/quote", d.bookingHandler.Quote)
			bookings.POST("", d.paymentLockMiddleware, d.bookingHandler.Create)
			bookings.GET("", d.bookingHandler.List)
			bookings.GET("/stats", d.bookingHandler.Stats)
			bookings.GET("/:id", d.bookingHandler.Get)
			bookings.PATCH("/:id", d.bookingHandler.Decide)
		}

		// Chat routes (protected)
		chat := v1.Group("/chat")
		chat.Use(d.authMiddleware, d.maintenanceMiddleware)
		{
			chat.POST("/threads", d.chatHandler.OpenThread)
			chat.GET("/threads", d.chatHandler.ListThreads)
			chat.POST("/threads/:id/messages", d.chatHandler.SendMessage)
			chat.GET("/threads/:id/messages", d.chatHandler.ListMessages)
		}

		// Advice routes (public)
		advice := v1.Group("/advice")
		{
			advice.POST("/property", d.adviceHandler.PropertyAdvice)
			advice.POST("/description", d.adviceHandler.SmartDescription)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.userHandler.List)
			admin.PATCH("/users/:id/role", d.userHandler.SetRole)
			admin.PATCH("/users/:id/id-verified", d.userHandler.SetIDVerified)
			admin.PUT("/config", d.configHandler.Update)
		}
	}
}
