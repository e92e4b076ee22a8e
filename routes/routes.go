package routes

import (
	"net/http"
	"time"

	"cleanmaster/handlers"
	"cleanmaster/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the services catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.ListServices)

		api.Use(middleware.JWTAuthAdminMiddleware())
		api.PUT("/:id", hb.Catalog.UpdateService)
	}
}

// RegisterBookingRoutes registers booking submission and lookup endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/mine", hb.Booking.MyOrders)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("", hb.Booking.ListBookings)
		admin.PUT("/:ref/status", hb.Booking.UpdateStatus)
	}
}

// RegisterUploadRoutes registers the image upload endpoint.
func RegisterUploadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/uploads", hb.Storage.UploadImages)
}

// RegisterChatRoutes registers the assistant endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/chat", hb.Chat.Converse)
}

// RegisterAdminRoutes registers admin authentication.
func RegisterAdminRoutes(r *gin.Engine) {
	r.POST("/api/admin/login", handlers.AdminLogin)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Clean Master API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.DeviceMiddleware())

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUploadRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterAdminRoutes(r)
}
