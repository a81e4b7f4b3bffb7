package routes

import (
	"doctor-finder-server/internal/config"
	"doctor-finder-server/internal/handlers"
	"doctor-finder-server/internal/middleware"
	"doctor-finder-server/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	doctorHandler := handlers.NewDoctorHandler(db)
	symptomHandler := handlers.NewSymptomHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db)
	recommendationHandler := handlers.NewRecommendationHandler(db, cfg)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}

		// Browsing the catalog requires no account
		doctorRoutes := public.Group("/doctors")
		{
			doctorRoutes.GET("", doctorHandler.SearchDoctors)
			doctorRoutes.GET("/:id", doctorHandler.GetDoctorByID)
			doctorRoutes.GET("/:id/slots", doctorHandler.GetDoctorSlots)
		}

		public.GET("/symptoms", symptomHandler.GetSymptoms)

		// Symptom analyzer is usable before logging in
		public.POST("/recommendations", recommendationHandler.Analyze)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg)) // Apply JWT authentication middleware
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// Appointment routes - always scoped to the authenticated user
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointmentsForUser)
			appointmentRoutes.GET("/reminders", appointmentHandler.GetReminders)
			appointmentRoutes.PATCH("/:id/cancel", appointmentHandler.CancelAppointment)
		}

		// Catalog maintenance (admin only)
		adminDoctorRoutes := private.Group("/doctors")
		adminDoctorRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminDoctorRoutes.POST("", doctorHandler.CreateDoctor)
			adminDoctorRoutes.PUT("/:id", doctorHandler.UpdateDoctor)
			adminDoctorRoutes.DELETE("/:id", doctorHandler.DeleteDoctor)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
