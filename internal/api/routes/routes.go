package routes

import (
	"net/http"

	"medcheck-backend/internal/api/handlers"
	"medcheck-backend/internal/api/middleware"
	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/config"
	"medcheck-backend/internal/repository"
	"medcheck-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes builds the router and wires repositories, services and
// handlers onto it.
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()
	log := logrus.StandardLogger()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	checklistRepo := repository.NewChecklistEntryRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	errorRepo := repository.NewMedicationErrorRepository(db)
	subscriptionRepo := repository.NewWebPushSubscriptionRepository(db)

	// Services
	tokenService := auth.NewAuthService(cfg)
	authService := service.NewAuthService(userRepo, tokenService, validate)
	orgService := service.NewOrganizationService(orgRepo, userRepo, tokenService, cfg, validate)
	checklistService := service.NewChecklistService(checklistRepo, validate)
	reminderService := service.NewReminderService(reminderRepo, validate)
	errorService := service.NewMedicationErrorService(errorRepo, checklistRepo, validate)
	reportService := service.NewReportService(checklistRepo)
	notificationService := service.NewNotificationService(subscriptionRepo, cfg, validate)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(authService)
	orgHandler := handlers.NewOrganizationHandler(orgService)
	checklistHandler := handlers.NewChecklistHandler(checklistService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	errorHandler := handlers.NewMedicationErrorHandler(errorService)
	reportHandler := handlers.NewReportHandler(reportService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	authMiddleware := auth.NewAuthMiddleware(tokenService, userRepo)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/verify", authHandler.Verify)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	orgRoutes := router.Group("/organizations")
	{
		orgRoutes.POST("/register", orgHandler.Register)
		orgRoutes.GET("/list", authMiddleware.RequireAuth(), authMiddleware.RequireSuperAdmin(), orgHandler.List)
		orgRoutes.GET("/:id", authMiddleware.RequireAuth(), orgHandler.Get)
		orgRoutes.POST("/:id/toggle-active", authMiddleware.RequireAuth(), authMiddleware.RequireSuperAdmin(), orgHandler.ToggleActive)
	}

	router.POST("/users", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), orgHandler.CreateUser)

	checklistRoutes := router.Group("/checklist", authMiddleware.RequireAuth())
	{
		checklistRoutes.POST("", checklistHandler.Create)
		checklistRoutes.GET("", checklistHandler.List)
		checklistRoutes.GET("/:id", checklistHandler.Get)
		checklistRoutes.PUT("/:id", checklistHandler.Update)
		checklistRoutes.DELETE("/:id", authMiddleware.RequireAdmin(), checklistHandler.Delete)
	}

	errorRoutes := router.Group("/errors", authMiddleware.RequireAuth())
	{
		errorRoutes.POST("", errorHandler.Report)
		errorRoutes.GET("", errorHandler.List)
		errorRoutes.GET("/metrics", errorHandler.Metrics)
		errorRoutes.GET("/timeline", errorHandler.Timeline)
		errorRoutes.POST("/:id/resolve", errorHandler.Resolve)
		errorRoutes.GET("/global/summary", authMiddleware.RequireSuperAdmin(), errorHandler.GlobalSummary)
	}

	reportRoutes := router.Group("/reports", authMiddleware.RequireAuth())
	{
		reportRoutes.GET("/quality-indicators", reportHandler.QualityIndicators)
		reportRoutes.GET("/compliance-by-area", reportHandler.ComplianceByArea)
		reportRoutes.GET("/compliance-trend", reportHandler.ComplianceTrend)
		reportRoutes.GET("/summary", reportHandler.Summary)
	}

	reminderRoutes := router.Group("/reminders", authMiddleware.RequireAuth())
	{
		reminderRoutes.POST("", reminderHandler.Create)
		reminderRoutes.GET("", reminderHandler.List)
		reminderRoutes.GET("/pending", reminderHandler.Pending)
		reminderRoutes.POST("/:id/mark-sent", reminderHandler.MarkSent)
		reminderRoutes.DELETE("/:id", reminderHandler.Delete)
	}

	notificationRoutes := router.Group("/notifications")
	{
		notificationRoutes.GET("/vapid-public-key", notificationHandler.VAPIDPublicKey)
		notificationRoutes.POST("/subscribe", authMiddleware.RequireAuth(), notificationHandler.Subscribe)
		notificationRoutes.DELETE("/unsubscribe", authMiddleware.RequireAuth(), notificationHandler.Unsubscribe)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return router
}
