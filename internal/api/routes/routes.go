package routes

import (
	"fmt"

	"volunteer-scheduler-backend/internal/api/handlers"
	"volunteer-scheduler-backend/internal/api/middleware"
	"volunteer-scheduler-backend/internal/auth"
	"volunteer-scheduler-backend/internal/config"
	"volunteer-scheduler-backend/internal/notifier"
	"volunteer-scheduler-backend/internal/repository"
	"volunteer-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// dispatcher may be nil, in which case assignment changes are not announced
// and notifications run in simulated mode.
func SetupRoutes(db *gorm.DB, cfg *config.Config, dispatcher *notifier.Dispatcher) (*gin.Engine, error) {
	router := gin.New()
	// Handlers pass *gin.Context as context.Context to services
	router.ContextWithFallback = true

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	ministryRepo := repository.NewMinistryRepository(db)
	eventTypeRepo := repository.NewEventTypeRepository(db)
	serviceEventRepo := repository.NewServiceEventRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	wizardRepo := repository.NewWizardRepository(db)
	subscriptionRepo := repository.NewPushSubscriptionRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTExpiry())
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	var publisher service.ChangePublisher
	var n service.Notifier
	if dispatcher != nil {
		publisher = dispatcher
		n = dispatcher
	}

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	accountService := service.NewAccountService(organizationRepo, profileRepo, authService, validator)
	volunteerService := service.NewVolunteerService(volunteerRepo, auditService, validator)
	ministryService := service.NewMinistryService(ministryRepo, auditService, validator)
	eventTypeService := service.NewEventTypeService(eventTypeRepo, auditService, validator)
	teamService := service.NewTeamService(teamRepo, auditService, validator)
	serviceEventService := service.NewServiceEventService(serviceEventRepo, volunteerRepo, teamRepo, publisher, auditService, validator)
	gemini := service.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, cfg.GeminiTimeout())
	scheduleGenerator := service.NewScheduleGenerator(gemini, volunteerRepo, ministryRepo, auditService, validator)
	wizardService := service.NewWizardService(wizardRepo)
	notificationService := service.NewNotificationService(subscriptionRepo, n, cfg.VAPIDPublicKey, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, notificationService.Config().Mode)
	authHandler := handlers.NewAuthHandler(accountService)
	volunteerHandler := handlers.NewVolunteerHandler(volunteerService)
	ministryHandler := handlers.NewMinistryHandler(ministryService)
	eventTypeHandler := handlers.NewEventTypeHandler(eventTypeService)
	teamHandler := handlers.NewTeamHandler(teamService)
	serviceEventHandler := handlers.NewServiceEventHandler(serviceEventService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleGenerator)
	wizardHandler := handlers.NewWizardHandler(wizardService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authLimiter, err := middleware.NewMemoryLimiter(cfg.AuthRateLimit)
	if err != nil {
		return nil, fmt.Errorf("auth rate limit: %w", err)
	}
	authRoutes := router.Group("/api/auth")
	authRoutes.Use(middleware.RateLimit(authLimiter))
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/me", authHandler.Me)
		v1.GET("/organization", authHandler.Organization)

		volunteers := v1.Group("/volunteers")
		{
			volunteers.GET("", volunteerHandler.ListVolunteers)
			volunteers.POST("", volunteerHandler.CreateVolunteer)
			volunteers.PUT("/:id", volunteerHandler.UpdateVolunteer) // Admin or the volunteer themself
			volunteers.DELETE("/:id", volunteerHandler.DeleteVolunteer)
		}

		ministries := v1.Group("/ministries")
		{
			ministries.GET("", ministryHandler.ListMinistries)
			ministries.POST("", ministryHandler.CreateMinistry)
			ministries.DELETE("/:name", ministryHandler.DeleteMinistry)
		}

		eventTypes := v1.Group("/event-types")
		{
			eventTypes.GET("", eventTypeHandler.ListEventTypes)
			eventTypes.POST("", eventTypeHandler.CreateEventType)
			eventTypes.DELETE("/:id", eventTypeHandler.DeleteEventType)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		services := v1.Group("/services")
		{
			services.GET("", serviceEventHandler.ListServices) // Optional from/to parameters
			services.POST("", serviceEventHandler.CreateService)
			services.POST("/recurring", serviceEventHandler.CreateRecurringServices)
			services.GET("/eligible-volunteers", serviceEventHandler.EligibleVolunteers) // Requires role parameter
			services.PUT("/:id", serviceEventHandler.UpdateService)
			services.DELETE("/:id", serviceEventHandler.DeleteService)
			services.POST("/:id/assignments", serviceEventHandler.AddAssignment)
			services.POST("/:id/team-assignments", serviceEventHandler.AssignTeam)
			services.DELETE("/:id/assignments/:index", serviceEventHandler.RemoveAssignment)
			services.PUT("/:id/assignments/:index/status", serviceEventHandler.RespondToAssignment)
		}

		schedule := v1.Group("/schedule")
		schedule.Use(auth.RequireAdmin())
		{
			schedule.POST("/generate", scheduleHandler.GenerateSchedule)
		}

		wizard := v1.Group("/wizard")
		{
			wizard.GET("/:scope", wizardHandler.GetWizard)
			wizard.PUT("/:scope", wizardHandler.SetWizardStep)
			wizard.POST("/:scope/advance", wizardHandler.AdvanceWizard)
			wizard.DELETE("/:scope", wizardHandler.ResetWizard)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("/config", notificationHandler.GetConfig)
			notifications.POST("/subscriptions", notificationHandler.Subscribe)
			notifications.DELETE("/subscriptions", notificationHandler.Unsubscribe)
			notifications.POST("/test", notificationHandler.SendTest)
		}

		v1.GET("/audit-logs", auth.RequireAdmin(), auditHandler.ListAuditLog)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, service.NotificationModeSimulated)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
