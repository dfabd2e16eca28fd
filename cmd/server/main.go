package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"volunteer-scheduler-backend/internal/api/routes"
	"volunteer-scheduler-backend/internal/config"
	"volunteer-scheduler-backend/internal/database"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/logger"
	"volunteer-scheduler-backend/internal/notifier"
	"volunteer-scheduler-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "volunteer-scheduler-backend/docs" // This is needed for swag
)

//	@title			Volunteer Scheduler API
//	@version		1.0
//	@description	Backend for church volunteer scheduling: roster, ministries, services, assignments, AI drafts and notifications.

//	@contact.name	API Support
//	@contact.email	support@example.org

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel, os.Stdout)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dispatcher := buildDispatcher(ctx, cfg, db)
	dispatcher.Start(ctx)

	router, err := routes.SetupRoutes(db, cfg, dispatcher)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server shutdown failed: %v", err)
	}
	dispatcher.Wait()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// buildDispatcher wires the notification channels that are configured.
// Missing VAPID keys leave push disabled, which puts the API in simulated mode.
func buildDispatcher(ctx context.Context, cfg *config.Config, db *gorm.DB) *notifier.Dispatcher {
	opts := notifier.DispatcherOptions{
		Subscriptions: repository.NewPushSubscriptionRepository(db),
		Volunteers:    repository.NewVolunteerRepository(db),
		AppBaseURL:    cfg.AppBaseURL,
		BufferSize:    cfg.NotifyBufferSize,
	}

	push, err := notifier.NewWebPushSender(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubject)
	switch {
	case err == nil:
		opts.Push = push
	case apperrors.IsNotificationSetup(err):
		logrus.Warnf("Push notifications simulated: %v", err)
	default:
		logrus.Fatal("Failed to configure push notifications: ", err)
	}

	if cfg.EmailEnabled() {
		email, err := notifier.NewSESEmailSender(ctx, cfg.SESRegion, cfg.SESFromEmail, cfg.SESFromName)
		if err != nil {
			logrus.Warnf("Email notifications disabled: %v", err)
		} else {
			opts.Email = email
		}
	}

	return notifier.NewDispatcher(opts)
}
