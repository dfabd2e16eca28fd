// Command schedulerctl is the administrative CLI for the volunteer scheduler:
// seeding an organization, drafting schedules with the AI model, expanding
// recurrence rules and generating VAPID keys.
package main

import (
	"context"
	"fmt"
	"os"

	"volunteer-scheduler-backend/internal/config"
	"volunteer-scheduler-backend/internal/database"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

// App holds the dependencies shared by commands. The database is opened
// on first use so offline commands work without one.
type App struct {
	ctx       context.Context
	cfg       *config.Config
	logger    *zap.Logger
	validator *validator.Validate
	db        *gorm.DB
}

var (
	verbose bool
	app     *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "schedulerctl",
		Short:         "Volunteer scheduler admin CLI",
		Long:          `Administrative tasks for the volunteer scheduler: seed data, AI drafts, recurring services and push keys.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(draftCmd())
	rootCmd.AddCommand(recurringCmd())
	rootCmd.AddCommand(vapidKeysCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func initApp(ctx context.Context) error {
	_ = godotenv.Load()

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("Configuration loaded", zap.String("environment", cfg.Environment))

	app = &App{
		ctx:       ctx,
		cfg:       cfg,
		logger:    logger,
		validator: validator.New(),
	}
	return nil
}

// newLogger writes human-readable logs to stderr so stdout stays parseable
func newLogger(debug bool) (*zap.Logger, error) {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level)
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// DB connects and migrates on first call
func (a *App) DB() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	a.logger.Info("Connecting to database")
	db, err := database.Initialize(a.cfg.DatabaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a.db = db
	return db, nil
}
