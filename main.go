package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rusty/internal/config"
	"rusty/internal/database"
	"rusty/internal/repositories"
	"rusty/internal/server"
	"rusty/internal/services"
	"rusty/pkg/logger"
	"rusty/pkg/rabbitmq"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rusty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New("rusty", cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	if err := database.SeedRoles(db); err != nil {
		return err
	}

	// --- RabbitMQ (optional) ---
	// Kept as the interface type so that a disabled publisher stays a true nil.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			return err
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Info("RABBITMQ_URL not set, catalog events disabled")
	}

	app := newApp(cfg, db, publisher, log)

	// --- Start HTTP Server ---
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", cfg.AppPort))
		errCh <- app.Listen(cfg.AppPort)
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Info("shutting down server", zap.String("signal", sig.String()))
	}

	if err := app.Shutdown(); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
	log.Info("server gracefully stopped")
	return nil
}

// newApp wires repositories and services into the HTTP application.
func newApp(cfg *config.Config, db *gorm.DB, publisher services.EventPublisher, log *zap.Logger) *fiber.App {
	userRepo := repositories.NewGORMUserRepository(db)

	var authService *services.AuthService
	if cfg.JWTSecret != "" {
		authService = services.NewAuthService(userRepo, cfg.JWTSecret, log)
	}

	return server.NewApp(server.Deps{
		Rustaceans:  services.NewRustaceanService(repositories.NewGORMRustaceanRepository(db), publisher, log),
		Crates:      services.NewCrateService(repositories.NewGORMCrateRepository(db), publisher, log),
		Auth:        authService,
		AuthEnabled: cfg.AuthEnabled,
		PageLimit:   cfg.PageLimit,
		Logger:      log,
		AccessLog:   true,
	})
}
