package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"rusty/internal/cli"
	"rusty/internal/config"
	"rusty/internal/database"
	"rusty/internal/repositories"
	"rusty/internal/services"
	"rusty/pkg/logger"
	"rusty/pkg/rabbitmq"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rusty: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Logs go to stderr; stdout is reserved for command output.
	log, err := logger.New("rusty-cli", cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Warn("close failed", zap.Error(err))
			}
		}
	}()

	deps := cli.Deps{
		Users: func() (cli.UserManager, error) {
			db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL, log)
			if err != nil {
				return nil, err
			}
			closers = append(closers, func() error { return database.Close(db) })

			if err := database.Migrate(db); err != nil {
				return nil, err
			}
			if err := database.SeedRoles(db); err != nil {
				return nil, err
			}
			return services.NewUserService(
				repositories.NewGORMUserRepository(db),
				repositories.NewGORMRoleRepository(db),
			), nil
		},
		Events: func() (cli.EventConsumer, error) {
			if cfg.RabbitMQURL == "" {
				return nil, errors.New("RABBITMQ_URL is not set")
			}
			client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
			if err != nil {
				return nil, err
			}
			closers = append(closers, client.Close)
			return client, nil
		},
	}

	return cli.NewRootCommand(deps, os.Stdout).ExecuteContext(ctx)
}
