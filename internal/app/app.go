// Package app wires configuration, storage and optional infrastructure into
// the service container shared by the API server and the recurring worker.
package app

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/platform/lock"
	"github.com/SscSPs/expense_tracker/internal/platform/messaging"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/expense_tracker/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App holds the long-lived resources of a process.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Pool      *pgxpool.Pool
	Redis     *redis.Client // nil when REDIS_ADDRESS is unset
	Publisher *messaging.Publisher
	Services  *portssvc.ServiceContainer
}

// New connects to PostgreSQL, applies migrations and builds the services.
// Redis and RabbitMQ are optional: when configured they provide the
// cross-process schedule locks, shared rate limits and materialization events.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	a.Pool = pool
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		a.Close()
		return nil, err
	}

	var opts []services.RecurringServiceOption
	if cfg.RedisAddress != "" {
		rdb, err := database.NewRedisClient(ctx, cfg.RedisAddress)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.Redis = rdb
		opts = append(opts, services.WithLocker(lock.NewRedisLocker(rdb)))
		logger.Info("Redis connected; schedule locks are shared", slog.String("address", cfg.RedisAddress))
	} else {
		logger.Warn("REDIS_ADDRESS not set; schedule locks are process-local")
	}

	if cfg.AMQPURL != "" {
		publisher, err := messaging.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to AMQP: %w", err)
		}
		a.Publisher = publisher
		opts = append(opts, services.WithTransactionPublisher(publisher))
		logger.Info("Materialization events enabled", slog.String("exchange", cfg.AMQPExchange))
	}

	repos := pgsql.NewRepositoryProvider(pool)
	a.Services = services.NewServiceContainer(cfg, repos, opts...)
	return a, nil
}

// Close releases everything New acquired. Safe on a partially built App.
func (a *App) Close() {
	if a.Publisher != nil {
		if err := a.Publisher.Close(); err != nil {
			a.Logger.Error("Error closing AMQP publisher", slog.String("error", err.Error()))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Error("Error closing redis client", slog.String("error", err.Error()))
		}
	}
	database.ClosePgxPool(a.Pool)
}
