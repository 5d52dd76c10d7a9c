// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aurex-pk/aurex-api/internal/admin"
	"github.com/aurex-pk/aurex-api/internal/auth"
	"github.com/aurex-pk/aurex-api/internal/config"
	"github.com/aurex-pk/aurex-api/internal/core"
	"github.com/aurex-pk/aurex-api/internal/events"
	"github.com/aurex-pk/aurex-api/internal/health"
	"github.com/aurex-pk/aurex-api/internal/migrations"
	"github.com/aurex-pk/aurex-api/internal/server"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log, cfg.IsDevelopment())
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	if cfg.Database.MigrateOnStart {
		if err := migrations.Apply(cfg.Database.URL); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("identity verifier initialized",
		"algorithm", "ES256",
		"issuer", cfg.JWT.Issuer,
	)

	checks := []health.Check{
		{Name: "database", Checker: db},
		{Name: "redis", Checker: redis},
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		nats, natsErr := events.Connect(cfg.Events, cfg.App.Name, logger)
		if natsErr != nil {
			return natsErr
		}
		publisher = nats
		checks = append(checks, health.Check{Name: "nats", Checker: nats})
		logger.Info("event publisher connected",
			"url", cfg.Events.NatsURL,
			"prefix", cfg.Events.SubjectPrefix,
		)
	}

	healthHandler := health.NewHandler(checks...)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	server.Routes(srv.Router(), server.Deps{
		Config:    cfg,
		DB:        db.DB,
		Redis:     redis,
		JWT:       jwtManager,
		Publisher: publisher,
		Health:    healthHandler,
		Admin: admin.HandlerConfig{
			DBStats:    db.Stats,
			RedisStats: redis.PoolStats,
			DBPing:     db.Ping,
			RedisPing:  redis.Ping,
		},
		Logger: logger,
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	publisher.Close()

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig, addSource bool) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: addSource}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
