package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mealdrop/cmd"
	"mealdrop/internal/adapters/out/postgres/courierrepo"
	"mealdrop/internal/adapters/out/postgres/orderrepo"
	"mealdrop/internal/adapters/out/postgres/requestrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	envFile := pflag.String("env-file", ".env", "path to the environment file")
	pflag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := loadConfig(*envFile, logger)

	db, err := gorm.Open(gorm_postgres.Open(config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&requestrepo.DeliveryRequestDTO{},
	); err != nil {
		logger.Error("failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, db, logger)

	hub := root.NewWebSocketHub()
	defer hub.Close()

	jobManager := root.NewJobManager(hub)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/ws", hub.Handle)

	root.NewHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && err != http.ErrServerClosed {
			logger.Error("http server stopped", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}

// loadConfig reads configuration from the environment, with the env file as a
// fallback source. Missing optional values get sensible defaults.
func loadConfig(envFile string, logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(envFile); err != nil {
		logger.Info("no env file loaded, relying on process environment", "path", envFile)
	}

	return cmd.Config{
		HTTPPort:          envOr("HTTP_PORT", "8080"),
		DBHost:            envOr("DB_HOST", "localhost"),
		DBPort:            envOr("DB_PORT", "5432"),
		DBUser:            envOr("DB_USER", "postgres"),
		DBPassword:        envOr("DB_PASSWORD", "postgres"),
		DBName:            envOr("DB_NAME", "mealdrop"),
		DBSslMode:         envOr("DB_SSLMODE", "disable"),
		RequestTimeout:    envDuration("REQUEST_TIMEOUT", 2*time.Minute, logger),
		MinimumOrderValue: envInt64("MINIMUM_ORDER_VALUE", 1000, logger),
	}
}

func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration, logger *slog.Logger) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		logger.Warn("invalid duration, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return d
}

func envInt64(key string, fallback int64, logger *slog.Logger) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("invalid integer, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return v
}
