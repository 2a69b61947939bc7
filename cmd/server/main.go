package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/config"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/database"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/handlers"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/logging"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/middleware"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/routes"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Connect to Database. The server runs without one and reports it as unavailable.
	var pool *pgxpool.Pool
	if cfg.DBUrl == "" {
		logging.Warn().Msg("DB_URL is not set, starting without a database")
	} else {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		pool, err = database.ConnectDB(connectCtx, cfg.DBUrl)
		cancel()
		if err != nil {
			logging.Warn().Err(err).Msg("database unavailable, starting without it")
			pool = nil
		}
	}
	defer database.CloseDB(pool)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = middleware.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			logging.Warn().Err(err).Msg("redis unavailable, inquiries are not rate limited")
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	// 3. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "fitness-challenge-90",
		ErrorHandler: handlers.ErrorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowCredentials: cfg.CORSAllowOrigins != "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    middleware.RequestIDHeader + ", Content-Disposition",
	}))
	if cfg.IsDevelopment() {
		app.Use(logger.New())
	}
	app.Use(middleware.AccessLog())

	// Routes
	if err := routes.RegisterRoutes(app, cfg, pool, rdb); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// 4. Start Server
	go func() {
		<-ctx.Done()
		logging.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logging.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	logging.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logging.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}
