package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/witoldp/petcare-backend/internal/access"
	"github.com/witoldp/petcare-backend/internal/config"
	"github.com/witoldp/petcare-backend/internal/database"
	"github.com/witoldp/petcare-backend/internal/handlers"
	"github.com/witoldp/petcare-backend/internal/logging"
	"github.com/witoldp/petcare-backend/internal/middleware"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/repository"
	"github.com/witoldp/petcare-backend/internal/routes"
	"github.com/witoldp/petcare-backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	jwtKey, err := cfg.JWTKey()
	if err != nil {
		slog.Error("invalid JWT configuration", "error", err)
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(2)
	}
	if err := database.Migrate(database.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(2)
	}

	if cfg.Seed {
		if err := database.Seed(database.DB); err != nil {
			slog.Error("seeding failed", "error", err)
			os.Exit(2)
		}
		slog.Info("demo data seeded")
	}

	// DB log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Repositories
	users := repository.NewUsers(database.DB)
	pets := repository.NewPets(database.DB)
	vets := repository.NewVets(database.DB)
	visits := repository.NewVisits(database.DB)
	records := repository.NewRecords(database.DB)

	// Services
	policy := access.NewPolicy()
	authService := services.NewAuthService(users, jwtKey, cfg.JWTTTL)
	userService := services.NewUserService(users, pets, vets)
	petService := services.NewPetService(pets, users, policy)
	vetService := services.NewVetService(vets)
	availability := services.NewAvailabilityService(vets)
	visitService := services.NewVisitService(database.DB, visits, pets, vets, policy, availability)
	recordService := services.NewRecordService(records, visits, pets, vets, policy)

	// Handlers
	resolver := principal.NewResolver(users)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	petHandler := handlers.NewPetHandler(petService)
	vetHandler := handlers.NewVetHandler(vetService, availability)
	visitHandler := handlers.NewVisitHandler(visitService, vetService)
	recordHandler := handlers.NewRecordHandler(recordService, vetService)
	healthHandler := handlers.NewHealthHandler()

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, jwtKey, resolver,
		authHandler, userHandler, petHandler, vetHandler,
		visitHandler, recordHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}
