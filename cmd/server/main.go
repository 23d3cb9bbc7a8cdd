// Package main is the entry point for the SkyRoutes flight booking service.
//
//	@title						SkyRoutes Flight Booking API
//	@version					1.0.0
//	@description				A demo flight booking service with mock inventory: search flights, create and confirm bookings, and download e-tickets.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skyroutes/flight-booking-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/skyroutes/flight-booking-service/internal/config"

	// Import generated docs for swagger
	_ "github.com/skyroutes/flight-booking-service/docs"

	// Application layers
	bookinghttp "github.com/skyroutes/flight-booking-service/internal/adapter/http"
	"github.com/skyroutes/flight-booking-service/internal/adapter/http/middleware"
	"github.com/skyroutes/flight-booking-service/internal/adapter/store"
	"github.com/skyroutes/flight-booking-service/internal/generator"
	"github.com/skyroutes/flight-booking-service/internal/infrastructure/logger"
	"github.com/skyroutes/flight-booking-service/internal/infrastructure/timeutil"
	"github.com/skyroutes/flight-booking-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLogger := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, appLogger.Logger)

	// Setup routes
	setupRoutes(e, cfg)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger builds the application logger from config and installs it as
// the package-global logger.
func setupLogger(cfg *config.Config) *logger.Logger {
	appLogger := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "skyroutes",
	})
	logger.SetGlobal(appLogger)
	log.Logger = appLogger.Logger
	return appLogger
}

// setupRoutes wires the application layers and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	clock := timeutil.NewRealClock()

	// Mock inventory source
	var genCfg *generator.Config
	if cfg.Inventory.Seed != 0 {
		genCfg = &generator.Config{Seed: cfg.Inventory.Seed}
	}
	inventory := generator.New(clock, genCfg)

	// In-memory booking store; bookings do not survive restarts
	bookingStore := store.NewMemory()

	// Use cases
	searchUseCase := usecase.NewSearchUseCase(inventory, clock)
	bookingUseCase := usecase.NewBookingUseCase(bookingStore, clock)

	// Handler and routes
	handler := bookinghttp.NewHandler(searchUseCase, bookingUseCase)
	bookinghttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
