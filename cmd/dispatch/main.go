package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/config"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/database"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/health"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/logger"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/middleware"
	natspkg "github.com/eshaatri/homewash-dispatch/internal/pkg/nats"
	nrpkg "github.com/eshaatri/homewash-dispatch/internal/pkg/newrelic"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/server"
	wspkg "github.com/eshaatri/homewash-dispatch/internal/pkg/websocket"
	natsGateway "github.com/eshaatri/homewash-dispatch/services/dispatch/gateway/nats"
	"github.com/eshaatri/homewash-dispatch/services/dispatch/handler"
	httpHandler "github.com/eshaatri/homewash-dispatch/services/dispatch/handler/http"
	wsHandler "github.com/eshaatri/homewash-dispatch/services/dispatch/handler/websocket"
	"github.com/eshaatri/homewash-dispatch/services/dispatch/repository"
	"github.com/eshaatri/homewash-dispatch/services/dispatch/tracker"
	"github.com/eshaatri/homewash-dispatch/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/dispatch.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// In-memory presence and location stores; state resets on restart
	presence := tracker.NewPresence()
	locations := tracker.NewLocations()

	// Initialize repositories
	bookingRepo := repository.NewBookingRepo(configs, postgresClient.GetDB())
	professionalRepo := repository.NewProfessionalRepo(configs, postgresClient.GetDB())
	geoRepo := repository.NewGeoRepo(redisClient)

	// Initialize Gateway
	dispatchGW := natsGateway.NewDispatchGW(natsClient)

	// Initialize UseCase
	dispatchUC := usecase.NewDispatchUC(configs, presence, locations,
		bookingRepo, professionalRepo, geoRepo, dispatchGW)

	// Handlers for HTTP
	bookingHandler := httpHandler.NewBookingHandler(dispatchUC)
	adminHandler := httpHandler.NewAdminHandler(dispatchUC)

	// Handlers for WebSocket
	manager := wspkg.NewManager(configs.JWT)
	presenceHandler := wsHandler.NewDispatchHandler(manager, dispatchUC)

	// Initialize handlers
	h := handler.NewHandler(bookingHandler, adminHandler, presenceHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
