package main

import (
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hhtransportationtx/dispatch/internal/pkg/config"
	"github.com/hhtransportationtx/dispatch/internal/pkg/database"
	"github.com/hhtransportationtx/dispatch/internal/pkg/health"
	"github.com/hhtransportationtx/dispatch/internal/pkg/logger"
	"github.com/hhtransportationtx/dispatch/internal/pkg/middleware"
	"github.com/hhtransportationtx/dispatch/internal/pkg/nats"
	dispatchgw "github.com/hhtransportationtx/dispatch/services/dispatch/gateway"
	dispatchhttp "github.com/hhtransportationtx/dispatch/services/dispatch/handler/http"
	dispatchrepo "github.com/hhtransportationtx/dispatch/services/dispatch/repository"
	dispatchuc "github.com/hhtransportationtx/dispatch/services/dispatch/usecase"
	trackinghttp "github.com/hhtransportationtx/dispatch/services/tracking/handler/http"
	trackingnats "github.com/hhtransportationtx/dispatch/services/tracking/handler/nats"
	trackingrepo "github.com/hhtransportationtx/dispatch/services/tracking/repository"
	trackinguc "github.com/hhtransportationtx/dispatch/services/tracking/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsClient.Close()

	// Initialize dispatch service
	dispatchRepo := dispatchrepo.NewDispatchRepository(configs, postgresClient.GetDB(), redisClient)
	dispatchGW, err := dispatchgw.NewDispatchGW(natsClient, configs.Maps.APIKey)
	if err != nil {
		log.Fatalf("Failed to initialize dispatch gateway: %v", err)
	}
	dispatchUC := dispatchuc.NewDispatchUC(configs, dispatchRepo, dispatchGW)

	scheduler := dispatchuc.NewScheduler(dispatchUC,
		time.Duration(configs.Dispatch.IntervalSeconds)*time.Second)
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize tracking service
	trackingRepo := trackingrepo.NewTrackingRepository(redisClient)
	trackingUC := trackinguc.NewTrackingUC(configs, trackingRepo)

	trackingHandler := trackingnats.NewTrackingHandler(trackingUC, natsClient)
	if err := trackingHandler.InitConsumers(); err != nil {
		log.Fatalf("Failed to initialize tracking consumers: %v", err)
	}
	defer trackingHandler.Close()

	// Initialize Echo server
	e := echo.New()

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	dispatchGroup := e.Group("/dispatch", middleware.JWTAuthMiddleware(configs.JWT))
	dispatchhttp.NewDispatchHandler(dispatchUC, scheduler).RegisterRoutes(dispatchGroup)

	trackingGroup := e.Group("/tracking", middleware.JWTAuthMiddleware(configs.JWT))
	trackinghttp.NewTrackingHandler(trackingUC).RegisterRoutes(trackingGroup)

	// Start server
	log.Printf("Starting %s on port %d", appName, configs.Server.Port)
	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		log.Fatalf("Failed to start %s: %v", appName, err)
	}
}
