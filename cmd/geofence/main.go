package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/hhtransportationtx/dispatch/internal/pkg/config"
	"github.com/hhtransportationtx/dispatch/internal/pkg/database"
	"github.com/hhtransportationtx/dispatch/internal/pkg/health"
	"github.com/hhtransportationtx/dispatch/internal/pkg/logger"
	"github.com/hhtransportationtx/dispatch/internal/pkg/middleware"
	"github.com/hhtransportationtx/dispatch/internal/pkg/nats"
	"github.com/hhtransportationtx/dispatch/internal/pkg/nsq"
	geofencegw "github.com/hhtransportationtx/dispatch/services/geofence/gateway"
	geofencehttp "github.com/hhtransportationtx/dispatch/services/geofence/handler/http"
	geofencenats "github.com/hhtransportationtx/dispatch/services/geofence/handler/nats"
	geofencerepo "github.com/hhtransportationtx/dispatch/services/geofence/repository"
	geofenceuc "github.com/hhtransportationtx/dispatch/services/geofence/usecase"
)

func main() {
	appName := "geofence-service"
	configPath := "config/geofence.env"
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

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsClient.Close()

	// Initialize NSQ producer for alert fan-out
	producer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		log.Fatalf("Failed to connect to NSQ: %v", err)
	}
	defer producer.Stop()

	// Initialize geofence service
	geofenceRepo := geofencerepo.NewGeofenceRepository(configs, postgresClient.GetDB())
	geofenceGW := geofencegw.NewGeofenceGW(configs, producer)
	geofenceUC := geofenceuc.NewGeofenceUC(configs, geofenceRepo, geofenceGW)

	geofenceHandler := geofencenats.NewGeofenceHandler(geofenceUC, natsClient)
	if err := geofenceHandler.InitConsumers(); err != nil {
		log.Fatalf("Failed to initialize geofence consumers: %v", err)
	}
	defer geofenceHandler.Close()

	// Initialize Echo server
	e := echo.New()

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	areaGroup := e.Group("/geofence", middleware.JWTAuthMiddleware(configs.JWT))
	geofencehttp.NewAreaHandler(geofenceUC).RegisterRoutes(areaGroup)

	// Start server
	log.Printf("Starting %s on port %d", appName, configs.Server.Port)
	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		log.Fatalf("Failed to start %s: %v", appName, err)
	}
}
