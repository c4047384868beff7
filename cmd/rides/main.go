package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/config"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/health"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/logger"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/middleware"
	nrpkg "github.com/piresc/nebengjek-ride-demo/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/server"
	"github.com/piresc/nebengjek-ride-demo/internal/pkg/websocket"
	"github.com/piresc/nebengjek-ride-demo/services/rides/handler"
	"github.com/piresc/nebengjek-ride-demo/services/rides/handler/http"
	wshandler "github.com/piresc/nebengjek-ride-demo/services/rides/handler/websocket"
	"github.com/piresc/nebengjek-ride-demo/web"
)

func main() {
	configPath := "config/rides.env"
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	if err := config.ValidateRidesConfig(configs.Rides); err != nil {
		zapLogger.Fatal("Invalid rides configuration", logger.Err(err))
	}
	zapLogger.Sugar().Infof("Driver simulation: %d steps every %dms, assignment after %d-%dms, %.1f km away",
		configs.Rides.TotalSteps, configs.Rides.TickIntervalMs,
		configs.Rides.AssignDelayMinMs, configs.Rides.AssignDelayMaxMs, configs.Rides.DriverDistanceKm)

	// Initialize handlers
	wsManager := websocket.NewManager()
	pageHandler, err := http.NewPageHandler(web.Assets)
	if err != nil {
		zapLogger.Fatal("Failed to load web assets", logger.Err(err))
	}
	rideWSHandler := wshandler.NewRideWebSocketHandler(wsManager, configs.Rides)
	rideHandler := handler.NewHandler(pageHandler, rideWSHandler)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	if configs.Server.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	}
	if configs.Server.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second
	}

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, wsManager)
	rideHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(ctx context.Context) error {
		wsManager.CloseAll()
		return nil
	})
	if nrApp != nil {
		srv.OnShutdown(func(ctx context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
