package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"adtrack-service/internal/config"

	eventsHttp "adtrack-service/internal/events/adapters/http/fiber"
	eventsRepoPg "adtrack-service/internal/events/adapters/postgres"
	eventsUsecase "adtrack-service/internal/events/core/usecase"

	analyticsHttp "adtrack-service/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "adtrack-service/internal/analytics/adapters/postgres"
	analyticsUsecase "adtrack-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "adtrack-service/docs"
)

// @title AdTrack Service API
// @version 1.0
// @description Records ad interaction events and serves aggregate analytics over them.
// @BasePath /
func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zl.Sync()
	log := zl.Sugar()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnLifetime())

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Adapter-level DB wrappers
	eventsDB := eventsRepoPg.NewSQLDB(db)
	analyticsDB := analyticsRepoPg.NewSQLDB(db)

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(eventsDB)
	eventReader := analyticsRepoPg.NewEventReader(analyticsDB)

	// Usecases
	recordEventUC := eventsUsecase.NewRecordEventUseCase(eventRepository)
	getAnalyticsUC := analyticsUsecase.NewGetAnalyticsUseCase(eventReader)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "service is running"})
	})

	// ingestion endpoints
	eventsHandler := eventsHttp.NewEventHandler(recordEventUC)
	app.Post("/events", eventsHandler.CreateEvent)
	app.Post("/events/batch", eventsHandler.BatchCreateEvents)

	// analytics endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(getAnalyticsUC)
	app.Get("/stats", analyticsHandler.GetStats)
	app.Get("/events", analyticsHandler.GetTimeframeEvents)
	app.Get("/analytics/packages/:packageId", analyticsHandler.GetPackageAnalytics)
	app.Get("/analytics/ads/:adId", analyticsHandler.GetAdAnalytics)
	app.Get("/analytics/daily-views", analyticsHandler.GetDailyViewSeries)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Infof("fiber stopped: %v", err)
		}
	}()

	log.Infof("server started on :%s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace())
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("fiber shutdown error: %v", err)
	}

	log.Info("server exiting")
}
