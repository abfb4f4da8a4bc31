package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/controlpetro/control-petro-api/internal/application/analytics"
	"github.com/controlpetro/control-petro-api/internal/application/auth"
	"github.com/controlpetro/control-petro-api/internal/application/inventory"
	"github.com/controlpetro/control-petro-api/internal/application/prediction"
	"github.com/controlpetro/control-petro-api/internal/application/usecase"
	"github.com/controlpetro/control-petro-api/internal/infrastructure/postgres"
	httpRouter "github.com/controlpetro/control-petro-api/internal/interfaces/http"
	"github.com/controlpetro/control-petro-api/pkg/config"
	"github.com/controlpetro/control-petro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	stationRepo := postgres.NewStationRepository(pool)
	txRepo := postgres.NewFuelTransactionRepository(pool)
	snapRepo := postgres.NewInventorySnapshotRepository(pool)
	predRepo := postgres.NewPredictionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	policy := prediction.DefaultPolicy()
	policy.HistoryWindowDays = cfg.Forecast.HistoryWindowDays
	policy.HorizonDays = cfg.Forecast.HorizonDays
	policy.OrderHorizonHours = cfg.Forecast.OrderHorizonHours
	policy.SafetyThresholdPct = cfg.Forecast.MinThresholdPct
	policy.TargetFillPct = cfg.Forecast.TargetFillPct
	policy.Workers = cfg.Forecast.Workers

	predictionUC := prediction.NewUseCase(stationRepo, txRepo, snapRepo, predRepo, policy, log)
	inventoryUC := inventory.NewUseCase(txRunner, stationRepo, analyticsRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, stationRepo, predRepo, log)
	stationUC := usecase.NewStationUseCase(stationRepo, snapRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Control Petro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		StationUC:    stationUC,
		InventoryUC:  inventoryUC,
		DashboardUC:  dashboardUC,
		PredictionUC: predictionUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
