package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/controlpetro/control-petro-api/internal/application/analytics"
	"github.com/controlpetro/control-petro-api/internal/application/auth"
	"github.com/controlpetro/control-petro-api/internal/application/inventory"
	"github.com/controlpetro/control-petro-api/internal/application/prediction"
	"github.com/controlpetro/control-petro-api/internal/application/usecase"
	"github.com/controlpetro/control-petro-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	StationUC    *usecase.StationUseCase
	InventoryUC  *inventory.UseCase
	DashboardUC  *analytics.DashboardUseCase
	PredictionUC *prediction.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stations: el alta queda reservada a admin
	stations := protected.Group("/stations")
	stationHandler := NewStationHandler(deps.StationUC)
	stations.Get("/", stationHandler.List)
	stations.Post("/", RequireRole(entity.RoleAdmin), stationHandler.Create)
	stations.Get("/:id", stationHandler.GetByID)

	// Inventory
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/transactions", inventoryHandler.RegisterTransaction)
	invGroup.Get("/summary", inventoryHandler.Summary)
	invGroup.Get("/history", inventoryHandler.History)

	// Dashboard y alertas
	dashGroup := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashGroup.Get("/summary", dashboardHandler.Summary)
	dashGroup.Get("/sales-chart", dashboardHandler.SalesChart)
	protected.Get("/alerts", dashboardHandler.Alerts)

	// Predicciones
	predGroup := protected.Group("/predictions")
	predictionHandler := NewPredictionHandler(deps.PredictionUC)
	predGroup.Get("/recommendations", predictionHandler.Recommendations)
	predGroup.Get("/forecast", predictionHandler.FleetForecast)
	predGroup.Get("/station/:id/:fuel", predictionHandler.StationOutlook)
}
