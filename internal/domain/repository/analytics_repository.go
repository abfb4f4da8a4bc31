package repository

import (
	"context"
	"time"

	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SoldTotalsResult litros vendidos e ingresos de un período, por combustible.
type SoldTotalsResult struct {
	TotalLiters  float64
	ByFuel       map[entity.FuelType]float64
	Revenue      decimal.Decimal // SUM(liters * price_per_liter) sobre ventas con precio registrado
}

// FuelDayTotal litros vendidos de un combustible en un día.
type FuelDayTotal struct {
	Day      time.Time
	FuelType entity.FuelType
	Liters   float64
}

// FlowDay litros recibidos y vendidos (toda la flota) en un día.
type FlowDay struct {
	Day      time.Time
	Received float64
	Sold     float64
}

// DayVolume litros totales en existencia (toda la flota) en una fecha de snapshot.
type DayVolume struct {
	Day    time.Time
	Liters float64
}

// StationFuelLevel nivel de un tanque en una fecha, con la capacidad de la estación.
type StationFuelLevel struct {
	StationID    string
	StationName  string
	FuelType     entity.FuelType
	LitersOnHand float64
	Capacity     float64
	Pct          float64 // 0-100; 0 si la capacidad es desconocida
}

// AnalyticsRepository consultas agregadas de solo lectura para el dashboard y alertas.
type AnalyticsRepository interface {
	// SoldTotals ventas agregadas en [from, to).
	SoldTotals(ctx context.Context, from, to time.Time) (*SoldTotalsResult, error)
	// DailySoldByFuel ventas por día y combustible en [from, to), orden ascendente por día.
	DailySoldByFuel(ctx context.Context, from, to time.Time) ([]FuelDayTotal, error)
	// DailyFlows recibido vs vendido por día en [from, to), orden ascendente.
	DailyFlows(ctx context.Context, from, to time.Time) ([]FlowDay, error)
	// DailyOnHand existencia total por fecha de snapshot en [from, to], orden ascendente.
	DailyOnHand(ctx context.Context, from, to time.Time) ([]DayVolume, error)
	// TankLevels niveles de todos los tanques de estaciones activas en una fecha.
	TankLevels(ctx context.Context, date time.Time) ([]StationFuelLevel, error)
	// CapacityTotals capacidad instalada total por combustible (estaciones activas).
	CapacityTotals(ctx context.Context) (map[entity.FuelType]float64, error)
}
