// Package analytics arma los indicadores del panel principal y las alertas
// operativas de nivel de tanque.
package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/controlpetro/control-petro-api/internal/application/dto"
	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/repository"
	"github.com/controlpetro/control-petro-api/pkg/logger"
)

// Umbrales de nivel de tanque (porcentaje de llenado).
const (
	criticalPct = 25.0
	lowPct      = 40.0
	warningPct  = 35.0

	// Porcentaje asumido cuando una estación activa no tiene snapshot del día.
	unknownLevelPct = 50.0

	maxAlerts = 15
)

// DashboardUseCase consultas agregadas para el panel y las alertas.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	stationRepo   repository.StationRepository
	predRepo      repository.PredictionRepository
	log           *logger.Logger
	now           func() time.Time
}

// Option configura el caso de uso.
type Option func(*DashboardUseCase)

// WithNow inyecta el reloj (para tests).
func WithNow(now func() time.Time) Option {
	return func(uc *DashboardUseCase) { uc.now = now }
}

// NewDashboardUseCase construye el caso de uso del panel.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	stationRepo repository.StationRepository,
	predRepo repository.PredictionRepository,
	log *logger.Logger,
	opts ...Option,
) *DashboardUseCase {
	uc := &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		stationRepo:   stationRepo,
		predRepo:      predRepo,
		log:           log,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Summary indicadores del día: litros vendidos e ingresos de hoy, variación
// contra ayer, clasificación de estaciones por su tanque más bajo y pedidos
// pendientes de surtir.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	yesterday := today.AddDate(0, 0, -1)

	todaySales, err := uc.analyticsRepo.SoldTotals(ctx, today, tomorrow)
	if err != nil {
		return nil, err
	}
	yesterdaySales, err := uc.analyticsRepo.SoldTotals(ctx, yesterday, today)
	if err != nil {
		return nil, err
	}

	changePct := 0.0
	if yesterdaySales.TotalLiters > 0 {
		changePct = (todaySales.TotalLiters - yesterdaySales.TotalLiters) / yesterdaySales.TotalLiters * 100
	}

	stations, err := uc.stationRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	levels, err := uc.analyticsRepo.TankLevels(ctx, today)
	if err != nil {
		return nil, err
	}

	// Cada estación se clasifica por su tanque más bajo del día.
	worstPct := make(map[string]float64, len(stations))
	for _, lvl := range levels {
		pct, ok := worstPct[lvl.StationID]
		if !ok || lvl.Pct < pct {
			worstPct[lvl.StationID] = lvl.Pct
		}
	}

	var critical, low, normal int
	for _, st := range stations {
		pct, ok := worstPct[st.ID]
		if !ok {
			pct = unknownLevelPct
		}
		switch {
		case pct < criticalPct:
			critical++
		case pct < lowPct:
			low++
		default:
			normal++
		}
	}

	pending, err := uc.predRepo.CountPendingFrom(ctx, today)
	if err != nil {
		return nil, err
	}

	fuelSold := make(map[string]float64, len(entity.AllFuelTypes))
	for _, fuel := range entity.AllFuelTypes {
		fuelSold[string(fuel)] = todaySales.ByFuel[fuel]
	}

	return &dto.DashboardSummaryDTO{
		TotalSoldToday:   todaySales.TotalLiters,
		FuelSold:         fuelSold,
		RevenueToday:     todaySales.Revenue.StringFixed(2),
		ChangePct:        round1(changePct),
		ActiveStations:   len(stations),
		CriticalStations: critical,
		LowStations:      low,
		NormalStations:   normal,
		PendingOrders:    pending,
		Date:             today.Format(dto.DateLayout),
	}, nil
}

// SalesChart ventas diarias por combustible de los últimos `days` días,
// incluyendo hoy. Los días sin ventas aparecen en cero.
func (uc *DashboardUseCase) SalesChart(ctx context.Context, days int) ([]dto.SalesChartDayDTO, error) {
	if days <= 0 {
		days = 7
	}
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -(days - 1))
	to := today.AddDate(0, 0, 1)

	totals, err := uc.analyticsRepo.DailySoldByFuel(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*dto.SalesChartDayDTO, days)
	out := make([]dto.SalesChartDayDTO, days)
	for d := 0; d < days; d++ {
		date := from.AddDate(0, 0, d).Format(dto.DateLayout)
		out[d] = dto.SalesChartDayDTO{Date: date}
		byDay[date] = &out[d]
	}
	for _, t := range totals {
		row, ok := byDay[t.Day.Format(dto.DateLayout)]
		if !ok {
			continue
		}
		switch t.FuelType {
		case entity.FuelMagna:
			row.Magna = t.Liters
		case entity.FuelPremium:
			row.Premium = t.Liters
		case entity.FuelDiesel:
			row.Diesel = t.Liters
		}
		row.Total += t.Liters
	}
	return out, nil
}

// Alerts alertas de nivel de tanque de hoy: crítico bajo 25%, advertencia
// bajo 35%. Las críticas van primero y el total se corta en 15.
func (uc *DashboardUseCase) Alerts(ctx context.Context) ([]dto.AlertDTO, error) {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	levels, err := uc.analyticsRepo.TankLevels(ctx, today)
	if err != nil {
		return nil, err
	}

	var alerts []dto.AlertDTO
	for _, lvl := range levels {
		if lvl.Capacity <= 0 || lvl.Pct >= warningPct {
			continue
		}
		alertType := "warning"
		if lvl.Pct < criticalPct {
			alertType = "critical"
		}
		alerts = append(alerts, dto.AlertDTO{
			Type:    alertType,
			Station: lvl.StationName,
			Message: fmt.Sprintf("%s: tanque de %s al %.1f%% (%.0f L)", lvl.StationName, lvl.FuelType, lvl.Pct, lvl.LitersOnHand),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Type == "critical" && alerts[j].Type != "critical"
	})
	if len(alerts) > maxAlerts {
		alerts = alerts[:maxAlerts]
	}
	return alerts, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
