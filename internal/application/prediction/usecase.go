// Package prediction expone el motor de pronóstico de demanda y de
// recomendaciones de reposición de combustible.
package prediction

import (
	"context"
	"math"
	"time"

	"github.com/controlpetro/control-petro-api/internal/application/dto"
	"github.com/controlpetro/control-petro-api/internal/domain"
	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/forecast"
	"github.com/controlpetro/control-petro-api/internal/domain/repository"
	"github.com/controlpetro/control-petro-api/pkg/logger"
)

// Policy parámetros de la política de reposición. Como los umbrales del
// pronóstico, son valores calibrados empíricamente y van como configuración.
type Policy struct {
	// HistoryWindowDays ventana de historial de ventas que alimenta cada pronóstico.
	HistoryWindowDays int
	// HorizonDays horizonte del pronóstico usado al evaluar pedidos.
	HorizonDays int
	// OrderHorizonHours horizonte por defecto de una corrida de recomendaciones.
	OrderHorizonHours int
	// SafetyThresholdPct fracción de capacidad considerada reserva de seguridad.
	SafetyThresholdPct float64
	// TargetFillPct nivel de llenado objetivo de un pedido.
	TargetFillPct float64
	// RoundingUnitLiters unidad de redondeo de la cantidad pedida.
	RoundingUnitLiters float64
	// MinOrderLiters pedidos menores se suprimen: no ameritan despachar una pipa.
	MinOrderLiters float64
	// GateBufferDays margen sobre el horizonte para no pedir lo que llegaría
	// holgadamente antes de tocar la reserva.
	GateBufferDays float64
	// Workers paralelismo del lote (los pares estación/combustible son independientes).
	Workers int
	// Forecast política del pronóstico de demanda.
	Forecast forecast.Policy
}

// DefaultPolicy política de reposición con los valores de producción.
func DefaultPolicy() Policy {
	return Policy{
		HistoryWindowDays:  30,
		HorizonDays:        forecast.DefaultHorizonDays,
		OrderHorizonHours:  72,
		SafetyThresholdPct: 0.15,
		TargetFillPct:      0.85,
		RoundingUnitLiters: 500,
		MinOrderLiters:     1000,
		GateBufferDays:     2,
		Workers:            8,
		Forecast:           forecast.DefaultPolicy(),
	}
}

// UseCase casos de uso de pronóstico y recomendación de pedidos.
type UseCase struct {
	stationRepo repository.StationRepository
	txRepo      repository.FuelTransactionRepository
	snapRepo    repository.InventorySnapshotRepository
	predRepo    repository.PredictionRepository
	policy      Policy
	log         *logger.Logger
	now         func() time.Time
}

// Option configura el caso de uso.
type Option func(*UseCase)

// WithNow inyecta el reloj (para tests y corridas reproducibles).
func WithNow(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// NewUseCase construye el caso de uso de predicciones.
func NewUseCase(
	stationRepo repository.StationRepository,
	txRepo repository.FuelTransactionRepository,
	snapRepo repository.InventorySnapshotRepository,
	predRepo repository.PredictionRepository,
	policy Policy,
	log *logger.Logger,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		stationRepo: stationRepo,
		txRepo:      txRepo,
		snapRepo:    snapRepo,
		predRepo:    predRepo,
		policy:      policy,
		log:         log,
		now:         time.Now,
	}
	if uc.policy.Workers <= 0 {
		uc.policy.Workers = 1
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Forecast pronostica la demanda diaria de un par estación/combustible.
// Devuelve domain.ErrInsufficientData si el historial no alcanza.
func (uc *UseCase) Forecast(ctx context.Context, stationID string, fuel entity.FuelType, horizonDays int) (*dto.DemandForecastDTO, error) {
	if !fuel.Valid() {
		return nil, domain.ErrInvalidInput
	}
	fc, err := uc.predict(ctx, stationID, fuel, horizonDays, dateOf(uc.now()))
	if err != nil {
		return nil, err
	}
	return toForecastDTO(stationID, fuel, fc), nil
}

// StationOutlook combina inventario vigente, pronóstico y días de cobertura
// para un par estación/combustible.
func (uc *UseCase) StationOutlook(ctx context.Context, stationID string, fuel entity.FuelType) (*dto.StationOutlookDTO, error) {
	if !fuel.Valid() {
		return nil, domain.ErrInvalidInput
	}
	station, err := uc.stationRepo.GetByID(ctx, stationID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, domain.ErrStationNotFound
	}

	fc, err := uc.predict(ctx, stationID, fuel, uc.policy.HorizonDays, dateOf(uc.now()))
	if err != nil {
		return nil, err
	}

	out := &dto.StationOutlookDTO{
		Station:  dto.StationSummaryDTO{ID: station.ID, Code: station.Code, Name: station.Name},
		FuelType: string(fuel),
		Demand:   toForecastDTO(stationID, fuel, fc),
	}

	snap, err := uc.snapRepo.GetLatest(ctx, stationID, fuel)
	if err != nil {
		return nil, err
	}
	if snap != nil {
		out.CurrentInventory = &dto.InventoryLevelDTO{
			Liters:   snap.LitersOnHand,
			Capacity: snap.Capacity,
			Date:     snap.SnapshotDate.Format(dto.DateLayout),
		}
		daysLeft := round1(forecast.DaysUntilEmpty(
			snap.LitersOnHand, fc.AvgDailyLiters, station.CapacityFor(fuel), uc.policy.SafetyThresholdPct,
		))
		out.DaysUntilEmpty = &daysLeft
	}
	return out, nil
}

// predict lee el historial y corre el pronóstico de dominio.
func (uc *UseCase) predict(ctx context.Context, stationID string, fuel entity.FuelType, horizonDays int, today time.Time) (*forecast.DemandForecast, error) {
	since := today.AddDate(0, 0, -uc.policy.HistoryWindowDays)
	series, err := uc.txRepo.DailySalesTotals(ctx, stationID, fuel, since)
	if err != nil {
		return nil, err
	}
	return forecast.Predict(series, horizonDays, today, uc.policy.Forecast)
}

func toForecastDTO(stationID string, fuel entity.FuelType, fc *forecast.DemandForecast) *dto.DemandForecastDTO {
	predictions := make([]dto.DayPredictionDTO, 0, len(fc.Days))
	for _, day := range fc.Days {
		predictions = append(predictions, dto.DayPredictionDTO{
			Date:            day.Date.Format(dto.DateLayout),
			PredictedLiters: day.PredictedLiters,
			DowMultiplier:   day.WeekdayFactor,
		})
	}
	return &dto.DemandForecastDTO{
		StationID:   stationID,
		FuelType:    string(fuel),
		HorizonDays: fc.HorizonDays,
		AvgDaily:    fc.AvgDailyLiters,
		Trend:       fc.DailyTrendLiters,
		Confidence:  fc.Confidence,
		Predictions: predictions,
	}
}

// dateOf trunca un instante a su fecha calendario (medianoche local).
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
