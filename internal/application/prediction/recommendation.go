package prediction

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/controlpetro/control-petro-api/internal/application/dto"
	"github.com/controlpetro/control-petro-api/internal/domain"
	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/forecast"
)

// Horas de entrega por urgencia: las pipas urgentes llegan antes de abrir.
const (
	urgentDeliveryHour = 6
	highDeliveryHour   = 8
	normalDeliveryHour = 7
)

// candidate recomendación calculada para un par, antes de rankear y persistir.
type candidate struct {
	rec dto.OrderRecommendationDTO
	ent *entity.Prediction
}

// RecommendOrders evalúa cada par (estación activa, combustible) y produce la
// lista rankeada de pedidos sugeridos dentro del horizonte. Cada par se evalúa
// de forma independiente y en paralelo; un par sin datos suficientes o sin
// inventario registrado se omite sin afectar al resto del lote. Las
// recomendaciones que sobreviven se persisten en un solo lote.
func (uc *UseCase) RecommendOrders(ctx context.Context, horizonHours int) ([]dto.OrderRecommendationDTO, error) {
	if horizonHours <= 0 {
		horizonHours = uc.policy.OrderHorizonHours
	}
	horizonDays := float64(horizonHours) / 24

	stations, err := uc.stationRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar estaciones activas: %w", err)
	}

	today := dateOf(uc.now())
	generatedAt := uc.now()

	var (
		mu         sync.Mutex
		candidates []candidate
		skipped    int
		failed     int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.policy.Workers)

	for _, station := range stations {
		for _, fuel := range entity.AllFuelTypes {
			station, fuel := station, fuel
			g.Go(func() error {
				cand, err := uc.evaluatePair(gctx, station, fuel, horizonDays, today, generatedAt)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case errors.Is(err, domain.ErrInsufficientData), errors.Is(err, domain.ErrNoInventoryData):
					skipped++
				case err != nil:
					// Falla de un par: se registra y el lote continúa.
					failed++
					uc.log.Warn().Err(err).
						Str("station_id", station.ID).
						Str("fuel_type", string(fuel)).
						Msg("par omitido en la corrida de recomendaciones")
				case cand != nil:
					candidates = append(candidates, *cand)
				}
				return nil
			})
		}
	}
	_ = g.Wait() // los workers nunca devuelven error; el lote tolera fallas parciales

	// Ranking: urgente < alta < normal; a igual urgencia, menos días restantes primero.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].rec, candidates[j].rec
		if ra, rb := entity.UrgencyRank(a.Urgency), entity.UrgencyRank(b.Urgency); ra != rb {
			return ra < rb
		}
		return a.DaysUntilEmpty < b.DaysUntilEmpty
	})

	recs := make([]dto.OrderRecommendationDTO, 0, len(candidates))
	ents := make([]*entity.Prediction, 0, len(candidates))
	for _, c := range candidates {
		recs = append(recs, c.rec)
		ents = append(ents, c.ent)
	}

	if err := uc.predRepo.CreateBatch(ctx, ents); err != nil {
		return nil, fmt.Errorf("persistir recomendaciones: %w", err)
	}

	uc.log.Info().
		Int("recommendations", len(recs)).
		Int("skipped", skipped).
		Int("failed", failed).
		Int("horizon_hours", horizonHours).
		Msg("corrida de recomendaciones completada")

	return recs, nil
}

// evaluatePair aplica la política de reposición a un par estación/combustible.
// Devuelve (nil, nil) cuando el par no amerita pedido dentro del horizonte.
func (uc *UseCase) evaluatePair(
	ctx context.Context,
	station *entity.Station,
	fuel entity.FuelType,
	horizonDays float64,
	today, generatedAt time.Time,
) (*candidate, error) {
	snap, err := uc.snapRepo.GetLatest(ctx, station.ID, fuel)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, domain.ErrNoInventoryData
	}

	fc, err := uc.predict(ctx, station.ID, fuel, uc.policy.HorizonDays, today)
	if err != nil {
		return nil, err
	}

	capacity := station.CapacityFor(fuel)
	var currentPct float64
	if capacity > 0 {
		currentPct = snap.LitersOnHand / capacity * 100
	}

	daysLeft := forecast.DaysUntilEmpty(snap.LitersOnHand, fc.AvgDailyLiters, capacity, uc.policy.SafetyThresholdPct)

	// Gate: si el tanque aguanta más allá del horizonte (+margen), no hay pedido.
	if daysLeft > horizonDays+uc.policy.GateBufferDays {
		return nil, nil
	}

	// Cantidad: llenar al objetivo más un día de consumo, que compensa lo
	// vendido entre la decisión y la entrega.
	targetFill := capacity * uc.policy.TargetFillPct
	orderLiters := math.Max(0, targetFill-snap.LitersOnHand+fc.AvgDailyLiters)
	orderLiters = math.Round(orderLiters/uc.policy.RoundingUnitLiters) * uc.policy.RoundingUnitLiters
	if orderLiters < uc.policy.MinOrderLiters {
		return nil, nil
	}

	var urgency string
	switch {
	case daysLeft <= 1:
		urgency = entity.UrgencyUrgent
	case daysLeft <= 2:
		urgency = entity.UrgencyHigh
	default:
		urgency = entity.UrgencyNormal
	}

	deliveryAt := deliveryTime(today, urgency, daysLeft)

	reason := fmt.Sprintf(
		"Nivel actual: %.0f%% (%.0fL). Demanda promedio: %.0fL/dia. Dias restantes estimados: %.1f.",
		currentPct, snap.LitersOnHand, fc.AvgDailyLiters, daysLeft,
	)

	ent := &entity.Prediction{
		ID:                uuid.New().String(),
		StationID:         station.ID,
		FuelType:          fuel,
		RecommendedLiters: orderLiters,
		RecommendedDate:   deliveryAt,
		Urgency:           urgency,
		Confidence:        fc.Confidence,
		Reason:            reason,
		Fulfilled:         false,
		CreatedAt:         generatedAt,
	}

	rec := dto.OrderRecommendationDTO{
		StationID:         station.ID,
		StationCode:       station.Code,
		StationName:       station.Name,
		StationAddress:    station.Address,
		FuelType:          string(fuel),
		CurrentLiters:     math.Round(snap.LitersOnHand),
		CurrentPct:        round1(currentPct),
		Capacity:          capacity,
		RecommendedLiters: orderLiters,
		RecommendedDate:   deliveryAt.Format(dto.DateTimeLayout),
		Urgency:           urgency,
		DaysUntilEmpty:    round1(daysLeft),
		AvgDailyDemand:    fc.AvgDailyLiters,
		Confidence:        fc.Confidence,
		Reason:            reason,
		Trend:             fc.DailyTrendLiters,
	}

	return &candidate{rec: rec, ent: ent}, nil
}

// deliveryTime programa la entrega: lo urgente llega mañana temprano; lo normal
// se programa para aterrizar justo antes de la fecha estimada de agotamiento.
func deliveryTime(today time.Time, urgency string, daysLeft float64) time.Time {
	switch urgency {
	case entity.UrgencyUrgent:
		return at(today.AddDate(0, 0, 1), urgentDeliveryHour)
	case entity.UrgencyHigh:
		return at(today.AddDate(0, 0, 1), highDeliveryHour)
	default:
		return at(today.AddDate(0, 0, int(daysLeft)-1), normalDeliveryHour)
	}
}

func at(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}
