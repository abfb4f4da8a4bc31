// Package inventory registra transacciones de combustible y mantiene el
// snapshot de inventario del día.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/controlpetro/control-petro-api/internal/application/dto"
	"github.com/controlpetro/control-petro-api/internal/domain"
	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/repository"
)

// UseCase casos de uso de inventario: registro de transacciones y vistas de flota.
type UseCase struct {
	txRunner      TxRunner
	stationRepo   repository.StationRepository
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// Option configura el caso de uso.
type Option func(*UseCase)

// WithNow inyecta el reloj (para tests).
func WithNow(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(txRunner TxRunner, stationRepo repository.StationRepository, analyticsRepo repository.AnalyticsRepository, opts ...Option) *UseCase {
	uc := &UseCase{
		txRunner:      txRunner,
		stationRepo:   stationRepo,
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// RegisterTransaction persiste una venta o recepción y actualiza el snapshot
// del día en la misma transacción: una recepción suma litros, una venta los
// resta con piso en cero. Si el día no tiene snapshot, se crea uno con la
// capacidad registrada de la estación.
func (uc *UseCase) RegisterTransaction(ctx context.Context, in dto.RecordTransactionRequest) (*dto.RecordTransactionResponse, error) {
	fuel := entity.FuelType(in.FuelType)
	if in.StationID == "" || !fuel.Valid() || in.Liters <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.TransactionType != entity.TransactionSold && in.TransactionType != entity.TransactionReceived {
		return nil, domain.ErrInvalidInput
	}

	station, err := uc.stationRepo.GetByID(ctx, in.StationID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, domain.ErrStationNotFound
	}

	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tx := &entity.FuelTransaction{
		ID:            uuid.New().String(),
		StationID:     in.StationID,
		FuelType:      fuel,
		Type:          in.TransactionType,
		Liters:        in.Liters,
		PricePerLiter: in.PricePerLiter,
		Timestamp:     now,
		Notes:         in.Notes,
	}

	err = uc.txRunner.Run(ctx, func(
		txRepo repository.FuelTransactionRepository,
		snapRepo repository.InventorySnapshotRepository,
	) error {
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}

		// Bloquea el snapshot del día para evitar carreras entre registros concurrentes.
		snap, err := snapRepo.GetForUpdate(ctx, in.StationID, fuel, today)
		if err != nil {
			return err
		}
		if snap == nil {
			snap = &entity.InventorySnapshot{
				ID:           uuid.New().String(),
				StationID:    in.StationID,
				FuelType:     fuel,
				Capacity:     station.CapacityFor(fuel),
				SnapshotDate: today,
				CreatedAt:    now,
			}
		}
		if in.TransactionType == entity.TransactionReceived {
			snap.LitersOnHand += in.Liters
		} else {
			snap.LitersOnHand -= in.Liters
			if snap.LitersOnHand < 0 {
				snap.LitersOnHand = 0
			}
		}
		return snapRepo.Upsert(ctx, snap)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RecordTransactionResponse{TransactionID: tx.ID}, nil
}

// Summary existencia total de la flota por combustible hoy, contra la capacidad instalada.
func (uc *UseCase) Summary(ctx context.Context) (*dto.InventorySummaryDTO, error) {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	levels, err := uc.analyticsRepo.TankLevels(ctx, today)
	if err != nil {
		return nil, err
	}
	capacities, err := uc.analyticsRepo.CapacityTotals(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.InventorySummaryDTO{TotalCapacity: map[string]float64{}}
	for _, fuel := range entity.AllFuelTypes {
		out.TotalCapacity[string(fuel)] = capacities[fuel]
	}
	for _, lvl := range levels {
		switch lvl.FuelType {
		case entity.FuelMagna:
			out.Magna += lvl.LitersOnHand
		case entity.FuelPremium:
			out.Premium += lvl.LitersOnHand
		case entity.FuelDiesel:
			out.Diesel += lvl.LitersOnHand
		}
	}
	out.Total = out.Magna + out.Premium + out.Diesel
	return out, nil
}

// History flujo diario de la flota (recibido, vendido, existencia) de los últimos días.
func (uc *UseCase) History(ctx context.Context, days int) ([]dto.InventoryHistoryDayDTO, error) {
	if days <= 0 {
		days = 7
	}
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -(days - 1))
	to := today.AddDate(0, 0, 1)

	flows, err := uc.analyticsRepo.DailyFlows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	onHand, err := uc.analyticsRepo.DailyOnHand(ctx, from, today)
	if err != nil {
		return nil, err
	}

	flowByDay := make(map[string]repository.FlowDay, len(flows))
	for _, f := range flows {
		flowByDay[f.Day.Format(dto.DateLayout)] = f
	}
	onHandByDay := make(map[string]float64, len(onHand))
	for _, v := range onHand {
		onHandByDay[v.Day.Format(dto.DateLayout)] = v.Liters
	}

	out := make([]dto.InventoryHistoryDayDTO, 0, days)
	for d := 0; d < days; d++ {
		date := from.AddDate(0, 0, d).Format(dto.DateLayout)
		flow := flowByDay[date]
		out = append(out, dto.InventoryHistoryDayDTO{
			Date:     date,
			Received: flow.Received,
			Sold:     flow.Sold,
			OnHand:   onHandByDay[date],
			Net:      flow.Received - flow.Sold,
		})
	}
	return out, nil
}
