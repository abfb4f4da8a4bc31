// Package usecase casos de uso CRUD de estaciones.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/controlpetro/control-petro-api/internal/application/dto"
	"github.com/controlpetro/control-petro-api/internal/domain"
	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/repository"
)

// StationUseCase casos de uso de estaciones: alta y consulta con niveles del día.
type StationUseCase struct {
	stationRepo repository.StationRepository
	snapRepo    repository.InventorySnapshotRepository
	now         func() time.Time
}

// Option configura el caso de uso.
type Option func(*StationUseCase)

// WithNow inyecta el reloj (para tests).
func WithNow(now func() time.Time) Option {
	return func(uc *StationUseCase) { uc.now = now }
}

// NewStationUseCase construye el caso de uso de estaciones.
func NewStationUseCase(stationRepo repository.StationRepository, snapRepo repository.InventorySnapshotRepository, opts ...Option) *StationUseCase {
	uc := &StationUseCase{stationRepo: stationRepo, snapRepo: snapRepo, now: time.Now}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create da de alta una estación.
func (uc *StationUseCase) Create(ctx context.Context, in dto.CreateStationRequest) (*dto.StationResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	station := &entity.Station{
		ID:              uuid.New().String(),
		Code:            in.Code,
		Name:            in.Name,
		Address:         in.Address,
		City:            in.City,
		State:           in.State,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		MagnaCapacity:   in.MagnaCapacity,
		PremiumCapacity: in.PremiumCapacity,
		DieselCapacity:  in.DieselCapacity,
		Active:          true,
		CreatedAt:       uc.now(),
	}
	if err := uc.stationRepo.Create(ctx, station); err != nil {
		return nil, err
	}
	return toStationResponse(station, nil), nil
}

// GetByID obtiene una estación con sus niveles de tanque de hoy.
func (uc *StationUseCase) GetByID(ctx context.Context, id string) (*dto.StationResponse, error) {
	station, err := uc.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, domain.ErrStationNotFound
	}
	snaps, err := uc.todaySnapshots(ctx)
	if err != nil {
		return nil, err
	}
	return toStationResponse(station, snaps[station.ID]), nil
}

// ListActive lista las estaciones activas con sus niveles de tanque de hoy.
func (uc *StationUseCase) ListActive(ctx context.Context) ([]dto.StationResponse, error) {
	stations, err := uc.stationRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	snaps, err := uc.todaySnapshots(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StationResponse, 0, len(stations))
	for _, st := range stations {
		out = append(out, *toStationResponse(st, snaps[st.ID]))
	}
	return out, nil
}

// todaySnapshots snapshots de hoy agrupados por estación.
func (uc *StationUseCase) todaySnapshots(ctx context.Context) (map[string][]*entity.InventorySnapshot, error) {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	snaps, err := uc.snapRepo.ListByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	byStation := make(map[string][]*entity.InventorySnapshot)
	for _, s := range snaps {
		byStation[s.StationID] = append(byStation[s.StationID], s)
	}
	return byStation, nil
}

func toStationResponse(st *entity.Station, snaps []*entity.InventorySnapshot) *dto.StationResponse {
	if st == nil {
		return nil
	}
	levels := make(map[string]dto.FuelLevelDTO, len(snaps))
	for _, s := range snaps {
		levels[string(s.FuelType)] = dto.FuelLevelDTO{
			Liters:   s.LitersOnHand,
			Capacity: s.Capacity,
			Pct:      s.FillPct(),
		}
	}
	return &dto.StationResponse{
		ID:        st.ID,
		Code:      st.Code,
		Name:      st.Name,
		Address:   st.Address,
		City:      st.City,
		State:     st.State,
		Latitude:  st.Latitude,
		Longitude: st.Longitude,
		Active:    st.Active,
		Levels:    levels,
	}
}
