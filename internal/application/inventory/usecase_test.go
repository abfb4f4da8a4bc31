package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlpetro/control-petro-api/internal/application/dto"
	"github.com/controlpetro/control-petro-api/internal/application/inventory"
	"github.com/controlpetro/control-petro-api/internal/domain"
	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/forecast"
	"github.com/controlpetro/control-petro-api/internal/domain/repository"
)

var testNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

type fakeStationRepo struct {
	stations map[string]*entity.Station
}

func (f *fakeStationRepo) Create(_ context.Context, s *entity.Station) error {
	f.stations[s.ID] = s
	return nil
}

func (f *fakeStationRepo) GetByID(_ context.Context, id string) (*entity.Station, error) {
	s, ok := f.stations[id]
	if !ok {
		return nil, domain.ErrStationNotFound
	}
	return s, nil
}

func (f *fakeStationRepo) ListActive(_ context.Context) ([]*entity.Station, error) {
	out := make([]*entity.Station, 0, len(f.stations))
	for _, s := range f.stations {
		out = append(out, s)
	}
	return out, nil
}

type fakeTxRepo struct {
	created []*entity.FuelTransaction
}

func (f *fakeTxRepo) Create(_ context.Context, tx *entity.FuelTransaction) error {
	f.created = append(f.created, tx)
	return nil
}

func (f *fakeTxRepo) DailySalesTotals(_ context.Context, _ string, _ entity.FuelType, _ time.Time) ([]forecast.SalesDay, error) {
	return nil, nil
}

type snapKey struct {
	stationID string
	fuel      entity.FuelType
	date      string
}

type fakeSnapRepo struct {
	snaps map[snapKey]*entity.InventorySnapshot
}

func newFakeSnapRepo() *fakeSnapRepo {
	return &fakeSnapRepo{snaps: map[snapKey]*entity.InventorySnapshot{}}
}

func (f *fakeSnapRepo) key(stationID string, fuel entity.FuelType, date time.Time) snapKey {
	return snapKey{stationID, fuel, date.Format("2006-01-02")}
}

func (f *fakeSnapRepo) GetLatest(_ context.Context, stationID string, fuel entity.FuelType) (*entity.InventorySnapshot, error) {
	var latest *entity.InventorySnapshot
	for _, s := range f.snaps {
		if s.StationID != stationID || s.FuelType != fuel {
			continue
		}
		if latest == nil || s.SnapshotDate.After(latest.SnapshotDate) {
			latest = s
		}
	}
	return latest, nil
}

func (f *fakeSnapRepo) GetForUpdate(_ context.Context, stationID string, fuel entity.FuelType, date time.Time) (*entity.InventorySnapshot, error) {
	return f.snaps[f.key(stationID, fuel, date)], nil
}

func (f *fakeSnapRepo) Upsert(_ context.Context, snap *entity.InventorySnapshot) error {
	f.snaps[f.key(snap.StationID, snap.FuelType, snap.SnapshotDate)] = snap
	return nil
}

func (f *fakeSnapRepo) ListByDate(_ context.Context, date time.Time) ([]*entity.InventorySnapshot, error) {
	var out []*entity.InventorySnapshot
	for _, s := range f.snaps {
		if s.SnapshotDate.Format("2006-01-02") == date.Format("2006-01-02") {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	txRepo   *fakeTxRepo
	snapRepo *fakeSnapRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.FuelTransactionRepository, repository.InventorySnapshotRepository) error) error {
	return fn(f.txRepo, f.snapRepo)
}

type fakeAnalyticsRepo struct {
	levels     []repository.StationFuelLevel
	capacities map[entity.FuelType]float64
	flows      []repository.FlowDay
	onHand     []repository.DayVolume
}

func (f *fakeAnalyticsRepo) SoldTotals(_ context.Context, _, _ time.Time) (*repository.SoldTotalsResult, error) {
	return &repository.SoldTotalsResult{ByFuel: map[entity.FuelType]float64{}, Revenue: decimal.Zero}, nil
}

func (f *fakeAnalyticsRepo) DailySoldByFuel(_ context.Context, _, _ time.Time) ([]repository.FuelDayTotal, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) DailyFlows(_ context.Context, _, _ time.Time) ([]repository.FlowDay, error) {
	return f.flows, nil
}

func (f *fakeAnalyticsRepo) DailyOnHand(_ context.Context, _, _ time.Time) ([]repository.DayVolume, error) {
	return f.onHand, nil
}

func (f *fakeAnalyticsRepo) TankLevels(_ context.Context, _ time.Time) ([]repository.StationFuelLevel, error) {
	return f.levels, nil
}

func (f *fakeAnalyticsRepo) CapacityTotals(_ context.Context) (map[entity.FuelType]float64, error) {
	return f.capacities, nil
}

type fixture struct {
	uc       *inventory.UseCase
	stations *fakeStationRepo
	txRepo   *fakeTxRepo
	snapRepo *fakeSnapRepo
	metrics  *fakeAnalyticsRepo
}

func newFixture() *fixture {
	stations := &fakeStationRepo{stations: map[string]*entity.Station{}}
	txRepo := &fakeTxRepo{}
	snapRepo := newFakeSnapRepo()
	metrics := &fakeAnalyticsRepo{capacities: map[entity.FuelType]float64{}}
	runner := &fakeTxRunner{txRepo: txRepo, snapRepo: snapRepo}
	uc := inventory.NewUseCase(runner, stations, metrics, inventory.WithNow(func() time.Time { return testNow }))
	return &fixture{uc: uc, stations: stations, txRepo: txRepo, snapRepo: snapRepo, metrics: metrics}
}

func (f *fixture) addStation(id string) {
	f.stations.stations[id] = &entity.Station{
		ID:            id,
		Code:          "GP-" + id,
		Name:          "Estación " + id,
		MagnaCapacity: 40000,
		Active:        true,
	}
}

func TestRegisterTransactionCreatesSnapshot(t *testing.T) {
	f := newFixture()
	f.addStation("st-1")

	price := decimal.NewFromFloat(23.50)
	resp, err := f.uc.RegisterTransaction(context.Background(), dto.RecordTransactionRequest{
		StationID:       "st-1",
		FuelType:        "magna",
		TransactionType: entity.TransactionReceived,
		Liters:          12000,
		PricePerLiter:   &price,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.TransactionID)

	require.Len(t, f.txRepo.created, 1)
	assert.Equal(t, entity.TransactionReceived, f.txRepo.created[0].Type)
	assert.Equal(t, testNow, f.txRepo.created[0].Timestamp)

	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	snap, err := f.snapRepo.GetForUpdate(context.Background(), "st-1", entity.FuelMagna, today)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 12000.0, snap.LitersOnHand)
	assert.Equal(t, 40000.0, snap.Capacity)
}

func TestRegisterTransactionSaleSubtracts(t *testing.T) {
	f := newFixture()
	f.addStation("st-1")
	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.snapRepo.Upsert(context.Background(), &entity.InventorySnapshot{
		ID:           "snap-1",
		StationID:    "st-1",
		FuelType:     entity.FuelMagna,
		LitersOnHand: 5000,
		Capacity:     40000,
		SnapshotDate: today,
	}))

	_, err := f.uc.RegisterTransaction(context.Background(), dto.RecordTransactionRequest{
		StationID:       "st-1",
		FuelType:        "magna",
		TransactionType: entity.TransactionSold,
		Liters:          1800,
	})
	require.NoError(t, err)

	snap, _ := f.snapRepo.GetForUpdate(context.Background(), "st-1", entity.FuelMagna, today)
	assert.Equal(t, 3200.0, snap.LitersOnHand)
}

func TestRegisterTransactionSaleFloorsAtZero(t *testing.T) {
	f := newFixture()
	f.addStation("st-1")
	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.snapRepo.Upsert(context.Background(), &entity.InventorySnapshot{
		ID:           "snap-1",
		StationID:    "st-1",
		FuelType:     entity.FuelMagna,
		LitersOnHand: 500,
		Capacity:     40000,
		SnapshotDate: today,
	}))

	_, err := f.uc.RegisterTransaction(context.Background(), dto.RecordTransactionRequest{
		StationID:       "st-1",
		FuelType:        "magna",
		TransactionType: entity.TransactionSold,
		Liters:          2000,
	})
	require.NoError(t, err)

	snap, _ := f.snapRepo.GetForUpdate(context.Background(), "st-1", entity.FuelMagna, today)
	assert.Equal(t, 0.0, snap.LitersOnHand)
}

func TestRegisterTransactionValidation(t *testing.T) {
	f := newFixture()
	f.addStation("st-1")

	cases := []struct {
		name string
		req  dto.RecordTransactionRequest
		want error
	}{
		{
			name: "combustible inválido",
			req:  dto.RecordTransactionRequest{StationID: "st-1", FuelType: "nafta", TransactionType: "sold", Liters: 100},
			want: domain.ErrInvalidInput,
		},
		{
			name: "litros cero",
			req:  dto.RecordTransactionRequest{StationID: "st-1", FuelType: "magna", TransactionType: "sold", Liters: 0},
			want: domain.ErrInvalidInput,
		},
		{
			name: "tipo desconocido",
			req:  dto.RecordTransactionRequest{StationID: "st-1", FuelType: "magna", TransactionType: "transfer", Liters: 100},
			want: domain.ErrInvalidInput,
		},
		{
			name: "estación inexistente",
			req:  dto.RecordTransactionRequest{StationID: "st-9", FuelType: "magna", TransactionType: "sold", Liters: 100},
			want: domain.ErrStationNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.RegisterTransaction(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, f.txRepo.created)
		})
	}
}

func TestSummaryAggregatesByFuel(t *testing.T) {
	f := newFixture()
	f.metrics.levels = []repository.StationFuelLevel{
		{StationID: "st-1", FuelType: entity.FuelMagna, LitersOnHand: 10000},
		{StationID: "st-2", FuelType: entity.FuelMagna, LitersOnHand: 6000},
		{StationID: "st-1", FuelType: entity.FuelPremium, LitersOnHand: 4000},
		{StationID: "st-2", FuelType: entity.FuelDiesel, LitersOnHand: 2500},
	}
	f.metrics.capacities = map[entity.FuelType]float64{
		entity.FuelMagna:   80000,
		entity.FuelPremium: 40000,
		entity.FuelDiesel:  40000,
	}

	sum, err := f.uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 16000.0, sum.Magna)
	assert.Equal(t, 4000.0, sum.Premium)
	assert.Equal(t, 2500.0, sum.Diesel)
	assert.Equal(t, 22500.0, sum.Total)
	assert.Equal(t, 80000.0, sum.TotalCapacity["magna"])
}

func TestHistoryFillsMissingDays(t *testing.T) {
	f := newFixture()
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	f.metrics.flows = []repository.FlowDay{
		{Day: day(13), Received: 8000, Sold: 3000},
		{Day: day(15), Received: 0, Sold: 2000},
	}
	f.metrics.onHand = []repository.DayVolume{
		{Day: day(13), Liters: 21000},
		{Day: day(15), Liters: 19000},
	}

	hist, err := f.uc.History(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, hist, 3)

	assert.Equal(t, "2024-05-13", hist[0].Date)
	assert.Equal(t, 5000.0, hist[0].Net)
	assert.Equal(t, 21000.0, hist[0].OnHand)

	// Día sin movimientos: todo en cero.
	assert.Equal(t, "2024-05-14", hist[1].Date)
	assert.Equal(t, 0.0, hist[1].Sold)
	assert.Equal(t, 0.0, hist[1].OnHand)

	assert.Equal(t, "2024-05-15", hist[2].Date)
	assert.Equal(t, -2000.0, hist[2].Net)
}
