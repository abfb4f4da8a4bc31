package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlpetro/control-petro-api/internal/application/analytics"
	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/repository"
	"github.com/controlpetro/control-petro-api/pkg/logger"
)

var testNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

type fakeAnalyticsRepo struct {
	soldByRange map[string]*repository.SoldTotalsResult
	dailySold   []repository.FuelDayTotal
	levels      []repository.StationFuelLevel
}

func rangeKey(from time.Time) string { return from.Format("2006-01-02") }

func (f *fakeAnalyticsRepo) SoldTotals(_ context.Context, from, _ time.Time) (*repository.SoldTotalsResult, error) {
	if r, ok := f.soldByRange[rangeKey(from)]; ok {
		return r, nil
	}
	return &repository.SoldTotalsResult{ByFuel: map[entity.FuelType]float64{}, Revenue: decimal.Zero}, nil
}

func (f *fakeAnalyticsRepo) DailySoldByFuel(_ context.Context, _, _ time.Time) ([]repository.FuelDayTotal, error) {
	return f.dailySold, nil
}

func (f *fakeAnalyticsRepo) DailyFlows(_ context.Context, _, _ time.Time) ([]repository.FlowDay, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) DailyOnHand(_ context.Context, _, _ time.Time) ([]repository.DayVolume, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) TankLevels(_ context.Context, _ time.Time) ([]repository.StationFuelLevel, error) {
	return f.levels, nil
}

func (f *fakeAnalyticsRepo) CapacityTotals(_ context.Context) (map[entity.FuelType]float64, error) {
	return map[entity.FuelType]float64{}, nil
}

type fakeStationRepo struct {
	stations []*entity.Station
}

func (f *fakeStationRepo) Create(_ context.Context, s *entity.Station) error {
	f.stations = append(f.stations, s)
	return nil
}

func (f *fakeStationRepo) GetByID(_ context.Context, id string) (*entity.Station, error) {
	for _, s := range f.stations {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStationRepo) ListActive(_ context.Context) ([]*entity.Station, error) {
	return f.stations, nil
}

type fakePredRepo struct {
	pending int
}

func (f *fakePredRepo) CreateBatch(_ context.Context, _ []*entity.Prediction) error { return nil }

func (f *fakePredRepo) CountPendingFrom(_ context.Context, _ time.Time) (int, error) {
	return f.pending, nil
}

func level(stationID, name string, fuel entity.FuelType, liters, capacity float64) repository.StationFuelLevel {
	pct := 0.0
	if capacity > 0 {
		pct = liters / capacity * 100
	}
	return repository.StationFuelLevel{
		StationID:    stationID,
		StationName:  name,
		FuelType:     fuel,
		LitersOnHand: liters,
		Capacity:     capacity,
		Pct:          pct,
	}
}

func newUseCase(metrics *fakeAnalyticsRepo, stations *fakeStationRepo, preds *fakePredRepo) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(
		metrics, stations, preds, logger.Nop(),
		analytics.WithNow(func() time.Time { return testNow }),
	)
}

func TestSummaryClassifiesStationsByWorstTank(t *testing.T) {
	metrics := &fakeAnalyticsRepo{
		soldByRange: map[string]*repository.SoldTotalsResult{
			"2024-05-15": {
				TotalLiters: 12000,
				ByFuel:      map[entity.FuelType]float64{entity.FuelMagna: 8000, entity.FuelPremium: 4000},
				Revenue:     decimal.NewFromFloat(282000),
			},
			"2024-05-14": {
				TotalLiters: 10000,
				ByFuel:      map[entity.FuelType]float64{entity.FuelMagna: 10000},
				Revenue:     decimal.NewFromFloat(235000),
			},
		},
		levels: []repository.StationFuelLevel{
			// st-1: magna sana pero diésel crítico, cuenta como crítica.
			level("st-1", "Norte", entity.FuelMagna, 30000, 40000),
			level("st-1", "Norte", entity.FuelDiesel, 4000, 40000),
			// st-2: tanque más bajo al 30%, nivel bajo.
			level("st-2", "Centro", entity.FuelMagna, 12000, 40000),
			// st-3: sin snapshot del día, se asume 50% y cuenta como normal.
		},
	}
	stations := &fakeStationRepo{stations: []*entity.Station{
		{ID: "st-1", Active: true}, {ID: "st-2", Active: true}, {ID: "st-3", Active: true},
	}}

	sum, err := newUseCase(metrics, stations, &fakePredRepo{pending: 4}).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12000.0, sum.TotalSoldToday)
	assert.Equal(t, 8000.0, sum.FuelSold["magna"])
	assert.Equal(t, 0.0, sum.FuelSold["diesel"])
	assert.Equal(t, "282000.00", sum.RevenueToday)
	assert.Equal(t, 20.0, sum.ChangePct)
	assert.Equal(t, 3, sum.ActiveStations)
	assert.Equal(t, 1, sum.CriticalStations)
	assert.Equal(t, 1, sum.LowStations)
	assert.Equal(t, 1, sum.NormalStations)
	assert.Equal(t, 4, sum.PendingOrders)
	assert.Equal(t, "2024-05-15", sum.Date)
}

func TestSummaryNoSalesYesterday(t *testing.T) {
	metrics := &fakeAnalyticsRepo{
		soldByRange: map[string]*repository.SoldTotalsResult{
			"2024-05-15": {
				TotalLiters: 5000,
				ByFuel:      map[entity.FuelType]float64{entity.FuelMagna: 5000},
				Revenue:     decimal.Zero,
			},
		},
	}
	sum, err := newUseCase(metrics, &fakeStationRepo{}, &fakePredRepo{}).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, sum.ChangePct)
}

func TestSalesChartFillsMissingDays(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	metrics := &fakeAnalyticsRepo{
		dailySold: []repository.FuelDayTotal{
			{Day: day(13), FuelType: entity.FuelMagna, Liters: 6000},
			{Day: day(13), FuelType: entity.FuelPremium, Liters: 2000},
			{Day: day(15), FuelType: entity.FuelDiesel, Liters: 3000},
		},
	}

	chart, err := newUseCase(metrics, &fakeStationRepo{}, &fakePredRepo{}).SalesChart(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, chart, 3)

	assert.Equal(t, "2024-05-13", chart[0].Date)
	assert.Equal(t, 6000.0, chart[0].Magna)
	assert.Equal(t, 8000.0, chart[0].Total)

	assert.Equal(t, "2024-05-14", chart[1].Date)
	assert.Equal(t, 0.0, chart[1].Total)

	assert.Equal(t, 3000.0, chart[2].Diesel)
}

func TestAlertsCriticalFirst(t *testing.T) {
	metrics := &fakeAnalyticsRepo{
		levels: []repository.StationFuelLevel{
			level("st-1", "Norte", entity.FuelMagna, 13000, 40000),  // 32.5%: warning
			level("st-2", "Centro", entity.FuelDiesel, 4000, 40000), // 10%: critical
			level("st-3", "Sur", entity.FuelPremium, 30000, 40000),  // 75%: sin alerta
		},
	}

	alerts, err := newUseCase(metrics, &fakeStationRepo{}, &fakePredRepo{}).Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, "critical", alerts[0].Type)
	assert.Equal(t, "Centro", alerts[0].Station)
	assert.Contains(t, alerts[0].Message, "diesel")
	assert.Contains(t, alerts[0].Message, "10.0%")

	assert.Equal(t, "warning", alerts[1].Type)
	assert.Contains(t, alerts[1].Message, "magna")
}

func TestAlertsCapped(t *testing.T) {
	metrics := &fakeAnalyticsRepo{}
	for i := 0; i < 20; i++ {
		metrics.levels = append(metrics.levels,
			level("st-x", "Estación X", entity.FuelMagna, 2000, 40000))
	}

	alerts, err := newUseCase(metrics, &fakeStationRepo{}, &fakePredRepo{}).Alerts(context.Background())
	require.NoError(t, err)
	assert.Len(t, alerts, 15)
}
