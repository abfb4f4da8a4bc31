package prediction_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controlpetro/control-petro-api/internal/application/prediction"
	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/forecast"
	"github.com/controlpetro/control-petro-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStationRepo struct {
	stations []*entity.Station
}

func (r *fakeStationRepo) Create(_ context.Context, s *entity.Station) error {
	r.stations = append(r.stations, s)
	return nil
}

func (r *fakeStationRepo) GetByID(_ context.Context, id string) (*entity.Station, error) {
	for _, s := range r.stations {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStationRepo) ListActive(_ context.Context) ([]*entity.Station, error) {
	var out []*entity.Station
	for _, s := range r.stations {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeTxRepo struct {
	series map[string][]forecast.SalesDay // stationID/fuel
}

func (r *fakeTxRepo) Create(_ context.Context, _ *entity.FuelTransaction) error { return nil }

func (r *fakeTxRepo) DailySalesTotals(_ context.Context, stationID string, fuel entity.FuelType, _ time.Time) ([]forecast.SalesDay, error) {
	return r.series[stationID+"/"+string(fuel)], nil
}

type fakeSnapRepo struct {
	latest map[string]*entity.InventorySnapshot // stationID/fuel
}

func (r *fakeSnapRepo) GetLatest(_ context.Context, stationID string, fuel entity.FuelType) (*entity.InventorySnapshot, error) {
	return r.latest[stationID+"/"+string(fuel)], nil
}

func (r *fakeSnapRepo) GetForUpdate(_ context.Context, stationID string, fuel entity.FuelType, _ time.Time) (*entity.InventorySnapshot, error) {
	return r.latest[stationID+"/"+string(fuel)], nil
}

func (r *fakeSnapRepo) Upsert(_ context.Context, _ *entity.InventorySnapshot) error { return nil }

func (r *fakeSnapRepo) ListByDate(_ context.Context, _ time.Time) ([]*entity.InventorySnapshot, error) {
	return nil, nil
}

type fakePredRepo struct {
	mu    sync.Mutex
	saved []*entity.Prediction
}

func (r *fakePredRepo) CreateBatch(_ context.Context, preds []*entity.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, preds...)
	return nil
}

func (r *fakePredRepo) CountPendingFrom(_ context.Context, _ time.Time) (int, error) {
	return len(r.saved), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado de escenarios
// ──────────────────────────────────────────────────────────────────────────────

// testNow miércoles 15 de mayo de 2024, 10:00 UTC.
var testNow = time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	stations *fakeStationRepo
	txs      *fakeTxRepo
	snaps    *fakeSnapRepo
	preds    *fakePredRepo
	uc       *prediction.UseCase
}

func newFixture() *fixture {
	f := &fixture{
		stations: &fakeStationRepo{},
		txs:      &fakeTxRepo{series: map[string][]forecast.SalesDay{}},
		snaps:    &fakeSnapRepo{latest: map[string]*entity.InventorySnapshot{}},
		preds:    &fakePredRepo{},
	}
	f.uc = prediction.NewUseCase(
		f.stations, f.txs, f.snaps, f.preds,
		prediction.DefaultPolicy(), logger.Nop(),
		prediction.WithNow(func() time.Time { return testNow }),
	)
	return f
}

// addStation registra una estación activa con la misma capacidad en los tres tanques.
func (f *fixture) addStation(id, code string, capacity float64) {
	f.stations.stations = append(f.stations.stations, &entity.Station{
		ID: id, Code: code, Name: "Est. " + code,
		MagnaCapacity: capacity, PremiumCapacity: capacity, DieselCapacity: capacity,
		Active: true,
	})
}

// setHistory carga una serie plana de ventas de n días consecutivos terminando ayer.
func (f *fixture) setHistory(stationID string, fuel entity.FuelType, n int, dailyLiters float64) {
	series := make([]forecast.SalesDay, n)
	for i := range series {
		series[i] = forecast.SalesDay{Date: testNow.AddDate(0, 0, i-n), Liters: dailyLiters}
	}
	f.txs.series[stationID+"/"+string(fuel)] = series
}

func (f *fixture) setInventory(stationID string, fuel entity.FuelType, liters, capacity float64) {
	f.snaps.latest[stationID+"/"+string(fuel)] = &entity.InventorySnapshot{
		ID: "snap-" + stationID, StationID: stationID, FuelType: fuel,
		LitersOnHand: liters, Capacity: capacity,
		SnapshotDate: testNow.AddDate(0, 0, -1),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecommendOrders
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: capacidad 40000, umbral 0.15, 5000 L en tanque y
// demanda de 2000 L/día → días restantes 0, urgencia "urgent", entrega mañana 06:00.
func TestRecommendOrders_EscenarioUrgente(t *testing.T) {
	f := newFixture()
	f.addStation("st-1", "GP-001", 40000)
	f.setHistory("st-1", entity.FuelMagna, 7, 2000)
	f.setInventory("st-1", entity.FuelMagna, 5000, 40000)

	recs, err := f.uc.RecommendOrders(context.Background(), 72)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "urgent", rec.Urgency)
	assert.Equal(t, 0.0, rec.DaysUntilEmpty)
	assert.Equal(t, "2024-05-16T06:00:00", rec.RecommendedDate)
	// 0.85*40000 - 5000 + 2000 = 31000, ya múltiplo de 500.
	assert.Equal(t, 31000.0, rec.RecommendedLiters)
	assert.Equal(t, 2000.0, rec.AvgDailyDemand)
	assert.Contains(t, rec.Reason, "Demanda promedio: 2000L/dia")
	assert.Contains(t, rec.Reason, "Dias restantes estimados: 0.0")

	// La corrida persiste exactamente lo que devuelve.
	require.Len(t, f.preds.saved, 1)
	saved := f.preds.saved[0]
	assert.Equal(t, "st-1", saved.StationID)
	assert.Equal(t, entity.FuelMagna, saved.FuelType)
	assert.False(t, saved.Fulfilled)
	assert.NotEmpty(t, saved.ID)
}

// Una estación sin snapshot de inventario queda fuera de la corrida sin error.
func TestRecommendOrders_SinInventario_ParOmitido(t *testing.T) {
	f := newFixture()
	f.addStation("st-1", "GP-001", 40000)
	f.setHistory("st-1", entity.FuelMagna, 7, 2000)
	// sin setInventory

	recs, err := f.uc.RecommendOrders(context.Background(), 72)
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Empty(t, f.preds.saved)
}

// Historial menor a 3 días: el pronóstico declina y el par se omite sin error.
func TestRecommendOrders_HistorialInsuficiente_ParOmitido(t *testing.T) {
	f := newFixture()
	f.addStation("st-1", "GP-001", 40000)
	f.setHistory("st-1", entity.FuelMagna, 2, 2000)
	f.setInventory("st-1", entity.FuelMagna, 5000, 40000)

	recs, err := f.uc.RecommendOrders(context.Background(), 72)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

// Tanque con cobertura holgada más allá del horizonte: no se recomienda pedido.
func TestRecommendOrders_CoberturaHolgada_SinPedido(t *testing.T) {
	f := newFixture()
	f.addStation("st-1", "GP-001", 40000)
	f.setHistory("st-1", entity.FuelMagna, 7, 2000)
	// (34000 - 6000) / 2000 = 14 días > 3 + 2.
	f.setInventory("st-1", entity.FuelMagna, 34000, 40000)

	recs, err := f.uc.RecommendOrders(context.Background(), 72)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

// La cantidad siempre se redondea al múltiplo de 500 más cercano.
func TestRecommendOrders_RedondeoA500(t *testing.T) {
	f := newFixture()
	f.addStation("st-1", "GP-001", 40000)
	f.setHistory("st-1", entity.FuelMagna, 7, 1750)
	// días restantes = (20000-6000)/1750 = 8; con horizonte de 168 h el gate pasa (8 <= 7+2).
	f.setInventory("st-1", entity.FuelMagna, 20000, 40000)

	recs, err := f.uc.RecommendOrders(context.Background(), 168)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	// 34000 - 20000 + 1750 = 15750 → redondea a 16000.
	assert.Equal(t, 16000.0, rec.RecommendedLiters)
	assert.Zero(t, int64(rec.RecommendedLiters)%500)
	assert.Equal(t, "normal", rec.Urgency)
	// Entrega normal: hoy + (8-1) días a las 07:00.
	assert.Equal(t, "2024-05-22T07:00:00", rec.RecommendedDate)
}

// Pedidos menores al mínimo se suprimen por completo, no se emiten en cero.
func TestRecommendOrders_PedidoChico_Suprimido(t *testing.T) {
	f := newFixture()
	f.addStation("st-1", "GP-001", 1000)
	f.setHistory("st-1", entity.FuelMagna, 7, 150)
	// días restantes = (300-150)/150 = 1 → urgente, pero
	// 850 - 300 + 150 = 700 → redondea a 500 < 1000 → suprimido.
	f.setInventory("st-1", entity.FuelMagna, 300, 1000)

	recs, err := f.uc.RecommendOrders(context.Background(), 72)
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Empty(t, f.preds.saved)
}

// Ranking: urgente antes que normal y, dentro del mismo nivel, menos días primero.
func TestRecommendOrders_Ranking(t *testing.T) {
	f := newFixture()
	// Normal con 8 días de cobertura.
	f.addStation("st-normal", "GP-001", 40000)
	f.setHistory("st-normal", entity.FuelMagna, 7, 1750)
	f.setInventory("st-normal", entity.FuelMagna, 20000, 40000)
	// Urgente con ~0.5 días.
	f.addStation("st-urgente-b", "GP-002", 40000)
	f.setHistory("st-urgente-b", entity.FuelMagna, 7, 2000)
	f.setInventory("st-urgente-b", entity.FuelMagna, 7000, 40000) // (7000-6000)/2000 = 0.5
	// Urgente ya bajo la reserva (0 días).
	f.addStation("st-urgente-a", "GP-003", 40000)
	f.setHistory("st-urgente-a", entity.FuelMagna, 7, 2000)
	f.setInventory("st-urgente-a", entity.FuelMagna, 5000, 40000)

	recs, err := f.uc.RecommendOrders(context.Background(), 168)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "GP-003", recs[0].StationCode, "urgente con 0 días va primero")
	assert.Equal(t, "GP-002", recs[1].StationCode, "urgente con 0.5 días va segundo")
	assert.Equal(t, "GP-001", recs[2].StationCode, "normal va al final aunque existan más urgentes")
	assert.Equal(t, "urgent", recs[0].Urgency)
	assert.Equal(t, "urgent", recs[1].Urgency)
	assert.Equal(t, "normal", recs[2].Urgency)
}

// Urgencia "high": entre 1 y 2 días de cobertura, entrega mañana a las 08:00.
func TestRecommendOrders_UrgenciaAlta(t *testing.T) {
	f := newFixture()
	f.addStation("st-1", "GP-001", 40000)
	f.setHistory("st-1", entity.FuelMagna, 7, 2000)
	f.setInventory("st-1", entity.FuelMagna, 9000, 40000) // (9000-6000)/2000 = 1.5

	recs, err := f.uc.RecommendOrders(context.Background(), 72)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "high", recs[0].Urgency)
	assert.Equal(t, "2024-05-16T08:00:00", recs[0].RecommendedDate)
}
