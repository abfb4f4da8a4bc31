// Carga datos demo: estaciones de Ciudad Juárez con 30 días de transacciones
// y snapshots de inventario. Pensado para ambientes de desarrollo; corre sobre
// la misma configuración que la API.
package main

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/infrastructure/postgres"
	"github.com/controlpetro/control-petro-api/pkg/config"
	"github.com/controlpetro/control-petro-api/pkg/logger"
)

type stationSeed struct {
	code    string
	name    string
	address string
	lat     float64
	lng     float64
	magna   float64
	premium float64
	diesel  float64
}

var stationSeeds = []stationSeed{
	{"GP-001", "Est. Tecnologico", "Av. Tecnologico 4521, Col. Partido Iglesias", 31.6904, -106.4245, 50000, 25000, 50000},
	{"GP-003", "Est. Nogales", "Col. Nogales 1102", 31.7020, -106.4400, 40000, 20000, 40000},
	{"GP-007", "Est. Pronaf", "Av. Lincoln 890, Zona Pronaf", 31.7400, -106.4500, 45000, 25000, 35000},
	{"GP-014", "Est. Zaragoza Norte", "Blvd. Zaragoza 3300", 31.6600, -106.3700, 55000, 30000, 45000},
	{"GP-022", "Est. Tomas Fernandez", "Blvd. Tomas Fernandez 7800", 31.6800, -106.4100, 50000, 25000, 50000},
	{"GP-031", "Est. Panamericana Km12", "Carr. Panamericana Km 12", 31.6300, -106.4000, 60000, 20000, 60000},
	{"GP-038", "Est. Americas", "Av. de las Americas 1540", 31.7100, -106.4300, 40000, 20000, 35000},
	{"GP-042", "Est. Insurgentes", "Av. Insurgentes 2280", 31.7200, -106.4600, 45000, 25000, 40000},
	{"GP-047", "Est. Partido Romero", "Col. Partido Romero 560", 31.6500, -106.4200, 40000, 20000, 35000},
	{"GP-055", "Est. Torres", "Av. de las Torres 5500", 31.6700, -106.3900, 50000, 25000, 45000},
	{"GP-061", "Est. Ejercito Nacional", "Av. Ejercito Nacional 1200", 31.7300, -106.4400, 45000, 20000, 40000},
	{"GP-067", "Est. Zaragoza Sur", "Blvd. Zaragoza 8900", 31.6400, -106.3600, 55000, 30000, 50000},
	{"GP-073", "Est. Gomez Morin", "Paseo de la Victoria 3200", 31.7500, -106.4700, 40000, 25000, 35000},
	{"GP-079", "Est. Waterfill", "Blvd. Waterfill 1800", 31.6950, -106.4150, 45000, 20000, 40000},
	{"GP-085", "Est. Juarez-Porvenir", "Carr. Juarez-Porvenir Km 5", 31.6200, -106.3500, 50000, 20000, 55000},
	{"GP-091", "Est. Panamericana Sur", "Carr. Panamericana Km 28", 31.5900, -106.3800, 55000, 25000, 60000},
	{"GP-096", "Est. Ramon Rayon", "Av. Ramon Rayon 4500", 31.7050, -106.4350, 40000, 20000, 35000},
	{"GP-100", "Est. Paseo Triunfo", "Paseo Triunfo de la Republica 6700", 31.7150, -106.4550, 50000, 25000, 45000},
	{"GP-102", "Est. Lopez Mateos", "Av. Lopez Mateos 3100", 31.7250, -106.4650, 45000, 20000, 40000},
	{"GP-105", "Est. Hermanos Escobar", "Av. Hermanos Escobar 5600", 31.7350, -106.4750, 40000, 25000, 35000},
}

type demandParams struct {
	mean float64
	std  float64
}

// Perfiles de demanda diaria (litros/día) por tamaño de estación.
var demandProfiles = map[string]map[entity.FuelType]demandParams{
	"high": {
		entity.FuelMagna:   {3500, 600},
		entity.FuelPremium: {1200, 300},
		entity.FuelDiesel:  {2800, 500},
	},
	"medium": {
		entity.FuelMagna:   {2500, 400},
		entity.FuelPremium: {800, 200},
		entity.FuelDiesel:  {2000, 350},
	},
	"low": {
		entity.FuelMagna:   {1800, 300},
		entity.FuelPremium: {500, 150},
		entity.FuelDiesel:  {1400, 250},
	},
}

// Multiplicadores por día de la semana (lunes a domingo).
var dowMultipliers = map[time.Weekday]float64{
	time.Monday:    1.05,
	time.Tuesday:   1.0,
	time.Wednesday: 1.0,
	time.Thursday:  1.02,
	time.Friday:    1.1,
	time.Saturday:  0.9,
	time.Sunday:    0.85,
}

var (
	purchasePrices = map[entity.FuelType]float64{
		entity.FuelMagna:   21.50,
		entity.FuelPremium: 23.00,
		entity.FuelDiesel:  22.80,
	}
	salePrices = map[entity.FuelType]float64{
		entity.FuelMagna:   23.45,
		entity.FuelPremium: 25.12,
		entity.FuelDiesel:  24.78,
	}
)

func profileFor(s stationSeed) string {
	capacity := s.magna + s.premium + s.diesel
	switch {
	case capacity >= 120000:
		return "high"
	case capacity >= 90000:
		return "medium"
	default:
		return "low"
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	stationRepo := postgres.NewStationRepository(pool)
	txRepo := postgres.NewFuelTransactionRepository(pool)
	snapRepo := postgres.NewInventorySnapshotRepository(pool)

	// Semilla fija: corridas reproducibles.
	rng := rand.New(rand.NewSource(42))

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	for _, seed := range stationSeeds {
		station := &entity.Station{
			ID:              uuid.New().String(),
			Code:            seed.code,
			Name:            seed.name,
			Address:         seed.address,
			City:            "Ciudad Juarez",
			State:           "Chihuahua",
			Latitude:        &seed.lat,
			Longitude:       &seed.lng,
			MagnaCapacity:   seed.magna,
			PremiumCapacity: seed.premium,
			DieselCapacity:  seed.diesel,
			Active:          true,
			CreatedAt:       now,
		}
		if err := stationRepo.Create(ctx, station); err != nil {
			log.Fatal().Err(err).Str("code", seed.code).Msg("crear estación")
		}

		profile := demandProfiles[profileFor(seed)]

		// Tanques arrancan entre 70 y 90% de llenado.
		inventory := map[entity.FuelType]float64{}
		for _, fuel := range entity.AllFuelTypes {
			inventory[fuel] = station.CapacityFor(fuel) * (0.7 + rng.Float64()*0.2)
		}

		for dayOffset := 30; dayOffset >= 0; dayOffset-- {
			day := today.AddDate(0, 0, -dayOffset)
			dowMult := dowMultipliers[day.Weekday()]

			for _, fuel := range entity.AllFuelTypes {
				params := profile[fuel]
				dailyDemand := math.Max(0, rng.NormFloat64()*params.std+params.mean*dowMult)
				capacity := station.CapacityFor(fuel)

				// Recepción simulada cuando el tanque cae bajo el 35%.
				if inventory[fuel] < capacity*0.35 {
					delivery := capacity * (0.55 + rng.Float64()*0.2)
					delivery = math.Round(delivery/500) * 500
					ts := day.Add(time.Duration(5+rng.Intn(4))*time.Hour + time.Duration(rng.Intn(60))*time.Minute)
					price := decimal.NewFromFloat(purchasePrices[fuel])
					tx := &entity.FuelTransaction{
						ID:            uuid.New().String(),
						StationID:     station.ID,
						FuelType:      fuel,
						Type:          entity.TransactionReceived,
						Liters:        delivery,
						PricePerLiter: &price,
						Timestamp:     ts,
					}
					if err := txRepo.Create(ctx, tx); err != nil {
						log.Fatal().Err(err).Msg("crear recepción")
					}
					inventory[fuel] += delivery
				}

				// Ventas repartidas en cuatro bloques horarios.
				blocks := []struct {
					hour int
					pct  float64
				}{{8, 0.25}, {12, 0.30}, {16, 0.28}, {20, 0.17}}
				for _, block := range blocks {
					liters := dailyDemand * block.pct * (0.9 + rng.Float64()*0.2)
					liters = math.Min(liters, inventory[fuel])
					if liters <= 0 {
						continue
					}
					ts := day.Add(time.Duration(block.hour)*time.Hour + time.Duration(rng.Intn(60))*time.Minute)
					price := decimal.NewFromFloat(salePrices[fuel])
					tx := &entity.FuelTransaction{
						ID:            uuid.New().String(),
						StationID:     station.ID,
						FuelType:      fuel,
						Type:          entity.TransactionSold,
						Liters:        math.Round(liters*10) / 10,
						PricePerLiter: &price,
						Timestamp:     ts,
					}
					if err := txRepo.Create(ctx, tx); err != nil {
						log.Fatal().Err(err).Msg("crear venta")
					}
					inventory[fuel] -= liters
				}
				inventory[fuel] = math.Max(0, inventory[fuel])

				// Snapshot de cierre del día.
				snap := &entity.InventorySnapshot{
					ID:           uuid.New().String(),
					StationID:    station.ID,
					FuelType:     fuel,
					LitersOnHand: math.Round(inventory[fuel]*10) / 10,
					Capacity:     capacity,
					SnapshotDate: day,
					CreatedAt:    now,
				}
				if err := snapRepo.Upsert(ctx, snap); err != nil {
					log.Fatal().Err(err).Msg("crear snapshot")
				}
			}
		}
		log.Info().Str("code", seed.code).Msg("estación sembrada")
	}

	log.Info().Int("stations", len(stationSeeds)).Msg("seed completo: 30 días de datos")
}
