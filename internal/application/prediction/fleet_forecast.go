package prediction

import (
	"context"
	"errors"
	"fmt"

	"github.com/controlpetro/control-petro-api/internal/application/dto"
	"github.com/controlpetro/control-petro-api/internal/domain"
	"github.com/controlpetro/control-petro-api/internal/domain/entity"
)

// FleetForecast suma los pronósticos por estación en cubetas por fecha futura,
// con el desglose por combustible y el gran total. stationID vacío agrega todas
// las estaciones activas. Un par sin datos suficientes aporta cero a su cubeta:
// los datos parciales no bloquean el reporte de flota.
func (uc *UseCase) FleetForecast(ctx context.Context, stationID string, days int) ([]dto.FleetForecastBucketDTO, error) {
	if days <= 0 {
		days = uc.policy.HorizonDays
	}

	var stations []*entity.Station
	if stationID != "" {
		station, err := uc.stationRepo.GetByID(ctx, stationID)
		if err != nil {
			return nil, err
		}
		if station == nil {
			return nil, domain.ErrStationNotFound
		}
		stations = []*entity.Station{station}
	} else {
		var err error
		stations, err = uc.stationRepo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("listar estaciones activas: %w", err)
		}
	}

	today := dateOf(uc.now())
	// Una cubeta por día futuro, indexada por offset-1.
	buckets := make([]map[entity.FuelType]float64, days)
	for i := range buckets {
		buckets[i] = make(map[entity.FuelType]float64, len(entity.AllFuelTypes))
	}

	for _, station := range stations {
		for _, fuel := range entity.AllFuelTypes {
			fc, err := uc.predict(ctx, station.ID, fuel, days, today)
			if errors.Is(err, domain.ErrInsufficientData) {
				continue // aporta cero, no bloquea la agregación
			}
			if err != nil {
				uc.log.Warn().Err(err).
					Str("station_id", station.ID).
					Str("fuel_type", string(fuel)).
					Msg("par omitido en el pronóstico de flota")
				continue
			}
			for i, day := range fc.Days {
				if i < days {
					buckets[i][fuel] += day.PredictedLiters
				}
			}
		}
	}

	out := make([]dto.FleetForecastBucketDTO, 0, days)
	for i, bucket := range buckets {
		row := dto.FleetForecastBucketDTO{
			Date:    today.AddDate(0, 0, i+1).Format(dto.DateLayout),
			Magna:   bucket[entity.FuelMagna],
			Premium: bucket[entity.FuelPremium],
			Diesel:  bucket[entity.FuelDiesel],
		}
		row.Total = row.Magna + row.Premium + row.Diesel
		out = append(out, row)
	}
	return out, nil
}
