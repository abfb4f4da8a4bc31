// Package forecast implementa el pronóstico de demanda diaria de combustible:
// promedio móvil ponderado con detección de tendencia, ajuste por día de la
// semana y puntaje de confianza. Es un servicio de dominio puro: determinista
// dada la misma serie, horizonte y fecha base.
package forecast

import (
	"time"

	"github.com/controlpetro/control-petro-api/internal/domain"
)

// SalesDay total vendido de un combustible en una estación durante un día calendario.
// Los días sin ventas no aparecen en la serie: un hueco es ausencia de datos,
// no demanda cero.
type SalesDay struct {
	Date   time.Time
	Liters float64
}

// DayPrediction litros proyectados para un día futuro.
type DayPrediction struct {
	Date            time.Time
	PredictedLiters float64
	WeekdayFactor   float64
}

// DemandForecast resultado del pronóstico para un par estación/combustible.
// Los campos numéricos vienen redondeados a precisión de presentación
// (litros enteros, tendencia a 1 decimal, confianza a 3).
type DemandForecast struct {
	BaseDate         time.Time
	HorizonDays      int
	AvgDailyLiters   float64
	DailyTrendLiters float64
	Confidence       float64
	Days             []DayPrediction
}

// Predict pronostica la demanda diaria para los próximos horizonDays a partir
// de baseDate. La serie debe venir ordenada cronológicamente. Con menos de
// p.MinObservations días observados devuelve domain.ErrInsufficientData.
func Predict(series []SalesDay, horizonDays int, baseDate time.Time, p Policy) (*DemandForecast, error) {
	n := len(series)
	if n < p.MinObservations {
		return nil, domain.ErrInsufficientData
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	values := make([]float64, n)
	for i, d := range series {
		values[i] = d.Liters
	}

	// Promedio móvil ponderado: los días recientes pesan más para reaccionar
	// a cambios de corto plazo.
	weights := wmaWeights(n, p.WMAWeights)
	recent := values[n-len(weights):]
	wma := weightedMean(recent, weights)

	// Tendencia: pendiente de la regresión sobre la cola de la serie.
	trendTail := values[n-min(p.TrendWindow, n):]
	var trend float64
	if len(trendTail) >= p.TrendMinPoints {
		trend = olsSlope(trendTail)
	}

	multipliers := weekdayMultipliers(series, values)

	days := make([]DayPrediction, 0, horizonDays)
	for d := 1; d <= horizonDays; d++ {
		date := baseDate.AddDate(0, 0, d)
		mult, ok := multipliers[date.Weekday()]
		if !ok {
			mult = 1.0
		}
		predicted := (wma + trend*float64(d)) * mult
		if predicted < 0 {
			predicted = 0
		}
		days = append(days, DayPrediction{
			Date:            date,
			PredictedLiters: round0(predicted),
			WeekdayFactor:   round3(mult),
		})
	}

	return &DemandForecast{
		BaseDate:         baseDate,
		HorizonDays:      horizonDays,
		AvgDailyLiters:   round0(wma),
		DailyTrendLiters: round1(trend),
		Confidence:       round3(confidence(values, p)),
		Days:             days,
	}, nil
}

// wmaWeights devuelve el perfil de pesos aplicable a n observaciones: el perfil
// fijo completo cuando hay al menos tantas observaciones como pesos, o una
// secuencia ascendente 1..n cuando hay menos.
func wmaWeights(n int, profile []float64) []float64 {
	if n >= len(profile) {
		return profile
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = float64(i + 1)
	}
	return w
}

// weekdayMultipliers factor de estacionalidad por día de la semana:
// promedio del día ÷ promedio global. Un promedio global de 0 fuerza 1.0
// para evitar división entre cero.
func weekdayMultipliers(series []SalesDay, values []float64) map[time.Weekday]float64 {
	sums := make(map[time.Weekday]float64)
	counts := make(map[time.Weekday]int)
	for _, d := range series {
		wd := d.Date.Weekday()
		sums[wd] += d.Liters
		counts[wd]++
	}
	overall := mean(values)
	multipliers := make(map[time.Weekday]float64, len(sums))
	for wd, sum := range sums {
		if overall > 0 {
			multipliers[wd] = sum / float64(counts[wd]) / overall
		} else {
			multipliers[wd] = 1.0
		}
	}
	return multipliers
}

// confidence puntúa la calidad del pronóstico por volumen y estabilidad del
// historial: con historial amplio castiga la volatilidad (coeficiente de
// variación); con historial corto usa los niveles fijos de la política.
func confidence(values []float64, p Policy) float64 {
	n := len(values)
	switch {
	case n >= p.StableTierDays:
		cv := 1.0
		if m := mean(values); m > 0 {
			cv = stdDevPop(values) / m
		}
		return clamp(1.0-cv*p.VolatilityPenalty, p.MinConfidence, p.MaxConfidence)
	case n >= p.MidTierDays:
		return p.MidTierConfidence
	default:
		return p.LowTierConfidence
	}
}
