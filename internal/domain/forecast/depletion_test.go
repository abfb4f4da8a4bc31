package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/controlpetro/control-petro-api/internal/domain/forecast"
)

func TestDaysUntilEmpty(t *testing.T) {
	tests := []struct {
		name         string
		current      float64
		avgDaily     float64
		capacity     float64
		thresholdPct float64
		want         float64
	}{
		{
			// Ya por debajo de la reserva: 5000 - 40000*0.15 = -1000 → 0.
			name:    "bajo la reserva de seguridad",
			current: 5000, avgDaily: 2000, capacity: 40000, thresholdPct: 0.15,
			want: 0,
		},
		{
			// Exactamente en la reserva también cuenta como agotado.
			name:    "exactamente en la reserva",
			current: 6000, avgDaily: 2000, capacity: 40000, thresholdPct: 0.15,
			want: 0,
		},
		{
			// (20000 - 6000) / 2000 = 7 días.
			name:    "caso normal",
			current: 20000, avgDaily: 2000, capacity: 40000, thresholdPct: 0.15,
			want: 7,
		},
		{
			// Demanda cero: sentinela, no infinito ni división entre cero.
			name:    "sin demanda",
			current: 20000, avgDaily: 0, capacity: 40000, thresholdPct: 0.15,
			want: forecast.NotDepletingDays,
		},
		{
			name:    "demanda negativa",
			current: 20000, avgDaily: -50, capacity: 40000, thresholdPct: 0.15,
			want: forecast.NotDepletingDays,
		},
		{
			// Capacidad desconocida: sin reserva, 1000 / 500 = 2 días.
			name:    "capacidad desconocida",
			current: 1000, avgDaily: 500, capacity: 0, thresholdPct: 0.15,
			want: 2,
		},
		{
			name:    "tanque vacío",
			current: 0, avgDaily: 500, capacity: 40000, thresholdPct: 0.15,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := forecast.DaysUntilEmpty(tt.current, tt.avgDaily, tt.capacity, tt.thresholdPct)
			assert.Equal(t, tt.want, got)
		})
	}
}
