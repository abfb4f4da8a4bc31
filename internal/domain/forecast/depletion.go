package forecast

// DaysUntilEmpty estima los días hasta que el inventario toque la reserva de
// seguridad (minThresholdPct de la capacidad).
//
//   - Ya por debajo de la reserva: 0 (el caso más urgente).
//   - Demanda promedio <= 0: NotDepletingDays (no se está agotando).
//   - Capacidad <= 0: capacidad desconocida; se asume reserva cero.
func DaysUntilEmpty(currentLiters, avgDailyDemand, capacity, minThresholdPct float64) float64 {
	var minLevel float64
	if capacity > 0 {
		minLevel = capacity * minThresholdPct
	}
	usable := currentLiters - minLevel
	if usable <= 0 {
		return 0
	}
	if avgDailyDemand <= 0 {
		return NotDepletingDays
	}
	return usable / avgDailyDemand
}
