package forecast

// DefaultHorizonDays horizonte de pronóstico por defecto.
const DefaultHorizonDays = 7

// NotDepletingDays sentinela para "sin riesgo de agotamiento a corto plazo".
// Se usa en lugar de infinito cuando la demanda promedio es cero, para que la
// aritmética aguas abajo (gates, ordenamiento) siga bien definida.
const NotDepletingDays = 999

// Policy umbrales del pronóstico de demanda. Los valores por defecto vienen
// calibrados empíricamente sobre la operación; tratarlos como política, no como
// constantes del algoritmo.
type Policy struct {
	// MinObservations mínimo de días observados para emitir un pronóstico.
	MinObservations int
	// WMAWeights perfil de pesos del promedio móvil ponderado, del día más
	// antiguo al más reciente. Con menos días observados que pesos se usa una
	// secuencia ascendente 1..n.
	WMAWeights []float64
	// TrendWindow días (máximo) sobre los que se ajusta la regresión de tendencia.
	TrendWindow int
	// TrendMinPoints mínimo de puntos para ajustar tendencia; por debajo la
	// pendiente es cero para no ajustar ruido.
	TrendMinPoints int
	// StableTierDays días observados a partir de los cuales la confianza se
	// calcula por volatilidad (coeficiente de variación).
	StableTierDays int
	// MidTierDays días observados para la confianza fija intermedia.
	MidTierDays       int
	MidTierConfidence float64
	LowTierConfidence float64
	// MinConfidence / MaxConfidence acotan la confianza del tramo por volatilidad.
	MinConfidence float64
	MaxConfidence float64
	// VolatilityPenalty factor que convierte coeficiente de variación en castigo de confianza.
	VolatilityPenalty float64
}

// DefaultPolicy política de pronóstico con los umbrales de producción.
func DefaultPolicy() Policy {
	return Policy{
		MinObservations:   3,
		WMAWeights:        []float64{1, 1, 2, 2, 3, 3, 4},
		TrendWindow:       14,
		TrendMinPoints:    5,
		StableTierDays:    14,
		MidTierDays:       7,
		MidTierConfidence: 0.80,
		LowTierConfidence: 0.65,
		MinConfidence:     0.70,
		MaxConfidence:     0.99,
		VolatilityPenalty: 0.5,
	}
}
