package forecast

import "math"

// Rutinas numéricas explícitas sobre secuencias ordenadas. Los casos n=0,1,2
// se manejan aquí de forma explícita en lugar de delegar en una librería vectorial.

// mean promedio aritmético. Devuelve 0 para una secuencia vacía.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDevPop desviación estándar poblacional (divisor n).
func stdDevPop(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(n))
}

// weightedMean promedio ponderado de values con weights (misma longitud).
// Con pesos que suman 0 o longitudes distintas devuelve el promedio simple.
func weightedMean(values, weights []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if len(weights) != len(values) {
		return mean(values)
	}
	var num, den float64
	for i, v := range values {
		num += v * weights[i]
		den += weights[i]
	}
	if den == 0 {
		return mean(values)
	}
	return num / den
}

// olsSlope pendiente de la regresión lineal de mínimos cuadrados de values
// contra su índice (0..n-1). Con menos de 2 puntos la pendiente es 0.
func olsSlope(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	// x = 0..n-1; las sumas de x y x² tienen forma cerrada
	fn := float64(n)
	sumX := fn * (fn - 1) / 2
	sumXX := fn * (fn - 1) * (2*fn - 1) / 6
	var sumY, sumXY float64
	for i, v := range values {
		sumY += v
		sumXY += float64(i) * v
	}
	den := fn*sumXX - sumX*sumX
	if den == 0 {
		return 0
	}
	return (fn*sumXY - sumX*sumY) / den
}

// clamp acota v al rango [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// round0, round1, round3 redondeos de presentación (el cálculo interno es a precisión completa).
func round0(v float64) float64 { return math.Round(v) }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
