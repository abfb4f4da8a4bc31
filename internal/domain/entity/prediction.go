package entity

import "time"

// Niveles de urgencia de una recomendación de pedido.
const (
	UrgencyUrgent = "urgent"
	UrgencyHigh   = "high"
	UrgencyNormal = "normal"
)

// UrgencyRank orden de las urgencias para ranking (menor = más urgente).
func UrgencyRank(urgency string) int {
	switch urgency {
	case UrgencyUrgent:
		return 0
	case UrgencyHigh:
		return 1
	default:
		return 2
	}
}

// Prediction recomendación de pedido persistida para un par estación/combustible.
// El motor la crea y nunca la modifica; el flujo de surtido externo marca Fulfilled.
type Prediction struct {
	ID                string
	StationID         string
	FuelType          FuelType
	RecommendedLiters float64
	RecommendedDate   time.Time
	Urgency           string // urgent | high | normal
	Confidence        float64
	Reason            string
	Fulfilled         bool
	CreatedAt         time.Time
}
