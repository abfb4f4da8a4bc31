package dto

import "github.com/shopspring/decimal"

// RecordTransactionRequest registro de una venta o recepción de combustible.
type RecordTransactionRequest struct {
	StationID       string           `json:"station_id"`
	FuelType        string           `json:"fuel_type"`
	TransactionType string           `json:"transaction_type"` // sold | received
	Liters          float64          `json:"liters"`
	PricePerLiter   *decimal.Decimal `json:"price_per_liter"`
	Notes           string           `json:"notes"`
}

// RecordTransactionResponse confirmación del registro.
type RecordTransactionResponse struct {
	TransactionID string `json:"transaction_id"`
}

// InventorySummaryDTO existencia total de la flota por combustible hoy,
// contra la capacidad instalada.
type InventorySummaryDTO struct {
	Magna         float64            `json:"magna"`
	Premium       float64            `json:"premium"`
	Diesel        float64            `json:"diesel"`
	Total         float64            `json:"total"`
	TotalCapacity map[string]float64 `json:"total_capacity"`
}

// InventoryHistoryDayDTO flujo diario de la flota: recibido, vendido y existencia.
type InventoryHistoryDayDTO struct {
	Date     string  `json:"date"`
	Received float64 `json:"received"`
	Sold     float64 `json:"sold"`
	OnHand   float64 `json:"on_hand"`
	Net      float64 `json:"net"`
}
