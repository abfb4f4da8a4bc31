package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de combustible.
const (
	TransactionSold     = "sold"
	TransactionReceived = "received"
)

// FuelTransaction registra una venta o recepción de combustible en una estación.
// Es la fuente cruda de la que se derivan los totales diarios de venta.
type FuelTransaction struct {
	ID            string
	StationID     string
	FuelType      FuelType
	Type          string // sold | received
	Liters        float64
	PricePerLiter *decimal.Decimal // opcional; precio de venta o costo de recepción
	Timestamp     time.Time
	Notes         string
}
