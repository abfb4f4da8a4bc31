package entity

import "time"

// InventorySnapshot nivel de inventario de un combustible en una estación al cierre de un día.
// Única por (estación, combustible, fecha); la escribe el flujo de registro de
// transacciones y el motor de pronóstico solo la lee.
type InventorySnapshot struct {
	ID           string
	StationID    string
	FuelType     FuelType
	LitersOnHand float64
	Capacity     float64
	SnapshotDate time.Time // solo fecha; la hora se ignora
	CreatedAt    time.Time
}

// FillPct porcentaje de llenado del tanque (0-100). Capacidad desconocida (<= 0) da 0.
func (s *InventorySnapshot) FillPct() float64 {
	if s.Capacity <= 0 {
		return 0
	}
	return s.LitersOnHand / s.Capacity * 100
}
