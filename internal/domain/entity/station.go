package entity

import "time"

// DefaultTankCapacity capacidad asumida (litros) cuando una estación no tiene
// capacidad registrada para un combustible.
const DefaultTankCapacity = 40000

// Station representa una estación de servicio con sus capacidades de tanque por combustible.
type Station struct {
	ID              string
	Code            string
	Name            string
	Address         string
	City            string
	State           string
	Latitude        *float64
	Longitude       *float64
	MagnaCapacity   float64
	PremiumCapacity float64
	DieselCapacity  float64
	Active          bool
	CreatedAt       time.Time
}

// CapacityFor devuelve la capacidad del tanque para un combustible.
// Capacidades no registradas (<= 0) caen al valor por defecto.
func (s *Station) CapacityFor(fuel FuelType) float64 {
	var cap float64
	switch fuel {
	case FuelMagna:
		cap = s.MagnaCapacity
	case FuelPremium:
		cap = s.PremiumCapacity
	case FuelDiesel:
		cap = s.DieselCapacity
	}
	if cap <= 0 {
		return DefaultTankCapacity
	}
	return cap
}
