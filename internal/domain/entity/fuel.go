package entity

// FuelType identifica el tipo de combustible que maneja una estación.
type FuelType string

// Tipos de combustible comercializados (nomenclatura Pemex).
const (
	FuelMagna   FuelType = "magna"
	FuelPremium FuelType = "premium"
	FuelDiesel  FuelType = "diesel"
)

// AllFuelTypes tipos de combustible en orden canónico.
var AllFuelTypes = []FuelType{FuelMagna, FuelPremium, FuelDiesel}

// Valid reporta si el tipo de combustible es uno de los conocidos.
func (f FuelType) Valid() bool {
	switch f {
	case FuelMagna, FuelPremium, FuelDiesel:
		return true
	}
	return false
}
