package dto

// StationSummaryDTO identificación mínima de una estación.
type StationSummaryDTO struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// CreateStationRequest alta de una estación.
type CreateStationRequest struct {
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	MagnaCapacity   float64  `json:"magna_capacity"`
	PremiumCapacity float64  `json:"premium_capacity"`
	DieselCapacity  float64  `json:"diesel_capacity"`
}

// FuelLevelDTO nivel de un tanque de la estación.
type FuelLevelDTO struct {
	Liters   float64 `json:"liters"`
	Capacity float64 `json:"capacity"`
	Pct      float64 `json:"pct"`
}

// StationResponse estación con los niveles del día por combustible.
// Levels puede omitir combustibles sin snapshot registrado hoy.
type StationResponse struct {
	ID        string                  `json:"id"`
	Code      string                  `json:"code"`
	Name      string                  `json:"name"`
	Address   string                  `json:"address"`
	City      string                  `json:"city"`
	State     string                  `json:"state"`
	Latitude  *float64                `json:"latitude"`
	Longitude *float64                `json:"longitude"`
	Active    bool                    `json:"active"`
	Levels    map[string]FuelLevelDTO `json:"levels"`
}
