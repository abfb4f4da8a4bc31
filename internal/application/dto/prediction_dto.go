package dto

// DayPredictionDTO litros proyectados para un día futuro.
type DayPredictionDTO struct {
	Date            string  `json:"date"`
	PredictedLiters float64 `json:"predicted_liters"`
	DowMultiplier   float64 `json:"dow_multiplier"`
}

// DemandForecastDTO pronóstico de demanda para un par estación/combustible.
type DemandForecastDTO struct {
	StationID   string             `json:"station_id"`
	FuelType    string             `json:"fuel_type"`
	HorizonDays int                `json:"horizon_days"`
	AvgDaily    float64            `json:"avg_daily"`
	Trend       float64            `json:"trend"`
	Confidence  float64            `json:"confidence"`
	Predictions []DayPredictionDTO `json:"predictions"`
}

// OrderRecommendationDTO recomendación de pedido con su justificación auditable.
type OrderRecommendationDTO struct {
	StationID         string  `json:"station_id"`
	StationCode       string  `json:"station_code"`
	StationName       string  `json:"station_name"`
	StationAddress    string  `json:"station_address"`
	FuelType          string  `json:"fuel_type"`
	CurrentLiters     float64 `json:"current_liters"`
	CurrentPct        float64 `json:"current_pct"`
	Capacity          float64 `json:"capacity"`
	RecommendedLiters float64 `json:"recommended_liters"`
	RecommendedDate   string  `json:"recommended_date"`
	Urgency           string  `json:"urgency"`
	DaysUntilEmpty    float64 `json:"days_until_empty"`
	AvgDailyDemand    float64 `json:"avg_daily_demand"`
	Confidence        float64 `json:"confidence"`
	Reason            string  `json:"reason"`
	Trend             float64 `json:"trend"`
}

// FleetForecastBucketDTO demanda agregada de la flota para una fecha futura.
type FleetForecastBucketDTO struct {
	Date    string  `json:"date"`
	Magna   float64 `json:"magna"`
	Premium float64 `json:"premium"`
	Diesel  float64 `json:"diesel"`
	Total   float64 `json:"total"`
}

// InventoryLevelDTO nivel vigente de un tanque.
type InventoryLevelDTO struct {
	Liters   float64 `json:"liters"`
	Capacity float64 `json:"capacity"`
	Date     string  `json:"date"`
}

// StationOutlookDTO panorama de un par estación/combustible: inventario actual,
// pronóstico de demanda y días estimados de cobertura.
type StationOutlookDTO struct {
	Station          StationSummaryDTO  `json:"station"`
	FuelType         string             `json:"fuel_type"`
	CurrentInventory *InventoryLevelDTO `json:"current_inventory"`
	Demand           *DemandForecastDTO `json:"demand"`
	DaysUntilEmpty   *float64           `json:"days_until_empty"`
}
