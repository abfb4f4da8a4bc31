package dto

// DashboardSummaryDTO indicadores del día para el panel principal.
type DashboardSummaryDTO struct {
	TotalSoldToday   float64            `json:"total_sold_today"`
	FuelSold         map[string]float64 `json:"fuel_sold"`
	RevenueToday     string             `json:"revenue_today"` // decimal serializado como string
	ChangePct        float64            `json:"change_pct"`    // vs. ayer
	ActiveStations   int                `json:"active_stations"`
	CriticalStations int                `json:"critical_stations"`
	LowStations      int                `json:"low_stations"`
	NormalStations   int                `json:"normal_stations"`
	PendingOrders    int                `json:"pending_orders"`
	Date             string             `json:"date"`
}

// SalesChartDayDTO ventas de un día por combustible, para la gráfica del panel.
type SalesChartDayDTO struct {
	Date    string  `json:"date"`
	Magna   float64 `json:"magna"`
	Premium float64 `json:"premium"`
	Diesel  float64 `json:"diesel"`
	Total   float64 `json:"total"`
}

// AlertDTO alerta operativa de nivel de tanque.
type AlertDTO struct {
	Type    string `json:"type"` // critical | warning
	Station string `json:"station"`
	Message string `json:"message"`
}
