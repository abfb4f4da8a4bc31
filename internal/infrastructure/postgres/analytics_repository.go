package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard y alertas.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// SoldTotals ventas agregadas en [from, to): litros totales, litros por combustible
// e ingresos de las ventas con precio registrado.
func (r *AnalyticsRepo) SoldTotals(ctx context.Context, from, to time.Time) (*repository.SoldTotalsResult, error) {
	const totalsQuery = `
	SELECT
	    COALESCE(SUM(liters), 0)                                   AS total_liters,
	    COALESCE(SUM(liters * COALESCE(price_per_liter, 0)), 0)    AS revenue
	FROM fuel_transactions
	WHERE transaction_type = 'sold'
	  AND timestamp >= $1 AND timestamp < $2`

	result := &repository.SoldTotalsResult{ByFuel: map[entity.FuelType]float64{}}
	err := r.pool.QueryRow(ctx, totalsQuery, from, to).Scan(&result.TotalLiters, &result.Revenue)
	if err != nil {
		return nil, fmt.Errorf("analytics.SoldTotals: %w", err)
	}

	const byFuelQuery = `
	SELECT fuel_type, SUM(liters)
	FROM fuel_transactions
	WHERE transaction_type = 'sold'
	  AND timestamp >= $1 AND timestamp < $2
	GROUP BY fuel_type`

	rows, err := r.pool.Query(ctx, byFuelQuery, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.SoldTotals by fuel: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var fuel string
		var liters float64
		if err := rows.Scan(&fuel, &liters); err != nil {
			return nil, fmt.Errorf("analytics.SoldTotals scan: %w", err)
		}
		result.ByFuel[entity.FuelType(fuel)] = liters
	}
	return result, rows.Err()
}

// DailySoldByFuel ventas por día y combustible en [from, to), orden ascendente por día.
func (r *AnalyticsRepo) DailySoldByFuel(ctx context.Context, from, to time.Time) ([]repository.FuelDayTotal, error) {
	const query = `
	SELECT date(timestamp) AS day, fuel_type, SUM(liters) AS liters
	FROM fuel_transactions
	WHERE transaction_type = 'sold'
	  AND timestamp >= $1 AND timestamp < $2
	GROUP BY date(timestamp), fuel_type
	ORDER BY day ASC, fuel_type`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.DailySoldByFuel: %w", err)
	}
	defer rows.Close()

	var results []repository.FuelDayTotal
	for rows.Next() {
		var row repository.FuelDayTotal
		var fuel string
		if err := rows.Scan(&row.Day, &fuel, &row.Liters); err != nil {
			return nil, fmt.Errorf("analytics.DailySoldByFuel scan: %w", err)
		}
		row.FuelType = entity.FuelType(fuel)
		results = append(results, row)
	}
	return results, rows.Err()
}

// DailyFlows litros recibidos vs vendidos (toda la flota) por día en [from, to).
func (r *AnalyticsRepo) DailyFlows(ctx context.Context, from, to time.Time) ([]repository.FlowDay, error) {
	const query = `
	SELECT
	    date(timestamp)                                                      AS day,
	    COALESCE(SUM(liters) FILTER (WHERE transaction_type = 'received'), 0) AS received,
	    COALESCE(SUM(liters) FILTER (WHERE transaction_type = 'sold'), 0)     AS sold
	FROM fuel_transactions
	WHERE timestamp >= $1 AND timestamp < $2
	GROUP BY date(timestamp)
	ORDER BY day ASC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.DailyFlows: %w", err)
	}
	defer rows.Close()

	var results []repository.FlowDay
	for rows.Next() {
		var row repository.FlowDay
		if err := rows.Scan(&row.Day, &row.Received, &row.Sold); err != nil {
			return nil, fmt.Errorf("analytics.DailyFlows scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// DailyOnHand existencia total de la flota por fecha de snapshot en [from, to].
func (r *AnalyticsRepo) DailyOnHand(ctx context.Context, from, to time.Time) ([]repository.DayVolume, error) {
	const query = `
	SELECT snapshot_date AS day, SUM(liters_on_hand) AS liters
	FROM inventory_snapshots
	WHERE snapshot_date BETWEEN $1 AND $2
	GROUP BY snapshot_date
	ORDER BY day ASC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.DailyOnHand: %w", err)
	}
	defer rows.Close()

	var results []repository.DayVolume
	for rows.Next() {
		var row repository.DayVolume
		if err := rows.Scan(&row.Day, &row.Liters); err != nil {
			return nil, fmt.Errorf("analytics.DailyOnHand scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TankLevels niveles de todos los tanques de estaciones activas en una fecha.
// El porcentaje se calcula en SQL, protegido contra capacidad cero.
func (r *AnalyticsRepo) TankLevels(ctx context.Context, date time.Time) ([]repository.StationFuelLevel, error) {
	const query = `
	SELECT
	    s.station_id,
	    st.name                                       AS station_name,
	    s.fuel_type,
	    s.liters_on_hand,
	    s.capacity,
	    CASE
	        WHEN s.capacity > 0
	        THEN s.liters_on_hand / s.capacity * 100
	        ELSE 0
	    END                                           AS pct
	FROM inventory_snapshots s
	JOIN stations st ON st.id = s.station_id
	WHERE s.snapshot_date = $1
	  AND st.active
	ORDER BY pct ASC`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("analytics.TankLevels: %w", err)
	}
	defer rows.Close()

	var results []repository.StationFuelLevel
	for rows.Next() {
		var row repository.StationFuelLevel
		var fuel string
		if err := rows.Scan(&row.StationID, &row.StationName, &fuel, &row.LitersOnHand, &row.Capacity, &row.Pct); err != nil {
			return nil, fmt.Errorf("analytics.TankLevels scan: %w", err)
		}
		row.FuelType = entity.FuelType(fuel)
		results = append(results, row)
	}
	return results, rows.Err()
}

// CapacityTotals capacidad instalada total por combustible de las estaciones activas.
func (r *AnalyticsRepo) CapacityTotals(ctx context.Context) (map[entity.FuelType]float64, error) {
	const query = `
	SELECT
	    COALESCE(SUM(magna_capacity), 0),
	    COALESCE(SUM(premium_capacity), 0),
	    COALESCE(SUM(diesel_capacity), 0)
	FROM stations
	WHERE active`

	var magna, premium, diesel float64
	if err := r.pool.QueryRow(ctx, query).Scan(&magna, &premium, &diesel); err != nil {
		return nil, fmt.Errorf("analytics.CapacityTotals: %w", err)
	}
	return map[entity.FuelType]float64{
		entity.FuelMagna:   magna,
		entity.FuelPremium: premium,
		entity.FuelDiesel:  diesel,
	}, nil
}
