package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/forecast"
	"github.com/controlpetro/control-petro-api/internal/domain/repository"
)

var _ repository.FuelTransactionRepository = (*FuelTransactionRepo)(nil)

// FuelTransactionRepo implementación sobre PostgreSQL (usable con pool o tx).
type FuelTransactionRepo struct {
	q Querier
}

// NewFuelTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFuelTransactionRepository(q Querier) *FuelTransactionRepo {
	return &FuelTransactionRepo{q: q}
}

// Create persiste una transacción de combustible.
func (r *FuelTransactionRepo) Create(ctx context.Context, tx *entity.FuelTransaction) error {
	query := `
		INSERT INTO fuel_transactions (id, station_id, fuel_type, transaction_type, liters, price_per_liter, timestamp, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	notes := (*string)(nil)
	if tx.Notes != "" {
		notes = &tx.Notes
	}
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.StationID, string(tx.FuelType), tx.Type,
		tx.Liters, tx.PricePerLiter, tx.Timestamp, notes,
	)
	if err != nil {
		return fmt.Errorf("create fuel transaction: %w", err)
	}
	return nil
}

// DailySalesTotals agrega las ventas por día calendario desde `since`, en orden
// ascendente. Los días sin ventas no aparecen: un hueco en la serie es un hueco de datos.
func (r *FuelTransactionRepo) DailySalesTotals(ctx context.Context, stationID string, fuel entity.FuelType, since time.Time) ([]forecast.SalesDay, error) {
	query := `
		SELECT date(timestamp) AS day, SUM(liters) AS liters
		FROM fuel_transactions
		WHERE station_id = $1
		  AND fuel_type = $2
		  AND transaction_type = 'sold'
		  AND timestamp >= $3
		GROUP BY date(timestamp)
		ORDER BY day ASC`
	rows, err := r.q.Query(ctx, query, stationID, string(fuel), since)
	if err != nil {
		return nil, fmt.Errorf("daily sales totals: %w", err)
	}
	defer rows.Close()

	var series []forecast.SalesDay
	for rows.Next() {
		var d forecast.SalesDay
		if err := rows.Scan(&d.Date, &d.Liters); err != nil {
			return nil, fmt.Errorf("scan sales day: %w", err)
		}
		series = append(series, d)
	}
	return series, rows.Err()
}
