package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/repository"
)

var _ repository.PredictionRepository = (*PredictionRepo)(nil)

// PredictionRepo implementación de PredictionRepository sobre PostgreSQL.
// Usa el pool directamente: CreateBatch abre su propia transacción.
type PredictionRepo struct {
	pool *pgxpool.Pool
}

// NewPredictionRepository construye el adaptador de recomendaciones.
func NewPredictionRepository(pool *pgxpool.Pool) *PredictionRepo {
	return &PredictionRepo{pool: pool}
}

// CreateBatch persiste el lote de una corrida en una sola transacción.
// Un lote vacío es un no-op.
func (r *PredictionRepo) CreateBatch(ctx context.Context, predictions []*entity.Prediction) error {
	if len(predictions) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO predictions (id, station_id, fuel_type, recommended_liters, recommended_date, urgency, confidence, reason, fulfilled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, p := range predictions {
		_, err := tx.Exec(ctx, query,
			p.ID, p.StationID, string(p.FuelType),
			p.RecommendedLiters, p.RecommendedDate, p.Urgency,
			p.Confidence, p.Reason, p.Fulfilled, p.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert prediction: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// CountPendingFrom cuenta recomendaciones sin surtir con fecha recomendada desde `from`.
func (r *PredictionRepo) CountPendingFrom(ctx context.Context, from time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM predictions
		WHERE NOT fulfilled AND recommended_date >= $1`
	var count int
	if err := r.pool.QueryRow(ctx, query, from).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pending predictions: %w", err)
	}
	return count, nil
}
