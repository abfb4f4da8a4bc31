package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/repository"
)

var _ repository.InventorySnapshotRepository = (*InventorySnapshotRepo)(nil)

// InventorySnapshotRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventorySnapshotRepo struct {
	q Querier
}

// NewInventorySnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventorySnapshotRepository(q Querier) *InventorySnapshotRepo {
	return &InventorySnapshotRepo{q: q}
}

const snapshotColumns = `id, station_id, fuel_type, liters_on_hand, capacity, snapshot_date, created_at`

// GetLatest devuelve el snapshot más reciente por fecha; (nil, nil) si nunca se registró uno.
func (r *InventorySnapshotRepo) GetLatest(ctx context.Context, stationID string, fuel entity.FuelType) (*entity.InventorySnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM inventory_snapshots
		WHERE station_id = $1 AND fuel_type = $2
		ORDER BY snapshot_date DESC
		LIMIT 1`
	snap, err := scanSnapshot(r.q.QueryRow(ctx, query, stationID, string(fuel)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest snapshot: %w", err)
	}
	return snap, nil
}

// GetForUpdate obtiene el snapshot de una fecha con bloqueo de fila; (nil, nil) si no existe.
func (r *InventorySnapshotRepo) GetForUpdate(ctx context.Context, stationID string, fuel entity.FuelType, date time.Time) (*entity.InventorySnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM inventory_snapshots
		WHERE station_id = $1 AND fuel_type = $2 AND snapshot_date = $3
		FOR UPDATE`
	snap, err := scanSnapshot(r.q.QueryRow(ctx, query, stationID, string(fuel), date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot for update: %w", err)
	}
	return snap, nil
}

// Upsert inserta o actualiza el snapshot por (estación, combustible, fecha).
func (r *InventorySnapshotRepo) Upsert(ctx context.Context, snap *entity.InventorySnapshot) error {
	query := `
		INSERT INTO inventory_snapshots (` + snapshotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (station_id, fuel_type, snapshot_date)
		DO UPDATE SET liters_on_hand = EXCLUDED.liters_on_hand, capacity = EXCLUDED.capacity`
	_, err := r.q.Exec(ctx, query,
		snap.ID, snap.StationID, string(snap.FuelType),
		snap.LitersOnHand, snap.Capacity, snap.SnapshotDate, snap.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// ListByDate snapshots de todas las estaciones para una fecha.
func (r *InventorySnapshotRepo) ListByDate(ctx context.Context, date time.Time) ([]*entity.InventorySnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM inventory_snapshots
		WHERE snapshot_date = $1
		ORDER BY station_id, fuel_type`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list snapshots by date: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventorySnapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		list = append(list, snap)
	}
	return list, rows.Err()
}

func scanSnapshot(row pgx.Row) (*entity.InventorySnapshot, error) {
	var s entity.InventorySnapshot
	var fuel string
	err := row.Scan(&s.ID, &s.StationID, &fuel, &s.LitersOnHand, &s.Capacity, &s.SnapshotDate, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.FuelType = entity.FuelType(fuel)
	return &s, nil
}
