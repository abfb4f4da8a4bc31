package repository

import (
	"context"
	"time"

	"github.com/controlpetro/control-petro-api/internal/domain/entity"
)

// InventorySnapshotRepository puerto de persistencia para snapshots de inventario.
// Un snapshot es único por (estación, combustible, fecha).
type InventorySnapshotRepository interface {
	// GetLatest devuelve el snapshot más reciente por fecha descendente,
	// o (nil, nil) si nunca se registró uno. Sin interpolación ni estimación:
	// la política de fallback la decide el caller.
	GetLatest(ctx context.Context, stationID string, fuel entity.FuelType) (*entity.InventorySnapshot, error)
	// GetForUpdate obtiene el snapshot de una fecha con bloqueo de fila
	// (SELECT FOR UPDATE); (nil, nil) si no existe. Solo válido dentro de una transacción.
	GetForUpdate(ctx context.Context, stationID string, fuel entity.FuelType, date time.Time) (*entity.InventorySnapshot, error)
	Upsert(ctx context.Context, snap *entity.InventorySnapshot) error
	// ListByDate snapshots de todas las estaciones para una fecha.
	ListByDate(ctx context.Context, date time.Time) ([]*entity.InventorySnapshot, error)
}
