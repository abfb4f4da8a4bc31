package repository

import (
	"context"
	"time"

	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/forecast"
)

// FuelTransactionRepository puerto de persistencia para transacciones de combustible.
type FuelTransactionRepository interface {
	Create(ctx context.Context, tx *entity.FuelTransaction) error
	// DailySalesTotals agrega las ventas (transaction_type = sold) por día
	// calendario desde `since`, en orden cronológico ascendente. Los días sin
	// ventas no se sintetizan como cero: un hueco en la serie es un hueco de
	// datos. Un rango vacío devuelve una serie vacía, no un error.
	DailySalesTotals(ctx context.Context, stationID string, fuel entity.FuelType, since time.Time) ([]forecast.SalesDay, error)
}
