package repository

import (
	"context"
	"time"

	"github.com/controlpetro/control-petro-api/internal/domain/entity"
)

// PredictionRepository puerto de persistencia para recomendaciones de pedido.
type PredictionRepository interface {
	// CreateBatch persiste el lote de recomendaciones de una corrida en una
	// sola transacción. Un lote vacío es un no-op.
	CreateBatch(ctx context.Context, predictions []*entity.Prediction) error
	// CountPendingFrom cuenta recomendaciones sin surtir con fecha de entrega
	// recomendada desde `from` en adelante.
	CountPendingFrom(ctx context.Context, from time.Time) (int, error)
}
