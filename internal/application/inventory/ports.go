package inventory

import (
	"context"

	"github.com/controlpetro/control-petro-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la transacción de combustible y
// el snapshot del día se escriban de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.FuelTransactionRepository,
		snapRepo repository.InventorySnapshotRepository,
	) error) error
}
