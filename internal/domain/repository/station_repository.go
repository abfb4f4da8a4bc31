package repository

import (
	"context"

	"github.com/controlpetro/control-petro-api/internal/domain/entity"
)

// StationRepository puerto de persistencia para estaciones.
type StationRepository interface {
	Create(ctx context.Context, station *entity.Station) error
	GetByID(ctx context.Context, id string) (*entity.Station, error)
	// ListActive devuelve las estaciones activas ordenadas por código.
	ListActive(ctx context.Context) ([]*entity.Station, error)
}
