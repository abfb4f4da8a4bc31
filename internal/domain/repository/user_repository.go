package repository

import (
	"context"

	"github.com/controlpetro/control-petro-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios del panel.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindByEmail devuelve (nil, nil) si el email no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
