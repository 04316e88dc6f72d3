package repository

import (
	"context"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
)

// UserRepository define el puerto de lectura de usuarios (el ciclo de vida lo gestiona autenticación).
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
