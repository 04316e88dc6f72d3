package repository

import (
	"context"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
)

// ModelRepository define el puerto de lectura del catálogo de modelos.
type ModelRepository interface {
	// GetByID devuelve (nil, nil) si el modelo no existe.
	GetByID(ctx context.Context, id string) (*entity.Model, error)
}

// ConfigurationRepository define el puerto de lectura de configuraciones por modelo
// (configuración por defecto y componentes alternos). Solo lectura.
type ConfigurationRepository interface {
	ExistsAlternatesByModel(ctx context.Context, modelID string) (bool, error)
	// ListAlternatesByModel devuelve las entradas con AltComponent cargado, en orden estable.
	ListAlternatesByModel(ctx context.Context, modelID string) ([]*entity.AlternateComponent, error)
	// ListDefaultsByModel devuelve las entradas con Component cargado, en orden estable.
	ListDefaultsByModel(ctx context.Context, modelID string) ([]*entity.DefaultConfig, error)
}
