package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

var _ repository.ConfigurationRepository = (*ConfigurationRepo)(nil)

// ConfigurationRepo lectura de default_configs y alternate_components con el componente cargado.
// Ambas listas se ordenan por seq (orden de alta en el catálogo).
type ConfigurationRepo struct {
	q Querier
}

// NewConfigurationRepository construye el adaptador.
func NewConfigurationRepository(q Querier) *ConfigurationRepo {
	return &ConfigurationRepo{q: q}
}

// ExistsAlternatesByModel indica si el modelo tiene al menos un componente alterno.
func (r *ConfigurationRepo) ExistsAlternatesByModel(ctx context.Context, modelID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM alternate_components WHERE model_id = $1)`, modelID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists alternates: %w", err)
	}
	return exists, nil
}

// ListAlternatesByModel entradas alternas con AltComponent (precio actual del catálogo).
func (r *ConfigurationRepo) ListAlternatesByModel(ctx context.Context, modelID string) ([]*entity.AlternateComponent, error) {
	query := `
		SELECT a.id, a.model_id, COALESCE(a.component_id, ''), a.alt_component_id,
		       c.id, c.name, c.comp_type, c.price
		FROM alternate_components a
		JOIN components c ON c.id = a.alt_component_id
		WHERE a.model_id = $1
		ORDER BY a.seq`
	rows, err := r.q.Query(ctx, query, modelID)
	if err != nil {
		return nil, fmt.Errorf("list alternates: %w", err)
	}
	defer rows.Close()
	var list []*entity.AlternateComponent
	for rows.Next() {
		var a entity.AlternateComponent
		var c entity.Component
		if err := rows.Scan(&a.ID, &a.ModelID, &a.ComponentID, &a.AltComponentID, &c.ID, &c.Name, &c.Type, &c.Price); err != nil {
			return nil, fmt.Errorf("scan alternate: %w", err)
		}
		a.AltComponent = &c
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListDefaultsByModel entradas de la configuración estándar con Component.
func (r *ConfigurationRepo) ListDefaultsByModel(ctx context.Context, modelID string) ([]*entity.DefaultConfig, error) {
	query := `
		SELECT d.id, d.model_id, d.component_id,
		       c.id, c.name, c.comp_type, c.price
		FROM default_configs d
		JOIN components c ON c.id = d.component_id
		WHERE d.model_id = $1
		ORDER BY d.seq`
	rows, err := r.q.Query(ctx, query, modelID)
	if err != nil {
		return nil, fmt.Errorf("list default config: %w", err)
	}
	defer rows.Close()
	var list []*entity.DefaultConfig
	for rows.Next() {
		var d entity.DefaultConfig
		var c entity.Component
		if err := rows.Scan(&d.ID, &d.ModelID, &d.ComponentID, &c.ID, &c.Name, &c.Type, &c.Price); err != nil {
			return nil, fmt.Errorf("scan default config: %w", err)
		}
		d.Component = &c
		list = append(list, &d)
	}
	return list, rows.Err()
}
