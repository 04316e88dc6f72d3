package configurator

import (
	"context"
	"fmt"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

// Resolver decide la configuración efectiva de un modelo: si existe al menos un componente alterno,
// el conjunto de alternos es la configuración completa; si no, la configuración por defecto.
// Nunca mezcla ambas fuentes. No valida que el modelo exista (lo hace el caller).
type Resolver struct {
	repo repository.ConfigurationRepository
}

// NewResolver construye el resolver.
func NewResolver(repo repository.ConfigurationRepository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve devuelve los componentes efectivos en el orden en que los entrega el catálogo.
// Un componente repetido en la misma fuente aparece una sola vez (primera aparición).
func (r *Resolver) Resolve(ctx context.Context, modelID string) (*entity.Resolution, error) {
	customized, err := r.repo.ExistsAlternatesByModel(ctx, modelID)
	if err != nil {
		return nil, fmt.Errorf("resolver: consultar alternos: %w", err)
	}

	res := &entity.Resolution{ModelID: modelID, Components: []entity.EffectiveComponent{}}
	seen := make(map[string]struct{})
	add := func(c *entity.Component) {
		if c == nil {
			return
		}
		if _, dup := seen[c.ID]; dup {
			return
		}
		seen[c.ID] = struct{}{}
		res.Components = append(res.Components, entity.EffectiveComponent{Component: *c, UnitPrice: c.Price})
	}

	if customized {
		res.Source = entity.SourceAlternate
		alternates, err := r.repo.ListAlternatesByModel(ctx, modelID)
		if err != nil {
			return nil, fmt.Errorf("resolver: listar alternos: %w", err)
		}
		for _, a := range alternates {
			add(a.AltComponent)
		}
		return res, nil
	}

	res.Source = entity.SourceDefault
	defaults, err := r.repo.ListDefaultsByModel(ctx, modelID)
	if err != nil {
		return nil, fmt.Errorf("resolver: listar configuración por defecto: %w", err)
	}
	for _, d := range defaults {
		add(d.Component)
	}
	return res, nil
}
