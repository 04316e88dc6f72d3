package configurator_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
)

// catalogFake catálogo en memoria; cuenta lecturas para verificar qué fuente se consultó.
type catalogFake struct {
	models     map[string]*entity.Model
	defaults   map[string][]*entity.DefaultConfig
	alternates map[string][]*entity.AlternateComponent
	err        error

	defaultReads   int
	alternateReads int
}

func newCatalogFake() *catalogFake {
	return &catalogFake{
		models:     map[string]*entity.Model{},
		defaults:   map[string][]*entity.DefaultConfig{},
		alternates: map[string][]*entity.AlternateComponent{},
	}
}

func (f *catalogFake) GetByID(_ context.Context, id string) (*entity.Model, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.models[id], nil
}

func (f *catalogFake) ExistsAlternatesByModel(_ context.Context, modelID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return len(f.alternates[modelID]) > 0, nil
}

func (f *catalogFake) ListAlternatesByModel(_ context.Context, modelID string) ([]*entity.AlternateComponent, error) {
	f.alternateReads++
	if f.err != nil {
		return nil, f.err
	}
	return f.alternates[modelID], nil
}

func (f *catalogFake) ListDefaultsByModel(_ context.Context, modelID string) ([]*entity.DefaultConfig, error) {
	f.defaultReads++
	if f.err != nil {
		return nil, f.err
	}
	return f.defaults[modelID], nil
}

func comp(id, price string) *entity.Component {
	return &entity.Component{ID: id, Name: "Comp " + id, Type: "interior", Price: decimal.RequireFromString(price)}
}

func (f *catalogFake) addDefault(modelID string, c *entity.Component) {
	f.defaults[modelID] = append(f.defaults[modelID], &entity.DefaultConfig{
		ID: modelID + "-d-" + c.ID, ModelID: modelID, ComponentID: c.ID, Component: c,
	})
}

func (f *catalogFake) addAlternate(modelID, replaces string, c *entity.Component) {
	f.alternates[modelID] = append(f.alternates[modelID], &entity.AlternateComponent{
		ID: modelID + "-a-" + c.ID, ModelID: modelID, ComponentID: replaces, AltComponentID: c.ID, AltComponent: c,
	})
}
