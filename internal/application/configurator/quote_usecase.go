package configurator

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vconf-api/internal/application/dto"
	"github.com/jhoicas/vconf-api/internal/domain"
	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/pricing"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

// QuoteUseCase lecturas del configurador: configuración por defecto y cotización sin persistir.
type QuoteUseCase struct {
	modelRepo  repository.ModelRepository
	configRepo repository.ConfigurationRepository
	resolver   *Resolver
	engine     *pricing.Engine
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(
	modelRepo repository.ModelRepository,
	configRepo repository.ConfigurationRepository,
	resolver *Resolver,
	engine *pricing.Engine,
) *QuoteUseCase {
	return &QuoteUseCase{modelRepo: modelRepo, configRepo: configRepo, resolver: resolver, engine: engine}
}

// DefaultConfiguration devuelve el modelo con sus componentes estándar y el precio total = precio * qty.
func (uc *QuoteUseCase) DefaultConfiguration(ctx context.Context, modelID string, qty int) (*dto.DefaultConfigResponse, error) {
	if modelID == "" || qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	model, err := uc.loadModel(ctx, modelID)
	if err != nil {
		return nil, err
	}
	defaults, err := uc.configRepo.ListDefaultsByModel(ctx, modelID)
	if err != nil {
		return nil, fmt.Errorf("listar configuración por defecto: %w", err)
	}
	components := make([]dto.ComponentResponse, 0, len(defaults))
	for _, d := range defaults {
		if d.Component == nil {
			continue
		}
		components = append(components, toComponentResponse(*d.Component, d.Component.Price))
	}
	return &dto.DefaultConfigResponse{
		ModelID:          model.ID,
		ModelName:        model.Name,
		SegmentName:      model.SegmentName,
		ManufacturerName: model.ManufacturerName,
		UnitPrice:        model.Price,
		MinQty:           model.MinQty,
		Quantity:         qty,
		TotalPrice:       model.Price.Mul(decimal.NewFromInt(int64(qty))),
		Components:       components,
	}, nil
}

// Quote resuelve la configuración efectiva y la tarifa igual que la generación de factura, sin persistir.
func (uc *QuoteUseCase) Quote(ctx context.Context, modelID string, qty int) (*dto.QuoteResponse, error) {
	if modelID == "" || qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	model, err := uc.loadModel(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if qty < model.MinQty {
		return nil, fmt.Errorf("%w (mínimo %d)", domain.ErrQuantityBelowMinimum, model.MinQty)
	}
	res, err := uc.resolver.Resolve(ctx, modelID)
	if err != nil {
		return nil, err
	}
	b := uc.engine.Compute(model.Price, qty, res)

	components := make([]dto.ComponentResponse, 0, len(res.Components))
	for _, c := range res.Components {
		components = append(components, toComponentResponse(c.Component, c.UnitPrice))
	}
	return &dto.QuoteResponse{
		ModelID:     model.ID,
		ModelName:   model.Name,
		Quantity:    qty,
		Source:      string(res.Source),
		Components:  components,
		ModelAmount: b.ModelAmount,
		DeltaAmount: b.DeltaSum,
		BaseAmount:  b.Base,
		TaxRate:     b.TaxRate,
		TaxAmount:   b.Tax,
		TotalAmount: b.Total,
	}, nil
}

func (uc *QuoteUseCase) loadModel(ctx context.Context, modelID string) (*entity.Model, error) {
	model, err := uc.modelRepo.GetByID(ctx, modelID)
	if err != nil {
		return nil, fmt.Errorf("obtener modelo: %w", err)
	}
	if model == nil {
		return nil, domain.ErrModelNotFound
	}
	return model, nil
}

func toComponentResponse(c entity.Component, price decimal.Decimal) dto.ComponentResponse {
	return dto.ComponentResponse{ID: c.ID, Name: c.Name, Type: c.Type, Price: price}
}
