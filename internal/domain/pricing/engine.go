// Package pricing calcula los montos de una factura a partir de la configuración efectiva.
//
//	Personalizado (alternos): Base = PrecioModelo * Cant + Σ precio alternos
//	Por defecto:              Base = PrecioModelo * Cant   (los componentes ya están en el precio del modelo)
//	Tax   = round(Base * TaxRate, Scale)
//	Total = Base + Tax
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
)

// Valores por defecto de la tarifa de impuesto (18%) y la escala monetaria (2 decimales).
var DefaultTaxRate = decimal.RequireFromString("0.18")

const DefaultScale int32 = 2

// Breakdown es el resultado del cálculo.
type Breakdown struct {
	ModelAmount decimal.Decimal // PrecioModelo * Cant
	DeltaSum    decimal.Decimal // aporte de alternos (cero en la ruta por defecto)
	Base        decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
	TaxRate     decimal.Decimal
}

// Engine es una función pura de sus entradas; la tarifa se inyecta desde configuración.
type Engine struct {
	taxRate decimal.Decimal
	scale   int32
}

// NewEngine construye el motor. Una tarifa mayor que 1 se interpreta como porcentaje (18 → 0.18).
// Una tarifa negativa o una escala negativa usan los valores por defecto.
func NewEngine(taxRate decimal.Decimal, scale int32) *Engine {
	return &Engine{taxRate: NormalizeRate(taxRate), scale: normalizeScale(scale)}
}

// NewDefaultEngine usa 18% y 2 decimales.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultTaxRate, DefaultScale)
}

// TaxRate devuelve la tarifa fraccional en uso.
func (e *Engine) TaxRate() decimal.Decimal { return e.taxRate }

// Compute calcula base, delta, impuesto y total. quantity debe venir validada por el caller.
func (e *Engine) Compute(unitModelPrice decimal.Decimal, quantity int, res *entity.Resolution) Breakdown {
	modelAmount := unitModelPrice.Mul(decimal.NewFromInt(int64(quantity)))

	delta := decimal.Zero
	if res.Customized() {
		for _, c := range res.Components {
			delta = delta.Add(c.UnitPrice)
		}
	}

	base := modelAmount.Add(delta).Round(e.scale)
	tax := base.Mul(e.taxRate).Round(e.scale)
	return Breakdown{
		ModelAmount: modelAmount.Round(e.scale),
		DeltaSum:    delta.Round(e.scale),
		Base:        base,
		Tax:         tax,
		Total:       base.Add(tax),
		TaxRate:     e.taxRate,
	}
}

// NormalizeRate convierte porcentajes (>1) a fracción.
func NormalizeRate(rate decimal.Decimal) decimal.Decimal {
	if rate.IsNegative() {
		return DefaultTaxRate
	}
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return rate.Div(decimal.NewFromInt(100))
	}
	return rate
}

func normalizeScale(scale int32) int32 {
	if scale < 0 {
		return DefaultScale
	}
	return scale
}
