package configurator_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vconf-api/internal/application/configurator"
	"github.com/jhoicas/vconf-api/internal/domain"
	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/pricing"
)

func newQuoteUC(cat *catalogFake) *configurator.QuoteUseCase {
	return configurator.NewQuoteUseCase(cat, cat, configurator.NewResolver(cat), pricing.NewDefaultEngine())
}

func seededCatalog() *catalogFake {
	cat := newCatalogFake()
	cat.models["m-1"] = &entity.Model{
		ID: "m-1", Name: "Sedan LX", Price: decimal.RequireFromString("20000"), MinQty: 2,
		SegmentName: "Sedan", ManufacturerName: "ACME",
	}
	cat.addDefault("m-1", comp("c1", "100"))
	cat.addDefault("m-1", comp("c2", "200"))
	return cat
}

func TestDefaultConfiguration_TotalEsPrecioPorCantidad(t *testing.T) {
	out, err := newQuoteUC(seededCatalog()).DefaultConfiguration(context.Background(), "m-1", 3)
	require.NoError(t, err)

	assert.Equal(t, "Sedan LX", out.ModelName)
	assert.Equal(t, "ACME", out.ManufacturerName)
	assert.Equal(t, "60000", out.TotalPrice.String())
	assert.Len(t, out.Components, 2)
}

func TestDefaultConfiguration_ModeloInexistente(t *testing.T) {
	_, err := newQuoteUC(seededCatalog()).DefaultConfiguration(context.Background(), "nope", 1)
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuote_RutaPorDefecto(t *testing.T) {
	out, err := newQuoteUC(seededCatalog()).Quote(context.Background(), "m-1", 2)
	require.NoError(t, err)

	assert.Equal(t, "DEFAULT", out.Source)
	assert.Equal(t, "40000", out.BaseAmount.String())
	assert.Equal(t, "7200", out.TaxAmount.String())
	assert.Equal(t, "47200", out.TotalAmount.String())
	assert.True(t, out.DeltaAmount.IsZero())
}

func TestQuote_RutaAlternos(t *testing.T) {
	cat := seededCatalog()
	cat.addAlternate("m-1", "c1", comp("c9", "1200"))

	out, err := newQuoteUC(cat).Quote(context.Background(), "m-1", 2)
	require.NoError(t, err)

	assert.Equal(t, "ALTERNATE", out.Source)
	assert.Equal(t, "1200", out.DeltaAmount.String())
	assert.Equal(t, "41200", out.BaseAmount.String())
	assert.Equal(t, "7416", out.TaxAmount.String())
	assert.Equal(t, "48616", out.TotalAmount.String())
}

func TestQuote_CantidadBajoMinimo(t *testing.T) {
	_, err := newQuoteUC(seededCatalog()).Quote(context.Background(), "m-1", 1)
	assert.ErrorIs(t, err, domain.ErrQuantityBelowMinimum)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuote_CantidadCero(t *testing.T) {
	_, err := newQuoteUC(seededCatalog()).Quote(context.Background(), "m-1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
