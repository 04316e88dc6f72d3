package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vconf-api/internal/application/billing"
	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/infrastructure/pdf"
)

func sampleDocument(details []*entity.InvoiceDetail) billing.InvoiceDocument {
	return billing.InvoiceDocument{
		Invoice: &entity.Invoice{
			ID:             "4f9c2a1e-0000-0000-0000-000000000001",
			UserID:         "u-1",
			ModelID:        "m-1",
			Quantity:       2,
			BaseAmount:     decimal.RequireFromString("41200"),
			TaxAmount:      decimal.RequireFromString("7416"),
			TotalAmount:    decimal.RequireFromString("48616"),
			CustomerDetail: "Entrega en planta norte",
			Date:           time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Status:         entity.InvoiceStatusConfirmed,
		},
		Details:       details,
		ModelName:     "Sedan LX",
		CustomerName:  "Ana Pérez",
		CustomerEmail: "ana@example.com",
	}
}

func TestGenerateInvoicePDF_ConDetalles(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("")
	doc := sampleDocument([]*entity.InvoiceDetail{
		{ID: "d-1", ComponentID: "c-9", ComponentName: "Leather seats", ComponentType: "interior", ComponentPrice: decimal.RequireFromString("1200")},
	})

	out, err := g.GenerateInvoicePDF(context.Background(), doc)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "la salida debe ser un documento PDF")
}

func TestGenerateInvoicePDF_SinDetalles(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("Vehicle Configurator")
	out, err := g.GenerateInvoicePDF(context.Background(), sampleDocument(nil))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateInvoicePDF_SinFactura_RetornaError(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("")
	_, err := g.GenerateInvoicePDF(context.Background(), billing.InvoiceDocument{})
	assert.Error(t, err)
}
