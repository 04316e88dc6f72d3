package billing

import (
	"context"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

// InvoiceTxRunner ejecuta fn dentro de una transacción con el repositorio de facturas atado a ella.
// Si fn retorna error no se confirma nada (rollback).
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// ConfigurationResolver calcula la configuración efectiva de un modelo.
type ConfigurationResolver interface {
	Resolve(ctx context.Context, modelID string) (*entity.Resolution, error)
}

// InvoiceDocument agrupa lo necesario para renderizar o enviar una factura ya persistida.
type InvoiceDocument struct {
	Invoice       *entity.Invoice
	Details       []*entity.InvoiceDetail
	ModelName     string
	CustomerName  string
	CustomerEmail string
}

// InvoicePDFGenerator renderiza la factura como PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc InvoiceDocument) ([]byte, error)
}

// Notifier entrega la factura confirmada al cliente. Puede fallar sin afectar a la factura ya persistida.
type Notifier interface {
	NotifyInvoiceConfirmed(ctx context.Context, doc InvoiceDocument) error
}
