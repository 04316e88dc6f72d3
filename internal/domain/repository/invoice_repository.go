package repository

import (
	"context"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice y detalles.
type InvoiceRepository interface {
	// Create persiste la cabecera; asigna ID si viene vacío.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// CreateDetails persiste todas las líneas en un solo lote.
	CreateDetails(ctx context.Context, details []*entity.InvoiceDetail) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	GetDetailsByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceDetail, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Invoice, error)
}
