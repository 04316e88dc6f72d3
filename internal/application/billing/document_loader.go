package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/vconf-api/internal/domain"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

// DocumentLoader reconstruye un InvoiceDocument desde el store (descarga de PDF y reintentos de envío).
type DocumentLoader struct {
	invoiceRepo repository.InvoiceRepository
	modelRepo   repository.ModelRepository
	userRepo    repository.UserRepository
}

// NewDocumentLoader construye el loader.
func NewDocumentLoader(
	invoiceRepo repository.InvoiceRepository,
	modelRepo repository.ModelRepository,
	userRepo repository.UserRepository,
) *DocumentLoader {
	return &DocumentLoader{invoiceRepo: invoiceRepo, modelRepo: modelRepo, userRepo: userRepo}
}

// Load devuelve la factura con sus líneas (precios congelados) y los datos de presentación.
func (l *DocumentLoader) Load(ctx context.Context, invoiceID string) (*InvoiceDocument, error) {
	inv, err := l.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	details, err := l.invoiceRepo.GetDetailsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("obtener detalles: %w", err)
	}
	doc := &InvoiceDocument{Invoice: inv, Details: details, ModelName: "Modelo " + inv.ModelID}
	if model, mErr := l.modelRepo.GetByID(ctx, inv.ModelID); mErr == nil && model != nil {
		doc.ModelName = model.Name
	}
	user, err := l.userRepo.GetByID(ctx, inv.UserID)
	if err != nil {
		return nil, fmt.Errorf("obtener usuario: %w", err)
	}
	if user != nil {
		doc.CustomerName = user.Name
		doc.CustomerEmail = user.Email
	}
	return doc, nil
}
