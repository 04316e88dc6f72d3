package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/vconf-api/internal/domain"
	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/pricing"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

// CommitInput datos ya validados, resueltos y tarifados para persistir la factura.
type CommitInput struct {
	User           *entity.User
	Model          *entity.Model
	Quantity       int
	CustomerDetail string
	Pricing        pricing.Breakdown
	Resolution     *entity.Resolution
}

// InvoiceWriter persiste cabecera y detalles como una sola unidad atómica.
type InvoiceWriter struct {
	txRunner InvoiceTxRunner
	now      func() time.Time
}

// NewInvoiceWriter construye el writer. now puede ser nil (usa time.Now).
func NewInvoiceWriter(txRunner InvoiceTxRunner, now func() time.Time) *InvoiceWriter {
	if now == nil {
		now = time.Now
	}
	return &InvoiceWriter{txRunner: txRunner, now: now}
}

// Commit guarda la cabecera en estado Confirmed y una línea por componente efectivo con su precio congelado.
// Cualquier fallo del store se devuelve envuelto en domain.ErrPersistence y no deja nada visible.
func (w *InvoiceWriter) Commit(ctx context.Context, in CommitInput) (*entity.Invoice, []*entity.InvoiceDetail, error) {
	if in.User == nil || in.Model == nil || in.Resolution == nil {
		return nil, nil, domain.ErrInvalidInput
	}
	now := w.now()
	inv := &entity.Invoice{
		UserID:         in.User.ID,
		ModelID:        in.Model.ID,
		Quantity:       in.Quantity,
		BaseAmount:     in.Pricing.Base,
		TaxAmount:      in.Pricing.Tax,
		TotalAmount:    in.Pricing.Total,
		CustomerDetail: in.CustomerDetail,
		Date:           now,
		Status:         entity.InvoiceStatusConfirmed,
		CreatedAt:      now,
	}

	var details []*entity.InvoiceDetail
	err := w.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			return err
		}
		details = make([]*entity.InvoiceDetail, 0, len(in.Resolution.Components))
		for _, c := range in.Resolution.Components {
			details = append(details, &entity.InvoiceDetail{
				InvoiceID:      inv.ID,
				ComponentID:    c.Component.ID,
				ComponentPrice: c.UnitPrice,
				ComponentName:  c.Component.Name,
				ComponentType:  c.Component.Type,
			})
		}
		if len(details) == 0 {
			return nil
		}
		return invoiceRepo.CreateDetails(ctx, details)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return inv, details, nil
}
