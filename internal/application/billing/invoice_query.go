package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/vconf-api/internal/application/dto"
	"github.com/jhoicas/vconf-api/internal/domain"
	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

// InvoiceQueryUseCase lecturas de facturas del usuario autenticado.
type InvoiceQueryUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceQueryUseCase construye el caso de uso.
func NewInvoiceQueryUseCase(invoiceRepo repository.InvoiceRepository) *InvoiceQueryUseCase {
	return &InvoiceQueryUseCase{invoiceRepo: invoiceRepo}
}

// GetInvoice obtiene una factura con su detalle. Solo el dueño (o un admin) puede verla.
func (uc *InvoiceQueryUseCase) GetInvoice(ctx context.Context, userID, role, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	if !CanAccess(inv, userID, role) {
		return nil, domain.ErrForbidden
	}
	details, err := uc.invoiceRepo.GetDetailsByInvoiceID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener detalles: %w", err)
	}
	resp := ToInvoiceResponse(inv, details)
	return &resp, nil
}

// ListInvoices lista las facturas del usuario, más recientes primero.
func (uc *InvoiceQueryUseCase) ListInvoices(ctx context.Context, userID string, page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	page.Normalize()
	list, err := uc.invoiceRepo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	out := &dto.InvoiceListResponse{
		Items: make([]dto.InvoiceResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, inv := range list {
		out.Items = append(out.Items, ToInvoiceResponse(inv, nil))
	}
	return out, nil
}

// CanAccess indica si el usuario puede leer la factura.
func CanAccess(inv *entity.Invoice, userID, role string) bool {
	return inv.UserID == userID || role == entity.RoleAdmin
}

// ToInvoiceResponse mapea entidad → DTO.
func ToInvoiceResponse(inv *entity.Invoice, details []*entity.InvoiceDetail) dto.InvoiceResponse {
	resp := dto.InvoiceResponse{
		ID:             inv.ID,
		UserID:         inv.UserID,
		ModelID:        inv.ModelID,
		Quantity:       inv.Quantity,
		BaseAmount:     inv.BaseAmount,
		TaxAmount:      inv.TaxAmount,
		TotalAmount:    inv.TotalAmount,
		CustomerDetail: inv.CustomerDetail,
		Date:           inv.Date.Format("2006-01-02"),
		Status:         inv.Status,
		Details:        make([]dto.InvoiceDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.InvoiceDetailResponse{
			ID:             d.ID,
			ComponentID:    d.ComponentID,
			ComponentName:  d.ComponentName,
			ComponentType:  d.ComponentType,
			ComponentPrice: d.ComponentPrice,
		})
	}
	return resp
}
