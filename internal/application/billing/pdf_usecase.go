package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/vconf-api/internal/domain"
)

// PDFUseCase genera el documento PDF de una factura ya confirmada.
type PDFUseCase struct {
	loader    *DocumentLoader
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(loader *DocumentLoader, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{loader: loader, generator: generator}
}

// DownloadInvoicePDF recupera la factura con sus líneas y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrInvoiceNotFound  si la factura no existe.
//   - domain.ErrForbidden        si la factura es de otro usuario.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, userID, role, invoiceID string) (pdfBytes []byte, filename string, err error) {
	doc, err := uc.loader.Load(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	if !CanAccess(doc.Invoice, userID, role) {
		return nil, "", domain.ErrForbidden
	}
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, *doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, InvoiceFilename(doc.Invoice.ID), nil
}

// InvoiceFilename nombre del adjunto / descarga.
func InvoiceFilename(invoiceID string) string {
	return fmt.Sprintf("invoice_%s.pdf", invoiceID)
}
