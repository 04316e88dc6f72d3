package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vconf-api/internal/application/billing"
	"github.com/jhoicas/vconf-api/internal/application/dto"
)

type invoiceGenerator interface {
	GenerateInvoice(ctx context.Context, in billing.GenerateInvoiceInput) (*billing.GenerateInvoiceResult, error)
}

type invoiceQuerier interface {
	GetInvoice(ctx context.Context, userID, role, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, userID string, page dto.PageRequest) (*dto.InvoiceListResponse, error)
}

type invoicePDFDownloader interface {
	DownloadInvoicePDF(ctx context.Context, userID, role, invoiceID string) ([]byte, string, error)
}

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	generate invoiceGenerator
	query    invoiceQuerier
	pdf      invoicePDFDownloader
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(generate invoiceGenerator, query invoiceQuerier, pdf invoicePDFDownloader) *InvoiceHandler {
	return &InvoiceHandler{generate: generate, query: query, pdf: pdf}
}

// Confirm godoc
// @Summary      Confirmar pedido y generar factura
// @Description  Resuelve la configuración efectiva, calcula montos, persiste cabecera y detalle
//
//	de forma atómica y envía la factura por email. Un fallo de email no revierte la factura.
//
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmInvoiceRequest  true  "model_id, qty, customer_detail"
// @Success      201   {object}  dto.ConfirmInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/invoices/confirm [post]
func (h *InvoiceHandler) Confirm(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.ConfirmInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if verr := validateBody(in); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	res, err := h.generate.GenerateInvoice(c.UserContext(), billing.GenerateInvoiceInput{
		UserID:         userID,
		ModelID:        in.ModelID,
		Quantity:       in.Quantity,
		CustomerDetail: in.CustomerDetail,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ConfirmInvoiceResponse{
		InvoiceID:        res.Invoice.ID,
		Status:           res.Invoice.Status,
		BaseAmount:       res.Invoice.BaseAmount,
		TaxAmount:        res.Invoice.TaxAmount,
		TotalAmount:      res.Invoice.TotalAmount,
		NotificationSent: res.Notification == billing.NotificationSent,
	})
}

// GetByID godoc
// @Summary      Obtener factura con detalle
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "VALIDATION", "id requerido")
	}
	out, err := h.query.GetInvoice(c.UserContext(), userID, GetRole(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar facturas del usuario
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo 100 (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.InvoiceListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", dto.DefaultPageLimit), Offset: c.QueryInt("offset", 0)}
	if verr := validateBody(page); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	out, err := h.query.ListInvoices(c.UserContext(), userID, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.UserContext(), userID, GetRole(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
