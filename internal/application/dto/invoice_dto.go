package dto

import "github.com/shopspring/decimal"

// ConfirmInvoiceRequest body para POST /api/invoices/confirm. El usuario sale del token.
type ConfirmInvoiceRequest struct {
	ModelID        string `json:"model_id" validate:"required"`
	Quantity       int    `json:"qty" validate:"required,gt=0"`
	CustomerDetail string `json:"customer_detail" validate:"max=2000"`
}

// ConfirmInvoiceResponse resultado de confirmar el pedido.
type ConfirmInvoiceResponse struct {
	InvoiceID        string          `json:"invoice_id"`
	Status           string          `json:"status"`
	BaseAmount       decimal.Decimal `json:"base_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	NotificationSent bool            `json:"notification_sent"`
}

// InvoiceResponse factura con detalle para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID             string                  `json:"id"`
	UserID         string                  `json:"user_id"`
	ModelID        string                  `json:"model_id"`
	Quantity       int                     `json:"qty"`
	BaseAmount     decimal.Decimal         `json:"base_amount"`
	TaxAmount      decimal.Decimal         `json:"tax_amount"`
	TotalAmount    decimal.Decimal         `json:"total_amount"`
	CustomerDetail string                  `json:"customer_detail,omitempty"`
	Date           string                  `json:"date"`
	Status         string                  `json:"status"`
	Details        []InvoiceDetailResponse `json:"details"`
}

// InvoiceDetailResponse línea de detalle en la respuesta.
type InvoiceDetailResponse struct {
	ID             string          `json:"id"`
	ComponentID    string          `json:"component_id"`
	ComponentName  string          `json:"component_name,omitempty"`
	ComponentType  string          `json:"component_type,omitempty"`
	ComponentPrice decimal.Decimal `json:"component_price"`
}

// InvoiceListResponse listado paginado de facturas del usuario.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
