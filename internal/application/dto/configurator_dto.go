package dto

import "github.com/shopspring/decimal"

// ComponentResponse componente del catálogo en respuestas.
type ComponentResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Price decimal.Decimal `json:"price"`
}

// DefaultConfigResponse respuesta de GET /api/default-config/:modelId?qty=N.
type DefaultConfigResponse struct {
	ModelID          string              `json:"model_id"`
	ModelName        string              `json:"model_name"`
	SegmentName      string              `json:"segment_name"`
	ManufacturerName string              `json:"manufacturer_name"`
	UnitPrice        decimal.Decimal     `json:"unit_price"`
	MinQty           int                 `json:"min_qty"`
	Quantity         int                 `json:"qty"`
	TotalPrice       decimal.Decimal     `json:"total_price"`
	Components       []ComponentResponse `json:"components"`
}

// QuoteResponse cotización sin persistir: configuración efectiva + desglose de precio.
type QuoteResponse struct {
	ModelID     string              `json:"model_id"`
	ModelName   string              `json:"model_name"`
	Quantity    int                 `json:"qty"`
	Source      string              `json:"source"` // ALTERNATE | DEFAULT
	Components  []ComponentResponse `json:"components"`
	ModelAmount decimal.Decimal     `json:"model_amount"`
	DeltaAmount decimal.Decimal     `json:"delta_amount"`
	BaseAmount  decimal.Decimal     `json:"base_amount"`
	TaxRate     decimal.Decimal     `json:"tax_rate"`
	TaxAmount   decimal.Decimal     `json:"tax_amount"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
}
