package entity

import "github.com/shopspring/decimal"

// Model representa un modelo de vehículo del catálogo (solo lectura durante la facturación).
type Model struct {
	ID               string
	Name             string
	Price            decimal.Decimal // precio unitario del vehículo con su configuración estándar
	MinQty           int             // cantidad mínima por pedido
	SegmentID        string
	SegmentName      string
	ManufacturerID   string
	ManufacturerName string
	ImagePath        string
}
