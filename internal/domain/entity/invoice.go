package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatusConfirmed único estado que emite el pipeline; no hay anulación ni entrega.
const InvoiceStatusConfirmed = "Confirmed"

// Invoice representa la cabecera de una factura de pedido de vehículos.
// Invariantes: Total = Base + Tax; Tax = round(Base * tasa); Base = Model.Price * Quantity + suma de alternos.
type Invoice struct {
	ID             string
	UserID         string
	ModelID        string
	Quantity       int
	BaseAmount     decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	CustomerDetail string
	Date           time.Time
	Status         string
	CreatedAt      time.Time
}
