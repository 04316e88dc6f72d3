package entity

import "github.com/shopspring/decimal"

// InvoiceDetail representa una línea de detalle: un componente efectivo con su precio congelado al facturar.
// ComponentName y ComponentType no se persisten en la línea; se completan al leer (join con components).
type InvoiceDetail struct {
	ID             string
	InvoiceID      string
	ComponentID    string
	ComponentPrice decimal.Decimal
	ComponentName  string
	ComponentType  string
}
