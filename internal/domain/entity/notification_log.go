package entity

import "time"

// Estados de un envío de notificación. Solo FAILED se reintenta automáticamente:
// PENDING (proceso caído a mitad del envío) y UNCONFIRMED (timeout con el envío aún en curso)
// pueden haber llegado al cliente y quedan para revisión manual.
const (
	NotificationStatusPending     = "PENDING"
	NotificationStatusSent        = "SENT"
	NotificationStatusFailed      = "FAILED"
	NotificationStatusUnconfirmed = "UNCONFIRMED"
)

// Canales de notificación.
const NotificationChannelEmail = "EMAIL"

// NotificationLog es el registro de auditoría de cada envío de factura por email.
type NotificationLog struct {
	ID        string
	InvoiceID string
	Recipient string
	Channel   string
	Status    string
	Attempts  int
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}
