package notification

import (
	"context"
	"errors"

	"github.com/jhoicas/vconf-api/internal/application/billing"
)

// Attachment archivo adjunto de un mensaje.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message email a entregar. Attachment es opcional.
type Message struct {
	To         string
	Subject    string
	Body       string
	Attachment *Attachment
}

// ErrDeliveryUnconfirmed lo devuelve un Mailer cuando deja de esperar un envío que sigue en curso.
// El mensaje puede llegar igualmente, así que no se reintenta.
var ErrDeliveryUnconfirmed = errors.New("entrega sin confirmar")

// Mailer entrega mensajes (SMTP en producción).
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// DocumentSource reconstruye una factura persistida para reenviarla.
type DocumentSource interface {
	Load(ctx context.Context, invoiceID string) (*billing.InvoiceDocument, error)
}
