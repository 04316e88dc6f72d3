package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vconf-api/internal/application/billing"
	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
	"github.com/jhoicas/vconf-api/pkg/money"
)

var _ billing.Notifier = (*Dispatcher)(nil)

var errNoRecipient = errors.New("notificación: destinatario vacío")

// Dispatcher renderiza la factura, la envía por email y deja auditoría de cada intento.
type Dispatcher struct {
	renderer billing.InvoicePDFGenerator
	mailer   Mailer
	logs     repository.NotificationRepository
	now      func() time.Time
	log      zerolog.Logger
}

// NewDispatcher construye el dispatcher.
func NewDispatcher(
	renderer billing.InvoicePDFGenerator,
	mailer Mailer,
	logs repository.NotificationRepository,
	log zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{renderer: renderer, mailer: mailer, logs: logs, now: time.Now, log: log}
}

// auditTimeout límite de cada escritura de auditoría; se mide aparte del ctx del envío, que puede haber vencido.
const auditTimeout = 5 * time.Second

// NotifyInvoiceConfirmed envía la factura al email del cliente. Antes de entregar deja una fila PENDING en
// notification_logs y al terminar la actualiza a SENT, FAILED o UNCONFIRMED; el job de reintentos recoge las FAILED.
func (d *Dispatcher) NotifyInvoiceConfirmed(ctx context.Context, doc billing.InvoiceDocument) error {
	now := d.now()
	entry := &entity.NotificationLog{
		ID:        uuid.New().String(),
		InvoiceID: doc.Invoice.ID,
		Recipient: doc.CustomerEmail,
		Channel:   entity.NotificationChannelEmail,
		Status:    entity.NotificationStatusPending,
		Attempts:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	pending := d.audit(ctx, entry, d.logs.Create) == nil

	sendErr := d.deliver(ctx, doc)
	entry.UpdatedAt = d.now()
	markResult(entry, sendErr)

	write := d.logs.Update
	if !pending {
		write = d.logs.Create
	}
	_ = d.audit(ctx, entry, write)
	return sendErr
}

// Redeliver reintenta un envío auditado y actualiza su registro.
func (d *Dispatcher) Redeliver(ctx context.Context, entry *entity.NotificationLog, doc billing.InvoiceDocument) error {
	if entry.Recipient != "" {
		doc.CustomerEmail = entry.Recipient
	}
	sendErr := d.deliver(ctx, doc)
	entry.Attempts++
	entry.UpdatedAt = d.now()
	markResult(entry, sendErr)
	if err := d.audit(ctx, entry, d.logs.Update); err != nil {
		return fmt.Errorf("actualizar auditoría: %w", err)
	}
	return sendErr
}

func (d *Dispatcher) audit(ctx context.Context, entry *entity.NotificationLog, write func(context.Context, *entity.NotificationLog) error) error {
	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()
	if err := write(auditCtx, entry); err != nil {
		d.log.Warn().Err(err).
			Str("invoice_id", entry.InvoiceID).
			Str("status", entry.Status).
			Msg("no se pudo registrar la auditoría del envío")
		return err
	}
	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, doc billing.InvoiceDocument) error {
	if strings.TrimSpace(doc.CustomerEmail) == "" {
		return errNoRecipient
	}
	pdf, err := d.renderer.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		return fmt.Errorf("renderizar factura: %w", err)
	}
	msg := Message{
		To:      doc.CustomerEmail,
		Subject: InvoiceSubject(doc.Invoice),
		Body:    InvoiceBody(doc),
		Attachment: &Attachment{
			Filename:    billing.InvoiceFilename(doc.Invoice.ID),
			ContentType: "application/pdf",
			Content:     pdf,
		},
	}
	if err := d.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("enviar email: %w", err)
	}
	return nil
}

func markResult(entry *entity.NotificationLog, err error) {
	switch {
	case errors.Is(err, ErrDeliveryUnconfirmed):
		entry.Status = entity.NotificationStatusUnconfirmed
		entry.LastError = err.Error()
		return
	case err != nil:
		entry.Status = entity.NotificationStatusFailed
		entry.LastError = err.Error()
		return
	}
	entry.Status = entity.NotificationStatusSent
	entry.LastError = ""
}

// InvoiceSubject asunto del email.
func InvoiceSubject(inv *entity.Invoice) string {
	return "Vehicle Configurator - Invoice " + inv.ID
}

// InvoiceBody cuerpo en texto plano del email.
func InvoiceBody(doc billing.InvoiceDocument) string {
	inv := doc.Invoice
	name := doc.CustomerName
	if name == "" {
		name = doc.CustomerEmail
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", name)
	b.WriteString("Your order has been confirmed. Please find your invoice attached.\n\n")
	fmt.Fprintf(&b, "Invoice ID   : %s\n", inv.ID)
	fmt.Fprintf(&b, "Model        : %s\n", doc.ModelName)
	fmt.Fprintf(&b, "Quantity     : %d\n", inv.Quantity)
	fmt.Fprintf(&b, "Invoice Date : %s\n", inv.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Base Amount  : %s\n", money.Format(inv.BaseAmount))
	fmt.Fprintf(&b, "Tax          : %s\n", money.Format(inv.TaxAmount))
	fmt.Fprintf(&b, "Total Amount : %s\n\n", money.Format(inv.TotalAmount))
	b.WriteString("Regards,\nVehicle Configurator Team")
	return b.String()
}
