// Package mail entrega los emails de facturas: SMTP (gomail) en producción o solo log cuando no hay servidor.
package mail

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/vconf-api/internal/application/notification"
	"github.com/jhoicas/vconf-api/pkg/config"
)

var (
	_ notification.Mailer = (*SMTPMailer)(nil)
	_ notification.Mailer = (*LogMailer)(nil)
)

// SMTPMailer envía mensajes por SMTP con STARTTLS cuando el servidor lo ofrece.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el mailer desde la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send arma el mensaje MIME y lo entrega. gomail no acepta context: si ctx vence antes, DialAndSend sigue
// en segundo plano y el error envuelve notification.ErrDeliveryUnconfirmed (el email puede llegar igualmente).
func (m *SMTPMailer) Send(ctx context.Context, msg notification.Message) error {
	gm := BuildMessage(m.from, msg)

	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(gm) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp: %w: %w", notification.ErrDeliveryUnconfirmed, ctx.Err())
	}
}

// BuildMessage convierte notification.Message en un mensaje gomail (texto plano + adjunto opcional).
func BuildMessage(from string, msg notification.Message) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetHeader("From", from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	if a := msg.Attachment; a != nil {
		content := a.Content
		gm.Attach(a.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
		)
	}
	return gm
}

// LogMailer registra el envío sin salir a la red (SMTP_HOST vacío, desarrollo).
type LogMailer struct {
	log zerolog.Logger
}

// NewLogMailer construye el mailer de solo log.
func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send nunca falla.
func (m *LogMailer) Send(_ context.Context, msg notification.Message) error {
	ev := m.log.Info().Str("to", msg.To).Str("subject", msg.Subject)
	if msg.Attachment != nil {
		ev = ev.Str("attachment", msg.Attachment.Filename).Int("attachment_bytes", len(msg.Attachment.Content))
	}
	ev.Msg("email (smtp deshabilitado)")
	return nil
}
