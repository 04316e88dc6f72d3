package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vconf-api/internal/application/billing"
	"github.com/jhoicas/vconf-api/internal/application/notification"
	"github.com/jhoicas/vconf-api/internal/domain"
	"github.com/jhoicas/vconf-api/internal/domain/entity"
)

type documentsFake struct {
	docs map[string]billing.InvoiceDocument
}

func (f *documentsFake) Load(_ context.Context, invoiceID string) (*billing.InvoiceDocument, error) {
	doc, ok := f.docs[invoiceID]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	return &doc, nil
}

func failedEntry(logs *logStoreFake, id, invoiceID string, attempts int) {
	_ = logs.Create(context.Background(), &entity.NotificationLog{
		ID: id, InvoiceID: invoiceID, Recipient: "ana@example.com",
		Channel: entity.NotificationChannelEmail, Status: entity.NotificationStatusFailed, Attempts: attempts,
	})
}

func TestRunOnce_ReintentaYRecupera(t *testing.T) {
	logs := newLogStore()
	failedEntry(logs, "n-1", "inv-1", 1)
	failedEntry(logs, "n-2", "inv-borrada", 1)
	failedEntry(logs, "n-3", "inv-1", 3) // agotado
	docs := &documentsFake{docs: map[string]billing.InvoiceDocument{"inv-1": sampleDoc()}}

	mailer := &mailerFake{}
	d := notification.NewDispatcher(&rendererFake{}, mailer, logs, zerolog.Nop())
	job := notification.NewRetryJob(d, logs, docs, 3, zerolog.Nop())

	retried, recovered, err := job.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, retried, "la factura inexistente se omite")
	assert.Equal(t, 1, recovered)
	assert.Len(t, mailer.sent, 1)

	assert.Equal(t, entity.NotificationStatusSent, logs.entries["n-1"].Status)
	assert.Equal(t, 2, logs.entries["n-1"].Attempts)
	assert.Equal(t, entity.NotificationStatusFailed, logs.entries["n-3"].Status)
}

func TestRunOnce_SigueFallando(t *testing.T) {
	logs := newLogStore()
	failedEntry(logs, "n-1", "inv-1", 1)
	docs := &documentsFake{docs: map[string]billing.InvoiceDocument{"inv-1": sampleDoc()}}

	mailer := &mailerFake{err: errors.New("connection refused")}
	d := notification.NewDispatcher(&rendererFake{}, mailer, logs, zerolog.Nop())

	retried, recovered, err := notification.NewRetryJob(d, logs, docs, 5, zerolog.Nop()).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, retried)
	assert.Equal(t, 0, recovered)
	assert.Equal(t, 2, logs.entries["n-1"].Attempts)
	assert.Contains(t, logs.entries["n-1"].LastError, "connection refused")
}

func TestRunOnce_ErrorListando(t *testing.T) {
	logs := newLogStore()
	logs.listErr = errors.New("timeout")
	d := notification.NewDispatcher(&rendererFake{}, &mailerFake{}, logs, zerolog.Nop())

	_, _, err := notification.NewRetryJob(d, logs, &documentsFake{}, 0, zerolog.Nop()).RunOnce(context.Background())
	assert.ErrorIs(t, err, logs.listErr)
}

func TestStart_ExpresionInvalida(t *testing.T) {
	logs := newLogStore()
	d := notification.NewDispatcher(&rendererFake{}, &mailerFake{}, logs, zerolog.Nop())
	job := notification.NewRetryJob(d, logs, &documentsFake{}, 5, zerolog.Nop())

	_, err := job.Start("cada rato")
	assert.Error(t, err)

	c, err := job.Start("@every 1h")
	require.NoError(t, err)
	<-c.Stop().Done()
}
