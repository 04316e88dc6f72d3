package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

// RetryJob reenvía notificaciones FAILED hasta MaxAttempts intentos.
type RetryJob struct {
	dispatcher  *Dispatcher
	logs        repository.NotificationRepository
	documents   DocumentSource
	maxAttempts int
	batchSize   int
	runTimeout  time.Duration
	log         zerolog.Logger
}

// NewRetryJob construye el job. maxAttempts <= 0 usa 5.
func NewRetryJob(
	dispatcher *Dispatcher,
	logs repository.NotificationRepository,
	documents DocumentSource,
	maxAttempts int,
	log zerolog.Logger,
) *RetryJob {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &RetryJob{
		dispatcher:  dispatcher,
		logs:        logs,
		documents:   documents,
		maxAttempts: maxAttempts,
		batchSize:   50,
		runTimeout:  2 * time.Minute,
		log:         log,
	}
}

// RunOnce procesa un lote. Devuelve cuántos se reintentaron y cuántos quedaron enviados.
func (j *RetryJob) RunOnce(ctx context.Context) (retried, recovered int, err error) {
	pending, err := j.logs.ListRetryable(ctx, j.maxAttempts, j.batchSize)
	if err != nil {
		return 0, 0, fmt.Errorf("listar notificaciones fallidas: %w", err)
	}
	for _, entry := range pending {
		doc, err := j.documents.Load(ctx, entry.InvoiceID)
		if err != nil {
			j.log.Warn().Err(err).Str("invoice_id", entry.InvoiceID).Msg("reintento: factura no disponible")
			continue
		}
		retried++
		if err := j.dispatcher.Redeliver(ctx, entry, *doc); err != nil {
			j.log.Warn().Err(err).
				Str("invoice_id", entry.InvoiceID).
				Int("attempts", entry.Attempts).
				Msg("reintento de notificación fallido")
			continue
		}
		recovered++
	}
	return retried, recovered, nil
}

// Start programa RunOnce con una expresión cron (ej. "@every 5m") y arranca el scheduler.
// El caller debe llamar Stop() en el apagado.
func (j *RetryJob) Start(expr string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(expr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.runTimeout)
		defer cancel()
		retried, recovered, err := j.RunOnce(ctx)
		if err != nil {
			j.log.Error().Err(err).Msg("job de reintentos de notificación")
			return
		}
		if retried > 0 {
			j.log.Info().Int("retried", retried).Int("recovered", recovered).Msg("reintentos de notificación")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("programar reintentos (%q): %w", expr, err)
	}
	c.Start()
	return c, nil
}
