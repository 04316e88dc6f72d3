package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo auditoría de envíos (notification_logs).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create inserta un registro de envío.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.NotificationLog) error {
	query := `
		INSERT INTO notification_logs (id, invoice_id, recipient, channel, status, attempts, last_error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.InvoiceID, n.Recipient, n.Channel, n.Status, n.Attempts,
		nullIfEmpty(n.LastError), n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification log: %w", err)
	}
	return nil
}

// Update guarda el resultado de un reintento.
func (r *NotificationRepo) Update(ctx context.Context, n *entity.NotificationLog) error {
	query := `
		UPDATE notification_logs
		SET status = $2, attempts = $3, last_error = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, n.ID, n.Status, n.Attempts, nullIfEmpty(n.LastError), n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update notification log: %w", err)
	}
	return nil
}

// ListRetryable envíos FAILED con attempts < maxAttempts, más antiguos primero.
func (r *NotificationRepo) ListRetryable(ctx context.Context, maxAttempts, limit int) ([]*entity.NotificationLog, error) {
	query := `
		SELECT id, invoice_id, recipient, channel, status, attempts, last_error, created_at, updated_at
		FROM notification_logs
		WHERE status = $1 AND attempts < $2
		ORDER BY updated_at ASC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, entity.NotificationStatusFailed, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("list retryable notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.NotificationLog
	for rows.Next() {
		var n entity.NotificationLog
		var lastErr *string
		if err := rows.Scan(&n.ID, &n.InvoiceID, &n.Recipient, &n.Channel, &n.Status, &n.Attempts, &lastErr, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan notification log: %w", err)
		}
		n.LastError = derefStr(lastErr)
		list = append(list, &n)
	}
	return list, rows.Err()
}
