package repository

import (
	"context"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
)

// NotificationRepository persiste la auditoría de envíos de facturas.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.NotificationLog) error
	Update(ctx context.Context, n *entity.NotificationLog) error
	// ListRetryable devuelve envíos FAILED con menos de maxAttempts intentos, más antiguos primero.
	ListRetryable(ctx context.Context, maxAttempts, limit int) ([]*entity.NotificationLog, error)
}
