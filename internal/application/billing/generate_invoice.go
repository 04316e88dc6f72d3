package billing

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/jhoicas/vconf-api/internal/domain"
	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/pricing"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

// MaxCustomerDetailLength límite del texto libre del cliente.
const MaxCustomerDetailLength = 2000

// Resultado del paso de notificación.
const (
	NotificationSent    = "SENT"
	NotificationFailed  = "FAILED"
	NotificationQueued  = "QUEUED"  // modo asíncrono: se disparó en goroutine
	NotificationSkipped = "SKIPPED" // sin notifier configurado
)

// PipelineConfig límites de tiempo y modo de notificación.
type PipelineConfig struct {
	StoreTimeout  time.Duration // 0 = sin límite propio (solo el del ctx del caller)
	NotifyTimeout time.Duration
	AsyncNotify   bool
}

// GenerateInvoiceInput entrada del pipeline.
type GenerateInvoiceInput struct {
	UserID         string
	ModelID        string
	Quantity       int
	CustomerDetail string
}

// GenerateInvoiceResult factura confirmada y resultado de la notificación.
// NotificationErr solo se informa; la factura existe igualmente.
type GenerateInvoiceResult struct {
	Invoice         *entity.Invoice
	Details         []*entity.InvoiceDetail
	Pricing         pricing.Breakdown
	Source          entity.ConfigurationSource
	Notification    string
	NotificationErr error
}

// GenerateInvoiceUseCase orquesta: cargar → resolver → tarifar → persistir → notificar.
// Los pasos 1-4 abortan todo el pipeline; un fallo de notificación no deshace la factura.
type GenerateInvoiceUseCase struct {
	userRepo  repository.UserRepository
	modelRepo repository.ModelRepository
	resolver  ConfigurationResolver
	engine    *pricing.Engine
	writer    *InvoiceWriter
	notifier  Notifier
	cfg       PipelineConfig
	log       zerolog.Logger

	inflight sync.WaitGroup
}

// NewGenerateInvoiceUseCase construye el caso de uso. notifier puede ser nil.
func NewGenerateInvoiceUseCase(
	userRepo repository.UserRepository,
	modelRepo repository.ModelRepository,
	resolver ConfigurationResolver,
	engine *pricing.Engine,
	writer *InvoiceWriter,
	notifier Notifier,
	cfg PipelineConfig,
	log zerolog.Logger,
) *GenerateInvoiceUseCase {
	return &GenerateInvoiceUseCase{
		userRepo:  userRepo,
		modelRepo: modelRepo,
		resolver:  resolver,
		engine:    engine,
		writer:    writer,
		notifier:  notifier,
		cfg:       cfg,
		log:       log,
	}
}

// GenerateInvoice confirma el pedido del usuario y devuelve la factura creada.
// Errores: domain.ErrInvalidInput / ErrQuantityBelowMinimum, ErrUserNotFound, ErrModelNotFound, ErrPersistence.
func (uc *GenerateInvoiceUseCase) GenerateInvoice(ctx context.Context, in GenerateInvoiceInput) (*GenerateInvoiceResult, error) {
	// 0) Validación de forma, antes de tocar el store
	if in.UserID == "" || in.ModelID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if utf8.RuneCountInString(in.CustomerDetail) > MaxCustomerDetailLength {
		return nil, fmt.Errorf("%w: customer_detail supera %d caracteres", domain.ErrInvalidInput, MaxCustomerDetailLength)
	}

	storeCtx, cancel := uc.storeContext(ctx)
	defer cancel()

	// 1) Cargar usuario y modelo
	user, err := uc.userRepo.GetByID(storeCtx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("cargar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	model, err := uc.modelRepo.GetByID(storeCtx, in.ModelID)
	if err != nil {
		return nil, fmt.Errorf("cargar modelo: %w", err)
	}
	if model == nil {
		return nil, domain.ErrModelNotFound
	}
	if in.Quantity < model.MinQty {
		return nil, fmt.Errorf("%w (mínimo %d, pedido %d)", domain.ErrQuantityBelowMinimum, model.MinQty, in.Quantity)
	}

	// 2) Resolver configuración efectiva
	res, err := uc.resolver.Resolve(storeCtx, model.ID)
	if err != nil {
		return nil, err
	}

	// 3) Tarifar
	breakdown := uc.engine.Compute(model.Price, in.Quantity, res)

	// 4) Persistir cabecera + detalles (atómico)
	inv, details, err := uc.writer.Commit(storeCtx, CommitInput{
		User:           user,
		Model:          model,
		Quantity:       in.Quantity,
		CustomerDetail: in.CustomerDetail,
		Pricing:        breakdown,
		Resolution:     res,
	})
	if err != nil {
		uc.log.Error().Err(err).
			Str("user_id", user.ID).
			Str("model_id", model.ID).
			Msg("no se pudo persistir la factura")
		return nil, err
	}
	uc.log.Info().
		Str("invoice_id", inv.ID).
		Str("user_id", user.ID).
		Str("model_id", model.ID).
		Str("source", string(res.Source)).
		Int("lines", len(details)).
		Str("total", inv.TotalAmount.StringFixed(2)).
		Msg("factura confirmada")

	result := &GenerateInvoiceResult{
		Invoice: inv,
		Details: details,
		Pricing: breakdown,
		Source:  res.Source,
	}

	// 5) Notificar (best-effort, fuera de la transacción)
	doc := InvoiceDocument{
		Invoice:       inv,
		Details:       details,
		ModelName:     model.Name,
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
	}
	result.Notification, result.NotificationErr = uc.notify(ctx, doc)
	return result, nil
}

func (uc *GenerateInvoiceUseCase) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg.StoreTimeout > 0 {
		return context.WithTimeout(ctx, uc.cfg.StoreTimeout)
	}
	return context.WithCancel(ctx)
}

// notify usa un contexto desligado de la cancelación del caller: la factura ya es durable.
func (uc *GenerateInvoiceUseCase) notify(ctx context.Context, doc InvoiceDocument) (string, error) {
	if uc.notifier == nil {
		return NotificationSkipped, nil
	}
	detached := context.WithoutCancel(ctx)

	if uc.cfg.AsyncNotify {
		uc.inflight.Add(1)
		go func() {
			defer uc.inflight.Done()
			_ = uc.notifySync(detached, doc)
		}()
		return NotificationQueued, nil
	}
	if err := uc.notifySync(detached, doc); err != nil {
		return NotificationFailed, err
	}
	return NotificationSent, nil
}

// Drain espera las notificaciones asíncronas en curso o hasta que ctx venza.
func (uc *GenerateInvoiceUseCase) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notificaciones pendientes: %w", ctx.Err())
	}
}

func (uc *GenerateInvoiceUseCase) notifySync(ctx context.Context, doc InvoiceDocument) error {
	if uc.cfg.NotifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.NotifyTimeout)
		defer cancel()
	}
	if err := uc.notifier.NotifyInvoiceConfirmed(ctx, doc); err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrNotification, err)
		uc.log.Error().Err(err).
			Str("invoice_id", doc.Invoice.ID).
			Str("recipient", doc.CustomerEmail).
			Msg("notificación de factura fallida")
		return err
	}
	return nil
}
