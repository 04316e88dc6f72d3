package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/vconf-api/internal/application/auth"
	"github.com/jhoicas/vconf-api/internal/application/billing"
	"github.com/jhoicas/vconf-api/internal/application/configurator"
	"github.com/jhoicas/vconf-api/internal/application/notification"
	"github.com/jhoicas/vconf-api/internal/domain/pricing"
	infrmail "github.com/jhoicas/vconf-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/vconf-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vconf-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/vconf-api/internal/interfaces/http"
	"github.com/jhoicas/vconf-api/pkg/config"
	"github.com/jhoicas/vconf-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	modelRepo := postgres.NewModelRepository(pool)
	configRepo := postgres.NewConfigurationRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine := pricing.NewEngine(cfg.Pricing.TaxRate, cfg.Pricing.Scale)
	resolver := configurator.NewResolver(configRepo)
	quoteUC := configurator.NewQuoteUseCase(modelRepo, configRepo, resolver, engine)

	// PDF + email: la factura confirmada se envía como adjunto
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	var mailer notification.Mailer
	if cfg.SMTP.Enabled() {
		mailer = infrmail.NewSMTPMailer(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP_HOST vacío: los emails de facturas solo se registran en el log")
		mailer = infrmail.NewLogMailer(log.Component("mailer"))
	}
	dispatcher := notification.NewDispatcher(pdfGenerator, mailer, notificationRepo, log.Component("notification"))

	writer := billing.NewInvoiceWriter(txRunner, nil)
	generateUC := billing.NewGenerateInvoiceUseCase(
		userRepo, modelRepo, resolver, engine, writer, dispatcher,
		billing.PipelineConfig{
			StoreTimeout:  cfg.DB.StoreTimeout,
			NotifyTimeout: cfg.Notification.Timeout,
			AsyncNotify:   cfg.Notification.Async,
		},
		log.Component("invoice_pipeline"),
	)
	documentLoader := billing.NewDocumentLoader(invoiceRepo, modelRepo, userRepo)
	invoicePDFUC := billing.NewPDFUseCase(documentLoader, pdfGenerator)
	invoiceQueryUC := billing.NewInvoiceQueryUseCase(invoiceRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Reintentos de emails FAILED
	if cfg.Notification.RetryCron != "" {
		retryJob := notification.NewRetryJob(dispatcher, notificationRepo, documentLoader,
			cfg.Notification.MaxAttempts, log.Component("notification_retry"))
		scheduler, err := retryJob.Start(cfg.Notification.RetryCron)
		if err != nil {
			log.Fatal().Err(err).Msg("programar reintentos de notificación")
		}
		defer func() { <-scheduler.Stop().Done() }()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vehicle Configurator API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Configuration: quoteUC,
		Generate:      generateUC,
		InvoiceQuery:  invoiceQueryUC,
		InvoicePDF:    invoicePDFUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := generateUC.Drain(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("apagado con envíos de factura sin terminar")
	}

	log.Info().Msg("aplicación detenida")
}
