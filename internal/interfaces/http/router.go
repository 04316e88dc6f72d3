package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        loginService
	Configuration configurationService
	Generate      invoiceGenerator
	InvoiceQuery  invoiceQuerier
	InvoicePDF    invoicePDFDownloader
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con rol conocido)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleCustomer, entity.RoleAdmin))

	// Configurador
	cfgHandler := NewConfigurationHandler(deps.Configuration)
	protected.Get("/default-config/:modelId", cfgHandler.DefaultConfig)
	protected.Get("/models/:id/quote", cfgHandler.Quote)

	// Facturas
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Generate, deps.InvoiceQuery, deps.InvoicePDF)
	invoices.Post("/confirm", invoiceHandler.Confirm)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
}
