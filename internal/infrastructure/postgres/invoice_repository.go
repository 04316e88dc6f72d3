package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, user_id, model_id, qty, base_amount, tax_amount, total_amount,
	       COALESCE(customer_detail, ''), inv_date, status, created_at`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoice_headers (id, user_id, model_id, qty, base_amount, tax_amount, total_amount, customer_detail, inv_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.UserID, invoice.ModelID, invoice.Quantity,
		invoice.BaseAmount, invoice.TaxAmount, invoice.TotalAmount,
		nullIfEmpty(invoice.CustomerDetail), invoice.Date, invoice.Status, invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice id already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateDetails persiste todas las líneas en un único round-trip (pgx.Batch).
// Dentro de una tx, un fallo en cualquier línea invalida la transacción completa.
func (r *InvoiceRepo) CreateDetails(ctx context.Context, details []*entity.InvoiceDetail) error {
	if len(details) == 0 {
		return nil
	}
	const query = `
		INSERT INTO invoice_details (id, invoice_id, component_id, component_price)
		VALUES ($1, $2, $3, $4)`
	batch := &pgx.Batch{}
	for _, d := range details {
		if d.ID == "" {
			d.ID = uuid.New().String()
		}
		batch.Queue(query, d.ID, d.InvoiceID, d.ComponentID, d.ComponentPrice)
	}
	br := r.q.SendBatch(ctx, batch)
	for i := range details {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			if isForeignKeyViolation(err) {
				return fmt.Errorf("insert invoice detail %d: componente %s inexistente: %w", i, details[i].ComponentID, err)
			}
			return fmt.Errorf("insert invoice detail %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("insert invoice details: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una factura. (nil, nil) si no existe o el id no es un UUID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoice_headers WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetDetailsByInvoiceID obtiene las líneas de una factura con nombre y tipo del componente.
func (r *InvoiceRepo) GetDetailsByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceDetail, error) {
	if !isUUID(invoiceID) {
		return nil, nil
	}
	query := `
		SELECT d.id, d.invoice_id, d.component_id, d.component_price,
		       COALESCE(c.name, ''), COALESCE(c.comp_type, '')
		FROM invoice_details d
		LEFT JOIN components c ON c.id = d.component_id
		WHERE d.invoice_id = $1
		ORDER BY d.seq`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice details: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceDetail
	for rows.Next() {
		var d entity.InvoiceDetail
		if err := rows.Scan(&d.ID, &d.InvoiceID, &d.ComponentID, &d.ComponentPrice, &d.ComponentName, &d.ComponentType); err != nil {
			return nil, fmt.Errorf("scan detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListByUser lista las facturas del usuario, más recientes primero.
func (r *InvoiceRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoice_headers WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.ModelID, &inv.Quantity,
		&inv.BaseAmount, &inv.TaxAmount, &inv.TotalAmount,
		&inv.CustomerDetail, &inv.Date, &inv.Status, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
