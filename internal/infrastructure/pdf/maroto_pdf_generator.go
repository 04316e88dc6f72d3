// Package pdf genera el documento PDF de una factura del configurador de vehículos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Vehicle Configurator Invoice                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CABECERA: ID / Cliente / Modelo / Cantidad / Fecha / Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Componente | Tipo | Precio                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Base / Impuesto / Total                            │
//	│  QR con el ID de la factura                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/vconf-api/internal/application/billing"
	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 160}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador. author va en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	if author == "" {
		author = "Vehicle Configurator"
	}
	return &MarotoPDFGenerator{author: author}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes. Los precios salen de las líneas persistidas.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, doc billing.InvoiceDocument) ([]byte, error) {
	if doc.Invoice == nil {
		return nil, fmt.Errorf("pdf: factura vacía")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Vehicle Configurator Invoice", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.4}))
	m.AddRows(headerRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.4}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(doc.Details)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc.Invoice))
	m.AddRows(qrRow(doc.Invoice))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow() core.Row {
	return row.New(16).Add(col.New(12).Add(
		text.New("Vehicle Configurator Invoice", props.Text{
			Style: fontstyle.Bold, Size: 18, Align: align.Center, Color: colorPrimary, Top: 3,
		}),
	))
}

// headerRows: una fila etiqueta/valor por dato de cabecera.
func headerRows(doc billing.InvoiceDocument) []core.Row {
	inv := doc.Invoice
	customer := doc.CustomerName
	if doc.CustomerEmail != "" {
		customer = fmt.Sprintf("%s <%s>", nonEmpty(customer, "-"), doc.CustomerEmail)
	}
	fields := [][2]string{
		{"Invoice ID", inv.ID},
		{"Customer", nonEmpty(customer, "-")},
		{"Customer details", nonEmpty(inv.CustomerDetail, "-")},
		{"Model", nonEmpty(doc.ModelName, inv.ModelID)},
		{"Quantity", fmt.Sprintf("%d", inv.Quantity)},
		{"Invoice Date", inv.Date.Format("2006-01-02")},
		{"Status", inv.Status},
	}
	rows := make([]core.Row, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(f[0]+":", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1})),
			col.New(9).Add(text.New(f[1], props.Text{Size: 10, Top: 1})),
		))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de componentes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Component", 6, align.Left),
		h("Type", 3, align.Left),
		h("Price", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por línea de detalle con el precio congelado.
func tableDetailRows(details []*entity.InvoiceDetail) []core.Row {
	if len(details) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Standard configuration (no additional components)", props.Text{
				Size: 9, Top: 1, Left: 1, Color: colorGray,
			}),
		))}
	}
	result := make([]core.Row, 0, len(details))
	for _, d := range details {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(nonEmpty(d.ComponentName, d.ComponentID), props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(d.ComponentType, "-"), props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(3).Add(text.New(money.Format(d.ComponentPrice), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(inv *entity.Invoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 10, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(24).Add(
		col.New(6),
		col.New(3).Add(
			label("Base Amount:", 2),
			label("Tax:", 8),
			text.New("Total Amount:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 2, Top: 14,
			}),
		),
		col.New(3).Add(
			value(money.Format(inv.BaseAmount), 2),
			value(money.Format(inv.TaxAmount), 8),
			text.New(money.Format(inv.TotalAmount), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 1, Top: 14,
			}),
		),
	)
}

// qrRow: QR con el ID de la factura para buscarla en soporte.
func qrRow(inv *entity.Invoice) core.Row {
	return row.New(36).Add(
		col.New(3).Add(code.NewQr(inv.ID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(text.New("Thank you for your order. Keep this document as proof of purchase.", props.Text{
			Size: 8, Top: 14, Left: 3, Color: colorGray,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
