// Package pdf implementa la generación de reportes en PDF con Maroto v2:
// factura de venta, listado de productos y listado de movimientos.
//
// Layout de la factura (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Farmacia  │  N° Factura + Fecha                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto  │  EMPLEADO: Nombre            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/joansel25/farmacia-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 84}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	pharmacyName string
}

// NewMarotoPDFGenerator construye el generador con el nombre de la farmacia
// que encabeza cada reporte.
func NewMarotoPDFGenerator(pharmacyName string) *MarotoPDFGenerator {
	if pharmacyName == "" {
		pharmacyName = "Farmacia"
	}
	return &MarotoPDFGenerator{pharmacyName: pharmacyName}
}

var _ reports.PDFGenerator = (*MarotoPDFGenerator)(nil)

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// InvoicePDF genera la representación gráfica de una factura de venta.
func (g *MarotoPDFGenerator) InvoicePDF(_ context.Context, data *reports.InvoicePDFData) ([]byte, error) {
	m := newDocument("Factura de Venta")

	m.AddRows(g.invoiceHeaderRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(invoiceTableHeaderRow())
	for _, r := range invoiceLineRows(data.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar factura: %w", err)
	}
	return doc.GetBytes(), nil
}

// ProductsPDF genera el listado de productos con stock y precio.
func (g *MarotoPDFGenerator) ProductsPDF(_ context.Context, rows []reports.ProductRow) ([]byte, error) {
	m := newDocument("Listado de Productos")

	m.AddRows(g.listHeaderRow("LISTADO DE PRODUCTOS"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeader(
		cell{"Producto", 5, align.Left},
		cell{"Categoría", 3, align.Left},
		cell{"Precio", 2, align.Right},
		cell{"Stock", 2, align.Right},
	))
	for _, r := range rows {
		m.AddRows(tableDataRow(
			cell{r.Product.Name, 5, align.Left},
			cell{nonEmpty(r.CategoryName, "—"), 3, align.Left},
			cell{"$" + r.Product.Price.StringFixed(2), 2, align.Right},
			cell{fmt.Sprintf("%d", r.Product.Stock), 2, align.Right},
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar listado de productos: %w", err)
	}
	return doc.GetBytes(), nil
}

// MovementsPDF genera el listado de movimientos de inventario.
func (g *MarotoPDFGenerator) MovementsPDF(_ context.Context, rows []reports.MovementRow) ([]byte, error) {
	m := newDocument("Movimientos de Inventario")

	m.AddRows(g.listHeaderRow("MOVIMIENTOS DE INVENTARIO"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeader(
		cell{"Fecha", 2, align.Left},
		cell{"Tipo", 2, align.Center},
		cell{"Producto", 4, align.Left},
		cell{"Cant.", 1, align.Right},
		cell{"Proveedor / Cliente", 3, align.Left},
	))
	for _, r := range rows {
		actor := r.SupplierName
		if actor == "" {
			actor = r.ClientName
		}
		m.AddRows(tableDataRow(
			cell{r.Movement.Date.Format("02/01/2006"), 2, align.Left},
			cell{r.Movement.Type, 2, align.Center},
			cell{r.ProductName, 4, align.Left},
			cell{fmt.Sprintf("%d", r.Movement.Quantity), 1, align.Right},
			cell{nonEmpty(actor, "—"), 3, align.Left},
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar listado de movimientos: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones de factura ──────────────────────────────────────────────────────

// invoiceHeaderRow: nombre de la farmacia (izq) y N° factura + fecha (der).
func (g *MarotoPDFGenerator) invoiceHeaderRow(data *reports.InvoicePDFData) core.Row {
	fecha := data.Invoice.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.pharmacyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+data.Invoice.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partiesRow: datos del cliente y del empleado que atendió la venta.
func partiesRow(data *reports.InvoicePDFData) core.Row {
	employeeName := "—"
	if data.Employee != nil {
		employeeName = data.Employee.Name
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Client.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				nonEmpty(data.Client.Email, "—"),
				nonEmpty(data.Client.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("ATENDIDO POR", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(employeeName, props.Text{
				Size: 9, Align: align.Right, Top: 6,
			}),
		),
	)
}

func invoiceTableHeaderRow() core.Row {
	return tableHeader(
		cell{"Cant.", 1, align.Center},
		cell{"Producto", 6, align.Left},
		cell{"Precio Unit.", 2, align.Right},
		cell{"Subtotal", 3, align.Right},
	)
}

// invoiceLineRows: una fila por línea de detalle.
func invoiceLineRows(lines []reports.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, tableDataRow(
			cell{fmt.Sprintf("%d", l.Quantity), 1, align.Center},
			cell{l.ProductName, 6, align.Left},
			cell{"$" + l.UnitPrice.StringFixed(2), 2, align.Right},
			cell{"$" + l.Subtotal.StringFixed(2), 3, align.Right},
		))
	}
	return result
}

// totalRow: total de la factura alineado a la derecha.
func totalRow(data *reports.InvoicePDFData) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+data.Invoice.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── Secciones de listados ─────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) listHeaderRow(title string) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(g.pharmacyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 9, Color: colorGray,
			}),
		),
	)
}

// ── helpers de tabla ──────────────────────────────────────────────────────────

type cell struct {
	label string
	size  int
	align align.Type
}

func tableHeader(cells ...cell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableDataRow(cells ...cell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
