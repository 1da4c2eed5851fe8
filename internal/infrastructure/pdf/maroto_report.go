// Package pdf implementa el reporte imprimible del catálogo con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Tipo | Proveedor | Precio | Stock total   │
//	│    (fila secundaria por ubicación: nombre, ciudad, cantidad) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: productos, unidades en stock, agotados             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/ScanStock-api/internal/application/report"
	"github.com/jhoicas/ScanStock-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 42, Blue: 55}
	colorAccent  = &props.Color{Red: 61, Green: 118, Blue: 146}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 217, Green: 83, Blue: 79}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.ProductListPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// Verificación en compilación del puerto.
var _ report.ProductListPDFGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateProductListPDF genera el PDF del catálogo y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateProductListPDF(_ context.Context, products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventario de almacén", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	var totalUnits int64
	var outOfStock int
	for _, p := range products {
		m.AddRows(productRow(p))
		for _, r := range locationRows(p) {
			m.AddRows(r)
		}
		totalUnits += p.TotalQuantity()
		if p.OutOfStock() {
			outOfStock++
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(len(products), totalUnits, outOfStock))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte + fecha de generación.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("INVENTARIO DE ALMACÉN", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorAccent, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Tipo", 2, align.Left),
		h("Proveedor", 2, align.Left),
		h("Precio", 2, align.Right),
		h("Stock total", 2, align.Right),
	)
}

// productRow: fila principal de un producto.
func productRow(p *entity.Product) core.Row {
	total := p.TotalQuantity()
	qtyColor := colorPrimary
	if total == 0 {
		qtyColor = colorRed
	}
	return row.New(7).Add(
		col.New(4).Add(text.New(p.Name, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1,
		})),
		col.New(2).Add(text.New(p.Type, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(p.Supplier, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New("$"+p.Price.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1,
		})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Color: qtyColor,
		})),
	)
}

// locationRows: una fila secundaria por ubicación de stock.
func locationRows(p *entity.Product) []core.Row {
	rows := make([]core.Row, 0, len(p.Stocks))
	for _, loc := range p.Stocks {
		rows = append(rows, row.New(5).Add(
			col.New(1),
			col.New(7).Add(text.New(
				fmt.Sprintf("%s (%s)", loc.Name, loc.Localisation.City),
				props.Text{Size: 7.5, Color: colorGray, Top: 0.5},
			)),
			col.New(4).Add(text.New(
				fmt.Sprintf("%d unidades", loc.Quantity),
				props.Text{Size: 7.5, Align: align.Right, Color: colorGray, Top: 0.5},
			)),
		))
	}
	return rows
}

// totalsRow: resumen al pie del reporte.
func totalsRow(products int, units int64, outOfStock int) core.Row {
	return row.New(10).Add(
		col.New(4).Add(text.New(
			fmt.Sprintf("Productos: %d", products),
			props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary},
		)),
		col.New(4).Add(text.New(
			fmt.Sprintf("Unidades en stock: %d", units),
			props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Center, Color: colorPrimary},
		)),
		col.New(4).Add(text.New(
			fmt.Sprintf("Agotados: %d", outOfStock),
			props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right, Color: colorRed},
		)),
	)
}
