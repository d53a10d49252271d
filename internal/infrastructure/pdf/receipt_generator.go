// Package pdf genera el comprobante de venta en formato ticket (rollo de
// 80 mm).
//
// Layout del ticket:
//
//	┌──────────────────────────────┐
//	│  NOMBRE DEL COMERCIO         │
//	│  Venta N° + Fecha            │
//	│  ──────────────────────────  │
//	│  Cant | Producto | Subtotal  │
//	│  ──────────────────────────  │
//	│  Subtotal / TOTAL            │
//	│  Método de pago              │
//	│  QR con el ID de la venta    │
//	└──────────────────────────────┘
package pdf

import (
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
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/PuntoVenta-api/internal/application/pos"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ pos.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa pos.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el ticket y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(store pos.StoreInfo, sale *entity.Sale, items []entity.SaleItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(80, 260).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Comprobante de venta", true).
		WithAuthor(store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(store, sale)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))

	m.AddRows(itemHeaderRow())
	for _, r := range itemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(store, sale)...)

	m.AddRows(line.NewRow(2))
	m.AddRows(footerRows(sale)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRows: nombre del comercio, número de venta y fecha.
func headerRows(store pos.StoreInfo, sale *entity.Sale) []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(store.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Venta "+sale.ID, props.Text{Size: 6.5, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(sale.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Center, Top: 4.5, Color: colorGray,
			}),
		)),
	}
}

// itemHeaderRow: cabecera de la lista de artículos.
func itemHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Top: 1,
		}))
	}
	return row.New(5).Add(
		h("Cant.", 2, align.Left),
		h("Producto", 6, align.Left),
		h("Importe", 4, align.Right),
	)
}

// itemRows: una fila por artículo, con el precio unitario debajo del nombre.
func itemRows(items []entity.SaleItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(8).Add(
			col.New(2).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 7, Align: align.Left, Top: 1},
			)),
			col.New(6).Add(
				text.New(it.Name, props.Text{Size: 7, Align: align.Left, Top: 1}),
				text.New("x $"+it.UnitPrice.StringFixed(2), props.Text{
					Size: 6, Align: align.Left, Top: 4.5, Color: colorGray,
				}),
			),
			col.New(4).Add(text.New(
				"$"+it.Subtotal.StringFixed(2),
				props.Text{Size: 7, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

// totalsRows: subtotal, total y método de pago.
func totalsRows(store pos.StoreInfo, sale *entity.Sale) []core.Row {
	return []core.Row{
		row.New(5).Add(
			col.New(6).Add(text.New("Subtotal:", props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(6).Add(text.New("$"+sale.Subtotal.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
		),
		row.New(7).Add(
			col.New(6).Add(text.New("TOTAL "+store.Currency+":", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary,
			})),
			col.New(6).Add(text.New("$"+sale.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary,
			})),
		),
		row.New(5).Add(col.New(12).Add(
			text.New("Pago: "+sale.PaymentMethod, props.Text{Size: 7, Align: align.Right, Top: 1, Color: colorGray}),
		)),
	}
}

// footerRows: QR con el ID de la venta y despedida.
func footerRows(sale *entity.Sale) []core.Row {
	return []core.Row{
		row.New(28).Add(
			col.New(3),
			col.New(6).Add(code.NewQr(sale.ID, props.Rect{Percent: 90, Center: true})),
			col.New(3),
		),
		row.New(6).Add(col.New(12).Add(
			text.New("¡Gracias por su compra!", props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: colorGray,
			}),
		)),
	}
}
