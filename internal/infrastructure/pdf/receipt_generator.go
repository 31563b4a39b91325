// Package pdf genera el comprobante imprimible de un movimiento de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sucursal + Código   │  N° Movimiento + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TERCERO y DESCRIPCIÓN                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Desc. | Subtotal          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Sin IVA / IVA / TOTAL                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el número + estado                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/inventory"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var movementTitles = map[entity.MovementType]string{
	entity.MovementPurchase:        "COMPRA",
	entity.MovementSale:            "VENTA",
	entity.MovementAdjustmentPlus:  "AJUSTE (+)",
	entity.MovementAdjustmentMinus: "AJUSTE (-)",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ inventory.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa inventory.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	loc *time.Location
}

// NewMarotoReceiptGenerator construye el generador; las fechas se imprimen en loc.
func NewMarotoReceiptGenerator(loc *time.Location) *MarotoReceiptGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &MarotoReceiptGenerator{loc: loc}
}

// GenerateMovementReceipt genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateMovementReceipt(
	h *entity.StockMovementHeader,
	branch *entity.Branch,
	products map[string]*entity.Product,
) ([]byte, error) {
	if h == nil || branch == nil {
		return nil, fmt.Errorf("pdf: movimiento o sucursal nulos")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Movimiento "+h.StockMovementNo, true).
		WithAuthor(branch.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(h, branch))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partnerRow(h))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(h.Details, products)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(h))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(h))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: sucursal (izq) y número + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(h *entity.StockMovementHeader, branch *entity.Branch) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(branch.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sucursal "+branch.Code+"   |   IVA "+branch.VatPerc.StringFixed(0)+"%", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(nonEmpty(movementTitles[h.MovementType], string(h.MovementType)), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(h.StockMovementNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+h.CreatedAt.In(g.loc).Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partnerRow: proveedor/cliente y descripción.
func partnerRow(h *entity.StockMovementHeader) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("TERCERO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(h.BusinessPartnerName, "-"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(nonEmpty(h.Description, ""), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Desc.", 1, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea; el nombre sale del catálogo actual.
func tableDetailRows(details []entity.StockMovementDetail, products map[string]*entity.Product) []core.Row {
	result := make([]core.Row, 0, len(details))
	for _, d := range details {
		name := d.ProductID
		if p, ok := products[d.ProductID]; ok && p != nil {
			name = p.ProductNo + " " + nonEmpty(p.ProductName, inventory.NoTitle)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(d.Quantity.String()+" "+d.UoM, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New("$"+formatMoney(d.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(formatMoney(d.DiscountAmount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New("$"+formatMoney(d.AmountExclVat), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(h *entity.StockMovementHeader) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Sin IVA:"),
			label("IVA:"),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2}),
		),
		col.New(3).Add(
			value("$"+formatMoney(h.AmountExclVat)),
			value("$"+formatMoney(h.AmountVat)),
			text.New("$"+formatMoney(h.AmountInclVat), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1}),
		),
	)
}

// footerRow: QR con el número del movimiento y marca de anulado.
func footerRow(h *entity.StockMovementHeader) core.Row {
	status := "Documento interno de inventario"
	color := colorGray
	if h.IsCancelled {
		status = "ANULADO"
		color = colorRed
	}
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(h.StockMovementNo, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(text.New(status, props.Text{Style: fontstyle.Bold, Size: 10, Top: 10, Left: 3, Color: color})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// formatMoney usa punto de miles y coma decimal: 1234.5 → "1.234,50".
func formatMoney(v decimal.Decimal) string {
	s := v.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	if v.IsNegative() {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	buf = append(buf, ',')
	buf = append(buf, frac...)
	return string(buf)
}
