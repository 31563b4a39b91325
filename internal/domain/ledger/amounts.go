package ledger

import (
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineInput datos de una línea antes de calcular importes.
type LineInput struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
}

// LineAmounts importes derivados de una línea (o totales de una cabecera).
type LineAmounts struct {
	ExclVat decimal.Decimal
	Vat     decimal.Decimal
	InclVat decimal.Decimal
}

// ValidateLines verifica las reglas de las líneas en orden: sin líneas,
// cantidad no positiva, precio negativo, descuento negativo.
func ValidateLines(lines []LineInput) error {
	if len(lines) == 0 {
		return domain.ErrNoLines
	}
	for _, l := range lines {
		if !l.Quantity.IsPositive() {
			return domain.ErrQuantityNotPositive
		}
		if l.UnitPrice.IsNegative() {
			return domain.ErrPriceInvalid
		}
		if l.Discount.IsNegative() {
			return domain.ErrDiscountInvalid
		}
	}
	return nil
}

// ClampVATPerc limita el porcentaje de IVA de una sucursal a [0,100].
func ClampVATPerc(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// VATRate devuelve la fracción de IVA aplicable al tipo de movimiento.
// Los ajustes de inventario no son hechos gravados: siempre 0.
func VATRate(t entity.MovementType, branchVatPerc decimal.Decimal) decimal.Decimal {
	if t.IsAdjustment() {
		return decimal.Zero
	}
	return ClampVATPerc(branchVatPerc).Div(hundred)
}

// ComputeLine calcula neto, IVA y total de una línea.
// neto = max(0, cantidad × precio − descuento); cada importe se redondea a 2 decimales.
func ComputeLine(l LineInput, rate decimal.Decimal) LineAmounts {
	net := l.Quantity.Mul(l.UnitPrice).Sub(l.Discount)
	if net.IsNegative() {
		net = decimal.Zero
	}
	return LineAmounts{
		ExclVat: net.Round(2),
		Vat:     net.Mul(rate).Round(2),
		InclVat: net.Mul(decimal.NewFromInt(1).Add(rate)).Round(2),
	}
}

// SumTotals suma los importes de las líneas para la cabecera.
func SumTotals(lines []LineAmounts) LineAmounts {
	var t LineAmounts
	for _, l := range lines {
		t.ExclVat = t.ExclVat.Add(l.ExclVat)
		t.Vat = t.Vat.Add(l.Vat)
		t.InclVat = t.InclVat.Add(l.InclVat)
	}
	t.ExclVat = t.ExclVat.Round(2)
	t.Vat = t.Vat.Round(2)
	t.InclVat = t.InclVat.Round(2)
	return t
}

// MaxCartDiscount descuento máximo admitido en caja para una línea: no puede
// dejar el precio por debajo del costo de compra. Si el costo no deja margen,
// se admite hasta el importe bruto de la línea.
func MaxCartDiscount(qty, unitPrice, buyingPrice decimal.Decimal) decimal.Decimal {
	byCost := qty.Mul(unitPrice.Sub(buyingPrice))
	if byCost.IsPositive() {
		return byCost
	}
	return qty.Mul(unitPrice)
}
