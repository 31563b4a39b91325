package ledger

import "github.com/shopspring/decimal"

// LowStockThreshold cantidad máxima (inclusive) para considerar un producto con poco stock.
var LowStockThreshold = decimal.NewFromInt(1)

// ValuationRow agregado por producto para valorizar el stock a una fecha.
// InQty/InCost consideran solo entradas (Purchase, AdjustmentPlus).
type ValuationRow struct {
	ProductID string
	OnHand    decimal.Decimal
	InQty     decimal.Decimal
	InCost    decimal.Decimal
}

// WeightedAverageValue valoriza el on-hand al costo promedio ponderado de las entradas.
// Valor = (CostoEntradas / CantEntradas) × OnHand; 0 si no hay entradas o no hay stock.
func WeightedAverageValue(onHand, inQty, inCost decimal.Decimal) decimal.Decimal {
	if !inQty.IsPositive() || !onHand.IsPositive() {
		return decimal.Zero
	}
	return inCost.Div(inQty).Mul(onHand)
}

// StockValue suma la valorización de todos los productos, redondeada a 2 decimales.
func StockValue(rows []ValuationRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(WeightedAverageValue(r.OnHand, r.InQty, r.InCost))
	}
	return total.Round(2)
}

// IsLowStock indica 0 < onHand <= LowStockThreshold.
func IsLowStock(onHand decimal.Decimal) bool {
	return onHand.IsPositive() && onHand.LessThanOrEqual(LowStockThreshold)
}

// CountStock cuenta productos con stock (> 0) y con poco stock.
func CountStock(onHands []decimal.Decimal) (active, low int) {
	for _, q := range onHands {
		if q.IsPositive() {
			active++
		}
		if IsLowStock(q) {
			low++
		}
	}
	return active, low
}
