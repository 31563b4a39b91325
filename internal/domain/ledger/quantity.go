package ledger

import (
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// IsInbound indica si el tipo suma stock (Purchase, AdjustmentPlus).
func IsInbound(t entity.MovementType) bool {
	return t == entity.MovementPurchase || t == entity.MovementAdjustmentPlus
}

// IsOutbound indica si el tipo resta stock (Sale, AdjustmentMinus).
func IsOutbound(t entity.MovementType) bool {
	return t == entity.MovementSale || t == entity.MovementAdjustmentMinus
}

// SignedQuantity aplica el signo del tipo de movimiento a la cantidad de la línea.
func SignedQuantity(t entity.MovementType, qty decimal.Decimal) decimal.Decimal {
	if IsOutbound(t) {
		return qty.Neg()
	}
	if IsInbound(t) {
		return qty
	}
	return decimal.Zero
}
