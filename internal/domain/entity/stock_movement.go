package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento del libro de stock.
type MovementType string

// Tipos de movimiento. El código numérico es el que se persiste.
const (
	MovementPurchase        MovementType = "Purchase"
	MovementSale            MovementType = "Sale"
	MovementAdjustmentPlus  MovementType = "AdjustmentPlus"
	MovementAdjustmentMinus MovementType = "AdjustmentMinus"
)

var movementCodes = map[MovementType]int16{
	MovementPurchase:        1,
	MovementSale:            2,
	MovementAdjustmentPlus:  5,
	MovementAdjustmentMinus: 6,
}

// Valid indica si t es uno de los cuatro tipos conocidos.
func (t MovementType) Valid() bool {
	_, ok := movementCodes[t]
	return ok
}

// IsAdjustment indica si el tipo es un ajuste de inventario.
func (t MovementType) IsAdjustment() bool {
	return t == MovementAdjustmentPlus || t == MovementAdjustmentMinus
}

// Code devuelve el código numérico persistido.
func (t MovementType) Code() int16 { return movementCodes[t] }

// MovementTypeFromCode convierte el código persistido en MovementType.
func MovementTypeFromCode(code int16) (MovementType, error) {
	for t, c := range movementCodes {
		if c == code {
			return t, nil
		}
	}
	return "", fmt.Errorf("código de movimiento desconocido: %d", code)
}

// MovementNumberPrefix prefijo del número visible ("GM-{seq}").
const MovementNumberPrefix = "GM-"

// FormatMovementNo construye el número visible a partir de la secuencia.
func FormatMovementNo(seq int64) string {
	return fmt.Sprintf("%s%d", MovementNumberPrefix, seq)
}

// CancelledMarker marca que se agrega a la descripción al anular.
const CancelledMarker = "[CANCELLED]"

// StockMovementHeader cabecera de una transacción del POS (compra, venta o ajuste).
// Nunca se borra; la anulación es lógica (IsCancelled).
type StockMovementHeader struct {
	ID                  string
	Seq                 int64
	StockMovementNo     string
	MovementType        MovementType
	BranchID            string
	BusinessPartnerName string
	Description         string
	AmountExclVat       decimal.Decimal
	AmountVat           decimal.Decimal
	AmountInclVat       decimal.Decimal
	IsCancelled         bool
	CreatedAt           time.Time // fecha del movimiento
	CreatedBy           string
	UpdatedAt           time.Time
	UpdatedBy           string
	Details             []StockMovementDetail
}

// Cancel marca la cabecera como anulada y agrega el motivo a la descripción.
// Es idempotente: devuelve false si ya estaba anulada.
func (h *StockMovementHeader) Cancel(reason string, by string, at time.Time) bool {
	if h.IsCancelled {
		return false
	}
	h.IsCancelled = true
	reason = strings.TrimSpace(reason)
	if reason != "" {
		note := CancelledMarker + " " + reason
		if strings.TrimSpace(h.Description) == "" {
			h.Description = note
		} else {
			h.Description = h.Description + " | " + note
		}
	}
	h.UpdatedAt = at
	h.UpdatedBy = by
	return true
}

// StockMovementDetail línea de un movimiento. Quantity siempre es positiva;
// el signo lo determina el tipo de la cabecera.
type StockMovementDetail struct {
	ID             string
	HeaderID       string
	ProductID      string
	UoM            string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	DiscountAmount decimal.Decimal
	AmountExclVat  decimal.Decimal
	AmountVat      decimal.Decimal
	AmountInclVat  decimal.Decimal
	CreatedAt      time.Time
}
