package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Branch representa una sucursal (punto de venta) con su porcentaje de IVA.
type Branch struct {
	ID        string
	Code      string // único
	Name      string
	VatPerc   decimal.Decimal // porcentaje entero 0..100
	IsActive  bool
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
}

// DisplayName devuelve "Nombre (Código)" para combos y lookups.
func (b *Branch) DisplayName() string {
	if b.Code == "" {
		return b.Name
	}
	return b.Name + " (" + b.Code + ")"
}
