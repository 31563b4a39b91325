package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida admitidas.
const (
	UoMPiece      = "Piece"
	UoMPack       = "Pack"
	UoMBox        = "Box"
	UoMBottle     = "Bottle"
	UoMMilliliter = "Milliliter"
	UoMGram       = "Gram"
)

// ValidUoM indica si u es una unidad de medida conocida.
func ValidUoM(u string) bool {
	switch u {
	case UoMPiece, UoMPack, UoMBox, UoMBottle, UoMMilliliter, UoMGram:
		return true
	}
	return false
}

// Product representa un artículo del catálogo.
// BuyingUnitPrice es el costo de referencia para valorizar y para limitar descuentos en caja.
type Product struct {
	ID               string
	ProductNo        string // único; "P-{n}" si no se indica
	ProductName      string
	ProductDesc      string
	ImageURL         string
	BuyingUnitPrice  decimal.Decimal
	SellingUnitPrice decimal.Decimal
	UoM              string
	ProductTypeID    string
	CreatedAt        time.Time
	CreatedBy        string
	UpdatedAt        time.Time
	UpdatedBy        string
}
