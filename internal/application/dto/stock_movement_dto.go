package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovementLineRequest línea de un movimiento. UnitPrice ausente vale 0, salvo
// en checkout-cart donde toma el precio de venta del producto. DiscountAmount
// ausente vale 0; UoM ausente toma la del producto.
type StockMovementLineRequest struct {
	ProductID      string           `json:"product_id" validate:"required"`
	UoM            string           `json:"uom" validate:"omitempty,oneof=Piece Pack Box Bottle Milliliter Gram"`
	Quantity       decimal.Decimal  `json:"quantity"`
	UnitPrice      *decimal.Decimal `json:"unit_price"`
	DiscountAmount *decimal.Decimal `json:"discount_amount"`
}

// CreateStockMovementRequest body para crear o actualizar un movimiento.
// En add-stock y checkout-cart el tipo se ignora.
type CreateStockMovementRequest struct {
	MovementType        string                     `json:"movement_type"`
	BranchID            string                     `json:"branch_id"`
	BusinessPartnerName string                     `json:"business_partner_name" validate:"max=150"`
	Description         string                     `json:"description" validate:"max=300"`
	Details             []StockMovementLineRequest `json:"details" validate:"dive"`
}

// CancelStockMovementRequest body de anulación.
type CancelStockMovementRequest struct {
	Reason string `json:"reason" validate:"max=200"`
}

// PhysicalCountLine cantidad contada de un producto.
type PhysicalCountLine struct {
	ProductID       string           `json:"product_id" validate:"required"`
	CountedQuantity decimal.Decimal  `json:"counted_quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
}

// PhysicalInventoryRequest conteo físico de una sucursal.
type PhysicalInventoryRequest struct {
	BranchID    string              `json:"branch_id"`
	Description string              `json:"description" validate:"max=300"`
	Lines       []PhysicalCountLine `json:"lines" validate:"dive"`
}

// PhysicalInventoryResponse movimientos generados por el conteo (nil si no hubo diferencias en ese sentido).
type PhysicalInventoryResponse struct {
	Plus  *StockMovementResponse `json:"plus"`
	Minus *StockMovementResponse `json:"minus"`
}

// StockMovementListRequest filtros del listado de cabeceras.
type StockMovementListRequest struct {
	PagedSortedRequest
	BranchID         string     `query:"branch_id"`
	MovementType     string     `query:"movement_type"`
	IncludeCancelled bool       `query:"include_cancelled"`
	DateFrom         *time.Time `query:"-"`
	DateTo           *time.Time `query:"-"`
}

// StockMovementLineResponse línea de un movimiento.
type StockMovementLineResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	UoM            string          `json:"uom"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	AmountExclVat  decimal.Decimal `json:"amount_excl_vat"`
	AmountVat      decimal.Decimal `json:"amount_vat"`
	AmountInclVat  decimal.Decimal `json:"amount_incl_vat"`
}

// StockMovementResponse cabecera de un movimiento con sus líneas.
type StockMovementResponse struct {
	ID                  string                      `json:"id"`
	StockMovementNo     string                      `json:"stock_movement_no"`
	MovementType        string                      `json:"movement_type"`
	BranchID            string                      `json:"branch_id"`
	BusinessPartnerName string                      `json:"business_partner_name"`
	Description         string                      `json:"description"`
	AmountExclVat       decimal.Decimal             `json:"amount_excl_vat"`
	AmountVat           decimal.Decimal             `json:"amount_vat"`
	AmountInclVat       decimal.Decimal             `json:"amount_incl_vat"`
	IsCancelled         bool                        `json:"is_cancelled"`
	MovementDate        time.Time                   `json:"movement_date"`
	CreatedBy           string                      `json:"created_by"`
	UpdatedAt           time.Time                   `json:"updated_at"`
	Details             []StockMovementLineResponse `json:"details,omitempty"`
}
