package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductMovementRequest filtros del historial de movimientos por producto.
type ProductMovementRequest struct {
	PagedSortedRequest
	BranchID         string     `query:"branch_id"`
	ProductID        string     `query:"product_id"`
	ProductTypeID    string     `query:"product_type_id"`
	MovementType     string     `query:"movement_type"`
	DateFrom         *time.Time `query:"-"`
	DateTo           *time.Time `query:"-"`
	IncludeCancelled bool       `query:"include_cancelled"`
}

// ProductMovementDTO una línea del historial (cabecera + producto + sucursal).
type ProductMovementDTO struct {
	HeaderID        string          `json:"header_id"`
	StockMovementNo string          `json:"stock_movement_no"`
	MovementType    string          `json:"movement_type"`
	MovementDate    time.Time       `json:"movement_date"`
	BranchID        string          `json:"branch_id"`
	BranchCode      string          `json:"branch_code"`
	BranchName      string          `json:"branch_name"`
	ProductID       string          `json:"product_id"`
	ProductNo       string          `json:"product_no"`
	ProductName     string          `json:"product_name"`
	ProductTypeID   string          `json:"product_type_id"`
	ProductTypeName string          `json:"product_type_name"`
	UoM             string          `json:"uom"`
	Quantity        decimal.Decimal `json:"quantity"`
	QuantitySigned  decimal.Decimal `json:"quantity_signed"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	AmountExclVat   decimal.Decimal `json:"amount_excl_vat"`
	AmountVat       decimal.Decimal `json:"amount_vat"`
	AmountInclVat   decimal.Decimal `json:"amount_incl_vat"`
	IsCancelled     bool            `json:"is_cancelled"`
	Description     string          `json:"description"`
}

// StockReportRequest filtros del reporte de stock.
type StockReportRequest struct {
	PagedSortedRequest
	BranchID      string     `query:"branch_id"`
	ProductID     string     `query:"product_id"`
	ProductTypeID string     `query:"product_type_id"`
	Filter        string     `query:"filter"`
	OnlyAvailable bool       `query:"only_available"`
	AsOf          *time.Time `query:"-"`
}

// StockReportDTO stock de un producto en una sucursal.
type StockReportDTO struct {
	BranchID         string          `json:"branch_id"`
	BranchCode       string          `json:"branch_code"`
	BranchName       string          `json:"branch_name"`
	ProductID        string          `json:"product_id"`
	ProductNo        string          `json:"product_no"`
	ProductName      string          `json:"product_name"`
	UoM              string          `json:"uom"`
	BuyingUnitPrice  decimal.Decimal `json:"buying_unit_price"`
	SellingUnitPrice decimal.Decimal `json:"selling_unit_price"`
	ImageURL         string          `json:"image_url"`
	ProductTypeID    string          `json:"product_type_id"`
	ProductTypeName  string          `json:"product_type_name"`
	LastUpdated      time.Time       `json:"last_updated"`
	OnHand           decimal.Decimal `json:"on_hand"`
}

// ProductStockListRequest filtros del listado de catálogo con stock.
type ProductStockListRequest struct {
	PagedSortedRequest
	BranchID      string `query:"branch_id"`
	ProductTypeID string `query:"product_type_id"`
	Filter        string `query:"filter"`
	OnlyAvailable bool   `query:"only_available"`
}

// ProductStockListItemDTO producto del catálogo con su stock en la sucursal.
type ProductStockListItemDTO struct {
	ProductID        string          `json:"product_id"`
	ProductNo        string          `json:"product_no"`
	ProductName      string          `json:"product_name"`
	ProductDesc      string          `json:"product_desc"`
	ImageURL         string          `json:"image_url"`
	UoM              string          `json:"uom"`
	BuyingUnitPrice  decimal.Decimal `json:"buying_unit_price"`
	SellingUnitPrice decimal.Decimal `json:"selling_unit_price"`
	ProductTypeID    string          `json:"product_type_id"`
	ProductTypeName  string          `json:"product_type_name"`
	OnHand           decimal.Decimal `json:"on_hand"`
}

// OnHandItemDTO stock de un producto.
type OnHandItemDTO struct {
	ProductID string          `json:"product_id"`
	OnHand    decimal.Decimal `json:"on_hand"`
}
