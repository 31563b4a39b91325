package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRequest alcance de las consultas del dashboard.
type DashboardRequest struct {
	BranchID string     `query:"branch_id"`
	DateFrom *time.Time `query:"-"`
	DateTo   *time.Time `query:"-"`
}

// StockDashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Ventas y ganancia del período; valorización y conteos al cierre del período.
type StockDashboardSummaryDTO struct {
	FromDate            time.Time       `json:"from_date"`
	ToDate              time.Time       `json:"to_date"` // inclusive
	BranchID            string          `json:"branch_id,omitempty"`
	PeriodSalesInclVat  decimal.Decimal `json:"period_sales_incl_vat"`
	PeriodSalesExclVat  decimal.Decimal `json:"period_sales_excl_vat"`
	PeriodProfitInclVat decimal.Decimal `json:"period_profit_incl_vat"` // ventas con IVA − costo
	PeriodProfitExclVat decimal.Decimal `json:"period_profit_excl_vat"`
	StockValue          decimal.Decimal `json:"stock_value"` // promedio ponderado
	ActiveProducts      int             `json:"active_products"`
	LowStockItems       int             `json:"low_stock_items"`
}

// DailySalesPointDTO ventas de un día.
type DailySalesPointDTO struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Amount decimal.Decimal `json:"amount"`
}

// StockByProductTypeDTO stock agregado por tipo de producto.
type StockByProductTypeDTO struct {
	ProductTypeID   string          `json:"product_type_id"`
	ProductTypeName string          `json:"product_type_name"`
	OnHand          decimal.Decimal `json:"on_hand"`
}
