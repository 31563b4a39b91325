package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/ledger"
	"github.com/jhoicas/pos-api/internal/domain/sorting"
)

// LedgerScope alcance común de las agregaciones: sucursal opcional y ventana
// [Start, EndExclusive) sobre la fecha del movimiento. Los nil no acotan.
// Las cabeceras anuladas siempre se excluyen salvo que la consulta indique lo contrario.
type LedgerScope struct {
	BranchID     string
	Start        *time.Time
	EndExclusive *time.Time
}

// ProductMovementQuery filtros del historial plano de movimientos por producto.
type ProductMovementQuery struct {
	Scope            LedgerScope
	ProductID        string
	ProductTypeID    string
	Type             entity.MovementType
	IncludeCancelled bool
	Sort             sorting.Spec
	Limit            int
	Offset           int
}

// ProductMovementRow una línea del libro con datos de cabecera, sucursal y producto.
type ProductMovementRow struct {
	HeaderID        string
	StockMovementNo string
	MovementType    entity.MovementType
	MovementDate    time.Time
	BranchID        string
	BranchCode      string
	BranchName      string
	ProductID       string
	ProductNo       string
	ProductName     string
	ProductTypeID   string
	ProductTypeName string
	UoM             string
	Quantity        decimal.Decimal
	QuantitySigned  decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountAmount  decimal.Decimal
	AmountExclVat   decimal.Decimal
	AmountVat       decimal.Decimal
	AmountInclVat   decimal.Decimal
	IsCancelled     bool
	Description     string
}

// StockReportQuery filtros del reporte de stock por (sucursal, producto).
type StockReportQuery struct {
	Scope         LedgerScope
	ProductID     string
	ProductTypeID string
	Filter        string
	OnlyAvailable bool
}

// StockReportRow stock de un producto en una sucursal.
type StockReportRow struct {
	BranchID         string
	BranchCode       string
	BranchName       string
	ProductID        string
	ProductNo        string
	ProductName      string
	UoM              string
	BuyingUnitPrice  decimal.Decimal
	SellingUnitPrice decimal.Decimal
	ImageURL         string
	ProductTypeID    string
	ProductTypeName  string
	LastUpdated      time.Time
	OnHand           decimal.Decimal
}

// SalesTotals ventas del período (líneas de tipo Sale) y su costo de compra.
type SalesTotals struct {
	AmountInclVat decimal.Decimal
	AmountExclVat decimal.Decimal
	Cost          decimal.Decimal // Σ cantidad × precio de compra del producto
}

// ProductTypeStock stock agregado por tipo de producto.
type ProductTypeStock struct {
	ProductTypeID   string
	ProductTypeName string
	OnHand          decimal.Decimal
}

// StockQueryRepository consultas de solo lectura sobre el libro: todas suman
// cantidades con signo sobre cabeceras no anuladas; no hay saldo mantenido.
type StockQueryRepository interface {
	// OnHand devuelve el stock por producto. productIDs nil = todos los productos con movimientos.
	OnHand(ctx context.Context, scope LedgerScope, productIDs []string) (map[string]decimal.Decimal, error)
	ProductMovements(ctx context.Context, q ProductMovementQuery) ([]ProductMovementRow, int, error)
	StockReport(ctx context.Context, q StockReportQuery) ([]StockReportRow, error)
	PeriodSales(ctx context.Context, scope LedgerScope) (SalesTotals, error)
	Valuation(ctx context.Context, scope LedgerScope) ([]ledger.ValuationRow, error)
	// DailySales suma el total con IVA de las ventas por día calendario en loc.
	DailySales(ctx context.Context, scope LedgerScope, loc *time.Location) ([]ledger.DailyPoint, error)
	OnHandByProductType(ctx context.Context, scope LedgerScope) ([]ProductTypeStock, error)
}
