// Package analytics contiene los casos de uso del dashboard de stock y ventas.
package analytics

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/access"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/ledger"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// dailySalesDays ventana por defecto de la serie de ventas diarias (incluye hoy).
const dailySalesDays = 7

// DashboardUseCase genera los indicadores del dashboard.
//
// Fuente de datos: StockQueryRepository (consultas read-only sobre el libro).
// Nada se cachea: el stock se calcula siempre a la fecha de corte.
type DashboardUseCase struct {
	queryRepo repository.StockQueryRepository
	loc       *time.Location
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso. loc define el día calendario.
func NewDashboardUseCase(queryRepo repository.StockQueryRepository, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{queryRepo: queryRepo, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj que define "hoy".
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// scope resuelve una sola vez la sucursal y el rango de todas las consultas.
func (uc *DashboardUseCase) scope(caller access.Caller, branchID string, from, to *time.Time, defFrom, defTo time.Time) (string, ledger.DateRange, error) {
	if !caller.Has(entity.PermDashboard) {
		return "", ledger.DateRange{}, domain.ErrForbidden
	}
	branchID, err := access.ResolveOptionalBranch(caller, branchID)
	if err != nil {
		return "", ledger.DateRange{}, err
	}
	return branchID, ledger.NormalizeDateRange(from, to, defFrom, defTo, uc.loc), nil
}

// Summary ventas y ganancia del período; valorización y conteos al cierre del período.
//
// Tres consultas en paralelo sobre el mismo alcance:
//  1. PeriodSales  → ventas con/sin IVA y costo
//  2. Valuation    → valor del stock (promedio ponderado)
//  3. OnHand       → productos activos y con poco stock
func (uc *DashboardUseCase) Summary(ctx context.Context, caller access.Caller, req dto.DashboardRequest) (*dto.StockDashboardSummaryDTO, error) {
	today := uc.now()
	branchID, r, err := uc.scope(caller, req.BranchID, req.DateFrom, req.DateTo, today, today)
	if err != nil {
		return nil, err
	}
	period := repository.LedgerScope{BranchID: branchID, Start: &r.Start, EndExclusive: &r.EndExclusive}
	closing := repository.LedgerScope{BranchID: branchID, EndExclusive: &r.EndExclusive}

	var (
		sales     repository.SalesTotals
		valuation []ledger.ValuationRow
		onHand    map[string]decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if sales, err = uc.queryRepo.PeriodSales(gctx, period); err != nil {
			return fmt.Errorf("dashboard: ventas del período: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if valuation, err = uc.queryRepo.Valuation(gctx, closing); err != nil {
			return fmt.Errorf("dashboard: valorización: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if onHand, err = uc.queryRepo.OnHand(gctx, closing, nil); err != nil {
			return fmt.Errorf("dashboard: stock: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	quantities := make([]decimal.Decimal, 0, len(onHand))
	for _, q := range onHand {
		quantities = append(quantities, q)
	}
	active, low := ledger.CountStock(quantities)

	return &dto.StockDashboardSummaryDTO{
		FromDate:            r.Start,
		ToDate:              r.EndExclusive.AddDate(0, 0, -1),
		BranchID:            branchID,
		PeriodSalesInclVat:  sales.AmountInclVat.Round(2),
		PeriodSalesExclVat:  sales.AmountExclVat.Round(2),
		PeriodProfitInclVat: sales.AmountInclVat.Sub(sales.Cost).Round(2),
		PeriodProfitExclVat: sales.AmountExclVat.Sub(sales.Cost).Round(2),
		StockValue:          ledger.StockValue(valuation),
		ActiveProducts:      active,
		LowStockItems:       low,
	}, nil
}

// DailySales total con IVA de las ventas por día; los días sin ventas valen 0.
// Por defecto los últimos 7 días hasta hoy.
func (uc *DashboardUseCase) DailySales(ctx context.Context, caller access.Caller, req dto.DashboardRequest) ([]dto.DailySalesPointDTO, error) {
	today := uc.now()
	branchID, r, err := uc.scope(caller, req.BranchID, req.DateFrom, req.DateTo, today.AddDate(0, 0, -(dailySalesDays-1)), today)
	if err != nil {
		return nil, err
	}
	points, err := uc.queryRepo.DailySales(ctx, repository.LedgerScope{
		BranchID:     branchID,
		Start:        &r.Start,
		EndExclusive: &r.EndExclusive,
	}, uc.loc)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ventas diarias: %w", err)
	}
	series := ledger.FillDailySeries(r, points)
	out := make([]dto.DailySalesPointDTO, 0, len(series))
	for _, p := range series {
		out = append(out, dto.DailySalesPointDTO{Date: p.Date.Format(time.DateOnly), Amount: p.Amount})
	}
	return out, nil
}

// StockByProductType stock por tipo de producto al cierre de DateTo (hoy por defecto).
// Solo tipos con stock positivo, de mayor a menor.
func (uc *DashboardUseCase) StockByProductType(ctx context.Context, caller access.Caller, req dto.DashboardRequest) ([]dto.StockByProductTypeDTO, error) {
	today := uc.now()
	branchID, r, err := uc.scope(caller, req.BranchID, req.DateTo, req.DateTo, today, today)
	if err != nil {
		return nil, err
	}
	groups, err := uc.queryRepo.OnHandByProductType(ctx, repository.LedgerScope{
		BranchID:     branchID,
		EndExclusive: &r.EndExclusive,
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: stock por tipo: %w", err)
	}
	out := make([]dto.StockByProductTypeDTO, 0, len(groups))
	for _, g := range groups {
		if !g.OnHand.IsPositive() {
			continue
		}
		out = append(out, dto.StockByProductTypeDTO{
			ProductTypeID:   g.ProductTypeID,
			ProductTypeName: g.ProductTypeName,
			OnHand:          g.OnHand,
		})
	}
	slices.SortStableFunc(out, func(a, b dto.StockByProductTypeDTO) int {
		if c := b.OnHand.Cmp(a.OnHand); c != 0 {
			return c
		}
		return strings.Compare(a.ProductTypeName, b.ProductTypeName)
	})
	return out, nil
}
