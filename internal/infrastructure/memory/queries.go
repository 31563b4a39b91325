package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/ledger"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/domain/sorting"
)

var _ repository.StockQueryRepository = (*StockQueryRepo)(nil)

// StockQueryRepo agregaciones del libro calculadas recorriendo las líneas.
type StockQueryRepo struct {
	s  *Store
	tx *state
}

// NewStockQueryRepository construye el repositorio de consultas.
func NewStockQueryRepository(s *Store) *StockQueryRepo { return &StockQueryRepo{s: s} }

type flatLine struct {
	h entity.StockMovementHeader
	d entity.StockMovementDetail
}

// lines aplana (cabecera, línea) dentro del alcance.
func (st *state) lines(scope repository.LedgerScope, includeCancelled bool) []flatLine {
	var out []flatLine
	for id, h := range st.headers {
		if h.IsCancelled && !includeCancelled {
			continue
		}
		if scope.BranchID != "" && h.BranchID != scope.BranchID {
			continue
		}
		if scope.Start != nil && h.CreatedAt.Before(*scope.Start) {
			continue
		}
		if scope.EndExclusive != nil && !h.CreatedAt.Before(*scope.EndExclusive) {
			continue
		}
		for _, d := range st.details[id] {
			out = append(out, flatLine{h: h, d: d})
		}
	}
	return out
}

func (r *StockQueryRepo) OnHand(_ context.Context, scope repository.LedgerScope, productIDs []string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	err := r.s.do(r.tx, func(st *state) error {
		for _, l := range st.lines(scope, false) {
			if productIDs != nil && !slices.Contains(productIDs, l.d.ProductID) {
				continue
			}
			out[l.d.ProductID] = out[l.d.ProductID].Add(ledger.SignedQuantity(l.h.MovementType, l.d.Quantity))
		}
		return nil
	})
	return out, err
}

var movementRowComparators = map[string]sorting.Comparator[repository.ProductMovementRow]{
	"movement_date": func(a, b repository.ProductMovementRow) int { return a.MovementDate.Compare(b.MovementDate) },
	"movement_no": func(a, b repository.ProductMovementRow) int {
		return compareMovementNo(a.StockMovementNo, b.StockMovementNo)
	},
	"movement_type": func(a, b repository.ProductMovementRow) int {
		return compareMovementType(a.MovementType, b.MovementType)
	},
	"branch_name":     func(a, b repository.ProductMovementRow) int { return strings.Compare(a.BranchName, b.BranchName) },
	"product_no":      func(a, b repository.ProductMovementRow) int { return strings.Compare(a.ProductNo, b.ProductNo) },
	"product_name":    func(a, b repository.ProductMovementRow) int { return strings.Compare(a.ProductName, b.ProductName) },
	"quantity":        func(a, b repository.ProductMovementRow) int { return a.Quantity.Cmp(b.Quantity) },
	"quantity_signed": func(a, b repository.ProductMovementRow) int { return a.QuantitySigned.Cmp(b.QuantitySigned) },
	"amount_incl_vat": func(a, b repository.ProductMovementRow) int { return a.AmountInclVat.Cmp(b.AmountInclVat) },
}

// compareMovementNo compara "GM-{seq}" numéricamente.
func compareMovementNo(a, b string) int {
	if c := len(a) - len(b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func (r *StockQueryRepo) ProductMovements(_ context.Context, q repository.ProductMovementQuery) ([]repository.ProductMovementRow, int, error) {
	var rows []repository.ProductMovementRow
	err := r.s.do(r.tx, func(st *state) error {
		for _, l := range st.lines(q.Scope, q.IncludeCancelled) {
			if q.ProductID != "" && l.d.ProductID != q.ProductID {
				continue
			}
			if q.Type != "" && l.h.MovementType != q.Type {
				continue
			}
			p := st.products[l.d.ProductID]
			if q.ProductTypeID != "" && p.ProductTypeID != q.ProductTypeID {
				continue
			}
			b := st.branches[l.h.BranchID]
			rows = append(rows, repository.ProductMovementRow{
				HeaderID:        l.h.ID,
				StockMovementNo: l.h.StockMovementNo,
				MovementType:    l.h.MovementType,
				MovementDate:    l.h.CreatedAt,
				BranchID:        b.ID,
				BranchCode:      b.Code,
				BranchName:      b.Name,
				ProductID:       p.ID,
				ProductNo:       p.ProductNo,
				ProductName:     p.ProductName,
				ProductTypeID:   p.ProductTypeID,
				ProductTypeName: st.productTypes[p.ProductTypeID].Type,
				UoM:             l.d.UoM,
				Quantity:        l.d.Quantity,
				QuantitySigned:  ledger.SignedQuantity(l.h.MovementType, l.d.Quantity),
				UnitPrice:       l.d.UnitPrice,
				DiscountAmount:  l.d.DiscountAmount,
				AmountExclVat:   l.d.AmountExclVat,
				AmountVat:       l.d.AmountVat,
				AmountInclVat:   l.d.AmountInclVat,
				IsCancelled:     l.h.IsCancelled,
				Description:     l.h.Description,
			})
		}
		return nil
	})
	sorting.SortStable(rows, q.Sort, movementRowComparators)
	return page(rows, q.Limit, q.Offset), len(rows), err
}

func (r *StockQueryRepo) StockReport(_ context.Context, q repository.StockReportQuery) ([]repository.StockReportRow, error) {
	type key struct{ branch, product string }
	groups := map[key]*repository.StockReportRow{}
	var order []key
	err := r.s.do(r.tx, func(st *state) error {
		for _, l := range st.lines(q.Scope, false) {
			p := st.products[l.d.ProductID]
			if !matchesProduct(p, q.ProductID, q.ProductTypeID, q.Filter) {
				continue
			}
			k := key{l.h.BranchID, l.d.ProductID}
			g, ok := groups[k]
			if !ok {
				b := st.branches[l.h.BranchID]
				g = &repository.StockReportRow{
					BranchID:         b.ID,
					BranchCode:       b.Code,
					BranchName:       b.Name,
					ProductID:        p.ID,
					ProductNo:        p.ProductNo,
					ProductName:      p.ProductName,
					UoM:              p.UoM,
					BuyingUnitPrice:  p.BuyingUnitPrice,
					SellingUnitPrice: p.SellingUnitPrice,
					ImageURL:         p.ImageURL,
					ProductTypeID:    p.ProductTypeID,
					ProductTypeName:  st.productTypes[p.ProductTypeID].Type,
				}
				groups[k] = g
				order = append(order, k)
			}
			g.OnHand = g.OnHand.Add(ledger.SignedQuantity(l.h.MovementType, l.d.Quantity))
			if l.h.CreatedAt.After(g.LastUpdated) {
				g.LastUpdated = l.h.CreatedAt
			}
		}
		return nil
	})
	rows := make([]repository.StockReportRow, 0, len(order))
	for _, k := range order {
		g := groups[k]
		if q.OnlyAvailable && !g.OnHand.IsPositive() {
			continue
		}
		rows = append(rows, *g)
	}
	return rows, err
}

func (r *StockQueryRepo) PeriodSales(_ context.Context, scope repository.LedgerScope) (repository.SalesTotals, error) {
	var t repository.SalesTotals
	err := r.s.do(r.tx, func(st *state) error {
		for _, l := range st.lines(scope, false) {
			if l.h.MovementType != entity.MovementSale {
				continue
			}
			t.AmountInclVat = t.AmountInclVat.Add(l.d.AmountInclVat)
			t.AmountExclVat = t.AmountExclVat.Add(l.d.AmountExclVat)
			t.Cost = t.Cost.Add(l.d.Quantity.Mul(st.products[l.d.ProductID].BuyingUnitPrice))
		}
		return nil
	})
	return t, err
}

func (r *StockQueryRepo) Valuation(_ context.Context, scope repository.LedgerScope) ([]ledger.ValuationRow, error) {
	byProduct := map[string]*ledger.ValuationRow{}
	var order []string
	err := r.s.do(r.tx, func(st *state) error {
		for _, l := range st.lines(scope, false) {
			v, ok := byProduct[l.d.ProductID]
			if !ok {
				v = &ledger.ValuationRow{ProductID: l.d.ProductID}
				byProduct[l.d.ProductID] = v
				order = append(order, l.d.ProductID)
			}
			v.OnHand = v.OnHand.Add(ledger.SignedQuantity(l.h.MovementType, l.d.Quantity))
			if ledger.IsInbound(l.h.MovementType) {
				v.InQty = v.InQty.Add(l.d.Quantity)
				cost := l.d.AmountExclVat
				if cost.IsZero() {
					cost = l.d.AmountInclVat
				}
				v.InCost = v.InCost.Add(cost)
			}
		}
		return nil
	})
	out := make([]ledger.ValuationRow, 0, len(order))
	for _, id := range order {
		out = append(out, *byProduct[id])
	}
	return out, err
}

func (r *StockQueryRepo) DailySales(_ context.Context, scope repository.LedgerScope, loc *time.Location) ([]ledger.DailyPoint, error) {
	var points []ledger.DailyPoint
	err := r.s.do(r.tx, func(st *state) error {
		for _, h := range st.headers {
			if h.IsCancelled || h.MovementType != entity.MovementSale {
				continue
			}
			if scope.BranchID != "" && h.BranchID != scope.BranchID {
				continue
			}
			if scope.Start != nil && h.CreatedAt.Before(*scope.Start) {
				continue
			}
			if scope.EndExclusive != nil && !h.CreatedAt.Before(*scope.EndExclusive) {
				continue
			}
			points = append(points, ledger.DailyPoint{Date: ledger.DayStart(h.CreatedAt, loc), Amount: h.AmountInclVat})
		}
		return nil
	})
	return points, err
}

func (r *StockQueryRepo) OnHandByProductType(_ context.Context, scope repository.LedgerScope) ([]repository.ProductTypeStock, error) {
	byType := map[string]*repository.ProductTypeStock{}
	var order []string
	err := r.s.do(r.tx, func(st *state) error {
		for _, l := range st.lines(scope, false) {
			p := st.products[l.d.ProductID]
			g, ok := byType[p.ProductTypeID]
			if !ok {
				g = &repository.ProductTypeStock{
					ProductTypeID:   p.ProductTypeID,
					ProductTypeName: st.productTypes[p.ProductTypeID].Type,
				}
				byType[p.ProductTypeID] = g
				order = append(order, p.ProductTypeID)
			}
			g.OnHand = g.OnHand.Add(ledger.SignedQuantity(l.h.MovementType, l.d.Quantity))
		}
		return nil
	})
	out := make([]repository.ProductTypeStock, 0, len(order))
	for _, id := range order {
		out = append(out, *byType[id])
	}
	return out, err
}
