package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/ledger"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.StockQueryRepository = (*StockQueryRepo)(nil)

// signedQty cantidad con signo según el tipo de la cabecera (1/5 suman, 2/6 restan).
const signedQty = `CASE WHEN h.movement_type IN (1, 5) THEN d.quantity ELSE -d.quantity END`

// productMovementSortColumns lista blanca para el historial por producto.
var productMovementSortColumns = map[string]string{
	"movement_date":   "h.created_at",
	"movement_no":     "h.seq",
	"movement_type":   "h.movement_type",
	"branch_name":     "b.name",
	"product_no":      "p.product_no",
	"product_name":    "p.product_name",
	"quantity":        "d.quantity",
	"quantity_signed": signedQty,
	"amount_incl_vat": "d.amount_incl_vat",
}

// StockQueryRepo consultas de solo lectura sobre el libro. Todo se agrega en SQL.
type StockQueryRepo struct {
	q Querier
}

// NewStockQueryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockQueryRepository(q Querier) *StockQueryRepo {
	return &StockQueryRepo{q: q}
}

// ledgerWhere arma las condiciones sobre la cabecera h.
type ledgerWhere struct {
	conds []string
	args  []any
}

func newLedgerWhere(scope repository.LedgerScope, includeCancelled bool) *ledgerWhere {
	w := &ledgerWhere{}
	if !includeCancelled {
		w.conds = append(w.conds, "NOT h.is_cancelled")
	}
	if scope.BranchID != "" {
		w.add("h.branch_id = $%d", scope.BranchID)
	}
	if scope.Start != nil {
		w.add("h.created_at >= $%d", *scope.Start)
	}
	if scope.EndExclusive != nil {
		w.add("h.created_at < $%d", *scope.EndExclusive)
	}
	return w
}

func (w *ledgerWhere) add(cond string, v any) {
	w.args = append(w.args, v)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *ledgerWhere) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// OnHand suma cantidades con signo por producto.
func (r *StockQueryRepo) OnHand(ctx context.Context, scope repository.LedgerScope, productIDs []string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	if productIDs != nil && len(productIDs) == 0 {
		return out, nil
	}
	w := newLedgerWhere(scope, false)
	if productIDs != nil {
		w.add("d.product_id = ANY($%d)", productIDs)
	}
	query := `
		SELECT d.product_id, SUM(` + signedQty + `)
		FROM stock_movement_headers h
		JOIN stock_movement_details d ON d.header_id = h.id` + w.String() + `
		GROUP BY d.product_id`
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("stock.OnHand: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var qty decimal.Decimal
		if err := rows.Scan(&id, &qty); err != nil {
			return nil, fmt.Errorf("stock.OnHand scan: %w", err)
		}
		out[id] = qty
	}
	return out, rows.Err()
}

// ProductMovements historial plano (una fila por línea) con total sin paginar.
func (r *StockQueryRepo) ProductMovements(ctx context.Context, q repository.ProductMovementQuery) ([]repository.ProductMovementRow, int, error) {
	w := newLedgerWhere(q.Scope, q.IncludeCancelled)
	if q.ProductID != "" {
		w.add("d.product_id = $%d", q.ProductID)
	}
	if q.ProductTypeID != "" {
		w.add("p.product_type_id = $%d", q.ProductTypeID)
	}
	if q.Type != "" {
		w.add("h.movement_type = $%d", q.Type.Code())
	}
	from := `
		FROM stock_movement_headers h
		JOIN stock_movement_details d ON d.header_id = h.id
		JOIN branches b ON b.id = h.branch_id
		JOIN products p ON p.id = d.product_id
		LEFT JOIN product_types pt ON pt.id = p.product_type_id` + w.String()

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+from, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("stock.ProductMovements count: %w", err)
	}

	order := q.Sort.OrderBy(productMovementSortColumns, "h.created_at DESC") + ", h.seq DESC, d.line_no"
	query, args := appendPage(`
		SELECT h.id, h.stock_movement_no, h.movement_type, h.created_at, b.id, b.code, b.name,
			p.id, p.product_no, p.product_name, p.product_type_id, COALESCE(pt.type, ''),
			d.uom, d.quantity, `+signedQty+`, d.unit_price, d.discount_amount,
			d.amount_excl_vat, d.amount_vat, d.amount_incl_vat, h.is_cancelled, h.description`+
		from+` ORDER BY `+order, w.args, q.Limit, q.Offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("stock.ProductMovements: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductMovementRow
	for rows.Next() {
		var row repository.ProductMovementRow
		var code int16
		if err := rows.Scan(
			&row.HeaderID, &row.StockMovementNo, &code, &row.MovementDate,
			&row.BranchID, &row.BranchCode, &row.BranchName,
			&row.ProductID, &row.ProductNo, &row.ProductName, &row.ProductTypeID, &row.ProductTypeName,
			&row.UoM, &row.Quantity, &row.QuantitySigned, &row.UnitPrice, &row.DiscountAmount,
			&row.AmountExclVat, &row.AmountVat, &row.AmountInclVat, &row.IsCancelled, &row.Description,
		); err != nil {
			return nil, 0, fmt.Errorf("stock.ProductMovements scan: %w", err)
		}
		if row.MovementType, err = entity.MovementTypeFromCode(code); err != nil {
			return nil, 0, err
		}
		list = append(list, row)
	}
	return list, total, rows.Err()
}

// StockReport stock por (sucursal, producto) de los productos con movimientos.
func (r *StockQueryRepo) StockReport(ctx context.Context, q repository.StockReportQuery) ([]repository.StockReportRow, error) {
	w := newLedgerWhere(q.Scope, false)
	if q.ProductID != "" {
		w.add("p.id = $%d", q.ProductID)
	}
	if q.ProductTypeID != "" {
		w.add("p.product_type_id = $%d", q.ProductTypeID)
	}
	if q.Filter != "" {
		w.add("(p.product_no ILIKE $%[1]d OR p.product_name ILIKE $%[1]d)", likePattern(q.Filter))
	}
	having := ""
	if q.OnlyAvailable {
		having = " HAVING SUM(" + signedQty + ") > 0"
	}
	query := `
		SELECT b.id, b.code, b.name, p.id, p.product_no, p.product_name, p.uom,
			p.buying_unit_price, p.selling_unit_price, p.image_url, p.product_type_id, COALESCE(pt.type, ''),
			MAX(h.created_at), SUM(` + signedQty + `)
		FROM stock_movement_headers h
		JOIN stock_movement_details d ON d.header_id = h.id
		JOIN branches b ON b.id = h.branch_id
		JOIN products p ON p.id = d.product_id
		LEFT JOIN product_types pt ON pt.id = p.product_type_id` + w.String() + `
		GROUP BY b.id, p.id, pt.type` + having + `
		ORDER BY b.name, p.product_name, p.id`
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("stock.StockReport: %w", err)
	}
	defer rows.Close()
	var list []repository.StockReportRow
	for rows.Next() {
		var row repository.StockReportRow
		if err := rows.Scan(
			&row.BranchID, &row.BranchCode, &row.BranchName,
			&row.ProductID, &row.ProductNo, &row.ProductName, &row.UoM,
			&row.BuyingUnitPrice, &row.SellingUnitPrice, &row.ImageURL, &row.ProductTypeID, &row.ProductTypeName,
			&row.LastUpdated, &row.OnHand,
		); err != nil {
			return nil, fmt.Errorf("stock.StockReport scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// PeriodSales totales de las líneas de venta y su costo al precio de compra actual.
func (r *StockQueryRepo) PeriodSales(ctx context.Context, scope repository.LedgerScope) (repository.SalesTotals, error) {
	w := newLedgerWhere(scope, false)
	w.add("h.movement_type = $%d", entity.MovementSale.Code())
	query := `
		SELECT COALESCE(SUM(d.amount_incl_vat), 0),
		       COALESCE(SUM(d.amount_excl_vat), 0),
		       COALESCE(SUM(d.quantity * p.buying_unit_price), 0)
		FROM stock_movement_headers h
		JOIN stock_movement_details d ON d.header_id = h.id
		JOIN products p ON p.id = d.product_id` + w.String()
	var t repository.SalesTotals
	if err := r.q.QueryRow(ctx, query, w.args...).Scan(&t.AmountInclVat, &t.AmountExclVat, &t.Cost); err != nil {
		return repository.SalesTotals{}, fmt.Errorf("stock.PeriodSales: %w", err)
	}
	return t, nil
}

// Valuation on-hand y entradas por producto para el costo promedio ponderado.
// El costo de una entrada es su importe sin IVA; si es 0 se usa el importe con IVA.
func (r *StockQueryRepo) Valuation(ctx context.Context, scope repository.LedgerScope) ([]ledger.ValuationRow, error) {
	w := newLedgerWhere(scope, false)
	query := `
		SELECT d.product_id,
		       SUM(` + signedQty + `),
		       SUM(CASE WHEN h.movement_type IN (1, 5) THEN d.quantity ELSE 0 END),
		       SUM(CASE WHEN h.movement_type IN (1, 5) THEN
		               CASE WHEN d.amount_excl_vat = 0 THEN d.amount_incl_vat ELSE d.amount_excl_vat END
		           ELSE 0 END)
		FROM stock_movement_headers h
		JOIN stock_movement_details d ON d.header_id = h.id` + w.String() + `
		GROUP BY d.product_id`
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("stock.Valuation: %w", err)
	}
	defer rows.Close()
	var list []ledger.ValuationRow
	for rows.Next() {
		var v ledger.ValuationRow
		if err := rows.Scan(&v.ProductID, &v.OnHand, &v.InQty, &v.InCost); err != nil {
			return nil, fmt.Errorf("stock.Valuation scan: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// DailySales agrupa el total de las ventas por día calendario en loc.
func (r *StockQueryRepo) DailySales(ctx context.Context, scope repository.LedgerScope, loc *time.Location) ([]ledger.DailyPoint, error) {
	if loc == nil {
		loc = time.UTC
	}
	w := newLedgerWhere(scope, false)
	w.add("h.movement_type = $%d", entity.MovementSale.Code())
	w.args = append(w.args, loc.String())
	tz := len(w.args)
	query := fmt.Sprintf(`
		SELECT to_char(h.created_at AT TIME ZONE $%[1]d, 'YYYY-MM-DD') AS day, SUM(h.amount_incl_vat)
		FROM stock_movement_headers h%[2]s
		GROUP BY day
		ORDER BY day`, tz, w.String())
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("stock.DailySales: %w", err)
	}
	defer rows.Close()
	var points []ledger.DailyPoint
	for rows.Next() {
		var day string
		var amount decimal.Decimal
		if err := rows.Scan(&day, &amount); err != nil {
			return nil, fmt.Errorf("stock.DailySales scan: %w", err)
		}
		date, err := time.ParseInLocation(time.DateOnly, day, loc)
		if err != nil {
			return nil, fmt.Errorf("stock.DailySales día %q: %w", day, err)
		}
		points = append(points, ledger.DailyPoint{Date: date, Amount: amount})
	}
	return points, rows.Err()
}

// OnHandByProductType stock agregado por tipo de producto.
func (r *StockQueryRepo) OnHandByProductType(ctx context.Context, scope repository.LedgerScope) ([]repository.ProductTypeStock, error) {
	w := newLedgerWhere(scope, false)
	query := `
		SELECT p.product_type_id, COALESCE(pt.type, ''), SUM(` + signedQty + `)
		FROM stock_movement_headers h
		JOIN stock_movement_details d ON d.header_id = h.id
		JOIN products p ON p.id = d.product_id
		LEFT JOIN product_types pt ON pt.id = p.product_type_id` + w.String() + `
		GROUP BY p.product_type_id, pt.type`
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("stock.OnHandByProductType: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductTypeStock
	for rows.Next() {
		var s repository.ProductTypeStock
		if err := rows.Scan(&s.ProductTypeID, &s.ProductTypeName, &s.OnHand); err != nil {
			return nil, fmt.Errorf("stock.OnHandByProductType scan: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
