package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const headerColumns = `id, seq, stock_movement_no, movement_type, branch_id, business_partner_name, description,
	amount_excl_vat, amount_vat, amount_incl_vat, is_cancelled, created_at, created_by, updated_at, updated_by`

// headerSortColumns lista blanca de claves de ordenamiento del listado.
var headerSortColumns = map[string]string{
	"movement_date":   "created_at",
	"movement_no":     "seq",
	"movement_type":   "movement_type",
	"amount_incl_vat": "amount_incl_vat",
}

// StockMovementRepo libro de movimientos sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Las escrituras deben usar una tx.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// NextSeq toma el siguiente valor de stock_movement_seq.
func (r *StockMovementRepo) NextSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('stock_movement_seq')`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next movement seq: %w", err)
	}
	return seq, nil
}

// Create inserta la cabecera y sus líneas.
func (r *StockMovementRepo) Create(ctx context.Context, h *entity.StockMovementHeader) error {
	query := `INSERT INTO stock_movement_headers (` + headerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.Seq, h.StockMovementNo, h.MovementType.Code(), h.BranchID, h.BusinessPartnerName, h.Description,
		h.AmountExclVat, h.AmountVat, h.AmountInclVat, h.IsCancelled, h.CreatedAt, h.CreatedBy, h.UpdatedAt, h.UpdatedBy,
	)
	if err != nil {
		return mapMovementError("insert movement header", err)
	}
	return r.insertDetails(ctx, h)
}

// insertDetails envía todas las líneas en un solo batch.
func (r *StockMovementRepo) insertDetails(ctx context.Context, h *entity.StockMovementHeader) error {
	if len(h.Details) == 0 {
		return nil
	}
	const query = `
		INSERT INTO stock_movement_details (id, header_id, line_no, product_id, uom, quantity, unit_price,
			discount_amount, amount_excl_vat, amount_vat, amount_incl_vat, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	batch := &pgx.Batch{}
	for i, d := range h.Details {
		batch.Queue(query, d.ID, h.ID, i+1, d.ProductID, d.UoM, d.Quantity, d.UnitPrice,
			d.DiscountAmount, d.AmountExclVat, d.AmountVat, d.AmountInclVat, d.CreatedAt)
	}
	br := r.q.SendBatch(ctx, batch)
	for range h.Details {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return mapMovementError("insert movement detail", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close detail batch: %w", err)
	}
	return nil
}

// GetByID devuelve la cabecera con sus líneas en orden de carga.
func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovementHeader, error) {
	h, err := scanHeader(r.q.QueryRow(ctx, `SELECT `+headerColumns+` FROM stock_movement_headers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, header_id, product_id, uom, quantity, unit_price, discount_amount,
			amount_excl_vat, amount_vat, amount_incl_vat, created_at
		FROM stock_movement_details WHERE header_id = $1 ORDER BY line_no`, id)
	if err != nil {
		return nil, fmt.Errorf("get movement details: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d entity.StockMovementDetail
		if err := rows.Scan(&d.ID, &d.HeaderID, &d.ProductID, &d.UoM, &d.Quantity, &d.UnitPrice, &d.DiscountAmount,
			&d.AmountExclVat, &d.AmountVat, &d.AmountInclVat, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement detail: %w", err)
		}
		h.Details = append(h.Details, d)
	}
	return h, rows.Err()
}

// Update reescribe la cabecera y reemplaza todas sus líneas. Una cabecera anulada
// no se toca aunque la anulación haya confirmado después de la relectura del caso de uso:
// el UPDATE espera el bloqueo de fila y reevalúa NOT is_cancelled.
func (r *StockMovementRepo) Update(ctx context.Context, h *entity.StockMovementHeader) error {
	query := `
		UPDATE stock_movement_headers SET movement_type = $2, branch_id = $3, business_partner_name = $4,
			description = $5, amount_excl_vat = $6, amount_vat = $7, amount_incl_vat = $8,
			updated_at = $9, updated_by = $10
		WHERE id = $1 AND NOT is_cancelled`
	cmd, err := r.q.Exec(ctx, query,
		h.ID, h.MovementType.Code(), h.BranchID, h.BusinessPartnerName, h.Description,
		h.AmountExclVat, h.AmountVat, h.AmountInclVat, h.UpdatedAt, h.UpdatedBy,
	)
	if err != nil {
		return mapMovementError("update movement header", err)
	}
	if cmd.RowsAffected() == 0 {
		return r.notUpdatable(ctx, h.ID)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_movement_details WHERE header_id = $1`, h.ID); err != nil {
		return fmt.Errorf("delete movement details: %w", err)
	}
	return r.insertDetails(ctx, h)
}

// SetCancelled persiste la anulación. Si otra transacción ya la anuló no escribe nada.
func (r *StockMovementRepo) SetCancelled(ctx context.Context, h *entity.StockMovementHeader) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE stock_movement_headers SET is_cancelled = TRUE, description = $2, updated_at = $3, updated_by = $4
		WHERE id = $1 AND NOT is_cancelled`,
		h.ID, h.Description, h.UpdatedAt, h.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("cancel movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		if err := r.notUpdatable(ctx, h.ID); !errors.Is(err, domain.ErrMovementCancelled) {
			return err
		}
	}
	return nil
}

// notUpdatable explica por qué un UPDATE guardado no afectó filas.
func (r *StockMovementRepo) notUpdatable(ctx context.Context, id string) error {
	var cancelled bool
	err := r.q.QueryRow(ctx, `SELECT is_cancelled FROM stock_movement_headers WHERE id = $1`, id).Scan(&cancelled)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrNotFound
	case err != nil:
		return fmt.Errorf("check movement: %w", err)
	case cancelled:
		return domain.ErrMovementCancelled
	}
	return domain.ErrNotFound
}

// List devuelve cabeceras sin líneas y el total sin paginar.
func (r *StockMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.StockMovementHeader, int, error) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.BranchID != "" {
		add("branch_id = $%d", f.BranchID)
	}
	if f.Type != "" {
		add("movement_type = $%d", f.Type.Code())
	}
	if !f.IncludeCancelled {
		conds = append(conds, "NOT is_cancelled")
	}
	if f.Start != nil {
		add("created_at >= $%d", *f.Start)
	}
	if f.EndExclusive != nil {
		add("created_at < $%d", *f.EndExclusive)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movement_headers`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	order := f.Sort.OrderBy(headerSortColumns, "created_at DESC") + ", seq DESC"
	query, args := appendPage(`SELECT `+headerColumns+` FROM stock_movement_headers`+where+` ORDER BY `+order, args, f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovementHeader
	for rows.Next() {
		h, err := scanHeader(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, h)
	}
	return list, total, rows.Err()
}

// LockBranch toma un advisory lock de transacción sobre la sucursal.
func (r *StockMovementRepo) LockBranch(ctx context.Context, branchID string) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('stock:' || $1))`, branchID); err != nil {
		return fmt.Errorf("lock branch: %w", err)
	}
	return nil
}

func scanHeader(row pgxScanner) (*entity.StockMovementHeader, error) {
	var h entity.StockMovementHeader
	var code int16
	if err := row.Scan(&h.ID, &h.Seq, &h.StockMovementNo, &code, &h.BranchID, &h.BusinessPartnerName, &h.Description,
		&h.AmountExclVat, &h.AmountVat, &h.AmountInclVat, &h.IsCancelled,
		&h.CreatedAt, &h.CreatedBy, &h.UpdatedAt, &h.UpdatedBy); err != nil {
		return nil, err
	}
	t, err := entity.MovementTypeFromCode(code)
	if err != nil {
		return nil, err
	}
	h.MovementType = t
	return &h, nil
}

// mapMovementError traduce las FK de cabecera y líneas a errores de dominio.
func mapMovementError(op string, err error) error {
	if isForeignKeyViolation(err) {
		switch pgConstraint(err) {
		case "stock_movement_details_product_id_fkey":
			return domain.ErrProductNotFound
		case "stock_movement_headers_branch_id_fkey":
			return fmt.Errorf("%w: sucursal", domain.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
