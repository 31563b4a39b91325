package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

const branchColumns = `id, code, name, vat_perc, is_active, created_at, created_by, updated_at, updated_by`

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador de persistencia para sucursales.
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create persiste una nueva sucursal.
func (r *BranchRepo) Create(ctx context.Context, b *entity.Branch) error {
	query := `INSERT INTO branches (` + branchColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Code, b.Name, b.VatPerc, b.IsActive, b.CreatedAt, b.CreatedBy, b.UpdatedAt, b.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID.
func (r *BranchRepo) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	b, err := scanBranch(r.q.QueryRow(ctx, `SELECT `+branchColumns+` FROM branches WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return b, nil
}

// Update actualiza una sucursal existente.
func (r *BranchRepo) Update(ctx context.Context, b *entity.Branch) error {
	query := `
		UPDATE branches SET code = $2, name = $3, vat_perc = $4, is_active = $5, updated_at = $6, updated_by = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, b.ID, b.Code, b.Name, b.VatPerc, b.IsActive, b.UpdatedAt, b.UpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update branch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista sucursales por nombre con filtro opcional por nombre o código.
func (r *BranchRepo) List(ctx context.Context, f repository.BranchFilter) ([]*entity.Branch, int, error) {
	where := ` WHERE ($1 = '' OR name ILIKE $2 OR code ILIKE $2) AND (NOT $3 OR is_active)`
	args := []any{f.Filter, likePattern(f.Filter), f.OnlyActive}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM branches`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count branches: %w", err)
	}

	query := `SELECT ` + branchColumns + ` FROM branches` + where + ` ORDER BY name, id`
	query, args = appendPage(query, args, f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

// Delete elimina una sucursal; ErrConflict si está referenciada.
func (r *BranchRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la sucursal tiene movimientos o usuarios", domain.ErrConflict)
		}
		return fmt.Errorf("delete branch: %w", err)
	}
	return nil
}

func scanBranch(row pgxScanner) (*entity.Branch, error) {
	var b entity.Branch
	if err := row.Scan(&b.ID, &b.Code, &b.Name, &b.VatPerc, &b.IsActive,
		&b.CreatedAt, &b.CreatedBy, &b.UpdatedAt, &b.UpdatedBy); err != nil {
		return nil, err
	}
	return &b, nil
}
