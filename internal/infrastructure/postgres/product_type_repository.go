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

var _ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)

const productTypeColumns = `id, type, type_desc, created_at, created_by, updated_at, updated_by`

// ProductTypeRepo implementación del puerto ProductTypeRepository sobre PostgreSQL.
type ProductTypeRepo struct {
	q Querier
}

// NewProductTypeRepository construye el adaptador.
func NewProductTypeRepository(q Querier) *ProductTypeRepo {
	return &ProductTypeRepo{q: q}
}

func (r *ProductTypeRepo) Create(ctx context.Context, pt *entity.ProductType) error {
	query := `INSERT INTO product_types (` + productTypeColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.q.Exec(ctx, query,
		pt.ID, pt.Type, pt.TypeDesc, pt.CreatedAt, pt.CreatedBy, pt.UpdatedAt, pt.UpdatedBy,
	); err != nil {
		return fmt.Errorf("insert product type: %w", err)
	}
	return nil
}

func (r *ProductTypeRepo) GetByID(ctx context.Context, id string) (*entity.ProductType, error) {
	pt, err := scanProductType(r.q.QueryRow(ctx, `SELECT `+productTypeColumns+` FROM product_types WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product type: %w", err)
	}
	return pt, nil
}

func (r *ProductTypeRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.ProductType, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+productTypeColumns+` FROM product_types WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get product types: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductType
	for rows.Next() {
		pt, err := scanProductType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product type: %w", err)
		}
		list = append(list, pt)
	}
	return list, rows.Err()
}

func (r *ProductTypeRepo) Update(ctx context.Context, pt *entity.ProductType) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE product_types SET type = $2, type_desc = $3, updated_at = $4, updated_by = $5 WHERE id = $1`,
		pt.ID, pt.Type, pt.TypeDesc, pt.UpdatedAt, pt.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update product type: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductTypeRepo) List(ctx context.Context, filter string, limit, offset int) ([]*entity.ProductType, int, error) {
	where := ` WHERE ($1 = '' OR type ILIKE $2)`
	args := []any{filter, likePattern(filter)}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM product_types`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count product types: %w", err)
	}
	query, args := appendPage(`SELECT `+productTypeColumns+` FROM product_types`+where+` ORDER BY type, id`, args, limit, offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list product types: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductType
	for rows.Next() {
		pt, err := scanProductType(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product type: %w", err)
		}
		list = append(list, pt)
	}
	return list, total, rows.Err()
}

func (r *ProductTypeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_types WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el tipo tiene productos", domain.ErrConflict)
		}
		return fmt.Errorf("delete product type: %w", err)
	}
	return nil
}

func scanProductType(row pgxScanner) (*entity.ProductType, error) {
	var pt entity.ProductType
	if err := row.Scan(&pt.ID, &pt.Type, &pt.TypeDesc, &pt.CreatedAt, &pt.CreatedBy, &pt.UpdatedAt, &pt.UpdatedBy); err != nil {
		return nil, err
	}
	return &pt, nil
}
