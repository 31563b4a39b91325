package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var (
	_ repository.BranchRepository      = (*BranchRepo)(nil)
	_ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)
	_ repository.ProductRepository     = (*ProductRepo)(nil)
	_ repository.UserRepository        = (*UserRepo)(nil)
)

// ── Branches ─────────────────────────────────────────────────────────────────

// BranchRepo sucursales en memoria.
type BranchRepo struct {
	s  *Store
	tx *state
}

// NewBranchRepository construye el repositorio sobre el store.
func NewBranchRepository(s *Store) *BranchRepo { return &BranchRepo{s: s} }

func (r *BranchRepo) Create(_ context.Context, b *entity.Branch) error {
	return r.s.do(r.tx, func(st *state) error {
		for _, other := range st.branches {
			if strings.EqualFold(other.Code, b.Code) {
				return domain.ErrDuplicate
			}
		}
		st.branches[b.ID] = *b
		return nil
	})
}

func (r *BranchRepo) GetByID(_ context.Context, id string) (*entity.Branch, error) {
	var out *entity.Branch
	err := r.s.do(r.tx, func(st *state) error {
		if b, ok := st.branches[id]; ok {
			out = &b
		}
		return nil
	})
	return out, err
}

func (r *BranchRepo) Update(_ context.Context, b *entity.Branch) error {
	return r.s.do(r.tx, func(st *state) error {
		if _, ok := st.branches[b.ID]; !ok {
			return domain.ErrNotFound
		}
		for id, other := range st.branches {
			if id != b.ID && strings.EqualFold(other.Code, b.Code) {
				return domain.ErrDuplicate
			}
		}
		st.branches[b.ID] = *b
		return nil
	})
}

func (r *BranchRepo) List(_ context.Context, f repository.BranchFilter) ([]*entity.Branch, int, error) {
	var list []*entity.Branch
	err := r.s.do(r.tx, func(st *state) error {
		for _, b := range st.branches {
			if f.OnlyActive && !b.IsActive {
				continue
			}
			if !containsFold(b.Name, f.Filter) && !containsFold(b.Code, f.Filter) {
				continue
			}
			list = append(list, &b)
		}
		return nil
	})
	slices.SortFunc(list, func(a, b *entity.Branch) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return page(list, f.Limit, f.Offset), len(list), err
}

func (r *BranchRepo) Delete(_ context.Context, id string) error {
	return r.s.do(r.tx, func(st *state) error {
		for _, h := range st.headers {
			if h.BranchID == id {
				return fmt.Errorf("%w: la sucursal tiene movimientos", domain.ErrConflict)
			}
		}
		for _, u := range st.users {
			if u.BranchID == id {
				return fmt.Errorf("%w: la sucursal tiene usuarios asignados", domain.ErrConflict)
			}
		}
		delete(st.branches, id)
		return nil
	})
}

// ── Product types ────────────────────────────────────────────────────────────

// ProductTypeRepo tipos de producto en memoria.
type ProductTypeRepo struct {
	s  *Store
	tx *state
}

// NewProductTypeRepository construye el repositorio sobre el store.
func NewProductTypeRepository(s *Store) *ProductTypeRepo { return &ProductTypeRepo{s: s} }

func (r *ProductTypeRepo) Create(_ context.Context, pt *entity.ProductType) error {
	return r.s.do(r.tx, func(st *state) error {
		st.productTypes[pt.ID] = *pt
		return nil
	})
}

func (r *ProductTypeRepo) GetByID(_ context.Context, id string) (*entity.ProductType, error) {
	var out *entity.ProductType
	err := r.s.do(r.tx, func(st *state) error {
		if pt, ok := st.productTypes[id]; ok {
			out = &pt
		}
		return nil
	})
	return out, err
}

func (r *ProductTypeRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.ProductType, error) {
	var out []*entity.ProductType
	err := r.s.do(r.tx, func(st *state) error {
		for _, id := range ids {
			if pt, ok := st.productTypes[id]; ok {
				out = append(out, &pt)
			}
		}
		return nil
	})
	return out, err
}

func (r *ProductTypeRepo) Update(_ context.Context, pt *entity.ProductType) error {
	return r.s.do(r.tx, func(st *state) error {
		if _, ok := st.productTypes[pt.ID]; !ok {
			return domain.ErrNotFound
		}
		st.productTypes[pt.ID] = *pt
		return nil
	})
}

func (r *ProductTypeRepo) List(_ context.Context, filter string, limit, offset int) ([]*entity.ProductType, int, error) {
	var list []*entity.ProductType
	err := r.s.do(r.tx, func(st *state) error {
		for _, pt := range st.productTypes {
			if containsFold(pt.Type, filter) || containsFold(pt.TypeDesc, filter) {
				list = append(list, &pt)
			}
		}
		return nil
	})
	slices.SortFunc(list, func(a, b *entity.ProductType) int {
		if c := strings.Compare(a.Type, b.Type); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return page(list, limit, offset), len(list), err
}

func (r *ProductTypeRepo) Delete(_ context.Context, id string) error {
	return r.s.do(r.tx, func(st *state) error {
		for _, p := range st.products {
			if p.ProductTypeID == id {
				return fmt.Errorf("%w: el tipo tiene productos", domain.ErrConflict)
			}
		}
		delete(st.productTypes, id)
		return nil
	})
}

// ── Products ─────────────────────────────────────────────────────────────────

// ProductRepo productos en memoria.
type ProductRepo struct {
	s  *Store
	tx *state
}

// NewProductRepository construye el repositorio sobre el store.
func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.s.do(r.tx, func(st *state) error {
		for _, other := range st.products {
			if strings.EqualFold(other.ProductNo, p.ProductNo) {
				return domain.ErrDuplicate
			}
		}
		st.products[p.ID] = *p
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.s.do(r.tx, func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.s.do(r.tx, func(st *state) error {
		for _, id := range ids {
			if p, ok := st.products[id]; ok {
				out = append(out, &p)
			}
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	return r.s.do(r.tx, func(st *state) error {
		if _, ok := st.products[p.ID]; !ok {
			return domain.ErrNotFound
		}
		for id, other := range st.products {
			if id != p.ID && strings.EqualFold(other.ProductNo, p.ProductNo) {
				return domain.ErrDuplicate
			}
		}
		st.products[p.ID] = *p
		return nil
	})
}

func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	var list []*entity.Product
	err := r.s.do(r.tx, func(st *state) error {
		for _, p := range st.products {
			if matchesProduct(p, f.ProductID, f.ProductTypeID, f.Filter) {
				list = append(list, &p)
			}
		}
		return nil
	})
	slices.SortFunc(list, func(a, b *entity.Product) int {
		if c := strings.Compare(a.ProductName, b.ProductName); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return page(list, f.Limit, f.Offset), len(list), err
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	return r.s.do(r.tx, func(st *state) error {
		for _, lines := range st.details {
			for _, d := range lines {
				if d.ProductID == id {
					return fmt.Errorf("%w: el producto tiene movimientos", domain.ErrConflict)
				}
			}
		}
		delete(st.products, id)
		return nil
	})
}

func (r *ProductRepo) NextProductNo(_ context.Context) (string, error) {
	var no string
	err := r.s.do(r.tx, func(st *state) error {
		st.productSeq++
		no = fmt.Sprintf("P-%d", st.productSeq)
		return nil
	})
	return no, err
}

func matchesProduct(p entity.Product, productID, productTypeID, filter string) bool {
	if productID != "" && p.ID != productID {
		return false
	}
	if productTypeID != "" && p.ProductTypeID != productTypeID {
		return false
	}
	return containsFold(p.ProductNo, filter) || containsFold(p.ProductName, filter)
}

// ── Users ────────────────────────────────────────────────────────────────────

// UserRepo usuarios en memoria.
type UserRepo struct {
	s  *Store
	tx *state
}

// NewUserRepository construye el repositorio sobre el store.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	return r.s.do(r.tx, func(st *state) error {
		for _, other := range st.users {
			if strings.EqualFold(other.Username, u.Username) ||
				(u.Email != "" && strings.EqualFold(other.Email, u.Email)) {
				return domain.ErrDuplicate
			}
		}
		st.users[u.ID] = *u
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.s.do(r.tx, func(st *state) error {
		if u, ok := st.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) FindByLogin(_ context.Context, login string) (*entity.User, error) {
	var out *entity.User
	err := r.s.do(r.tx, func(st *state) error {
		for _, u := range st.users {
			if strings.EqualFold(u.Username, login) || (u.Email != "" && strings.EqualFold(u.Email, login)) {
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	return r.s.do(r.tx, func(st *state) error {
		if _, ok := st.users[u.ID]; !ok {
			return domain.ErrNotFound
		}
		st.users[u.ID] = *u
		return nil
	})
}
