package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/pos-api/internal/application/inventory"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/domain/sorting"
)

var (
	_ repository.StockMovementRepository = (*StockMovementRepo)(nil)
	_ inventory.TxRunner                 = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks sobre una copia del store que se publica al confirmar.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

// Run ejecuta fn con repositorios atados a la transacción en memoria.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	queryRepo repository.StockQueryRepository,
) error) error {
	return r.s.Run(ctx, func(st *state) error {
		return fn(&StockMovementRepo{s: r.s, tx: st}, &StockQueryRepo{s: r.s, tx: st})
	})
}

// StockMovementRepo libro de movimientos en memoria.
type StockMovementRepo struct {
	s  *Store
	tx *state
}

// NewStockMovementRepository construye el repositorio fuera de transacción (lecturas).
func NewStockMovementRepository(s *Store) *StockMovementRepo { return &StockMovementRepo{s: s} }

func (r *StockMovementRepo) NextSeq(_ context.Context) (int64, error) {
	var seq int64
	err := r.s.do(r.tx, func(st *state) error {
		st.movementSeq++
		seq = st.movementSeq
		return nil
	})
	return seq, err
}

func (r *StockMovementRepo) Create(_ context.Context, h *entity.StockMovementHeader) error {
	return r.s.do(r.tx, func(st *state) error {
		if _, ok := st.branches[h.BranchID]; !ok {
			return domain.ErrNotFound
		}
		for _, d := range h.Details {
			if _, ok := st.products[d.ProductID]; !ok {
				return domain.ErrProductNotFound
			}
		}
		header := *h
		header.Details = nil
		st.headers[h.ID] = header
		st.details[h.ID] = slices.Clone(h.Details)
		return nil
	})
}

func (r *StockMovementRepo) GetByID(_ context.Context, id string) (*entity.StockMovementHeader, error) {
	var out *entity.StockMovementHeader
	err := r.s.do(r.tx, func(st *state) error {
		h, ok := st.headers[id]
		if !ok {
			return nil
		}
		h.Details = slices.Clone(st.details[id])
		out = &h
		return nil
	})
	return out, err
}

func (r *StockMovementRepo) Update(_ context.Context, h *entity.StockMovementHeader) error {
	return r.s.do(r.tx, func(st *state) error {
		cur, ok := st.headers[h.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if cur.IsCancelled {
			return domain.ErrMovementCancelled
		}
		for _, d := range h.Details {
			if _, ok := st.products[d.ProductID]; !ok {
				return domain.ErrProductNotFound
			}
		}
		header := *h
		header.Details = nil
		st.headers[h.ID] = header
		st.details[h.ID] = slices.Clone(h.Details)
		return nil
	})
}

func (r *StockMovementRepo) SetCancelled(_ context.Context, h *entity.StockMovementHeader) error {
	return r.s.do(r.tx, func(st *state) error {
		cur, ok := st.headers[h.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if cur.IsCancelled {
			return nil
		}
		cur.IsCancelled = true
		cur.Description = h.Description
		cur.UpdatedAt = h.UpdatedAt
		cur.UpdatedBy = h.UpdatedBy
		st.headers[h.ID] = cur
		return nil
	})
}

var headerComparators = map[string]sorting.Comparator[*entity.StockMovementHeader]{
	"movement_date": func(a, b *entity.StockMovementHeader) int { return a.CreatedAt.Compare(b.CreatedAt) },
	"movement_no":   func(a, b *entity.StockMovementHeader) int { return cmpInt64(a.Seq, b.Seq) },
	"movement_type": func(a, b *entity.StockMovementHeader) int {
		return compareMovementType(a.MovementType, b.MovementType)
	},
	"amount_incl_vat": func(a, b *entity.StockMovementHeader) int { return a.AmountInclVat.Cmp(b.AmountInclVat) },
}

func (r *StockMovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.StockMovementHeader, int, error) {
	var list []*entity.StockMovementHeader
	err := r.s.do(r.tx, func(st *state) error {
		for _, h := range st.headers {
			if f.BranchID != "" && h.BranchID != f.BranchID {
				continue
			}
			if f.Type != "" && h.MovementType != f.Type {
				continue
			}
			if h.IsCancelled && !f.IncludeCancelled {
				continue
			}
			if f.Start != nil && h.CreatedAt.Before(*f.Start) {
				continue
			}
			if f.EndExclusive != nil && !h.CreatedAt.Before(*f.EndExclusive) {
				continue
			}
			list = append(list, &h)
		}
		return nil
	})
	sorting.SortStable(list, append(slices.Clone(f.Sort), sorting.Field{Key: "movement_no", Desc: true}), headerComparators)
	return page(list, f.Limit, f.Offset), len(list), err
}

// LockBranch no hace nada: el mutex del store ya serializa las transacciones.
func (r *StockMovementRepo) LockBranch(_ context.Context, _ string) error { return nil }

// compareMovementType ordena por el código persistido, igual que la columna en postgres.
func compareMovementType(a, b entity.MovementType) int {
	return cmpInt64(int64(a.Code()), int64(b.Code()))
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
