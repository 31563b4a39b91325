package cache

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/logger"
)

var _ repository.BranchRepository = (*CachedBranchRepository)(nil)

// CachedBranchRepository decora un BranchRepository: GetByID lee primero de la
// caché; Update y Delete la invalidan. List no se cachea.
type CachedBranchRepository struct {
	next  repository.BranchRepository
	cache BranchCache
	log   *logger.Logger
}

// NewCachedBranchRepository construye el decorador.
func NewCachedBranchRepository(next repository.BranchRepository, cache BranchCache, log *logger.Logger) *CachedBranchRepository {
	return &CachedBranchRepository{next: next, cache: cache, log: log}
}

func (r *CachedBranchRepository) Create(ctx context.Context, b *entity.Branch) error {
	return r.next.Create(ctx, b)
}

func (r *CachedBranchRepository) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	cached, ok, err := r.cache.Get(ctx, id)
	if err != nil {
		r.log.Warn().Err(err).Str("branch_id", id).Msg("caché de sucursales no disponible")
	}
	if ok {
		return cached, nil
	}
	b, err := r.next.GetByID(ctx, id)
	if err != nil || b == nil {
		return b, err
	}
	if err := r.cache.Set(ctx, b); err != nil {
		r.log.Warn().Err(err).Str("branch_id", id).Msg("no se pudo cachear la sucursal")
	}
	return b, nil
}

func (r *CachedBranchRepository) Update(ctx context.Context, b *entity.Branch) error {
	if err := r.next.Update(ctx, b); err != nil {
		return err
	}
	r.invalidate(ctx, b.ID)
	return nil
}

func (r *CachedBranchRepository) List(ctx context.Context, f repository.BranchFilter) ([]*entity.Branch, int, error) {
	return r.next.List(ctx, f)
}

func (r *CachedBranchRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedBranchRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Invalidate(ctx, id); err != nil {
		r.log.Error().Err(err).Str("branch_id", id).Msg("no se pudo invalidar la sucursal en caché")
	}
}
