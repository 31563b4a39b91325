package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/cache"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// fakeCache caché en mapa que cuenta aciertos.
type fakeCache struct {
	items   map[string]entity.Branch
	hits    int
	failGet bool
}

func newFakeCache() *fakeCache { return &fakeCache{items: map[string]entity.Branch{}} }

func (f *fakeCache) Get(_ context.Context, id string) (*entity.Branch, bool, error) {
	if f.failGet {
		return nil, false, errors.New("conexión rechazada")
	}
	b, ok := f.items[id]
	if !ok {
		return nil, false, nil
	}
	f.hits++
	return &b, true, nil
}

func (f *fakeCache) Set(_ context.Context, b *entity.Branch) error {
	f.items[b.ID] = *b
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeCache) Close() error { return nil }

func setup(t *testing.T) (*cache.CachedBranchRepository, *fakeCache) {
	t.Helper()
	store := memory.NewStore()
	inner := memory.NewBranchRepository(store)
	require.NoError(t, inner.Create(context.Background(), &entity.Branch{
		ID: "b1", Code: "C", Name: "Centro", VatPerc: decimal.NewFromInt(15), IsActive: true,
	}))
	fc := newFakeCache()
	log := logger.Nop()
	return cache.NewCachedBranchRepository(inner, fc, log), fc
}

func TestCachedBranch_SegundaLecturaDesdeCache(t *testing.T) {
	repo, fc := setup(t)
	ctx := context.Background()

	b, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, 0, fc.hits)
	assert.Contains(t, fc.items, "b1")

	again, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 1, fc.hits)
	assert.True(t, again.VatPerc.Equal(decimal.NewFromInt(15)))
}

func TestCachedBranch_InexistenteNoSeCachea(t *testing.T) {
	repo, fc := setup(t)

	b, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, b)
	assert.Empty(t, fc.items)
}

func TestCachedBranch_UpdateYDeleteInvalidan(t *testing.T) {
	repo, fc := setup(t)
	ctx := context.Background()

	b, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	b.VatPerc = decimal.NewFromInt(19)
	require.NoError(t, repo.Update(ctx, b))
	assert.NotContains(t, fc.items, "b1")

	fresh, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, fresh.VatPerc.Equal(decimal.NewFromInt(19)))

	require.NoError(t, repo.Delete(ctx, "b1"))
	assert.NotContains(t, fc.items, "b1")
	gone, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCachedBranch_FalloDeCacheLeeDelRepositorio(t *testing.T) {
	repo, fc := setup(t)
	fc.failGet = true

	b, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "Centro", b.Name)
}

func TestNewBranchCache_SinRedisEsNoop(t *testing.T) {
	c, err := cache.NewBranchCache(config.CacheConfig{})
	require.NoError(t, err)

	require.NoError(t, c.Set(context.Background(), &entity.Branch{ID: "x"}))
	_, ok, err := c.Get(context.Background(), "x")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Close())
}

func TestNewBranchCache_URLInvalida(t *testing.T) {
	_, err := cache.NewBranchCache(config.CacheConfig{RedisURL: "http://no-es-redis"})
	assert.Error(t, err)
}
