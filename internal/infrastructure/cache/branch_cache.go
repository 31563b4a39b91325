package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/pkg/config"
)

const branchKeyPrefix = "pos:branch:"

// BranchCache caché de sucursales por ID. Un fallo de Get se trata como miss en
// el decorador; nunca guarda existencias.
type BranchCache interface {
	Get(ctx context.Context, id string) (*entity.Branch, bool, error)
	Set(ctx context.Context, b *entity.Branch) error
	Invalidate(ctx context.Context, id string) error
	Close() error
}

type redisBranchCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopBranchCache struct{}

// NewBranchCache devuelve la caché Redis, o una noop si no hay Redis configurado.
func NewBranchCache(cfg config.CacheConfig) (BranchCache, error) {
	if !cfg.Enabled() {
		return NewNoopBranchCache(), nil
	}
	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	return &redisBranchCache{client: client, ttl: ttl}, nil
}

// NewNoopBranchCache caché deshabilitada.
func NewNoopBranchCache() BranchCache {
	return noopBranchCache{}
}

func branchKey(id string) string { return branchKeyPrefix + id }

func (c *redisBranchCache) Get(ctx context.Context, id string) (*entity.Branch, bool, error) {
	payload, err := c.client.Get(ctx, branchKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var b entity.Branch
	if err := json.Unmarshal(payload, &b); err != nil {
		return nil, false, fmt.Errorf("decodificar sucursal en caché: %w", err)
	}
	return &b, true, nil
}

func (c *redisBranchCache) Set(ctx context.Context, b *entity.Branch) error {
	payload, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("codificar sucursal para caché: %w", err)
	}
	if err := c.client.Set(ctx, branchKey(b.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *redisBranchCache) Invalidate(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, branchKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (c *redisBranchCache) Close() error { return c.client.Close() }

func (noopBranchCache) Get(context.Context, string) (*entity.Branch, bool, error) {
	return nil, false, nil
}
func (noopBranchCache) Set(context.Context, *entity.Branch) error { return nil }
func (noopBranchCache) Invalidate(context.Context, string) error  { return nil }
func (noopBranchCache) Close() error                              { return nil }
