package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// BranchFilter criterios de listado de sucursales.
type BranchFilter struct {
	Filter     string // coincide con nombre o código
	OnlyActive bool
	Limit      int // 0 = sin límite
	Offset     int
}

// BranchRepository define el puerto de persistencia para Branch (DIP).
// GetByID devuelve (nil, nil) si no existe.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id string) (*entity.Branch, error)
	Update(ctx context.Context, branch *entity.Branch) error
	List(ctx context.Context, f BranchFilter) ([]*entity.Branch, int, error)
	Delete(ctx context.Context, id string) error
}
