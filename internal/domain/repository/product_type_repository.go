package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// ProductTypeRepository define el puerto de persistencia para ProductType (DIP).
type ProductTypeRepository interface {
	Create(ctx context.Context, pt *entity.ProductType) error
	GetByID(ctx context.Context, id string) (*entity.ProductType, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.ProductType, error)
	Update(ctx context.Context, pt *entity.ProductType) error
	List(ctx context.Context, filter string, limit, offset int) ([]*entity.ProductType, int, error)
	Delete(ctx context.Context, id string) error
}
