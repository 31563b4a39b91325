package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// ProductFilter criterios de listado de productos.
type ProductFilter struct {
	Filter        string // coincide con product_no o nombre (sin distinguir mayúsculas)
	ProductID     string
	ProductTypeID string
	Limit         int // 0 = sin límite
	Offset        int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, int, error)
	Delete(ctx context.Context, id string) error
	// NextProductNo devuelve el siguiente número automático "P-{n}".
	NextProductNo(ctx context.Context) (string, error)
}
