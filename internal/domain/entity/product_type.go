package entity

import "time"

// ProductType representa la categoría de un producto.
type ProductType struct {
	ID        string
	Type      string
	TypeDesc  string
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
}
