package dto

import "time"

// CreateProductTypeRequest entrada para crear un tipo de producto.
type CreateProductTypeRequest struct {
	Type     string `json:"type" validate:"required,min=1,max=100"`
	TypeDesc string `json:"type_desc" validate:"max=300"`
}

// UpdateProductTypeRequest entrada para actualizar un tipo de producto.
type UpdateProductTypeRequest struct {
	Type     *string `json:"type" validate:"omitempty,min=1,max=100"`
	TypeDesc *string `json:"type_desc" validate:"omitempty,max=300"`
}

// ProductTypeResponse salida de un tipo de producto.
type ProductTypeResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	TypeDesc  string    `json:"type_desc"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductTypeListResponse lista paginada de tipos de producto.
type ProductTypeListResponse struct {
	Items []ProductTypeResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
