package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. ProductNo vacío = automático.
type CreateProductRequest struct {
	ProductNo        string          `json:"product_no" validate:"max=100"`
	ProductName      string          `json:"product_name" validate:"required,min=1,max=150"`
	ProductDesc      string          `json:"product_desc" validate:"max=300"`
	ImageURL         string          `json:"image_url" validate:"omitempty,url,max=512"`
	BuyingUnitPrice  decimal.Decimal `json:"buying_unit_price"`
	SellingUnitPrice decimal.Decimal `json:"selling_unit_price"`
	UoM              string          `json:"uom" validate:"omitempty,oneof=Piece Pack Box Bottle Milliliter Gram"`
	ProductTypeID    string          `json:"product_type_id" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	ProductNo        *string          `json:"product_no" validate:"omitempty,min=1,max=100"`
	ProductName      *string          `json:"product_name" validate:"omitempty,min=1,max=150"`
	ProductDesc      *string          `json:"product_desc" validate:"omitempty,max=300"`
	ImageURL         *string          `json:"image_url" validate:"omitempty,max=512"`
	BuyingUnitPrice  *decimal.Decimal `json:"buying_unit_price"`
	SellingUnitPrice *decimal.Decimal `json:"selling_unit_price"`
	UoM              *string          `json:"uom" validate:"omitempty,oneof=Piece Pack Box Bottle Milliliter Gram"`
	ProductTypeID    *string          `json:"product_type_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string          `json:"id"`
	ProductNo        string          `json:"product_no"`
	ProductName      string          `json:"product_name"`
	ProductDesc      string          `json:"product_desc"`
	ImageURL         string          `json:"image_url"`
	BuyingUnitPrice  decimal.Decimal `json:"buying_unit_price"`
	SellingUnitPrice decimal.Decimal `json:"selling_unit_price"`
	UoM              string          `json:"uom"`
	ProductTypeID    string          `json:"product_type_id"`
	ProductTypeName  string          `json:"product_type_name"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
