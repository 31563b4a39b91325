package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBranchRequest entrada para crear una sucursal.
type CreateBranchRequest struct {
	Code     string          `json:"code" validate:"required,min=1,max=32"`
	Name     string          `json:"name" validate:"required,min=1,max=128"`
	VatPerc  decimal.Decimal `json:"vat_perc"`
	IsActive *bool           `json:"is_active"`
}

// UpdateBranchRequest entrada para actualizar una sucursal.
type UpdateBranchRequest struct {
	Code     *string          `json:"code" validate:"omitempty,min=1,max=32"`
	Name     *string          `json:"name" validate:"omitempty,min=1,max=128"`
	VatPerc  *decimal.Decimal `json:"vat_perc"`
	IsActive *bool            `json:"is_active"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	DisplayName string          `json:"display_name"`
	VatPerc     decimal.Decimal `json:"vat_perc"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BranchListResponse lista paginada de sucursales.
type BranchListResponse struct {
	Items []BranchResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// BranchLookupItem opción para combos de sucursal.
type BranchLookupItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
