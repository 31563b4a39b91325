package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// Errores de validación de movimientos de stock.
var (
	ErrNoLines               = errors.New("el movimiento debe tener al menos una línea")
	ErrQuantityNotPositive   = errors.New("la cantidad debe ser mayor que cero")
	ErrPriceInvalid          = errors.New("el precio unitario no puede ser negativo")
	ErrDiscountInvalid       = errors.New("el descuento no puede ser negativo")
	ErrDiscountBelowCost     = errors.New("el descuento deja el precio por debajo del costo")
	ErrInvalidAdjustmentType = errors.New("tipo de ajuste inválido")
	ErrInvalidMovementType   = errors.New("tipo de movimiento inválido")
	ErrInvalidSort           = errors.New("criterio de ordenamiento inválido")
)

// Errores de alcance por sucursal.
var (
	ErrBranchRequired   = errors.New("debe indicar una sucursal")
	ErrNoBranchAssigned = errors.New("el usuario no tiene sucursal asignada")
	ErrCrossBranch      = errors.New("el movimiento pertenece a otra sucursal")
)

// ErrMovementCancelled se devuelve al intentar modificar un movimiento anulado.
var ErrMovementCancelled = errors.New("el movimiento está anulado")
