package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// errorTable se recorre en orden; el primero que matchea con errors.Is gana.
var errorTable = []errorMapping{
	{domain.ErrNoLines, fiber.StatusBadRequest, "NO_LINES"},
	{domain.ErrQuantityNotPositive, fiber.StatusBadRequest, "QUANTITY_MUST_BE_POSITIVE"},
	{domain.ErrPriceInvalid, fiber.StatusBadRequest, "PRICE_INVALID"},
	{domain.ErrDiscountInvalid, fiber.StatusBadRequest, "DISCOUNT_INVALID"},
	{domain.ErrDiscountBelowCost, fiber.StatusBadRequest, "DISCOUNT_BELOW_COST"},
	{domain.ErrInvalidAdjustmentType, fiber.StatusBadRequest, "INVALID_ADJUSTMENT_TYPE"},
	{domain.ErrInvalidMovementType, fiber.StatusBadRequest, "INVALID_MOVEMENT_TYPE"},
	{domain.ErrInvalidSort, fiber.StatusBadRequest, "INVALID_SORT"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT"},
	{domain.ErrBranchRequired, fiber.StatusForbidden, "BRANCH_REQUIRED"},
	{domain.ErrNoBranchAssigned, fiber.StatusForbidden, "NO_BRANCH_ASSIGNED"},
	{domain.ErrCrossBranch, fiber.StatusForbidden, "CROSS_BRANCH"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrMovementCancelled, fiber.StatusConflict, "MOVEMENT_CANCELLED"},
	{domain.ErrProductNotFound, fiber.StatusNotFound, "PRODUCT_NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
}

// respondError traduce un error de dominio a dto.ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
