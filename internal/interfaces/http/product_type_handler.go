package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
)

// ProductTypeHandler CRUD de tipos de producto.
type ProductTypeHandler struct {
	uc *usecase.ProductTypeUseCase
}

func NewProductTypeHandler(uc *usecase.ProductTypeUseCase) *ProductTypeHandler {
	return &ProductTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de producto
// @Tags         product-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductTypeRequest  true  "Tipo"
// @Success      201   {object}  dto.ProductTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/product-types [post]
func (h *ProductTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductTypeRequest
	if err := bindJSON(c, &in); err != nil {
		return nil
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tipo de producto
// @Tags         product-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.ProductTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-types/{id} [get]
func (h *ProductTypeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tipos de producto
// @Tags         product-types
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "Texto"
// @Param        take    query  int     false  "Cantidad"  default(20)
// @Param        skip    query  int     false  "Omitir"  default(0)
// @Success      200     {object}  dto.ProductTypeListResponse
// @Router       /api/product-types [get]
func (h *ProductTypeHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), c.Query("filter"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de producto
// @Tags         product-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.UpdateProductTypeRequest  true  "Campos"
// @Success      200   {object}  dto.ProductTypeResponse
// @Router       /api/product-types/{id} [put]
func (h *ProductTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductTypeRequest
	if err := bindJSON(c, &in); err != nil {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de producto
// @Tags         product-types
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/product-types/{id} [delete]
func (h *ProductTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
