package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/inventory"
)

// StockMovementHandler endpoints de escritura y consulta del libro de movimientos.
type StockMovementHandler struct {
	uc  *inventory.MovementUseCase
	loc *time.Location
}

// NewStockMovementHandler construye el handler; loc interpreta las fechas YYYY-MM-DD.
func NewStockMovementHandler(uc *inventory.MovementUseCase, loc *time.Location) *StockMovementHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &StockMovementHandler{uc: uc, loc: loc}
}

type createFunc func(c *fiber.Ctx, in dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error)

func (h *StockMovementHandler) create(c *fiber.Ctx, fn createFunc) error {
	var in dto.CreateStockMovementRequest
	if err := bindJSON(c, &in); err != nil {
		return nil
	}
	out, err := fn(c, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Create godoc
// @Summary      Registrar movimiento
// @Description  movement_type: Purchase | Sale | AdjustmentPlus | AdjustmentMinus.
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockMovementRequest  true  "Cabecera y líneas"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-movements [post]
func (h *StockMovementHandler) Create(c *fiber.Ctx) error {
	return h.create(c, func(c *fiber.Ctx, in dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error) {
		return h.uc.Create(c.UserContext(), CallerFrom(c), in)
	})
}

// AddStock godoc
// @Summary      Ingreso de mercadería (compra)
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockMovementRequest  true  "Líneas; el tipo se ignora"
// @Success      201   {object}  dto.StockMovementResponse
// @Router       /api/stock-movements/add-stock [post]
func (h *StockMovementHandler) AddStock(c *fiber.Ctx) error {
	return h.create(c, func(c *fiber.Ctx, in dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error) {
		return h.uc.AddStock(c.UserContext(), CallerFrom(c), in)
	})
}

// CheckoutCart godoc
// @Summary      Cobrar carrito (venta)
// @Description  Sin precio se usa el de venta del producto; el descuento no puede dejar el precio bajo el costo.
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockMovementRequest  true  "Líneas del carrito"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-movements/checkout-cart [post]
func (h *StockMovementHandler) CheckoutCart(c *fiber.Ctx) error {
	return h.create(c, func(c *fiber.Ctx, in dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error) {
		return h.uc.CheckoutCart(c.UserContext(), CallerFrom(c), in)
	})
}

// AdjustStock godoc
// @Summary      Ajuste de inventario
// @Description  movement_type: AdjustmentPlus | AdjustmentMinus. Sin IVA.
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockMovementRequest  true  "Ajuste"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-movements/adjust-stock [post]
func (h *StockMovementHandler) AdjustStock(c *fiber.Ctx) error {
	return h.create(c, func(c *fiber.Ctx, in dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error) {
		return h.uc.AdjustStock(c.UserContext(), CallerFrom(c), in)
	})
}

// PhysicalInventory godoc
// @Summary      Conteo físico
// @Description  Genera hasta dos ajustes (+/-) con la diferencia entre lo contado y el stock.
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PhysicalInventoryRequest  true  "Conteo"
// @Success      201   {object}  dto.PhysicalInventoryResponse
// @Router       /api/stock-movements/physical-inventory [post]
func (h *StockMovementHandler) PhysicalInventory(c *fiber.Ctx) error {
	var in dto.PhysicalInventoryRequest
	if err := bindJSON(c, &in); err != nil {
		return nil
	}
	out, err := h.uc.PhysicalInventory(c.UserContext(), CallerFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento con sus líneas
// @Tags         stock-movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.StockMovementResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-movements/{id} [get]
func (h *StockMovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), CallerFrom(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos
// @Tags         stock-movements
// @Security     Bearer
// @Produce      json
// @Param        branch_id          query  string  false  "Sucursal"
// @Param        movement_type      query  string  false  "Tipo"
// @Param        include_cancelled  query  bool    false  "Incluir anulados"
// @Param        date_from          query  string  false  "YYYY-MM-DD"
// @Param        date_to            query  string  false  "YYYY-MM-DD (inclusive)"
// @Param        skip               query  int     false  "Desde"
// @Param        take               query  int     false  "Cantidad"
// @Param        sorting            query  string  false  "campo ASC|DESC"
// @Success      200  {object}  dto.PagedResult[dto.StockMovementResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock-movements [get]
func (h *StockMovementHandler) List(c *fiber.Ctx) error {
	var req dto.StockMovementListRequest
	if err := bindQuery(c, &req); err != nil {
		return nil
	}
	var err error
	if req.DateFrom, req.DateTo, err = queryDateRange(c, h.loc); err != nil {
		return nil
	}
	out, err := h.uc.List(c.UserContext(), CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar movimiento
// @Description  Reemplaza cabecera y líneas; no se puede cambiar de sucursal ni editar anulados.
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.CreateStockMovementRequest  true  "Movimiento completo"
// @Success      200   {object}  dto.StockMovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-movements/{id} [put]
func (h *StockMovementHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateStockMovementRequest
	if err := bindJSON(c, &in); err != nil {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), CallerFrom(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Anular movimiento
// @Description  Idempotente; el motivo se agrega a la descripción.
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.CancelStockMovementRequest  false  "Motivo"
// @Success      200   {object}  dto.StockMovementResponse
// @Router       /api/stock-movements/{id}/cancel [post]
func (h *StockMovementHandler) Cancel(c *fiber.Ctx) error {
	var in dto.CancelStockMovementRequest
	if len(c.Body()) > 0 {
		if err := bindJSON(c, &in); err != nil {
			return nil
		}
	}
	out, err := h.uc.Cancel(c.UserContext(), CallerFrom(c), c.Params("id"), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF del movimiento
// @Tags         stock-movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-movements/{id}/receipt [get]
func (h *StockMovementHandler) Receipt(c *fiber.Ctx) error {
	pdf, name, err := h.uc.Receipt(c.UserContext(), CallerFrom(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+name+`"`)
	return c.Send(pdf)
}
