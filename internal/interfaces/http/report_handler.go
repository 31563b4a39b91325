package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/inventory"
)

// ReportHandler reportes de stock calculados sobre el libro de movimientos.
type ReportHandler struct {
	uc  *inventory.ReportUseCase
	loc *time.Location
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *inventory.ReportUseCase, loc *time.Location) *ReportHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportHandler{uc: uc, loc: loc}
}

// ProductMovements godoc
// @Summary      Historial de movimientos por producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        branch_id          query  string  false  "Sucursal"
// @Param        product_id         query  string  false  "Producto"
// @Param        product_type_id    query  string  false  "Tipo de producto"
// @Param        movement_type      query  string  false  "Tipo de movimiento"
// @Param        include_cancelled  query  bool    false  "Incluir anulados"
// @Param        date_from          query  string  false  "YYYY-MM-DD"
// @Param        date_to            query  string  false  "YYYY-MM-DD"
// @Param        skip               query  int     false  "Desde"
// @Param        take               query  int     false  "Cantidad"
// @Param        sorting            query  string  false  "campo ASC|DESC"
// @Success      200  {object}  dto.PagedResult[dto.ProductMovementDTO]
// @Router       /api/stock-movements/product-movements [get]
func (h *ReportHandler) ProductMovements(c *fiber.Ctx) error {
	var req dto.ProductMovementRequest
	if err := bindQuery(c, &req); err != nil {
		return nil
	}
	var err error
	if req.DateFrom, req.DateTo, err = queryDateRange(c, h.loc); err != nil {
		return nil
	}
	out, err := h.uc.ProductMovements(c.UserContext(), CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ReportHandler) stockRequest(c *fiber.Ctx) (dto.StockReportRequest, error) {
	var req dto.StockReportRequest
	if err := bindQuery(c, &req); err != nil {
		return req, err
	}
	asOf, err := queryDate(c, "as_of", h.loc)
	if err != nil {
		return req, err
	}
	req.AsOf = asOf
	return req, nil
}

// StockReport godoc
// @Summary      Stock por sucursal y producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        branch_id        query  string  false  "Sucursal"
// @Param        product_id       query  string  false  "Producto"
// @Param        product_type_id  query  string  false  "Tipo de producto"
// @Param        filter           query  string  false  "Texto"
// @Param        only_available   query  bool    false  "Solo con stock > 0"
// @Param        as_of            query  string  false  "Stock al cierre de YYYY-MM-DD"
// @Param        skip             query  int     false  "Desde"
// @Param        take             query  int     false  "Cantidad"
// @Param        sorting          query  string  false  "campo ASC|DESC"
// @Success      200  {object}  dto.PagedResult[dto.StockReportDTO]
// @Router       /api/stock-movements/stock-report [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	req, err := h.stockRequest(c)
	if err != nil {
		return nil
	}
	out, err := h.uc.StockReport(c.UserContext(), CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockReportExport godoc
// @Summary      Exportar reporte de stock a Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        branch_id  query  string  false  "Sucursal"
// @Success      200  {file}  binary
// @Router       /api/stock-movements/stock-report/export [get]
func (h *ReportHandler) StockReportExport(c *fiber.Ctx) error {
	req, err := h.stockRequest(c)
	if err != nil {
		return nil
	}
	file, err := h.uc.StockReportXLSX(c.UserContext(), CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-report.xlsx"`)
	return c.Send(file)
}

// ProductStockList godoc
// @Summary      Catálogo con stock de la sucursal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        branch_id        query  string  false  "Sucursal"
// @Param        product_type_id  query  string  false  "Tipo de producto"
// @Param        filter           query  string  false  "Texto"
// @Param        only_available   query  bool    false  "Solo con stock > 0"
// @Param        skip             query  int     false  "Desde"
// @Param        take             query  int     false  "Cantidad"
// @Param        sorting          query  string  false  "campo ASC|DESC"
// @Success      200  {object}  dto.PagedResult[dto.ProductStockListItemDTO]
// @Router       /api/stock-movements/product-stock-list [get]
func (h *ReportHandler) ProductStockList(c *fiber.Ctx) error {
	var req dto.ProductStockListRequest
	if err := bindQuery(c, &req); err != nil {
		return nil
	}
	out, err := h.uc.ProductStockList(c.UserContext(), CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OnHand godoc
// @Summary      Stock de una lista de productos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_ids  query  string  true   "IDs separados por coma"
// @Param        branch_id    query  string  false  "Sucursal"
// @Success      200  {array}  dto.OnHandItemDTO
// @Router       /api/stock-movements/on-hand [get]
func (h *ReportHandler) OnHand(c *fiber.Ctx) error {
	out, err := h.uc.OnHandList(c.UserContext(), CallerFrom(c), queryList(c, "product_ids"), c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OnHandMap godoc
// @Summary      Stock por producto como mapa id → cantidad
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_ids  query  string  true   "IDs separados por coma"
// @Param        branch_id    query  string  false  "Sucursal"
// @Success      200  {object}  map[string]string
// @Router       /api/stock-movements/on-hand/map [get]
func (h *ReportHandler) OnHandMap(c *fiber.Ctx) error {
	out, err := h.uc.OnHandMap(c.UserContext(), CallerFrom(c), queryList(c, "product_ids"), c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
