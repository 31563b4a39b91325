package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	loc *time.Location
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, loc *time.Location) *DashboardHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardHandler{uc: uc, loc: loc}
}

func (h *DashboardHandler) request(c *fiber.Ctx) (dto.DashboardRequest, error) {
	req := dto.DashboardRequest{BranchID: c.Query("branch_id")}
	var err error
	req.DateFrom, req.DateTo, err = queryDateRange(c, h.loc)
	return req, err
}

// Summary godoc
// @Summary      Resumen de ventas, ganancia y valorización
// @Description  Sin fechas toma el día de hoy en la zona horaria configurada.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Sucursal (vacío = todas)"
// @Param        date_from  query  string  false  "YYYY-MM-DD"
// @Param        date_to    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.StockDashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	req, err := h.request(c)
	if err != nil {
		return nil
	}
	out, err := h.uc.Summary(c.UserContext(), CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DailySales godoc
// @Summary      Ventas diarias
// @Description  Un punto por día del rango (por defecto los últimos 7 días).
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Sucursal"
// @Param        date_from  query  string  false  "YYYY-MM-DD"
// @Param        date_to    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.DailySalesPointDTO
// @Router       /api/dashboard/daily-sales [get]
func (h *DashboardHandler) DailySales(c *fiber.Ctx) error {
	req, err := h.request(c)
	if err != nil {
		return nil
	}
	out, err := h.uc.DailySales(c.UserContext(), CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockByProductType godoc
// @Summary      Stock agrupado por tipo de producto
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Sucursal"
// @Param        date_to    query  string  false  "Al cierre de YYYY-MM-DD"
// @Success      200  {array}  dto.StockByProductTypeDTO
// @Router       /api/dashboard/stock-by-product-type [get]
func (h *DashboardHandler) StockByProductType(c *fiber.Ctx) error {
	req, err := h.request(c)
	if err != nil {
		return nil
	}
	out, err := h.uc.StockByProductType(c.UserContext(), CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
