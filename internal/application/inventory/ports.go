package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que cabecera y líneas se persistan juntas (o ninguna).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		queryRepo repository.StockQueryRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante PDF de un movimiento.
type ReceiptGenerator interface {
	GenerateMovementReceipt(h *entity.StockMovementHeader, branch *entity.Branch, products map[string]*entity.Product) ([]byte, error)
}

// StockReportExporter exporta el reporte de stock a una planilla.
type StockReportExporter interface {
	ExportStockReport(rows []dto.StockReportDTO) ([]byte, error)
}

// OversellPolicy define qué hacer cuando un egreso deja stock negativo.
type OversellPolicy string

const (
	// OversellAllow registra el egreso aunque el stock quede negativo.
	OversellAllow OversellPolicy = "allow"
	// OversellReject rechaza el egreso con domain.ErrInsufficientStock.
	OversellReject OversellPolicy = "reject"
)

// ParseOversellPolicy interpreta STOCK_OVERSELL_POLICY. Vacío = allow.
func ParseOversellPolicy(s string) (OversellPolicy, error) {
	switch OversellPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", OversellAllow:
		return OversellAllow, nil
	case OversellReject:
		return OversellReject, nil
	}
	return "", fmt.Errorf("política de sobreventa desconocida: %q", s)
}
