package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/access"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/ledger"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/domain/sorting"
)

// Paginación por defecto de listados y reportes.
const (
	DefaultTake = 50
	MaxTake     = 1000
)

// NoTitle nombre mostrado para productos sin nombre.
const NoTitle = "No Title"

var (
	productMovementSortKeys = sorting.Keys{
		"movement_date", "movement_no", "movement_type", "branch_name",
		"product_no", "product_name", "quantity", "quantity_signed", "amount_incl_vat",
	}
	defaultProductMovementSort = sorting.Spec{{Key: "movement_date", Desc: true}, {Key: "movement_no", Desc: true}}

	stockReportSortKeys = sorting.Keys{
		"on_hand", "product_name", "product_no", "branch_name", "product_type",
		"last_updated", "buying_unit_price", "selling_unit_price", "product_id",
	}
	defaultStockSort = sorting.Spec{{Key: "on_hand", Desc: true}, {Key: "product_name"}, {Key: "product_id"}}

	productStockSortKeys = sorting.Keys{
		"on_hand", "product_name", "product_no", "product_type",
		"buying_unit_price", "selling_unit_price", "product_id",
	}
)

var stockReportComparators = map[string]sorting.Comparator[dto.StockReportDTO]{
	"on_hand":            func(a, b dto.StockReportDTO) int { return a.OnHand.Cmp(b.OnHand) },
	"product_name":       func(a, b dto.StockReportDTO) int { return strings.Compare(a.ProductName, b.ProductName) },
	"product_no":         func(a, b dto.StockReportDTO) int { return strings.Compare(a.ProductNo, b.ProductNo) },
	"branch_name":        func(a, b dto.StockReportDTO) int { return strings.Compare(a.BranchName, b.BranchName) },
	"product_type":       func(a, b dto.StockReportDTO) int { return strings.Compare(a.ProductTypeName, b.ProductTypeName) },
	"last_updated":       func(a, b dto.StockReportDTO) int { return a.LastUpdated.Compare(b.LastUpdated) },
	"buying_unit_price":  func(a, b dto.StockReportDTO) int { return a.BuyingUnitPrice.Cmp(b.BuyingUnitPrice) },
	"selling_unit_price": func(a, b dto.StockReportDTO) int { return a.SellingUnitPrice.Cmp(b.SellingUnitPrice) },
	"product_id":         func(a, b dto.StockReportDTO) int { return strings.Compare(a.ProductID, b.ProductID) },
}

var productStockComparators = map[string]sorting.Comparator[dto.ProductStockListItemDTO]{
	"on_hand":      func(a, b dto.ProductStockListItemDTO) int { return a.OnHand.Cmp(b.OnHand) },
	"product_name": func(a, b dto.ProductStockListItemDTO) int { return strings.Compare(a.ProductName, b.ProductName) },
	"product_no":   func(a, b dto.ProductStockListItemDTO) int { return strings.Compare(a.ProductNo, b.ProductNo) },
	"product_type": func(a, b dto.ProductStockListItemDTO) int {
		return strings.Compare(a.ProductTypeName, b.ProductTypeName)
	},
	"buying_unit_price": func(a, b dto.ProductStockListItemDTO) int {
		return a.BuyingUnitPrice.Cmp(b.BuyingUnitPrice)
	},
	"selling_unit_price": func(a, b dto.ProductStockListItemDTO) int {
		return a.SellingUnitPrice.Cmp(b.SellingUnitPrice)
	},
	"product_id": func(a, b dto.ProductStockListItemDTO) int { return strings.Compare(a.ProductID, b.ProductID) },
}

// ReportUseCase reportes de stock calculados sobre el libro de movimientos.
type ReportUseCase struct {
	queryRepo       repository.StockQueryRepository
	productRepo     repository.ProductRepository
	productTypeRepo repository.ProductTypeRepository
	exporter        StockReportExporter
	loc             *time.Location
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	queryRepo repository.StockQueryRepository,
	productRepo repository.ProductRepository,
	productTypeRepo repository.ProductTypeRepository,
	exporter StockReportExporter,
	loc *time.Location,
) *ReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportUseCase{
		queryRepo:       queryRepo,
		productRepo:     productRepo,
		productTypeRepo: productTypeRepo,
		exporter:        exporter,
		loc:             loc,
	}
}

// ProductMovements historial plano (cabecera × línea) de movimientos.
func (uc *ReportUseCase) ProductMovements(ctx context.Context, caller access.Caller, req dto.ProductMovementRequest) (*dto.PagedResult[dto.ProductMovementDTO], error) {
	branchID, err := access.ResolveOptionalBranch(caller, req.BranchID)
	if err != nil {
		return nil, err
	}
	t := entity.MovementType(req.MovementType)
	if t != "" && !t.Valid() {
		return nil, domain.ErrInvalidMovementType
	}
	sort, err := sorting.Parse(req.Sorting, productMovementSortKeys, defaultProductMovementSort)
	if err != nil {
		return nil, err
	}
	req.Normalize(DefaultTake, MaxTake)

	q := repository.ProductMovementQuery{
		Scope:            repository.LedgerScope{BranchID: branchID},
		ProductID:        req.ProductID,
		ProductTypeID:    req.ProductTypeID,
		Type:             t,
		IncludeCancelled: req.IncludeCancelled,
		Sort:             sort,
		Limit:            req.Take,
		Offset:           req.Skip,
	}
	q.Scope.Start, q.Scope.EndExclusive = openRange(req.DateFrom, req.DateTo, uc.loc)

	rows, total, err := uc.queryRepo.ProductMovements(ctx, q)
	if err != nil {
		return nil, err
	}
	out := &dto.PagedResult[dto.ProductMovementDTO]{TotalCount: total, Items: make([]dto.ProductMovementDTO, 0, len(rows))}
	for _, r := range rows {
		out.Items = append(out.Items, dto.ProductMovementDTO{
			HeaderID:        r.HeaderID,
			StockMovementNo: r.StockMovementNo,
			MovementType:    string(r.MovementType),
			MovementDate:    r.MovementDate,
			BranchID:        r.BranchID,
			BranchCode:      r.BranchCode,
			BranchName:      r.BranchName,
			ProductID:       r.ProductID,
			ProductNo:       r.ProductNo,
			ProductName:     r.ProductName,
			ProductTypeID:   r.ProductTypeID,
			ProductTypeName: r.ProductTypeName,
			UoM:             r.UoM,
			Quantity:        r.Quantity,
			QuantitySigned:  r.QuantitySigned,
			UnitPrice:       r.UnitPrice,
			DiscountAmount:  r.DiscountAmount,
			AmountExclVat:   r.AmountExclVat,
			AmountVat:       r.AmountVat,
			AmountInclVat:   r.AmountInclVat,
			IsCancelled:     r.IsCancelled,
			Description:     r.Description,
		})
	}
	return out, nil
}

// StockReport stock por (sucursal, producto), ordenado y paginado en memoria.
func (uc *ReportUseCase) StockReport(ctx context.Context, caller access.Caller, req dto.StockReportRequest) (*dto.PagedResult[dto.StockReportDTO], error) {
	rows, err := uc.stockRows(ctx, caller, req)
	if err != nil {
		return nil, err
	}
	req.Normalize(DefaultTake, MaxTake)
	return &dto.PagedResult[dto.StockReportDTO]{
		TotalCount: len(rows),
		Items:      paginate(rows, req.Take, req.Skip),
	}, nil
}

// StockReportXLSX exporta el reporte completo (sin paginar) a Excel.
func (uc *ReportUseCase) StockReportXLSX(ctx context.Context, caller access.Caller, req dto.StockReportRequest) ([]byte, error) {
	if uc.exporter == nil {
		return nil, fmt.Errorf("exportador de planillas no configurado")
	}
	rows, err := uc.stockRows(ctx, caller, req)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportStockReport(rows)
}

func (uc *ReportUseCase) stockRows(ctx context.Context, caller access.Caller, req dto.StockReportRequest) ([]dto.StockReportDTO, error) {
	branchID, err := access.ResolveOptionalBranch(caller, req.BranchID)
	if err != nil {
		return nil, err
	}
	sort, err := sorting.Parse(req.Sorting, stockReportSortKeys, defaultStockSort)
	if err != nil {
		return nil, err
	}
	q := repository.StockReportQuery{
		Scope:         repository.LedgerScope{BranchID: branchID},
		ProductID:     req.ProductID,
		ProductTypeID: req.ProductTypeID,
		Filter:        strings.TrimSpace(req.Filter),
		OnlyAvailable: req.OnlyAvailable,
	}
	if req.AsOf != nil {
		end := ledger.AsOf(*req.AsOf, uc.loc)
		q.Scope.EndExclusive = &end
	}
	raw, err := uc.queryRepo.StockReport(ctx, q)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.StockReportDTO, 0, len(raw))
	for _, r := range raw {
		name := r.ProductName
		if strings.TrimSpace(name) == "" {
			name = NoTitle
		}
		rows = append(rows, dto.StockReportDTO{
			BranchID:         r.BranchID,
			BranchCode:       r.BranchCode,
			BranchName:       r.BranchName,
			ProductID:        r.ProductID,
			ProductNo:        r.ProductNo,
			ProductName:      name,
			UoM:              r.UoM,
			BuyingUnitPrice:  r.BuyingUnitPrice,
			SellingUnitPrice: r.SellingUnitPrice,
			ImageURL:         r.ImageURL,
			ProductTypeID:    r.ProductTypeID,
			ProductTypeName:  r.ProductTypeName,
			LastUpdated:      r.LastUpdated,
			OnHand:           r.OnHand,
		})
	}
	sorting.SortStable(rows, sort, stockReportComparators)
	return rows, nil
}

// ProductStockList catálogo completo con el stock de la sucursal (0 sin movimientos).
// Un usuario con AllBranches debe indicar la sucursal.
func (uc *ReportUseCase) ProductStockList(ctx context.Context, caller access.Caller, req dto.ProductStockListRequest) (*dto.PagedResult[dto.ProductStockListItemDTO], error) {
	branchID, err := access.ResolveBranch(caller, req.BranchID)
	if err != nil {
		return nil, err
	}
	sort, err := sorting.Parse(req.Sorting, productStockSortKeys, defaultStockSort)
	if err != nil {
		return nil, err
	}
	req.Normalize(DefaultTake, MaxTake)

	products, _, err := uc.productRepo.List(ctx, repository.ProductFilter{
		Filter:        strings.TrimSpace(req.Filter),
		ProductTypeID: req.ProductTypeID,
	})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(products))
	typeIDs := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
		typeIDs = append(typeIDs, p.ProductTypeID)
	}
	onHand := map[string]decimal.Decimal{}
	if len(ids) > 0 {
		onHand, err = uc.queryRepo.OnHand(ctx, repository.LedgerScope{BranchID: branchID}, ids)
		if err != nil {
			return nil, err
		}
	}
	typeNames, err := uc.typeNames(ctx, typeIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductStockListItemDTO, 0, len(products))
	for _, p := range products {
		q := onHand[p.ID]
		if req.OnlyAvailable && !q.IsPositive() {
			continue
		}
		name := p.ProductName
		if strings.TrimSpace(name) == "" {
			name = NoTitle
		}
		items = append(items, dto.ProductStockListItemDTO{
			ProductID:        p.ID,
			ProductNo:        p.ProductNo,
			ProductName:      name,
			ProductDesc:      p.ProductDesc,
			ImageURL:         p.ImageURL,
			UoM:              p.UoM,
			BuyingUnitPrice:  p.BuyingUnitPrice,
			SellingUnitPrice: p.SellingUnitPrice,
			ProductTypeID:    p.ProductTypeID,
			ProductTypeName:  typeNames[p.ProductTypeID],
			OnHand:           q,
		})
	}
	sorting.SortStable(items, sort, productStockComparators)
	return &dto.PagedResult[dto.ProductStockListItemDTO]{
		TotalCount: len(items),
		Items:      paginate(items, req.Take, req.Skip),
	}, nil
}

func (uc *ReportUseCase) typeNames(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string)
	if len(ids) == 0 {
		return out, nil
	}
	types, err := uc.productTypeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range types {
		out[t.ID] = t.Type
	}
	return out, nil
}

// OnHandMap stock actual por producto. Todos los solicitados aparecen (0 sin movimientos).
// Con AllBranches y sin sucursal se agregan todas las sucursales.
func (uc *ReportUseCase) OnHandMap(ctx context.Context, caller access.Caller, productIDs []string, branchID string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	branchID, err := access.ResolveOptionalBranch(caller, branchID)
	if err != nil {
		return nil, err
	}
	onHand, err := uc.queryRepo.OnHand(ctx, repository.LedgerScope{BranchID: branchID}, productIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range productIDs {
		out[id] = onHand[id]
	}
	return out, nil
}

// OnHandList como OnHandMap pero en el orden solicitado, sin repetidos.
func (uc *ReportUseCase) OnHandList(ctx context.Context, caller access.Caller, productIDs []string, branchID string) ([]dto.OnHandItemDTO, error) {
	ids := uniqueIDs(productIDs)
	m, err := uc.OnHandMap(ctx, caller, ids, branchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OnHandItemDTO, 0, len(ids))
	for _, id := range ids {
		out = append(out, dto.OnHandItemDTO{ProductID: id, OnHand: m[id]})
	}
	return out, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// openRange convierte fechas opcionales en límites [desde, hasta+1día); nil no acota.
func openRange(from, to *time.Time, loc *time.Location) (start, endExclusive *time.Time) {
	if from != nil {
		s := ledger.DayStart(*from, loc)
		start = &s
	}
	if to != nil {
		e := ledger.AsOf(*to, loc)
		endExclusive = &e
	}
	return start, endExclusive
}

func paginate[T any](items []T, take, skip int) []T {
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if take > 0 && take < len(items) {
		items = items[:take]
	}
	return items
}
