package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/access"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/ledger"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/domain/sorting"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// Claves de ordenamiento del listado de cabeceras.
var movementSortKeys = sorting.Keys{"movement_date", "movement_no", "movement_type", "amount_incl_vat"}

var defaultMovementSort = sorting.Spec{{Key: "movement_date", Desc: true}}

// MovementUseCase registra y consulta movimientos del libro de stock.
// Cada escritura persiste cabecera y líneas en una sola transacción (TxRunner).
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
	branchRepo   repository.BranchRepository
	productRepo  repository.ProductRepository
	receipts     ReceiptGenerator
	policy       OversellPolicy
	loc          *time.Location
	log          *logger.Logger
	now          func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	movementRepo repository.StockMovementRepository,
	branchRepo repository.BranchRepository,
	productRepo repository.ProductRepository,
	receipts ReceiptGenerator,
	policy OversellPolicy,
	loc *time.Location,
	log *logger.Logger,
) *MovementUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if policy == "" {
		policy = OversellAllow
	}
	return &MovementUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		branchRepo:   branchRepo,
		productRepo:  productRepo,
		receipts:     receipts,
		policy:       policy,
		loc:          loc,
		log:          log,
		now:          time.Now,
	}
}

// WithClock reemplaza el reloj usado para fechar movimientos.
func (uc *MovementUseCase) WithClock(now func() time.Time) *MovementUseCase {
	uc.now = now
	return uc
}

// Create registra un movimiento de cualquier tipo.
func (uc *MovementUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error) {
	t := entity.MovementType(in.MovementType)
	if !t.Valid() {
		return nil, domain.ErrInvalidMovementType
	}
	return uc.record(ctx, caller, t, in, false)
}

// AddStock registra una compra; el tipo indicado se ignora.
func (uc *MovementUseCase) AddStock(ctx context.Context, caller access.Caller, in dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error) {
	return uc.record(ctx, caller, entity.MovementPurchase, in, false)
}

// CheckoutCart registra una venta de caja. Ningún descuento puede dejar la
// línea por debajo del costo de compra (ledger.MaxCartDiscount).
func (uc *MovementUseCase) CheckoutCart(ctx context.Context, caller access.Caller, in dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error) {
	return uc.record(ctx, caller, entity.MovementSale, in, true)
}

// AdjustStock registra un ajuste; solo admite AdjustmentPlus y AdjustmentMinus.
func (uc *MovementUseCase) AdjustStock(ctx context.Context, caller access.Caller, in dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error) {
	t := entity.MovementType(in.MovementType)
	if !t.IsAdjustment() {
		return nil, domain.ErrInvalidAdjustmentType
	}
	return uc.record(ctx, caller, t, in, false)
}

func (uc *MovementUseCase) record(ctx context.Context, caller access.Caller, t entity.MovementType, in dto.CreateStockMovementRequest, cart bool) (*dto.StockMovementResponse, error) {
	if !caller.Has(entity.PermStockMovementsCreate) {
		return nil, domain.ErrForbidden
	}
	h, err := uc.prepare(ctx, caller, t, in, cart)
	if err != nil {
		return nil, err
	}
	h.ID = uuid.New().String()
	h.CreatedAt = uc.now()
	h.CreatedBy = caller.UserID
	h.UpdatedAt = h.CreatedAt
	h.UpdatedBy = caller.UserID
	for i := range h.Details {
		h.Details[i].ID = uuid.New().String()
		h.Details[i].HeaderID = h.ID
		h.Details[i].CreatedAt = h.CreatedAt
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, queryRepo repository.StockQueryRepository) error {
		if err := uc.ensureStock(ctx, movRepo, queryRepo, h, nil); err != nil {
			return err
		}
		seq, err := movRepo.NextSeq(ctx)
		if err != nil {
			return err
		}
		h.Seq = seq
		h.StockMovementNo = entity.FormatMovementNo(seq)
		return movRepo.Create(ctx, h)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("movement_id", h.ID).
		Str("movement_no", h.StockMovementNo).
		Str("type", string(h.MovementType)).
		Str("branch_id", h.BranchID).
		Str("user_id", caller.UserID).
		Str("amount_incl_vat", h.AmountInclVat.StringFixed(2)).
		Msg("movimiento registrado")
	return toMovementResponse(h, true), nil
}

// prepare valida las líneas, resuelve la sucursal y calcula importes.
// Devuelve una cabecera sin identificadores ni auditoría.
func (uc *MovementUseCase) prepare(ctx context.Context, caller access.Caller, t entity.MovementType, in dto.CreateStockMovementRequest, cart bool) (*entity.StockMovementHeader, error) {
	inputs := make([]ledger.LineInput, len(in.Details))
	for i, d := range in.Details {
		inputs[i] = ledger.LineInput{
			Quantity:  d.Quantity,
			UnitPrice: decimalOrZero(d.UnitPrice),
			Discount:  decimalOrZero(d.DiscountAmount),
		}
	}
	if err := ledger.ValidateLines(inputs); err != nil {
		return nil, err
	}
	branchID, err := access.ResolveBranch(caller, in.BranchID)
	if err != nil {
		return nil, err
	}
	branch, err := uc.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	ids := make([]string, 0, len(in.Details))
	for _, d := range in.Details {
		ids = append(ids, d.ProductID)
	}
	products, err := uc.loadProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	rate := ledger.VATRate(t, branch.VatPerc)
	h := &entity.StockMovementHeader{
		MovementType:        t,
		BranchID:            branch.ID,
		BusinessPartnerName: in.BusinessPartnerName,
		Description:         in.Description,
		Details:             make([]entity.StockMovementDetail, 0, len(in.Details)),
	}
	amounts := make([]ledger.LineAmounts, 0, len(in.Details))
	for i, d := range in.Details {
		p := products[d.ProductID]
		if cart {
			// sin precio se vende al precio de lista
			if d.UnitPrice == nil {
				inputs[i].UnitPrice = p.SellingUnitPrice
			}
			limit := ledger.MaxCartDiscount(inputs[i].Quantity, inputs[i].UnitPrice, p.BuyingUnitPrice)
			if inputs[i].Discount.GreaterThan(limit) {
				return nil, fmt.Errorf("%w: producto %s", domain.ErrDiscountBelowCost, p.ProductNo)
			}
		}
		uom := d.UoM
		if uom == "" {
			uom = p.UoM
		}
		a := ledger.ComputeLine(inputs[i], rate)
		amounts = append(amounts, a)
		h.Details = append(h.Details, entity.StockMovementDetail{
			ProductID:      p.ID,
			UoM:            uom,
			Quantity:       inputs[i].Quantity,
			UnitPrice:      inputs[i].UnitPrice,
			DiscountAmount: inputs[i].Discount,
			AmountExclVat:  a.ExclVat,
			AmountVat:      a.Vat,
			AmountInclVat:  a.InclVat,
		})
	}
	totals := ledger.SumTotals(amounts)
	h.AmountExclVat = totals.ExclVat
	h.AmountVat = totals.Vat
	h.AmountInclVat = totals.InclVat
	return h, nil
}

// loadProducts devuelve los productos por id; ErrProductNotFound si falta alguno.
func (uc *MovementUseCase) loadProducts(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	list, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
		}
	}
	return byID, nil
}

// ensureStock aplica la política de sobreventa. Con reject bloquea la sucursal
// y verifica que ningún producto cuyo stock baja quede negativo. prior es la
// versión anterior de la cabecera en una edición; su efecto se descuenta.
func (uc *MovementUseCase) ensureStock(
	ctx context.Context,
	movRepo repository.StockMovementRepository,
	queryRepo repository.StockQueryRepository,
	h *entity.StockMovementHeader,
	prior *entity.StockMovementHeader,
) error {
	if uc.policy != OversellReject {
		return nil
	}
	delta := make(map[string]decimal.Decimal)
	for _, d := range h.Details {
		delta[d.ProductID] = delta[d.ProductID].Add(ledger.SignedQuantity(h.MovementType, d.Quantity))
	}
	if prior != nil && prior.BranchID == h.BranchID && !prior.IsCancelled {
		for _, d := range prior.Details {
			delta[d.ProductID] = delta[d.ProductID].Sub(ledger.SignedQuantity(prior.MovementType, d.Quantity))
		}
	}
	var decreasing []string
	for id, q := range delta {
		if q.IsNegative() {
			decreasing = append(decreasing, id)
		}
	}
	if len(decreasing) == 0 {
		return nil
	}
	if err := movRepo.LockBranch(ctx, h.BranchID); err != nil {
		return err
	}
	onHand, err := queryRepo.OnHand(ctx, repository.LedgerScope{BranchID: h.BranchID}, decreasing)
	if err != nil {
		return err
	}
	for _, id := range decreasing {
		if onHand[id].Add(delta[id]).IsNegative() {
			uc.log.Warn().
				Str("branch_id", h.BranchID).
				Str("product_id", id).
				Str("on_hand", onHand[id].String()).
				Str("requested", delta[id].Neg().String()).
				Msg("egreso rechazado por stock insuficiente")
			return fmt.Errorf("%w: producto %s", domain.ErrInsufficientStock, id)
		}
	}
	return nil
}

// Get devuelve un movimiento con sus líneas.
func (uc *MovementUseCase) Get(ctx context.Context, caller access.Caller, id string) (*dto.StockMovementResponse, error) {
	h, err := uc.load(ctx, uc.movementRepo, caller, id)
	if err != nil {
		return nil, err
	}
	return toMovementResponse(h, true), nil
}

func (uc *MovementUseCase) load(ctx context.Context, repo repository.StockMovementRepository, caller access.Caller, id string) (*entity.StockMovementHeader, error) {
	h, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, domain.ErrNotFound
	}
	if err := access.CheckBranch(caller, h.BranchID); err != nil {
		return nil, err
	}
	return h, nil
}

// List devuelve cabeceras paginadas. Sin AllBranches se fuerza la sucursal del usuario.
func (uc *MovementUseCase) List(ctx context.Context, caller access.Caller, req dto.StockMovementListRequest) (*dto.PagedResult[dto.StockMovementResponse], error) {
	branchID, err := access.ResolveOptionalBranch(caller, req.BranchID)
	if err != nil {
		return nil, err
	}
	t := entity.MovementType(req.MovementType)
	if t != "" && !t.Valid() {
		return nil, domain.ErrInvalidMovementType
	}
	sort, err := sorting.Parse(req.Sorting, movementSortKeys, defaultMovementSort)
	if err != nil {
		return nil, err
	}
	req.Normalize(DefaultTake, MaxTake)

	f := repository.MovementFilter{
		BranchID:         branchID,
		Type:             t,
		IncludeCancelled: req.IncludeCancelled,
		Sort:             sort,
		Limit:            req.Take,
		Offset:           req.Skip,
	}
	f.Start, f.EndExclusive = openRange(req.DateFrom, req.DateTo, uc.loc)

	headers, total, err := uc.movementRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.PagedResult[dto.StockMovementResponse]{
		TotalCount: total,
		Items:      make([]dto.StockMovementResponse, 0, len(headers)),
	}
	for _, h := range headers {
		out.Items = append(out.Items, *toMovementResponse(h, false))
	}
	return out, nil
}

// Update reemplaza un movimiento no anulado: cabecera, líneas e importes.
func (uc *MovementUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error) {
	if !caller.Has(entity.PermStockMovementsEdit) {
		return nil, domain.ErrForbidden
	}
	existing, err := uc.load(ctx, uc.movementRepo, caller, id)
	if err != nil {
		return nil, err
	}
	if existing.IsCancelled {
		return nil, domain.ErrMovementCancelled
	}
	t := existing.MovementType
	if in.MovementType != "" {
		t = entity.MovementType(in.MovementType)
		if !t.Valid() {
			return nil, domain.ErrInvalidMovementType
		}
	}
	h, err := uc.prepare(ctx, caller, t, in, false)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, queryRepo repository.StockQueryRepository) error {
		// relectura dentro de la tx: pudo anularse entre tanto
		current, err := uc.load(ctx, movRepo, caller, id)
		if err != nil {
			return err
		}
		if current.IsCancelled {
			return domain.ErrMovementCancelled
		}
		h.ID = current.ID
		h.Seq = current.Seq
		h.StockMovementNo = current.StockMovementNo
		h.CreatedAt = current.CreatedAt
		h.CreatedBy = current.CreatedBy
		h.UpdatedAt = uc.now()
		h.UpdatedBy = caller.UserID
		for i := range h.Details {
			h.Details[i].ID = uuid.New().String()
			h.Details[i].HeaderID = h.ID
			h.Details[i].CreatedAt = h.UpdatedAt
		}
		if err := uc.ensureStock(ctx, movRepo, queryRepo, h, current); err != nil {
			return err
		}
		return movRepo.Update(ctx, h)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("movement_id", h.ID).
		Str("movement_no", h.StockMovementNo).
		Str("user_id", caller.UserID).
		Msg("movimiento actualizado")
	return toMovementResponse(h, true), nil
}

// Cancel anula un movimiento. Es idempotente: si ya estaba anulado lo devuelve sin cambios.
// Cantidades e importes no se modifican; la anulación solo lo excluye de las agregaciones.
func (uc *MovementUseCase) Cancel(ctx context.Context, caller access.Caller, id, reason string) (*dto.StockMovementResponse, error) {
	if !caller.Has(entity.PermStockMovementsDelete) {
		return nil, domain.ErrForbidden
	}
	var (
		h       *entity.StockMovementHeader
		changed bool
	)
	err := uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, _ repository.StockQueryRepository) error {
		var err error
		h, err = uc.load(ctx, movRepo, caller, id)
		if err != nil {
			return err
		}
		changed = h.Cancel(reason, caller.UserID, uc.now())
		if !changed {
			return nil
		}
		return movRepo.SetCancelled(ctx, h)
	})
	if err != nil {
		return nil, err
	}
	if changed {
		uc.log.Info().
			Str("movement_id", h.ID).
			Str("movement_no", h.StockMovementNo).
			Str("user_id", caller.UserID).
			Str("reason", reason).
			Msg("movimiento anulado")
	}
	return toMovementResponse(h, true), nil
}

// PhysicalInventory registra un conteo físico: las diferencias positivas generan
// un AdjustmentPlus y las negativas un AdjustmentMinus, ambos en la misma transacción.
// El stock actual se lee dentro de la transacción con la sucursal bloqueada.
func (uc *MovementUseCase) PhysicalInventory(ctx context.Context, caller access.Caller, in dto.PhysicalInventoryRequest) (*dto.PhysicalInventoryResponse, error) {
	if !caller.Has(entity.PermStockMovementsPhysicalInventory) {
		return nil, domain.ErrForbidden
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrNoLines
	}
	ids := make([]string, 0, len(in.Lines))
	seen := make(map[string]bool, len(in.Lines))
	for _, l := range in.Lines {
		if seen[l.ProductID] {
			return nil, fmt.Errorf("%w: producto %s repetido", domain.ErrInvalidInput, l.ProductID)
		}
		seen[l.ProductID] = true
		if l.CountedQuantity.IsNegative() {
			return nil, domain.ErrQuantityNotPositive
		}
		if l.UnitPrice != nil && l.UnitPrice.IsNegative() {
			return nil, domain.ErrPriceInvalid
		}
		ids = append(ids, l.ProductID)
	}
	branchID, err := access.ResolveBranch(caller, in.BranchID)
	if err != nil {
		return nil, err
	}
	branch, err := uc.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	products, err := uc.loadProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var plus, minus *entity.StockMovementHeader
	err = uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, queryRepo repository.StockQueryRepository) error {
		if err := movRepo.LockBranch(ctx, branch.ID); err != nil {
			return err
		}
		onHand, err := queryRepo.OnHand(ctx, repository.LedgerScope{BranchID: branch.ID}, ids)
		if err != nil {
			return err
		}
		plus = newCountHeader(entity.MovementAdjustmentPlus, branch.ID, in.Description, caller.UserID, now)
		minus = newCountHeader(entity.MovementAdjustmentMinus, branch.ID, in.Description, caller.UserID, now)
		for _, l := range in.Lines {
			variance := l.CountedQuantity.Sub(onHand[l.ProductID])
			if variance.IsZero() {
				continue
			}
			p := products[l.ProductID]
			price := p.BuyingUnitPrice
			if l.UnitPrice != nil {
				price = *l.UnitPrice
			}
			target := plus
			if variance.IsNegative() {
				target = minus
			}
			appendCountLine(target, p, variance.Abs(), price)
		}
		for _, h := range []*entity.StockMovementHeader{plus, minus} {
			if len(h.Details) == 0 {
				continue
			}
			seq, err := movRepo.NextSeq(ctx)
			if err != nil {
				return err
			}
			h.Seq = seq
			h.StockMovementNo = entity.FormatMovementNo(seq)
			if err := movRepo.Create(ctx, h); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &dto.PhysicalInventoryResponse{}
	if len(plus.Details) > 0 {
		out.Plus = toMovementResponse(plus, true)
	}
	if len(minus.Details) > 0 {
		out.Minus = toMovementResponse(minus, true)
	}
	uc.log.Info().
		Str("branch_id", branch.ID).
		Str("user_id", caller.UserID).
		Int("plus_lines", len(plus.Details)).
		Int("minus_lines", len(minus.Details)).
		Msg("inventario físico registrado")
	return out, nil
}

func newCountHeader(t entity.MovementType, branchID, description, userID string, now time.Time) *entity.StockMovementHeader {
	return &entity.StockMovementHeader{
		ID:           uuid.New().String(),
		MovementType: t,
		BranchID:     branchID,
		Description:  description,
		CreatedAt:    now,
		CreatedBy:    userID,
		UpdatedAt:    now,
		UpdatedBy:    userID,
	}
}

// appendCountLine agrega una línea de ajuste (IVA 0) y recalcula los totales.
func appendCountLine(h *entity.StockMovementHeader, p *entity.Product, qty, price decimal.Decimal) {
	a := ledger.ComputeLine(ledger.LineInput{Quantity: qty, UnitPrice: price}, ledger.VATRate(h.MovementType, decimal.Zero))
	h.Details = append(h.Details, entity.StockMovementDetail{
		ID:            uuid.New().String(),
		HeaderID:      h.ID,
		ProductID:     p.ID,
		UoM:           p.UoM,
		Quantity:      qty,
		UnitPrice:     price,
		AmountExclVat: a.ExclVat,
		AmountVat:     a.Vat,
		AmountInclVat: a.InclVat,
		CreatedAt:     h.CreatedAt,
	})
	amounts := make([]ledger.LineAmounts, len(h.Details))
	for i, d := range h.Details {
		amounts[i] = ledger.LineAmounts{ExclVat: d.AmountExclVat, Vat: d.AmountVat, InclVat: d.AmountInclVat}
	}
	t := ledger.SumTotals(amounts)
	h.AmountExclVat, h.AmountVat, h.AmountInclVat = t.ExclVat, t.Vat, t.InclVat
}

// Receipt genera el comprobante PDF del movimiento. Devuelve el contenido y el nombre sugerido.
func (uc *MovementUseCase) Receipt(ctx context.Context, caller access.Caller, id string) ([]byte, string, error) {
	if uc.receipts == nil {
		return nil, "", fmt.Errorf("generador de comprobantes no configurado")
	}
	h, err := uc.load(ctx, uc.movementRepo, caller, id)
	if err != nil {
		return nil, "", err
	}
	branch, err := uc.branchRepo.GetByID(ctx, h.BranchID)
	if err != nil {
		return nil, "", err
	}
	if branch == nil {
		return nil, "", domain.ErrNotFound
	}
	ids := make([]string, 0, len(h.Details))
	for _, d := range h.Details {
		ids = append(ids, d.ProductID)
	}
	products, err := uc.loadProducts(ctx, ids)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.receipts.GenerateMovementReceipt(h, branch, products)
	if err != nil {
		return nil, "", fmt.Errorf("generar comprobante: %w", err)
	}
	return pdf, h.StockMovementNo + ".pdf", nil
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func toMovementResponse(h *entity.StockMovementHeader, withDetails bool) *dto.StockMovementResponse {
	out := &dto.StockMovementResponse{
		ID:                  h.ID,
		StockMovementNo:     h.StockMovementNo,
		MovementType:        string(h.MovementType),
		BranchID:            h.BranchID,
		BusinessPartnerName: h.BusinessPartnerName,
		Description:         h.Description,
		AmountExclVat:       h.AmountExclVat,
		AmountVat:           h.AmountVat,
		AmountInclVat:       h.AmountInclVat,
		IsCancelled:         h.IsCancelled,
		MovementDate:        h.CreatedAt,
		CreatedBy:           h.CreatedBy,
		UpdatedAt:           h.UpdatedAt,
	}
	if !withDetails {
		return out
	}
	out.Details = make([]dto.StockMovementLineResponse, 0, len(h.Details))
	for _, d := range h.Details {
		out.Details = append(out.Details, dto.StockMovementLineResponse{
			ID:             d.ID,
			ProductID:      d.ProductID,
			UoM:            d.UoM,
			Quantity:       d.Quantity,
			UnitPrice:      d.UnitPrice,
			DiscountAmount: d.DiscountAmount,
			AmountExclVat:  d.AmountExclVat,
			AmountVat:      d.AmountVat,
			AmountInclVat:  d.AmountInclVat,
		})
	}
	return out
}
