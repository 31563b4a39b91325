package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/inventory"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/access"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: dos sucursales, dos productos, store en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	branchA  = "branch-a"
	branchB  = "branch-b"
	product1 = "prod-1"
	product2 = "prod-2"
	ptypeID  = "ptype-1"
)

type fixture struct {
	store    *memory.Store
	movement *inventory.MovementUseCase
	report   *inventory.ReportUseCase
	admin    access.Caller
	seller   access.Caller
	clerk    access.Caller
	clock    time.Time
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func newFixture(t *testing.T, policy inventory.OversellPolicy) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	branches := memory.NewBranchRepository(store)
	types := memory.NewProductTypeRepository(store)
	products := memory.NewProductRepository(store)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, branches.Create(ctx, &entity.Branch{ID: branchA, Code: "A01", Name: "Centro", VatPerc: d("15"), IsActive: true}))
	require.NoError(t, branches.Create(ctx, &entity.Branch{ID: branchB, Code: "B01", Name: "Norte", VatPerc: d("19"), IsActive: true}))
	require.NoError(t, types.Create(ctx, &entity.ProductType{ID: ptypeID, Type: "Bebidas"}))
	require.NoError(t, products.Create(ctx, &entity.Product{
		ID: product1, ProductNo: "P-1", ProductName: "Agua", UoM: entity.UoMBottle,
		BuyingUnitPrice: d("60"), SellingUnitPrice: d("100"), ProductTypeID: ptypeID,
	}))
	require.NoError(t, products.Create(ctx, &entity.Product{
		ID: product2, ProductNo: "P-2", ProductName: "", UoM: entity.UoMPiece,
		BuyingUnitPrice: d("5"), SellingUnitPrice: d("8"), ProductTypeID: ptypeID,
	}))

	log := logger.Nop()
	f := &fixture{
		store:  store,
		admin:  access.NewCaller("u-admin", entity.RoleAdmin, ""),
		seller: access.NewCaller("u-seller", entity.RoleVendedor, branchA),
		clerk:  access.NewCaller("u-clerk", entity.RoleBodeguero, branchA),
		clock:  now,
	}
	f.movement = inventory.NewMovementUseCase(
		memory.NewTxRunner(store),
		memory.NewStockMovementRepository(store),
		branches,
		products,
		nil,
		policy,
		time.UTC,
		log,
	).WithClock(func() time.Time { return f.clock })
	f.report = inventory.NewReportUseCase(memory.NewStockQueryRepository(store), products, types, nil, time.UTC)
	return f
}

func line(productID, qty, price string) dto.StockMovementLineRequest {
	return dto.StockMovementLineRequest{ProductID: productID, Quantity: d(qty), UnitPrice: dp(price)}
}

func (f *fixture) purchase(t *testing.T, branch, productID, qty, price string) *dto.StockMovementResponse {
	t.Helper()
	out, err := f.movement.AddStock(context.Background(), f.admin, dto.CreateStockMovementRequest{
		BranchID: branch,
		Details:  []dto.StockMovementLineRequest{line(productID, qty, price)},
	})
	require.NoError(t, err)
	return out
}

func (f *fixture) onHand(t *testing.T, branch, productID string) decimal.Decimal {
	t.Helper()
	m, err := f.report.OnHandMap(context.Background(), f.admin, []string{productID}, branch)
	require.NoError(t, err)
	return m[productID]
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckoutCart_CalculaIVAyNumera(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)

	out, err := f.movement.CheckoutCart(context.Background(), f.seller, dto.CreateStockMovementRequest{
		Details: []dto.StockMovementLineRequest{line(product1, "3", "100")},
	})
	require.NoError(t, err)

	assert.Equal(t, "GM-1", out.StockMovementNo)
	assert.Equal(t, string(entity.MovementSale), out.MovementType)
	assert.Equal(t, branchA, out.BranchID)
	assert.Equal(t, "300.00", out.AmountExclVat.StringFixed(2))
	assert.Equal(t, "45.00", out.AmountVat.StringFixed(2))
	assert.Equal(t, "345.00", out.AmountInclVat.StringFixed(2))
	require.Len(t, out.Details, 1)
	assert.Equal(t, entity.UoMBottle, out.Details[0].UoM, "la unidad toma la del producto")
}

func TestCheckoutCart_SinPrecioUsaPrecioDeVenta(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	ctx := context.Background()

	out, err := f.movement.CheckoutCart(ctx, f.seller, dto.CreateStockMovementRequest{
		Details: []dto.StockMovementLineRequest{{ProductID: product1, Quantity: d("2")}},
	})
	require.NoError(t, err)
	require.Len(t, out.Details, 1)
	assert.Equal(t, "100.00", out.Details[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "200.00", out.AmountExclVat.StringFixed(2))
	assert.Equal(t, "230.00", out.AmountInclVat.StringFixed(2))

	// el tope de descuento también se mide contra el precio de lista
	_, err = f.movement.CheckoutCart(ctx, f.seller, dto.CreateStockMovementRequest{
		Details: []dto.StockMovementLineRequest{{ProductID: product1, Quantity: d("2"), DiscountAmount: dp("80.01")}},
	})
	assert.ErrorIs(t, err, domain.ErrDiscountBelowCost)
}

func TestAddStock_IgnoraTipoYNumeraConsecutivo(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)

	first := f.purchase(t, branchA, product1, "10", "5")
	second, err := f.movement.AddStock(context.Background(), f.admin, dto.CreateStockMovementRequest{
		MovementType: string(entity.MovementSale),
		BranchID:     branchA,
		Details:      []dto.StockMovementLineRequest{line(product1, "1", "5")},
	})
	require.NoError(t, err)

	assert.Equal(t, "GM-1", first.StockMovementNo)
	assert.Equal(t, "GM-2", second.StockMovementNo)
	assert.Equal(t, string(entity.MovementPurchase), second.MovementType)
	assert.True(t, f.onHand(t, branchA, product1).Equal(d("11")))
}

func TestAdjustStock_SinIVA(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)

	out, err := f.movement.AdjustStock(context.Background(), f.clerk, dto.CreateStockMovementRequest{
		MovementType: string(entity.MovementAdjustmentPlus),
		Details:      []dto.StockMovementLineRequest{line(product1, "5", "10")},
	})
	require.NoError(t, err)
	assert.Equal(t, "0.00", out.AmountVat.StringFixed(2))
	assert.Equal(t, "50.00", out.AmountInclVat.StringFixed(2))
}

func TestAdjustStock_TipoInvalido(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)

	_, err := f.movement.AdjustStock(context.Background(), f.clerk, dto.CreateStockMovementRequest{
		MovementType: string(entity.MovementSale),
		Details:      []dto.StockMovementLineRequest{line(product1, "1", "10")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAdjustmentType)
}

func TestCreate_ValidacionDeLineas(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	ctx := context.Background()

	base := dto.CreateStockMovementRequest{MovementType: string(entity.MovementPurchase), BranchID: branchA}

	_, err := f.movement.Create(ctx, f.admin, base)
	assert.ErrorIs(t, err, domain.ErrNoLines)

	in := base
	in.Details = []dto.StockMovementLineRequest{line(product1, "0", "1")}
	_, err = f.movement.Create(ctx, f.admin, in)
	assert.ErrorIs(t, err, domain.ErrQuantityNotPositive)

	in.Details = []dto.StockMovementLineRequest{line(product1, "1", "-1")}
	_, err = f.movement.Create(ctx, f.admin, in)
	assert.ErrorIs(t, err, domain.ErrPriceInvalid)

	in.Details = []dto.StockMovementLineRequest{{ProductID: product1, Quantity: d("1"), DiscountAmount: dp("-2")}}
	_, err = f.movement.Create(ctx, f.admin, in)
	assert.ErrorIs(t, err, domain.ErrDiscountInvalid)

	in.Details = []dto.StockMovementLineRequest{line("no-existe", "1", "1")}
	_, err = f.movement.Create(ctx, f.admin, in)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	in.MovementType = "Transfer"
	_, err = f.movement.Create(ctx, f.admin, in)
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
}

func TestCreate_ResolucionDeSucursal(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	ctx := context.Background()
	in := dto.CreateStockMovementRequest{
		MovementType: string(entity.MovementPurchase),
		BranchID:     branchB,
		Details:      []dto.StockMovementLineRequest{line(product1, "1", "1")},
	}

	// el vendedor siempre registra en su sucursal
	out, err := f.movement.Create(ctx, f.seller, in)
	require.NoError(t, err)
	assert.Equal(t, branchA, out.BranchID)

	// admin sin sucursal indicada
	in.BranchID = ""
	_, err = f.movement.Create(ctx, f.admin, in)
	assert.ErrorIs(t, err, domain.ErrBranchRequired)

	// usuario sin sucursal asignada
	orphan := access.NewCaller("u-x", entity.RoleVendedor, "")
	_, err = f.movement.Create(ctx, orphan, in)
	assert.ErrorIs(t, err, domain.ErrNoBranchAssigned)

	// sucursal inexistente
	in.BranchID = "no-existe"
	_, err = f.movement.Create(ctx, f.admin, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckoutCart_DescuentoBajoCosto(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	ctx := context.Background()

	// 2 × (100 − 60) = 80 de margen máximo
	ok := dto.StockMovementLineRequest{ProductID: product1, Quantity: d("2"), UnitPrice: dp("100"), DiscountAmount: dp("80")}
	_, err := f.movement.CheckoutCart(ctx, f.seller, dto.CreateStockMovementRequest{Details: []dto.StockMovementLineRequest{ok}})
	require.NoError(t, err)

	tooMuch := ok
	tooMuch.DiscountAmount = dp("80.01")
	_, err = f.movement.CheckoutCart(ctx, f.seller, dto.CreateStockMovementRequest{Details: []dto.StockMovementLineRequest{tooMuch}})
	assert.ErrorIs(t, err, domain.ErrDiscountBelowCost)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta, edición y anulación
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_OtraSucursalYNoExiste(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	ctx := context.Background()
	other := f.purchase(t, branchB, product1, "1", "1")

	_, err := f.movement.Get(ctx, f.seller, other.ID)
	assert.ErrorIs(t, err, domain.ErrCrossBranch)

	_, err = f.movement.Get(ctx, f.seller, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.movement.Get(ctx, f.admin, other.ID)
	require.NoError(t, err)
	assert.Equal(t, other.StockMovementNo, got.StockMovementNo)
	assert.Len(t, got.Details, 1)
}

func TestCancel_IdempotenteYExcluyeDelStock(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	ctx := context.Background()
	mov := f.purchase(t, branchA, product1, "10", "5")
	require.True(t, f.onHand(t, branchA, product1).Equal(d("10")))

	first, err := f.movement.Cancel(ctx, f.admin, mov.ID, "error de carga")
	require.NoError(t, err)
	assert.True(t, first.IsCancelled)
	assert.Equal(t, "[CANCELLED] error de carga", first.Description)
	assert.True(t, first.AmountInclVat.Equal(mov.AmountInclVat), "los importes no cambian")

	second, err := f.movement.Cancel(ctx, f.admin, mov.ID, "otra vez")
	require.NoError(t, err)
	assert.Equal(t, first.Description, second.Description)

	assert.True(t, f.onHand(t, branchA, product1).IsZero())
}

func TestCancel_ConcatenaDescripcion(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	ctx := context.Background()
	mov, err := f.movement.AddStock(ctx, f.admin, dto.CreateStockMovementRequest{
		BranchID:    branchA,
		Description: "compra semanal",
		Details:     []dto.StockMovementLineRequest{line(product1, "1", "1")},
	})
	require.NoError(t, err)

	out, err := f.movement.Cancel(ctx, f.admin, mov.ID, "duplicado")
	require.NoError(t, err)
	assert.Equal(t, "compra semanal | [CANCELLED] duplicado", out.Description)
}

func TestCancel_SinPermiso(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	mov := f.purchase(t, branchA, product1, "1", "1")

	_, err := f.movement.Cancel(context.Background(), f.seller, mov.ID, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdate_ReemplazaLineasYRecalcula(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	ctx := context.Background()
	mov := f.purchase(t, branchA, product1, "10", "5")

	f.clock = f.clock.Add(time.Hour)
	out, err := f.movement.Update(ctx, f.clerk, mov.ID, dto.CreateStockMovementRequest{
		Details: []dto.StockMovementLineRequest{line(product1, "4", "5"), line(product2, "2", "5")},
	})
	require.NoError(t, err)

	assert.Equal(t, mov.StockMovementNo, out.StockMovementNo)
	assert.Equal(t, string(entity.MovementPurchase), out.MovementType)
	assert.Len(t, out.Details, 2)
	// 30 neto + 15% IVA
	assert.Equal(t, "30.00", out.AmountExclVat.StringFixed(2))
	assert.Equal(t, "34.50", out.AmountInclVat.StringFixed(2))
	assert.True(t, out.MovementDate.Equal(mov.MovementDate), "la fecha del movimiento no cambia")
	assert.True(t, f.onHand(t, branchA, product1).Equal(d("4")))
	assert.True(t, f.onHand(t, branchA, product2).Equal(d("2")))
}

func TestUpdate_AnuladoYOtraSucursal(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	ctx := context.Background()
	in := dto.CreateStockMovementRequest{Details: []dto.StockMovementLineRequest{line(product1, "1", "1")}}

	other := f.purchase(t, branchB, product1, "1", "1")
	_, err := f.movement.Update(ctx, f.clerk, other.ID, in)
	assert.ErrorIs(t, err, domain.ErrCrossBranch)

	mine := f.purchase(t, branchA, product1, "1", "1")
	_, err = f.movement.Cancel(ctx, f.admin, mine.ID, "")
	require.NoError(t, err)
	_, err = f.movement.Update(ctx, f.clerk, mine.ID, in)
	assert.ErrorIs(t, err, domain.ErrMovementCancelled)

	_, err = f.movement.Update(ctx, f.clerk, "no-existe", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltraPorSucursalYOrdena(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	ctx := context.Background()
	f.purchase(t, branchA, product1, "1", "10")
	f.clock = f.clock.Add(time.Minute)
	f.purchase(t, branchA, product1, "1", "30")
	f.clock = f.clock.Add(time.Minute)
	f.purchase(t, branchB, product1, "1", "20")

	mine, err := f.movement.List(ctx, f.seller, dto.StockMovementListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, mine.TotalCount)
	assert.Equal(t, "GM-2", mine.Items[0].StockMovementNo, "por defecto más reciente primero")

	all, err := f.movement.List(ctx, f.admin, dto.StockMovementListRequest{
		PagedSortedRequest: dto.PagedSortedRequest{Sorting: "amount_incl_vat ASC", Take: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalCount)
	require.Len(t, all.Items, 2)
	assert.Equal(t, "GM-1", all.Items[0].StockMovementNo)
	assert.Equal(t, "GM-3", all.Items[1].StockMovementNo)

	_, err = f.movement.List(ctx, f.admin, dto.StockMovementListRequest{
		PagedSortedRequest: dto.PagedSortedRequest{Sorting: "password DESC"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSort)
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de sobreventa e inventario físico
// ──────────────────────────────────────────────────────────────────────────────

func TestOversellReject_RechazaYNoEscribe(t *testing.T) {
	f := newFixture(t, inventory.OversellReject)
	ctx := context.Background()
	f.purchase(t, branchA, product1, "2", "60")

	_, err := f.movement.CheckoutCart(ctx, f.seller, dto.CreateStockMovementRequest{
		Details: []dto.StockMovementLineRequest{line(product1, "3", "100")},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	list, err := f.movement.List(ctx, f.admin, dto.StockMovementListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount, "no debe quedar cabecera huérfana")

	_, err = f.movement.CheckoutCart(ctx, f.seller, dto.CreateStockMovementRequest{
		Details: []dto.StockMovementLineRequest{line(product1, "2", "100")},
	})
	require.NoError(t, err)
	assert.True(t, f.onHand(t, branchA, product1).IsZero())
}

func TestOversellAllow_PermiteNegativo(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)

	_, err := f.movement.CheckoutCart(context.Background(), f.seller, dto.CreateStockMovementRequest{
		Details: []dto.StockMovementLineRequest{line(product1, "3", "100")},
	})
	require.NoError(t, err)
	assert.True(t, f.onHand(t, branchA, product1).Equal(d("-3")))
}

func TestPhysicalInventory_GeneraAmbosAjustes(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	ctx := context.Background()
	f.purchase(t, branchA, product1, "10", "60")

	out, err := f.movement.PhysicalInventory(ctx, f.clerk, dto.PhysicalInventoryRequest{
		Description: "conteo marzo",
		Lines: []dto.PhysicalCountLine{
			{ProductID: product1, CountedQuantity: d("7")},
			{ProductID: product2, CountedQuantity: d("4"), UnitPrice: dp("6")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out.Plus)
	require.NotNil(t, out.Minus)

	assert.Equal(t, string(entity.MovementAdjustmentPlus), out.Plus.MovementType)
	require.Len(t, out.Plus.Details, 1)
	assert.True(t, out.Plus.Details[0].Quantity.Equal(d("4")))
	assert.Equal(t, "24.00", out.Plus.AmountInclVat.StringFixed(2))

	assert.Equal(t, string(entity.MovementAdjustmentMinus), out.Minus.MovementType)
	require.Len(t, out.Minus.Details, 1)
	assert.True(t, out.Minus.Details[0].Quantity.Equal(d("3")))
	assert.Equal(t, "180.00", out.Minus.AmountExclVat.StringFixed(2), "precio por defecto = costo de compra")
	assert.True(t, out.Minus.AmountVat.IsZero())

	assert.True(t, f.onHand(t, branchA, product1).Equal(d("7")))
	assert.True(t, f.onHand(t, branchA, product2).Equal(d("4")))
}

func TestPhysicalInventory_SinDiferencias(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)
	f.purchase(t, branchA, product1, "5", "60")

	out, err := f.movement.PhysicalInventory(context.Background(), f.clerk, dto.PhysicalInventoryRequest{
		Lines: []dto.PhysicalCountLine{{ProductID: product1, CountedQuantity: d("5")}},
	})
	require.NoError(t, err)
	assert.Nil(t, out.Plus)
	assert.Nil(t, out.Minus)
}

func TestPhysicalInventory_RequierePermiso(t *testing.T) {
	f := newFixture(t, inventory.OversellAllow)

	_, err := f.movement.PhysicalInventory(context.Background(), f.seller, dto.PhysicalInventoryRequest{
		Lines: []dto.PhysicalCountLine{{ProductID: product1, CountedQuantity: d("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
