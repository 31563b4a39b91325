package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/inventory"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/access"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fixture struct {
	movement  *inventory.MovementUseCase
	dashboard *analytics.DashboardUseCase
	admin     access.Caller
	clock     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	branches := memory.NewBranchRepository(store)
	types := memory.NewProductTypeRepository(store)
	products := memory.NewProductRepository(store)

	require.NoError(t, branches.Create(ctx, &entity.Branch{ID: "b1", Code: "C", Name: "Centro", VatPerc: d("15"), IsActive: true}))
	require.NoError(t, branches.Create(ctx, &entity.Branch{ID: "b2", Code: "N", Name: "Norte", VatPerc: d("15"), IsActive: true}))
	require.NoError(t, types.Create(ctx, &entity.ProductType{ID: "t-beb", Type: "Bebidas"}))
	require.NoError(t, types.Create(ctx, &entity.ProductType{ID: "t-snk", Type: "Snacks"}))
	require.NoError(t, types.Create(ctx, &entity.ProductType{ID: "t-lim", Type: "Limpieza"}))
	for _, p := range []entity.Product{
		{ID: "p1", ProductNo: "P-1", ProductName: "Agua", BuyingUnitPrice: d("6"), ProductTypeID: "t-beb", UoM: entity.UoMBottle},
		{ID: "p2", ProductNo: "P-2", ProductName: "Papas", BuyingUnitPrice: d("4"), ProductTypeID: "t-snk", UoM: entity.UoMPack},
		{ID: "p3", ProductNo: "P-3", ProductName: "Jabón", BuyingUnitPrice: d("2"), ProductTypeID: "t-lim", UoM: entity.UoMPiece},
	} {
		require.NoError(t, products.Create(ctx, &p))
	}

	f := &fixture{
		admin: access.NewCaller("u-admin", entity.RoleAdmin, ""),
		clock: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
	}
	log := logger.Nop()
	f.movement = inventory.NewMovementUseCase(
		memory.NewTxRunner(store), memory.NewStockMovementRepository(store),
		branches, products, nil, inventory.OversellAllow, time.UTC, log,
	).WithClock(func() time.Time { return f.clock })
	f.dashboard = analytics.NewDashboardUseCase(memory.NewStockQueryRepository(store), time.UTC).
		WithClock(func() time.Time { return f.clock })
	return f
}

func (f *fixture) record(t *testing.T, typ entity.MovementType, branch, productID, qty, price string) {
	t.Helper()
	p := d(price)
	_, err := f.movement.Create(context.Background(), f.admin, dto.CreateStockMovementRequest{
		MovementType: string(typ),
		BranchID:     branch,
		Details:      []dto.StockMovementLineRequest{{ProductID: productID, Quantity: d(qty), UnitPrice: &p}},
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_VentasGananciaYValorizacion(t *testing.T) {
	f := newFixture(t)
	f.record(t, entity.MovementPurchase, "b1", "p1", "10", "5")
	f.record(t, entity.MovementPurchase, "b1", "p1", "10", "7")
	f.record(t, entity.MovementSale, "b1", "p1", "5", "10")
	f.record(t, entity.MovementPurchase, "b1", "p2", "1", "4")

	out, err := f.dashboard.Summary(context.Background(), f.admin, dto.DashboardRequest{BranchID: "b1"})
	require.NoError(t, err)

	assert.Equal(t, "57.50", out.PeriodSalesInclVat.StringFixed(2))
	assert.Equal(t, "50.00", out.PeriodSalesExclVat.StringFixed(2))
	// costo = 5 × 6
	assert.Equal(t, "27.50", out.PeriodProfitInclVat.StringFixed(2))
	assert.Equal(t, "20.00", out.PeriodProfitExclVat.StringFixed(2))
	// p1: (50+70)/20 × 15 = 90; p2: 4 × 1
	assert.Equal(t, "94.00", out.StockValue.StringFixed(2))
	assert.Equal(t, 2, out.ActiveProducts)
	assert.Equal(t, 1, out.LowStockItems)
	assert.Equal(t, "2026-03-10", out.FromDate.Format(time.DateOnly))
	assert.Equal(t, "2026-03-10", out.ToDate.Format(time.DateOnly))
}

func TestSummary_PeriodoExcluyeVentasAnteriores(t *testing.T) {
	f := newFixture(t)
	f.clock = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.record(t, entity.MovementPurchase, "b1", "p1", "10", "5")
	f.record(t, entity.MovementSale, "b1", "p1", "2", "10")
	f.clock = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	out, err := f.dashboard.Summary(context.Background(), f.admin, dto.DashboardRequest{})
	require.NoError(t, err)
	assert.True(t, out.PeriodSalesInclVat.IsZero())
	assert.Equal(t, "40.00", out.StockValue.StringFixed(2), "el stock se valoriza al cierre del período")

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ranged, err := f.dashboard.Summary(context.Background(), f.admin, dto.DashboardRequest{DateFrom: &from})
	require.NoError(t, err)
	assert.Equal(t, "23.00", ranged.PeriodSalesInclVat.StringFixed(2))
}

func TestSummary_SinPermisoDeDashboard(t *testing.T) {
	f := newFixture(t)
	nobody := access.NewCaller("u-x", "invitado", "b1")

	_, err := f.dashboard.Summary(context.Background(), nobody, dto.DashboardRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSummary_VendedorVeSoloSuSucursal(t *testing.T) {
	f := newFixture(t)
	f.record(t, entity.MovementPurchase, "b1", "p1", "2", "10")
	f.record(t, entity.MovementPurchase, "b2", "p1", "9", "10")
	seller := access.NewCaller("u-seller", entity.RoleVendedor, "b1")

	out, err := f.dashboard.Summary(context.Background(), seller, dto.DashboardRequest{BranchID: "b2"})
	require.NoError(t, err)
	assert.Equal(t, "b1", out.BranchID)
	assert.Equal(t, "20.00", out.StockValue.StringFixed(2))
}

func TestSummary_BodegueroForzadoASuSucursal(t *testing.T) {
	f := newFixture(t)
	f.record(t, entity.MovementPurchase, "b1", "p1", "3", "5")
	f.record(t, entity.MovementPurchase, "b2", "p1", "8", "5")
	clerk := access.NewCaller("u-clerk", entity.RoleBodeguero, "b1")

	out, err := f.dashboard.Summary(context.Background(), clerk, dto.DashboardRequest{BranchID: "b2"})
	require.NoError(t, err)
	assert.Equal(t, "b1", out.BranchID)
	assert.Equal(t, "15.00", out.StockValue.StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Series y agrupaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestDailySales_RellenaDiasSinVentas(t *testing.T) {
	f := newFixture(t)
	f.clock = time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
	f.record(t, entity.MovementSale, "b1", "p1", "1", "100")
	f.clock = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	f.record(t, entity.MovementSale, "b1", "p1", "2", "100")
	f.record(t, entity.MovementPurchase, "b1", "p1", "5", "100")

	out, err := f.dashboard.DailySales(context.Background(), f.admin, dto.DashboardRequest{})
	require.NoError(t, err)
	require.Len(t, out, 7)
	assert.Equal(t, "2026-03-04", out[0].Date)
	assert.Equal(t, "2026-03-08", out[4].Date)
	assert.Equal(t, "115.00", out[4].Amount.StringFixed(2))
	assert.Equal(t, "0.00", out[5].Amount.StringFixed(2))
	assert.Equal(t, "230.00", out[6].Amount.StringFixed(2))
}

func TestStockByProductType_SoloPositivosOrdenados(t *testing.T) {
	f := newFixture(t)
	f.record(t, entity.MovementPurchase, "b1", "p1", "3", "5")
	f.record(t, entity.MovementPurchase, "b1", "p2", "9", "5")
	f.record(t, entity.MovementSale, "b1", "p3", "2", "5")
	f.clock = f.clock.AddDate(0, 0, 1)
	f.record(t, entity.MovementPurchase, "b1", "p1", "50", "5")
	f.clock = f.clock.AddDate(0, 0, -1)

	out, err := f.dashboard.StockByProductType(context.Background(), f.admin, dto.DashboardRequest{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Snacks", out[0].ProductTypeName)
	assert.True(t, out[0].OnHand.Equal(d("9")))
	assert.Equal(t, "Bebidas", out[1].ProductTypeName)
	assert.True(t, out[1].OnHand.Equal(d("3")), "los movimientos de mañana no cuentan")
}
