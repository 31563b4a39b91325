//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/inventory"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/access"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Contenedor compartido por el paquete
// ──────────────────────────────────────────────────────────────────────────────

var (
	containerOnce sync.Once
	containerDSN  string
	containerErr  error
)

func startPostgres(t *testing.T) string {
	t.Helper()
	containerOnce.Do(func() {
		ctx := context.Background()
		c, err := tcpostgres.Run(ctx,
			"postgres:16-alpine",
			tcpostgres.WithDatabase("pos_test"),
			tcpostgres.WithUsername("postgres"),
			tcpostgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			containerErr = err
			return
		}
		containerDSN, containerErr = c.ConnectionString(ctx, "sslmode=disable")
		if containerErr != nil {
			return
		}
		log := logger.Nop()
		m, err := postgres.NewMigrator(containerDSN, log)
		if err != nil {
			containerErr = err
			return
		}
		defer m.Close()
		containerErr = m.Up()
	})
	require.NoError(t, containerErr, "no se pudo iniciar PostgreSQL")
	return containerDSN
}

type pgFixture struct {
	pool      *pgxpool.Pool
	movement  *inventory.MovementUseCase
	report    *inventory.ReportUseCase
	dashboard *analytics.DashboardUseCase
	admin     access.Caller
	branchID  string
	productID string
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newPGFixture(t *testing.T, policy inventory.OversellPolicy) *pgFixture {
	t.Helper()
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: startPostgres(t)})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE stock_movement_details, stock_movement_headers, users, products, product_types, branches`)
	require.NoError(t, err)

	branches := postgres.NewBranchRepository(pool)
	types := postgres.NewProductTypeRepository(pool)
	products := postgres.NewProductRepository(pool)
	now := time.Now().UTC()
	require.NoError(t, branches.Create(ctx, &entity.Branch{ID: "b1", Code: "C01", Name: "Centro", VatPerc: d("15"), IsActive: true, CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, types.Create(ctx, &entity.ProductType{ID: "t1", Type: "Bebidas", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, products.Create(ctx, &entity.Product{
		ID: "p1", ProductNo: "P-1", ProductName: "Agua", BuyingUnitPrice: d("6"), SellingUnitPrice: d("10"),
		UoM: entity.UoMBottle, ProductTypeID: "t1", CreatedAt: now, UpdatedAt: now,
	}))

	log := logger.Nop()
	queries := postgres.NewStockQueryRepository(pool)
	return &pgFixture{
		pool: pool,
		movement: inventory.NewMovementUseCase(
			postgres.NewTxRunner(pool), postgres.NewStockMovementRepository(pool),
			branches, products, nil, policy, time.UTC, log,
		),
		report:    inventory.NewReportUseCase(queries, products, types, nil, time.UTC),
		dashboard: analytics.NewDashboardUseCase(queries, time.UTC),
		admin:     access.NewCaller("u-admin", entity.RoleAdmin, ""),
		branchID:  "b1",
		productID: "p1",
	}
}

func (f *pgFixture) move(t *testing.T, typ entity.MovementType, qty, price string) (*dto.StockMovementResponse, error) {
	t.Helper()
	p := d(price)
	return f.movement.Create(context.Background(), f.admin, dto.CreateStockMovementRequest{
		MovementType: string(typ),
		BranchID:     f.branchID,
		Details:      []dto.StockMovementLineRequest{{ProductID: f.productID, Quantity: d(qty), UnitPrice: &p}},
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestPostgres_LibroCompletoYValorizacion(t *testing.T) {
	f := newPGFixture(t, inventory.OversellAllow)
	ctx := context.Background()

	_, err := f.move(t, entity.MovementPurchase, "10", "5")
	require.NoError(t, err)
	_, err = f.move(t, entity.MovementPurchase, "10", "7")
	require.NoError(t, err)
	sale, err := f.move(t, entity.MovementSale, "5", "10")
	require.NoError(t, err)
	assert.Equal(t, "57.50", sale.AmountInclVat.StringFixed(2))

	got, err := f.movement.Get(ctx, f.admin, sale.ID)
	require.NoError(t, err)
	require.Len(t, got.Details, 1)
	assert.Equal(t, entity.MovementSale, entity.MovementType(got.MovementType))

	onHand, err := f.report.OnHandMap(ctx, f.admin, []string{f.productID}, f.branchID)
	require.NoError(t, err)
	assert.True(t, onHand[f.productID].Equal(d("15")))

	summary, err := f.dashboard.Summary(ctx, f.admin, dto.DashboardRequest{})
	require.NoError(t, err)
	assert.Equal(t, "90.00", summary.StockValue.StringFixed(2))
	assert.Equal(t, "27.50", summary.PeriodProfitInclVat.StringFixed(2))

	_, err = f.movement.Cancel(ctx, f.admin, sale.ID, "error de caja")
	require.NoError(t, err)
	onHand, err = f.report.OnHandMap(ctx, f.admin, []string{f.productID}, f.branchID)
	require.NoError(t, err)
	assert.True(t, onHand[f.productID].Equal(d("20")))

	list, err := f.movement.List(ctx, f.admin, dto.StockMovementListRequest{IncludeCancelled: true})
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalCount)
	assert.True(t, list.Items[0].IsCancelled)
}

func TestPostgres_ProductoConMovimientosNoSeBorra(t *testing.T) {
	f := newPGFixture(t, inventory.OversellAllow)
	_, err := f.move(t, entity.MovementPurchase, "1", "5")
	require.NoError(t, err)

	err = postgres.NewProductRepository(f.pool).Delete(context.Background(), f.productID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPostgres_EdicionConLecturaViejaNoPisaAnulacion(t *testing.T) {
	f := newPGFixture(t, inventory.OversellAllow)
	ctx := context.Background()
	sale, err := f.move(t, entity.MovementSale, "2", "10")
	require.NoError(t, err)

	repo := postgres.NewStockMovementRepository(f.pool)
	stale, err := repo.GetByID(ctx, sale.ID)
	require.NoError(t, err)

	_, err = f.movement.Cancel(ctx, f.admin, sale.ID, "error de caja")
	require.NoError(t, err)

	stale.AmountInclVat = d("999")
	stale.Details[0].Quantity = d("50")
	assert.ErrorIs(t, repo.Update(ctx, stale), domain.ErrMovementCancelled)

	got, err := repo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, got.IsCancelled)
	assert.Equal(t, "23.00", got.AmountInclVat.StringFixed(2))
	require.Len(t, got.Details, 1)
	assert.True(t, got.Details[0].Quantity.Equal(d("2")))

	// una segunda anulación con datos viejos tampoco escribe
	stale.Description = "otra"
	require.NoError(t, repo.SetCancelled(ctx, stale))
	got, err = repo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Contains(t, got.Description, "error de caja")
}

func TestPostgres_OversellRejectSerializaEgresos(t *testing.T) {
	f := newPGFixture(t, inventory.OversellReject)
	_, err := f.move(t, entity.MovementPurchase, "5", "5")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.move(t, entity.MovementSale, "2", "10")
		}(i)
	}
	wg.Wait()

	ok, rejected := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, domain.ErrInsufficientStock):
			rejected++
		}
	}
	assert.Equal(t, 2, ok)
	assert.Equal(t, 2, rejected)
}

func TestPostgres_VentasDiariasPorZonaHoraria(t *testing.T) {
	f := newPGFixture(t, inventory.OversellAllow)
	_, err := f.move(t, entity.MovementSale, "1", "100")
	require.NoError(t, err)

	points, err := postgres.NewStockQueryRepository(f.pool).DailySales(context.Background(), repository.LedgerScope{BranchID: "b1"}, time.UTC)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "115.00", points[0].Amount.StringFixed(2))
}
