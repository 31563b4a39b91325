package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/inventory"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	"github.com/jhoicas/pos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-api/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/pos-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/pos-api/pkg/jwt"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// App completa sobre el store en memoria
// ──────────────────────────────────────────────────────────────────────────────

type apiFixture struct {
	app    *fiber.App
	authUC *auth.AuthUseCase
	admin  string
	seller string
	other  string
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	branches := memory.NewBranchRepository(store)
	types := memory.NewProductTypeRepository(store)
	products := memory.NewProductRepository(store)
	users := memory.NewUserRepository(store)

	require.NoError(t, branches.Create(ctx, &entity.Branch{ID: "b1", Code: "C01", Name: "Centro", VatPerc: decimal.NewFromInt(15), IsActive: true}))
	require.NoError(t, branches.Create(ctx, &entity.Branch{ID: "b2", Code: "N01", Name: "Norte", VatPerc: decimal.NewFromInt(19), IsActive: true}))
	require.NoError(t, types.Create(ctx, &entity.ProductType{ID: "t1", Type: "Bebidas"}))
	require.NoError(t, products.Create(ctx, &entity.Product{
		ID: "p1", ProductNo: "P-1", ProductName: "Agua", UoM: entity.UoMBottle,
		BuyingUnitPrice: decimal.NewFromInt(60), SellingUnitPrice: decimal.NewFromInt(100), ProductTypeID: "t1",
	}))

	log := logger.Nop()
	queries := memory.NewStockQueryRepository(store)
	authUC := auth.NewAuthUseCase(users, branches, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        authUC,
		UserUC:        usecase.NewUserUseCase(users),
		BranchUC:      usecase.NewBranchUseCase(branches),
		ProductTypeUC: usecase.NewProductTypeUseCase(types),
		ProductUC:     usecase.NewProductUseCase(products, types),
		MovementUC: inventory.NewMovementUseCase(
			memory.NewTxRunner(store), memory.NewStockMovementRepository(store),
			branches, products, pdf.NewMarotoReceiptGenerator(time.UTC), inventory.OversellAllow, time.UTC, log,
		),
		ReportUC:    inventory.NewReportUseCase(queries, products, types, xlsx.NewStockReportExporter(), time.UTC),
		DashboardUC: analytics.NewDashboardUseCase(queries, time.UTC),
		JWTSecret:   testJWTSecret,
		Location:    time.UTC,
	})

	token := func(role, branch string) string {
		tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identity{UserID: "u-" + role + branch, Role: role, BranchID: branch}, testIssuer, testExpMin)
		require.NoError(t, err)
		return "Bearer " + tok
	}
	return &apiFixture{
		app:    app,
		authUC: authUC,
		admin:  token(entity.RoleAdmin, ""),
		seller: token(entity.RoleVendedor, "b1"),
		other:  token(entity.RoleVendedor, "b2"),
	}
}

func (f *apiFixture) call(t *testing.T, method, path, auth string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e), string(body))
	return e.Code
}

func line(qty string) map[string]any {
	return map[string]any{"product_id": "p1", "quantity": qty}
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_LoginYMe(t *testing.T) {
	f := newAPI(t)
	_, err := f.authUC.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "caja1", Email: "caja1@pos.test", Password: "secreto123", Role: entity.RoleVendedor, BranchID: "b1",
	})
	require.NoError(t, err)

	resp, body := f.call(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{"login": "CAJA1@pos.test", "password": "secreto123"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &login))
	assert.Equal(t, "b1", login.User.BranchID)

	resp, body = f.call(t, fiber.MethodGet, "/api/auth/me", "Bearer "+login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me dto.UserResponse
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "caja1", me.Username)
	assert.Contains(t, me.Permissions, entity.PermStockMovementsCreate)

	resp, body = f.call(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{"login": "caja1", "password": "otra-clave"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, body))
}

func TestAPI_AltaDeUsuarioSoloAdmin(t *testing.T) {
	f := newAPI(t)
	in := map[string]string{"username": "bodega1", "password": "secreto123", "role": entity.RoleBodeguero, "branch_id": "b2"}

	resp, body := f.call(t, fiber.MethodPost, "/api/users", f.seller, in)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, body))

	resp, body = f.call(t, fiber.MethodPost, "/api/users", f.admin, in)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(body, &user))
	assert.Equal(t, "b2", user.BranchID)
	assert.Contains(t, user.Permissions, entity.PermStockMovementsPhysicalInventory)

	resp, body = f.call(t, fiber.MethodPost, "/api/users", f.admin, in)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", errorCode(t, body))

	resp, body = f.call(t, fiber.MethodPost, "/api/users", f.admin,
		map[string]string{"username": "caja9", "password": "secreto123", "role": entity.RoleVendedor})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CatalogoRequierePermisoYValida(t *testing.T) {
	f := newAPI(t)

	resp, _ := f.call(t, fiber.MethodPost, "/api/branches", f.seller, map[string]any{"code": "S01", "name": "Sur"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := f.call(t, fiber.MethodPost, "/api/branches", f.admin, map[string]any{"code": "S01"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, body))

	resp, body = f.call(t, fiber.MethodPost, "/api/branches", f.admin, map[string]any{"code": "c01", "name": "Otra"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", errorCode(t, body))

	resp, body = f.call(t, fiber.MethodGet, "/api/branches/lookup", f.seller, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lookup []dto.BranchLookupItem
	require.NoError(t, json.Unmarshal(body, &lookup))
	require.Len(t, lookup, 2)
	assert.Equal(t, "Centro (C01)", lookup[0].DisplayName)

	resp, body = f.call(t, fiber.MethodGet, "/api/products/nope", f.seller, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_IngresoVentaYStock(t *testing.T) {
	f := newAPI(t)

	resp, body := f.call(t, fiber.MethodPost, "/api/stock-movements/add-stock", f.admin, map[string]any{
		"branch_id": "b1", "details": []any{map[string]any{"product_id": "p1", "quantity": "10", "unit_price": "60"}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = f.call(t, fiber.MethodPost, "/api/stock-movements/checkout-cart", f.seller, map[string]any{
		"branch_id": "b2", "details": []any{line("3")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var sale dto.StockMovementResponse
	require.NoError(t, json.Unmarshal(body, &sale))
	assert.Equal(t, "b1", sale.BranchID)
	assert.Equal(t, "345.00", sale.AmountInclVat.StringFixed(2))
	assert.Equal(t, "GM-2", sale.StockMovementNo)

	resp, body = f.call(t, fiber.MethodGet, "/api/stock-movements/on-hand/map?product_ids=p1&branch_id=b1", f.admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var onHand map[string]decimal.Decimal
	require.NoError(t, json.Unmarshal(body, &onHand))
	assert.True(t, onHand["p1"].Equal(decimal.NewFromInt(7)))

	resp, body = f.call(t, fiber.MethodGet, "/api/stock-movements/"+sale.ID, f.other, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "CROSS_BRANCH", errorCode(t, body))

	resp, body = f.call(t, fiber.MethodGet, "/api/stock-movements/"+sale.ID+"/receipt", f.seller, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestAPI_ErroresDeValidacionDelLibro(t *testing.T) {
	f := newAPI(t)

	resp, body := f.call(t, fiber.MethodPost, "/api/stock-movements", f.admin, map[string]any{
		"movement_type": "Purchase", "branch_id": "b1", "details": []any{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "NO_LINES", errorCode(t, body))

	resp, body = f.call(t, fiber.MethodPost, "/api/stock-movements/adjust-stock", f.admin, map[string]any{
		"movement_type": "Sale", "branch_id": "b1", "details": []any{line("1")},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ADJUSTMENT_TYPE", errorCode(t, body))

	resp, body = f.call(t, fiber.MethodPost, "/api/stock-movements", f.admin, map[string]any{
		"movement_type": "Purchase", "details": []any{line("1")},
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "BRANCH_REQUIRED", errorCode(t, body))

	resp, body = f.call(t, fiber.MethodPost, "/api/stock-movements", f.admin, map[string]any{
		"movement_type": "Purchase", "branch_id": "b1", "details": []any{line("0")},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "QUANTITY_MUST_BE_POSITIVE", errorCode(t, body))

	resp, body = f.call(t, fiber.MethodGet, "/api/stock-movements?sorting=password", f.admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_SORT", errorCode(t, body))

	resp, body = f.call(t, fiber.MethodGet, "/api/stock-movements?date_from=ayer", f.admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUERY", errorCode(t, body))
}

func TestAPI_AnulacionIdempotenteYEdicionBloqueada(t *testing.T) {
	f := newAPI(t)
	resp, body := f.call(t, fiber.MethodPost, "/api/stock-movements", f.admin, map[string]any{
		"movement_type": "Purchase", "branch_id": "b1", "details": []any{line("2")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var mv dto.StockMovementResponse
	require.NoError(t, json.Unmarshal(body, &mv))

	resp, _ = f.call(t, fiber.MethodPost, "/api/stock-movements/"+mv.ID+"/cancel", f.seller, map[string]string{"reason": "x"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	for range 2 {
		resp, body = f.call(t, fiber.MethodPost, "/api/stock-movements/"+mv.ID+"/cancel", f.admin, map[string]string{"reason": "duplicado"})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	}
	require.NoError(t, json.Unmarshal(body, &mv))
	assert.True(t, mv.IsCancelled)
	assert.Equal(t, "[CANCELLED] duplicado", mv.Description)

	resp, body = f.call(t, fiber.MethodPut, "/api/stock-movements/"+mv.ID, f.admin, map[string]any{
		"movement_type": "Purchase", "branch_id": "b1", "details": []any{line("5")},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "MOVEMENT_CANCELLED", errorCode(t, body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ExportacionYDashboard(t *testing.T) {
	f := newAPI(t)
	resp, _ := f.call(t, fiber.MethodPost, "/api/stock-movements/add-stock", f.admin, map[string]any{
		"branch_id": "b1", "details": []any{map[string]any{"product_id": "p1", "quantity": "4", "unit_price": "60"}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := f.call(t, fiber.MethodGet, "/api/stock-movements/stock-report/export?branch_id=b1", f.admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "stock-report.xlsx")
	assert.True(t, bytes.HasPrefix(body, []byte("PK")))

	resp, body = f.call(t, fiber.MethodGet, "/api/dashboard/summary", f.admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var summary dto.StockDashboardSummaryDTO
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, "240.00", summary.StockValue.StringFixed(2))

	// el vendedor de b2 pide b1 y recibe su propia sucursal, sin stock
	resp, body = f.call(t, fiber.MethodGet, "/api/dashboard/summary?branch_id=b1", f.other, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var own dto.StockDashboardSummaryDTO
	require.NoError(t, json.Unmarshal(body, &own))
	assert.Equal(t, "b2", own.BranchID)
	assert.True(t, own.StockValue.IsZero())
}
