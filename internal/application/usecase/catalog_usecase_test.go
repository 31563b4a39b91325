package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
)

type catalog struct {
	store    *memory.Store
	branches *usecase.BranchUseCase
	types    *usecase.ProductTypeUseCase
	products *usecase.ProductUseCase
}

func newCatalog() *catalog {
	store := memory.NewStore()
	typeRepo := memory.NewProductTypeRepository(store)
	return &catalog{
		store:    store,
		branches: usecase.NewBranchUseCase(memory.NewBranchRepository(store)),
		types:    usecase.NewProductTypeUseCase(typeRepo),
		products: usecase.NewProductUseCase(memory.NewProductRepository(store), typeRepo),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Sucursales
// ──────────────────────────────────────────────────────────────────────────────

func TestBranch_CreateLimitaIVAyRechazaDuplicado(t *testing.T) {
	c := newCatalog()
	ctx := context.Background()

	b, err := c.branches.Create(ctx, "u1", dto.CreateBranchRequest{Code: "C01", Name: "Centro", VatPerc: decimal.NewFromInt(150)})
	require.NoError(t, err)
	assert.True(t, b.VatPerc.Equal(decimal.NewFromInt(100)))
	assert.True(t, b.IsActive)
	assert.Equal(t, "Centro (C01)", b.DisplayName)

	neg := decimal.NewFromInt(-5)
	upd, err := c.branches.Update(ctx, "u1", b.ID, dto.UpdateBranchRequest{VatPerc: &neg})
	require.NoError(t, err)
	assert.True(t, upd.VatPerc.IsZero())

	_, err = c.branches.Create(ctx, "u1", dto.CreateBranchRequest{Code: "c01", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestBranch_LookupSoloActivasOrdenadas(t *testing.T) {
	c := newCatalog()
	ctx := context.Background()
	inactive := false
	for _, in := range []dto.CreateBranchRequest{
		{Code: "Z", Name: "Zona Sur"},
		{Code: "A", Name: "Avenida"},
		{Code: "X", Name: "Cerrada", IsActive: &inactive},
	} {
		_, err := c.branches.Create(ctx, "u1", in)
		require.NoError(t, err)
	}

	out, err := c.branches.Lookup(ctx, "")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Avenida (A)", out[0].DisplayName)
	assert.Equal(t, "Zona Sur (Z)", out[1].DisplayName)

	filtered, err := c.branches.Lookup(ctx, "sur")
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestBranch_GetYDeleteInexistente(t *testing.T) {
	c := newCatalog()
	ctx := context.Background()

	_, err := c.branches.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, c.branches.Delete(ctx, "nope"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tipos y productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_NumeracionAutomaticaYTipoObligatorio(t *testing.T) {
	c := newCatalog()
	ctx := context.Background()
	pt, err := c.types.Create(ctx, "u1", dto.CreateProductTypeRequest{Type: "Bebidas"})
	require.NoError(t, err)

	p1, err := c.products.Create(ctx, "u1", dto.CreateProductRequest{ProductName: "Agua", ProductTypeID: pt.ID})
	require.NoError(t, err)
	p2, err := c.products.Create(ctx, "u1", dto.CreateProductRequest{ProductName: "Jugo", ProductTypeID: pt.ID})
	require.NoError(t, err)
	assert.Equal(t, "P-1", p1.ProductNo)
	assert.Equal(t, "P-2", p2.ProductNo)
	assert.Equal(t, entity.UoMPiece, p1.UoM)
	assert.Equal(t, "Bebidas", p1.ProductTypeName)

	_, err = c.products.Create(ctx, "u1", dto.CreateProductRequest{ProductName: "X", ProductTypeID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = c.products.Create(ctx, "u1", dto.CreateProductRequest{ProductNo: "p-1", ProductName: "Dup", ProductTypeID: pt.ID})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = c.products.Create(ctx, "u1", dto.CreateProductRequest{
		ProductName: "Neg", ProductTypeID: pt.ID, BuyingUnitPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrPriceInvalid)
}

func TestProduct_InexistenteEsNotFoundDeCatalogo(t *testing.T) {
	c := newCatalog()
	ctx := context.Background()
	name := "Otro"

	_, err := c.products.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrProductNotFound)

	_, err = c.products.Update(ctx, "u1", "nope", dto.UpdateProductRequest{ProductName: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, c.products.Delete(ctx, "nope"), domain.ErrNotFound)
}

func TestProduct_ListFiltraPorTexto(t *testing.T) {
	c := newCatalog()
	ctx := context.Background()
	pt, err := c.types.Create(ctx, "u1", dto.CreateProductTypeRequest{Type: "Snacks"})
	require.NoError(t, err)
	for _, name := range []string{"Papas fritas", "Maní", "Papas al horno"} {
		_, err := c.products.Create(ctx, "u1", dto.CreateProductRequest{ProductName: name, ProductTypeID: pt.ID})
		require.NoError(t, err)
	}

	out, err := c.products.List(ctx, "PAPAS", "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Page.Total)
	assert.Equal(t, "Papas al horno", out.Items[0].ProductName)
	assert.Equal(t, "Snacks", out.Items[0].ProductTypeName)
}

func TestProductType_DeleteConProductosEsConflicto(t *testing.T) {
	c := newCatalog()
	ctx := context.Background()
	pt, err := c.types.Create(ctx, "u1", dto.CreateProductTypeRequest{Type: "Limpieza"})
	require.NoError(t, err)
	_, err = c.products.Create(ctx, "u1", dto.CreateProductRequest{ProductName: "Jabón", ProductTypeID: pt.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, c.types.Delete(ctx, pt.ID), domain.ErrConflict)
}
