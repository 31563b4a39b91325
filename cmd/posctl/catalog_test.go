package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
)

const sampleCSV = `product_no,product_name,product_type,uom,buying_unit_price,selling_unit_price
P-10,Agua sin gas,Bebidas,Bottle,"0,60",1.00
,Jugo de piña,Bebidas,,0.8,1.5
P-11,Galletas,Snacks,Pack,,2
`

func TestReadCatalogCSV_Latin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String(sampleCSV)
	require.NoError(t, err)

	rows, err := readCatalogCSV(bytes.NewReader([]byte(encoded)), true, ',')
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Jugo de piña", rows[1].ProductName)
	assert.Equal(t, "0.6", rows[0].BuyingUnitPrice.String())
	assert.True(t, rows[2].BuyingUnitPrice.IsZero())
	assert.Equal(t, 4, rows[2].Line)
}

func TestReadCatalogCSV_Errores(t *testing.T) {
	_, err := readCatalogCSV(strings.NewReader("product_no,product_name\nP-1,Agua\n"), false, ',')
	assert.ErrorContains(t, err, "product_type")

	_, err = readCatalogCSV(strings.NewReader("product_name,product_type,uom\nAgua,Bebidas,Litro\n"), false, ',')
	assert.ErrorContains(t, err, "uom")

	_, err = readCatalogCSV(strings.NewReader("product_name;product_type;selling_unit_price\nAgua;Bebidas;abc\n"), false, ';')
	assert.ErrorContains(t, err, "línea 2")
}

func TestLoadCatalog_CreaTiposYOmiteDuplicados(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	types := memory.NewProductTypeRepository(store)
	products := usecase.NewProductUseCase(memory.NewProductRepository(store), types)

	rows, err := readCatalogCSV(strings.NewReader(sampleCSV), false, ',')
	require.NoError(t, err)

	created, skipped, err := loadCatalog(ctx, rows, types, products)
	require.NoError(t, err)
	assert.Equal(t, 3, created)
	assert.Equal(t, 0, skipped)

	list, total, err := types.List(ctx, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, list, 2)

	// segunda carga: los product_no explícitos ya existen
	created, skipped, err = loadCatalog(ctx, rows, types, products)
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 1, created)
}
