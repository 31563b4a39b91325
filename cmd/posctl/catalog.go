package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
)

// catalogRow una fila del CSV de catálogo.
type catalogRow struct {
	Line             int
	ProductNo        string
	ProductName      string
	ProductType      string
	UoM              string
	BuyingUnitPrice  decimal.Decimal
	SellingUnitPrice decimal.Decimal
}

var catalogColumns = []string{"product_no", "product_name", "product_type", "uom", "buying_unit_price", "selling_unit_price"}

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "carga masiva de catálogo",
		Subcommands: []*cli.Command{
			{
				Name:  "import",
				Usage: "importa productos desde CSV (" + strings.Join(catalogColumns, ",") + ")",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{Name: "file", Required: true},
					&cli.BoolFlag{Name: "latin1", Usage: "el archivo viene en ISO-8859-1"},
					&cli.StringFlag{Name: "delimiter", Value: ","},
				},
				Before: openPool,
				After:  closePool,
				Action: importCatalog,
			},
		},
	}
}

func importCatalog(c *cli.Context) error {
	f, err := os.Open(c.String("file"))
	if err != nil {
		return err
	}
	defer f.Close()

	delim := []rune(c.String("delimiter"))
	if len(delim) != 1 {
		return fmt.Errorf("delimitador inválido %q", c.String("delimiter"))
	}
	rows, err := readCatalogCSV(f, c.Bool("latin1"), delim[0])
	if err != nil {
		return err
	}

	pool := poolFrom(c)
	types := postgres.NewProductTypeRepository(pool)
	products := usecase.NewProductUseCase(postgres.NewProductRepository(pool), types)
	created, skipped, err := loadCatalog(c.Context, rows, types, products)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "productos creados=%d omitidos=%d\n", created, skipped)
	return nil
}

// readCatalogCSV valida encabezados y convierte filas; latin1 decodifica ISO-8859-1.
func readCatalogCSV(r io.Reader, latin1 bool, delim rune) ([]catalogRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))] = i
	}
	for _, col := range []string{"product_name", "product_type"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("falta la columna %q", col)
		}
	}
	get := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	money := func(rec []string, col string, line int) (decimal.Decimal, error) {
		raw := get(rec, col)
		if raw == "" {
			return decimal.Zero, nil
		}
		v, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
		if err != nil {
			return decimal.Zero, fmt.Errorf("línea %d: %s inválido %q", line, col, raw)
		}
		return v, nil
	}

	var out []catalogRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		row := catalogRow{
			Line:        line,
			ProductNo:   get(rec, "product_no"),
			ProductName: get(rec, "product_name"),
			ProductType: get(rec, "product_type"),
			UoM:         get(rec, "uom"),
		}
		if row.ProductName == "" || row.ProductType == "" {
			return nil, fmt.Errorf("línea %d: product_name y product_type son requeridos", line)
		}
		if row.UoM != "" && !entity.ValidUoM(row.UoM) {
			return nil, fmt.Errorf("línea %d: uom desconocida %q", line, row.UoM)
		}
		if row.BuyingUnitPrice, err = money(rec, "buying_unit_price", line); err != nil {
			return nil, err
		}
		if row.SellingUnitPrice, err = money(rec, "selling_unit_price", line); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// loadCatalog crea los tipos que falten y los productos; un product_no repetido se omite.
func loadCatalog(ctx context.Context, rows []catalogRow, types repository.ProductTypeRepository, products *usecase.ProductUseCase) (created, skipped int, err error) {
	typeIDs := map[string]string{}
	existing, _, err := types.List(ctx, "", 0, 0)
	if err != nil {
		return 0, 0, err
	}
	for _, t := range existing {
		typeIDs[strings.ToLower(t.Type)] = t.ID
	}
	typesUC := usecase.NewProductTypeUseCase(types)

	for _, r := range rows {
		key := strings.ToLower(r.ProductType)
		typeID, ok := typeIDs[key]
		if !ok {
			pt, err := typesUC.Create(ctx, "posctl", dto.CreateProductTypeRequest{Type: r.ProductType})
			if err != nil {
				return created, skipped, fmt.Errorf("línea %d: crear tipo: %w", r.Line, err)
			}
			typeID = pt.ID
			typeIDs[key] = typeID
		}
		_, err := products.Create(ctx, "posctl", dto.CreateProductRequest{
			ProductNo:        r.ProductNo,
			ProductName:      r.ProductName,
			ProductTypeID:    typeID,
			UoM:              r.UoM,
			BuyingUnitPrice:  r.BuyingUnitPrice,
			SellingUnitPrice: r.SellingUnitPrice,
		})
		if errors.Is(err, domain.ErrDuplicate) {
			skipped++
			continue
		}
		if err != nil {
			return created, skipped, fmt.Errorf("línea %d: %w", r.Line, err)
		}
		created++
	}
	return created, skipped, nil
}
