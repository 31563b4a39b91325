// Package sorting interpreta expresiones de ordenamiento ("campo [ASC|DESC], ...")
// contra un conjunto cerrado de claves por endpoint.
package sorting

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/pos-api/internal/domain"
)

// Field una clave de ordenamiento con su dirección.
type Field struct {
	Key  string
	Desc bool
}

// Spec lista ordenada de claves; la primera tiene mayor prioridad.
type Spec []Field

// Keys conjunto cerrado de claves admitidas por un endpoint.
type Keys []string

// Has indica si k pertenece al conjunto.
func (ks Keys) Has(k string) bool {
	return slices.Contains(ks, k)
}

// Parse interpreta expr. Vacío devuelve def. Una clave fuera de allowed o una
// dirección distinta de ASC/DESC devuelve domain.ErrInvalidSort.
func Parse(expr string, allowed Keys, def Spec) (Spec, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return def, nil
	}
	var spec Spec
	for _, part := range strings.Split(expr, ",") {
		tokens := strings.Fields(part)
		if len(tokens) == 0 || len(tokens) > 2 {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSort, strings.TrimSpace(part))
		}
		key := strings.ToLower(tokens[0])
		if !allowed.Has(key) {
			return nil, fmt.Errorf("%w: clave %q no admitida", domain.ErrInvalidSort, tokens[0])
		}
		f := Field{Key: key}
		if len(tokens) == 2 {
			switch strings.ToUpper(tokens[1]) {
			case "ASC":
			case "DESC":
				f.Desc = true
			default:
				return nil, fmt.Errorf("%w: dirección %q", domain.ErrInvalidSort, tokens[1])
			}
		}
		spec = append(spec, f)
	}
	return spec, nil
}

// String vuelve a formatear la especificación ("a DESC, b ASC").
func (s Spec) String() string {
	parts := make([]string, 0, len(s))
	for _, f := range s {
		dir := "ASC"
		if f.Desc {
			dir = "DESC"
		}
		parts = append(parts, f.Key+" "+dir)
	}
	return strings.Join(parts, ", ")
}

// Comparator compara dos elementos por una clave (negativo, cero o positivo).
type Comparator[T any] func(a, b T) int

// SortStable ordena items según spec usando el comparador de cada clave.
// Las claves sin comparador se ignoran.
func SortStable[T any](items []T, spec Spec, cmps map[string]Comparator[T]) {
	slices.SortStableFunc(items, func(a, b T) int {
		for _, f := range spec {
			cmp, ok := cmps[f.Key]
			if !ok {
				continue
			}
			c := cmp(a, b)
			if c == 0 {
				continue
			}
			if f.Desc {
				return -c
			}
			return c
		}
		return 0
	})
}

// OrderBy traduce spec a una cláusula ORDER BY usando columnas de una lista blanca.
// Las claves sin columna se omiten; si no queda ninguna devuelve fallback.
func (s Spec) OrderBy(columns map[string]string, fallback string) string {
	parts := make([]string, 0, len(s))
	for _, f := range s {
		col, ok := columns[f.Key]
		if !ok {
			continue
		}
		if f.Desc {
			parts = append(parts, col+" DESC")
		} else {
			parts = append(parts, col+" ASC")
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}
