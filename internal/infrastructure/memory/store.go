// Package memory implementa los puertos de persistencia en memoria.
// Se usa en modo desarrollo (APP_STORAGE=memory) y en las pruebas de casos de uso.
// Las agregaciones se calculan con las mismas reglas de internal/domain/ledger.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

type state struct {
	branches     map[string]entity.Branch
	productTypes map[string]entity.ProductType
	products     map[string]entity.Product
	users        map[string]entity.User
	headers      map[string]entity.StockMovementHeader
	details      map[string][]entity.StockMovementDetail // por header id
	movementSeq  int64
	productSeq   int64
}

func newState() *state {
	return &state{
		branches:     map[string]entity.Branch{},
		productTypes: map[string]entity.ProductType{},
		products:     map[string]entity.Product{},
		users:        map[string]entity.User{},
		headers:      map[string]entity.StockMovementHeader{},
		details:      map[string][]entity.StockMovementDetail{},
	}
}

// clone copia el estado completo; las transacciones trabajan sobre la copia.
func (s *state) clone() *state {
	c := &state{
		branches:     make(map[string]entity.Branch, len(s.branches)),
		productTypes: make(map[string]entity.ProductType, len(s.productTypes)),
		products:     make(map[string]entity.Product, len(s.products)),
		users:        make(map[string]entity.User, len(s.users)),
		headers:      make(map[string]entity.StockMovementHeader, len(s.headers)),
		details:      make(map[string][]entity.StockMovementDetail, len(s.details)),
		movementSeq:  s.movementSeq,
		productSeq:   s.productSeq,
	}
	for k, v := range s.branches {
		c.branches[k] = v
	}
	for k, v := range s.productTypes {
		c.productTypes[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.headers {
		c.headers[k] = v
	}
	for k, v := range s.details {
		c.details[k] = slices.Clone(v)
	}
	return c
}

// Store base de datos en memoria protegida por un mutex. Las escrituras
// transaccionales se aplican sobre una copia y se publican al confirmar.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// do ejecuta fn sobre el estado. Dentro de una transacción (tx != nil) el
// mutex ya está tomado por TxRunner.Run.
func (s *Store) do(tx *state, fn func(st *state) error) error {
	if tx != nil {
		return fn(tx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

// Run ejecuta fn sobre una copia del estado y la publica si no hay error.
func (s *Store) Run(ctx context.Context, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.st.clone()
	if err := fn(work); err != nil {
		return err
	}
	s.st = work
	return nil
}

// containsFold compara sin distinguir mayúsculas. cases.Caser no es seguro
// entre goroutines, por eso se crea uno por llamada.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(substr))
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
