package repository

import (
	"context"
	"time"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/sorting"
)

// MovementFilter criterios del listado de cabeceras.
type MovementFilter struct {
	BranchID         string // vacío = todas
	Type             entity.MovementType
	IncludeCancelled bool
	Start            *time.Time
	EndExclusive     *time.Time
	Sort             sorting.Spec
	Limit            int
	Offset           int
}

// StockMovementRepository define el puerto de escritura del libro de movimientos.
// Create y Update persisten cabecera y líneas; deben ejecutarse dentro de una transacción.
type StockMovementRepository interface {
	// NextSeq reserva el siguiente número de la secuencia de movimientos.
	NextSeq(ctx context.Context) (int64, error)
	Create(ctx context.Context, h *entity.StockMovementHeader) error
	// GetByID devuelve la cabecera con sus líneas, o (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.StockMovementHeader, error)
	// Update reemplaza los campos de la cabecera y todas sus líneas.
	// ErrMovementCancelled si la cabecera ya está anulada al escribir.
	Update(ctx context.Context, h *entity.StockMovementHeader) error
	// SetCancelled persiste la anulación (flag, descripción y auditoría).
	// Sobre una cabecera ya anulada no escribe nada.
	SetCancelled(ctx context.Context, h *entity.StockMovementHeader) error
	// List devuelve cabeceras sin líneas y el total sin paginar.
	List(ctx context.Context, f MovementFilter) ([]*entity.StockMovementHeader, int, error)
	// LockBranch serializa los egresos de una sucursal hasta el fin de la transacción.
	LockBranch(ctx context.Context, branchID string) error
}
