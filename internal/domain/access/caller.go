// Package access resuelve el alcance por sucursal de cada operación a partir
// del llamador, que se pasa explícitamente a los casos de uso.
package access

import (
	"slices"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// Caller identidad y capacidades del usuario que ejecuta la operación.
type Caller struct {
	UserID      string
	Role        string
	BranchID    string // sucursal asignada; vacío si no tiene
	Permissions []string
}

// NewCaller construye el Caller con los permisos del rol.
func NewCaller(userID, role, branchID string) Caller {
	return Caller{
		UserID:      userID,
		Role:        role,
		BranchID:    branchID,
		Permissions: entity.PermissionsForRole(role),
	}
}

// Has indica si el llamador tiene el permiso.
func (c Caller) Has(perm string) bool {
	return slices.Contains(c.Permissions, perm)
}

// AllBranches indica si el llamador puede operar sobre cualquier sucursal.
func (c Caller) AllBranches() bool {
	return c.Has(entity.PermStockMovementsAllBranches)
}

// ResolveBranch determina la sucursal de una operación de escritura.
// Con AllBranches la sucursal es obligatoria; sin ella se fuerza la asignada,
// ignorando la solicitada.
func ResolveBranch(c Caller, requested string) (string, error) {
	if c.AllBranches() {
		if requested == "" {
			return "", domain.ErrBranchRequired
		}
		return requested, nil
	}
	if c.BranchID == "" {
		return "", domain.ErrNoBranchAssigned
	}
	return c.BranchID, nil
}

// ResolveOptionalBranch como ResolveBranch, pero con AllBranches una sucursal
// vacía significa "todas" (consultas y reportes).
func ResolveOptionalBranch(c Caller, requested string) (string, error) {
	if c.AllBranches() {
		return requested, nil
	}
	if c.BranchID == "" {
		return "", domain.ErrNoBranchAssigned
	}
	return c.BranchID, nil
}

// CheckBranch verifica que el llamador pueda ver un registro de branchID.
func CheckBranch(c Caller, branchID string) error {
	if c.AllBranches() || c.BranchID == branchID {
		return nil
	}
	return domain.ErrCrossBranch
}
