package entity

// Permisos del POS.
const (
	PermStockMovements                  = "StockMovements"
	PermStockMovementsCreate            = "StockMovements.Create"
	PermStockMovementsEdit              = "StockMovements.Edit"
	PermStockMovementsDelete            = "StockMovements.Delete"
	PermStockMovementsAllBranches       = "StockMovements.AllBranches"
	PermStockMovementsPhysicalInventory = "StockMovements.PhysicalInventory"
	PermCatalogManage                   = "Catalog.Manage"
	PermDashboard                       = "Dashboard"
)

var rolePermissions = map[string][]string{
	RoleAdmin: {
		PermStockMovements,
		PermStockMovementsCreate,
		PermStockMovementsEdit,
		PermStockMovementsDelete,
		PermStockMovementsAllBranches,
		PermStockMovementsPhysicalInventory,
		PermCatalogManage,
		PermDashboard,
	},
	RoleBodeguero: {
		PermStockMovements,
		PermStockMovementsCreate,
		PermStockMovementsEdit,
		PermStockMovementsPhysicalInventory,
		PermDashboard,
	},
	RoleVendedor: {
		PermStockMovements,
		PermStockMovementsCreate,
		PermDashboard,
	},
}

// PermissionsForRole devuelve una copia de los permisos del rol (vacío si no existe).
func PermissionsForRole(role string) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// RoleHasPermission indica si el rol concede el permiso.
func RoleHasPermission(role, perm string) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}
