package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/inventory"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	BranchUC      *usecase.BranchUseCase
	ProductTypeUC *usecase.ProductTypeUseCase
	ProductUC     *usecase.ProductUseCase
	MovementUC    *inventory.MovementUseCase
	ReportUC      *inventory.ReportUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
	Location      *time.Location // interpreta fechas YYYY-MM-DD de la query
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/users", RequireRole(entity.RoleAdmin), authHandler.CreateUser)

	manage := RequirePermission(entity.PermCatalogManage)

	// Branches: lectura para todos, escritura Catalog.Manage
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Get("/lookup", branchHandler.Lookup)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Post("/", manage, branchHandler.Create)
	branches.Put("/:id", manage, branchHandler.Update)
	branches.Delete("/:id", manage, branchHandler.Delete)

	types := protected.Group("/product-types")
	typeHandler := NewProductTypeHandler(deps.ProductTypeUC)
	types.Get("/", typeHandler.List)
	types.Get("/:id", typeHandler.GetByID)
	types.Post("/", manage, typeHandler.Create)
	types.Put("/:id", manage, typeHandler.Update)
	types.Delete("/:id", manage, typeHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", manage, productHandler.Create)
	products.Put("/:id", manage, productHandler.Update)
	products.Delete("/:id", manage, productHandler.Delete)

	// Movimientos y reportes. Las rutas fijas van antes de /:id.
	movements := protected.Group("/stock-movements", RequirePermission(entity.PermStockMovements))
	movementHandler := NewStockMovementHandler(deps.MovementUC, deps.Location)
	reportHandler := NewReportHandler(deps.ReportUC, deps.Location)

	movements.Get("/product-movements", reportHandler.ProductMovements)
	movements.Get("/stock-report", reportHandler.StockReport)
	movements.Get("/stock-report/export", reportHandler.StockReportExport)
	movements.Get("/product-stock-list", reportHandler.ProductStockList)
	movements.Get("/on-hand", reportHandler.OnHand)
	movements.Get("/on-hand/map", reportHandler.OnHandMap)

	movements.Post("/add-stock", movementHandler.AddStock)
	movements.Post("/checkout-cart", movementHandler.CheckoutCart)
	movements.Post("/adjust-stock", movementHandler.AdjustStock)
	movements.Post("/physical-inventory", movementHandler.PhysicalInventory)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Post("/:id/cancel", movementHandler.Cancel)
	movements.Get("/:id/receipt", movementHandler.Receipt)

	dashboard := protected.Group("/dashboard", RequirePermission(entity.PermDashboard))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Location)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/daily-sales", dashboardHandler.DailySales)
	dashboard.Get("/stock-by-product-type", dashboardHandler.StockByProductType)
}
