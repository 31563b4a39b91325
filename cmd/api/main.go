// @title          POS API
// @version        1.0
// @description    Libro de movimientos de stock multi-sucursal para puntos de venta.
// @BasePath       /
// @securityDefinitions.apikey Bearer
// @in             header
// @name           Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/pos-api/docs"
	appanalytics "github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/inventory"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/cache"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/pos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/pos-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/pos-api/internal/interfaces/http"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// storage repositorios de la app sobre el backend elegido.
type storage struct {
	branches     repository.BranchRepository
	productTypes repository.ProductTypeRepository
	products     repository.ProductRepository
	users        repository.UserRepository
	movements    repository.StockMovementRepository
	queries      repository.StockQueryRepository
	tx           inventory.TxRunner
	close        func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}
	policy, err := inventory.ParseOversellPolicy(cfg.Stock.OversellPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("política de sobreventa")
	}
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	var st *storage
	switch cfg.App.Storage {
	case config.StorageMemory:
		st = memoryStorage()
	default:
		st, err = postgresStorage(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
	}
	defer st.close()

	// Caché de sucursales: Redis si está configurado, noop si no.
	branchCache, err := cache.NewBranchCache(cfg.Cache)
	if err != nil {
		log.Warn().Err(err).Msg("Redis no disponible, se continúa sin caché")
		branchCache = cache.NewNoopBranchCache()
	}
	defer branchCache.Close()
	branches := cache.NewCachedBranchRepository(st.branches, branchCache, log.Component("cache"))

	authUC := auth.NewAuthUseCase(st.users, branches, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if cfg.App.Storage == config.StorageMemory {
		seedAdmin(ctx, authUC, cfg.App, log)
	}

	movementUC := inventory.NewMovementUseCase(
		st.tx, st.movements, branches, st.products,
		infrapdf.NewMarotoReceiptGenerator(loc), policy, loc, log.Component("movements"),
	)
	reportUC := inventory.NewReportUseCase(st.queries, st.products, st.productTypes, infraxlsx.NewStockReportExporter(), loc)
	dashboardUC := appanalytics.NewDashboardUseCase(st.queries, loc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.App.Storage})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        usecase.NewUserUseCase(st.users),
		BranchUC:      usecase.NewBranchUseCase(branches),
		ProductTypeUC: usecase.NewProductTypeUseCase(st.productTypes),
		ProductUC:     usecase.NewProductUseCase(st.products, st.productTypes),
		MovementUC:    movementUC,
		ReportUC:      reportUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
		Location:      loc,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func memoryStorage() *storage {
	s := memory.NewStore()
	return &storage{
		branches:     memory.NewBranchRepository(s),
		productTypes: memory.NewProductTypeRepository(s),
		products:     memory.NewProductRepository(s),
		users:        memory.NewUserRepository(s),
		movements:    memory.NewStockMovementRepository(s),
		queries:      memory.NewStockQueryRepository(s),
		tx:           memory.NewTxRunner(s),
		close:        func() {},
	}
}

func postgresStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.DB.AutoMigrate {
		m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log.Component("migrate"))
		if err != nil {
			return nil, err
		}
		err = m.Up()
		if cerr := m.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("cerrar migrador")
		}
		if err != nil {
			return nil, err
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &storage{
		branches:     postgres.NewBranchRepository(pool),
		productTypes: postgres.NewProductTypeRepository(pool),
		products:     postgres.NewProductRepository(pool),
		users:        postgres.NewUserRepository(pool),
		movements:    postgres.NewStockMovementRepository(pool),
		queries:      postgres.NewStockQueryRepository(pool),
		tx:           postgres.NewTxRunner(pool),
		close:        pool.Close,
	}, nil
}

// seedAdmin crea el admin del modo memory; sin ADMIN_PASSWORD no hay usuarios.
func seedAdmin(ctx context.Context, authUC *auth.AuthUseCase, app config.AppConfig, log *logger.Logger) {
	if app.AdminPassword == "" {
		log.Warn().Msg("ADMIN_PASSWORD vacío: el store en memoria arranca sin usuarios")
		return
	}
	_, err := authUC.CreateUser(ctx, dto.CreateUserRequest{
		Username: app.AdminUsername,
		Password: app.AdminPassword,
		Name:     "Administrador",
		Role:     entity.RoleAdmin,
	})
	if err != nil && err != domain.ErrDuplicate {
		log.Fatal().Err(err).Msg("sembrar admin")
	}
	log.Info().Str("username", app.AdminUsername).Msg("admin sembrado en memoria")
}
