package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/jhoicas/GestionVentas-api/internal/application/inventory"
	"github.com/jhoicas/GestionVentas-api/internal/application/sales"
	"github.com/jhoicas/GestionVentas-api/internal/application/usecase"
	infracache "github.com/jhoicas/GestionVentas-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/GestionVentas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/GestionVentas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/GestionVentas-api/internal/interfaces/http"
	"github.com/jhoicas/GestionVentas-api/pkg/config"
	"github.com/jhoicas/GestionVentas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.HTTP.Addr()).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Los defers de run cierran pool y Redis antes de salir.
	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("aplicación finalizada con error")
		stop()
		os.Exit(1)
	}
	log.Info().Msg("aplicación detenida")
}

// run arma dependencias, sirve HTTP y bloquea hasta que ctx se cancela.
func run(ctx context.Context, cfg *config.Config) error {
	if cfg.DB.AutoMigrate {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
			return fmt.Errorf("migraciones: %w", err)
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de reportes: opcional, sin REDIS_ADDR se lee siempre de la BD.
	var reportCache usecase.ReportCache = infracache.NoopCache{}
	if cfg.Redis.Enabled() {
		rc, err := infracache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, reportes sin caché")
		} else {
			defer rc.Close()
			reportCache = rc
		}
	}

	reportUC := usecase.NewReportUseCase(reportRepo, reportCache)
	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name, language.Spanish)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Gestión de Ventas API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:       usecase.NewClientUseCase(clientRepo),
		ProductUC:      usecase.NewProductUseCase(productRepo),
		SupplierUC:     usecase.NewSupplierUseCase(supplierRepo),
		EmployeeUC:     usecase.NewEmployeeUseCase(employeeRepo),
		ReportUC:       reportUC,
		InventoryUC:    inventory.NewInventoryUseCase(inventoryRepo),
		SaleQueryUC:    sales.NewSaleQueryUseCase(saleRepo),
		RegisterSaleUC: sales.NewRegisterSaleLineUseCase(txRunner, reportUC),
		ReceiptUC:      sales.NewReceiptUseCase(saleRepo, receiptGen),
		Ping:           pool.Ping,
	})

	// Cliente web estático en "/". Va después de la API para no tapar sus rutas.
	if st, err := os.Stat(cfg.HTTP.PublicDir); err == nil && st.IsDir() {
		app.Static("/", cfg.HTTP.PublicDir)
	}

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("servidor HTTP: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("apagado del servidor: %w", err)
	}
	return nil
}
