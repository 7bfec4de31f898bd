package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/application/inventory"
	"github.com/jhoicas/GestionVentas-api/internal/application/sales"
	"github.com/jhoicas/GestionVentas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC       *usecase.ClientUseCase
	ProductUC      *usecase.ProductUseCase
	SupplierUC     *usecase.SupplierUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	ReportUC       *usecase.ReportUseCase
	InventoryUC    *inventory.InventoryUseCase
	SaleQueryUC    *sales.SaleQueryUseCase
	RegisterSaleUC *sales.RegisterSaleLineUseCase
	ReceiptUC      *sales.ReceiptUseCase

	// Ping comprueba la BD para /health. nil = siempre ok.
	Ping func(ctx context.Context) error
}

// Router registra las rutas de la API. Las rutas mantienen los nombres que usa el cliente web.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps.Ping))

	clients := app.Group("/clientes")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Delete("/:id", clientHandler.Delete)

	products := app.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Delete("/:id", productHandler.Delete)

	suppliers := app.Group("/proveedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Delete("/:id", supplierHandler.Delete)

	employees := app.Group("/empleados")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Delete("/:id", employeeHandler.Delete)

	// Ventas
	salesGroup := app.Group("/ventas")
	saleHandler := NewSaleHandler(deps.SaleQueryUC, deps.RegisterSaleUC, deps.ReceiptUC)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Post("/detalle", saleHandler.RegisterLine)
	salesGroup.Get("/:id/detalle", saleHandler.Lines)
	salesGroup.Get("/:id/comprobante", saleHandler.Receipt)

	inv := app.Group("/inventario")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", inventoryHandler.Initialize)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	app.Get("/estadisticas/productos", reportHandler.ProductStats)
	app.Get("/producto-mas-vendido", reportHandler.BestSeller)
}

func healthHandler(ping func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				return respondError(c, err, errMessages{op: "health", internal: "base de datos no disponible"})
			}
		}
		return c.JSON(dto.MessageResponse{Message: "ok"})
	}
}
