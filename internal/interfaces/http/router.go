package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockflow/stockflow-api/internal/application/analytics"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/application/reporting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	DashboardUC *analytics.DashboardUseCase
	ReportingUC *reporting.UseCase
	Barcode     BarcodeGenerator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.InventoryUC, deps.Barcode)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/barcode", productHandler.Barcode)

	// Inventory movements + reconciliación
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/reconciliation", inventoryHandler.Reconciliation)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportingUC)
	reports.Get("/inventory.csv", reportHandler.ExportCSV)
	reports.Get("/inventory.pdf", reportHandler.ExportPDF)
}
