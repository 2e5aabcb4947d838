package storage

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// SeedCatalog devuelve el catálogo por defecto que se siembra en el primer
// arranque, cuando aún no existe blob de productos. Política de bootstrap
// del adaptador: el motor nunca se siembra a sí mismo.
func SeedCatalog(now time.Time) []entity.Product {
	seed := func(id, name, sku string, category entity.Category, quantity, reorder int, price float64, supplier, location string) entity.Product {
		return entity.Product{
			ID:           id,
			Name:         name,
			SKU:          sku,
			Category:     category,
			Quantity:     quantity,
			ReorderLevel: reorder,
			UnitPrice:    decimal.NewFromFloat(price),
			Supplier:     supplier,
			Location:     location,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	return []entity.Product{
		seed("1", "Ergonomic Chair", "FUR-001", entity.CategoryFurniture, 15, 5, 199.99, "Comfort Seating Co.", "Warehouse A-12"),
		seed("2", "Wireless Mouse", "ELE-042", entity.CategoryElectronics, 4, 10, 25.50, "TechGear Solutions", "Warehouse B-05"),
		seed("3", "Steel Bolts (100pk)", "RAW-882", entity.CategoryRawMaterials, 150, 50, 12.00, "Industrial Supply Inc.", "Warehouse C-01"),
		seed("4", "Oak Desk", "FUR-002", entity.CategoryFurniture, 8, 3, 450.00, "Comfort Seating Co.", "Warehouse A-14"),
		seed("5", "USB-C Cable 2m", "ELE-105", entity.CategoryElectronics, 45, 20, 15.99, "TechGear Solutions", "Warehouse B-02"),
		seed("6", "Aluminum Sheet 2x4", "RAW-112", entity.CategoryRawMaterials, 12, 15, 85.00, "MetalWorks Ltd.", "Warehouse C-05"),
		seed("7", "A4 Paper (500 sheets)", "OFF-001", entity.CategoryOfficeSupplies, 120, 30, 5.99, "PaperTrail Corp", "Warehouse A-01"),
		seed("8", "Cotton T-Shirt L", "APP-055", entity.CategoryApparel, 60, 25, 18.50, "Global Fabrics", "Warehouse D-10"),
		seed("9", "Coffee Beans 1kg", "FNB-001", entity.CategoryFoodBeverage, 22, 10, 24.99, "RoastMasters", "Warehouse E-01"),
		seed("10", "Monitor 27\"", "ELE-200", entity.CategoryElectronics, 2, 5, 299.99, "TechGear Solutions", "Warehouse B-08"),
	}
}
