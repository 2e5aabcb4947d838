package dto

import "github.com/shopspring/decimal"

// CategoryCountDTO cantidad total por categoría, en orden de primera
// aparición (determinista para el gráfico).
type CategoryCountDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// LowStockItemDTO widget de alertas de stock bajo.
type LowStockItemDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorder_level"`
}

// DashboardSummaryDTO resumen de operaciones para el dashboard.
type DashboardSummaryDTO struct {
	TotalProducts     int                `json:"total_products"`
	LowStockCount     int                `json:"low_stock_count"`
	InventoryValue    decimal.Decimal    `json:"inventory_value"`
	WeeklyMovements   int                `json:"weekly_movements"`
	CategoryBreakdown []CategoryCountDTO `json:"category_breakdown"`
	LowStockItems     []LowStockItemDTO  `json:"low_stock_items"` // primeros 5
}
