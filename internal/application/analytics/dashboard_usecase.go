// Package analytics contiene las vistas derivadas del inventario: alertas de
// stock bajo, valoración, actividad semanal y desglose por categoría. Todo se
// recalcula bajo demanda, nada se persiste.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

const dashboardLowStockItems = 5 // número de alertas en el widget del dashboard

// DashboardUseCase construye el resumen de operaciones. Lector puro: solo
// consume el BlobStore, nunca escribe.
type DashboardUseCase struct {
	store repository.BlobStore
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.BlobStore) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// GetSummary calcula el DashboardSummaryDTO sobre el estado actual.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: cargar productos: %w", err)
	}
	movements, err := uc.store.LoadMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: cargar movimientos: %w", err)
	}

	lowStock := lowStockSet(products)
	items := make([]dto.LowStockItemDTO, 0, dashboardLowStockItems)
	for _, p := range lowStock {
		if len(items) == dashboardLowStockItems {
			break
		}
		items = append(items, dto.LowStockItemDTO{
			ID:           p.ID,
			Name:         p.Name,
			SKU:          p.SKU,
			Quantity:     p.Quantity,
			ReorderLevel: p.ReorderLevel,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:     len(products),
		LowStockCount:     len(lowStock),
		InventoryValue:    InventoryValue(products),
		WeeklyMovements:   WeeklyMovementCount(movements, time.Now()),
		CategoryBreakdown: categoryBreakdown(products),
		LowStockItems:     items,
	}, nil
}

// lowStockSet devuelve los productos con cantidad en o bajo su nivel de
// reorden, en el orden de la colección.
func lowStockSet(products []entity.Product) []entity.Product {
	low := products[:0:0]
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}

// InventoryValue suma cantidad × precio unitario sobre todo el catálogo,
// redondeada a 2 decimales.
func InventoryValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.StockValue())
	}
	return total.Round(2)
}

// WeeklyMovementCount cuenta los movimientos con timestamp en o después del
// inicio de la semana calendario en curso. La semana empieza el DOMINGO a
// las 00:00 locales (convención del sistema original).
func WeeklyMovementCount(movements []entity.StockMovement, now time.Time) int {
	weekStart := startOfWeek(now)
	count := 0
	for _, m := range movements {
		if !m.Timestamp.Before(weekStart) {
			count++
		}
	}
	return count
}

// startOfWeek devuelve la medianoche del domingo más reciente.
func startOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// categoryBreakdown suma cantidades por categoría preservando el orden de
// primera aparición, para que el gráfico sea determinista.
func categoryBreakdown(products []entity.Product) []dto.CategoryCountDTO {
	index := make(map[entity.Category]int)
	breakdown := make([]dto.CategoryCountDTO, 0, len(entity.Categories))
	for _, p := range products {
		i, seen := index[p.Category]
		if !seen {
			index[p.Category] = len(breakdown)
			breakdown = append(breakdown, dto.CategoryCountDTO{Name: string(p.Category)})
			i = len(breakdown) - 1
		}
		breakdown[i].Value += p.Quantity
	}
	return breakdown
}
