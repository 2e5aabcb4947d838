package ledger

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// StockStatus es la clasificación derivada (no persistida) de suficiencia de
// stock, usada solo para presentación.
type StockStatus string

// Clasificaciones posibles.
const (
	StatusLow     StockStatus = "Low"     // cantidad <= nivel de reorden
	StatusMedium  StockStatus = "Medium"  // cantidad <= nivel de reorden × 1.5
	StatusHealthy StockStatus = "Healthy"
)

// StatusOf clasifica el producto según su nivel de reorden.
// La comparación del umbral Medium (reorden × 1.5) se hace en enteros
// (2q <= 3r) para evitar redondeo flotante.
func StatusOf(p entity.Product) StockStatus {
	switch {
	case p.Quantity <= p.ReorderLevel:
		return StatusLow
	case 2*p.Quantity <= 3*p.ReorderLevel:
		return StatusMedium
	default:
		return StatusHealthy
	}
}
