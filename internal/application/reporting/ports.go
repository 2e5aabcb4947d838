package reporting

import (
	"context"
	"time"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// InventoryPDFGenerator genera el reporte de inventario en PDF.
// Implementado en infraestructura (Maroto); el caso de uso solo conoce el
// puerto.
type InventoryPDFGenerator interface {
	GenerateInventoryReport(ctx context.Context, products []entity.Product, generatedAt time.Time) ([]byte, error)
}
