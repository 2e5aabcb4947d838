package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/ledger"
)

// Reconcile compara la cantidad denormalizada de cada producto vivo contra
// la proyección obtenida plegando el ledger completo. La escritura doble
// (catálogo + movimiento) puede derivar si una de las dos falla; este reporte
// hace ese riesgo observable en vez de silencioso.
//
// Un producto sin movimientos con cantidad > 0 también cuenta como deriva:
// su apertura debió quedar registrada.
func (uc *UseCase) Reconcile(ctx context.Context) (*dto.ReconciliationResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}
	movements, err := uc.store.LoadMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar movimientos: %w", err)
	}

	projected := ledger.Replay(movements)

	var entries []dto.ReconciliationEntryDTO
	for _, p := range products {
		fromLedger := projected[p.ID]
		if p.Quantity == fromLedger {
			continue
		}
		entries = append(entries, dto.ReconciliationEntryDTO{
			ProductID:      p.ID,
			ProductName:    p.Name,
			StoredQuantity: p.Quantity,
			LedgerQuantity: fromLedger,
			Drift:          p.Quantity - fromLedger,
		})
	}

	return &dto.ReconciliationResponse{
		Consistent: len(entries) == 0,
		Entries:    entries,
		CheckedAt:  time.Now(),
	}, nil
}
