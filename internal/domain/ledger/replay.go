package ledger

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// Replay pliega el ledger completo y devuelve la cantidad resultante por
// productID, aplicando la misma regla de acotado a 0 que ApplyMovement. El
// slice viene en orden newest-first (como se persiste), así que el pliegue
// recorre de atrás hacia adelante.
//
// Es la proyección "ledger como fuente de verdad": sirve para detectar deriva
// del campo denormalizado Product.Quantity (ver Reconcile en la capa de
// aplicación). Incluye productos eliminados — sus movimientos sobreviven.
func Replay(movements []entity.StockMovement) map[string]int {
	quantities := make(map[string]int)
	for i := len(movements) - 1; i >= 0; i-- {
		m := movements[i]
		switch m.Type {
		case entity.MovementTypeAddition:
			quantities[m.ProductID] += m.Quantity
		case entity.MovementTypeRemoval:
			q := quantities[m.ProductID] - m.Quantity
			if q < 0 {
				q = 0
			}
			quantities[m.ProductID] = q
		case entity.MovementTypeTransfer:
			// solo cambia ubicación; asegura que el producto figure en el mapa
			quantities[m.ProductID] += 0
		}
	}
	return quantities
}
