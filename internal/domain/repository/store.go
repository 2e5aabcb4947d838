package repository

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// BlobStore es el adaptador de persistencia: carga y guarda las dos
// colecciones como blobs completos (leer todo, mutar en memoria, escribir
// todo). No valida ni aplica reglas de negocio.
//
// Contratos:
//   - LoadProducts devuelve el catálogo sembrado por defecto en el primer
//     arranque (política de bootstrap del adaptador, no del motor).
//   - LoadMovements devuelve slice vacío si no hay nada registrado.
//   - Los movimientos se guardan y devuelven en orden newest-first.
//   - Save* sobrescribe la colección completa (last write wins).
type BlobStore interface {
	LoadProducts(ctx context.Context) ([]entity.Product, error)
	SaveProducts(ctx context.Context, products []entity.Product) error
	LoadMovements(ctx context.Context) ([]entity.StockMovement, error)
	SaveMovements(ctx context.Context, movements []entity.StockMovement) error
}
