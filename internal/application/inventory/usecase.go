// Package inventory orquesta el motor de ledger contra el adaptador de
// persistencia. Es el único dueño de las dos colecciones: toda mutación de
// productos y movimientos pasa por este caso de uso; la capa HTTP es un
// observador puro que relee tras cada operación.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/ledger"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// UseCase casos de uso del inventario: ciclo de vida de productos y registro
// de movimientos. El mutex serializa a los escritores dentro del proceso; el
// modelo sigue siendo un único escritor activo (sin OCC).
type UseCase struct {
	store repository.BlobStore
	mu    sync.Mutex
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.BlobStore) *UseCase {
	return &UseCase{store: store}
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

// CreateProduct crea un producto nuevo. Si la cantidad inicial es > 0 el
// motor sintetiza el movimiento de apertura y este se registra en el ledger.
func (uc *UseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category := entity.Category(in.Category)
	if !category.Valid() || in.Quantity < 0 || in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}

	product, opening := ledger.NewProduct(ledger.ProductDraft{
		Name:         in.Name,
		SKU:          in.SKU,
		Category:     category,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		UnitPrice:    in.UnitPrice,
		Supplier:     in.Supplier,
		Location:     in.Location,
	}, uuid.New().String(), time.Now())

	// El producto nuevo va al frente, como el resto de la colección (newest-first)
	products = append([]entity.Product{product}, products...)
	if err := uc.store.SaveProducts(ctx, products); err != nil {
		return nil, fmt.Errorf("guardar productos: %w", err)
	}

	if opening != nil {
		if _, err := uc.recordMovement(ctx, *opening); err != nil {
			return nil, err
		}
	}

	out := toProductResponse(product)
	return &out, nil
}

// GetProduct obtiene un producto por ID.
func (uc *UseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}
	for _, p := range products {
		if p.ID == id {
			out := toProductResponse(p)
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListQuery parámetros de búsqueda/filtro/orden del listado de productos.
type ListQuery struct {
	Search    string // substring sobre nombre, SKU o proveedor (case-insensitive)
	Category  string // vacío = todas
	SortField string // name | sku | category | quantity | unit_price (default name)
	SortOrder string // asc | desc (default asc)
}

// ListProducts lista productos aplicando búsqueda, filtro por categoría y
// orden. Replica el comportamiento de la tabla de inventario original.
func (uc *UseCase) ListProducts(ctx context.Context, q ListQuery) (*dto.ProductListResponse, error) {
	products, err := uc.filteredProducts(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// FilteredProducts expone el listado filtrado/ordenado como entidades, para
// la capa de reportes (CSV/PDF exportan exactamente lo filtrado).
func (uc *UseCase) FilteredProducts(ctx context.Context, q ListQuery) ([]entity.Product, error) {
	return uc.filteredProducts(ctx, q)
}

func (uc *UseCase) filteredProducts(ctx context.Context, q ListQuery) ([]entity.Product, error) {
	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}

	filtered := products[:0:0]
	search := strings.ToLower(q.Search)
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) &&
			!strings.Contains(strings.ToLower(p.Supplier), search) {
			continue
		}
		if q.Category != "" && string(p.Category) != q.Category {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, q.SortField, q.SortOrder)
	return filtered, nil
}

func sortProducts(products []entity.Product, field, order string) {
	desc := order == "desc"
	less := func(a, b entity.Product) bool {
		switch field {
		case "sku":
			return a.SKU < b.SKU
		case "category":
			return a.Category < b.Category
		case "quantity":
			return a.Quantity < b.Quantity
		case "unit_price":
			return a.UnitPrice.LessThan(b.UnitPrice)
		default: // name
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

// UpdateProduct aplica un parche parcial de atributos. La cantidad no es
// parcheable: un edit directo se saltaría el ledger.
func (uc *UseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	patch := ledger.ProductPatch{
		Name:         in.Name,
		SKU:          in.SKU,
		ReorderLevel: in.ReorderLevel,
		UnitPrice:    in.UnitPrice,
		Supplier:     in.Supplier,
		Location:     in.Location,
	}
	if in.Category != nil {
		category := entity.Category(*in.Category)
		if !category.Valid() {
			return nil, domain.ErrInvalidInput
		}
		patch.Category = &category
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}

	for i, p := range products {
		if p.ID != id {
			continue
		}
		products[i] = ledger.MergePatch(p, patch, time.Now())
		if err := uc.store.SaveProducts(ctx, products); err != nil {
			return nil, fmt.Errorf("guardar productos: %w", err)
		}
		out := toProductResponse(products[i])
		return &out, nil
	}
	return nil, domain.ErrNotFound
}

// DeleteProduct elimina el registro del producto. Sus movimientos quedan
// intactos: el historial sobrevive con referencia colgante por diseño.
func (uc *UseCase) DeleteProduct(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return fmt.Errorf("cargar productos: %w", err)
	}

	remaining := products[:0:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, p)
	}
	if !found {
		return domain.ErrNotFound
	}
	if err := uc.store.SaveProducts(ctx, remaining); err != nil {
		return fmt.Errorf("guardar productos: %w", err)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

// RegisterMovement aplica un movimiento al producto referenciado y registra
// la entrada del ledger. Escritura doble en lockstep: primero el catálogo con
// la cantidad nueva, después el movimiento (mismo orden que el sistema
// original; Reconcile detecta deriva si una de las dos escrituras falla).
func (uc *UseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	req := ledger.MovementRequest{
		Type:       in.Type,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
		ToLocation: in.ToLocation,
	}
	if err := ledger.ValidateRequest(req); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}

	for i, p := range products {
		if p.ID != in.ProductID {
			continue
		}
		updated, draft, err := ledger.ApplyMovement(p, req, time.Now())
		if err != nil {
			return nil, err
		}
		products[i] = updated
		if err := uc.store.SaveProducts(ctx, products); err != nil {
			return nil, fmt.Errorf("guardar productos: %w", err)
		}
		recorded, err := uc.recordMovement(ctx, draft)
		if err != nil {
			return nil, err
		}
		out := toMovementResponse(recorded)
		return &out, nil
	}
	return nil, domain.ErrNotFound
}

// ListMovements devuelve el historial en orden newest-first, opcionalmente
// filtrado por producto. Incluye movimientos de productos ya eliminados.
func (uc *UseCase) ListMovements(ctx context.Context, productID string) (*dto.MovementListResponse, error) {
	movements, err := uc.store.LoadMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar movimientos: %w", err)
	}

	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		if productID != "" && m.ProductID != productID {
			continue
		}
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// recordMovement asigna ID y timestamp, antepone (newest-first) y guarda.
// Caller debe tener el mutex tomado.
func (uc *UseCase) recordMovement(ctx context.Context, draft ledger.MovementDraft) (entity.StockMovement, error) {
	movements, err := uc.store.LoadMovements(ctx)
	if err != nil {
		return entity.StockMovement{}, fmt.Errorf("cargar movimientos: %w", err)
	}

	movement := entity.StockMovement{
		ID:           uuid.New().String(),
		ProductID:    draft.ProductID,
		ProductName:  draft.ProductName,
		Type:         draft.Type,
		Quantity:     draft.Quantity,
		FromLocation: draft.FromLocation,
		ToLocation:   draft.ToLocation,
		Reason:       draft.Reason,
		Timestamp:    time.Now(),
	}
	movements = append([]entity.StockMovement{movement}, movements...)
	if err := uc.store.SaveMovements(ctx, movements); err != nil {
		return entity.StockMovement{}, fmt.Errorf("guardar movimientos: %w", err)
	}
	return movement, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeos
// ──────────────────────────────────────────────────────────────────────────────

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Category:     string(p.Category),
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		UnitPrice:    p.UnitPrice,
		Supplier:     p.Supplier,
		Location:     p.Location,
		Status:       string(ledger.StatusOf(p)),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toMovementResponse(m entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		ProductName:  m.ProductName,
		Type:         m.Type,
		Quantity:     m.Quantity,
		FromLocation: m.FromLocation,
		ToLocation:   m.ToLocation,
		Reason:       m.Reason,
		Timestamp:    m.Timestamp,
	}
}
