// Package ledger implementa el motor de ledger de inventario: lógica de
// dominio pura, sin I/O ni dependencias externas. Dado el estado actual de un
// producto y un movimiento propuesto, calcula el producto resultante y el
// registro canónico a persistir. Los invariantes viven aquí:
//
//   - la cantidad de un producto nunca es negativa (las salidas se acotan a 0)
//   - los movimientos son append-only e inmutables
//   - la cantidad solo cambia vía movimientos, nunca por edición directa
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// InitialStockReason es el motivo del movimiento de apertura sintetizado al
// crear un producto con cantidad inicial > 0.
const InitialStockReason = "Initial stock entry"

// ProductDraft son los campos de un producto nuevo, sin ID ni timestamps
// (los asigna el motor).
type ProductDraft struct {
	Name         string
	SKU          string
	Category     entity.Category
	Quantity     int
	ReorderLevel int
	UnitPrice    decimal.Decimal
	Supplier     string
	Location     string
}

// MovementRequest es un movimiento propuesto sobre un producto existente.
type MovementRequest struct {
	Type       string
	Quantity   int
	Reason     string // opcional; se genera uno por defecto si viene vacío
	ToLocation string // obligatorio si Type == transfer
}

// MovementDraft es el registro canónico del movimiento, sin ID ni timestamp
// (los asigna la capa de aplicación al persistirlo).
type MovementDraft struct {
	ProductID    string
	ProductName  string
	Type         string
	Quantity     int
	FromLocation string
	ToLocation   string
	Reason       string
}

// NewProduct construye un producto a partir del draft, con created/updated
// iguales en la creación. Si la cantidad inicial es > 0 sintetiza además el
// movimiento de apertura (addition, motivo fijo, FromLocation = N/A).
func NewProduct(draft ProductDraft, id string, now time.Time) (entity.Product, *MovementDraft) {
	product := entity.Product{
		ID:           id,
		Name:         draft.Name,
		SKU:          draft.SKU,
		Category:     draft.Category,
		Quantity:     draft.Quantity,
		ReorderLevel: draft.ReorderLevel,
		UnitPrice:    draft.UnitPrice,
		Supplier:     draft.Supplier,
		Location:     draft.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if draft.Quantity <= 0 {
		return product, nil
	}
	return product, &MovementDraft{
		ProductID:    product.ID,
		ProductName:  product.Name,
		Type:         entity.MovementTypeAddition,
		Quantity:     draft.Quantity,
		FromLocation: entity.LocationNotApplicable,
		ToLocation:   product.Location,
		Reason:       InitialStockReason,
	}
}

// ValidateRequest valida el movimiento propuesto antes de aplicarlo:
// tipo conocido, cantidad positiva y destino presente en transfer.
func ValidateRequest(req MovementRequest) error {
	switch req.Type {
	case entity.MovementTypeAddition, entity.MovementTypeRemoval:
		if req.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeTransfer:
		if req.Quantity <= 0 || req.ToLocation == "" {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// ApplyMovement aplica el movimiento al producto y produce el registro a
// persistir. FromLocation es siempre la ubicación previa al cambio.
//
//   - addition: cantidad += req.Quantity
//   - removal:  cantidad -= req.Quantity, acotada a 0 (sin error al pasarse)
//   - transfer: cantidad intacta, ubicación := req.ToLocation
func ApplyMovement(product entity.Product, req MovementRequest, now time.Time) (entity.Product, MovementDraft, error) {
	if err := ValidateRequest(req); err != nil {
		return product, MovementDraft{}, err
	}

	draft := MovementDraft{
		ProductID:    product.ID,
		ProductName:  product.Name,
		Type:         req.Type,
		Quantity:     req.Quantity,
		FromLocation: product.Location,
		Reason:       req.Reason,
	}
	if draft.Reason == "" {
		draft.Reason = DefaultReason(req.Type, req.Quantity)
	}

	switch req.Type {
	case entity.MovementTypeAddition:
		product.Quantity += req.Quantity
	case entity.MovementTypeRemoval:
		product.Quantity -= req.Quantity
		if product.Quantity < 0 {
			product.Quantity = 0
		}
	case entity.MovementTypeTransfer:
		draft.ToLocation = req.ToLocation
		product.Location = req.ToLocation
	}
	product.UpdatedAt = now

	return product, draft, nil
}

// MergePatch aplica un parche parcial sobre el producto y actualiza
// UpdatedAt. La cantidad NO es parte del parche: se maneja exclusivamente
// vía movimientos para no saltarse el ledger.
func MergePatch(product entity.Product, patch ProductPatch, now time.Time) entity.Product {
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.SKU != nil {
		product.SKU = *patch.SKU
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.ReorderLevel != nil {
		product.ReorderLevel = *patch.ReorderLevel
	}
	if patch.UnitPrice != nil {
		product.UnitPrice = *patch.UnitPrice
	}
	if patch.Supplier != nil {
		product.Supplier = *patch.Supplier
	}
	if patch.Location != nil {
		product.Location = *patch.Location
	}
	product.UpdatedAt = now
	return product
}

// ProductPatch es el conjunto parcial de cambios de atributos de un producto.
type ProductPatch struct {
	Name         *string
	SKU          *string
	Category     *entity.Category
	ReorderLevel *int
	UnitPrice    *decimal.Decimal
	Supplier     *string
	Location     *string
}

// DefaultReason genera el motivo por defecto, ej: "Addition of 20 units".
func DefaultReason(movType string, quantity int) string {
	capitalized := movType
	if len(capitalized) > 0 {
		capitalized = string(capitalized[0]-'a'+'A') + capitalized[1:]
	}
	return fmt.Sprintf("%s of %d units", capitalized, quantity)
}
