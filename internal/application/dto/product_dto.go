package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Quantity es la
// cantidad inicial: si es > 0 se registra el movimiento de apertura.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	SKU          string          `json:"sku" validate:"required,min=1,max=100"`
	Category     string          `json:"category" validate:"required"`
	Quantity     int             `json:"quantity" validate:"min=0"`
	ReorderLevel int             `json:"reorder_level" validate:"min=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Supplier     string          `json:"supplier"`
	Location     string          `json:"location"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Quantity:
// la cantidad se maneja vía movimientos).
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SKU          *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Category     *string          `json:"category"`
	ReorderLevel *int             `json:"reorder_level" validate:"omitempty,min=0"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Supplier     *string          `json:"supplier"`
	Location     *string          `json:"location"`
}

// ProductResponse salida de un producto, con el estado de stock derivado.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Supplier     string          `json:"supplier"`
	Location     string          `json:"location"`
	Status       string          `json:"status"` // Low | Medium | Healthy (no persistido)
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos tras búsqueda/filtro/orden.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
