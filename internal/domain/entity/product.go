package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un SKU del catálogo de inventario.
// Quantity es el acumulado denormalizado que se actualiza junto con cada
// movimiento aceptado; la única vía de escritura es el motor de ledger.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"` // único por convención, no lo garantiza el sistema
	Category     Category        `json:"category"`
	Quantity     int             `json:"quantity"`      // nunca negativo
	ReorderLevel int             `json:"reorder_level"` // umbral de stock bajo
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Supplier     string          `json:"supplier"`
	Location     string          `json:"location"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IsLowStock indica si el producto está en o bajo su nivel de reorden.
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// StockValue devuelve el valor del stock actual (cantidad × precio unitario).
func (p Product) StockValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
