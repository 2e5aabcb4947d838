package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento de stock.
// ToLocation es obligatorio cuando Type es transfer.
type RegisterMovementRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=addition removal transfer"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	Reason     string `json:"reason"`
	ToLocation string `json:"to_location" validate:"required_if=Type transfer"`
}

// MovementResponse salida de una entrada del ledger.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	Type         string    `json:"type"`
	Quantity     int       `json:"quantity"`
	FromLocation string    `json:"from_location,omitempty"`
	ToLocation   string    `json:"to_location,omitempty"`
	Reason       string    `json:"reason"`
	Timestamp    time.Time `json:"timestamp"`
}

// MovementListResponse movimientos en orden newest-first.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// ReconciliationEntryDTO deriva entre la cantidad denormalizada del producto
// y la proyección obtenida plegando el ledger.
type ReconciliationEntryDTO struct {
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	StoredQuantity int    `json:"stored_quantity"`
	LedgerQuantity int    `json:"ledger_quantity"`
	Drift          int    `json:"drift"` // stored - ledger
}

// ReconciliationResponse reporte de consistencia ledger vs. catálogo.
type ReconciliationResponse struct {
	Consistent bool                     `json:"consistent"`
	Entries    []ReconciliationEntryDTO `json:"entries"` // solo productos con deriva
	CheckedAt  time.Time                `json:"checked_at"`
}
