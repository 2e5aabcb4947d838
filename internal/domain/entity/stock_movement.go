package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeAddition = "addition" // entrada
	MovementTypeRemoval  = "removal"  // salida (cantidad acotada a 0)
	MovementTypeTransfer = "transfer" // cambio de ubicación, cantidad intacta
)

// LocationNotApplicable es el centinela de FromLocation cuando no hay
// ubicación de origen (ej. el movimiento de apertura al crear un producto).
const LocationNotApplicable = "N/A"

// StockMovement es una entrada inmutable del ledger: nunca se edita ni se
// borra una vez registrada. ProductID es referencia débil — puede quedar
// colgando si el producto se elimina, el historial sobrevive.
type StockMovement struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"` // snapshot al momento de registrar
	Type         string    `json:"type"`
	Quantity     int       `json:"quantity"` // magnitud positiva, no delta con signo
	FromLocation string    `json:"from_location,omitempty"`
	ToLocation   string    `json:"to_location,omitempty"` // solo en transfer
	Reason       string    `json:"reason"`
	Timestamp    time.Time `json:"timestamp"`
}
