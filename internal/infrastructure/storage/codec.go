// Package storage implementa el adaptador de persistencia (BlobStore) sobre
// tres backends: archivos JSON, Redis y PostgreSQL. Todos comparten el mismo
// contrato: las dos colecciones viajan como blobs JSON completos bajo dos
// claves fijas, sin validación ni reglas de negocio.
package storage

import (
	"encoding/json"
	"fmt"
)

// Claves fijas de las dos colecciones.
const (
	productsKey  = "stockflow_products"
	movementsKey = "stockflow_movements"
)

func marshalBlob(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serializar blob: %w", err)
	}
	return data, nil
}

func unmarshalBlob(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("deserializar blob: %w", err)
	}
	return nil
}
