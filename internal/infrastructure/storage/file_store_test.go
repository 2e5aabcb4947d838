package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

func newMemStore() *FileStore {
	return NewFileStoreWithFs(afero.NewMemMapFs(), "/data")
}

func TestFileStore_SiembraCatalogoEnPrimerArranque(t *testing.T) {
	store := newMemStore()

	products, err := store.LoadProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 10)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "Ergonomic Chair", products[0].Name)
	assert.Equal(t, "ELE-200", products[9].SKU)

	// La siembra debe quedar persistida: una segunda carga lee el archivo,
	// no vuelve a sembrar.
	again, err := store.LoadProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, products, again)
}

func TestFileStore_RoundTripProductos(t *testing.T) {
	store := newMemStore()

	saved := []entity.Product{
		{
			ID:           "p-1",
			Name:         "Pallet Jack",
			SKU:          "EQP-001",
			Category:     entity.CategoryRawMaterials,
			Quantity:     3,
			ReorderLevel: 1,
			UnitPrice:    decimal.NewFromFloat(349.90),
			Supplier:     "Industrial Supply Inc.",
			Location:     "Warehouse C-09",
			CreatedAt:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC),
		},
	}
	require.NoError(t, store.SaveProducts(context.Background(), saved))

	loaded, err := store.LoadProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, saved[0].ID, loaded[0].ID)
	assert.Equal(t, saved[0].SKU, loaded[0].SKU)
	assert.True(t, saved[0].UnitPrice.Equal(loaded[0].UnitPrice))
	assert.True(t, saved[0].CreatedAt.Equal(loaded[0].CreatedAt))
}

func TestFileStore_MovimientosVaciosSinArchivo(t *testing.T) {
	store := newMemStore()

	movements, err := store.LoadMovements(context.Background())
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestFileStore_RoundTripMovimientosPreservaOrden(t *testing.T) {
	store := newMemStore()

	// Más reciente primero, como los guarda el caso de uso.
	saved := []entity.StockMovement{
		{ID: "m-2", ProductID: "p-1", ProductName: "Pallet Jack", Type: entity.MovementTypeRemoval, Quantity: 1, Timestamp: time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)},
		{ID: "m-1", ProductID: "p-1", ProductName: "Pallet Jack", Type: entity.MovementTypeAddition, Quantity: 4, Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, store.SaveMovements(context.Background(), saved))

	loaded, err := store.LoadMovements(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "m-2", loaded[0].ID)
	assert.Equal(t, "m-1", loaded[1].ID)
}
