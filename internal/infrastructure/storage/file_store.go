package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// FileStore persiste las dos colecciones como documentos JSON en un
// directorio de datos. Backend por defecto; afero permite correr los tests
// contra un filesystem en memoria.
type FileStore struct {
	fs      afero.Fs
	dataDir string
}

// NewFileStore construye el store sobre el filesystem real.
func NewFileStore(dataDir string) *FileStore {
	return NewFileStoreWithFs(afero.NewOsFs(), dataDir)
}

// NewFileStoreWithFs construye el store sobre un filesystem arbitrario.
func NewFileStoreWithFs(fs afero.Fs, dataDir string) *FileStore {
	return &FileStore{fs: fs, dataDir: dataDir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

// LoadProducts carga el catálogo. En el primer arranque (sin archivo)
// siembra y persiste el catálogo por defecto.
func (s *FileStore) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	data, err := afero.ReadFile(s.fs, s.path(productsKey))
	if os.IsNotExist(err) {
		seeded := SeedCatalog(time.Now())
		if err := s.SaveProducts(ctx, seeded); err != nil {
			return nil, fmt.Errorf("sembrar catálogo: %w", err)
		}
		return seeded, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", productsKey, err)
	}
	var products []entity.Product
	if err := unmarshalBlob(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SaveProducts sobrescribe el catálogo completo (last write wins).
func (s *FileStore) SaveProducts(_ context.Context, products []entity.Product) error {
	return s.writeBlob(productsKey, products)
}

// LoadMovements carga el historial; vacío si aún no hay nada registrado.
func (s *FileStore) LoadMovements(context.Context) ([]entity.StockMovement, error) {
	data, err := afero.ReadFile(s.fs, s.path(movementsKey))
	if os.IsNotExist(err) {
		return []entity.StockMovement{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", movementsKey, err)
	}
	var movements []entity.StockMovement
	if err := unmarshalBlob(data, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// SaveMovements sobrescribe el historial completo.
func (s *FileStore) SaveMovements(_ context.Context, movements []entity.StockMovement) error {
	return s.writeBlob(movementsKey, movements)
}

func (s *FileStore) writeBlob(key string, v any) error {
	if err := s.fs.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}
	data, err := marshalBlob(v)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	return nil
}
