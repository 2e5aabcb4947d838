package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// PostgresStore persiste las dos colecciones como blobs JSONB en una tabla
// clave-valor. No hay modelo relacional: el contrato es el mismo whole-blob
// de los otros backends, PostgreSQL solo aporta durabilidad.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore construye el store y asegura el esquema.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_blobs (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("crear esquema kv_blobs: %w", err)
	}
	return nil
}

func (s *PostgresStore) loadBlob(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_blobs WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leer blob %s: %w", key, err)
	}
	return data, true, nil
}

func (s *PostgresStore) saveBlob(ctx context.Context, key string, v any) error {
	data, err := marshalBlob(v)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO kv_blobs (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, data)
	if err != nil {
		return fmt.Errorf("guardar blob %s: %w", key, err)
	}
	return nil
}

// LoadProducts carga el catálogo; siembra el catálogo por defecto si la fila
// aún no existe.
func (s *PostgresStore) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	data, found, err := s.loadBlob(ctx, productsKey)
	if err != nil {
		return nil, err
	}
	if !found {
		seeded := SeedCatalog(time.Now())
		if err := s.SaveProducts(ctx, seeded); err != nil {
			return nil, fmt.Errorf("sembrar catálogo: %w", err)
		}
		return seeded, nil
	}
	var products []entity.Product
	if err := unmarshalBlob(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SaveProducts sobrescribe el blob del catálogo.
func (s *PostgresStore) SaveProducts(ctx context.Context, products []entity.Product) error {
	return s.saveBlob(ctx, productsKey, products)
}

// LoadMovements carga el historial; vacío si la fila no existe.
func (s *PostgresStore) LoadMovements(ctx context.Context) ([]entity.StockMovement, error) {
	data, found, err := s.loadBlob(ctx, movementsKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entity.StockMovement{}, nil
	}
	var movements []entity.StockMovement
	if err := unmarshalBlob(data, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// SaveMovements sobrescribe el blob del historial.
func (s *PostgresStore) SaveMovements(ctx context.Context, movements []entity.StockMovement) error {
	return s.saveBlob(ctx, movementsKey, movements)
}
