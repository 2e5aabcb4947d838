package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// Claves de los blobs en Redis.
const (
	redisProductsKey  = "stockflow:products"
	redisMovementsKey = "stockflow:movements"
)

// RedisStore persiste las dos colecciones como blobs JSON bajo dos claves
// fijas de Redis. Mismo contrato whole-blob que el FileStore.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore construye el store sobre un cliente Redis ya configurado.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// LoadProducts carga el catálogo; siembra el catálogo por defecto si la
// clave aún no existe.
func (s *RedisStore) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	data, err := s.client.Get(ctx, redisProductsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		seeded := SeedCatalog(time.Now())
		if err := s.SaveProducts(ctx, seeded); err != nil {
			return nil, fmt.Errorf("sembrar catálogo: %w", err)
		}
		return seeded, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get products: %w", err)
	}
	var products []entity.Product
	if err := unmarshalBlob(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SaveProducts sobrescribe el blob del catálogo.
func (s *RedisStore) SaveProducts(ctx context.Context, products []entity.Product) error {
	data, err := marshalBlob(products)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, redisProductsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set products: %w", err)
	}
	return nil
}

// LoadMovements carga el historial; vacío si la clave no existe.
func (s *RedisStore) LoadMovements(ctx context.Context) ([]entity.StockMovement, error) {
	data, err := s.client.Get(ctx, redisMovementsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entity.StockMovement{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get movements: %w", err)
	}
	var movements []entity.StockMovement
	if err := unmarshalBlob(data, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// SaveMovements sobrescribe el blob del historial.
func (s *RedisStore) SaveMovements(ctx context.Context, movements []entity.StockMovement) error {
	data, err := marshalBlob(movements)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, redisMovementsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set movements: %w", err)
	}
	return nil
}
