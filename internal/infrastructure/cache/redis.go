// Package cache implementa la caché de reportes sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/GestionVentas-api/internal/application/usecase"
	"github.com/jhoicas/GestionVentas-api/pkg/config"
)

var (
	_ usecase.ReportCache = (*RedisCache)(nil)
	_ usecase.ReportCache = NoopCache{}
)

// RedisCache guarda valores serializados en JSON con un TTL fijo.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache conecta con Redis y verifica la conexión con PING.
func NewRedisCache(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	log.Info().Str("addr", cfg.Addr).Dur("ttl", cfg.TTL).Msg("caché de reportes en Redis")

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

// Get decodifica el valor de key en dest. Devuelve false si la clave no existe.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis: get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, fmt.Errorf("redis: decodificar %s: %w", key, err)
	}
	return true, nil
}

// Set guarda value serializado con el TTL configurado.
func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis: codificar %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Delete elimina las claves indicadas; las inexistentes se ignoran.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis: del: %w", err)
	}
	return nil
}

// Close cierra la conexión.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoopCache se usa cuando REDIS_ADDR está vacío: nunca hay aciertos.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopCache) Set(context.Context, string, any) error         { return nil }
func (NoopCache) Delete(context.Context, ...string) error        { return nil }
