package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/GestionVentas-api/internal/application/dto"
	"github.com/jhoicas/GestionVentas-api/internal/infrastructure/cache"
	"github.com/jhoicas/GestionVentas-api/pkg/config"
)

func TestNoopCache_NuncaAcierta(t *testing.T) {
	c := cache.NoopCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []int{1}))
	var dest []int
	ok, err := c.Get(ctx, "k", &dest)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Delete(ctx, "k"))
}

// Requiere un Redis real: TEST_REDIS_ADDR=localhost:6379.
func TestRedisCache_GetSetDelete(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR no definido")
	}
	ctx := context.Background()
	c, err := cache.NewRedisCache(ctx, config.RedisConfig{Addr: addr, TTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	key := "gestion-ventas:test:" + t.Name()
	in := []dto.ProductStatsDTO{{ProductID: 1, ProductName: "Café", UnitsSold: 2, Revenue: decimal.RequireFromString("40.00"), SalesCount: 1}}

	var out []dto.ProductStatsDTO
	ok, err := c.Get(ctx, key, &out)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, key, in))
	ok, err = c.Get(ctx, key, &out)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, out, 1)
	assert.True(t, out[0].Revenue.Equal(in[0].Revenue))

	require.NoError(t, c.Delete(ctx, key))
	ok, err = c.Get(ctx, key, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedisCache_DireccionInvalida(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := cache.NewRedisCache(ctx, config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
