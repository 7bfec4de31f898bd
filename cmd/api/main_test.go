package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/GestionVentas-api/pkg/config"
)

// Puerto 1 en loopback: la conexión se rechaza de inmediato.
const unreachableDSN = "postgres://postgres@127.0.0.1:1/gestion_ventas?sslmode=disable&connect_timeout=2"

func TestRun_SinBaseDeDatosDevuelveError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := run(ctx, &config.Config{DB: config.DBConfig{DatabaseURL: unreachableDSN, MaxConns: 1}})

	require.Error(t, err, "run debe devolver el error para que main salga tras los defers")
	assert.Contains(t, err.Error(), "conexión a PostgreSQL")
}

func TestRun_MigracionFallidaDevuelveError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := run(ctx, &config.Config{DB: config.DBConfig{DatabaseURL: unreachableDSN, MaxConns: 1, AutoMigrate: true}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migraciones")
}
