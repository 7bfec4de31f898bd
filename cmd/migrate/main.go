// Comando migrate aplica o revierte las migraciones embebidas del esquema de ventas.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down 1
//	go run ./cmd/migrate version
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/GestionVentas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/GestionVentas-api/pkg/config"
	"github.com/jhoicas/GestionVentas-api/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dsn string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Migraciones de la base de datos de ventas",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&dsn, "database-url", "", "DSN de PostgreSQL (por defecto se toma de la configuración)")

	withMigrator := func(fn func(*postgres.Migrator) error) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "migrate"})
		if dsn == "" {
			dsn = cfg.DB.ConnectionString()
		}
		mg, err := postgres.NewMigrator(dsn)
		if err != nil {
			return err
		}
		defer mg.Close()
		return fn(mg)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Aplica todas las migraciones pendientes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(func(mg *postgres.Migrator) error {
					if err := mg.Up(); err != nil {
						return err
					}
					return printVersion(cmd, mg)
				})
			},
		},
		&cobra.Command{
			Use:   "down [n]",
			Short: "Revierte n migraciones (todas si se omite)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n := 0
				if len(args) == 1 {
					v, err := strconv.Atoi(args[0])
					if err != nil || v <= 0 {
						return fmt.Errorf("n debe ser un entero positivo: %q", args[0])
					}
					n = v
				}
				return withMigrator(func(mg *postgres.Migrator) error {
					if err := mg.Down(n); err != nil {
						return err
					}
					return printVersion(cmd, mg)
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Muestra la versión aplicada del esquema",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(func(mg *postgres.Migrator) error {
					return printVersion(cmd, mg)
				})
			},
		},
	)
	return root
}

func printVersion(cmd *cobra.Command, mg *postgres.Migrator) error {
	v, dirty, err := mg.Version()
	if err != nil {
		return err
	}
	cmd.Printf("versión %d (dirty=%t)\n", v, dirty)
	return nil
}
