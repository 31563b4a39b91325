// posctl herramientas de operación del POS: migraciones, usuarios y carga de catálogo.
//
// Uso:
//
//	posctl migrate up|down|version
//	posctl user create --username caja1 --password ... --role vendedor --branch-id ...
//	posctl catalog import --file productos.csv [--latin1]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

type poolKey struct{}

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "cadena de conexión PostgreSQL",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func newLogger(c *cli.Context) *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: c.String("log-level")})
}

// openPool abre el pool y lo deja en el contexto del comando.
func openPool(c *cli.Context) error {
	pool, err := postgres.NewPool(c.Context, config.DBConfig{DatabaseURL: c.String("db-url")})
	if err != nil {
		return fmt.Errorf("conectar a la base: %w", err)
	}
	c.Context = context.WithValue(c.Context, poolKey{}, pool)
	return nil
}

func closePool(c *cli.Context) error {
	if pool, ok := c.Context.Value(poolKey{}).(*pgxpool.Pool); ok && pool != nil {
		pool.Close()
	}
	return nil
}

func poolFrom(c *cli.Context) *pgxpool.Pool {
	pool, _ := c.Context.Value(poolKey{}).(*pgxpool.Pool)
	return pool
}

func main() {
	app := &cli.App{
		Name:  "posctl",
		Usage: "operación del POS: migraciones, usuarios y catálogo",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info", EnvVars: []string{"LOG_LEVEL"}},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			userCommand(),
			catalogCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "posctl: %v\n", err)
		os.Exit(1)
	}
}

func migrateCommand() *cli.Command {
	withMigrator := func(fn func(*postgres.Migrator, *cli.Context) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			m, err := postgres.NewMigrator(c.String("db-url"), newLogger(c))
			if err != nil {
				return err
			}
			defer m.Close()
			return fn(m, c)
		}
	}
	return &cli.Command{
		Name:  "migrate",
		Usage: "aplica o revierte las migraciones embebidas",
		Flags: []cli.Flag{newDBURLFlag()},
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "aplica las migraciones pendientes",
				Action: withMigrator(func(m *postgres.Migrator, _ *cli.Context) error {
					return m.Up()
				}),
			},
			{
				Name:  "down",
				Usage: "revierte migraciones (todas si --steps es 0)",
				Flags: []cli.Flag{&cli.IntFlag{Name: "steps", Value: 1}},
				Action: withMigrator(func(m *postgres.Migrator, c *cli.Context) error {
					return m.Down(c.Int("steps"))
				}),
			},
			{
				Name:  "version",
				Usage: "muestra la versión actual del esquema",
				Action: withMigrator(func(m *postgres.Migrator, c *cli.Context) error {
					v, dirty, err := m.Version()
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "version=%d dirty=%t\n", v, dirty)
					return nil
				}),
			},
		},
	}
}
