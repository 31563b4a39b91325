package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
)

func userCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "administración de usuarios",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "crea un usuario",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"POSCTL_PASSWORD"}},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "role", Value: "vendedor", Usage: "admin | bodeguero | vendedor"},
					&cli.StringFlag{Name: "branch-id", Usage: "sucursal asignada"},
				},
				Before: openPool,
				After:  closePool,
				Action: createUser,
			},
		},
	}
}

func createUser(c *cli.Context) error {
	pool := poolFrom(c)
	// El JWT no se usa al crear; solo el hash de la password.
	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), postgres.NewBranchRepository(pool), auth.JWTConfig{})
	out, err := uc.CreateUser(c.Context, dto.CreateUserRequest{
		Username: c.String("username"),
		Email:    c.String("email"),
		Password: c.String("password"),
		Name:     c.String("name"),
		Role:     c.String("role"),
		BranchID: c.String("branch-id"),
	})
	if err != nil {
		return fmt.Errorf("crear usuario: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "usuario %s creado (id=%s, rol=%s)\n", out.Username, out.ID, out.Role)
	return nil
}
