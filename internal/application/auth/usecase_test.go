package auth_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/pos-api/pkg/jwt"
)

const secret = "test-secret"

func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	store := memory.NewStore()
	branches := memory.NewBranchRepository(store)
	require.NoError(t, branches.Create(context.Background(), &entity.Branch{
		ID: "b1", Code: "C", Name: "Centro", VatPerc: decimal.NewFromInt(15), IsActive: true,
	}))
	return auth.NewAuthUseCase(memory.NewUserRepository(store), branches, auth.JWTConfig{
		Secret: secret, ExpMinutes: 10, Issuer: "pos-api-test",
	})
}

func TestLogin_PorUsernameYEmail(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()
	_, err := uc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "caja1", Email: "Caja1@Tienda.com", Password: "secreto123", Role: entity.RoleVendedor, BranchID: "b1",
	})
	require.NoError(t, err)

	for _, login := range []string{"caja1", "caja1@tienda.com"} {
		out, err := uc.Login(ctx, dto.LoginRequest{Login: login, Password: "secreto123"})
		require.NoError(t, err, login)
		assert.Equal(t, "b1", out.User.BranchID)
		assert.Contains(t, out.User.Permissions, entity.PermStockMovementsCreate)

		claims, err := pkgjwt.Parse(secret, out.Token)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleVendedor, claims.Role)
		assert.Equal(t, "b1", claims.BranchID)
		assert.Equal(t, "15", claims.VatPerc)
	}
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()
	_, err := uc.CreateUser(ctx, dto.CreateUserRequest{Username: "admin", Password: "secreto123", Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Login: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Login: "nadie", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateUser_Validaciones(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	_, err := uc.CreateUser(ctx, dto.CreateUserRequest{Username: "x", Password: "secreto123", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateUser(ctx, dto.CreateUserRequest{Username: "x", Password: "secreto123", Role: entity.RoleVendedor, BranchID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CreateUser(ctx, dto.CreateUserRequest{Username: "dup", Password: "secreto123", Role: entity.RoleVendedor})
	require.NoError(t, err)
	_, err = uc.CreateUser(ctx, dto.CreateUserRequest{Username: "dup", Password: "secreto123", Role: entity.RoleVendedor})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
