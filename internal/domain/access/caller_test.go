package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/access"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

func TestResolveBranch_AdminDebeIndicarSucursal(t *testing.T) {
	admin := access.NewCaller("u1", entity.RoleAdmin, "")

	_, err := access.ResolveBranch(admin, "")
	assert.ErrorIs(t, err, domain.ErrBranchRequired)

	branch, err := access.ResolveBranch(admin, "b-2")
	require.NoError(t, err)
	assert.Equal(t, "b-2", branch)
}

func TestResolveBranch_VendedorForzadoASuSucursal(t *testing.T) {
	seller := access.NewCaller("u2", entity.RoleVendedor, "b-1")

	branch, err := access.ResolveBranch(seller, "b-otra")
	require.NoError(t, err)
	assert.Equal(t, "b-1", branch, "la sucursal enviada nunca reemplaza la asignada")
}

func TestResolveBranch_SinSucursalAsignada(t *testing.T) {
	seller := access.NewCaller("u3", entity.RoleBodeguero, "")

	_, err := access.ResolveBranch(seller, "b-1")
	assert.ErrorIs(t, err, domain.ErrNoBranchAssigned)

	_, err = access.ResolveOptionalBranch(seller, "")
	assert.ErrorIs(t, err, domain.ErrNoBranchAssigned)
}

func TestResolveOptionalBranch_AdminTodas(t *testing.T) {
	admin := access.NewCaller("u1", entity.RoleAdmin, "")
	branch, err := access.ResolveOptionalBranch(admin, "")
	require.NoError(t, err)
	assert.Empty(t, branch)
}

func TestResolveOptionalBranch_VendedorForzadoASuSucursal(t *testing.T) {
	seller := access.NewCaller("u2", entity.RoleVendedor, "b-1")

	for _, requested := range []string{"", "b-1", "b-otra"} {
		branch, err := access.ResolveOptionalBranch(seller, requested)
		require.NoError(t, err)
		assert.Equal(t, "b-1", branch, "consulta con branch_id=%q", requested)
	}

	admin := access.NewCaller("u1", entity.RoleAdmin, "")
	branch, err := access.ResolveOptionalBranch(admin, "b-otra")
	require.NoError(t, err)
	assert.Equal(t, "b-otra", branch)
}

func TestCheckBranch(t *testing.T) {
	seller := access.NewCaller("u2", entity.RoleVendedor, "b-1")
	assert.NoError(t, access.CheckBranch(seller, "b-1"))
	assert.ErrorIs(t, access.CheckBranch(seller, "b-2"), domain.ErrCrossBranch)
	assert.NoError(t, access.CheckBranch(access.NewCaller("a", entity.RoleAdmin, ""), "b-2"))
}
