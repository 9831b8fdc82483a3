package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
)

func sysCatalog(t *testing.T) *catalog.MemCatalog {
	t.Helper()
	return catalog.NewMemCatalog(catalog.MAPDSystemDB)
}

func TestExecuteCreateUserRequiresPassword(t *testing.T) {
	c := sysCatalog(t)
	err := ExecuteCreateUser(context.Background(), c, &ast.CreateUserStmt{Name: "bob"})
	require.Error(t, err)
}

func TestExecuteCreateUserSucceeds(t *testing.T) {
	c := sysCatalog(t)
	stmt := &ast.CreateUserStmt{
		Name: "bob",
		Options: []ast.NameValueOption{
			{Name: "PASSWORD", Value: &ast.StringLiteral{Value: "s3cret"}},
			{Name: "IS_SUPER", Value: &ast.StringLiteral{Value: "TRUE"}},
		},
	}
	require.NoError(t, ExecuteCreateUser(context.Background(), c, stmt))
	u, ok, err := c.GetMetadataForUser(context.Background(), "bob")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, u.IsSuper)
}

func TestExecuteCreateUserInvalidIsSuper(t *testing.T) {
	c := sysCatalog(t)
	stmt := &ast.CreateUserStmt{
		Name: "bob",
		Options: []ast.NameValueOption{
			{Name: "PASSWORD", Value: &ast.StringLiteral{Value: "s3cret"}},
			{Name: "IS_SUPER", Value: &ast.StringLiteral{Value: "maybe"}},
		},
	}
	err := ExecuteCreateUser(context.Background(), c, stmt)
	require.Error(t, err)
}

func TestExecuteCreateUserRequiresSystemDB(t *testing.T) {
	c := catalog.NewMemCatalog("otherdb")
	stmt := &ast.CreateUserStmt{Options: []ast.NameValueOption{{Name: "PASSWORD", Value: &ast.StringLiteral{Value: "x"}}}}
	err := ExecuteCreateUser(context.Background(), c, stmt)
	require.Error(t, err)
}

func TestExecuteCreateDatabaseOwnerOption(t *testing.T) {
	c := sysCatalog(t)
	stmt := &ast.CreateDatabaseStmt{
		Name: "newdb",
		Options: []ast.NameValueOption{
			{Name: "OWNER", Value: &ast.StringLiteral{Value: "admin"}},
		},
	}
	require.NoError(t, ExecuteCreateDatabase(context.Background(), c, stmt))
}

func TestExecuteCreateDatabaseIfNotExistsIdempotent(t *testing.T) {
	c := sysCatalog(t)
	stmt := &ast.CreateDatabaseStmt{Name: "newdb", IfNotExists: true}
	require.NoError(t, ExecuteCreateDatabase(context.Background(), c, stmt))
	require.NoError(t, ExecuteCreateDatabase(context.Background(), c, stmt))
}

func TestExecuteAlterUserPassword(t *testing.T) {
	c := sysCatalog(t)
	require.NoError(t, c.CreateUser(context.Background(), "bob", "old", false))
	stmt := &ast.AlterUserStmt{
		Name:    "bob",
		Options: []ast.NameValueOption{{Name: "PASSWORD", Value: &ast.StringLiteral{Value: "new"}}},
	}
	require.NoError(t, ExecuteAlterUser(context.Background(), c, stmt))
}

func TestExecuteDropUserRequiresSystemDB(t *testing.T) {
	c := catalog.NewMemCatalog("otherdb")
	err := ExecuteDropUser(context.Background(), c, &ast.DropUserStmt{Name: "bob"})
	require.Error(t, err)
}
