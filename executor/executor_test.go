package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
)

func TestExecuteDispatchesCreateTable(t *testing.T) {
	c := catalog.NewMemCatalog("mapd")
	stmt := &ast.CreateTableStmt{Table: "t"}
	err := Execute(context.Background(), c, c, fixedParser{}, &recordingPlanner{}, stmt)
	require.NoError(t, err)
	_, ok, err := c.GetMetadataForTable(context.Background(), "t")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestExecuteDispatchesDropTable(t *testing.T) {
	c := tableCatalog(t)
	err := Execute(context.Background(), c, c.(*catalog.MemCatalog), fixedParser{}, &recordingPlanner{}, &ast.DropTableStmt{Table: "t"})
	require.NoError(t, err)
}

func TestExecuteDispatchesCreateUser(t *testing.T) {
	c := sysCatalog(t)
	stmt := &ast.CreateUserStmt{
		Name:    "bob",
		Options: []ast.NameValueOption{{Name: "PASSWORD", Value: &ast.StringLiteral{Value: "x"}}},
	}
	err := Execute(context.Background(), c, c, fixedParser{}, &recordingPlanner{}, stmt)
	require.NoError(t, err)
}

func TestExecuteUnrecognizedStatementIsUnsupported(t *testing.T) {
	c := catalog.NewMemCatalog("mapd")
	err := Execute(context.Background(), c, c, fixedParser{}, &recordingPlanner{}, &ast.SelectStmt{})
	require.Error(t, err)
}
