package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/planner"
	"github.com/mapd-project/queryfront/resolved"
)

type fixedParser struct {
	stmt ast.Stmt
	err  error
}

func (p fixedParser) Parse(sql string) (ast.Stmt, error) { return p.stmt, p.err }

type fakePlan struct{ q *resolved.Query }

func (p fakePlan) Query() *resolved.Query { return p.q }

type recordingPlanner struct{ planned *resolved.Query }

func (p *recordingPlanner) Plan(ctx context.Context, q *resolved.Query) (planner.Plan, error) {
	p.planned = q
	return fakePlan{q: q}, nil
}

func TestExecuteRefreshViewPlansWithoutExecuting(t *testing.T) {
	c := tableCatalog(t)
	require.NoError(t, ExecuteCreateView(context.Background(), c, &ast.CreateViewStmt{
		View:         "v",
		Materialized: true,
		Query:        &ast.QuerySpec{From: []ast.TableRef{{Table: "t"}}},
	}))

	parsed := &ast.InsertQueryStmt{
		InsertStmt: ast.InsertStmt{Table: "v"},
		Query:      &ast.QuerySpec{From: []ast.TableRef{{Table: "t"}}},
	}
	pl := &recordingPlanner{}
	err := ExecuteRefreshView(context.Background(), c, fixedParser{stmt: parsed}, pl, &ast.RefreshViewStmt{View: "v"})
	require.NoError(t, err)
	require.NotNil(t, pl.planned)
}

func TestExecuteRefreshViewParseErrorIsInternal(t *testing.T) {
	c := tableCatalog(t)
	require.NoError(t, ExecuteCreateView(context.Background(), c, &ast.CreateViewStmt{
		View:  "v",
		Query: &ast.QuerySpec{From: []ast.TableRef{{Table: "t"}}},
	}))

	pl := &recordingPlanner{}
	err := ExecuteRefreshView(context.Background(), c, fixedParser{err: errors.New("boom")}, pl, &ast.RefreshViewStmt{View: "v"})
	require.Error(t, err)
}

func TestExecuteRefreshViewNonViewFails(t *testing.T) {
	c := catalog.NewMemCatalog("mapd")
	require.NoError(t, c.CreateTable(context.Background(), catalog.TableDescriptor{TableName: "t"}, nil))
	pl := &recordingPlanner{}
	err := ExecuteRefreshView(context.Background(), c, fixedParser{}, pl, &ast.RefreshViewStmt{View: "t"})
	require.Error(t, err)
}
