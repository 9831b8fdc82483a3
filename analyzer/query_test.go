package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/types"
)

// S1: SELECT a, COUNT(*) FROM t GROUP BY a analyzes with num_aggs=1 and
// target a bound to RTE 0.
func TestAnalyzeQuerySpecScenarioS1(t *testing.T) {
	c, _ := newTestCatalog(t)
	acol := "a"
	spec := &ast.QuerySpec{
		Select: []ast.SelectEntry{
			{Expr: &ast.ColumnRef{Column: &acol}},
			{Expr: &ast.FunctionRef{Name: "COUNT"}},
		},
		From:    []ast.TableRef{{Table: "t"}},
		GroupBy: []ast.Expr{&ast.ColumnRef{Column: &acol}},
	}
	q, err := analyzeQuerySpec(context.Background(), c, spec)
	require.NoError(t, err)
	require.Equal(t, 1, q.NumAggs)
	require.Len(t, q.TargetList, 2)
	require.Equal(t, types.Int, q.TargetList[0].Expr.Type().Kind)
	require.Equal(t, types.Bigint, q.TargetList[1].Expr.Type().Kind)
}

// S2: SELECT a, b FROM t GROUP BY a fails because b is neither
// group-by'd nor aggregated.
func TestAnalyzeQuerySpecScenarioS2(t *testing.T) {
	c, _ := newTestCatalog(t)
	acol, bcol := "a", "b"
	spec := &ast.QuerySpec{
		Select: []ast.SelectEntry{
			{Expr: &ast.ColumnRef{Column: &acol}},
			{Expr: &ast.ColumnRef{Column: &bcol}},
		},
		From:    []ast.TableRef{{Table: "t"}},
		GroupBy: []ast.Expr{&ast.ColumnRef{Column: &acol}},
	}
	_, err := analyzeQuerySpec(context.Background(), c, spec)
	require.Error(t, err)
}

func TestAnalyzeQuerySpecWhereMustBeBoolean(t *testing.T) {
	c, _ := newTestCatalog(t)
	xcol := "x"
	spec := &ast.QuerySpec{
		From:  []ast.TableRef{{Table: "t"}},
		Where: &ast.ColumnRef{Column: &xcol},
	}
	_, err := analyzeQuerySpec(context.Background(), c, spec)
	require.Error(t, err)
}

func TestAnalyzeQuerySpecSelectStarExpandsAllColumns(t *testing.T) {
	c, _ := newTestCatalog(t)
	spec := &ast.QuerySpec{From: []ast.TableRef{{Table: "t"}}}
	q, err := analyzeQuerySpec(context.Background(), c, spec)
	require.NoError(t, err)
	require.Len(t, q.TargetList, 3)
	require.Equal(t, "x", q.TargetList[0].ResName)
}

func TestAnalyzeSelectStmtOrderByName(t *testing.T) {
	c, _ := newTestCatalog(t)
	acol := "a"
	stmt := &ast.SelectStmt{
		Query: &ast.QuerySpec{
			Select: []ast.SelectEntry{{Expr: &ast.ColumnRef{Column: &acol}}},
			From:   []ast.TableRef{{Table: "t"}},
		},
		OrderBy: []ast.OrderByItem{{Name: "a"}},
	}
	q, err := AnalyzeSelectStmt(context.Background(), c, stmt)
	require.NoError(t, err)
	require.Len(t, q.OrderBy, 1)
	require.Equal(t, 1, q.OrderBy[0].TargetIndex)
}

func TestAnalyzeSelectStmtOrderByUnknownNameFails(t *testing.T) {
	c, _ := newTestCatalog(t)
	acol := "a"
	stmt := &ast.SelectStmt{
		Query: &ast.QuerySpec{
			Select: []ast.SelectEntry{{Expr: &ast.ColumnRef{Column: &acol}}},
			From:   []ast.TableRef{{Table: "t"}},
		},
		OrderBy: []ast.OrderByItem{{Name: "nope"}},
	}
	_, err := AnalyzeSelectStmt(context.Background(), c, stmt)
	require.Error(t, err)
}

func TestAnalyzeUnionChainsQueries(t *testing.T) {
	c, _ := newTestCatalog(t)
	stmt := &ast.SelectStmt{
		Query: &ast.UnionQuery{
			Left:       &ast.QuerySpec{From: []ast.TableRef{{Table: "t"}}},
			Right:      &ast.QuerySpec{From: []ast.TableRef{{Table: "t"}}},
			IsUnionAll: true,
		},
	}
	q, err := AnalyzeSelectStmt(context.Background(), c, stmt)
	require.NoError(t, err)
	require.NotNil(t, q.NextQuery)
	require.True(t, q.IsUnionAll)
}

// S6: INSERT INTO t VALUES (1, 'hi') with t(c1 BIGINT, c2 VARCHAR(10))
// casts each value to its column's type.
func TestAnalyzeInsertValuesScenarioS6(t *testing.T) {
	c := catalog.NewMemCatalog("mapd")
	err := c.CreateTable(context.Background(), catalog.TableDescriptor{TableName: "t"}, []catalog.ColumnDescriptor{
		{ColumnName: "c1", ColumnType: types.SQLType{Kind: types.Bigint}},
		{ColumnName: "c2", ColumnType: types.SQLType{Kind: types.Varchar, Dimension: 10}},
	})
	require.NoError(t, err)

	stmt := &ast.InsertValuesStmt{
		InsertStmt: ast.InsertStmt{Table: "t"},
		Values:     []ast.Expr{&ast.IntLiteral{Value: 1}, &ast.StringLiteral{Value: "hi"}},
	}
	q, err := AnalyzeInsertValuesStmt(context.Background(), c, stmt)
	require.NoError(t, err)
	require.Len(t, q.TargetList, 2)
	require.Equal(t, types.Bigint, q.TargetList[0].Expr.Type().Kind)
	require.Equal(t, types.Varchar, q.TargetList[1].Expr.Type().Kind)
}

func TestAnalyzeInsertValuesArityMismatch(t *testing.T) {
	c := catalog.NewMemCatalog("mapd")
	require.NoError(t, c.CreateTable(context.Background(), catalog.TableDescriptor{TableName: "t"}, []catalog.ColumnDescriptor{
		{ColumnName: "c1", ColumnType: types.SQLType{Kind: types.Bigint}},
	}))
	stmt := &ast.InsertValuesStmt{
		InsertStmt: ast.InsertStmt{Table: "t"},
		Values:     []ast.Expr{&ast.IntLiteral{Value: 1}, &ast.IntLiteral{Value: 2}},
	}
	_, err := AnalyzeInsertValuesStmt(context.Background(), c, stmt)
	require.Error(t, err)
}

func TestAnalyzeInsertIntoViewFails(t *testing.T) {
	c := catalog.NewMemCatalog("mapd")
	require.NoError(t, c.CreateTable(context.Background(), catalog.TableDescriptor{TableName: "v", IsView: true, IsMaterialized: false}, nil))
	stmt := &ast.InsertValuesStmt{InsertStmt: ast.InsertStmt{Table: "v"}}
	_, err := AnalyzeInsertValuesStmt(context.Background(), c, stmt)
	require.Error(t, err)
}
