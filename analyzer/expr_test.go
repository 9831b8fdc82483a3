package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/resolved"
	"github.com/mapd-project/queryfront/types"
)

func newTestCatalog(t *testing.T) (*catalog.MemCatalog, int32) {
	t.Helper()
	c := catalog.NewMemCatalog("mapd")
	err := c.CreateTable(context.Background(), catalog.TableDescriptor{TableName: "t"}, []catalog.ColumnDescriptor{
		{ColumnName: "x", ColumnType: types.SQLType{Kind: types.Int}},
		{ColumnName: "a", ColumnType: types.SQLType{Kind: types.Int}},
		{ColumnName: "b", ColumnType: types.SQLType{Kind: types.Int}},
	})
	require.NoError(t, err)
	td, _, _ := c.GetMetadataForTable(context.Background(), "t")
	return c, td.TableID
}

func queryOverT(t *testing.T) (*resolved.Query, catalog.Catalog) {
	t.Helper()
	c, _ := newTestCatalog(t)
	rtes, err := buildRangeTable(context.Background(), c, []ast.TableRef{{Table: "t"}})
	require.NoError(t, err)
	return &resolved.Query{RangeTable: rtes}, c
}

// S3: SELECT x FROM t WHERE x BETWEEN 1 AND 10 becomes
// (arg >= lower) AND (arg <= upper) over a deep copy of arg.
func TestAnalyzeBetweenScenarioS3(t *testing.T) {
	q, c := queryOverT(t)
	xcol := "x"
	e := &ast.BetweenExpr{
		Arg:   &ast.ColumnRef{Column: &xcol},
		Lower: &ast.IntLiteral{Value: 1},
		Upper: &ast.IntLiteral{Value: 10},
	}
	got, err := AnalyzeExpr(context.Background(), c, q, e)
	require.NoError(t, err)

	and, ok := got.(*resolved.BinOper)
	require.True(t, ok)
	require.Equal(t, types.And, and.Op)

	lowPred, ok := and.Left.(*resolved.BinOper)
	require.True(t, ok)
	require.Equal(t, types.Ge, lowPred.Op)
	upperPred, ok := and.Right.(*resolved.BinOper)
	require.True(t, ok)
	require.Equal(t, types.Le, upperPred.Op)

	// Both predicates reference distinct ColumnVar instances (deep copy),
	// not the same pointer.
	leftLow, ok := lowPred.Left.(*resolved.ColumnVar)
	require.True(t, ok)
	leftUp, ok := upperPred.Left.(*resolved.ColumnVar)
	require.True(t, ok)
	require.NotSame(t, leftLow, leftUp)
	require.Equal(t, *leftLow, *leftUp)
}

func TestAnalyzeCaseCommonTypeWidening(t *testing.T) {
	q, c := queryOverT(t)
	acol := "a"
	e := &ast.CaseExpr{
		WhenThenList: []ast.WhenThen{
			{
				When: &ast.OperExpr{Op: types.Gt, Left: &ast.ColumnRef{Column: &acol}, Right: &ast.IntLiteral{Value: 0}},
				Then: &ast.IntLiteral{Value: 1},
			},
			{
				When: &ast.OperExpr{Op: types.Lt, Left: &ast.ColumnRef{Column: &acol}, Right: &ast.IntLiteral{Value: 0}},
				Then: &ast.FixedPtLiteral{Raw: "2.5"},
			},
		},
		Else: &ast.NullLiteral{},
	}
	got, err := AnalyzeExpr(context.Background(), c, q, e)
	require.NoError(t, err)
	ce, ok := got.(*resolved.CaseExpr)
	require.True(t, ok)
	require.True(t, ce.T.IsNumeric())
	require.NotEqual(t, types.Smallint, ce.T.Kind)

	elseCast, ok := ce.Else.(*resolved.Cast)
	require.True(t, ok)
	require.True(t, elseCast.T.Equals(ce.T))
}

func TestAnalyzeFunctionRefCountStar(t *testing.T) {
	q, c := queryOverT(t)
	f := &ast.FunctionRef{Name: "count"}
	got, err := AnalyzeExpr(context.Background(), c, q, f)
	require.NoError(t, err)
	agg, ok := got.(*resolved.AggExpr)
	require.True(t, ok)
	require.Equal(t, "COUNT", agg.Kind)
	require.Nil(t, agg.Arg)
	require.Equal(t, types.Bigint, agg.T.Kind)
	require.Equal(t, 1, q.NumAggs)
}

func TestAnalyzeFunctionRefInvalidName(t *testing.T) {
	q, c := queryOverT(t)
	f := &ast.FunctionRef{Name: "sqrt", Arg: &ast.IntLiteral{Value: 1}}
	_, err := AnalyzeExpr(context.Background(), c, q, f)
	require.Error(t, err)
}

func TestAnalyzeLikeRequiresStringOperands(t *testing.T) {
	q, c := queryOverT(t)
	acol := "a"
	e := &ast.LikeExpr{Arg: &ast.ColumnRef{Column: &acol}, Like: &ast.StringLiteral{Value: "x%"}}
	_, err := AnalyzeExpr(context.Background(), c, q, e)
	require.Error(t, err)
}

func TestAnalyzeInValuesCastsEachToArgType(t *testing.T) {
	q, c := queryOverT(t)
	acol := "a"
	e := &ast.InValues{
		Arg:    &ast.ColumnRef{Column: &acol},
		Values: []ast.Expr{&ast.IntLiteral{Value: 1}, &ast.IntLiteral{Value: 100000}},
	}
	got, err := AnalyzeExpr(context.Background(), c, q, e)
	require.NoError(t, err)
	in, ok := got.(*resolved.InValuesExpr)
	require.True(t, ok)
	require.Len(t, in.List, 2)
	for _, item := range in.List {
		require.Equal(t, types.Int, item.Type().Kind)
	}
}
