package analyzer

import (
	"context"
	"strconv"
	"strings"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/queryerr"
	"github.com/mapd-project/queryfront/resolved"
	"github.com/mapd-project/queryfront/types"
)

// AnalyzeExpr recursively analyzes an AST expression into a Resolved
// expression with full type info and injected casts (C5, spec.md §4.4).
// q is mutated in place: FunctionRef increments q.NumAggs as a side
// effect of recognizing an aggregate, the same side effect the teacher's
// FunctionRef::analyze has on the owning Query.
func AnalyzeExpr(ctx context.Context, cat catalog.Catalog, q *resolved.Query, e ast.Expr) (resolved.Expr, error) {
	switch v := e.(type) {
	case *ast.NullLiteral:
		return &resolved.Constant{T: types.SQLType{Kind: types.Nullt}, IsNull: true}, nil

	case *ast.StringLiteral:
		// String literal notnull is false, per the original implementation
		// (spec.md §9 open question — preserved, not "fixed").
		t := types.SQLType{Kind: types.Varchar, Dimension: len(v.Value), NotNull: false}
		return &resolved.Constant{T: t, Datum: resolved.Datum{Kind: resolved.DatumString, Str: v.Value}}, nil

	case *ast.IntLiteral:
		t := types.NarrowestInt(v.Value)
		d := resolved.Datum{}
		switch t.Kind {
		case types.Smallint:
			d.Kind, d.Small = resolved.DatumSmall, int16(v.Value)
		case types.Int:
			d.Kind, d.Int = resolved.DatumInt, int32(v.Value)
		default:
			d.Kind, d.Big = resolved.DatumBig, v.Value
		}
		return &resolved.Constant{T: t, Datum: d}, nil

	case *ast.FixedPtLiteral:
		return analyzeFixedPtLiteral(v)

	case *ast.FloatLiteral:
		return &resolved.Constant{
			T:     types.SQLType{Kind: types.Float},
			Datum: resolved.Datum{Kind: resolved.DatumFloat, Float: v.Value},
		}, nil

	case *ast.DoubleLiteral:
		return &resolved.Constant{
			T:     types.SQLType{Kind: types.Double},
			Datum: resolved.Datum{Kind: resolved.DatumDouble, Double: v.Value},
		}, nil

	case *ast.SubqueryExpr, *ast.ExistsExpr, *ast.InSubquery:
		return nil, queryerr.SubqueriesUnsupported()

	case *ast.ColumnRef:
		return resolveColumnRef(ctx, cat, q, v)

	case *ast.OperExpr:
		return analyzeOperExpr(ctx, cat, q, v)

	case *ast.IsNullExpr:
		return analyzeIsNull(ctx, cat, q, v)

	case *ast.InValues:
		return analyzeInValues(ctx, cat, q, v)

	case *ast.BetweenExpr:
		return analyzeBetween(ctx, cat, q, v)

	case *ast.LikeExpr:
		return analyzeLike(ctx, cat, q, v)

	case *ast.CastExpr:
		arg, err := AnalyzeExpr(ctx, cat, q, v.Arg)
		if err != nil {
			return nil, err
		}
		return resolved.AddCast(arg, v.TargetType.SQLType()), nil

	case *ast.CaseExpr:
		return analyzeCase(ctx, cat, q, v)

	case *ast.FunctionRef:
		return analyzeFunctionRef(ctx, cat, q, v)

	default:
		return nil, queryerr.Unsupported("expression")
	}
}

// analyzeFixedPtLiteral parses "123.45"-shaped source text as NUMERIC,
// with scale = len(fractional part) and dimension = len(integral part) +
// scale, the value folded into a 64-bit integer field
// (integral*10^scale + fractional), per spec.md §4.4.
func analyzeFixedPtLiteral(lit *ast.FixedPtLiteral) (resolved.Expr, error) {
	raw := lit.Raw
	neg := strings.HasPrefix(raw, "-")
	if neg {
		raw = raw[1:]
	}
	parts := strings.SplitN(raw, ".", 2)
	integral := parts[0]
	fractional := ""
	if len(parts) == 2 {
		fractional = parts[1]
	}
	scale := len(fractional)
	dimension := len(integral) + scale

	intVal, err := strconv.ParseInt(integral, 10, 64)
	if err != nil {
		return nil, err
	}
	var fracVal int64
	if fractional != "" {
		fracVal, err = strconv.ParseInt(fractional, 10, 64)
		if err != nil {
			return nil, err
		}
	}
	pow := int64(1)
	for i := 0; i < scale; i++ {
		pow *= 10
	}
	value := intVal*pow + fracVal
	if neg {
		value = -value
	}

	t := types.SQLType{Kind: types.Numeric, Dimension: dimension, Scale: scale}
	return &resolved.Constant{T: t, Datum: resolved.Datum{Kind: resolved.DatumBig, Big: value}}, nil
}

func analyzeOperExpr(ctx context.Context, cat catalog.Catalog, q *resolved.Query, o *ast.OperExpr) (resolved.Expr, error) {
	lhs, err := AnalyzeExpr(ctx, cat, q, o.Left)
	if err != nil {
		return nil, err
	}

	if o.Right == nil {
		return &resolved.UOper{T: lhs.Type(), Op: o.Op, Operand: lhs}, nil
	}

	qualifier := ""
	if sub, ok := o.Right.(*ast.SubqueryExpr); ok {
		qualifier = sub.Qualifier
		return nil, queryerr.SubqueriesUnsupported()
	}

	rhs, err := AnalyzeExpr(ctx, cat, q, o.Right)
	if err != nil {
		return nil, err
	}

	result, newLhs, newRhs, err := types.AnalyzeBinopTypes(o.Op, lhs.Type(), rhs.Type())
	if err != nil {
		return nil, err
	}

	return &resolved.BinOper{
		T:         result,
		Op:        o.Op,
		Qualifier: qualifier,
		Left:      resolved.AddCast(lhs, newLhs),
		Right:     resolved.AddCast(rhs, newRhs),
	}, nil
}

func analyzeIsNull(ctx context.Context, cat catalog.Catalog, q *resolved.Query, e *ast.IsNullExpr) (resolved.Expr, error) {
	arg, err := AnalyzeExpr(ctx, cat, q, e.Arg)
	if err != nil {
		return nil, err
	}
	isNull := &resolved.UOper{T: types.SQLType{Kind: types.Boolean}, Op: "IS_NULL", Operand: arg}
	if e.Negate {
		return &resolved.UOper{T: types.SQLType{Kind: types.Boolean}, Op: types.Not, Operand: isNull}, nil
	}
	return isNull, nil
}

func analyzeInValues(ctx context.Context, cat catalog.Catalog, q *resolved.Query, e *ast.InValues) (resolved.Expr, error) {
	arg, err := AnalyzeExpr(ctx, cat, q, e.Arg)
	if err != nil {
		return nil, err
	}
	list := make([]resolved.Expr, len(e.Values))
	for i, v := range e.Values {
		val, err := AnalyzeExpr(ctx, cat, q, v)
		if err != nil {
			return nil, err
		}
		list[i] = resolved.AddCast(val, arg.Type())
	}
	in := &resolved.InValuesExpr{T: types.SQLType{Kind: types.Boolean}, Arg: arg, List: list}
	if e.Negate {
		return &resolved.UOper{T: types.SQLType{Kind: types.Boolean}, Op: types.Not, Operand: in}, nil
	}
	return in, nil
}

// analyzeBetween rewrites arg BETWEEN lower AND upper as
// (arg >= lower) AND (arg <= upper), with the upper predicate built
// around a deep copy of arg since the resolved tree owns each node
// exclusively and arg must appear twice (spec.md §4.4, §5).
//
// The upper-bound comparison's coercion target is computed from
// (arg, lower) rather than (arg, upper) — this reproduces a defect in
// original_source/Parser/ParserNode.cpp's BetweenExpr::analyze rather
// than silently fixing it (spec.md §9 open question).
func analyzeBetween(ctx context.Context, cat catalog.Catalog, q *resolved.Query, e *ast.BetweenExpr) (resolved.Expr, error) {
	arg, err := AnalyzeExpr(ctx, cat, q, e.Arg)
	if err != nil {
		return nil, err
	}
	lower, err := AnalyzeExpr(ctx, cat, q, e.Lower)
	if err != nil {
		return nil, err
	}
	upper, err := AnalyzeExpr(ctx, cat, q, e.Upper)
	if err != nil {
		return nil, err
	}

	_, argT1, lowerT, err := types.AnalyzeBinopTypes(types.Ge, arg.Type(), lower.Type())
	if err != nil {
		return nil, err
	}
	lowPred := &resolved.BinOper{
		T:     types.SQLType{Kind: types.Boolean},
		Op:    types.Ge,
		Left:  resolved.AddCast(resolved.DeepCopy(arg), argT1),
		Right: resolved.AddCast(lower, lowerT),
	}

	// Bug-compatible: the coercion target for the upper bound is computed
	// from (arg, lower), reusing argT1/lowerT from the call above, instead
	// of calling AnalyzeBinopTypes(LE, arg.Type(), upper.Type()).
	upperPred := &resolved.BinOper{
		T:     types.SQLType{Kind: types.Boolean},
		Op:    types.Le,
		Left:  resolved.AddCast(resolved.DeepCopy(arg), argT1),
		Right: resolved.AddCast(upper, lowerT),
	}

	and := &resolved.BinOper{T: types.SQLType{Kind: types.Boolean}, Op: types.And, Left: lowPred, Right: upperPred}
	if e.Negate {
		return &resolved.UOper{T: types.SQLType{Kind: types.Boolean}, Op: types.Not, Operand: and}, nil
	}
	return and, nil
}

func analyzeLike(ctx context.Context, cat catalog.Catalog, q *resolved.Query, e *ast.LikeExpr) (resolved.Expr, error) {
	arg, err := AnalyzeExpr(ctx, cat, q, e.Arg)
	if err != nil {
		return nil, err
	}
	if !arg.Type().IsString() && !arg.Type().IsNull() {
		return nil, queryerr.LikeOperandMustBeString("before LIKE")
	}
	like, err := AnalyzeExpr(ctx, cat, q, e.Like)
	if err != nil {
		return nil, err
	}
	if !like.Type().IsString() && !like.Type().IsNull() {
		return nil, queryerr.LikeOperandMustBeString("after LIKE")
	}
	var escape resolved.Expr
	if e.Escape != nil {
		escape, err = AnalyzeExpr(ctx, cat, q, e.Escape)
		if err != nil {
			return nil, err
		}
		if !escape.Type().IsString() && !escape.Type().IsNull() {
			return nil, queryerr.LikeOperandMustBeString("after ESCAPE")
		}
	}
	like2 := &resolved.LikeExpr{T: types.SQLType{Kind: types.Boolean}, Arg: arg, Like: like, Escape: escape}
	if e.Negate {
		return &resolved.UOper{T: types.SQLType{Kind: types.Boolean}, Op: types.Not, Operand: like2}, nil
	}
	return like2, nil
}

// aggregateKinds is the closed, case-insensitive set spec.md §4.4
// recognizes. COUNT is the only one allowed to omit its argument.
var aggregateKinds = map[string]bool{"COUNT": true, "MIN": true, "MAX": true, "AVG": true, "SUM": true}

func analyzeFunctionRef(ctx context.Context, cat catalog.Catalog, q *resolved.Query, f *ast.FunctionRef) (resolved.Expr, error) {
	name := strings.ToUpper(f.Name)
	if !aggregateKinds[name] {
		return nil, queryerr.InvalidFunctionName(f.Name)
	}

	var arg resolved.Expr
	if f.Arg != nil {
		var err error
		arg, err = AnalyzeExpr(ctx, cat, q, f.Arg)
		if err != nil {
			return nil, err
		}
	} else if name != "COUNT" {
		return nil, queryerr.InvalidFunctionName(f.Name + "() requires an argument")
	}

	resultType := types.SQLType{Kind: types.Bigint}
	if name != "COUNT" {
		resultType = arg.Type()
	}

	q.NumAggs++
	return &resolved.AggExpr{T: resultType, Kind: name, Arg: arg, Distinct: f.Distinct}, nil
}

func analyzeCase(ctx context.Context, cat catalog.Catalog, q *resolved.Query, c *ast.CaseExpr) (resolved.Expr, error) {
	type branch struct {
		when resolved.Expr
		then resolved.Expr
	}
	branches := make([]branch, len(c.WhenThenList))

	var common types.SQLType
	haveCommon := false

	unify := func(t types.SQLType) error {
		if !haveCommon {
			common = t
			haveCommon = true
			return nil
		}
		if t.Kind == types.Nullt {
			return nil
		}
		if common.Kind == types.Nullt {
			common = t
			return nil
		}
		switch {
		case common.IsString() && t.IsString():
			common = types.CommonStringType(common, t)
		case common.IsNumeric() && t.IsNumeric():
			common = types.CommonNumericType(common, t)
		case common.Equals(t):
			// already identical, nothing to widen
		default:
			return queryerr.IncompatibleBranchTypes("THEN")
		}
		return nil
	}

	for i, wt := range c.WhenThenList {
		when, err := AnalyzeExpr(ctx, cat, q, wt.When)
		if err != nil {
			return nil, err
		}
		if when.Type().Kind != types.Boolean {
			return nil, queryerr.MustBeBoolean("WHEN")
		}
		then, err := AnalyzeExpr(ctx, cat, q, wt.Then)
		if err != nil {
			return nil, err
		}
		if err := unify(then.Type()); err != nil {
			return nil, err
		}
		branches[i] = branch{when: when, then: then}
	}

	var elseExpr resolved.Expr
	if c.Else != nil {
		var err error
		elseExpr, err = AnalyzeExpr(ctx, cat, q, c.Else)
		if err != nil {
			return nil, err
		}
		if err := unify(elseExpr.Type()); err != nil {
			return nil, queryerr.IncompatibleBranchTypes("ELSE")
		}
	}

	if !haveCommon {
		common = types.SQLType{Kind: types.Nullt}
	}

	pairs := make([]resolved.CasePair, len(branches))
	for i, b := range branches {
		pairs[i] = resolved.CasePair{When: b.when, Then: resolved.AddCast(b.then, common)}
	}
	var finalElse resolved.Expr
	if elseExpr != nil {
		finalElse = resolved.AddCast(elseExpr, common)
	}

	return &resolved.CaseExpr{T: common, Pairs: pairs, Else: finalElse}, nil
}
