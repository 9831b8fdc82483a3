package analyzer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/queryerr"
	"github.com/mapd-project/queryfront/resolved"
	"github.com/mapd-project/queryfront/types"
)

// AnalyzeQueryExpr dispatches a query expression to QuerySpec or Union
// analysis (C6).
func AnalyzeQueryExpr(ctx context.Context, cat catalog.Catalog, qe ast.QueryExpr) (*resolved.Query, error) {
	switch v := qe.(type) {
	case *ast.QuerySpec:
		return analyzeQuerySpec(ctx, cat, v)
	case *ast.UnionQuery:
		return analyzeUnionQuery(ctx, cat, v)
	default:
		return nil, queryerr.Unsupported("query expression")
	}
}

// analyzeQuerySpec runs clause analysis in the fixed order spec.md §4.5
// requires: FROM -> SELECT -> WHERE -> GROUP BY -> HAVING. Order is
// load-bearing: SELECT/WHERE name resolution depends on the range table
// already being populated; HAVING's group-by check depends on both the
// target list and GROUP BY already being resolved.
func analyzeQuerySpec(ctx context.Context, cat catalog.Catalog, qs *ast.QuerySpec) (*resolved.Query, error) {
	q := &resolved.Query{StmtKind: resolved.Select, IsDistinct: qs.Distinct}

	// FROM
	rtes, err := buildRangeTable(ctx, cat, qs.From)
	if err != nil {
		return nil, err
	}
	q.RangeTable = rtes

	// SELECT
	span, sctx := startSpan(ctx, "analyze_select")
	if err := analyzeSelectList(sctx, cat, q, qs.Select); err != nil {
		span.Finish()
		return nil, err
	}
	span.Finish()

	// WHERE
	if qs.Where != nil {
		pred, err := AnalyzeExpr(ctx, cat, q, qs.Where)
		if err != nil {
			return nil, err
		}
		pred, err = requireBoolean(pred, "WHERE")
		if err != nil {
			return nil, err
		}
		q.WherePredicate = pred
	}

	// GROUP BY
	for _, ge := range qs.GroupBy {
		g, err := AnalyzeExpr(ctx, cat, q, ge)
		if err != nil {
			return nil, err
		}
		q.GroupBy = append(q.GroupBy, g)
	}
	if q.NumAggs > 0 || q.GroupBy != nil {
		for _, te := range q.TargetList {
			if err := checkGroupBy(ctx, cat, te.Expr, q.GroupBy, "SELECT"); err != nil {
				return nil, err
			}
		}
	}

	// HAVING
	if qs.Having != nil {
		pred, err := AnalyzeExpr(ctx, cat, q, qs.Having)
		if err != nil {
			return nil, err
		}
		pred, err = requireBoolean(pred, "HAVING")
		if err != nil {
			return nil, err
		}
		if err := checkGroupBy(ctx, cat, pred, q.GroupBy, "HAVING"); err != nil {
			return nil, err
		}
		q.HavingPredicate = pred
	}

	logrus.WithField("num_aggs", q.NumAggs).Debug("analyzed query spec")
	return q, nil
}

func requireBoolean(e resolved.Expr, clause string) (resolved.Expr, error) {
	if e.Type().Kind == types.Boolean {
		return e, nil
	}
	if e.Type().Kind == types.Nullt {
		return resolved.AddCast(e, types.SQLType{Kind: types.Boolean}), nil
	}
	return nil, queryerr.MustBeBoolean(clause)
}

// analyzeSelectList implements spec.md §4.5's SELECT bullet: a nil
// select list means SELECT * (expand every RTE in order); a *ColumnRef
// entry with a nil Column is a star or qualified-star marker expanded
// via the range table rather than run through general expression
// analysis; everything else is analyzed normally with a derived resname.
func analyzeSelectList(ctx context.Context, cat catalog.Catalog, q *resolved.Query, entries []ast.SelectEntry) error {
	if entries == nil {
		for idx := range q.RangeTable {
			tes, err := expandStarInTargetList(ctx, cat, q, idx)
			if err != nil {
				return err
			}
			q.TargetList = append(q.TargetList, tes...)
		}
		return nil
	}

	for _, entry := range entries {
		if ref, ok := entry.Expr.(*ast.ColumnRef); ok && ref.Column == nil {
			if ref.Table != nil {
				idx, _, ok := findRTEByName(q, *ref.Table)
				if !ok {
					return queryerr.InvalidRangeVariable(*ref.Table)
				}
				tes, err := expandStarInTargetList(ctx, cat, q, idx)
				if err != nil {
					return err
				}
				q.TargetList = append(q.TargetList, tes...)
				continue
			}
			for idx := range q.RangeTable {
				tes, err := expandStarInTargetList(ctx, cat, q, idx)
				if err != nil {
					return err
				}
				q.TargetList = append(q.TargetList, tes...)
			}
			continue
		}

		resolvedExpr, err := AnalyzeExpr(ctx, cat, q, entry.Expr)
		if err != nil {
			return err
		}
		q.TargetList = append(q.TargetList, resolved.TargetEntry{
			ResName: deriveResName(ctx, cat, entry, resolvedExpr),
			Expr:    resolvedExpr,
		})
	}
	return nil
}

func deriveResName(ctx context.Context, cat catalog.Catalog, entry ast.SelectEntry, e resolved.Expr) string {
	if entry.Alias != "" {
		return entry.Alias
	}
	if cv, ok := e.(*resolved.ColumnVar); ok {
		cd, ok, err := cat.GetMetadataForColumnByID(ctx, cv.TableID, cv.ColumnID)
		if err == nil && ok {
			return cd.ColumnName
		}
	}
	return ""
}

// analyzeUnionQuery implements UnionQuery::analyze: the left side is
// analyzed as the query returned from this call; the right side is
// analyzed into a fresh Query and chained onto the tail of the left
// chain via NextQuery, with IsUnionAll copied onto that link.
func analyzeUnionQuery(ctx context.Context, cat catalog.Catalog, u *ast.UnionQuery) (*resolved.Query, error) {
	left, err := AnalyzeQueryExpr(ctx, cat, u.Left)
	if err != nil {
		return nil, err
	}
	right, err := AnalyzeQueryExpr(ctx, cat, u.Right)
	if err != nil {
		return nil, err
	}

	tail := left
	for tail.NextQuery != nil {
		tail = tail.NextQuery
	}
	tail.NextQuery = right
	tail.IsUnionAll = u.IsUnionAll
	return left, nil
}

// AnalyzeSelectStmt implements SelectStmt::analyze: sets the statement
// kind and limit/offset, delegates to the query expression, then resolves
// ORDER BY (a zero column number means resolve by name against the target
// list's 1-based result index).
func AnalyzeSelectStmt(ctx context.Context, cat catalog.Catalog, stmt *ast.SelectStmt) (*resolved.Query, error) {
	span, ctx := startSpan(ctx, "analyze_select_stmt")
	defer span.Finish()

	q, err := AnalyzeQueryExpr(ctx, cat, stmt.Query)
	if err != nil {
		return nil, err
	}
	q.Limit = stmt.Limit
	q.Offset = stmt.Offset

	for _, ob := range stmt.OrderBy {
		idx := ob.TargetIndex
		if idx == 0 {
			idx = findTargetIndexByName(q, ob.Name)
			if idx == 0 {
				return nil, queryerr.DoesNotExist("ORDER BY target", ob.Name)
			}
		}
		q.OrderBy = append(q.OrderBy, resolved.OrderEntry{
			TargetIndex:  idx,
			IsDescending: ob.Desc,
			NullsFirst:   ob.NullsFirst,
		})
	}
	return q, nil
}

func findTargetIndexByName(q *resolved.Query, name string) int {
	for i, te := range q.TargetList {
		if te.ResName == name {
			return i + 1
		}
	}
	return 0
}
