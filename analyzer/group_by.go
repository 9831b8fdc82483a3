package analyzer

import (
	"context"

	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/queryerr"
	"github.com/mapd-project/queryfront/resolved"
)

// checkGroupBy walks e and demands that every ColumnVar either appears
// verbatim in groupBy or is nested inside an AggExpr (spec.md §3
// invariant, §4.5). clause names the clause being checked, for the error
// message.
func checkGroupBy(ctx context.Context, cat catalog.Catalog, e resolved.Expr, groupBy []resolved.Expr, clause string) error {
	return checkGroupByRec(ctx, cat, e, groupBy, clause, false)
}

func checkGroupByRec(ctx context.Context, cat catalog.Catalog, e resolved.Expr, groupBy []resolved.Expr, clause string, insideAgg bool) error {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case *resolved.ColumnVar:
		if insideAgg {
			return nil
		}
		for _, g := range groupBy {
			if gv, ok := g.(*resolved.ColumnVar); ok && sameColumnVar(gv, v) {
				return nil
			}
		}
		return queryerr.ColumnNotInGroupBy(clause, columnVarName(ctx, cat, v))
	case *resolved.Constant:
		return nil
	case *resolved.UOper:
		return checkGroupByRec(ctx, cat, v.Operand, groupBy, clause, insideAgg)
	case *resolved.BinOper:
		if err := checkGroupByRec(ctx, cat, v.Left, groupBy, clause, insideAgg); err != nil {
			return err
		}
		return checkGroupByRec(ctx, cat, v.Right, groupBy, clause, insideAgg)
	case *resolved.InValuesExpr:
		if err := checkGroupByRec(ctx, cat, v.Arg, groupBy, clause, insideAgg); err != nil {
			return err
		}
		for _, item := range v.List {
			if err := checkGroupByRec(ctx, cat, item, groupBy, clause, insideAgg); err != nil {
				return err
			}
		}
		return nil
	case *resolved.LikeExpr:
		if err := checkGroupByRec(ctx, cat, v.Arg, groupBy, clause, insideAgg); err != nil {
			return err
		}
		if err := checkGroupByRec(ctx, cat, v.Like, groupBy, clause, insideAgg); err != nil {
			return err
		}
		return checkGroupByRec(ctx, cat, v.Escape, groupBy, clause, insideAgg)
	case *resolved.AggExpr:
		return checkGroupByRec(ctx, cat, v.Arg, groupBy, clause, true)
	case *resolved.CaseExpr:
		for _, p := range v.Pairs {
			if err := checkGroupByRec(ctx, cat, p.When, groupBy, clause, insideAgg); err != nil {
				return err
			}
			if err := checkGroupByRec(ctx, cat, p.Then, groupBy, clause, insideAgg); err != nil {
				return err
			}
		}
		return checkGroupByRec(ctx, cat, v.Else, groupBy, clause, insideAgg)
	case *resolved.Cast:
		return checkGroupByRec(ctx, cat, v.Arg, groupBy, clause, insideAgg)
	default:
		return nil
	}
}

func sameColumnVar(a, b *resolved.ColumnVar) bool {
	return a.TableID == b.TableID && a.ColumnID == b.ColumnID && a.RTEIndex == b.RTEIndex
}

// columnVarName resolves a ColumnVar back to its catalog column name for
// the error message; falls back to "<unknown>" if the catalog lookup
// fails (should not happen for a ColumnVar the analyzer itself
// produced, but this is an error path, not a hot one).
func columnVarName(ctx context.Context, cat catalog.Catalog, v *resolved.ColumnVar) string {
	if cd, ok, err := cat.GetMetadataForColumnByID(ctx, v.TableID, v.ColumnID); err == nil && ok {
		return cd.ColumnName
	}
	return "<unknown>"
}
