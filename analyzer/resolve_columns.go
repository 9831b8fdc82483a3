package analyzer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/queryerr"
	"github.com/mapd-project/queryfront/resolved"
)

// buildRangeTable creates one RTE per FROM-clause table reference
// (spec.md §4.3 "from_clause handling"). A view that is not materialized
// is rejected; a materialized view is accepted whether or not it has been
// refreshed (IsReady is not checked).
func buildRangeTable(ctx context.Context, cat catalog.Catalog, from []ast.TableRef) ([]resolved.RTE, error) {
	span, _ := startSpan(ctx, "analyze_from")
	defer span.Finish()

	rtes := make([]resolved.RTE, 0, len(from))
	for _, tr := range from {
		td, ok, err := cat.GetMetadataForTable(ctx, tr.Table)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, queryerr.DoesNotExist("Table", tr.Table)
		}
		if td.IsView && !td.IsMaterialized {
			return nil, queryerr.NonMaterializedViewUnsupported(tr.Table)
		}

		rangeVar := tr.Table
		if tr.RangeVar != nil {
			rangeVar = *tr.RangeVar
		}
		rtes = append(rtes, resolved.RTE{RangeVarName: rangeVar, Table: *td})
	}
	logrus.WithField("rtes", len(rtes)).Debug("built range table")
	return rtes, nil
}

// resolveColumnRef implements spec.md §4.3's ColumnRef::analyze rules 1–4.
// In select-list position the "*"/"t.*" marker is expanded by the caller
// and never reaches here; anywhere else it fails with "invalid column
// name *".
func resolveColumnRef(ctx context.Context, cat catalog.Catalog, q *resolved.Query, ref *ast.ColumnRef) (*resolved.ColumnVar, error) {
	if ref.Column == nil {
		return nil, queryerr.InvalidColumnStar()
	}
	colName := *ref.Column

	if ref.Table != nil {
		rteIdx, rte, ok := findRTEByName(q, *ref.Table)
		if !ok {
			return nil, queryerr.DoesNotExist("range variable or table name", *ref.Table)
		}
		cd, ok, err := cat.GetMetadataForColumnByName(ctx, rte.Table.TableID, colName)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, queryerr.DoesNotExist("Column name", colName)
		}
		return columnVarFor(*cd, rte.Table.TableID, rteIdx), nil
	}

	// No table qualifier: scan the range table in order, exactly one RTE
	// may contain the column.
	var found *resolved.ColumnVar
	var foundCount int
	for idx, rte := range q.RangeTable {
		cd, ok, err := cat.GetMetadataForColumnByName(ctx, rte.Table.TableID, colName)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		foundCount++
		found = columnVarFor(*cd, rte.Table.TableID, idx)
	}
	switch foundCount {
	case 0:
		return nil, queryerr.DoesNotExist("Column", colName)
	case 1:
		return found, nil
	default:
		return nil, queryerr.Ambiguous(colName)
	}
}

func columnVarFor(cd catalog.ColumnDescriptor, tableID int32, rteIndex int) *resolved.ColumnVar {
	return &resolved.ColumnVar{
		T:           cd.ColumnType,
		TableID:     tableID,
		ColumnID:    cd.ColumnID,
		RTEIndex:    rteIndex,
		Compression: int(cd.Compression),
		CompParam:   cd.CompParam,
	}
}

func findRTEByName(q *resolved.Query, name string) (int, resolved.RTE, bool) {
	for idx, rte := range q.RangeTable {
		if rte.RangeVarName == name {
			return idx, rte, true
		}
	}
	return 0, resolved.RTE{}, false
}

// expandStarInTargetList implements spec.md §4.3's
// expand_star_in_targetlist: appends one target entry per column of the
// RTE at rteIndex.
func expandStarInTargetList(ctx context.Context, cat catalog.Catalog, q *resolved.Query, rteIndex int) ([]resolved.TargetEntry, error) {
	rte := q.RangeTable[rteIndex]
	cols, err := cat.GetAllColumnMetadataForTable(ctx, rte.Table.TableID)
	if err != nil {
		return nil, err
	}
	entries := make([]resolved.TargetEntry, len(cols))
	for i, cd := range cols {
		entries[i] = resolved.TargetEntry{
			ResName: cd.ColumnName,
			Expr:    columnVarFor(cd, rte.Table.TableID, rteIndex),
		}
	}
	return entries, nil
}
