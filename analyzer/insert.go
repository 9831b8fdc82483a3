package analyzer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/queryerr"
	"github.com/mapd-project/queryfront/resolved"
)

// resolveInsertTarget implements InsertStmt::analyze's shared validation:
// the target table must exist and must not be a non-materialized view
// ("Insert to views is not supported yet"). A materialized view is a
// valid target; REFRESH VIEW fills one through INSERT INTO <view>. It
// resolves the column list, defaulting to every column of the table in
// catalog order when the statement gave none.
func resolveInsertTarget(ctx context.Context, cat catalog.Catalog, ins ast.InsertStmt) (int32, []catalog.ColumnDescriptor, error) {
	td, ok, err := cat.GetMetadataForTable(ctx, ins.Table)
	if err != nil {
		return 0, nil, err
	}
	if !ok {
		return 0, nil, queryerr.DoesNotExist("Table", ins.Table)
	}
	if td.IsView && !td.IsMaterialized {
		return 0, nil, queryerr.InsertToViewsUnsupported()
	}

	if ins.Columns == nil {
		cols, err := cat.GetAllColumnMetadataForTable(ctx, td.TableID)
		if err != nil {
			return 0, nil, err
		}
		return td.TableID, cols, nil
	}

	cols := make([]catalog.ColumnDescriptor, len(ins.Columns))
	for i, name := range ins.Columns {
		cd, ok, err := cat.GetMetadataForColumnByName(ctx, td.TableID, name)
		if err != nil {
			return 0, nil, err
		}
		if !ok {
			return 0, nil, queryerr.DoesNotExist("Column", name)
		}
		cols[i] = *cd
	}
	return td.TableID, cols, nil
}

// AnalyzeInsertValuesStmt implements InsertValuesStmt::analyze: each value
// expression is analyzed with no range table (a VALUES list may not
// reference columns) and cast to its corresponding target column's type.
func AnalyzeInsertValuesStmt(ctx context.Context, cat catalog.Catalog, stmt *ast.InsertValuesStmt) (*resolved.Query, error) {
	span, ctx := startSpan(ctx, "analyze_insert_values")
	defer span.Finish()

	tableID, cols, err := resolveInsertTarget(ctx, cat, stmt.InsertStmt)
	if err != nil {
		return nil, err
	}
	if len(stmt.Values) != len(cols) {
		return nil, queryerr.ArityMismatch("INSERT", len(cols), len(stmt.Values))
	}

	q := &resolved.Query{
		StmtKind:      resolved.Insert,
		ResultTableID: &tableID,
		ResultColList: cols,
	}
	for i, v := range stmt.Values {
		val, err := AnalyzeExpr(ctx, cat, q, v)
		if err != nil {
			return nil, err
		}
		val = resolved.AddCast(val, cols[i].ColumnType)
		q.TargetList = append(q.TargetList, resolved.TargetEntry{
			ResName: cols[i].ColumnName,
			Expr:    val,
		})
	}
	logrus.WithField("table", stmt.Table).Debug("analyzed INSERT ... VALUES")
	return q, nil
}

// AnalyzeInsertQueryStmt implements InsertQueryStmt::analyze: the embedded
// query is analyzed on its own (with its own FROM-clause range table),
// and the INSERT's target-table metadata is then attached to that same
// Query object rather than building a second one.
func AnalyzeInsertQueryStmt(ctx context.Context, cat catalog.Catalog, stmt *ast.InsertQueryStmt) (*resolved.Query, error) {
	span, ctx := startSpan(ctx, "analyze_insert_query")
	defer span.Finish()

	tableID, cols, err := resolveInsertTarget(ctx, cat, stmt.InsertStmt)
	if err != nil {
		return nil, err
	}

	q, err := AnalyzeQueryExpr(ctx, cat, stmt.Query)
	if err != nil {
		return nil, err
	}
	if len(q.TargetList) != len(cols) {
		return nil, queryerr.ArityMismatch("INSERT", len(cols), len(q.TargetList))
	}
	for i, te := range q.TargetList {
		q.TargetList[i].Expr = resolved.AddCast(te.Expr, cols[i].ColumnType)
		q.TargetList[i].ResName = cols[i].ColumnName
	}

	q.StmtKind = resolved.Insert
	q.ResultTableID = &tableID
	q.ResultColList = cols
	logrus.WithField("table", stmt.Table).Debug("analyzed INSERT ... SELECT")
	return q, nil
}
