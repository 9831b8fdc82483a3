package executor

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mapd-project/queryfront/analyzer"
	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/planner"
	"github.com/mapd-project/queryfront/queryerr"
)

// Parser is the external collaborator REFRESH VIEW needs to turn its
// reconstructed "INSERT INTO <view> <viewSQL>" text back into a Stmt. The
// grammar driver that implements it is out of scope for this repo
// (spec.md §1); this interface names only the one call the executor
// makes into it.
type Parser interface {
	Parse(sql string) (ast.Stmt, error)
}

// ExecuteCreateView implements CreateViewStmt::execute, shared by both
// CREATE VIEW and CREATE MATERIALIZED VIEW (spec.md §4.6).
func ExecuteCreateView(ctx context.Context, cat catalog.Catalog, stmt *ast.CreateViewStmt) error {
	span, ctx := startSpan(ctx, "execute_create_view")
	defer span.Finish()

	if _, ok, err := cat.GetMetadataForTable(ctx, stmt.View); err != nil {
		return err
	} else if ok {
		if stmt.IfNotExists {
			return nil
		}
		return queryerr.AlreadyExists("View", stmt.View)
	}

	storage := catalog.StorageDisk
	refresh := catalog.RefreshManual
	for _, opt := range stmt.Options {
		switch {
		case eqFold(opt.Name, "STORAGE"):
			v, err := stringOption(opt)
			if err != nil {
				return err
			}
			switch {
			case eqFold(v, "GPU"):
				storage = catalog.StorageGPU
			case eqFold(v, "MIC"):
				storage = catalog.StorageMIC
			case eqFold(v, "CPU"):
				storage = catalog.StorageCPU
			case eqFold(v, "DISK"):
				storage = catalog.StorageDisk
			default:
				return queryerr.InvalidStorageOption(v)
			}
		case eqFold(opt.Name, "REFRESH"):
			v, err := stringOption(opt)
			if err != nil {
				return err
			}
			switch {
			case eqFold(v, "AUTO"):
				refresh = catalog.RefreshAuto
			case eqFold(v, "MANUAL"):
				refresh = catalog.RefreshManual
			case eqFold(v, "IMMEDIATE"):
				refresh = catalog.RefreshImmediate
			default:
				return queryerr.InvalidRefreshOption(v)
			}
		default:
			return queryerr.InvalidOption(opt.Name)
		}
	}

	q, err := analyzer.AnalyzeQueryExpr(ctx, cat, stmt.Query)
	if err != nil {
		return err
	}
	if stmt.Columns != nil {
		if len(stmt.Columns) != len(q.TargetList) {
			return queryerr.ArityMismatch("view column list", len(q.TargetList), len(stmt.Columns))
		}
		for i, name := range stmt.Columns {
			q.TargetList[i].ResName = name
		}
	}

	columns := make([]catalog.ColumnDescriptor, len(q.TargetList))
	for i, te := range q.TargetList {
		columns[i] = catalog.ColumnDescriptor{ColumnName: te.ResName, ColumnType: te.Expr.Type()}
	}

	viewSQL := ast.Stringify(&ast.SelectStmt{Query: stmt.Query})
	td := catalog.TableDescriptor{
		TableName:     stmt.View,
		IsView:        true,
		IsMaterialized: stmt.Materialized,
		ViewSQL:       viewSQL,
		StorageOption: storage,
		RefreshOption: refresh,
		IsReady:       !stmt.Materialized,
	}
	if err := cat.CreateTable(ctx, td, columns); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"view": stmt.View, "materialized": stmt.Materialized}).Info("created view")
	return nil
}

// ExecuteDropView implements DropViewStmt::execute, symmetric to
// ExecuteDropTable (spec.md §4.6).
func ExecuteDropView(ctx context.Context, cat catalog.Catalog, stmt *ast.DropViewStmt) error {
	span, ctx := startSpan(ctx, "execute_drop_view")
	defer span.Finish()

	td, ok, err := cat.GetMetadataForTable(ctx, stmt.View)
	if err != nil {
		return err
	}
	if !ok {
		if stmt.IfExists {
			return nil
		}
		return queryerr.DoesNotExist("View", stmt.View)
	}
	if !td.IsView {
		return queryerr.MustUseDropTable(stmt.View)
	}
	if err := cat.DropTable(ctx, *td); err != nil {
		return err
	}
	logrus.WithField("view", stmt.View).Info("dropped view")
	return nil
}

// ExecuteRefreshView implements RefreshViewStmt::execute. It re-parses
// "INSERT INTO <view> <viewSQL>", analyzes the result, and hands the
// resolved Query to the planner. Per spec.md §9 "Deferred behavior", the
// plan is produced and validated but never executed — the source leaves
// this as a TODO and this repo preserves that shape rather than
// fabricating an execution engine out of scope for this spec.
func ExecuteRefreshView(ctx context.Context, cat catalog.Catalog, p Parser, pl planner.Planner, stmt *ast.RefreshViewStmt) error {
	span, ctx := startSpan(ctx, "execute_refresh_view")
	defer span.Finish()

	td, ok, err := cat.GetMetadataForTable(ctx, stmt.View)
	if err != nil {
		return err
	}
	if !ok {
		return queryerr.DoesNotExist("View", stmt.View)
	}
	if !td.IsView {
		return queryerr.MustUseDropTable(stmt.View)
	}

	sqlText := "INSERT INTO " + stmt.View + " " + td.ViewSQL
	parsed, err := p.Parse(sqlText)
	if err != nil {
		return queryerr.InternalSyntax(sqlText)
	}
	insStmt, ok := parsed.(*ast.InsertQueryStmt)
	if !ok {
		return queryerr.InternalSyntax(sqlText)
	}

	q, err := analyzer.AnalyzeInsertQueryStmt(ctx, cat, insStmt)
	if err != nil {
		return err
	}
	if _, err := pl.Plan(ctx, q); err != nil {
		return err
	}

	// TODO: invoke the plan's execution once a physical execution engine
	// exists; the source leaves this step unimplemented too.
	logrus.WithField("view", stmt.View).Debug("planned REFRESH VIEW, execution deferred")
	return nil
}
