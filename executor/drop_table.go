package executor

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/queryerr"
)

// ExecuteDropTable implements DropTableStmt::execute (spec.md §4.6).
func ExecuteDropTable(ctx context.Context, cat catalog.Catalog, stmt *ast.DropTableStmt) error {
	span, ctx := startSpan(ctx, "execute_drop_table")
	defer span.Finish()

	td, ok, err := cat.GetMetadataForTable(ctx, stmt.Table)
	if err != nil {
		return err
	}
	if !ok {
		if stmt.IfExists {
			return nil
		}
		return queryerr.DoesNotExist("Table", stmt.Table)
	}
	if td.IsView {
		return queryerr.MustUseDropView(stmt.Table)
	}
	if err := cat.DropTable(ctx, *td); err != nil {
		return err
	}
	logrus.WithField("table", stmt.Table).Info("dropped table")
	return nil
}
