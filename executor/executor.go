package executor

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/planner"
	"github.com/mapd-project/queryfront/queryerr"
)

// Execute is the single entry point for DDL/DCL execution: it dispatches
// on the concrete ast.Stmt type, the same "type switch with a default
// not-supported fallback" shape analyzer.AnalyzeStmt uses for DML
// (spec.md §9 "Statement dispatch"). sysCat and p are only required by
// the statement kinds that need them (database/user DDL, REFRESH VIEW
// respectively); every other kind ignores them.
func Execute(ctx context.Context, cat catalog.Catalog, sysCat catalog.SystemCatalog, p Parser, pl planner.Planner, stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.CreateTableStmt:
		return ExecuteCreateTable(ctx, cat, s)
	case *ast.DropTableStmt:
		return ExecuteDropTable(ctx, cat, s)
	case *ast.CreateViewStmt:
		return ExecuteCreateView(ctx, cat, s)
	case *ast.DropViewStmt:
		return ExecuteDropView(ctx, cat, s)
	case *ast.RefreshViewStmt:
		return ExecuteRefreshView(ctx, cat, p, pl, s)
	case *ast.CreateDatabaseStmt:
		return ExecuteCreateDatabase(ctx, sysCat, s)
	case *ast.DropDatabaseStmt:
		return ExecuteDropDatabase(ctx, sysCat, s)
	case *ast.CreateUserStmt:
		return ExecuteCreateUser(ctx, sysCat, s)
	case *ast.AlterUserStmt:
		return ExecuteAlterUser(ctx, sysCat, s)
	case *ast.DropUserStmt:
		return ExecuteDropUser(ctx, sysCat, s)
	default:
		err := queryerr.Unsupported("statement")
		logrus.WithField("err", err).Error("unhandled statement kind in Execute")
		return err
	}
}
