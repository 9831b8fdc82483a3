package executor

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/queryerr"
)

func requireSystemDB(ctx context.Context, sysCat catalog.SystemCatalog, action string) error {
	if sysCat.CurrentDB(ctx).DBName != catalog.MAPDSystemDB {
		return queryerr.MustBeInSystemDB(action)
	}
	return nil
}

// ExecuteCreateDatabase implements CreateDatabaseStmt::execute (spec.md
// §4.6). Catalog has no standalone database-existence lookup (spec.md
// §6's interface list), so CreateDatabase's own duplicate rejection is
// the only signal this repo has for "already exists".
func ExecuteCreateDatabase(ctx context.Context, sysCat catalog.SystemCatalog, stmt *ast.CreateDatabaseStmt) error {
	span, ctx := startSpan(ctx, "execute_create_database")
	defer span.Finish()

	if err := requireSystemDB(ctx, sysCat, "CREATE DATABASE"); err != nil {
		return err
	}

	ownerID := sysCat.CurrentUser(ctx).UserID
	for _, opt := range stmt.Options {
		if !eqFold(opt.Name, "OWNER") {
			return queryerr.InvalidOption(opt.Name)
		}
		name, err := stringOption(opt)
		if err != nil {
			return err
		}
		u, ok, err := sysCat.GetMetadataForUser(ctx, name)
		if err != nil {
			return err
		}
		if !ok {
			return queryerr.DoesNotExist("User", name)
		}
		ownerID = u.UserID
	}

	if err := sysCat.CreateDatabase(ctx, stmt.Name, ownerID); err != nil {
		if stmt.IfNotExists {
			return nil
		}
		return queryerr.AlreadyExists("Database", stmt.Name)
	}
	logrus.WithField("database", stmt.Name).Info("created database")
	return nil
}

// ExecuteDropDatabase implements DropDatabaseStmt::execute. Catalog gives
// no way to probe whether a database exists ahead of the drop, so
// IF EXISTS cannot be distinguished here beyond "don't error" — the same
// limitation CreateDatabase has on the existence side.
func ExecuteDropDatabase(ctx context.Context, sysCat catalog.SystemCatalog, stmt *ast.DropDatabaseStmt) error {
	span, ctx := startSpan(ctx, "execute_drop_database")
	defer span.Finish()

	if err := requireSystemDB(ctx, sysCat, "DROP DATABASE"); err != nil {
		return err
	}
	if err := sysCat.DropDatabase(ctx, stmt.Name); err != nil {
		if stmt.IfExists {
			return nil
		}
		return queryerr.DoesNotExist("Database", stmt.Name)
	}
	logrus.WithField("database", stmt.Name).Info("dropped database")
	return nil
}

// ExecuteCreateUser implements CreateUserStmt::execute: PASSWORD is
// required, IS_SUPER optional and defaults to false.
func ExecuteCreateUser(ctx context.Context, sysCat catalog.SystemCatalog, stmt *ast.CreateUserStmt) error {
	span, ctx := startSpan(ctx, "execute_create_user")
	defer span.Finish()

	if err := requireSystemDB(ctx, sysCat, "CREATE USER"); err != nil {
		return err
	}

	var password *string
	isSuper := false
	for _, opt := range stmt.Options {
		switch {
		case eqFold(opt.Name, "PASSWORD"):
			v, err := stringOption(opt)
			if err != nil {
				return err
			}
			password = &v
		case eqFold(opt.Name, "IS_SUPER"):
			v, err := stringOption(opt)
			if err != nil {
				return err
			}
			b, err := parseBoolOption(v)
			if err != nil {
				return err
			}
			isSuper = b
		default:
			return queryerr.InvalidOption(opt.Name)
		}
	}
	if password == nil {
		return queryerr.MissingRequiredOption("PASSWORD")
	}

	if err := sysCat.CreateUser(ctx, stmt.Name, *password, isSuper); err != nil {
		return queryerr.AlreadyExists("User", stmt.Name)
	}
	logrus.WithField("user", stmt.Name).Info("created user")
	return nil
}

// ExecuteAlterUser implements AlterUserStmt::execute: PASSWORD and
// IS_SUPER are both optional, but each given option must be a string
// literal.
func ExecuteAlterUser(ctx context.Context, sysCat catalog.SystemCatalog, stmt *ast.AlterUserStmt) error {
	span, ctx := startSpan(ctx, "execute_alter_user")
	defer span.Finish()

	if err := requireSystemDB(ctx, sysCat, "ALTER USER"); err != nil {
		return err
	}

	var password *string
	var isSuper *bool
	for _, opt := range stmt.Options {
		switch {
		case eqFold(opt.Name, "PASSWORD"):
			v, err := stringOption(opt)
			if err != nil {
				return err
			}
			password = &v
		case eqFold(opt.Name, "IS_SUPER"):
			v, err := stringOption(opt)
			if err != nil {
				return err
			}
			b, err := parseBoolOption(v)
			if err != nil {
				return err
			}
			isSuper = &b
		default:
			return queryerr.InvalidOption(opt.Name)
		}
	}

	if err := sysCat.AlterUser(ctx, stmt.Name, password, isSuper); err != nil {
		return queryerr.DoesNotExist("User", stmt.Name)
	}
	logrus.WithField("user", stmt.Name).Info("altered user")
	return nil
}

// ExecuteDropUser implements DropUserStmt::execute.
func ExecuteDropUser(ctx context.Context, sysCat catalog.SystemCatalog, stmt *ast.DropUserStmt) error {
	span, ctx := startSpan(ctx, "execute_drop_user")
	defer span.Finish()

	if err := requireSystemDB(ctx, sysCat, "DROP USER"); err != nil {
		return err
	}
	if err := sysCat.DropUser(ctx, stmt.Name); err != nil {
		return queryerr.DoesNotExist("User", stmt.Name)
	}
	logrus.WithField("user", stmt.Name).Info("dropped user")
	return nil
}

func parseBoolOption(v string) (bool, error) {
	switch {
	case eqFold(v, "TRUE"):
		return true, nil
	case eqFold(v, "FALSE"):
		return false, nil
	default:
		return false, queryerr.InvalidIsSuperValue(v)
	}
}
