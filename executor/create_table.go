package executor

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/catalog"
	"github.com/mapd-project/queryfront/queryerr"
)

// ExecuteCreateTable implements CreateTableStmt::execute (spec.md §4.6).
func ExecuteCreateTable(ctx context.Context, cat catalog.Catalog, stmt *ast.CreateTableStmt) error {
	span, ctx := startSpan(ctx, "execute_create_table")
	defer span.Finish()

	if _, ok, err := cat.GetMetadataForTable(ctx, stmt.Table); err != nil {
		return err
	} else if ok {
		if stmt.IfNotExists {
			return nil
		}
		return queryerr.AlreadyExists("Table", stmt.Table)
	}

	fragSize := int64(catalog.DefaultFragmentSize)
	pageSize := int64(catalog.DefaultPageSize)
	for _, opt := range stmt.Options {
		switch {
		case eqFold(opt.Name, "FRAGMENT_SIZE"):
			v, err := intOption(opt)
			if err != nil {
				return err
			}
			fragSize = v
		case eqFold(opt.Name, "PAGE_SIZE"):
			v, err := intOption(opt)
			if err != nil {
				return err
			}
			pageSize = v
		default:
			return queryerr.InvalidOption(opt.Name)
		}
	}

	columns := make([]catalog.ColumnDescriptor, 0, len(stmt.Elements))
	for _, el := range stmt.Elements {
		cd, ok := el.(*ast.ColumnDef)
		if !ok {
			return queryerr.TableConstraintsUnsupported()
		}
		sqlT := cd.Type.SQLType()
		sqlT.NotNull = cd.NotNull
		compKind, compParam, err := resolveCompression(cd.Compression, cd.Name, !cd.NotNull)
		if err != nil {
			return err
		}
		columns = append(columns, catalog.ColumnDescriptor{
			ColumnName:  cd.Name,
			ColumnType:  sqlT,
			Compression: compKind,
			CompParam:   compParam,
		})
	}

	td := catalog.TableDescriptor{
		TableName:     stmt.Table,
		IsView:        false,
		StorageOption: catalog.StorageDisk,
		RefreshOption: catalog.RefreshManual,
		IsReady:       true,
		FragType:      catalog.FragmentInsertOrder,
		MaxFragRows:   int(fragSize),
		FragPageSize:  int(pageSize),
	}
	if err := cat.CreateTable(ctx, td, columns); err != nil {
		return err
	}
	logrus.WithField("table", stmt.Table).Info("created table")
	return nil
}

// resolveCompression implements the ENCODING-clause validation table in
// spec.md §4.6: fixed/sparse bit widths must be a positive multiple of 8
// up to 48, and sparse additionally requires the column be nullable.
func resolveCompression(spec *ast.CompressionSpec, colName string, nullable bool) (catalog.CompressionKind, int, error) {
	if spec == nil {
		return catalog.CompressionNone, 0, nil
	}
	validBitWidth := func(n int) bool { return n > 0 && n%8 == 0 && n <= 48 }
	switch strings.ToLower(spec.Scheme) {
	case "fixed":
		if !validBitWidth(spec.Param) {
			return 0, 0, queryerr.InvalidBitWidth(spec.Param)
		}
		return catalog.CompressionFixed, spec.Param, nil
	case "rl":
		return catalog.CompressionRL, 0, nil
	case "diff":
		return catalog.CompressionDiff, 0, nil
	case "dict":
		return catalog.CompressionDict, 0, nil
	case "sparse":
		if !validBitWidth(spec.Param) {
			return 0, 0, queryerr.InvalidBitWidth(spec.Param)
		}
		if !nullable {
			return 0, 0, queryerr.SparseRequiresNullable(colName)
		}
		return catalog.CompressionSparse, spec.Param, nil
	default:
		return 0, 0, queryerr.InvalidCompressionScheme(spec.Scheme)
	}
}
