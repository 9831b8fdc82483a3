// Package executor implements C7: the DDL/DCL executor. Each statement
// exposes an execute(catalog) contract (spec.md §4.6), applied here as a
// type switch with a default "not supported" fallback, the same shape
// analyzer.AnalyzeStmt uses for DML (spec.md §9 "Statement dispatch").
// Grounded on the teacher's sql/plan/ddl.go, dbddl.go, create_user.go:
// one node per statement kind, options resolved from expression literals
// before ever touching the catalog.
package executor

import (
	"strings"

	"github.com/mapd-project/queryfront/ast"
	"github.com/mapd-project/queryfront/queryerr"
)

func stringOption(opt ast.NameValueOption) (string, error) {
	lit, ok := opt.Value.(*ast.StringLiteral)
	if !ok {
		return "", queryerr.OptionMustBeLiteral(opt.Name, "string")
	}
	return lit.Value, nil
}

// intOption extracts a positive integer literal, the form spec.md §4.6
// requires for FRAGMENT_SIZE and PAGE_SIZE (its only callers).
func intOption(opt ast.NameValueOption) (int64, error) {
	lit, ok := opt.Value.(*ast.IntLiteral)
	if !ok {
		return 0, queryerr.OptionMustBeLiteral(opt.Name, "integer")
	}
	if lit.Value <= 0 {
		return 0, queryerr.OptionMustBePositive(opt.Name, lit.Value)
	}
	return lit.Value, nil
}

func eqFold(a, b string) bool { return strings.EqualFold(a, b) }
