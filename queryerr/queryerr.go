// Package queryerr implements spec.md §7's error model: a single error
// kind — analysis failure — carrying a human-readable message, grounded
// on the teacher's gopkg.in/src-d/go-errors.v1 idiom (sql/errors.go and
// sql/plan/ddl.go both declare package-level errors.NewKind values and
// instantiate them with .New(...)). Every failure in this repo — whether
// raised during analyze or during a DDL execute — is this one kind, just
// built from a different message-constructor helper per taxonomy group
// in spec.md §7, so callers can test `ErrAnalysis.Is(err)` uniformly
// instead of switching on a dozen sentinel kinds.
package queryerr

import (
	"fmt"

	"gopkg.in/src-d/go-errors.v1"
)

// ErrAnalysis is the single error kind spec.md §7 calls for. No partial
// result ever escapes an analyze/execute call that returns this error;
// the in-progress Query is abandoned by the caller (spec.md §7).
var ErrAnalysis = errors.NewKind("%s")

func newf(format string, args ...interface{}) error {
	return ErrAnalysis.New(fmt.Sprintf(format, args...))
}

// --- Name resolution ---

func DoesNotExist(what, name string) error {
	return newf("%s %s does not exist", what, name)
}

func Ambiguous(name string) error {
	return newf("%s is ambiguous", name)
}

func InvalidRangeVariable(name string) error {
	return newf("invalid range variable name %s", name)
}

func InvalidColumnStar() error {
	return newf("invalid column name *")
}

// --- Type ---

func MustBeBoolean(clause string) error {
	return newf("Only boolean expressions can be in %s clause", clause)
}

func IncompatibleBranchTypes(clause string) error {
	return newf("expressions in %s clause must be of the same or compatible types", clause)
}

func ColumnNotInGroupBy(clause, colName string) error {
	return newf("column %s must appear in the GROUP BY clause or be used in an aggregate function (%s)", colName, clause)
}

func LikeOperandMustBeString(position string) error {
	return newf("expression %s must be of a string type", position)
}

func InvalidFunctionName(name string) error {
	return newf("invalid function name: %s", name)
}

// --- Unsupported ---

func Unsupported(what string) error {
	return newf("%s not supported yet", what)
}

func SubqueriesUnsupported() error {
	return newf("Subqueries are not supported yet")
}

func NonMaterializedViewUnsupported(name string) error {
	return newf("Non-materialized view %s is not supported yet", name)
}

func InsertToViewsUnsupported() error {
	return newf("Insert to views is not supported yet")
}

func TableConstraintsUnsupported() error {
	return newf("Table constraints are not supported yet")
}

// --- Arity ---

func ArityMismatch(what string, want, got int) error {
	return newf("%s expects %d values, got %d", what, want, got)
}

// --- DDL option validation ---

func InvalidCompressionScheme(name string) error {
	return newf("invalid compression scheme %s", name)
}

func InvalidBitWidth(n int) error {
	return newf("bit width %d must be a positive multiple of 8 up to 48", n)
}

func SparseRequiresNullable(col string) error {
	return newf("column %s must be nullable to use sparse compression", col)
}

func InvalidStorageOption(value string) error {
	return newf("invalid storage option %s", value)
}

func InvalidRefreshOption(value string) error {
	return newf("invalid refresh option %s", value)
}

func InvalidIsSuperValue(value string) error {
	return newf("invalid IS_SUPER value %s", value)
}

func InvalidOption(name string) error {
	return newf("invalid option %s", name)
}

func OptionMustBeLiteral(name, wantKind string) error {
	return newf("option %s must be a %s literal", name, wantKind)
}

func MissingRequiredOption(name string) error {
	return newf("option %s is required", name)
}

func OptionMustBePositive(name string, got int64) error {
	return newf("option %s must be a positive integer, got %d", name, got)
}

// --- Authorization / context ---

func MustBeInSystemDB(action string) error {
	return newf("Must be in the system database to %s", action)
}

// --- Existence ---

func AlreadyExists(what, name string) error {
	return newf("%s %s already exists", what, name)
}

// --- DDL routing ---

func MustUseDropView(name string) error {
	return newf("%s is a view; use DROP VIEW", name)
}

func MustUseDropTable(name string) error {
	return newf("%s is not a view; use DROP TABLE", name)
}

// --- Internal ---

func InternalSyntax(text string) error {
	return newf("syntax error at: %s", text)
}
