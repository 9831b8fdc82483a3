package ast

// Stmt is the closed variant over parsed top-level statements. DML
// statements expose an analyze contract (implemented externally by the
// analyzer package, see expr.go's comment on Expr); DDL/DCL statements
// expose an execute contract (implemented externally by the executor
// package). A statement kind that implements neither gets the default
// "not supported" handling the dispatcher provides.
type Stmt interface {
	stmtNode()
}

// TableRef names one FROM-clause entry. If RangeVar is nil the
// range-variable name equals Table.
type TableRef struct {
	Table    string
	RangeVar *string
}

// SelectEntry is one entry of an explicit select list. A nil Expr with
// Alias == "" never occurs; star/qualified-star entries are represented
// as a *ColumnRef with a nil Column, same as spec.md §4.3.
type SelectEntry struct {
	Expr  Expr
	Alias string
}

// QueryExpr is either a *QuerySpec or a *UnionQuery — the two shapes a
// SELECT's query expression can take.
type QueryExpr interface {
	queryExprNode()
}

// QuerySpec is one non-union SELECT/INSERT-source query body. Select ==
// nil means "SELECT *".
type QuerySpec struct {
	Distinct bool
	Select   []SelectEntry
	From     []TableRef
	Where    Expr
	GroupBy  []Expr
	Having   Expr
}

func (*QuerySpec) queryExprNode() {}

// UnionQuery chains a left and right query expression; Right may itself
// be a *UnionQuery for a chain of more than two arms.
type UnionQuery struct {
	Left       QueryExpr
	Right      QueryExpr
	IsUnionAll bool
}

func (*UnionQuery) queryExprNode() {}

// OrderByItem: TargetIndex == 0 means "resolve by name" against the
// target list using Name; a nonzero TargetIndex is used as-is (1-based).
type OrderByItem struct {
	TargetIndex int
	Name        string
	Desc        bool
	NullsFirst  bool
}

type SelectStmt struct {
	Query   QueryExpr
	OrderBy []OrderByItem
	Limit   *int64
	Offset  *int64
}

func (*SelectStmt) stmtNode() {}

// InsertStmt is the shared head of the two concrete INSERT forms:
// explicit values, or INSERT ... SELECT. Columns == nil means "every
// column of the table in catalog order."
type InsertStmt struct {
	Table   string
	Columns []string
}

type InsertValuesStmt struct {
	InsertStmt
	Values []Expr
}

func (*InsertValuesStmt) stmtNode() {}

type InsertQueryStmt struct {
	InsertStmt
	Query QueryExpr
}

func (*InsertQueryStmt) stmtNode() {}

// UpdateStmt and DeleteStmt are accepted by the parser but unconditionally
// rejected by analysis (Non-goals, spec.md §1).
type UpdateStmt struct {
	Table string
}

func (*UpdateStmt) stmtNode() {}

type DeleteStmt struct {
	Table string
}

func (*DeleteStmt) stmtNode() {}
