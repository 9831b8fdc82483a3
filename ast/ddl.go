package ast

// NameValueOption is one WITH (...) storage/refresh/administration option;
// Value is an expression so a literal type mismatch can be reported with
// the same machinery as any other literal.
type NameValueOption struct {
	Name  string
	Value Expr
}

// TableElement is a CREATE TABLE element: either a ColumnDef or a
// TableConstraintDef (every constraint form fails — table constraints
// are not supported, per spec.md §4.6).
type TableElement interface {
	tableElementNode()
}

// CompressionSpec names one of NONE (absent)/FIXED(n)/RL/DIFF/DICT/
// SPARSE(n) as written in an ENCODING clause.
type CompressionSpec struct {
	Scheme string // "fixed", "rl", "diff", "dict", "sparse"
	Param  int
}

type ColumnDef struct {
	Name        string
	Type        TypeName
	NotNull     bool
	Compression *CompressionSpec
}

func (*ColumnDef) tableElementNode() {}

// TableConstraintDef represents any table-level constraint clause
// (PRIMARY KEY, FOREIGN KEY, UNIQUE, CHECK, ...); none are supported.
type TableConstraintDef struct{}

func (*TableConstraintDef) tableElementNode() {}

type CreateTableStmt struct {
	Table       string
	IfNotExists bool
	Elements    []TableElement
	Options     []NameValueOption
}

func (*CreateTableStmt) stmtNode() {}

type DropTableStmt struct {
	Table    string
	IfExists bool
}

func (*DropTableStmt) stmtNode() {}

type CreateViewStmt struct {
	View         string
	IfNotExists  bool
	Materialized bool
	Columns      []string // nil means "use the query's resnames"
	Query        QueryExpr
	Options      []NameValueOption
}

func (*CreateViewStmt) stmtNode() {}

type DropViewStmt struct {
	View     string
	IfExists bool
}

func (*DropViewStmt) stmtNode() {}

type RefreshViewStmt struct {
	View string
}

func (*RefreshViewStmt) stmtNode() {}

type CreateDatabaseStmt struct {
	Name        string
	IfNotExists bool
	Options     []NameValueOption
}

func (*CreateDatabaseStmt) stmtNode() {}

type DropDatabaseStmt struct {
	Name     string
	IfExists bool
}

func (*DropDatabaseStmt) stmtNode() {}

type CreateUserStmt struct {
	Name    string
	Options []NameValueOption
}

func (*CreateUserStmt) stmtNode() {}

type AlterUserStmt struct {
	Name    string
	Options []NameValueOption
}

func (*AlterUserStmt) stmtNode() {}

type DropUserStmt struct {
	Name string
}

func (*DropUserStmt) stmtNode() {}
