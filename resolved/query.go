package resolved

import "github.com/mapd-project/queryfront/catalog"

type StmtKind int

const (
	Select StmtKind = iota
	Insert
	Update
	Delete
)

// RTE is one range-table entry: the binding from a FROM-clause range
// variable to a catalog table, optionally restricted to a column subset.
// A Query's range table is an ordered sequence; a ColumnVar.RTEIndex is
// the position of the RTE it was bound against (spec.md §3 invariant).
type RTE struct {
	RangeVarName string
	Table        catalog.TableDescriptor
	Columns      []catalog.ColumnDescriptor // nil means "every column"
}

// TargetEntry is one SELECT-list / INSERT column-list entry.
type TargetEntry struct {
	ResName string
	Expr    Expr
}

// OrderEntry.TargetIndex is 1-based, always resolved by the time a Query
// is fully analyzed (SelectStmt::analyze resolves a zero column number
// against the target list before building this).
type OrderEntry struct {
	TargetIndex int
	IsDescending bool
	NullsFirst   bool
}

// Query is the resolved representation spec.md §3 names. NextQuery chains
// UNION arms; IsUnionAll applies to the edge from this Query to
// NextQuery.
type Query struct {
	StmtKind   StmtKind
	IsDistinct bool

	RangeTable []RTE
	TargetList []TargetEntry

	WherePredicate  Expr
	GroupBy         []Expr
	HavingPredicate Expr
	OrderBy         []OrderEntry

	Limit  *int64
	Offset *int64

	NumAggs int

	ResultTableID *int32
	ResultColList []catalog.ColumnDescriptor

	NextQuery  *Query
	IsUnionAll bool
}
