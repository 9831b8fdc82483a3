// Package resolved defines the post-analysis node families: every node
// here carries a fully-determined SQL type and any implicit coercion has
// already been made explicit, as a Cast node or, for a non-null constant,
// as a new Constant of the target type (see AddCast). Ownership is tree-shaped and
// exclusive, same as the ast package; the one place a subtree is shared
// conceptually (BetweenExpr's rewrite needs the same argument expression
// on both sides of the AND) is handled by DeepCopy, never by aliasing a
// pointer (spec.md §5).
package resolved

import "github.com/mapd-project/queryfront/types"

// Expr is the closed variant over resolved expression node kinds.
type Expr interface {
	resolvedExprNode()
	Type() types.SQLType
}

type DatumKind int

const (
	DatumNull DatumKind = iota
	DatumSmall
	DatumInt
	DatumBig
	DatumFloat
	DatumDouble
	DatumString
)

// Datum is the tagged union of literal values a Constant can hold. Only
// the field matching Kind is meaningful.
type Datum struct {
	Kind   DatumKind
	Small  int16
	Int    int32
	Big    int64
	Float  float32
	Double float64
	Str    string
}

type Constant struct {
	T      types.SQLType
	IsNull bool
	Datum  Datum
}

func (*Constant) resolvedExprNode()   {}
func (c *Constant) Type() types.SQLType { return c.T }

// ColumnVar identifies a column by its position in the owning Query's
// range table (RTEIndex) plus the catalog ids needed to materialize it,
// carrying the same compression metadata the catalog attaches to the
// underlying ColumnDescriptor (SPEC_FULL.md "Compression metadata on
// ColumnVar").
type ColumnVar struct {
	T           types.SQLType
	TableID     int32
	ColumnID    int32
	RTEIndex    int
	Compression int
	CompParam   int
}

func (*ColumnVar) resolvedExprNode()     {}
func (c *ColumnVar) Type() types.SQLType { return c.T }

type UOper struct {
	T       types.SQLType
	Op      types.Operator
	Operand Expr
}

func (*UOper) resolvedExprNode()     {}
func (u *UOper) Type() types.SQLType { return u.T }

// BinOper.Qualifier records ANY/ALL/ONE when the right operand was
// originally a subquery comparison (spec.md §4.4); it is otherwise "".
type BinOper struct {
	T         types.SQLType
	Op        types.Operator
	Qualifier string
	Left      Expr
	Right     Expr
}

func (*BinOper) resolvedExprNode()     {}
func (b *BinOper) Type() types.SQLType { return b.T }

type InValuesExpr struct {
	T    types.SQLType
	Arg  Expr
	List []Expr
}

func (*InValuesExpr) resolvedExprNode()     {}
func (i *InValuesExpr) Type() types.SQLType { return i.T }

type LikeExpr struct {
	T      types.SQLType
	Arg    Expr
	Like   Expr
	Escape Expr // nil when absent
}

func (*LikeExpr) resolvedExprNode()     {}
func (l *LikeExpr) Type() types.SQLType { return l.T }

// AggExpr.Arg is nil only for COUNT(*).
type AggExpr struct {
	T        types.SQLType
	Kind     string // COUNT, MIN, MAX, AVG, SUM
	Arg      Expr
	Distinct bool
}

func (*AggExpr) resolvedExprNode()     {}
func (a *AggExpr) Type() types.SQLType { return a.T }

type CasePair struct {
	When Expr
	Then Expr
}

// CaseExpr.Else is nil when the original CASE had no ELSE branch (its
// implicit value is NULL, typed to the common branch type).
type CaseExpr struct {
	T     types.SQLType
	Pairs []CasePair
	Else  Expr
}

func (*CaseExpr) resolvedExprNode()     {}
func (c *CaseExpr) Type() types.SQLType { return c.T }

// Cast is the explicit coercion wrapper spec.md §3 requires whenever
// analysis widens or converts a subexpression; nothing in this package
// performs an implicit conversion.
type Cast struct {
	T   types.SQLType
	Arg Expr
}

func (*Cast) resolvedExprNode()     {}
func (c *Cast) Type() types.SQLType { return c.T }
