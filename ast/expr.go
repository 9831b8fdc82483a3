// Package ast defines the parsed-statement node families this analyzer
// consumes: literals, expressions, predicates, clauses and statements.
// Every node owns its children exclusively; there is no shared mutable
// state between nodes. The grammar driver (lexer/parser) that produces
// these trees is an external collaborator and out of scope for this
// package — it only describes the shape the parser must produce.
package ast

import (
	"strings"

	"github.com/mapd-project/queryfront/types"
)

// Expr is the closed variant over AST expression node kinds. The
// semantic analysis contract (analyze) lives in the analyzer package as a
// type switch over these concrete types rather than as a method here,
// mirroring the teacher's sql/analyzer package operating externally on
// sql.Expression trees.
type Expr interface {
	exprNode()
	String() string
}

// TypeName is a type reference as written in CAST(... AS type) or a
// column definition, before any catalog lookups.
type TypeName struct {
	Kind      types.Kind
	Dimension int
	Scale     int
	NotNull   bool
}

func (t TypeName) SQLType() types.SQLType {
	return types.SQLType{Kind: t.Kind, Dimension: t.Dimension, Scale: t.Scale, NotNull: t.NotNull}
}

type NullLiteral struct{}

func (*NullLiteral) exprNode()       {}
func (*NullLiteral) String() string  { return "NULL" }

type StringLiteral struct {
	Value string
}

func (*StringLiteral) exprNode() {}
func (s *StringLiteral) String() string {
	return "'" + s.Value + "'"
}

// IntLiteral is a bare integer literal; the analyzer picks the narrowest
// SMALLINT/INT/BIGINT representation that fits.
type IntLiteral struct {
	Value int64
}

func (*IntLiteral) exprNode()      {}
func (i *IntLiteral) String() string { return itoa(i.Value) }

// FixedPtLiteral is a literal with a decimal point, e.g. "12.340". Raw
// preserves the exact source text so the analyzer can derive dimension
// and scale from the integral/fractional part lengths.
type FixedPtLiteral struct {
	Raw string
}

func (*FixedPtLiteral) exprNode()        {}
func (f *FixedPtLiteral) String() string { return f.Raw }

type FloatLiteral struct {
	Value float32
}

func (*FloatLiteral) exprNode()        {}
func (f *FloatLiteral) String() string { return ftoa(float64(f.Value)) }

type DoubleLiteral struct {
	Value float64
}

func (*DoubleLiteral) exprNode()        {}
func (d *DoubleLiteral) String() string { return ftoa(d.Value) }

// OperExpr is a unary operator application when Right is nil, a binary
// application otherwise.
type OperExpr struct {
	Op    types.Operator
	Left  Expr
	Right Expr
}

func (*OperExpr) exprNode() {}
func (o *OperExpr) String() string {
	if o.Right == nil {
		return string(o.Op) + " " + o.Left.String()
	}
	return o.Left.String() + " " + string(o.Op) + " " + o.Right.String()
}

// SubqueryExpr, ExistsExpr, InSubquery all carry an embedded query and
// are unconditionally rejected by the analyzer (Non-goals, spec.md §1).
type SubqueryExpr struct {
	Query *QuerySpec
	// Qualifier is ANY, ALL, ONE, or "" when the subquery is the right
	// operand of a comparison; the analyzer records it before failing.
	Qualifier string
}

func (*SubqueryExpr) exprNode()       {}
func (*SubqueryExpr) String() string  { return "(<subquery>)" }

type ExistsExpr struct {
	Query *QuerySpec
}

func (*ExistsExpr) exprNode()      {}
func (*ExistsExpr) String() string { return "EXISTS (<subquery>)" }

type IsNullExpr struct {
	Arg    Expr
	Negate bool
}

func (*IsNullExpr) exprNode() {}
func (e *IsNullExpr) String() string {
	if e.Negate {
		return e.Arg.String() + " IS NOT NULL"
	}
	return e.Arg.String() + " IS NULL"
}

type InValues struct {
	Arg    Expr
	Values []Expr
	Negate bool
}

func (*InValues) exprNode() {}
func (e *InValues) String() string {
	s := e.Arg.String()
	if e.Negate {
		s += " NOT"
	}
	vals := make([]string, len(e.Values))
	for i, v := range e.Values {
		vals[i] = v.String()
	}
	return s + " IN (" + strings.Join(vals, ", ") + ")"
}

type InSubquery struct {
	Arg    Expr
	Query  *QuerySpec
	Negate bool
}

func (*InSubquery) exprNode()       {}
func (e *InSubquery) String() string { return e.Arg.String() + " IN (<subquery>)" }

type BetweenExpr struct {
	Arg    Expr
	Lower  Expr
	Upper  Expr
	Negate bool
}

func (*BetweenExpr) exprNode() {}
func (e *BetweenExpr) String() string {
	s := e.Arg.String()
	if e.Negate {
		s += " NOT"
	}
	return s + " BETWEEN " + e.Lower.String() + " AND " + e.Upper.String()
}

type LikeExpr struct {
	Arg    Expr
	Like   Expr
	Escape Expr // nil when no ESCAPE clause
	Negate bool
}

func (*LikeExpr) exprNode() {}
func (e *LikeExpr) String() string {
	s := e.Arg.String()
	if e.Negate {
		s += " NOT"
	}
	s += " LIKE " + e.Like.String()
	if e.Escape != nil {
		s += " ESCAPE " + e.Escape.String()
	}
	return s
}

// ColumnRef is Table.Column, or bare Column, or a star marker: Column ==
// nil means "*" (Table == nil) or "t.*" (Table != nil). A nil Column is a
// structural marker legal only in select-list position.
type ColumnRef struct {
	Table  *string
	Column *string
}

func (*ColumnRef) exprNode() {}
func (c *ColumnRef) String() string {
	col := "*"
	if c.Column != nil {
		col = *c.Column
	}
	if c.Table != nil {
		return *c.Table + "." + col
	}
	return col
}

// FunctionRef covers COUNT/MIN/MAX/AVG/SUM (case-insensitive). Arg is nil
// only for COUNT(*).
type FunctionRef struct {
	Name     string
	Arg      Expr
	Distinct bool
}

func (*FunctionRef) exprNode() {}
func (f *FunctionRef) String() string {
	arg := "*"
	if f.Arg != nil {
		arg = f.Arg.String()
	}
	if f.Distinct {
		return f.Name + "(DISTINCT " + arg + ")"
	}
	return f.Name + "(" + arg + ")"
}

type CastExpr struct {
	Arg        Expr
	TargetType TypeName
}

func (*CastExpr) exprNode()      {}
func (c *CastExpr) String() string {
	return "CAST(" + c.Arg.String() + " AS " + c.TargetType.SQLType().String() + ")"
}

type WhenThen struct {
	When Expr
	Then Expr
}

type CaseExpr struct {
	WhenThenList []WhenThen
	Else         Expr // nil when no ELSE clause
}

func (*CaseExpr) exprNode() {}
func (c *CaseExpr) String() string {
	s := "CASE"
	for _, wt := range c.WhenThenList {
		s += " WHEN " + wt.When.String() + " THEN " + wt.Then.String()
	}
	if c.Else != nil {
		s += " ELSE " + c.Else.String()
	}
	return s + " END"
}
