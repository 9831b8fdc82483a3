// Package types implements the SQL type system: the closed set of type
// tags, type equality, and the coercion/common-type rules used by the
// expression analyzer to resolve binary operators and CASE branches.
package types

import "fmt"

// Kind is one of the closed set of SQL type tags.
type Kind int

const (
	Unknown Kind = iota
	Boolean
	Char
	Varchar
	Text
	Numeric
	Decimal
	Smallint
	Int
	Bigint
	Float
	Double
	Time
	Timestamp
	// Nullt is the wildcard type carried by a bare NULL literal before it
	// adopts a context type.
	Nullt
)

var kindNames = map[Kind]string{
	Boolean:   "BOOLEAN",
	Char:      "CHAR",
	Varchar:   "VARCHAR",
	Text:      "TEXT",
	Numeric:   "NUMERIC",
	Decimal:   "DECIMAL",
	Smallint:  "SMALLINT",
	Int:       "INT",
	Bigint:    "BIGINT",
	Float:     "FLOAT",
	Double:    "DOUBLE",
	Time:      "TIME",
	Timestamp: "TIMESTAMP",
	Nullt:     "NULLT",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "UNKNOWN"
}

// SQLType is a value type: dimension (precision/length), scale, and the
// notnull flag together with the tag determine equality.
type SQLType struct {
	Kind      Kind
	Dimension int
	Scale     int
	NotNull   bool
}

func (t SQLType) Equals(o SQLType) bool {
	return t.Kind == o.Kind && t.Dimension == o.Dimension && t.Scale == o.Scale && t.NotNull == o.NotNull
}

func (t SQLType) String() string {
	switch t.Kind {
	case Varchar, Char:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Dimension)
	case Numeric, Decimal:
		return fmt.Sprintf("%s(%d,%d)", t.Kind, t.Dimension, t.Scale)
	default:
		return t.Kind.String()
	}
}

// IsNumeric reports whether t is one of the integer/decimal/floating kinds.
func (t SQLType) IsNumeric() bool {
	switch t.Kind {
	case Smallint, Int, Bigint, Numeric, Decimal, Float, Double:
		return true
	default:
		return false
	}
}

// IsString reports whether t is one of CHAR, VARCHAR, TEXT.
func (t SQLType) IsString() bool {
	switch t.Kind {
	case Char, Varchar, Text:
		return true
	default:
		return false
	}
}

func (t SQLType) IsNull() bool { return t.Kind == Nullt }

// numericRank orders the numeric kinds for widening: SMALLINT < INT <
// BIGINT < NUMERIC/DECIMAL < FLOAT < DOUBLE.
func numericRank(k Kind) int {
	switch k {
	case Smallint:
		return 0
	case Int:
		return 1
	case Bigint:
		return 2
	case Numeric, Decimal:
		return 3
	case Float:
		return 4
	case Double:
		return 5
	default:
		return -1
	}
}

// stringRank orders the string kinds for widening: CHAR < VARCHAR < TEXT.
func stringRank(k Kind) int {
	switch k {
	case Char:
		return 0
	case Varchar:
		return 1
	case Text:
		return 2
	default:
		return -1
	}
}

// CommonNumericType widens a and b along SMALLINT < INT < BIGINT <
// NUMERIC/DECIMAL < FLOAT < DOUBLE. For NUMERIC/DECIMAL it combines
// dimensions and scales so the result can represent either input exactly.
func CommonNumericType(a, b SQLType) SQLType {
	if a.Kind == Nullt {
		return b
	}
	if b.Kind == Nullt {
		return a
	}

	ra, rb := numericRank(a.Kind), numericRank(b.Kind)
	switch {
	case ra > rb:
		return widenTo(a, b)
	case rb > ra:
		return widenTo(b, a)
	default:
		// Same rank. NUMERIC/DECIMAL need dimension/scale combination;
		// everything else at the same rank is already identical.
		if a.Kind == Numeric || a.Kind == Decimal || b.Kind == Numeric || b.Kind == Decimal {
			scale := max(a.Scale, b.Scale)
			integral := max(a.Dimension-a.Scale, b.Dimension-b.Scale)
			kind := a.Kind
			if b.Kind == Decimal {
				kind = Decimal
			}
			return SQLType{Kind: kind, Dimension: integral + scale, Scale: scale}
		}
		return SQLType{Kind: a.Kind}
	}
}

// widenTo returns the wider type "hi" combined with any dimension/scale
// information "lo" contributes (relevant only when hi is itself
// NUMERIC/DECIMAL and lo is a narrower integer).
func widenTo(hi, lo SQLType) SQLType {
	if hi.Kind != Numeric && hi.Kind != Decimal {
		return SQLType{Kind: hi.Kind}
	}
	scale := hi.Scale
	integral := hi.Dimension - hi.Scale
	loIntegral := lo.Dimension - lo.Scale
	if lo.Kind != Numeric && lo.Kind != Decimal {
		loIntegral = integerDigits(lo.Kind)
	}
	if loIntegral > integral {
		integral = loIntegral
	}
	return SQLType{Kind: hi.Kind, Dimension: integral + scale, Scale: scale}
}

func integerDigits(k Kind) int {
	switch k {
	case Smallint:
		return 5
	case Int:
		return 10
	case Bigint:
		return 19
	default:
		return 0
	}
}

// CommonStringType widens along CHAR < VARCHAR < TEXT and takes the
// maximum dimension.
func CommonStringType(a, b SQLType) SQLType {
	if a.Kind == Nullt {
		return b
	}
	if b.Kind == Nullt {
		return a
	}
	ra, rb := stringRank(a.Kind), stringRank(b.Kind)
	kind := a.Kind
	if rb > ra {
		kind = b.Kind
	}
	dim := a.Dimension
	if b.Dimension > dim {
		dim = b.Dimension
	}
	return SQLType{Kind: kind, Dimension: dim}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
