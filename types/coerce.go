package types

import (
	"fmt"

	"github.com/spf13/cast"
)

// Coerce folds a literal Go-side value into the Go representation
// appropriate for target's kind, the same role the teacher's numbertype.go
// gives spf13/cast: converting between Go numeric representations when a
// value crosses a type boundary. It is used by the expression analyzer
// when a constant is wrapped in a cast so the resolved Constant's Datum
// holds a value already shaped for its new type, rather than deferring the
// conversion to evaluation time (which this package never performs — no
// execution layer exists here).
func Coerce(v interface{}, target SQLType) (interface{}, error) {
	switch target.Kind {
	case Smallint:
		return cast.ToInt16E(v)
	case Int:
		return cast.ToInt32E(v)
	case Bigint:
		return cast.ToInt64E(v)
	case Float:
		return cast.ToFloat32E(v)
	case Double:
		return cast.ToFloat64E(v)
	case Numeric, Decimal:
		return cast.ToInt64E(v)
	case Char, Varchar, Text:
		return cast.ToStringE(v)
	case Boolean:
		return cast.ToBoolE(v)
	default:
		return nil, fmt.Errorf("cannot coerce value to %s", target)
	}
}

// NarrowestInt picks the narrowest of SMALLINT/INT/BIGINT that can hold v,
// per the analyzer's integer-literal rule: [INT16_MIN..INT16_MAX] ->
// SMALLINT, else [INT32_MIN..INT32_MAX] -> INT, else BIGINT.
func NarrowestInt(v int64) SQLType {
	switch {
	case v >= -32768 && v <= 32767:
		return SQLType{Kind: Smallint}
	case v >= -2147483648 && v <= 2147483647:
		return SQLType{Kind: Int}
	default:
		return SQLType{Kind: Bigint}
	}
}
