package resolved

import (
	"fmt"

	"github.com/mapd-project/queryfront/types"
)

// AddCast wraps e in a Cast to target, the single call site the
// expression analyzer uses whenever a subexpression's type differs from
// the type its context requires. Per spec.md §4.4 ("CastExpr ... returns
// arg->add_cast(target), which may fuse with an existing wrapper"), three
// cases avoid growing the tree:
//
//   - e is already typed target: no-op, e is returned unchanged.
//   - e is a non-null *Constant: the literal's Go-side Datum is folded
//     into target's representation via types.Coerce and a new Constant is
//     returned directly, rather than wrapping a value in a Cast node that
//     would just defer the same conversion to a non-existent evaluator.
//   - e is itself a *Cast: its wrapper is replaced in place rather than
//     stacking a second Cast around it, since only the final target type
//     is ever observable.
func AddCast(e Expr, target types.SQLType) Expr {
	if e.Type().Equals(target) {
		return e
	}
	if c, ok := e.(*Constant); ok && !c.IsNull {
		if folded, err := foldConstant(c, target); err == nil {
			return folded
		}
	}
	if c, ok := e.(*Cast); ok {
		return &Cast{T: target, Arg: c.Arg}
	}
	return &Cast{T: target, Arg: e}
}

// foldConstant converts c's Datum to its Go representation, coerces it to
// target's kind via types.Coerce (the same role the teacher's numbertype.go
// gives spf13/cast), and re-tags the result as a Datum of the matching
// kind.
func foldConstant(c *Constant, target types.SQLType) (*Constant, error) {
	v, err := types.Coerce(datumValue(c.Datum), target)
	if err != nil {
		return nil, err
	}
	d, err := datumFromValue(v, target.Kind)
	if err != nil {
		return nil, err
	}
	return &Constant{T: target, Datum: d}, nil
}

func datumValue(d Datum) interface{} {
	switch d.Kind {
	case DatumSmall:
		return d.Small
	case DatumInt:
		return d.Int
	case DatumBig:
		return d.Big
	case DatumFloat:
		return d.Float
	case DatumDouble:
		return d.Double
	case DatumString:
		return d.Str
	default:
		return nil
	}
}

func datumFromValue(v interface{}, kind types.Kind) (Datum, error) {
	switch kind {
	case types.Smallint:
		n, ok := v.(int16)
		if !ok {
			return Datum{}, fmt.Errorf("coerced value is not int16")
		}
		return Datum{Kind: DatumSmall, Small: n}, nil
	case types.Int:
		n, ok := v.(int32)
		if !ok {
			return Datum{}, fmt.Errorf("coerced value is not int32")
		}
		return Datum{Kind: DatumInt, Int: n}, nil
	case types.Bigint, types.Numeric, types.Decimal:
		n, ok := v.(int64)
		if !ok {
			return Datum{}, fmt.Errorf("coerced value is not int64")
		}
		return Datum{Kind: DatumBig, Big: n}, nil
	case types.Float:
		f, ok := v.(float32)
		if !ok {
			return Datum{}, fmt.Errorf("coerced value is not float32")
		}
		return Datum{Kind: DatumFloat, Float: f}, nil
	case types.Double:
		f, ok := v.(float64)
		if !ok {
			return Datum{}, fmt.Errorf("coerced value is not float64")
		}
		return Datum{Kind: DatumDouble, Double: f}, nil
	case types.Char, types.Varchar, types.Text:
		s, ok := v.(string)
		if !ok {
			return Datum{}, fmt.Errorf("coerced value is not string")
		}
		return Datum{Kind: DatumString, Str: s}, nil
	case types.Boolean:
		b, ok := v.(bool)
		if !ok {
			return Datum{}, fmt.Errorf("coerced value is not bool")
		}
		i := int32(0)
		if b {
			i = 1
		}
		return Datum{Kind: DatumInt, Int: i}, nil
	default:
		return Datum{}, fmt.Errorf("cannot fold a constant into %s", kind)
	}
}
