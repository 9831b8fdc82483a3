package resolved

// DeepCopy returns a structural clone of e. Ownership of every resolved
// tree is exclusive (spec.md §5); the one place the same subexpression
// must appear twice is the BetweenExpr rewrite (arg >= lower) AND (arg <=
// upper), where the analyzer builds the upper-bound predicate around a
// deep copy of arg rather than reusing the pointer built for the
// lower-bound predicate.
func DeepCopy(e Expr) Expr {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case *Constant:
		cp := *v
		return &cp
	case *ColumnVar:
		cp := *v
		return &cp
	case *UOper:
		return &UOper{T: v.T, Op: v.Op, Operand: DeepCopy(v.Operand)}
	case *BinOper:
		return &BinOper{T: v.T, Op: v.Op, Qualifier: v.Qualifier, Left: DeepCopy(v.Left), Right: DeepCopy(v.Right)}
	case *InValuesExpr:
		list := make([]Expr, len(v.List))
		for i, item := range v.List {
			list[i] = DeepCopy(item)
		}
		return &InValuesExpr{T: v.T, Arg: DeepCopy(v.Arg), List: list}
	case *LikeExpr:
		return &LikeExpr{T: v.T, Arg: DeepCopy(v.Arg), Like: DeepCopy(v.Like), Escape: DeepCopy(v.Escape)}
	case *AggExpr:
		return &AggExpr{T: v.T, Kind: v.Kind, Arg: DeepCopy(v.Arg), Distinct: v.Distinct}
	case *CaseExpr:
		pairs := make([]CasePair, len(v.Pairs))
		for i, p := range v.Pairs {
			pairs[i] = CasePair{When: DeepCopy(p.When), Then: DeepCopy(p.Then)}
		}
		return &CaseExpr{T: v.T, Pairs: pairs, Else: DeepCopy(v.Else)}
	case *Cast:
		return &Cast{T: v.T, Arg: DeepCopy(v.Arg)}
	default:
		return e
	}
}
