package minilogic

// Normalizer rewrites formulas into negation normal form.
type Normalizer struct{}

// NewNormalizer creates a new normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize eliminates implication, pushes negation down to variables and
// folds constants. The result has the same truth table as expr.
func (n *Normalizer) Normalize(expr Expr) Expr {
	return n.fold(n.nnf(n.eliminateImplies(expr), false))
}

// eliminateImplies rewrites every "=>" into and/or/not.
func (n *Normalizer) eliminateImplies(expr Expr) Expr {
	switch e := expr.(type) {
	case NotExpr:
		return NotExpr{Operand: n.eliminateImplies(e.Operand)}

	case BinaryExpr:
		left := n.eliminateImplies(e.Left)
		right := n.eliminateImplies(e.Right)
		if e.Op != OpImplies {
			return BinaryExpr{Op: e.Op, Left: left, Right: right}
		}
		return Or(Not(left), right)

	default:
		return expr
	}
}

// nnf pushes negation inward using De Morgan's laws. negate reports whether
// the current subtree sits under an odd number of negations.
func (n *Normalizer) nnf(expr Expr, negate bool) Expr {
	switch e := expr.(type) {
	case LiteralExpr:
		if negate {
			return LiteralExpr{Val: !e.Val}
		}
		return e

	case VarExpr:
		if negate {
			return NotExpr{Operand: e}
		}
		return e

	case NotExpr:
		return n.nnf(e.Operand, !negate)

	case BinaryExpr:
		op := e.Op
		if negate {
			switch op {
			case OpAnd:
				op = OpOr
			case OpOr:
				op = OpAnd
			}
		}
		return BinaryExpr{Op: op, Left: n.nnf(e.Left, negate), Right: n.nnf(e.Right, negate)}

	default:
		return expr
	}
}

// fold applies identity and annihilator laws bottom-up.
func (n *Normalizer) fold(expr Expr) Expr {
	e, ok := expr.(BinaryExpr)
	if !ok {
		return expr
	}

	left := n.fold(e.Left)
	right := n.fold(e.Right)

	llit, lok := left.(LiteralExpr)
	rlit, rok := right.(LiteralExpr)

	switch e.Op {
	case OpAnd:
		switch {
		case lok && !llit.Val, rok && !rlit.Val:
			return BoolLit(false)
		case lok:
			return right
		case rok:
			return left
		}
	case OpOr:
		switch {
		case lok && llit.Val, rok && rlit.Val:
			return BoolLit(true)
		case lok:
			return right
		case rok:
			return left
		}
	}

	if exprEqual(left, right) {
		return left
	}
	return BinaryExpr{Op: e.Op, Left: left, Right: right}
}
