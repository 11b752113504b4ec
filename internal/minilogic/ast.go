package minilogic

import (
	"sort"
	"strconv"
)

// Expr represents a propositional formula.
type Expr interface {
	isExpr()
	String() string
}

// LiteralExpr represents the constants true and false.
type LiteralExpr struct {
	Val bool
}

func (LiteralExpr) isExpr() {}
func (e LiteralExpr) String() string {
	return strconv.FormatBool(e.Val)
}

// VarExpr represents a variable reference.
type VarExpr struct {
	Name string
}

func (VarExpr) isExpr() {}
func (e VarExpr) String() string {
	return e.Name
}

// BinaryOp represents binary connectives.
type BinaryOp int

const (
	_ BinaryOp = iota
	OpAnd
	OpOr
	OpImplies
)

func (op BinaryOp) String() string {
	switch op {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpImplies:
		return "=>"
	default:
		return "?"
	}
}

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (BinaryExpr) isExpr() {}
func (e BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// NotExpr represents negation.
type NotExpr struct {
	Operand Expr
}

func (NotExpr) isExpr() {}
func (e NotExpr) String() string {
	return "(not " + e.Operand.String() + ")"
}

// Constructor helpers

func BoolLit(v bool) Expr {
	return LiteralExpr{Val: v}
}

func Var(name string) Expr {
	return VarExpr{Name: name}
}

func Not(e Expr) Expr {
	return NotExpr{Operand: e}
}

func Binary(op BinaryOp, left, right Expr) Expr {
	return BinaryExpr{Op: op, Left: left, Right: right}
}

// And folds its operands left to right. And() is true.
func And(operands ...Expr) Expr {
	return fold(OpAnd, BoolLit(true), operands)
}

// Or folds its operands left to right. Or() is false.
func Or(operands ...Expr) Expr {
	return fold(OpOr, BoolLit(false), operands)
}

func Implies(left, right Expr) Expr {
	return BinaryExpr{Op: OpImplies, Left: left, Right: right}
}

func fold(op BinaryOp, unit Expr, operands []Expr) Expr {
	if len(operands) == 0 {
		return unit
	}
	result := operands[0]
	for _, e := range operands[1:] {
		result = BinaryExpr{Op: op, Left: result, Right: e}
	}
	return result
}

// Vars returns the distinct variable names referenced by expr, sorted.
func Vars(expr Expr) []string {
	seen := make(map[string]bool)
	var names []string
	var walk func(Expr)
	walk = func(e Expr) {
		switch n := e.(type) {
		case VarExpr:
			if !seen[n.Name] {
				seen[n.Name] = true
				names = append(names, n.Name)
			}
		case NotExpr:
			walk(n.Operand)
		case BinaryExpr:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(expr)
	sort.Strings(names)
	return names
}

func exprEqual(a, b Expr) bool {
	switch left := a.(type) {
	case LiteralExpr:
		right, ok := b.(LiteralExpr)
		return ok && left.Val == right.Val
	case VarExpr:
		right, ok := b.(VarExpr)
		return ok && left.Name == right.Name
	case NotExpr:
		right, ok := b.(NotExpr)
		return ok && exprEqual(left.Operand, right.Operand)
	case BinaryExpr:
		right, ok := b.(BinaryExpr)
		if !ok || left.Op != right.Op {
			return false
		}
		return exprEqual(left.Left, right.Left) && exprEqual(left.Right, right.Right)
	default:
		return false
	}
}
