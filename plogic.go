// Package plogic provides propositional logic operators, a statement
// evaluator, quantifiers over finite domains and a one-rule agent.
package plogic

import (
	"fmt"

	"github.com/gnolang/plogic/internal/minilogic"
	"github.com/gnolang/plogic/internal/parser"
)

// ImplicationMode selects how "=>" is read.
type ImplicationMode = parser.ImplicationMode

const (
	MaterialImplication = parser.MaterialImplication
	LegacyRewrite       = parser.LegacyRewrite
)

// Errors reported by Evaluate. Use errors.Is to test for them.
var (
	ErrUnknownVariable = minilogic.ErrUnknownVariable
	ErrSyntax          = parser.ErrSyntax
)

// And returns the conjunction of p and q.
func And(p, q bool) bool {
	return p && q
}

// Or returns the disjunction of p and q.
func Or(p, q bool) bool {
	return p || q
}

// Not returns the negation of p.
func Not(p bool) bool {
	return !p
}

// Implies returns material implication: (not p) or q.
func Implies(p, q bool) bool {
	return Or(Not(p), q)
}

// Evaluate parses statement and evaluates it against values.
//
// Statements use the keywords and, or, not, the implication arrow =>,
// parentheses and the literals true/false. Every variable in the statement
// must have an entry in values.
func Evaluate(statement string, values map[string]bool) (bool, error) {
	return EvaluateWithMode(statement, values, MaterialImplication)
}

// EvaluateWithMode is Evaluate with an explicit reading of "=>".
func EvaluateWithMode(statement string, values map[string]bool, mode ImplicationMode) (bool, error) {
	expr, err := parser.ParseWithMode(statement, mode)
	if err != nil {
		return false, err
	}

	result, err := minilogic.New().EvaluateMap(expr, values)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", statement, err)
	}
	return result, nil
}
