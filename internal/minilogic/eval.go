package minilogic

import (
	"errors"
	"fmt"
)

// ErrUnknownVariable is returned when a statement references a variable
// that has no binding.
var ErrUnknownVariable = errors.New("unknown variable")

// UnknownVariableError names the unbound variable.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable %q", e.Name)
}

func (e *UnknownVariableError) Unwrap() error {
	return ErrUnknownVariable
}

// EvalConfig holds configuration for the evaluator.
type EvalConfig struct {
	// Strict checks that every variable of the expression is bound before
	// evaluating, so short-circuiting cannot hide a missing binding.
	Strict bool
}

// DefaultConfig returns the default evaluation configuration.
func DefaultConfig() EvalConfig {
	return EvalConfig{
		Strict: true,
	}
}

// Evaluator evaluates expressions.
type Evaluator struct {
	config EvalConfig
}

// NewEvaluator creates a new evaluator with the given configuration.
func NewEvaluator(config EvalConfig) *Evaluator {
	return &Evaluator{config: config}
}

// Eval evaluates expr in env.
func (ev *Evaluator) Eval(expr Expr, env *Env) (bool, error) {
	if ev.config.Strict {
		for _, name := range Vars(expr) {
			if _, ok := env.Get(name); !ok {
				return false, &UnknownVariableError{Name: name}
			}
		}
	}
	return ev.eval(expr, env)
}

func (ev *Evaluator) eval(expr Expr, env *Env) (bool, error) {
	switch e := expr.(type) {
	case LiteralExpr:
		return e.Val, nil

	case VarExpr:
		val, ok := env.Get(e.Name)
		if !ok {
			return false, &UnknownVariableError{Name: e.Name}
		}
		return val, nil

	case NotExpr:
		val, err := ev.eval(e.Operand, env)
		if err != nil {
			return false, err
		}
		return !val, nil

	case BinaryExpr:
		return ev.evalBinary(e, env)

	default:
		return false, fmt.Errorf("unsupported expression %T", expr)
	}
}

// evalBinary short-circuits on the left operand.
func (ev *Evaluator) evalBinary(e BinaryExpr, env *Env) (bool, error) {
	left, err := ev.eval(e.Left, env)
	if err != nil {
		return false, err
	}

	switch e.Op {
	case OpAnd:
		if !left {
			return false, nil
		}
		return ev.eval(e.Right, env)

	case OpOr:
		if left {
			return true, nil
		}
		return ev.eval(e.Right, env)

	case OpImplies:
		// material: false => anything holds
		if !left {
			return true, nil
		}
		return ev.eval(e.Right, env)

	default:
		return false, fmt.Errorf("unsupported operator %v", e.Op)
	}
}
