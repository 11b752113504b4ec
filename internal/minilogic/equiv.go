package minilogic

import "fmt"

// VerificationResult represents the result of equivalence verification.
type VerificationResult int

const (
	_ VerificationResult = iota
	// Equivalent indicates the two formulas agree on every assignment.
	Equivalent
	// NotEquivalent indicates an assignment exists on which they differ.
	NotEquivalent
	// Unknown indicates equivalence cannot be determined.
	Unknown
)

func (r VerificationResult) String() string {
	switch r {
	case Equivalent:
		return "Equivalent"
	case NotEquivalent:
		return "NotEquivalent"
	case Unknown:
		return "Unknown"
	default:
		return "?"
	}
}

// MarshalText lets reports be emitted as JSON with readable results.
func (r VerificationResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ReasonCode provides a reason for the verification result.
type ReasonCode int

const (
	ReasonNone ReasonCode = iota
	ReasonSameResult
	ReasonDifferentValue
	ReasonTooManyVars
	ReasonEvalError
)

func (r ReasonCode) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonSameResult:
		return "same result for all assignments"
	case ReasonDifferentValue:
		return "different value on some assignment"
	case ReasonTooManyVars:
		return "too many variables to enumerate"
	case ReasonEvalError:
		return "evaluation failed"
	default:
		return "unknown"
	}
}

func (r ReasonCode) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// VerificationReport provides detailed information about verification.
type VerificationReport struct {
	Result VerificationResult
	Reason ReasonCode
	Detail string
	// Counterexample is set for NotEquivalent: an assignment on which
	// Left and Right hold the two differing values.
	Counterexample *Env `json:"-"`
	Left           bool
	Right          bool
}

// Verifier checks formulas for equivalence by exhaustive enumeration.
type Verifier struct {
	evaluator *Evaluator
}

// NewVerifier creates a verifier evaluating both sides with config.
func NewVerifier(config EvalConfig) *Verifier {
	return &Verifier{evaluator: NewEvaluator(config)}
}

// CheckEquivalence checks whether a and b agree on every assignment of the
// union of their variables.
func (v *Verifier) CheckEquivalence(a, b Expr) VerificationReport {
	vars := unionVars(a, b)
	if len(vars) > MaxTableVars {
		return VerificationReport{
			Result: Unknown,
			Reason: ReasonTooManyVars,
			Detail: fmt.Sprintf("%d variables exceeds the limit of %d", len(vars), MaxTableVars),
		}
	}

	for _, env := range assignments(vars) {
		l, err := v.evaluator.Eval(a, env)
		if err != nil {
			return evalErrorReport(err)
		}
		r, err := v.evaluator.Eval(b, env)
		if err != nil {
			return evalErrorReport(err)
		}
		if l != r {
			return VerificationReport{
				Result:         NotEquivalent,
				Reason:         ReasonDifferentValue,
				Detail:         fmt.Sprintf("%s gives %t but %s gives %t on %s", a, l, b, r, env),
				Counterexample: env,
				Left:           l,
				Right:          r,
			}
		}
	}

	return VerificationReport{
		Result: Equivalent,
		Reason: ReasonSameResult,
		Detail: fmt.Sprintf("checked %d assignments", 1<<len(vars)),
	}
}

func evalErrorReport(err error) VerificationReport {
	return VerificationReport{
		Result: Unknown,
		Reason: ReasonEvalError,
		Detail: err.Error(),
	}
}

func unionVars(a, b Expr) []string {
	return Vars(And(a, b))
}
