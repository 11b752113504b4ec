package minilogic

import "fmt"

// MiniLogic is the main entry point of the package.
type MiniLogic struct {
	verifier   *Verifier
	normalizer *Normalizer
	config     EvalConfig
}

// New creates a new MiniLogic instance with default configuration.
func New() *MiniLogic {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a new MiniLogic instance with the given configuration.
func NewWithConfig(config EvalConfig) *MiniLogic {
	return &MiniLogic{
		verifier:   NewVerifier(config),
		normalizer: NewNormalizer(),
		config:     config,
	}
}

// Config returns the evaluation configuration.
func (m *MiniLogic) Config() EvalConfig {
	return m.config
}

// Evaluate evaluates expr against env.
func (m *MiniLogic) Evaluate(expr Expr, env *Env) (bool, error) {
	return NewEvaluator(m.config).Eval(expr, env)
}

// EvaluateMap evaluates expr against a plain map of bindings.
func (m *MiniLogic) EvaluateMap(expr Expr, values map[string]bool) (bool, error) {
	return m.Evaluate(expr, EnvFromMap(values))
}

// Verify checks if two formulas are equivalent.
func (m *MiniLogic) Verify(a, b Expr) VerificationReport {
	return m.verifier.CheckEquivalence(a, b)
}

// VerifyNormalized checks that Normalize preserved the meaning of expr.
func (m *MiniLogic) VerifyNormalized(expr Expr) VerificationReport {
	return m.verifier.CheckEquivalence(expr, m.normalizer.Normalize(expr))
}

// Normalize transforms a formula into negation normal form.
func (m *MiniLogic) Normalize(expr Expr) Expr {
	return m.normalizer.Normalize(expr)
}

// TruthTable builds the truth table of expr.
func (m *MiniLogic) TruthTable(expr Expr) (Table, error) {
	return BuildTruthTable(expr, m.config)
}

// IsTautology reports whether expr is true on every assignment.
func (m *MiniLogic) IsTautology(expr Expr) (bool, error) {
	table, err := m.TruthTable(expr)
	if err != nil {
		return false, err
	}
	return table.CountTrue() == len(table.Rows), nil
}

// IsSatisfiable reports whether expr is true on some assignment.
func (m *MiniLogic) IsSatisfiable(expr Expr) (bool, error) {
	table, err := m.TruthTable(expr)
	if err != nil {
		return false, err
	}
	return table.CountTrue() > 0, nil
}

// Check pairs a formula with bindings and an optional expectation.
type Check struct {
	Name     string
	Expr     Expr
	Env      *Env
	Expected *bool
}

// CheckResult holds the outcome of a single Check.
type CheckResult struct {
	Check  Check
	Value  bool
	Err    error
	Passed bool
}

// BatchReport summarizes the results of BatchEvaluate.
type BatchReport struct {
	Total   int
	Passed  int
	Failed  int
	Errored int
	Results []CheckResult
}

// BatchEvaluate evaluates every check. A check passes when it evaluates
// without error and matches its expectation, if any.
func (m *MiniLogic) BatchEvaluate(checks []Check) BatchReport {
	report := BatchReport{
		Total:   len(checks),
		Results: make([]CheckResult, len(checks)),
	}

	for i, c := range checks {
		val, err := m.Evaluate(c.Expr, c.Env)
		res := CheckResult{Check: c, Value: val, Err: err}
		switch {
		case err != nil:
			report.Errored++
		case c.Expected != nil && *c.Expected != val:
			report.Failed++
		default:
			res.Passed = true
			report.Passed++
		}
		report.Results[i] = res
	}

	return report
}

// Summary returns a human-readable summary of the batch.
func (r BatchReport) Summary() string {
	return fmt.Sprintf(
		"Evaluated %d statements: %d passed, %d failed, %d errored",
		r.Total, r.Passed, r.Failed, r.Errored,
	)
}
