package scenario

import (
	"fmt"
	"strconv"

	"github.com/gnolang/plogic"
	"github.com/gnolang/plogic/internal/minilogic"
	"github.com/gnolang/plogic/internal/parser"
)

// OutcomeKind identifies what an Outcome checked.
type OutcomeKind string

const (
	KindFile      OutcomeKind = "file"
	KindStatement OutcomeKind = "statement"
	KindForAll    OutcomeKind = "forall"
	KindExists    OutcomeKind = "exists"
	KindAgent     OutcomeKind = "agent"
)

// Outcome is the result of one check in a scenario file.
type Outcome struct {
	File     string      `json:"file"`
	Kind     OutcomeKind `json:"kind"`
	Name     string      `json:"name"`
	Input    string      `json:"input"`
	Result   string      `json:"result,omitempty"`
	Expected string      `json:"expected,omitempty"`
	Detail   string      `json:"detail,omitempty"`
	Err      string      `json:"error,omitempty"`
}

// Failed reports whether the check errored or disagreed with its expectation.
func (o Outcome) Failed() bool {
	return o.Err != "" || (o.Expected != "" && o.Expected != o.Result)
}

// Runner evaluates scenario files.
type Runner interface {
	RunFile(path string) ([]Outcome, error)
}

// Engine is the default Runner.
type Engine struct{}

// NewEngine returns a ready Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// RunFile parses the scenario file at path and evaluates it.
func (e *Engine) RunFile(path string) ([]Outcome, error) {
	config, err := ParseConfigurationFile(path)
	if err != nil {
		return nil, err
	}
	return e.RunConfig(path, config)
}

// RunConfig evaluates every check in config. Individual check failures are
// reported in the outcomes; only an invalid implication mode is an error.
func (e *Engine) RunConfig(file string, config Config) ([]Outcome, error) {
	mode, err := parser.ParseImplicationMode(config.Implication)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	ml := minilogic.New()
	defaults := minilogic.EnvFromMap(config.Values)

	var outcomes []Outcome
	for _, s := range config.Statements {
		outcomes = append(outcomes, runStatement(ml, mode, defaults, file, s))
	}
	for _, q := range config.Quantifiers {
		outcomes = append(outcomes, runQuantifier(file, q)...)
	}
	if config.Agent != nil {
		outcomes = append(outcomes, runAgent(file, *config.Agent))
	}
	return outcomes, nil
}

// runStatement evaluates s with its own values shadowing the file-level
// defaults.
func runStatement(ml *minilogic.MiniLogic, mode parser.ImplicationMode, defaults *minilogic.Env, file string, s StatementConfig) Outcome {
	out := Outcome{
		File:     file,
		Kind:     KindStatement,
		Name:     s.Name,
		Input:    s.Expr,
		Expected: formatExpect(s.Expect),
	}

	expr, err := parser.ParseWithMode(s.Expr, mode)
	if err != nil {
		out.Err = err.Error()
		return out
	}

	env := minilogic.NewChildEnv(defaults)
	for name, v := range s.Values {
		env.Set(name, v)
	}
	result, err := ml.Evaluate(expr, env)
	if err != nil {
		out.Err = err.Error()
		return out
	}
	out.Result = strconv.FormatBool(result)
	out.Detail = env.String()
	return out
}

func runQuantifier(file string, q QuantifierConfig) []Outcome {
	input := fmt.Sprintf("x %s over %v", q.Predicate, q.Domain)
	forall := Outcome{File: file, Kind: KindForAll, Name: q.Name, Input: input, Expected: formatExpect(q.ExpectForAll)}
	exists := Outcome{File: file, Kind: KindExists, Name: q.Name, Input: input, Expected: formatExpect(q.ExpectExists)}

	pred, err := plogic.ParsePredicate(q.Predicate)
	if err != nil {
		forall.Err = err.Error()
		exists.Err = err.Error()
		return []Outcome{forall, exists}
	}

	if x, i := plogic.Counterexample(pred, q.Domain); i >= 0 {
		forall.Result = "false"
		forall.Detail = fmt.Sprintf("counterexample %d at index %d", x, i)
	} else {
		forall.Result = "true"
	}
	if x, i := plogic.Witness(pred, q.Domain); i >= 0 {
		exists.Result = "true"
		exists.Detail = fmt.Sprintf("witness %d at index %d", x, i)
	} else {
		exists.Result = "false"
	}
	return []Outcome{forall, exists}
}

func runAgent(file string, a AgentConfig) Outcome {
	agent := plogic.NewAgent()
	if a.Condition != nil {
		agent.Condition = *a.Condition
	}
	return Outcome{
		File:     file,
		Kind:     KindAgent,
		Name:     "agent",
		Input:    fmt.Sprintf("condition=%t", agent.Condition),
		Result:   agent.MakeDecision(),
		Expected: a.Expect,
	}
}

func formatExpect(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
