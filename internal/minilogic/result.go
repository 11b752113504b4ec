package minilogic

import "fmt"

// MaxTableVars bounds exhaustive enumeration. 2^16 rows is the largest
// table TruthTable and the Verifier will build.
const MaxTableVars = 16

// ErrTooManyVars is returned when an expression has more than MaxTableVars
// distinct variables.
var ErrTooManyVars = fmt.Errorf("more than %d variables", MaxTableVars)

// Row is one assignment of a truth table and the value of the formula on it.
type Row struct {
	Values []bool // parallel to Table.Vars
	Result bool
}

// Table is the truth table of a formula.
type Table struct {
	Vars []string
	Rows []Row
}

// Env returns the assignment of row i as an environment.
func (t Table) Env(i int) *Env {
	env := NewEnv()
	for j, name := range t.Vars {
		env.Set(name, t.Rows[i].Values[j])
	}
	return env
}

// CountTrue returns the number of satisfying rows.
func (t Table) CountTrue() int {
	n := 0
	for _, r := range t.Rows {
		if r.Result {
			n++
		}
	}
	return n
}

// BuildTruthTable evaluates expr on every assignment of its variables.
// Rows are ordered like binary counting with the first variable as the
// most significant bit and false before true.
func BuildTruthTable(expr Expr, config EvalConfig) (Table, error) {
	vars := Vars(expr)
	if len(vars) > MaxTableVars {
		return Table{}, ErrTooManyVars
	}

	ev := NewEvaluator(config)
	table := Table{
		Vars: vars,
		Rows: make([]Row, 0, 1<<len(vars)),
	}
	for _, env := range assignments(vars) {
		result, err := ev.Eval(expr, env)
		if err != nil {
			return Table{}, err
		}
		values := make([]bool, len(vars))
		for j, name := range vars {
			values[j], _ = env.Get(name)
		}
		table.Rows = append(table.Rows, Row{Values: values, Result: result})
	}
	return table, nil
}

// assignments enumerates all 2^n environments over vars.
func assignments(vars []string) []*Env {
	n := len(vars)
	envs := make([]*Env, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		env := NewEnv()
		for j, name := range vars {
			env.Set(name, mask&(1<<(n-1-j)) != 0)
		}
		envs = append(envs, env)
	}
	return envs
}
