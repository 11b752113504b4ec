package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/plogic"
	"github.com/gnolang/plogic/formatter"
)

var (
	setValues      []string
	evalLegacy     bool
	evalJsonOutput bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <statement>",
	Short: "Evaluate a statement against variable values",
	Long: `Evaluates a statement built from variables, and, or, not, => and parentheses.
Example) plogic eval "A => B" --set A=true,B=false`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		values, err := parseAssignments(setValues)
		if err != nil {
			logger.Error("Invalid --set value", zap.Error(err))
			os.Exit(1)
		}
		if err := runEval(os.Stdout, args[0], values, implicationMode(evalLegacy), evalJsonOutput); err != nil {
			os.Exit(1)
		}
	},
}

func init() {
	evalCmd.Flags().StringSliceVar(&setValues, "set", nil, "Comma-separated variable assignments, e.g. A=true,B=false")
	evalCmd.Flags().BoolVar(&evalLegacy, "legacy", false, "Rewrite => as 'or not' before parsing")
	evalCmd.Flags().BoolVar(&evalJsonOutput, "json", false, "Output the result in JSON format")
}

type evalOutput struct {
	Statement string          `json:"statement"`
	Values    map[string]bool `json:"values"`
	Result    bool            `json:"result"`
	Error     string          `json:"error,omitempty"`
}

func runEval(w io.Writer, statement string, values map[string]bool, mode plogic.ImplicationMode, isJson bool) error {
	result, err := plogic.EvaluateWithMode(statement, values, mode)

	if isJson {
		out := evalOutput{Statement: statement, Values: values, Result: result}
		if err != nil {
			out.Error = err.Error()
		}
		d, merr := json.Marshal(out)
		if merr != nil {
			return merr
		}
		fmt.Fprintln(w, string(d))
		return err
	}

	if err != nil {
		fmt.Fprint(w, formatter.FormatStatementError("<args>", statement, err))
		return err
	}
	fmt.Fprint(w, formatter.FormatResult(statement, values, result))
	return nil
}

// parseAssignments turns ["A=true", "B=0"] into a values map. Values are
// read with strconv.ParseBool.
func parseAssignments(assignments []string) (map[string]bool, error) {
	values := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		name, raw, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected name=value", a)
		}
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid assignment %q: %w", a, err)
		}
		values[name] = v
	}
	return values, nil
}

func implicationMode(legacy bool) plogic.ImplicationMode {
	if legacy {
		return plogic.LegacyRewrite
	}
	return plogic.MaterialImplication
}
