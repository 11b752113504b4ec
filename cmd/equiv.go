package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnolang/plogic/formatter"
	"github.com/gnolang/plogic/internal/minilogic"
	"github.com/gnolang/plogic/internal/parser"
)

var (
	equivLegacyLeft  bool
	equivLegacyRight bool
	equivJsonOutput  bool
)

var equivCmd = &cobra.Command{
	Use:   "equiv <statement> <statement>",
	Short: "Check whether two statements agree on every assignment",
	Long: `Compares two statements over all assignments of their variables and
prints a counterexample when they differ.
Example) plogic equiv "A => B" "A => B" --legacy-b`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		equivalent, err := runEquiv(os.Stdout, args[0], args[1],
			implicationMode(equivLegacyLeft), implicationMode(equivLegacyRight), equivJsonOutput)
		if err != nil || !equivalent {
			os.Exit(1)
		}
	},
}

func init() {
	equivCmd.Flags().BoolVar(&equivLegacyLeft, "legacy-a", false, "Rewrite => as 'or not' in the first statement")
	equivCmd.Flags().BoolVar(&equivLegacyRight, "legacy-b", false, "Rewrite => as 'or not' in the second statement")
	equivCmd.Flags().BoolVar(&equivJsonOutput, "json", false, "Output the report in JSON format")
}

type equivOutput struct {
	minilogic.VerificationReport
	Counterexample map[string]bool `json:"Counterexample,omitempty"`
}

func runEquiv(w io.Writer, a, b string, modeA, modeB parser.ImplicationMode, isJson bool) (bool, error) {
	left, err := parser.ParseWithMode(a, modeA)
	if err != nil {
		fmt.Fprint(w, formatter.FormatStatementError("<first>", a, err))
		return false, err
	}
	right, err := parser.ParseWithMode(b, modeB)
	if err != nil {
		fmt.Fprint(w, formatter.FormatStatementError("<second>", b, err))
		return false, err
	}

	report := minilogic.New().Verify(left, right)

	if isJson {
		out := equivOutput{VerificationReport: report}
		if report.Counterexample != nil {
			out.Counterexample = report.Counterexample.Map()
		}
		d, err := json.Marshal(out)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(w, string(d))
	} else {
		fmt.Fprint(w, formatter.FormatReport(a, b, report))
	}
	return report.Result == minilogic.Equivalent, nil
}
