package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnolang/plogic/formatter"
	"github.com/gnolang/plogic/internal/minilogic"
	"github.com/gnolang/plogic/internal/parser"
)

var (
	tableLegacy    bool
	tableNormalize bool
)

var tableCmd = &cobra.Command{
	Use:   "table <statement>",
	Short: "Print the truth table of a statement",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTable(os.Stdout, args[0], implicationMode(tableLegacy), tableNormalize); err != nil {
			os.Exit(1)
		}
	},
}

func init() {
	tableCmd.Flags().BoolVar(&tableLegacy, "legacy", false, "Rewrite => as 'or not' before parsing")
	tableCmd.Flags().BoolVar(&tableNormalize, "normalize", false, "Also print the negation normal form")
}

func runTable(w io.Writer, statement string, mode parser.ImplicationMode, normalize bool) error {
	expr, err := parser.ParseWithMode(statement, mode)
	if err != nil {
		fmt.Fprint(w, formatter.FormatStatementError("<args>", statement, err))
		return err
	}

	ml := minilogic.New()
	table, err := ml.TruthTable(expr)
	if err != nil {
		fmt.Fprint(w, formatter.FormatStatementError("<args>", statement, err))
		return err
	}
	fmt.Fprint(w, formatter.FormatTruthTable(statement, table))

	if normalize {
		fmt.Fprintf(w, "nnf: %s\n", ml.Normalize(expr))
	}

	tautology := table.CountTrue() == len(table.Rows)
	satisfiable := table.CountTrue() > 0
	fmt.Fprintf(w, "tautology: %t, satisfiable: %t\n", tautology, satisfiable)
	return nil
}
