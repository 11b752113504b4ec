package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnolang/plogic"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the classic examples for every operator, quantifier and the agent",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDemo(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runDemo(w io.Writer) error {
	fmt.Fprintln(w, "# operators")
	fmt.Fprintf(w, "and(true, false) = %t\n", plogic.And(true, false))
	fmt.Fprintf(w, "or(true, false) = %t\n", plogic.Or(true, false))
	fmt.Fprintf(w, "not(true) = %t\n", plogic.Not(true))
	fmt.Fprintf(w, "implies(true, false) = %t\n", plogic.Implies(true, false))

	fmt.Fprintln(w, "# statements")
	examples := []struct {
		statement string
		values    map[string]bool
	}{
		{"A and B", map[string]bool{"A": true, "B": false}},
		{"A or B", map[string]bool{"A": true, "B": false}},
		{"not A", map[string]bool{"A": true}},
		{"A => B", map[string]bool{"A": true, "B": false}},
	}
	for _, ex := range examples {
		result, err := plogic.Evaluate(ex.statement, ex.values)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s = %t\n", ex.statement, result)
	}

	fmt.Fprintln(w, "# quantifiers")
	positive := func(x int) bool { return x > 0 }
	domain := []int{1, 2, 3, -1, -2}
	fmt.Fprintf(w, "forall x > 0 in %v = %t\n", domain, plogic.ForAll(positive, domain))
	fmt.Fprintf(w, "exists x > 0 in %v = %t\n", domain, plogic.Exists(positive, domain))

	fmt.Fprintln(w, "# agent")
	fmt.Fprintln(w, plogic.NewAgent().MakeDecision())
	return nil
}
