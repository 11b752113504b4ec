package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/plogic"
)

var (
	quantDomain    string
	quantPredicate string
)

var quantCmd = &cobra.Command{
	Use:   "quant",
	Short: "Evaluate forall and exists for a comparison over an integer domain",
	Long: `Checks a predicate such as "> 0" against every element of a domain.
Example) plogic quant --domain 1,2,3,-1,-2 --predicate "> 0"`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runQuant(os.Stdout, quantDomain, quantPredicate); err != nil {
			logger.Error("Invalid quantifier input", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	quantCmd.Flags().StringVar(&quantDomain, "domain", "1,2,3,-1,-2", "Comma-separated integers")
	quantCmd.Flags().StringVar(&quantPredicate, "predicate", "> 0", "Comparison applied to each element")
}

func runQuant(w io.Writer, domainSpec, predicateSpec string) error {
	domain, err := plogic.ParseDomain(domainSpec)
	if err != nil {
		return err
	}
	pred, err := plogic.ParsePredicate(predicateSpec)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "forall x %s in %v = %t", predicateSpec, domain, plogic.ForAll(pred, domain))
	if x, i := plogic.Counterexample(pred, domain); i >= 0 {
		fmt.Fprintf(w, " (counterexample %d at index %d)", x, i)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "exists x %s in %v = %t", predicateSpec, domain, plogic.Exists(pred, domain))
	if x, i := plogic.Witness(pred, domain); i >= 0 {
		fmt.Fprintf(w, " (witness %d at index %d)", x, i)
	}
	fmt.Fprintln(w)
	return nil
}
