package formatter

import (
	"fmt"
	"strings"

	"github.com/gnolang/plogic/internal/minilogic"
)

// FormatReport renders the result of an equivalence check between a and b.
func FormatReport(a, b string, report minilogic.VerificationReport) string {
	var out strings.Builder

	switch report.Result {
	case minilogic.Equivalent:
		out.WriteString(suggestionStyle.Sprint("equivalent: "))
	case minilogic.NotEquivalent:
		out.WriteString(errorStyle.Sprint("not equivalent: "))
	default:
		out.WriteString(warningStyle.Sprint("unknown: "))
	}
	out.WriteString(fmt.Sprintf("%s  vs  %s\n", a, b))
	out.WriteString(lineStyle.Sprint("  = "))
	out.WriteString(report.Reason.String())
	if report.Detail != "" {
		out.WriteString(" (" + report.Detail + ")")
	}
	out.WriteString("\n")

	if report.Counterexample != nil {
		out.WriteString(lineStyle.Sprint("  = "))
		out.WriteString(fmt.Sprintf("counterexample %s: left is %s, right is %s\n",
			report.Counterexample, boolString(report.Left), boolString(report.Right)))
	}
	return out.String()
}

// FormatResult renders a single evaluation result.
func FormatResult(statement string, values map[string]bool, result bool) string {
	return fmt.Sprintf("%s %s %s\n",
		fileStyle.Sprint(statement), lineStyle.Sprint("is"), boolString(result)) +
		lineStyle.Sprint("  = ") + minilogic.EnvFromMap(values).String() + "\n"
}
