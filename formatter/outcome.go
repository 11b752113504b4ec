package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gnolang/plogic/scenario"
)

// FormatOutcomes renders scenario outcomes grouped by file, followed by a
// one-line summary.
func FormatOutcomes(outcomes []scenario.Outcome) string {
	byFile := make(map[string][]scenario.Outcome)
	for _, o := range outcomes {
		byFile[o.File] = append(byFile[o.File], o)
	}

	files := make([]string, 0, len(byFile))
	for f := range byFile {
		files = append(files, f)
	}
	sort.Strings(files)

	var b strings.Builder
	failed := 0
	for _, f := range files {
		b.WriteString(fileStyle.Sprint(f) + "\n")
		for _, o := range byFile[f] {
			if o.Failed() {
				failed++
			}
			b.WriteString(formatOutcome(o))
		}
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("%d checks, %d failed", len(outcomes), failed)
	if failed > 0 {
		b.WriteString(errorStyle.Sprint(summary) + "\n")
	} else {
		b.WriteString(suggestionStyle.Sprint(summary) + "\n")
	}
	return b.String()
}

func formatOutcome(o scenario.Outcome) string {
	status := suggestionStyle.Sprint("ok  ")
	if o.Failed() {
		status = errorStyle.Sprint("FAIL")
	}

	line := fmt.Sprintf("  %s %s %s", status, ruleStyle.Sprintf("%-9s", o.Kind), o.Name)
	if o.Input != "" {
		line += lineStyle.Sprint(": ") + o.Input
	}

	switch {
	case o.Err != "":
		line += "\n" + lineStyle.Sprint("       = ") + messageStyle.Sprint(o.Err)
	default:
		line += lineStyle.Sprint(" -> ") + o.Result
		if o.Expected != "" && o.Expected != o.Result {
			line += messageStyle.Sprintf(" (expected %s)", o.Expected)
		}
		if o.Detail != "" {
			line += "\n" + lineStyle.Sprint("       = ") + o.Detail
		}
	}
	return line + "\n"
}
