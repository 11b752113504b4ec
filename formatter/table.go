package formatter

import (
	"fmt"
	"strings"

	"github.com/gnolang/plogic/internal/minilogic"
)

// FormatTruthTable renders table with one column per variable and a
// final column for the statement.
//
//	A     | B     | A => B
//	------+-------+-------
//	false | false | true
func FormatTruthTable(statement string, table minilogic.Table) string {
	headers := append(append([]string{}, table.Vars...), statement)
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = max(len(h), len("false"))
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString(lineStyle.Sprint(" | "))
		}
		b.WriteString(ruleStyle.Sprint(pad(h, widths[i])))
	}
	b.WriteString("\n")

	for i, w := range widths {
		if i > 0 {
			b.WriteString(lineStyle.Sprint("-+-"))
		}
		b.WriteString(lineStyle.Sprint(strings.Repeat("-", w)))
	}
	b.WriteString("\n")

	for _, row := range table.Rows {
		cells := append(append([]bool{}, row.Values...), row.Result)
		for i, v := range cells {
			if i > 0 {
				b.WriteString(lineStyle.Sprint(" | "))
			}
			b.WriteString(boolString(v))
			b.WriteString(strings.Repeat(" ", widths[i]-len(fmt.Sprint(v))))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
