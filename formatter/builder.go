package formatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/gnolang/plogic/internal/minilogic"
	"github.com/gnolang/plogic/internal/parser"
)

const tabWidth = 8

var (
	errorStyle      = color.New(color.FgRed, color.Bold)
	warningStyle    = color.New(color.FgHiYellow, color.Bold)
	ruleStyle       = color.New(color.FgYellow, color.Bold)
	fileStyle       = color.New(color.FgCyan, color.Bold)
	lineStyle       = color.New(color.FgHiBlue, color.Bold)
	messageStyle    = color.New(color.FgRed, color.Bold)
	suggestionStyle = color.New(color.FgGreen, color.Bold)
	trueStyle       = color.New(color.FgGreen)
	falseStyle      = color.New(color.FgRed)
)

// errorTemplate renders a statement error in the style of a compiler
// diagnostic, with a caret under the offending column when it is known.
const errorTemplate = `{{header .Kind .Source .Column}}
{{snippet .Statement}}
{{underline .Statement .Offset .Message}}`

type errorData struct {
	Kind      string
	Source    string
	Statement string
	Offset    int // byte offset, -1 when the error has no position
	Column    int
	Message   string
}

// FormatStatementError renders err, which came from parsing or evaluating
// statement. source names where the statement came from (a file and
// statement name, or "<args>").
func FormatStatementError(source, statement string, err error) string {
	data := errorData{
		Kind:      "error",
		Source:    source,
		Statement: statement,
		Offset:    -1,
		Message:   err.Error(),
	}

	var perr *parser.ParseError
	var uerr *minilogic.UnknownVariableError
	switch {
	case errors.As(err, &perr):
		data.Kind = "syntax error"
		data.Offset = perr.Position
		data.Column = perr.Position + 1
		data.Message = perr.Msg
	case errors.As(err, &uerr):
		data.Kind = "unknown variable"
		if i := indexIdent(statement, uerr.Name); i >= 0 {
			data.Offset = i
			data.Column = i + 1
		}
		data.Message = fmt.Sprintf("no value given for %q", uerr.Name)
	}

	funcMap := template.FuncMap{
		"header":    header,
		"snippet":   snippet,
		"underline": underline,
	}
	tmpl := template.Must(template.New("error").Funcs(funcMap).Parse(errorTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting error: %v", err)
	}
	return buf.String()
}

func header(kind, source string, column int) string {
	out := errorStyle.Sprint("error: ") + ruleStyle.Sprint(kind) + "\n"
	out += lineStyle.Sprint(" --> ")
	if column > 0 {
		return out + fileStyle.Sprintf("%s:%d", source, column)
	}
	return out + fileStyle.Sprint(source)
}

func snippet(statement string) string {
	return lineStyle.Sprint("  |\n") + lineStyle.Sprint("1 | ") + expandTabs(statement)
}

func underline(statement string, offset int, message string) string {
	out := lineStyle.Sprint("  | ")
	if offset < 0 {
		return out + messageStyle.Sprintf("%s\n", message)
	}
	col := calculateVisualColumn(statement, offset+1)
	out += strings.Repeat(" ", col)
	return out + messageStyle.Sprintf("^ %s\n", message)
}

// indexIdent finds name in statement as a whole identifier.
func indexIdent(statement, name string) int {
	tokens, err := parser.NewLexer(statement).Tokenize()
	if err != nil {
		return -1
	}
	for _, tok := range tokens {
		if tok.Type == parser.TokenIdent && tok.Value == name {
			return tok.Position
		}
	}
	return -1
}

func expandTabs(line string) string {
	var expanded strings.Builder
	column := 0
	for _, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (column % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaceCount))
			column += spaceCount
			continue
		}
		expanded.WriteRune(ch)
		column++
	}
	return expanded.String()
}

// calculateVisualColumn returns the number of display cells before the
// 1-based byte column, taking tabs into account.
func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	for i, ch := range line {
		if i+1 >= column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}

func boolString(v bool) string {
	if v {
		return trueStyle.Sprint("true")
	}
	return falseStyle.Sprint("false")
}
