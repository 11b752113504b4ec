package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ml "github.com/gnolang/plogic/internal/minilogic"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ml.Expr
	}{
		{
			name:  "variable",
			input: "A",
			want:  ml.Var("A"),
		},
		{
			name:  "and binds tighter than or",
			input: "A or B and C",
			want:  ml.Or(ml.Var("A"), ml.And(ml.Var("B"), ml.Var("C"))),
		},
		{
			name:  "or binds tighter than implies",
			input: "A or B => C",
			want:  ml.Implies(ml.Or(ml.Var("A"), ml.Var("B")), ml.Var("C")),
		},
		{
			name:  "not binds tightest",
			input: "not A and B",
			want:  ml.And(ml.Not(ml.Var("A")), ml.Var("B")),
		},
		{
			name:  "implies is right associative",
			input: "A => B => C",
			want:  ml.Implies(ml.Var("A"), ml.Implies(ml.Var("B"), ml.Var("C"))),
		},
		{
			name:  "and is left associative",
			input: "A and B and C",
			want:  ml.And(ml.Var("A"), ml.Var("B"), ml.Var("C")),
		},
		{
			name:  "parentheses override precedence",
			input: "not (A or B)",
			want:  ml.Not(ml.Or(ml.Var("A"), ml.Var("B"))),
		},
		{
			name:  "literals",
			input: "true => False",
			want:  ml.Implies(ml.BoolLit(true), ml.BoolLit(false)),
		},
		{
			name:  "nested parentheses",
			input: "((A))",
			want:  ml.Var("A"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
		msg   string
	}{
		{"dangling and", "A and", 5, "expected operand, got end of statement"},
		{"missing close", "(A or B", 7, "expected ')' to close '(' at offset 0, got end of statement"},
		{"stray close", "A)", 1, "unexpected ')'"},
		{"two operands", "A B", 2, "unexpected 'B'"},
		{"leading operator", "or A", 0, "expected operand, got 'or'"},
		{"empty", "", 0, "empty statement"},
		{"empty parentheses", "()", 1, "expected operand, got ')'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.pos, perr.Position)
			assert.Equal(t, tt.msg, perr.Msg)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"A and not B or C",
		"(A => B) => C",
		"not not (A or false)",
	}
	for _, in := range inputs {
		first, err := Parse(in)
		require.NoError(t, err)
		second, err := Parse(first.String())
		require.NoError(t, err)
		assert.Equal(t, first, second, "re-parsing %q", first.String())
	}
}
