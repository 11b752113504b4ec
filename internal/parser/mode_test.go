package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ml "github.com/gnolang/plogic/internal/minilogic"
)

func TestParseWithModeLegacy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ml.Expr
	}{
		{
			name:  "single arrow",
			input: "A => B",
			want:  ml.Or(ml.Var("A"), ml.Not(ml.Var("B"))),
		},
		{
			name:  "not binds only the next operand",
			input: "A => B and C",
			want:  ml.Or(ml.Var("A"), ml.And(ml.Not(ml.Var("B")), ml.Var("C"))),
		},
		{
			name:  "chained arrows flatten",
			input: "A => B => C",
			want:  ml.Or(ml.Var("A"), ml.Not(ml.Var("B")), ml.Not(ml.Var("C"))),
		},
		{
			name:  "inside parentheses",
			input: "(A => B) and C",
			want:  ml.And(ml.Or(ml.Var("A"), ml.Not(ml.Var("B"))), ml.Var("C")),
		},
		{
			name:  "negated antecedent",
			input: "not A => B",
			want:  ml.Or(ml.Not(ml.Var("A")), ml.Not(ml.Var("B"))),
		},
		{
			name:  "no arrow",
			input: "A and not B",
			want:  ml.And(ml.Var("A"), ml.Not(ml.Var("B"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWithMode(tt.input, LegacyRewrite)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseWithMode(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseWithModeMaterial(t *testing.T) {
	got, err := ParseWithMode("A => B and C", MaterialImplication)
	require.NoError(t, err)
	want := ml.Implies(ml.Var("A"), ml.And(ml.Var("B"), ml.Var("C")))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWithModeLegacyErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"A =>", "syntax error at offset 4: expected operand, got end of statement"},
		{"=> A", "syntax error at offset 0: expected operand, got '=>'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseWithMode(tt.input, LegacyRewrite)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestParseImplicationMode(t *testing.T) {
	mode, err := ParseImplicationMode("")
	require.NoError(t, err)
	assert.Equal(t, MaterialImplication, mode)

	mode, err = ParseImplicationMode("legacy")
	require.NoError(t, err)
	assert.Equal(t, LegacyRewrite, mode)
	assert.Equal(t, "legacy", mode.String())

	_, err = ParseImplicationMode("intuitionistic")
	assert.Error(t, err)
}
