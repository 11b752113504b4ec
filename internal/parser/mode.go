package parser

import "fmt"

// ImplicationMode determines how "=>" is read.
type ImplicationMode int

const (
	_ ImplicationMode = iota
	// MaterialImplication reads A => B as (not A) or B.
	MaterialImplication
	// LegacyRewrite replaces every "=>" with "or not" before parsing, so
	// the "not" binds only the operand that follows it: A => B and C reads
	// as A or ((not B) and C), and A => B => C as A or not B or not C.
	// It is kept only so that the two readings can be compared.
	LegacyRewrite
)

func (m ImplicationMode) String() string {
	switch m {
	case MaterialImplication:
		return "material"
	case LegacyRewrite:
		return "legacy"
	default:
		return "?"
	}
}

// ParseImplicationMode maps a configuration string to a mode.
// The empty string selects MaterialImplication.
func ParseImplicationMode(s string) (ImplicationMode, error) {
	switch s {
	case "", "material":
		return MaterialImplication, nil
	case "legacy":
		return LegacyRewrite, nil
	default:
		return 0, fmt.Errorf("unknown implication mode %q", s)
	}
}

// rewriteImplications turns each "=>" token into "or" followed by "not".
// Both keep the arrow's position and text so errors still point at it.
func rewriteImplications(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type != TokenImplies {
			out = append(out, tok)
			continue
		}
		out = append(out,
			Token{Type: TokenOr, Value: tok.Value, Position: tok.Position},
			Token{Type: TokenNot, Value: tok.Value, Position: tok.Position},
		)
	}
	return out
}
