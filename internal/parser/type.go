package parser

import "fmt"

// TokenType defines different types of tokens that can be produced by the lexer.
type TokenType int

const (
	TokenIdent   TokenType = iota // variable name
	TokenTrue                     // true, True
	TokenFalse                    // false, False
	TokenAnd                      // and
	TokenOr                       // or
	TokenNot                      // not
	TokenImplies                  // =>
	TokenLParen                   // '('
	TokenRParen                   // ')'
	TokenEOF                      // End of input
)

func (t TokenType) String() string {
	switch t {
	case TokenIdent:
		return "identifier"
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"
	case TokenAnd:
		return "and"
	case TokenOr:
		return "or"
	case TokenNot:
		return "not"
	case TokenImplies:
		return "=>"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenEOF:
		return "end of statement"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a single lexical token with type, value, and position.
type Token struct {
	Type     TokenType // type of this token
	Value    string    // the literal string for this token
	Position int       // the starting byte offset in the original input
}

func (t Token) String() string {
	if t.Type == TokenIdent {
		return fmt.Sprintf("%s(%s)@%d", t.Type, t.Value, t.Position)
	}
	return fmt.Sprintf("%s@%d", t.Type, t.Position)
}

// keywords are matched against whole identifiers only, so a variable
// such as "andy" or "notice" is never split.
var keywords = map[string]TokenType{
	"and":   TokenAnd,
	"or":    TokenOr,
	"not":   TokenNot,
	"true":  TokenTrue,
	"True":  TokenTrue,
	"false": TokenFalse,
	"False": TokenFalse,
}
