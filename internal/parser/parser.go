package parser

import "github.com/gnolang/plogic/internal/minilogic"

// Parser consumes tokens produced by the lexer and builds a formula.
//
// Precedence, lowest first: "=>" (right associative), "or", "and", "not".
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser instance
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
	}
}

// Parse tokenizes and parses a statement, reading "=>" as material
// implication.
func Parse(statement string) (minilogic.Expr, error) {
	return ParseWithMode(statement, MaterialImplication)
}

// ParseWithMode is Parse with an explicit reading of "=>". Under
// LegacyRewrite the resulting tree contains no implication nodes.
func ParseWithMode(statement string, mode ImplicationMode) (minilogic.Expr, error) {
	tokens, err := NewLexer(statement).Tokenize()
	if err != nil {
		return nil, err
	}
	if mode == LegacyRewrite {
		tokens = rewriteImplications(tokens)
	}
	return NewParser(tokens).Parse()
}

// Parse processes all tokens and builds the expression tree.
func (p *Parser) Parse() (minilogic.Expr, error) {
	if p.peek().Type == TokenEOF {
		return nil, errorf(p.peek().Position, "empty statement")
	}

	expr, err := p.parseImplication()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, errorf(tok.Position, "unexpected %s", describe(tok))
	}
	return expr, nil
}

func (p *Parser) parseImplication() (minilogic.Expr, error) {
	left, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	if !p.match(TokenImplies) {
		return left, nil
	}
	right, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	return minilogic.Implies(left, right), nil
}

func (p *Parser) parseDisjunction() (minilogic.Expr, error) {
	left, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}
	for p.match(TokenOr) {
		right, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		left = minilogic.Binary(minilogic.OpOr, left, right)
	}
	return left, nil
}

func (p *Parser) parseConjunction() (minilogic.Expr, error) {
	left, err := p.parseNegation()
	if err != nil {
		return nil, err
	}
	for p.match(TokenAnd) {
		right, err := p.parseNegation()
		if err != nil {
			return nil, err
		}
		left = minilogic.Binary(minilogic.OpAnd, left, right)
	}
	return left, nil
}

func (p *Parser) parseNegation() (minilogic.Expr, error) {
	if p.match(TokenNot) {
		operand, err := p.parseNegation()
		if err != nil {
			return nil, err
		}
		return minilogic.Not(operand), nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (minilogic.Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case TokenIdent:
		p.current++
		return minilogic.Var(tok.Value), nil
	case TokenTrue:
		p.current++
		return minilogic.BoolLit(true), nil
	case TokenFalse:
		p.current++
		return minilogic.BoolLit(false), nil
	case TokenLParen:
		p.current++
		expr, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		if closing := p.peek(); closing.Type != TokenRParen {
			return nil, errorf(closing.Position, "expected ')' to close '(' at offset %d, got %s", tok.Position, describe(closing))
		}
		p.current++
		return expr, nil
	default:
		return nil, errorf(tok.Position, "expected operand, got %s", describe(tok))
	}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		pos := 0
		if n := len(p.tokens); n > 0 {
			pos = p.tokens[n-1].Position
		}
		return Token{Type: TokenEOF, Position: pos}
	}
	return p.tokens[p.current]
}

// match consumes the current token if it has type t.
func (p *Parser) match(t TokenType) bool {
	if p.peek().Type != t {
		return false
	}
	p.current++
	return true
}

func describe(tok Token) string {
	if tok.Type == TokenEOF {
		return tok.Type.String()
	}
	return "'" + tok.Value + "'"
}
