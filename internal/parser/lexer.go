package parser

import (
	"unicode"
	"unicode/utf8"
)

// Lexer is responsible for scanning the input string and producing tokens.
type Lexer struct {
	input    string // the entire input to tokenize
	position int    // current reading position in input
	tokens   []Token
}

// NewLexer returns a new Lexer with the given input and initializes state.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:    input,
		position: 0,
		tokens:   make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens,
// terminated by a TokenEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		currentPos := l.position
		c, size := utf8.DecodeRuneInString(l.input[l.position:])

		switch {
		case unicode.IsSpace(c):
			l.position += size

		case c == '(':
			l.addToken(TokenLParen, "(", currentPos)
			l.position++

		case c == ')':
			l.addToken(TokenRParen, ")", currentPos)
			l.position++

		case c == '=':
			if l.position+1 < len(l.input) && l.input[l.position+1] == '>' {
				l.addToken(TokenImplies, "=>", currentPos)
				l.position += 2
				continue
			}
			return nil, errorf(currentPos, "expected '=>'")

		case isIdentStart(c):
			l.lexIdent(currentPos)

		default:
			return nil, errorf(currentPos, "unexpected character %q", c)
		}
	}

	// At the end, add an EOF token to indicate we're done.
	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexIdent scans an identifier and classifies it as a keyword or a variable.
func (l *Lexer) lexIdent(startPos int) {
	for l.position < len(l.input) {
		c, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !isIdentPart(c) {
			break
		}
		l.position += size
	}

	word := l.input[startPos:l.position]
	if kw, ok := keywords[word]; ok {
		l.addToken(kw, word, startPos)
		return
	}
	l.addToken(TokenIdent, word, startPos)
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || unicode.IsDigit(c)
}
