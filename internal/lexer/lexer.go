// Package lexer tokenizes the SEE-Reach surface syntax:
// fn/return/if/else, the type keywords, the infix operator set,
// sin(expr), boolean and numeric literals, and block punctuation.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/see-reach/seereach/internal/token"
)

// foldKeyword lower-cases an identifier for keyword lookup. Keywords
// are matched case-insensitively; variable and function names remain
// case-sensitive.
var foldKeyword = cases.Lower(language.Und)

// LexError is a single lexical error, reported with its source position.
type LexError struct {
	Message string
	Pos     token.Position
}

// Lexer scans SEE-Reach source text into a stream of Tokens.
//
// Column positions are rune counts, not byte offsets: multi-byte
// runes each count as one column.
type Lexer struct {
	input        string
	errors       []LexError
	position     int
	readPosition int
	line         int
	column       int
	ch           rune
}

// New creates a Lexer over input, ready to emit its first token.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.column++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.position}
}

// Errors returns all lexical errors accumulated so far.
func (l *Lexer) Errors() []LexError {
	return l.errors
}

func (l *Lexer) addError(msg string, pos token.Position) {
	l.errors = append(l.errors, LexError{Message: msg, Pos: pos})
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken scans and returns the next Token, advancing the lexer.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Literal: "", Pos: pos}
	case l.ch == '+':
		l.readChar()
		return token.Token{Type: token.PLUS, Literal: "+", Pos: pos}
	case l.ch == '-' && !isDigit(l.peekChar()):
		l.readChar()
		if l.ch == '>' {
			l.readChar()
			return token.Token{Type: token.ARROW, Literal: "->", Pos: pos}
		}
		return token.Token{Type: token.MINUS, Literal: "-", Pos: pos}
	case l.ch == '*':
		l.readChar()
		return token.Token{Type: token.STAR, Literal: "*", Pos: pos}
	case l.ch == '/':
		l.readChar()
		return token.Token{Type: token.SLASH, Literal: "/", Pos: pos}
	case l.ch == '<':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return token.Token{Type: token.LESSEQ, Literal: "<=", Pos: pos}
		}
		return token.Token{Type: token.LESS, Literal: "<", Pos: pos}
	case l.ch == '>':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return token.Token{Type: token.GREATEREQ, Literal: ">=", Pos: pos}
		}
		return token.Token{Type: token.GREATER, Literal: ">", Pos: pos}
	case l.ch == '=':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return token.Token{Type: token.EQ, Literal: "==", Pos: pos}
		}
		return token.Token{Type: token.ASSIGN, Literal: "=", Pos: pos}
	case l.ch == '&':
		l.readChar()
		if l.ch == '&' {
			l.readChar()
			return token.Token{Type: token.AND, Literal: "&&", Pos: pos}
		}
		l.addError("unexpected character '&'", pos)
		return token.Token{Type: token.ILLEGAL, Literal: "&", Pos: pos}
	case l.ch == '|':
		l.readChar()
		if l.ch == '|' {
			l.readChar()
			return token.Token{Type: token.OR, Literal: "||", Pos: pos}
		}
		l.addError("unexpected character '|'", pos)
		return token.Token{Type: token.ILLEGAL, Literal: "|", Pos: pos}
	case l.ch == '!':
		l.readChar()
		return token.Token{Type: token.NOT, Literal: "!", Pos: pos}
	case l.ch == ':':
		l.readChar()
		return token.Token{Type: token.COLON, Literal: ":", Pos: pos}
	case l.ch == ',':
		l.readChar()
		return token.Token{Type: token.COMMA, Literal: ",", Pos: pos}
	case l.ch == ';':
		l.readChar()
		return token.Token{Type: token.SEMI, Literal: ";", Pos: pos}
	case l.ch == '(':
		l.readChar()
		return token.Token{Type: token.LPAREN, Literal: "(", Pos: pos}
	case l.ch == ')':
		l.readChar()
		return token.Token{Type: token.RPAREN, Literal: ")", Pos: pos}
	case l.ch == '{':
		l.readChar()
		return token.Token{Type: token.LBRACE, Literal: "{", Pos: pos}
	case l.ch == '}':
		l.readChar()
		return token.Token{Type: token.RBRACE, Literal: "}", Pos: pos}
	case l.ch == '-' || isDigit(l.ch):
		return l.readNumber(pos)
	case isIdentStart(l.ch):
		return l.readIdentifier(pos)
	default:
		ch := l.ch
		l.readChar()
		l.addError("unexpected character", pos)
		return token.Token{Type: token.ILLEGAL, Literal: string(ch), Pos: pos}
	}
}

func (l *Lexer) readNumber(pos token.Position) token.Token {
	var sb strings.Builder
	if l.ch == '-' {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	for isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	isReal := false
	if l.ch == '.' && isDigit(l.peekChar()) {
		isReal = true
		sb.WriteRune(l.ch)
		l.readChar()
		for isDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		isReal = true
		sb.WriteRune(l.ch)
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			sb.WriteRune(l.ch)
			l.readChar()
		}
		for isDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}
	if isReal {
		return token.Token{Type: token.REAL, Literal: sb.String(), Pos: pos}
	}
	return token.Token{Type: token.INT, Literal: sb.String(), Pos: pos}
}

func (l *Lexer) readIdentifier(pos token.Position) token.Token {
	var sb strings.Builder
	for isIdentStart(l.ch) || isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	lit := sb.String()
	if tt := token.LookupIdent(foldKeyword.String(lit)); tt != token.IDENT {
		return token.Token{Type: tt, Literal: lit, Pos: pos}
	}
	return token.Token{Type: token.IDENT, Literal: lit, Pos: pos}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
