package lexer

import (
	"testing"

	"github.com/see-reach/seereach/internal/token"
)

// TestNextToken tests the full token stream of a representative function
// definition.
func TestNextToken(t *testing.T) {
	input := `fn foo(x: int, y: real) -> bool {
  u: real = 1.5 * y;
  return if u <= 5.0 { true } else { x == 0 }
}`

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.FN, "fn"},
		{token.IDENT, "foo"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COLON, ":"},
		{token.TYPE_INT, "int"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.COLON, ":"},
		{token.TYPE_REAL, "real"},
		{token.RPAREN, ")"},
		{token.ARROW, "->"},
		{token.TYPE_BOOL, "bool"},
		{token.LBRACE, "{"},
		{token.IDENT, "u"},
		{token.COLON, ":"},
		{token.TYPE_REAL, "real"},
		{token.ASSIGN, "="},
		{token.REAL, "1.5"},
		{token.STAR, "*"},
		{token.IDENT, "y"},
		{token.SEMI, ";"},
		{token.RETURN, "return"},
		{token.IF, "if"},
		{token.IDENT, "u"},
		{token.LESSEQ, "<="},
		{token.REAL, "5.0"},
		{token.LBRACE, "{"},
		{token.TRUE, "true"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.EQ, "=="},
		{token.INT, "0"},
		{token.RBRACE, "}"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. want=%s, got=%s (%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. want=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
	if errs := l.Errors(); len(errs) != 0 {
		t.Fatalf("lexer reported %d errors, first: %s", len(errs), errs[0].Message)
	}
}

// TestOperators tests each operator token in isolation.
func TestOperators(t *testing.T) {
	input := `+ * / < > <= >= == && || ! = :`
	expected := []token.Type{
		token.PLUS, token.STAR, token.SLASH,
		token.LESS, token.GREATER, token.LESSEQ, token.GREATEREQ,
		token.EQ, token.AND, token.OR, token.NOT, token.ASSIGN, token.COLON,
		token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - wrong token type. want=%s, got=%s", i, want, tok.Type)
		}
	}
}

// TestSignedNumbers: a minus directly followed by a digit lexes as a
// signed literal; a freestanding minus is the operator.
func TestSignedNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected []struct {
			typ token.Type
			lit string
		}
	}{
		{"-1", []struct {
			typ token.Type
			lit string
		}{{token.INT, "-1"}}},
		{"-2.5", []struct {
			typ token.Type
			lit string
		}{{token.REAL, "-2.5"}}},
		{"x - 1", []struct {
			typ token.Type
			lit string
		}{{token.IDENT, "x"}, {token.MINUS, "-"}, {token.INT, "1"}}},
		{"1e3", []struct {
			typ token.Type
			lit string
		}{{token.REAL, "1e3"}}},
		{"-1.5e-2", []struct {
			typ token.Type
			lit string
		}{{token.REAL, "-1.5e-2"}}},
	}

	for _, tt := range tests {
		l := New(tt.input)
		for i, want := range tt.expected {
			tok := l.NextToken()
			if tok.Type != want.typ || tok.Literal != want.lit {
				t.Fatalf("%q token[%d]: want %s %q, got %s %q", tt.input, i, want.typ, want.lit, tok.Type, tok.Literal)
			}
		}
	}
}

// TestKeywordsCaseInsensitive: keywords match in any case; identifiers
// keep their spelling.
func TestKeywordsCaseInsensitive(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Type
		literal  string
	}{
		{"fn", token.FN, "fn"},
		{"FN", token.FN, "FN"},
		{"Return", token.RETURN, "Return"},
		{"IF", token.IF, "IF"},
		{"True", token.TRUE, "True"},
		{"SIN", token.SIN, "SIN"},
		{"Bool", token.TYPE_BOOL, "Bool"},
		{"foo", token.IDENT, "foo"},
		{"Foo", token.IDENT, "Foo"},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.expected {
			t.Errorf("%q: want type %s, got %s", tt.input, tt.expected, tok.Type)
		}
		if tok.Literal != tt.literal {
			t.Errorf("%q: want literal %q, got %q", tt.input, tt.literal, tok.Literal)
		}
	}
}

// TestPositions: line and column are 1-indexed rune counts.
func TestPositions(t *testing.T) {
	input := "fn\n  foo"
	l := New(input)

	tok := l.NextToken()
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Errorf("fn position: want 1:1, got %d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	tok = l.NextToken()
	if tok.Pos.Line != 2 || tok.Pos.Column != 3 {
		t.Errorf("foo position: want 2:3, got %d:%d", tok.Pos.Line, tok.Pos.Column)
	}
}

// TestIllegalCharacters: a lone '&' or '|' is illegal and recorded as a
// lex error.
func TestIllegalCharacters(t *testing.T) {
	tests := []string{"&", "|", "#"}
	for _, input := range tests {
		l := New(input)
		tok := l.NextToken()
		if tok.Type != token.ILLEGAL {
			t.Errorf("%q: want ILLEGAL, got %s", input, tok.Type)
		}
		if len(l.Errors()) != 1 {
			t.Errorf("%q: want 1 lex error, got %d", input, len(l.Errors()))
		}
	}
}
