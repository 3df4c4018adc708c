// Package parser implements a recursive-descent parser that builds an
// hlast.Program from a token stream produced by internal/lexer. The
// Parser holds the current and peek token, advances through paired
// nextToken/expectPeek helpers, and parses expressions by precedence
// climbing. The grammar covers function definitions, blocks,
// conditionals, assignments, returns, tuples, and
// arithmetic/boolean/sin expressions.
package parser

import (
	"fmt"

	"github.com/see-reach/seereach/internal/hlast"
	"github.com/see-reach/seereach/internal/lexer"
	"github.com/see-reach/seereach/internal/token"
)

// precedence levels, lowest to highest.
const (
	_ int = iota
	lowest
	orPrec
	andPrec
	comparePrec
	sumPrec
	productPrec
	unaryPrec
)

var precedences = map[token.Type]int{
	token.OR:        orPrec,
	token.AND:       andPrec,
	token.EQ:        comparePrec,
	token.LESS:      comparePrec,
	token.LESSEQ:    comparePrec,
	token.GREATER:   comparePrec,
	token.GREATEREQ: comparePrec,
	token.PLUS:      sumPrec,
	token.MINUS:     sumPrec,
	token.STAR:      productPrec,
	token.SLASH:     productPrec,
}

var binaryOps = map[token.Type]hlast.Operator{
	token.PLUS:      hlast.Add,
	token.MINUS:     hlast.Sub,
	token.STAR:      hlast.Mul,
	token.SLASH:     hlast.Div,
	token.LESS:      hlast.Less,
	token.LESSEQ:    hlast.LessEqual,
	token.GREATER:   hlast.Greater,
	token.GREATEREQ: hlast.GreaterEqual,
	token.EQ:        hlast.Equal,
	token.AND:       hlast.And,
	token.OR:        hlast.Or,
}

var typeKeywords = map[token.Type]hlast.Type{
	token.TYPE_REAL:  hlast.Real,
	token.TYPE_INT:   hlast.Integer,
	token.TYPE_BOOL:  hlast.Boolean,
	token.TYPE_TUPLE: hlast.Tuple,
}

// ParseError is a single syntax error encountered while parsing.
type ParseError struct {
	Message string
	Pos     token.Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Parser consumes tokens from a Lexer and builds an hlast.Program.
type Parser struct {
	l      *lexer.Lexer
	errors []ParseError

	cur  token.Token
	peek token.Token
}

// New creates a Parser reading from l, primed with its first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []ParseError { return p.errors }

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) addError(format string, args ...interface{}) {
	p.errors = append(p.errors, ParseError{Message: fmt.Sprintf(format, args...), Pos: p.cur.Pos})
}

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peek.Type == t {
		p.nextToken()
		return true
	}
	p.addError("expected next token to be %s, got %s instead", t, p.peek.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return lowest
}

// ParseProgram parses the entire token stream into an hlast.Program.
func (p *Parser) ParseProgram() *hlast.Program {
	prog := &hlast.Program{}
	for p.cur.Type != token.EOF {
		if p.cur.Type != token.FN {
			p.addError("expected function definition, got %s", p.cur.Type)
			p.nextToken()
			continue
		}
		fn := p.parseFunction()
		if fn != nil {
			prog.Functions = append(prog.Functions, fn)
		}
		p.nextToken()
	}
	return prog
}

func (p *Parser) parseFunction() *hlast.Function {
	tok := p.cur
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	fn := &hlast.Function{Tok: tok, Name: p.cur.Literal}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	fn.Params = p.parseParamList()

	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	retType, ok := typeKeywords[p.cur.Type]
	if !ok {
		p.addError("expected return type, got %s", p.cur.Type)
		return nil
	}
	fn.ReturnType = retType

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	fn.Body = p.parseBlock()
	return fn
}

func (p *Parser) parseParamList() []*hlast.TypedVariable {
	var params []*hlast.TypedVariable
	if p.peek.Type == token.RPAREN {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseTypedVariable())
	for p.peek.Type == token.COMMA {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseTypedVariable())
	}
	if !p.expectPeek(token.RPAREN) {
		return params
	}
	return params
}

func (p *Parser) parseTypedVariable() *hlast.TypedVariable {
	tok := p.cur
	name := p.cur.Literal
	if !p.expectPeek(token.COLON) {
		return &hlast.TypedVariable{Tok: tok, Name: name}
	}
	p.nextToken()
	ty, ok := typeKeywords[p.cur.Type]
	if !ok {
		p.addError("expected type, got %s", p.cur.Type)
	}
	return &hlast.TypedVariable{Tok: tok, Name: name, Type: ty}
}

// parseBlock parses a '{' ... '}' sequence of semicolon-separated
// expressions. p.cur must be the opening '{' on entry; p.cur is the
// closing '}' on exit.
func (p *Parser) parseBlock() *hlast.Block {
	block := &hlast.Block{Tok: p.cur}
	p.nextToken()
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		expr := p.parseStatement()
		if expr != nil {
			block.Exprs = append(block.Exprs, expr)
		}
		if p.peek.Type == token.SEMI {
			p.nextToken()
		}
		p.nextToken()
	}
	return block
}

// parseStatement parses one statement-level expression: an assignment,
// a return, or a bare expression. p.cur is its first token on entry and
// its last token on exit.
func (p *Parser) parseStatement() hlast.Expression {
	switch {
	case p.cur.Type == token.RETURN:
		tok := p.cur
		p.nextToken()
		val := p.parseExpression(lowest)
		return &hlast.Return{Tok: tok, Value: val}
	case p.cur.Type == token.IDENT && p.peek.Type == token.COLON:
		tok := p.cur
		name := p.cur.Literal
		p.nextToken() // ':'
		p.nextToken() // type keyword
		ty, ok := typeKeywords[p.cur.Type]
		if !ok {
			p.addError("expected type, got %s", p.cur.Type)
		}
		if !p.expectPeek(token.ASSIGN) {
			return nil
		}
		p.nextToken()
		val := p.parseExpression(lowest)
		return &hlast.Assignment{Tok: tok, Name: name, Type: ty, Value: val}
	default:
		return p.parseExpression(lowest)
	}
}

// parseExpression parses a binary/unary expression tree using
// precedence climbing; p.cur is its first token on entry and its last
// token on exit.
func (p *Parser) parseExpression(precedence int) hlast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}
	for p.peek.Type != token.SEMI && precedence < p.peekPrecedence() {
		op, ok := binaryOps[p.peek.Type]
		if !ok {
			return left
		}
		tok := p.peek
		opPrec := p.peekPrecedence()
		p.nextToken()
		p.nextToken()
		right := p.parseExpression(opPrec)
		left = &hlast.BinaryOp{Tok: tok, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parsePrefix() hlast.Expression {
	switch p.cur.Type {
	case token.INT:
		return p.parseIntLiteral()
	case token.REAL:
		return p.parseRealLiteral()
	case token.TRUE:
		return hlast.NewBoolLiteral(p.cur, true)
	case token.FALSE:
		return hlast.NewBoolLiteral(p.cur, false)
	case token.NOT:
		tok := p.cur
		p.nextToken()
		operand := p.parseExpression(unaryPrec)
		return &hlast.UnaryOp{Tok: tok, Op: hlast.Not, Operand: operand}
	case token.MINUS:
		tok := p.cur
		p.nextToken()
		operand := p.parseExpression(unaryPrec)
		zero := hlast.NewIntLiteral(tok, 0)
		return &hlast.BinaryOp{Tok: tok, Op: hlast.Sub, Left: zero, Right: operand}
	case token.SIN:
		tok := p.cur
		if !p.expectPeek(token.LPAREN) {
			return nil
		}
		p.nextToken()
		arg := p.parseExpression(lowest)
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return &hlast.UnaryOp{Tok: tok, Op: hlast.Sin, Operand: arg}
	case token.IF:
		return p.parseConditional()
	case token.LPAREN:
		return p.parseParenOrTuple()
	case token.IDENT:
		return p.parseIdentOrCall()
	case token.LBRACE:
		return p.parseBlock()
	default:
		p.addError("unexpected token %s", p.cur.Type)
		return nil
	}
}

func (p *Parser) parseIntLiteral() hlast.Expression {
	tok := p.cur
	var v int64
	if _, err := fmt.Sscanf(tok.Literal, "%d", &v); err != nil {
		p.addError("invalid integer literal %q", tok.Literal)
	}
	return hlast.NewIntLiteral(tok, v)
}

func (p *Parser) parseRealLiteral() hlast.Expression {
	tok := p.cur
	var v float64
	if _, err := fmt.Sscanf(tok.Literal, "%g", &v); err != nil {
		p.addError("invalid real literal %q", tok.Literal)
	}
	return hlast.NewRealLiteral(tok, v)
}

func (p *Parser) parseConditional() hlast.Expression {
	tok := p.cur
	p.nextToken()
	cond := p.parseExpression(lowest)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	then := p.parseBlock()
	if !p.expectPeek(token.ELSE) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	otherwise := p.parseBlock()
	return &hlast.Conditional{Tok: tok, Cond: cond, Then: then, Otherwise: otherwise}
}

// parseParenOrTuple disambiguates '(' expr ')' from '(' expr ',' ... ')'.
func (p *Parser) parseParenOrTuple() hlast.Expression {
	tok := p.cur
	p.nextToken()
	first := p.parseExpression(lowest)
	if p.peek.Type != token.COMMA {
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return first
	}
	elements := []hlast.Expression{first}
	for p.peek.Type == token.COMMA {
		p.nextToken()
		p.nextToken()
		elements = append(elements, p.parseExpression(lowest))
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &hlast.TupleExpression{Tok: tok, Elements: elements}
}

func (p *Parser) parseIdentOrCall() hlast.Expression {
	tok := p.cur
	if p.peek.Type != token.LPAREN {
		return &hlast.Variable{Tok: tok, Name: tok.Literal}
	}
	p.nextToken() // '('
	call := &hlast.FunctionCall{Tok: tok, Name: tok.Literal}
	if p.peek.Type == token.RPAREN {
		p.nextToken()
		return call
	}
	p.nextToken()
	call.Args = append(call.Args, p.parseExpression(lowest))
	for p.peek.Type == token.COMMA {
		p.nextToken()
		p.nextToken()
		call.Args = append(call.Args, p.parseExpression(lowest))
	}
	if !p.expectPeek(token.RPAREN) {
		return call
	}
	return call
}
