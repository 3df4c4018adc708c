// Package hlast defines the high-level AST: the typed surface syntax
// tree, complete with control flow, that the parser builds and the
// executor symbolically evaluates. A Node interface is implemented by
// every variant of the small typed expression language: functions,
// conditionals, blocks, tuples, and arithmetic/boolean/sin operators.
package hlast

import (
	"fmt"
	"strings"

	"github.com/see-reach/seereach/internal/token"
)

// Type tags every value and typed binding in the language.
type Type int

const (
	Real Type = iota
	Integer
	Boolean
	Tuple
)

func (t Type) String() string {
	switch t {
	case Real:
		return "real"
	case Integer:
		return "int"
	case Boolean:
		return "bool"
	case Tuple:
		return "tuple"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Operator enumerates the binary and unary operators of the language.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Greater
	Less
	GreaterEqual
	LessEqual
	Equal
	And
	Or
	Not
	Sin
)

var operatorSymbols = map[Operator]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/",
	Greater: ">", Less: "<", GreaterEqual: ">=", LessEqual: "<=", Equal: "==",
	And: "&&", Or: "||", Not: "!", Sin: "sin",
}

func (o Operator) String() string {
	if s, ok := operatorSymbols[o]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Node is implemented by every statement and expression in the tree.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is a Node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Program is a complete HL-AST: a set of function definitions.
type Program struct {
	Functions []*Function
}

func (p *Program) TokenLiteral() string { return "" }
func (p *Program) Pos() token.Position {
	if len(p.Functions) == 0 {
		return token.Position{}
	}
	return p.Functions[0].Pos()
}
func (p *Program) String() string {
	var sb strings.Builder
	for i, fn := range p.Functions {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(fn.String())
	}
	return sb.String()
}

// Lookup returns the function named name, or nil if the program has none.
func (p *Program) Lookup(name string) *Function {
	for _, fn := range p.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// TypedVariable is a name annotated with its declared Type, used for
// function parameters and for the declaring occurrence of an assignment.
type TypedVariable struct {
	Tok  token.Token
	Name string
	Type Type
}

func (v *TypedVariable) expressionNode()      {}
func (v *TypedVariable) TokenLiteral() string { return v.Tok.Literal }
func (v *TypedVariable) Pos() token.Position  { return v.Tok.Pos }
func (v *TypedVariable) String() string       { return fmt.Sprintf("%s: %s", v.Name, v.Type) }

// Function is a named, typed function definition: parameters, a
// declared return type, and a body expression (almost always a Block).
type Function struct {
	Tok        token.Token
	Name       string
	Params     []*TypedVariable
	ReturnType Type
	Body       Expression
}

func (f *Function) TokenLiteral() string { return f.Tok.Literal }
func (f *Function) Pos() token.Position  { return f.Tok.Pos }
func (f *Function) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("fn %s(%s) -> %s %s", f.Name, strings.Join(params, ", "), f.ReturnType, f.Body)
}

// Variable is a reference to a previously bound name.
type Variable struct {
	Tok  token.Token
	Name string
}

func (v *Variable) expressionNode()      {}
func (v *Variable) TokenLiteral() string { return v.Tok.Literal }
func (v *Variable) Pos() token.Position  { return v.Tok.Pos }
func (v *Variable) String() string       { return v.Name }

// SymbolicVariable is a free symbolic input appearing directly in
// expression position. It never comes out of the parser; drivers build
// it to feed a symbolic argument into an entry call without first
// binding it in a symbol table.
type SymbolicVariable struct {
	Tok  token.Token
	Name string
	Type Type
}

func (v *SymbolicVariable) expressionNode()      {}
func (v *SymbolicVariable) TokenLiteral() string { return v.Tok.Literal }
func (v *SymbolicVariable) Pos() token.Position  { return v.Tok.Pos }
func (v *SymbolicVariable) String() string       { return v.Name }

// Literal is a constant real, integer, or boolean value.
type Literal struct {
	Tok  token.Token
	Type Type
	Real float64
	Int  int64
	Bool bool
}

func (l *Literal) expressionNode()      {}
func (l *Literal) TokenLiteral() string { return l.Tok.Literal }
func (l *Literal) Pos() token.Position  { return l.Tok.Pos }
func (l *Literal) String() string {
	switch l.Type {
	case Real:
		return fmt.Sprintf("%g", l.Real)
	case Integer:
		return fmt.Sprintf("%d", l.Int)
	case Boolean:
		return fmt.Sprintf("%t", l.Bool)
	default:
		return l.Tok.Literal
	}
}

// NewRealLiteral builds a real-typed Literal.
func NewRealLiteral(tok token.Token, v float64) *Literal { return &Literal{Tok: tok, Type: Real, Real: v} }

// NewIntLiteral builds an integer-typed Literal.
func NewIntLiteral(tok token.Token, v int64) *Literal { return &Literal{Tok: tok, Type: Integer, Int: v} }

// NewBoolLiteral builds a boolean-typed Literal.
func NewBoolLiteral(tok token.Token, v bool) *Literal { return &Literal{Tok: tok, Type: Boolean, Bool: v} }

// BinaryOp applies a binary Operator to two sub-expressions.
type BinaryOp struct {
	Tok         token.Token
	Op          Operator
	Left, Right Expression
}

func (b *BinaryOp) expressionNode()      {}
func (b *BinaryOp) TokenLiteral() string { return b.Tok.Literal }
func (b *BinaryOp) Pos() token.Position  { return b.Tok.Pos }
func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// UnaryOp applies a unary Operator (Not or Sin) to one sub-expression.
type UnaryOp struct {
	Tok     token.Token
	Op      Operator
	Operand Expression
}

func (u *UnaryOp) expressionNode()      {}
func (u *UnaryOp) TokenLiteral() string { return u.Tok.Literal }
func (u *UnaryOp) Pos() token.Position  { return u.Tok.Pos }
func (u *UnaryOp) String() string {
	if u.Op == Sin {
		return fmt.Sprintf("sin(%s)", u.Operand)
	}
	return fmt.Sprintf("(%s%s)", u.Op, u.Operand)
}

// FunctionCall invokes a named function with positional argument
// expressions.
type FunctionCall struct {
	Tok  token.Token
	Name string
	Args []Expression
}

func (c *FunctionCall) expressionNode()      {}
func (c *FunctionCall) TokenLiteral() string { return c.Tok.Literal }
func (c *FunctionCall) Pos() token.Position  { return c.Tok.Pos }
func (c *FunctionCall) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

// Conditional branches on a boolean condition; unlike a host-language
// if-statement, both branches are Expressions and the executor forks
// execution rather than choosing one at parse time.
type Conditional struct {
	Tok             token.Token
	Cond            Expression
	Then, Otherwise Expression
}

func (c *Conditional) expressionNode()      {}
func (c *Conditional) TokenLiteral() string { return c.Tok.Literal }
func (c *Conditional) Pos() token.Position  { return c.Tok.Pos }
func (c *Conditional) String() string {
	return fmt.Sprintf("if %s %s else %s", c.Cond, c.Then, c.Otherwise)
}

// Block sequences expressions; the value of a Block is the value of
// its last expression, unless an earlier one is a Return.
type Block struct {
	Tok   token.Token
	Exprs []Expression
}

func (b *Block) expressionNode()      {}
func (b *Block) TokenLiteral() string { return b.Tok.Literal }
func (b *Block) Pos() token.Position  { return b.Tok.Pos }
func (b *Block) String() string {
	parts := make([]string, len(b.Exprs))
	for i, e := range b.Exprs {
		parts[i] = e.String()
	}
	return fmt.Sprintf("{ %s }", strings.Join(parts, "; "))
}

// TupleExpression constructs a fixed-size tuple from element
// expressions.
type TupleExpression struct {
	Tok      token.Token
	Elements []Expression
}

func (t *TupleExpression) expressionNode()      {}
func (t *TupleExpression) TokenLiteral() string { return t.Tok.Literal }
func (t *TupleExpression) Pos() token.Position  { return t.Tok.Pos }
func (t *TupleExpression) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

// Assignment binds the result of Value to Name in the current and all
// descendant scopes, declaring its Type.
type Assignment struct {
	Tok   token.Token
	Name  string
	Type  Type
	Value Expression
}

func (a *Assignment) expressionNode()      {}
func (a *Assignment) TokenLiteral() string { return a.Tok.Literal }
func (a *Assignment) Pos() token.Position  { return a.Tok.Pos }
func (a *Assignment) String() string {
	return fmt.Sprintf("%s: %s = %s", a.Name, a.Type, a.Value)
}

// Return marks Value as the function's result, short-circuiting the
// remainder of the enclosing Block.
type Return struct {
	Tok   token.Token
	Value Expression
}

func (r *Return) expressionNode()      {}
func (r *Return) TokenLiteral() string { return r.Tok.Literal }
func (r *Return) Pos() token.Position  { return r.Tok.Pos }
func (r *Return) String() string       { return fmt.Sprintf("return %s", r.Value) }
