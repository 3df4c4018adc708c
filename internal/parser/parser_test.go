package parser

import (
	"testing"

	"github.com/see-reach/seereach/internal/hlast"
	"github.com/see-reach/seereach/internal/lexer"
)

func testParser(input string) *Parser {
	return New(lexer.New(input))
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	t.Errorf("parser has %d errors", len(errs))
	for _, err := range errs {
		t.Errorf("parser error: %s", err)
	}
	t.FailNow()
}

func parseOne(t *testing.T, input string) *hlast.Function {
	t.Helper()
	p := testParser(input)
	prog := p.ParseProgram()
	checkParserErrors(t, p)
	if len(prog.Functions) != 1 {
		t.Fatalf("program has wrong number of functions. got=%d", len(prog.Functions))
	}
	return prog.Functions[0]
}

func TestFunctionDefinition(t *testing.T) {
	fn := parseOne(t, `fn foo(x: int, y: real) -> bool { return true }`)

	if fn.Name != "foo" {
		t.Errorf("fn.Name = %q, want %q", fn.Name, "foo")
	}
	if len(fn.Params) != 2 {
		t.Fatalf("fn has %d params, want 2", len(fn.Params))
	}
	if fn.Params[0].Name != "x" || fn.Params[0].Type != hlast.Integer {
		t.Errorf("param 0 = %s, want x: int", fn.Params[0])
	}
	if fn.Params[1].Name != "y" || fn.Params[1].Type != hlast.Real {
		t.Errorf("param 1 = %s, want y: real", fn.Params[1])
	}
	if fn.ReturnType != hlast.Boolean {
		t.Errorf("fn.ReturnType = %s, want bool", fn.ReturnType)
	}

	body, ok := fn.Body.(*hlast.Block)
	if !ok {
		t.Fatalf("fn.Body is %T, want *hlast.Block", fn.Body)
	}
	if len(body.Exprs) != 1 {
		t.Fatalf("body has %d expressions, want 1", len(body.Exprs))
	}
	if _, ok := body.Exprs[0].(*hlast.Return); !ok {
		t.Fatalf("body expression is %T, want *hlast.Return", body.Exprs[0])
	}
}

func TestNoParamFunction(t *testing.T) {
	fn := parseOne(t, `fn main() -> int { return 1 }`)
	if len(fn.Params) != 0 {
		t.Fatalf("fn has %d params, want 0", len(fn.Params))
	}
}

// TestOperatorPrecedence renders the parsed expression back with the
// fully-parenthesized String form to make grouping visible.
func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"1 + 2 < 3 * 4", "((1 + 2) < (3 * 4))"},
		{"a < b && c < d", "((a < b) && (c < d))"},
		{"a && b || c", "((a && b) || c)"},
		{"x <= 1 == true", "((x <= 1) == true)"},
		{"1 / 2 / 3", "((1 / 2) / 3)"},
		{"!a && b", "((!a) && b)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			fn := parseOne(t, "fn f() -> int { return "+tt.input+" }")
			body := fn.Body.(*hlast.Block)
			retExpr := body.Exprs[0].(*hlast.Return)
			if got := retExpr.Value.String(); got != tt.expected {
				t.Errorf("parsed %q as %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAssignmentStatement(t *testing.T) {
	fn := parseOne(t, `fn f(x: real) -> real { u: real = 2.0 * x; return u }`)
	body := fn.Body.(*hlast.Block)
	if len(body.Exprs) != 2 {
		t.Fatalf("body has %d expressions, want 2", len(body.Exprs))
	}

	assign, ok := body.Exprs[0].(*hlast.Assignment)
	if !ok {
		t.Fatalf("first expression is %T, want *hlast.Assignment", body.Exprs[0])
	}
	if assign.Name != "u" || assign.Type != hlast.Real {
		t.Errorf("assignment LHS = %s: %s, want u: real", assign.Name, assign.Type)
	}
	if _, ok := assign.Value.(*hlast.BinaryOp); !ok {
		t.Errorf("assignment RHS is %T, want *hlast.BinaryOp", assign.Value)
	}
}

func TestConditional(t *testing.T) {
	fn := parseOne(t, `fn f(x: int) -> int { return if x < 0 { 1 } else { 2 } }`)
	body := fn.Body.(*hlast.Block)
	retExpr := body.Exprs[0].(*hlast.Return)

	c, ok := retExpr.Value.(*hlast.Conditional)
	if !ok {
		t.Fatalf("return value is %T, want *hlast.Conditional", retExpr.Value)
	}
	if _, ok := c.Cond.(*hlast.BinaryOp); !ok {
		t.Errorf("condition is %T, want *hlast.BinaryOp", c.Cond)
	}
	if _, ok := c.Then.(*hlast.Block); !ok {
		t.Errorf("then branch is %T, want *hlast.Block", c.Then)
	}
	if _, ok := c.Otherwise.(*hlast.Block); !ok {
		t.Errorf("else branch is %T, want *hlast.Block", c.Otherwise)
	}
}

func TestNestedConditional(t *testing.T) {
	fn := parseOne(t, `fn f(x: int) -> int { return if x < 0 { -1 } else { if x == 0 { 0 } else { 5 } } }`)
	body := fn.Body.(*hlast.Block)
	outer := body.Exprs[0].(*hlast.Return).Value.(*hlast.Conditional)
	elseBlock := outer.Otherwise.(*hlast.Block)
	if len(elseBlock.Exprs) != 1 {
		t.Fatalf("else block has %d expressions, want 1", len(elseBlock.Exprs))
	}
	if _, ok := elseBlock.Exprs[0].(*hlast.Conditional); !ok {
		t.Fatalf("nested expression is %T, want *hlast.Conditional", elseBlock.Exprs[0])
	}
}

func TestTupleExpression(t *testing.T) {
	fn := parseOne(t, `fn f(x: int) -> tuple { return (x, 1, 2.5) }`)
	body := fn.Body.(*hlast.Block)
	tuple, ok := body.Exprs[0].(*hlast.Return).Value.(*hlast.TupleExpression)
	if !ok {
		t.Fatalf("return value is %T, want *hlast.TupleExpression", body.Exprs[0].(*hlast.Return).Value)
	}
	if len(tuple.Elements) != 3 {
		t.Fatalf("tuple has %d elements, want 3", len(tuple.Elements))
	}
}

func TestParenthesizedExpressionIsNotTuple(t *testing.T) {
	fn := parseOne(t, `fn f(x: int) -> int { return (x + 1) * 2 }`)
	body := fn.Body.(*hlast.Block)
	mul, ok := body.Exprs[0].(*hlast.Return).Value.(*hlast.BinaryOp)
	if !ok || mul.Op != hlast.Mul {
		t.Fatalf("return value should parse as a multiplication")
	}
	add, ok := mul.Left.(*hlast.BinaryOp)
	if !ok || add.Op != hlast.Add {
		t.Fatalf("left operand should be the parenthesized addition, got %T", mul.Left)
	}
}

func TestSinCall(t *testing.T) {
	fn := parseOne(t, `fn f(x: real) -> real { return sin(x + 1.0) }`)
	body := fn.Body.(*hlast.Block)
	u, ok := body.Exprs[0].(*hlast.Return).Value.(*hlast.UnaryOp)
	if !ok || u.Op != hlast.Sin {
		t.Fatalf("return value is %T, want sin UnaryOp", body.Exprs[0].(*hlast.Return).Value)
	}
}

func TestFunctionCall(t *testing.T) {
	fn := parseOne(t, `fn f(x: int) -> int { return bar(x, 2) }`)
	body := fn.Body.(*hlast.Block)
	call, ok := body.Exprs[0].(*hlast.Return).Value.(*hlast.FunctionCall)
	if !ok {
		t.Fatalf("return value is %T, want *hlast.FunctionCall", body.Exprs[0].(*hlast.Return).Value)
	}
	if call.Name != "bar" {
		t.Errorf("call.Name = %q, want %q", call.Name, "bar")
	}
	if len(call.Args) != 2 {
		t.Errorf("call has %d args, want 2", len(call.Args))
	}
}

func TestUnaryMinusDesugarsToSubtraction(t *testing.T) {
	fn := parseOne(t, `fn f(x: int) -> int { return -x }`)
	body := fn.Body.(*hlast.Block)
	sub, ok := body.Exprs[0].(*hlast.Return).Value.(*hlast.BinaryOp)
	if !ok || sub.Op != hlast.Sub {
		t.Fatalf("return value is %T, want subtraction from zero", body.Exprs[0].(*hlast.Return).Value)
	}
	zero, ok := sub.Left.(*hlast.Literal)
	if !ok || zero.Int != 0 {
		t.Fatalf("left operand should be the zero literal")
	}
}

func TestMultipleFunctions(t *testing.T) {
	p := testParser(`fn a() -> int { return 1 }
fn b() -> int { return 2 }`)
	prog := p.ParseProgram()
	checkParserErrors(t, p)
	if len(prog.Functions) != 2 {
		t.Fatalf("program has %d functions, want 2", len(prog.Functions))
	}
	if prog.Functions[0].Name != "a" || prog.Functions[1].Name != "b" {
		t.Errorf("function names = %q, %q", prog.Functions[0].Name, prog.Functions[1].Name)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing return type", `fn f() { return 1 }`},
		{"top level expression", `1 + 2`},
		{"missing close paren", `fn f(x: int -> int { return x }`},
		{"missing type after colon", `fn f() -> int { u: = 1; return u }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParser(tt.input)
			p.ParseProgram()
			if len(p.Errors()) == 0 {
				t.Errorf("expected parse errors for %q, got none", tt.input)
			}
		})
	}
}

func TestLookupFindsFunctions(t *testing.T) {
	p := testParser(`fn a() -> int { return 1 }`)
	prog := p.ParseProgram()
	checkParserErrors(t, p)
	if prog.Lookup("a") == nil {
		t.Errorf("Lookup(a) returned nil")
	}
	if prog.Lookup("missing") != nil {
		t.Errorf("Lookup(missing) should return nil")
	}
}
