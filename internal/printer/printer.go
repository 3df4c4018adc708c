// Package printer pretty-prints programs back into the surface syntax
// (printing then re-parsing reaches a fixed point) and renders results
// as "Expr:" followed by the symbolic value, then "Path Condition(s):"
// followed by each conjunct on its own line, or "<NONE>" when empty.
// A dedicated tree walk, rather than each node's String(), keeps the
// surface-syntax layout (indentation, parenthesization) controlled in
// one place.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/see-reach/seereach/internal/evalresult"
	"github.com/see-reach/seereach/internal/hlast"
)

// Program renders prog in the surface syntax, one function per
// top-level block.
func Program(prog *hlast.Program) string {
	var sb strings.Builder
	for i, fn := range prog.Functions {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		Function(&sb, fn)
	}
	return sb.String()
}

// Function renders one function definition.
func Function(sb *strings.Builder, fn *hlast.Function) {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
	}
	fmt.Fprintf(sb, "fn %s(%s) -> %s ", fn.Name, strings.Join(params, ", "), fn.ReturnType)
	expression(sb, fn.Body, 0)
}

// Expression renders a single HL-AST expression in the surface syntax.
func Expression(expr hlast.Expression) string {
	var sb strings.Builder
	expression(&sb, expr, 0)
	return sb.String()
}

func expression(sb *strings.Builder, expr hlast.Expression, indent int) {
	switch e := expr.(type) {
	case *hlast.Literal:
		if e.Type == hlast.Real {
			// Keep a decimal point so the literal re-parses as real, not int.
			s := strconv.FormatFloat(e.Real, 'g', -1, 64)
			if !strings.ContainsAny(s, ".eEIN") {
				s += ".0"
			}
			sb.WriteString(s)
			return
		}
		sb.WriteString(e.String())
	case *hlast.Variable:
		sb.WriteString(e.Name)
	case *hlast.SymbolicVariable:
		sb.WriteString(e.Name)
	case *hlast.TypedVariable:
		fmt.Fprintf(sb, "%s: %s", e.Name, e.Type)
	case *hlast.BinaryOp:
		sb.WriteString("(")
		expression(sb, e.Left, indent)
		fmt.Fprintf(sb, " %s ", e.Op)
		expression(sb, e.Right, indent)
		sb.WriteString(")")
	case *hlast.UnaryOp:
		if e.Op == hlast.Sin {
			sb.WriteString("sin(")
			expression(sb, e.Operand, indent)
			sb.WriteString(")")
			return
		}
		sb.WriteString(e.Op.String())
		expression(sb, e.Operand, indent)
	case *hlast.FunctionCall:
		sb.WriteString(e.Name)
		sb.WriteString("(")
		for i, arg := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			expression(sb, arg, indent)
		}
		sb.WriteString(")")
	case *hlast.Conditional:
		sb.WriteString("if ")
		expression(sb, e.Cond, indent)
		sb.WriteString(" ")
		expression(sb, e.Then, indent)
		sb.WriteString(" else ")
		expression(sb, e.Otherwise, indent)
	case *hlast.Block:
		printBlock(sb, e, indent)
	case *hlast.TupleExpression:
		sb.WriteString("(")
		for i, el := range e.Elements {
			if i > 0 {
				sb.WriteString(", ")
			}
			expression(sb, el, indent)
		}
		sb.WriteString(")")
	case *hlast.Assignment:
		fmt.Fprintf(sb, "%s: %s = ", e.Name, e.Type)
		expression(sb, e.Value, indent)
	case *hlast.Return:
		sb.WriteString("return ")
		expression(sb, e.Value, indent)
	default:
		fmt.Fprintf(sb, "<unknown expression %T>", expr)
	}
}

func printBlock(sb *strings.Builder, b *hlast.Block, indent int) {
	sb.WriteString("{\n")
	inner := indent + 1
	for _, stmt := range b.Exprs {
		sb.WriteString(strings.Repeat("  ", inner))
		expression(sb, stmt, inner)
		sb.WriteString(";\n")
	}
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString("}")
}

// EvalResult renders r as the symbolic value under "Expr:", then each
// conjunct of the path condition on its own line under "Path
// Condition(s):", or "<NONE>" when the path condition is empty.
func EvalResult(r *evalresult.Result) string {
	var sb strings.Builder
	sb.WriteString("Expr:\n")
	sb.WriteString("  ")
	sb.WriteString(r.Value.String())
	sb.WriteString("\n")
	sb.WriteString("Path Condition(s):\n")
	if len(r.PathCondition) == 0 {
		sb.WriteString("  <NONE>\n")
	} else {
		for _, c := range r.PathCondition {
			sb.WriteString("  ")
			sb.WriteString(c.String())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// EvalResults renders a whole result set, one EvalResult block per
// path, separated by a blank line.
func EvalResults(results []*evalresult.Result) string {
	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(EvalResult(r))
	}
	return sb.String()
}
