// Package symexpr defines the symbolic expression algebra: pure
// algebraic terms with no control flow, produced by the executor as it
// walks the high-level AST. Every node is a SymExpr; compound terms
// render themselves with infix operator symbols so path conditions
// read like source expressions.
package symexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/see-reach/seereach/internal/hlast"
)

// SymExpr is a symbolic expression: a pure term over symbolic variables
// and concrete constants, with no side effects and no control flow.
type SymExpr interface {
	fmt.Stringer
	symExprNode()
}

// SReal is a concrete real constant.
type SReal struct{ Value float64 }

func (SReal) symExprNode() {}
func (s SReal) String() string { return strconv.FormatFloat(s.Value, 'g', -1, 64) }

// SInteger is a concrete integer constant.
type SInteger struct{ Value int64 }

func (SInteger) symExprNode() {}
func (s SInteger) String() string { return strconv.FormatInt(s.Value, 10) }

// SBoolean is a concrete boolean constant.
type SBoolean struct{ Value bool }

func (SBoolean) symExprNode() {}
func (s SBoolean) String() string { return strconv.FormatBool(s.Value) }

// SVariable is a free symbolic variable, identified by Name and typed
// by Type. It stands for an unconstrained value of that type.
type SVariable struct {
	Name string
	Type hlast.Type
}

func (SVariable) symExprNode() {}
func (s SVariable) String() string { return s.Name }

// STuple is a fixed-size tuple of symbolic sub-expressions.
type STuple struct {
	Elements []SymExpr
}

func (STuple) symExprNode() {}
func (s STuple) String() string {
	parts := make([]string, len(s.Elements))
	for i, e := range s.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// operatorSymbol maps each binary operator to the infix token it
// renders as.
var operatorSymbol = map[hlast.Operator]string{
	hlast.Add: "+", hlast.Sub: "-", hlast.Mul: "*", hlast.Div: "/",
	hlast.Greater: ">", hlast.Less: "<", hlast.GreaterEqual: ">=", hlast.LessEqual: "<=",
	hlast.Equal: "==", hlast.And: "&&", hlast.Or: "||",
}

// SBinaryOp is a symbolic binary operation. Its String renders as
// "(left OP right)" using the operator's infix symbol.
type SBinaryOp struct {
	Op          hlast.Operator
	Left, Right SymExpr
}

func (SBinaryOp) symExprNode() {}
func (s SBinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", s.Left, operatorSymbol[s.Op], s.Right)
}

// SUnaryOp is a symbolic unary operation: logical negation or sin.
type SUnaryOp struct {
	Op      hlast.Operator
	Operand SymExpr
}

func (SUnaryOp) symExprNode() {}
func (s SUnaryOp) String() string {
	if s.Op == hlast.Sin {
		return fmt.Sprintf("sin(%s)", s.Operand)
	}
	return fmt.Sprintf("!%s", s.Operand)
}

// ContainsSymbolic reports whether e mentions any SVariable, i.e.
// whether it is not reducible to a concrete value.
func ContainsSymbolic(e SymExpr) bool {
	switch v := e.(type) {
	case SVariable:
		return true
	case SBinaryOp:
		return ContainsSymbolic(v.Left) || ContainsSymbolic(v.Right)
	case SUnaryOp:
		return ContainsSymbolic(v.Operand)
	case STuple:
		for _, el := range v.Elements {
			if ContainsSymbolic(el) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
