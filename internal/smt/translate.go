package smt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/see-reach/seereach/internal/hlast"
	"github.com/see-reach/seereach/internal/symexpr"
)

// sortName maps a declared hlast.Type to its SMT-LIB2 sort name.
func sortName(t hlast.Type) (string, error) {
	switch t {
	case hlast.Real:
		return "Real", nil
	case hlast.Integer:
		return "Int", nil
	case hlast.Boolean:
		return "Bool", nil
	default:
		return "", ErrTupleInCondition
	}
}

// Translate converts a path condition (a conjunction of boolean
// symbolic terms) into an SMT-LIB2 script: one declare-const per
// distinct free variable, an assert per conjunct, and a trailing
// (check-sat). Translation is structural; every operator maps
// one-to-one onto a solver constructor.
func Translate(condition []symexpr.SymExpr) (string, error) {
	vars := map[string]hlast.Type{}
	var order []string
	for _, c := range condition {
		if err := collectVariables(c, vars, &order); err != nil {
			return "", err
		}
	}

	var sb strings.Builder
	for _, name := range order {
		sort, err := sortName(vars[name])
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "(declare-const %s %s)\n", name, sort)
	}
	for _, c := range condition {
		term, err := translateTerm(c)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "(assert %s)\n", term)
	}
	sb.WriteString("(check-sat)\n")
	return sb.String(), nil
}

func collectVariables(e symexpr.SymExpr, vars map[string]hlast.Type, order *[]string) error {
	switch v := e.(type) {
	case symexpr.SVariable:
		if _, ok := vars[v.Name]; !ok {
			vars[v.Name] = v.Type
			*order = append(*order, v.Name)
		}
		return nil
	case symexpr.SBinaryOp:
		if err := collectVariables(v.Left, vars, order); err != nil {
			return err
		}
		return collectVariables(v.Right, vars, order)
	case symexpr.SUnaryOp:
		return collectVariables(v.Operand, vars, order)
	case symexpr.STuple:
		return ErrTupleInCondition
	default:
		return nil
	}
}

var binaryConstructor = map[hlast.Operator]string{
	hlast.Add: "+", hlast.Sub: "-", hlast.Mul: "*", hlast.Div: "/",
	hlast.Greater: ">", hlast.Less: "<", hlast.GreaterEqual: ">=", hlast.LessEqual: "<=",
	hlast.Equal: "=", hlast.And: "and", hlast.Or: "or",
}

func translateTerm(e symexpr.SymExpr) (string, error) {
	switch v := e.(type) {
	case symexpr.SReal:
		return strconv.FormatFloat(v.Value, 'f', -1, 64), nil
	case symexpr.SInteger:
		return strconv.FormatInt(v.Value, 10), nil
	case symexpr.SBoolean:
		return strconv.FormatBool(v.Value), nil
	case symexpr.SVariable:
		return v.Name, nil
	case symexpr.SBinaryOp:
		ctor, ok := binaryConstructor[v.Op]
		if !ok {
			return "", fmt.Errorf("no SMT-LIB2 constructor for operator %s", v.Op)
		}
		left, err := translateTerm(v.Left)
		if err != nil {
			return "", err
		}
		right, err := translateTerm(v.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s %s)", ctor, left, right), nil
	case symexpr.SUnaryOp:
		inner, err := translateTerm(v.Operand)
		if err != nil {
			return "", err
		}
		if v.Op == hlast.Sin {
			return fmt.Sprintf("(sin %s)", inner), nil
		}
		return fmt.Sprintf("(not %s)", inner), nil
	case symexpr.STuple:
		return "", ErrTupleInCondition
	default:
		return "", fmt.Errorf("unrecognized symbolic term %T", e)
	}
}
