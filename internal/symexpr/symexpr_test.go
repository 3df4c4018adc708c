package symexpr

import (
	"testing"

	"github.com/see-reach/seereach/internal/hlast"
)

func TestString(t *testing.T) {
	x := SVariable{Name: "x", Type: hlast.Real}
	tests := []struct {
		name string
		expr SymExpr
		want string
	}{
		{"real", SReal{Value: 2.5}, "2.5"},
		{"real negative", SReal{Value: -1}, "-1"},
		{"int", SInteger{Value: 42}, "42"},
		{"bool", SBoolean{Value: false}, "false"},
		{"variable", x, "x"},
		{"binary", SBinaryOp{Op: hlast.Less, Left: x, Right: SReal{Value: 0}}, "(x < 0)"},
		{"nested binary", SBinaryOp{Op: hlast.And,
			Left:  SBinaryOp{Op: hlast.Less, Left: x, Right: SReal{Value: 0}},
			Right: SBoolean{Value: true}}, "((x < 0) && true)"},
		{"not", SUnaryOp{Op: hlast.Not, Operand: x}, "!x"},
		{"double not", SUnaryOp{Op: hlast.Not, Operand: SUnaryOp{Op: hlast.Not, Operand: x}}, "!!x"},
		{"sin", SUnaryOp{Op: hlast.Sin, Operand: x}, "sin(x)"},
		{"tuple", STuple{Elements: []SymExpr{SInteger{Value: 1}, x}}, "(1, x)"},
		{"empty tuple", STuple{}, "()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContainsSymbolic(t *testing.T) {
	x := SVariable{Name: "x", Type: hlast.Real}
	tests := []struct {
		name string
		expr SymExpr
		want bool
	}{
		{"variable", x, true},
		{"constant", SReal{Value: 1}, false},
		{"binary with variable", SBinaryOp{Op: hlast.Add, Left: SReal{Value: 1}, Right: x}, true},
		{"binary concrete", SBinaryOp{Op: hlast.Add, Left: SReal{Value: 1}, Right: SReal{Value: 2}}, false},
		{"unary with variable", SUnaryOp{Op: hlast.Sin, Operand: x}, true},
		{"tuple with variable", STuple{Elements: []SymExpr{SReal{Value: 1}, x}}, true},
		{"tuple concrete", STuple{Elements: []SymExpr{SReal{Value: 1}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsSymbolic(tt.expr); got != tt.want {
				t.Errorf("ContainsSymbolic() = %t, want %t", got, tt.want)
			}
		})
	}
}
