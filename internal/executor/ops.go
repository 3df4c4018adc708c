package executor

import (
	"fmt"

	"github.com/see-reach/seereach/internal/errors"
	"github.com/see-reach/seereach/internal/hlast"
	"github.com/see-reach/seereach/internal/symexpr"
	"github.com/see-reach/seereach/internal/token"
)

// isConcreteLeaf reports whether e is one of the three concrete Sym-AST
// leaves (SReal, SInteger, SBoolean) rather than a variable or compound
// term still carrying free variables.
func isConcreteLeaf(e symexpr.SymExpr) bool {
	switch e.(type) {
	case symexpr.SReal, symexpr.SInteger, symexpr.SBoolean:
		return true
	default:
		return false
	}
}

func (ex *Executor) typeMismatch(op hlast.Operator, left, right symexpr.SymExpr, pos token.Position, stack errors.StackTrace) error {
	return errors.NewExecutionError("TypeMismatch",
		fmt.Sprintf("operator %s not defined for operands %s and %s", op, left, right),
		pos, stack)
}

// foldBinary implements the BinaryOp concrete-fold rule: if both
// operands are concrete leaves of matching type, fold to the
// corresponding concrete leaf (arithmetic preserves the left operand's
// type tag; comparisons and logical operators always yield SBoolean).
// Otherwise it builds the symbolic SBinaryOp unchanged.
func (ex *Executor) foldBinary(op hlast.Operator, left, right symexpr.SymExpr, pos token.Position, stack errors.StackTrace) (symexpr.SymExpr, error) {
	if !isConcreteLeaf(left) || !isConcreteLeaf(right) {
		return symexpr.SBinaryOp{Op: op, Left: left, Right: right}, nil
	}

	switch l := left.(type) {
	case symexpr.SReal:
		r, ok := right.(symexpr.SReal)
		if !ok {
			return nil, ex.typeMismatch(op, left, right, pos, stack)
		}
		return ex.foldReal(op, l.Value, r.Value, pos, stack)
	case symexpr.SInteger:
		r, ok := right.(symexpr.SInteger)
		if !ok {
			return nil, ex.typeMismatch(op, left, right, pos, stack)
		}
		return ex.foldInt(op, l.Value, r.Value, pos, stack)
	case symexpr.SBoolean:
		r, ok := right.(symexpr.SBoolean)
		if !ok {
			return nil, ex.typeMismatch(op, left, right, pos, stack)
		}
		return ex.foldBool(op, l.Value, r.Value, pos, stack)
	default:
		return nil, ex.typeMismatch(op, left, right, pos, stack)
	}
}

func (ex *Executor) foldReal(op hlast.Operator, l, r float64, pos token.Position, stack errors.StackTrace) (symexpr.SymExpr, error) {
	switch op {
	case hlast.Add:
		return symexpr.SReal{Value: l + r}, nil
	case hlast.Sub:
		return symexpr.SReal{Value: l - r}, nil
	case hlast.Mul:
		return symexpr.SReal{Value: l * r}, nil
	case hlast.Div:
		if r == 0 {
			return nil, errors.NewExecutionError("DivisionByZero", "division by zero", pos, stack)
		}
		return symexpr.SReal{Value: l / r}, nil
	case hlast.Less:
		return symexpr.SBoolean{Value: l < r}, nil
	case hlast.LessEqual:
		return symexpr.SBoolean{Value: l <= r}, nil
	case hlast.Greater:
		return symexpr.SBoolean{Value: l > r}, nil
	case hlast.GreaterEqual:
		return symexpr.SBoolean{Value: l >= r}, nil
	case hlast.Equal:
		return symexpr.SBoolean{Value: l == r}, nil
	default:
		return nil, errors.NewExecutionError("TypeMismatch",
			fmt.Sprintf("operator %s not defined for real operands", op), pos, stack)
	}
}

func (ex *Executor) foldInt(op hlast.Operator, l, r int64, pos token.Position, stack errors.StackTrace) (symexpr.SymExpr, error) {
	switch op {
	case hlast.Add:
		return symexpr.SInteger{Value: l + r}, nil
	case hlast.Sub:
		return symexpr.SInteger{Value: l - r}, nil
	case hlast.Mul:
		return symexpr.SInteger{Value: l * r}, nil
	case hlast.Div:
		if r == 0 {
			return nil, errors.NewExecutionError("DivisionByZero", "division by zero", pos, stack)
		}
		return symexpr.SInteger{Value: l / r}, nil
	case hlast.Less:
		return symexpr.SBoolean{Value: l < r}, nil
	case hlast.LessEqual:
		return symexpr.SBoolean{Value: l <= r}, nil
	case hlast.Greater:
		return symexpr.SBoolean{Value: l > r}, nil
	case hlast.GreaterEqual:
		return symexpr.SBoolean{Value: l >= r}, nil
	case hlast.Equal:
		return symexpr.SBoolean{Value: l == r}, nil
	default:
		return nil, errors.NewExecutionError("TypeMismatch",
			fmt.Sprintf("operator %s not defined for integer operands", op), pos, stack)
	}
}

func (ex *Executor) foldBool(op hlast.Operator, l, r bool, pos token.Position, stack errors.StackTrace) (symexpr.SymExpr, error) {
	switch op {
	case hlast.And:
		return symexpr.SBoolean{Value: l && r}, nil
	case hlast.Or:
		return symexpr.SBoolean{Value: l || r}, nil
	case hlast.Equal:
		return symexpr.SBoolean{Value: l == r}, nil
	default:
		return nil, errors.NewExecutionError("TypeMismatch",
			fmt.Sprintf("operator %s not defined for boolean operands", op), pos, stack)
	}
}

// foldUnary implements the UnaryOp rule: Not folds only when the
// operand is a concrete SBoolean; Sin is always left symbolic.
func (ex *Executor) foldUnary(op hlast.Operator, operand symexpr.SymExpr, pos token.Position, stack errors.StackTrace) (symexpr.SymExpr, error) {
	if op == hlast.Not {
		if b, ok := operand.(symexpr.SBoolean); ok {
			return symexpr.SBoolean{Value: !b.Value}, nil
		}
	}
	return symexpr.SUnaryOp{Op: op, Operand: operand}, nil
}
