// Package demo builds small hlast.Programs directly, by hand rather
// than through the parser, as runnable fixtures for the seereach CLI's
// demo subcommand and the executor test suite: a branching sign
// classifier, a saturating controller, and a one-step plant/controller
// reachability program.
package demo

import (
	"github.com/see-reach/seereach/internal/hlast"
)

func tv(name string, t hlast.Type) *hlast.TypedVariable {
	return &hlast.TypedVariable{Name: name, Type: t}
}

func ret(e hlast.Expression) hlast.Expression {
	return &hlast.Return{Value: e}
}

func block(exprs ...hlast.Expression) *hlast.Block {
	return &hlast.Block{Exprs: exprs}
}

func variable(name string) hlast.Expression {
	return &hlast.Variable{Name: name}
}

func intLit(v int64) hlast.Expression {
	return &hlast.Literal{Type: hlast.Integer, Int: v}
}

func realLit(v float64) hlast.Expression {
	return &hlast.Literal{Type: hlast.Real, Real: v}
}

func bin(op hlast.Operator, l, r hlast.Expression) hlast.Expression {
	return &hlast.BinaryOp{Op: op, Left: l, Right: r}
}

func cond(c, then, els hlast.Expression) hlast.Expression {
	return &hlast.Conditional{Cond: c, Then: then, Otherwise: els}
}

// AbsSign builds a three-way sign classifier:
//
//	fn foo(x: int) -> int {
//	    return if x < 0 { -1 } else { if x == 0 { 0 } else { 5 } }
//	}
func AbsSign() *hlast.Program {
	isNeg := bin(hlast.Less, variable("x"), intLit(0))
	isZero := bin(hlast.Equal, variable("x"), intLit(0))
	inner := cond(isZero, block(intLit(0)), block(intLit(5)))
	body := block(ret(cond(isNeg, block(intLit(-1)), block(inner))))

	fn := &hlast.Function{
		Name:       "foo",
		Params:     []*hlast.TypedVariable{tv("x", hlast.Integer)},
		ReturnType: hlast.Integer,
		Body:       body,
	}
	return &hlast.Program{Functions: []*hlast.Function{fn}}
}

// Saturate builds a proportional controller u = -1.0 * x, saturated
// into [-5, 5].
//
//	fn controller(x: real) -> real {
//	    u: real = -1.0 * x;
//	    return if u < -5.0 { -5.0 } else { if u > 5.0 { 5.0 } else { u } }
//	}
func Saturate() *hlast.Program {
	gain := bin(hlast.Mul, realLit(-1.0), variable("x"))
	assignU := &hlast.Assignment{Name: "u", Type: hlast.Real, Value: gain}

	lowSat := bin(hlast.Less, variable("u"), realLit(-5.0))
	highSat := bin(hlast.Greater, variable("u"), realLit(5.0))
	inner := cond(highSat, block(realLit(5.0)), block(variable("u")))
	body := block(assignU, ret(cond(lowSat, block(realLit(-5.0)), block(inner))))

	fn := &hlast.Function{
		Name:       "controller",
		Params:     []*hlast.TypedVariable{tv("x", hlast.Real)},
		ReturnType: hlast.Real,
		Body:       body,
	}
	return &hlast.Program{Functions: []*hlast.Function{fn}}
}

// PlantStep builds a one-step plant/controller reachability program:
// a saturating controller feeds a first-order plant update, and the
// result is the pair (next position, next velocity), exercising tuple
// returns and cartesian combination.
//
//	fn step(pos: real, vel: real) -> tuple {
//	    u: real = -1.0 * pos;
//	    u2: real = if u < -1.0 { -1.0 } else { if u > 1.0 { 1.0 } else { u } };
//	    return (pos + vel, vel + u2)
//	}
func PlantStep() *hlast.Program {
	gain := bin(hlast.Mul, realLit(-1.0), variable("pos"))
	assignU := &hlast.Assignment{Name: "u", Type: hlast.Real, Value: gain}

	lowSat := bin(hlast.Less, variable("u"), realLit(-1.0))
	highSat := bin(hlast.Greater, variable("u"), realLit(1.0))
	satInner := cond(highSat, block(realLit(1.0)), block(variable("u")))
	assignU2 := &hlast.Assignment{Name: "u2", Type: hlast.Real, Value: cond(lowSat, block(realLit(-1.0)), block(satInner))}

	nextPos := bin(hlast.Add, variable("pos"), variable("vel"))
	nextVel := bin(hlast.Add, variable("vel"), variable("u2"))
	body := block(assignU, assignU2, ret(&hlast.TupleExpression{Elements: []hlast.Expression{nextPos, nextVel}}))

	fn := &hlast.Function{
		Name:       "step",
		Params:     []*hlast.TypedVariable{tv("pos", hlast.Real), tv("vel", hlast.Real)},
		ReturnType: hlast.Tuple,
		Body:       body,
	}
	return &hlast.Program{Functions: []*hlast.Function{fn}}
}

// ByName returns the demo program registered under name, and whether
// one exists.
func ByName(name string) (*hlast.Program, bool) {
	switch name {
	case "abs-sign":
		return AbsSign(), true
	case "saturate":
		return Saturate(), true
	case "plant-step":
		return PlantStep(), true
	default:
		return nil, false
	}
}

// Names lists the registered demo program names, in a stable order.
func Names() []string {
	return []string{"abs-sign", "saturate", "plant-step"}
}
