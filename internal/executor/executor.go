package executor

import (
	"context"
	"fmt"

	"github.com/see-reach/seereach/internal/errors"
	"github.com/see-reach/seereach/internal/evalresult"
	"github.com/see-reach/seereach/internal/hlast"
	"github.com/see-reach/seereach/internal/smt"
	"github.com/see-reach/seereach/internal/symexpr"
)

// Executor symbolically executes a Program against a configured
// Solver. It holds no mutable state of its own; all per-run state lives
// in the Contexts threaded through Execute.
type Executor struct {
	Program *hlast.Program
	Solver  smt.Solver
}

// New creates an Executor over program, pruning infeasible branches
// with solver. A nil solver is valid: every fork is then retained,
// matching the SolverTimeout/Unknown degrade-to-sat policy.
func New(program *hlast.Program, solver smt.Solver) *Executor {
	return &Executor{Program: program, Solver: solver}
}

// Execute recursively reduces expr under ec, pure with respect to the
// AST and program but mutating ec.SymbolTable for assignments. It
// returns one result per feasible path, or a fatal ExecutionError that
// aborts the whole call.
func (ex *Executor) Execute(ctx context.Context, expr hlast.Expression, ec *Context) ([]*evalresult.Result, error) {
	switch e := expr.(type) {
	case *hlast.Literal:
		return ex.evalLiteral(e, ec)
	case *hlast.Variable:
		return ex.evalVariable(e, ec)
	case *hlast.SymbolicVariable:
		sv := symexpr.SVariable{Name: e.Name, Type: e.Type}
		return []*evalresult.Result{evalresult.NewWithPath(sv, cloneCond(ec.PathCondition))}, nil
	case *hlast.Assignment:
		return ex.evalAssignment(ctx, e, ec)
	case *hlast.Block:
		return ex.evalBlock(ctx, e, ec)
	case *hlast.Conditional:
		return ex.evalConditional(ctx, e, ec)
	case *hlast.FunctionCall:
		return ex.evalFunctionCall(ctx, e, ec)
	case *hlast.BinaryOp:
		return ex.evalBinaryOp(ctx, e, ec)
	case *hlast.UnaryOp:
		return ex.evalUnaryOp(ctx, e, ec)
	case *hlast.Return:
		return ex.evalReturn(ctx, e, ec)
	case *hlast.TupleExpression:
		return ex.evalTuple(ctx, e, ec)
	default:
		return nil, errors.NewExecutionError("UnknownExpression",
			fmt.Sprintf("no evaluation rule for %T", expr), expr.Pos(), ec.Stack)
	}
}

func (ex *Executor) evalLiteral(lit *hlast.Literal, ec *Context) ([]*evalresult.Result, error) {
	var value symexpr.SymExpr
	switch lit.Type {
	case hlast.Real:
		value = symexpr.SReal{Value: lit.Real}
	case hlast.Integer:
		value = symexpr.SInteger{Value: lit.Int}
	case hlast.Boolean:
		value = symexpr.SBoolean{Value: lit.Bool}
	default:
		return nil, errors.NewExecutionError("TypeMismatch",
			fmt.Sprintf("literal has unsupported type %s", lit.Type), lit.Pos(), ec.Stack)
	}
	return []*evalresult.Result{evalresult.NewWithPath(value, cloneCond(ec.PathCondition))}, nil
}

func (ex *Executor) evalVariable(v *hlast.Variable, ec *Context) ([]*evalresult.Result, error) {
	entries, ok := ec.Lookup(v.Name)
	if !ok {
		return nil, errors.NewExecutionError("UnknownVariable",
			fmt.Sprintf("undefined variable %q", v.Name), v.Pos(), ec.Stack)
	}
	out := make([]*evalresult.Result, 0, len(entries))
	for _, entry := range entries {
		out = append(out, &evalresult.Result{
			Value:         entry.Value,
			PathCondition: concatConditions(ec.PathCondition, entry.PathCondition),
			IsReturn:      false,
			PathID:        entry.PathID,
		})
	}
	return out, nil
}

func (ex *Executor) evalAssignment(ctx context.Context, a *hlast.Assignment, ec *Context) ([]*evalresult.Result, error) {
	results, err := ex.Execute(ctx, a.Value, ec)
	if err != nil {
		return nil, err
	}
	ec.Bind(a.Name, deltaEntries(results, ec.PathCondition))
	return results, nil
}

// deltaEntries rewrites results as symbol-table entries: each entry
// records only the conjuncts its producing path added beyond the
// binder's own condition. A later read re-extends the entry with the
// reader's condition, so storing the full condition here would repeat
// the binder's conjuncts on every read.
func deltaEntries(results []*evalresult.Result, prefix []symexpr.SymExpr) []*evalresult.Result {
	entries := make([]*evalresult.Result, len(results))
	for i, r := range results {
		entries[i] = &evalresult.Result{
			Value:         r.Value,
			PathCondition: conditionDelta(r.PathCondition, prefix),
			PathID:        r.PathID,
		}
	}
	return entries
}

func (ex *Executor) evalBlock(ctx context.Context, b *hlast.Block, ec *Context) ([]*evalresult.Result, error) {
	if len(b.Exprs) == 0 {
		return []*evalresult.Result{}, nil
	}
	var last []*evalresult.Result
	for _, expr := range b.Exprs {
		results, err := ex.Execute(ctx, expr, ec)
		if err != nil {
			return nil, err
		}
		last = results
		if hasReturn(results) {
			return results, nil
		}
	}
	return last, nil
}

func hasReturn(results []*evalresult.Result) bool {
	for _, r := range results {
		if r.IsReturn {
			return true
		}
	}
	return false
}

func (ex *Executor) evalConditional(ctx context.Context, c *hlast.Conditional, ec *Context) ([]*evalresult.Result, error) {
	condResults, err := ex.Execute(ctx, c.Cond, ec)
	if err != nil {
		return nil, err
	}

	var out []*evalresult.Result
	for _, cr := range condResults {
		if b, ok := cr.Value.(symexpr.SBoolean); ok {
			branch := c.Then
			if !b.Value {
				branch = c.Otherwise
			}
			child := ec.WithPathCondition(cloneCond(cr.PathCondition))
			results, err := ex.Execute(ctx, branch, child)
			if err != nil {
				return nil, err
			}
			out = append(out, results...)
			continue
		}

		trueResults, falseResults, err := ex.forkConditional(ctx, c, ec, cr)
		if err != nil {
			return nil, err
		}
		for _, r := range trueResults {
			keep, err := ex.retain(ctx, r)
			if err != nil {
				return nil, err
			}
			if keep {
				out = append(out, r)
			}
		}
		for _, r := range falseResults {
			keep, err := ex.retain(ctx, r)
			if err != nil {
				return nil, err
			}
			if keep {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (ex *Executor) forkConditional(ctx context.Context, c *hlast.Conditional, ec *Context, cr *evalresult.Result) ([]*evalresult.Result, []*evalresult.Result, error) {
	trueChild := ec.WithPathCondition(append(cloneCond(cr.PathCondition), cr.Value))
	trueResults, err := ex.Execute(ctx, c.Then, trueChild)
	if err != nil {
		return nil, nil, err
	}

	notCond := symexpr.SUnaryOp{Op: hlast.Not, Operand: cr.Value}
	falseChild := ec.WithPathCondition(append(cloneCond(cr.PathCondition), notCond))
	falseResults, err := ex.Execute(ctx, c.Otherwise, falseChild)
	if err != nil {
		return nil, nil, err
	}
	return trueResults, falseResults, nil
}

// retain asks the configured Solver whether r's path condition is
// feasible; a nil Solver or an Unknown verdict both retain the path.
func (ex *Executor) retain(ctx context.Context, r *evalresult.Result) (bool, error) {
	if ex.Solver == nil {
		return true, nil
	}
	status, err := ex.Solver.CheckSat(ctx, r.PathCondition)
	if err != nil {
		return true, nil
	}
	return smt.IsSat(status), nil
}

func (ex *Executor) evalFunctionCall(ctx context.Context, c *hlast.FunctionCall, ec *Context) ([]*evalresult.Result, error) {
	fn := ex.Program.Lookup(c.Name)
	if fn == nil {
		return nil, errors.NewExecutionError("UnknownFunction",
			fmt.Sprintf("undefined function %q", c.Name), c.Pos(), ec.Stack)
	}
	if len(c.Args) != len(fn.Params) {
		return nil, errors.NewExecutionError("TypeMismatch",
			fmt.Sprintf("function %q expects %d argument(s), got %d", c.Name, len(fn.Params), len(c.Args)),
			c.Pos(), ec.Stack)
	}

	callPos := c.Pos()
	calleeStack := append(append(errors.StackTrace{}, ec.Stack...), errors.NewStackFrame(c.Name, "", &callPos))

	callee := &Context{
		SymbolTable:   map[string][]*evalresult.Result{},
		PathCondition: cloneCond(ec.PathCondition),
		Stack:         calleeStack,
	}

	for i, param := range fn.Params {
		argResults, err := ex.Execute(ctx, c.Args[i], ec)
		if err != nil {
			return nil, err
		}
		callee.Bind(param.Name, deltaEntries(argResults, ec.PathCondition))
	}

	bodyResults, err := ex.Execute(ctx, fn.Body, callee)
	if err != nil {
		return nil, err
	}

	out := make([]*evalresult.Result, 0, len(bodyResults))
	for _, r := range bodyResults {
		if r.IsReturn {
			out = append(out, r.Flatten().AsContinue())
		}
	}
	return out, nil
}

func (ex *Executor) evalBinaryOp(ctx context.Context, b *hlast.BinaryOp, ec *Context) ([]*evalresult.Result, error) {
	leftResults, err := ex.Execute(ctx, b.Left, ec)
	if err != nil {
		return nil, err
	}
	rightResults, err := ex.Execute(ctx, b.Right, ec)
	if err != nil {
		return nil, err
	}

	var out []*evalresult.Result
	for _, l := range leftResults {
		for _, r := range rightResults {
			value, err := ex.foldBinary(b.Op, l.Value, r.Value, b.Pos(), ec.Stack)
			if err != nil {
				return nil, err
			}
			out = append(out, &evalresult.Result{
				Value:         value,
				PathCondition: concatConditions(l.PathCondition, conditionDelta(r.PathCondition, ec.PathCondition)),
				IsReturn:      l.IsReturn || r.IsReturn,
			})
		}
	}
	return out, nil
}

func (ex *Executor) evalUnaryOp(ctx context.Context, u *hlast.UnaryOp, ec *Context) ([]*evalresult.Result, error) {
	operandResults, err := ex.Execute(ctx, u.Operand, ec)
	if err != nil {
		return nil, err
	}
	out := make([]*evalresult.Result, 0, len(operandResults))
	for _, o := range operandResults {
		value, err := ex.foldUnary(u.Op, o.Value, u.Pos(), ec.Stack)
		if err != nil {
			return nil, err
		}
		out = append(out, &evalresult.Result{Value: value, PathCondition: o.PathCondition, IsReturn: o.IsReturn})
	}
	return out, nil
}

func (ex *Executor) evalReturn(ctx context.Context, r *hlast.Return, ec *Context) ([]*evalresult.Result, error) {
	results, err := ex.Execute(ctx, r.Value, ec)
	if err != nil {
		return nil, err
	}
	out := make([]*evalresult.Result, 0, len(results))
	for _, v := range results {
		out = append(out, v.AsReturn())
	}
	return out, nil
}

func (ex *Executor) evalTuple(ctx context.Context, t *hlast.TupleExpression, ec *Context) ([]*evalresult.Result, error) {
	if len(t.Elements) == 0 {
		return []*evalresult.Result{evalresult.NewWithPath(symexpr.STuple{}, cloneCond(ec.PathCondition))}, nil
	}

	elementResults := make([][]*evalresult.Result, len(t.Elements))
	for i, elem := range t.Elements {
		results, err := ex.Execute(ctx, elem, ec)
		if err != nil {
			return nil, err
		}
		elementResults[i] = results
	}

	combos := [][]*evalresult.Result{{}}
	for _, results := range elementResults {
		var next [][]*evalresult.Result
		for _, combo := range combos {
			for _, r := range results {
				extended := append(append([]*evalresult.Result(nil), combo...), r)
				next = append(next, extended)
			}
		}
		combos = next
	}

	out := make([]*evalresult.Result, 0, len(combos))
	for _, combo := range combos {
		values := make([]symexpr.SymExpr, len(combo))
		var cond []symexpr.SymExpr
		isReturn := false
		for i, r := range combo {
			values[i] = r.Value
			if i == 0 {
				cond = concatConditions(cond, r.PathCondition)
			} else {
				cond = concatConditions(cond, conditionDelta(r.PathCondition, ec.PathCondition))
			}
			isReturn = isReturn || r.IsReturn
		}
		out = append(out, &evalresult.Result{Value: symexpr.STuple{Elements: values}, PathCondition: cond, IsReturn: isReturn})
	}
	return out, nil
}

func cloneCond(cond []symexpr.SymExpr) []symexpr.SymExpr {
	return append([]symexpr.SymExpr(nil), cond...)
}
