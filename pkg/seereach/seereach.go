// Package seereach is the public entry point for the symbolic
// execution engine: ParseProgram turns source text into a program, and
// Execute enumerates the feasible paths of an entry function under
// symbolic arguments. A context.Context threads through to the SMT
// bridge so a host can bound total solver wall time.
package seereach

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/see-reach/seereach/internal/errors"
	"github.com/see-reach/seereach/internal/evalresult"
	"github.com/see-reach/seereach/internal/executor"
	"github.com/see-reach/seereach/internal/hlast"
	"github.com/see-reach/seereach/internal/lexer"
	"github.com/see-reach/seereach/internal/parser"
	"github.com/see-reach/seereach/internal/smt"
	"github.com/see-reach/seereach/internal/symexpr"
)

// Option configures an Execute call.
type Option func(*options)

type options struct {
	args          map[string]symexpr.SymExpr
	solver        smt.Solver
	solverBinary  string
	solverTimeout time.Duration
}

// WithSymbolicArgs supplies an explicit symbolic term per parameter
// name. Parameters with no entry fall back to a synthesized fresh
// SVariable named after the parameter.
func WithSymbolicArgs(args map[string]symexpr.SymExpr) Option {
	return func(o *options) { o.args = args }
}

// WithSolver overrides the default solver wiring with an explicit
// smt.Solver, useful for tests that want a deterministic stub.
func WithSolver(s smt.Solver) Option {
	return func(o *options) { o.solver = s }
}

// WithSolverBinary configures the external SMT-LIB2 solver executable
// name (default "z3") and per-query timeout used when no explicit
// Solver is supplied via WithSolver.
func WithSolverBinary(binary string, timeout time.Duration) Option {
	return func(o *options) { o.solverBinary = binary; o.solverTimeout = timeout }
}

// ParseProgram lexes and parses source into an hlast.Program, returning
// every lex and parse error found, formatted with source context (no
// partial program is returned on failure).
func ParseProgram(source string) (*hlast.Program, error) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	var compileErrs []*errors.CompilerError
	for _, le := range l.Errors() {
		compileErrs = append(compileErrs, errors.NewCompilerError(le.Pos, le.Message, source, ""))
	}
	for _, pe := range p.Errors() {
		compileErrs = append(compileErrs, errors.NewCompilerError(pe.Pos, pe.Message, source, ""))
	}
	if len(compileErrs) > 0 {
		return nil, fmt.Errorf("%s", errors.FormatErrorsWithContext(compileErrs, 1, false))
	}
	return program, nil
}

// Execute runs function_symbolic_execution(program, entry, args): it
// binds one fresh or supplied symbolic value per parameter of entry,
// then symbolically executes the resulting call, returning one
// evalresult.Result per feasible path.
func Execute(ctx context.Context, program *hlast.Program, entry string, opts ...Option) ([]*evalresult.Result, error) {
	o := &options{solverBinary: "z3", solverTimeout: 2 * time.Second}
	for _, opt := range opts {
		opt(o)
	}

	fn := program.Lookup(entry)
	if fn == nil {
		return nil, fmt.Errorf("seereach: no entry function %q in program", entry)
	}

	solver := o.solver
	if solver == nil {
		solver = smt.NewProcessSolver(o.solverBinary, o.solverTimeout)
	}
	ex := executor.New(program, solver)

	root := executor.NewContext()
	root.Stack = errors.NewStackTrace()

	args := make([]hlast.Expression, len(fn.Params))
	for i, param := range fn.Params {
		if v, ok := o.args[param.Name]; ok {
			// A supplied argument can be any symbolic term, not just a
			// fresh variable; route it through the symbol table so the
			// call site stays a plain variable reference.
			root.Bind(param.Name, []*evalresult.Result{evalresult.New(v)})
			args[i] = &hlast.Variable{Name: param.Name}
			continue
		}
		args[i] = &hlast.SymbolicVariable{Name: param.Name, Type: param.Type}
	}

	call := &hlast.FunctionCall{Name: entry, Args: args}
	results, err := ex.Execute(ctx, call, root)
	if err != nil {
		return nil, err
	}
	// Stamp each finalized path with its own PathID: results built by
	// operators, tuples and variable reads do not carry a distinct one.
	for _, r := range results {
		r.PathID = uuid.New()
	}
	return results, nil
}
