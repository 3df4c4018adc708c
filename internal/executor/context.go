// Package executor implements the recursive, path-forking interpreter
// over the high-level AST: a Context carries a multi-valued symbol
// table and an accumulated path condition, forking at every symbolic
// Conditional and pruning infeasible branches through the smt package.
// Dispatch is a per-variant type switch over the pure, expression-only
// AST.
package executor

import (
	"github.com/see-reach/seereach/internal/errors"
	"github.com/see-reach/seereach/internal/evalresult"
	"github.com/see-reach/seereach/internal/symexpr"
)

// Context is the executor's notion of scope: a symbol table mapping
// each bound name to the full list of EvalResults that could produce
// it (the "multi-valued symbol table" design: an assignment whose
// right-hand side forked keeps every path alive for later reads rather
// than collapsing to one value), an accumulated path condition, and the
// call stack used to report ExecutionErrors with a location trail.
type Context struct {
	SymbolTable   map[string][]*evalresult.Result
	PathCondition []symexpr.SymExpr
	Stack         errors.StackTrace
}

// NewContext creates an empty root Context.
func NewContext() *Context {
	return &Context{SymbolTable: map[string][]*evalresult.Result{}}
}

// Child creates a new Context that starts as a shallow copy of c's
// symbol table and path condition. Each child exclusively owns its own
// copy from that point on; mutating it never affects c.
func (c *Context) Child() *Context {
	table := make(map[string][]*evalresult.Result, len(c.SymbolTable))
	for k, v := range c.SymbolTable {
		table[k] = v
	}
	cond := append([]symexpr.SymExpr(nil), c.PathCondition...)
	return &Context{SymbolTable: table, PathCondition: cond, Stack: c.Stack}
}

// WithPathCondition returns a copy of c whose PathCondition is replaced
// by cond, holding its own shallow copy of c's symbol table.
func (c *Context) WithPathCondition(cond []symexpr.SymExpr) *Context {
	child := c.Child()
	child.PathCondition = cond
	return child
}

// Bind stores results under name, replacing any previous binding. It
// mutates c's own table in place; it must never be called on a table
// shared with another live Context.
func (c *Context) Bind(name string, results []*evalresult.Result) {
	c.SymbolTable[name] = results
}

// Lookup returns the stored results for name and whether any exist.
func (c *Context) Lookup(name string) ([]*evalresult.Result, bool) {
	results, ok := c.SymbolTable[name]
	return results, ok
}

func concatConditions(a, b []symexpr.SymExpr) []symexpr.SymExpr {
	out := make([]symexpr.SymExpr, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// conditionDelta returns the conjuncts of cond beyond prefix. Every
// result produced under a context carries that context's path condition
// as a prefix (conditions only grow along a root-to-leaf traversal), so
// sibling sub-results share the context's conjuncts; delta extraction is
// what keeps combining them from repeating the shared prefix.
func conditionDelta(cond, prefix []symexpr.SymExpr) []symexpr.SymExpr {
	if len(cond) < len(prefix) {
		return append([]symexpr.SymExpr(nil), cond...)
	}
	return append([]symexpr.SymExpr(nil), cond[len(prefix):]...)
}
