// Package evalresult defines Result, the value every executor
// operation returns: a symbolic value paired with the path condition
// under which it holds. Flatten is idempotent. Each Result carries a
// PathID (backed by github.com/google/uuid); seereach.Execute stamps
// every feasible path it returns with a fresh one, so those paths can
// be told apart even when two evaluate to identical values and
// conditions.
package evalresult

import (
	"strings"

	"github.com/google/uuid"

	"github.com/see-reach/seereach/internal/symexpr"
)

// Result is one feasible execution path's outcome: the symbolic value
// computed, the conjunction of branch conditions taken to reach it, and
// whether the path ended via an explicit return.
type Result struct {
	Value         symexpr.SymExpr
	PathCondition []symexpr.SymExpr
	IsReturn      bool
	PathID        uuid.UUID
}

// New creates a Result for a freshly computed value with no path
// conditions yet accumulated, stamped with a new PathID.
func New(value symexpr.SymExpr) *Result {
	return &Result{Value: value, PathID: uuid.New()}
}

// NewWithPath creates a Result carrying an explicit path condition.
func NewWithPath(value symexpr.SymExpr, cond []symexpr.SymExpr) *Result {
	return &Result{Value: value, PathCondition: cond, PathID: uuid.New()}
}

// AsReturn returns a copy of r marked as having ended via an explicit
// return.
func (r *Result) AsReturn() *Result {
	return &Result{Value: r.Value, PathCondition: r.PathCondition, IsReturn: true, PathID: r.PathID}
}

// AsContinue returns a copy of r with its return marker cleared, used
// at function-call boundaries to stop a callee's return from
// propagating into its caller's block.
func (r *Result) AsContinue() *Result {
	return &Result{Value: r.Value, PathCondition: r.PathCondition, IsReturn: false, PathID: r.PathID}
}

// Flatten returns a copy of r with its path condition defensively
// copied. The executor builds each extended path condition as a new
// slice as it combines sub-results, rather than nesting Results
// inside one another, so a
// Result is already flat by construction;
// Flatten(Flatten(r)) == Flatten(r).
func (r *Result) Flatten() *Result {
	cond := append([]symexpr.SymExpr(nil), r.PathCondition...)
	return &Result{Value: r.Value, PathCondition: cond, IsReturn: r.IsReturn, PathID: r.PathID}
}

// PathString renders the path condition as the conjuncts joined by
// " && ", or "<NONE>" if there are none.
func (r *Result) PathString() string {
	if len(r.PathCondition) == 0 {
		return "<NONE>"
	}
	parts := make([]string, len(r.PathCondition))
	for i, c := range r.PathCondition {
		parts[i] = c.String()
	}
	return strings.Join(parts, " && ")
}
