package evalresult

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/see-reach/seereach/internal/hlast"
	"github.com/see-reach/seereach/internal/symexpr"
)

func boolTerm(name string) symexpr.SymExpr {
	return symexpr.SBinaryOp{
		Op:    hlast.Less,
		Left:  symexpr.SVariable{Name: name, Type: hlast.Integer},
		Right: symexpr.SInteger{Value: 0},
	}
}

func TestFlattenIdempotent(t *testing.T) {
	r := NewWithPath(symexpr.SInteger{Value: 1}, []symexpr.SymExpr{boolTerm("x"), boolTerm("y")})

	once := r.Flatten()
	twice := once.Flatten()

	require.Equal(t, once.Value, twice.Value)
	require.Equal(t, once.PathCondition, twice.PathCondition)
	require.Equal(t, once.IsReturn, twice.IsReturn)
	require.Equal(t, r.PathID, twice.PathID)
}

func TestFlattenOnFlatIsIdentity(t *testing.T) {
	r := NewWithPath(symexpr.SReal{Value: 2.5}, []symexpr.SymExpr{boolTerm("x")})
	flat := r.Flatten()
	require.Equal(t, r.Value, flat.Value)
	require.Equal(t, r.PathCondition, flat.PathCondition)
}

func TestFlattenCopiesCondition(t *testing.T) {
	cond := []symexpr.SymExpr{boolTerm("x")}
	r := NewWithPath(symexpr.SInteger{Value: 1}, cond)
	flat := r.Flatten()

	cond[0] = boolTerm("mutated")
	require.Equal(t, boolTerm("x"), flat.PathCondition[0], "flattened condition must not alias the source slice")
}

func TestReturnMarking(t *testing.T) {
	r := New(symexpr.SBoolean{Value: true})
	require.False(t, r.IsReturn)

	marked := r.AsReturn()
	require.True(t, marked.IsReturn)
	require.False(t, r.IsReturn)

	cleared := marked.AsContinue()
	require.False(t, cleared.IsReturn)
	require.Equal(t, marked.Value, cleared.Value)
	require.Equal(t, marked.PathID, cleared.PathID)
}

func TestPathString(t *testing.T) {
	empty := New(symexpr.SInteger{Value: 1})
	require.Equal(t, "<NONE>", empty.PathString())

	r := NewWithPath(symexpr.SInteger{Value: 1}, []symexpr.SymExpr{boolTerm("x"), boolTerm("y")})
	require.Equal(t, "(x < 0) && (y < 0)", r.PathString())
}

func TestPathIDsDistinct(t *testing.T) {
	a := New(symexpr.SInteger{Value: 1})
	b := New(symexpr.SInteger{Value: 1})
	require.NotEqual(t, a.PathID, b.PathID)
}
