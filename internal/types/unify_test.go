package types

import (
	"testing"

	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifySameBuiltin(t *testing.T) {
	err := Unify(ast.SrcSpan{}, Int(), Int())
	require.NoError(t, err)
}

func TestUnifyMismatchedBuiltin(t *testing.T) {
	err := Unify(ast.SrcSpan{Start: 4, End: 7}, Int(), Float())
	require.Error(t, err)
	var cnu *CouldNotUnify
	require.ErrorAs(t, err, &cnu)
	assert.Equal(t, Int(), cnu.Expected)
	assert.Equal(t, Float(), cnu.Given)
	assert.Equal(t, uint32(4), cnu.Location.Start)
}

func TestUnifyBindsUnbound(t *testing.T) {
	env := NewEnv()
	v := env.FreshUnbound()
	require.NoError(t, Unify(ast.SrcSpan{}, v, Int()))
	assert.Equal(t, Int(), Resolve(v))
}

func TestUnifyOccursCheck(t *testing.T) {
	env := NewEnv()
	v := env.FreshUnbound()
	fn := &Fn{Args: []Type{v}, Retrn: Bool()}
	err := Unify(ast.SrcSpan{}, v, fn)
	require.Error(t, err)
	var rt *RecursiveType
	require.ErrorAs(t, err, &rt)
}

func TestUnifyLowersLevels(t *testing.T) {
	env := NewEnv()
	env.EnterLevel()
	env.EnterLevel()
	inner := env.FreshUnbound() // level 2
	env.LeaveLevel()
	outer := env.FreshUnbound() // level 1

	require.NoError(t, Unify(ast.SrcSpan{}, outer, ListOf(inner)))

	innerCell := inner.Cell
	unbound, ok := innerCell.State.(Unbound)
	require.True(t, ok)
	assert.Equal(t, uint32(1), unbound.Level)
}

func TestUnifyFnArityMismatch(t *testing.T) {
	a := &Fn{Args: []Type{Int()}, Retrn: Bool()}
	b := &Fn{Args: []Type{Int(), Int()}, Retrn: Bool()}
	err := Unify(ast.SrcSpan{}, a, b)
	require.Error(t, err)
	var cnu *CouldNotUnify
	require.ErrorAs(t, err, &cnu)
}

func TestUnifyAppArityMismatchIsTypeArity(t *testing.T) {
	a := &App{Name: "Box", Args: []Type{Int()}}
	b := &App{Name: "Box", Args: []Type{Int(), Bool()}}
	err := Unify(ast.SrcSpan{}, a, b)
	require.Error(t, err)
	var ita *IncorrectTypeArity
	require.ErrorAs(t, err, &ita)
	assert.Equal(t, "Box", ita.Name)
}

func TestUnifyTupleArityMismatch(t *testing.T) {
	a := &Tuple{Elems: []Type{Int(), Int()}}
	b := &Tuple{Elems: []Type{Int()}}
	err := Unify(ast.SrcSpan{}, a, b)
	require.Error(t, err)
	var cnu *CouldNotUnify
	require.ErrorAs(t, err, &cnu)
}
