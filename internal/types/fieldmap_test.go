package types

import (
	"testing"

	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func label(s string) *string { return &s }

func argPositional(v any) ast.CallArg[any] {
	return ast.CallArg[any]{Value: v}
}

func argLabelled(l string, v any) ast.CallArg[any] {
	return ast.CallArg[any]{Label: label(l), Value: v}
}

func TestFieldMapReorderAllPositional(t *testing.T) {
	fm := NewFieldMap(3, map[string]int{"a": 0, "b": 1, "c": 2})
	args := []ast.CallArg[any]{argPositional(1), argPositional(2), argPositional(3)}
	require.NoError(t, fm.Reorder(args, ast.SrcSpan{}))
	assert.Equal(t, []any{1, 2, 3}, values(args))
}

func TestFieldMapReorderMovesLabelledToIndex(t *testing.T) {
	fm := NewFieldMap(2, map[string]int{"x": 0, "y": 1})
	args := []ast.CallArg[any]{argPositional("first"), argLabelled("x", "X")}
	require.NoError(t, fm.Reorder(args, ast.SrcSpan{}))
	assert.Equal(t, "X", args[0].Value, "labelled arg x lands at its FieldMap index 0")
	assert.Equal(t, "first", args[1].Value, "positional arg fills the remaining slot")
}

func TestFieldMapReorderIdempotent(t *testing.T) {
	fm := NewFieldMap(3, map[string]int{"a": 0, "b": 1, "c": 2})
	args := []ast.CallArg[any]{argPositional(1), argLabelled("c", 3), argLabelled("b", 2)}
	require.NoError(t, fm.Reorder(args, ast.SrcSpan{}))
	first := values(args)

	require.NoError(t, fm.Reorder(args, ast.SrcSpan{}))
	assert.Equal(t, first, values(args), "reorder must be idempotent once args are already in positional order")
}

func TestFieldMapReorderArityMismatch(t *testing.T) {
	fm := NewFieldMap(2, map[string]int{"a": 0, "b": 1})
	args := []ast.CallArg[any]{argPositional(1)}
	err := fm.Reorder(args, ast.SrcSpan{})
	require.Error(t, err)
	var ia *IncorrectArity
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, 2, ia.Expected)
	assert.Equal(t, 1, ia.Given)
}

func TestFieldMapReorderUnexpectedLabel(t *testing.T) {
	fm := NewFieldMap(1, map[string]int{"a": 0})
	args := []ast.CallArg[any]{argLabelled("nope", 1)}
	err := fm.Reorder(args, ast.SrcSpan{})
	require.Error(t, err)
	var ula *UnexpectedLabelledArg
	require.ErrorAs(t, err, &ula)
	assert.Equal(t, "nope", ula.Label)
}

func TestFieldMapReorderPositionalAfterLabelled(t *testing.T) {
	fm := NewFieldMap(2, map[string]int{"a": 1, "b": 0})
	args := []ast.CallArg[any]{argLabelled("a", 1), argPositional(2)}
	err := fm.Reorder(args, ast.SrcSpan{})
	require.Error(t, err)
	var pal *PositionalArgumentAfterLabelled
	require.ErrorAs(t, err, &pal)
}

func values(args []ast.CallArg[any]) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a.Value
	}
	return out
}
