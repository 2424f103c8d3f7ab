package typedast

import (
	"testing"

	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/chenjianxin/gleam/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExprNodesExposeLocationAndType(t *testing.T) {
	loc := ast.SrcSpan{Start: 1, End: 4}
	var e Expr = &Int{base: base{Location: loc, Type: types.Int()}, Value: "1"}
	assert.Equal(t, loc, e.Position())
	assert.Equal(t, types.Int(), e.Typ())
}

func TestCallNodeHoldsPositionalArgs(t *testing.T) {
	fn := &Var{base: base{Type: types.Int()}, Name: "f"}
	arg := &Int{base: base{Type: types.Int()}, Value: "1"}
	call := &Call{
		base: base{Type: types.Int()},
		Fun:  fn,
		Args: []Expr{arg},
	}
	assert.Len(t, call.Args, 1)
	assert.Equal(t, types.Int(), call.Typ())
}

func TestPatternConstructorBindsArgs(t *testing.T) {
	loc := ast.SrcSpan{}
	inner := &PatternVar{basePattern: basePattern{Location: loc, Type: types.Int()}, Name: "x"}
	pc := &PatternConstructor{
		basePattern: basePattern{Location: loc, Type: &types.App{Name: "Box"}},
		Name:        "Box",
		Args:        []Pattern{inner},
	}
	assert.Equal(t, "Box", pc.Name)
	require := assert.New(t)
	require.Len(pc.Args, 1)
}

func TestModuleOmitsBuiltinTypes(t *testing.T) {
	mod := &Module{
		Name:  []string{"demo"},
		Types: map[string]*types.TypeConstructor{"Box": {Arity: 1, Public: true}},
	}
	_, hasBuiltin := mod.Types["Int"]
	assert.False(t, hasBuiltin, "built-in type constructors must not be copied into Module.Types")
	_, hasBox := mod.Types["Box"]
	assert.True(t, hasBox)
}
