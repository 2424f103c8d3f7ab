package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstantiateSharesGenericID(t *testing.T) {
	env := NewEnv()
	g := Generic{ID: 1}
	scheme := &Fn{
		Args:  []Type{&Var{Cell: &Cell{State: g}}},
		Retrn: &Var{Cell: &Cell{State: g}},
	}

	instantiated := env.Instantiate(scheme)
	fn, ok := instantiated.(*Fn)
	require.True(t, ok)

	argVar, ok := fn.Args[0].(*Var)
	require.True(t, ok)
	retVar, ok := fn.Retrn.(*Var)
	require.True(t, ok)

	assert.Same(t, argVar.Cell, retVar.Cell, "two occurrences of the same Generic id must instantiate to the same fresh Unbound")
}

func TestInstantiateLeavesUnboundAlone(t *testing.T) {
	env := NewEnv()
	v := env.FreshUnbound()
	out := env.Instantiate(v)
	assert.Same(t, v, out)
}

func TestGeneralizeConvertsDeeperUnbound(t *testing.T) {
	env := NewEnv()
	env.EnterLevel() // level 1
	inner := env.FreshUnbound()
	env.LeaveLevel() // back to 0

	generalized := env.Generalize(inner, 0)
	v := generalized.(*Var)
	_, ok := v.Cell.State.(Link)
	require.True(t, ok, "unbound var above the boundary should be linked to a Generic")

	resolved := Resolve(v)
	rv, ok := resolved.(*Var)
	require.True(t, ok)
	_, ok = rv.Cell.State.(Generic)
	assert.True(t, ok)
}

func TestGeneralizeLeavesShallowerUnboundAlone(t *testing.T) {
	env := NewEnv()
	outer := env.FreshUnbound() // level 0
	env.Generalize(outer, 0)
	_, ok := outer.Cell.State.(Unbound)
	assert.True(t, ok, "a var at or below the boundary level must not be generalized")
}

func TestEnvUndoLogRestoresScope(t *testing.T) {
	env := NewEnv()
	env.InsertLocalValue("x", &ValueConstructor{Scheme: Int()})
	mark := env.Mark()

	env.InsertLocalValue("y", &ValueConstructor{Scheme: Bool()})
	_, ok := env.LookupVariable("y")
	require.True(t, ok)

	env.Restore(mark)
	_, ok = env.LookupVariable("y")
	assert.False(t, ok, "y should no longer be visible after restoring to the pre-insert mark")

	_, ok = env.LookupVariable("x")
	assert.True(t, ok, "x was inserted before the mark and must survive the restore")
}

func TestEnvUndoLogRestoresShadowedBinding(t *testing.T) {
	env := NewEnv()
	env.InsertLocalValue("x", &ValueConstructor{Scheme: Int()})
	mark := env.Mark()
	env.InsertLocalValue("x", &ValueConstructor{Scheme: Bool()})

	env.Restore(mark)
	vc, ok := env.LookupVariable("x")
	require.True(t, ok)
	assert.Equal(t, Int(), vc.Scheme)
}

func TestLookupVariablePrefersLocalOverModule(t *testing.T) {
	env := NewEnv()
	env.InsertModuleValue("x", &ValueConstructor{Scheme: Bool()})
	env.InsertLocalValue("x", &ValueConstructor{Scheme: Int()})

	vc, ok := env.LookupVariable("x")
	require.True(t, ok)
	assert.Equal(t, Int(), vc.Scheme)
}

func TestBuiltinTypesRegistered(t *testing.T) {
	env := NewEnv()
	for _, name := range []string{"Int", "Float", "String", "Bool", "Nil", "List", "Result"} {
		_, ok := env.LookupType(name)
		assert.True(t, ok, "builtin %s should be registered", name)
	}
}

func TestInstantiateFieldSubstitutesDeclaredParam(t *testing.T) {
	env := NewEnv()
	param := env.FreshUnbound()
	acc := &Accessors{
		Params: []Type{param},
		Fields: AccessorsMap{"inner": {Index: 0, Typ: param}},
	}

	got := InstantiateField(acc, acc.Fields["inner"], []Type{Int()})
	assert.Equal(t, "Int", got.String())
}

func TestInstantiateFieldSubstitutesAfterGeneralization(t *testing.T) {
	env := NewEnv()
	env.EnterLevel()
	param := env.FreshUnbound()
	acc := &Accessors{
		Params: []Type{param},
		Fields: AccessorsMap{"inner": {Index: 0, Typ: param}},
	}
	env.LeaveLevel()
	env.Generalize(param, 0)

	got := InstantiateField(acc, acc.Fields["inner"], []Type{Float()})
	assert.Equal(t, "Float", got.String())
}
