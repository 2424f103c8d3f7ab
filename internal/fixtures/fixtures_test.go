package fixtures

import (
	"testing"

	"github.com/chenjianxin/gleam/internal/infer"
	"github.com/chenjianxin/gleam/internal/types"
	"github.com/chenjianxin/gleam/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMismatchFails(t *testing.T) {
	f := addMismatch()
	env := types.NewEnv()
	_, _, err := infer.InferModule(env, f.Module, nil)
	require.Error(t, err)
	var cnu *types.CouldNotUnify
	require.ErrorAs(t, err, &cnu)
	assert.Equal(t, uint32(4), cnu.Position().Start)
	assert.Equal(t, uint32(7), cnu.Position().End)
}

func TestIdentityGeneralizationSucceeds(t *testing.T) {
	f := identityGeneralization()
	env := types.NewEnv()
	mod, _, err := infer.InferModule(env, f.Module, nil)
	require.NoError(t, err)
	require.Len(t, mod.Functions, 1)
	assert.Equal(t, "Int", types.Resolve(mod.Functions[0].Return).String())
}

func TestTupleIndexOkSucceeds(t *testing.T) {
	f := tupleIndexOk()
	env := types.NewEnv()
	mod, _, err := infer.InferModule(env, f.Module, nil)
	require.NoError(t, err)
	assert.Equal(t, "Int", types.Resolve(mod.Functions[0].Return).String())
}

func TestTupleIndexOutOfBoundsFails(t *testing.T) {
	f := tupleIndexOutOfBounds()
	env := types.NewEnv()
	_, _, err := infer.InferModule(env, f.Module, nil)
	require.Error(t, err)
	var oob *types.OutOfBoundsTupleIndex
	require.ErrorAs(t, err, &oob)
	assert.EqualValues(t, 2, oob.Index)
	assert.Equal(t, 2, oob.Size)
}

func TestBoxAccessorProducesCorrectSignature(t *testing.T) {
	f := boxAccessor()
	env := types.NewEnv()
	mod, _, err := infer.InferModule(env, f.Module, nil)
	require.NoError(t, err)

	var got string
	for _, fnDef := range mod.Functions {
		if fnDef.Name == "f" {
			got = types.Resolve(fnDef.Return).String()
		}
	}
	assert.Equal(t, "Int", got)
}

func TestBoxAccessorGolden(t *testing.T) {
	f := boxAccessor()
	env := types.NewEnv()
	mod, _, err := infer.InferModule(env, f.Module, nil)
	require.NoError(t, err)
	testutil.GoldenCompare(t, "box_accessor", testutil.PrintModule(mod))
}

func TestDuplicateNameFails(t *testing.T) {
	f := duplicateName()
	env := types.NewEnv()
	_, _, err := infer.InferModule(env, f.Module, nil)
	require.Error(t, err)
	var dup *types.DuplicateName
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "dupe", dup.Name)
}

func TestForwardReferenceADTsSucceeds(t *testing.T) {
	f := forwardReferenceADTs()
	env := types.NewEnv()
	_, _, err := infer.InferModule(env, f.Module, nil)
	require.NoError(t, err)
}

func TestPrivateTypeLeakFails(t *testing.T) {
	f := privateTypeLeak()
	env := types.NewEnv()
	_, _, err := infer.InferModule(env, f.Module, nil)
	require.Error(t, err)
	var leak *types.PrivateTypeLeak
	require.ErrorAs(t, err, &leak)
	assert.Equal(t, "PrivateType", leak.Leaked.String())
}

func TestAllFixturesAreWellFormed(t *testing.T) {
	for _, f := range All() {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			assert.NotEmpty(t, f.Source)
			assert.NotNil(t, f.Module)
			assert.NotEmpty(t, f.WantSummary)
		})
	}
}
