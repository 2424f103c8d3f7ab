package infer

import (
	"testing"

	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/chenjianxin/gleam/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(start, end uint32) ast.SrcSpan { return ast.SrcSpan{Start: start, End: end} }

func TestInferAddMismatch(t *testing.T) {
	// `1 + 1.0`
	expr := &ast.BinOp{
		Name: "+",
		Left: &ast.Int{Value: "1", Location: span(0, 1)},
		Right: &ast.Float{Value: "1.0", Location: span(4, 7)},
		Location: span(0, 7),
	}
	env := types.NewEnv()
	_, err := Infer(env, &Warnings{}, expr)
	require.Error(t, err)
	var cnu *types.CouldNotUnify
	require.ErrorAs(t, err, &cnu)
	assert.Equal(t, types.Int(), cnu.Expected)
	assert.Equal(t, types.Float(), cnu.Given)
	assert.Equal(t, span(4, 7), cnu.Position())
}

func TestInferIdentityGeneralizationAndApplication(t *testing.T) {
	// let id = fn(x) { x } id(1)
	letExpr := &ast.Let{
		Pattern: &ast.PatternVar{Name: "id"},
		Value: &ast.Fn{
			Args: []ast.Arg{{Name: "x"}},
			Body: []ast.Expr{&ast.Var{Name: "x"}},
		},
		Body: []ast.Expr{
			&ast.Call{
				Fun:  &ast.Var{Name: "id"},
				Args: []ast.CallArg[ast.Expr]{{Value: &ast.Int{Value: "1"}}},
			},
		},
	}
	env := types.NewEnv()
	typed, err := Infer(env, &Warnings{}, letExpr)
	require.NoError(t, err)
	assert.Equal(t, "Int", types.Resolve(typed.Typ()).String())
}

func TestInferTupleIndex(t *testing.T) {
	// tuple(1, 2.0).0
	expr := &ast.TupleIndex{
		Tuple: &ast.TupleLit{Elems: []ast.Expr{
			&ast.Int{Value: "1"},
			&ast.Float{Value: "2.0"},
		}},
		Index: 0,
	}
	env := types.NewEnv()
	typed, err := Infer(env, &Warnings{}, expr)
	require.NoError(t, err)
	assert.Equal(t, "Int", typed.Typ().String())
}

func TestInferTupleIndexOutOfBounds(t *testing.T) {
	// tuple(0, 1).2
	expr := &ast.TupleIndex{
		Tuple: &ast.TupleLit{Elems: []ast.Expr{
			&ast.Int{Value: "0"},
			&ast.Int{Value: "1"},
		}},
		Index: 2,
	}
	env := types.NewEnv()
	_, err := Infer(env, &Warnings{}, expr)
	require.Error(t, err)
	var oob *types.OutOfBoundsTupleIndex
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, uint64(2), oob.Index)
	assert.Equal(t, 2, oob.Size)
}

func TestInferOccursCheck(t *testing.T) {
	// let id = fn(x) { x(x) }
	letExpr := &ast.Let{
		Pattern: &ast.PatternVar{Name: "id"},
		Value: &ast.Fn{
			Args: []ast.Arg{{Name: "x"}},
			Body: []ast.Expr{
				&ast.Call{
					Fun:  &ast.Var{Name: "x"},
					Args: []ast.CallArg[ast.Expr]{{Value: &ast.Var{Name: "x"}}},
				},
			},
		},
		Body: []ast.Expr{&ast.Int{Value: "0"}},
	}
	env := types.NewEnv()
	_, err := Infer(env, &Warnings{}, letExpr)
	require.Error(t, err)
	var rt *types.RecursiveType
	require.ErrorAs(t, err, &rt)
}

func TestInferDuplicateVarInPattern(t *testing.T) {
	pattern := &ast.PatternTuple{Elems: []ast.Pattern{
		&ast.PatternVar{Name: "x"},
		&ast.PatternVar{Name: "x"},
	}}
	env := types.NewEnv()
	_, err := InferPattern(env, pattern, &types.Tuple{Elems: []types.Type{
		env.FreshUnbound(), env.FreshUnbound(),
	}})
	require.Error(t, err)
	var dup *types.DuplicateVarInPattern
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "x", dup.Name)
}

func TestInferAlternativePatternExtraVar(t *testing.T) {
	pattern := &ast.PatternAlternative{Patterns: []ast.Pattern{
		&ast.PatternVar{Name: "x"},
		&ast.PatternDiscard{},
	}}
	env := types.NewEnv()
	_, err := InferPattern(env, pattern, env.FreshUnbound())
	require.Error(t, err)
	var extra *types.ExtraVarInAlternativePattern
	require.ErrorAs(t, err, &extra)
}

func TestInferListLiteralUnifiesElements(t *testing.T) {
	expr := &ast.ListLit{Elements: []ast.Expr{
		&ast.Int{Value: "1"},
		&ast.Int{Value: "2"},
	}}
	env := types.NewEnv()
	typed, err := Infer(env, &Warnings{}, expr)
	require.NoError(t, err)
	assert.Equal(t, "List(Int)", typed.Typ().String())
}

func TestInferListLiteralMismatch(t *testing.T) {
	expr := &ast.ListLit{Elements: []ast.Expr{
		&ast.Int{Value: "1"},
		&ast.Float{Value: "2.0", Location: span(1, 4)},
	}}
	env := types.NewEnv()
	_, err := Infer(env, &Warnings{}, expr)
	require.Error(t, err)
}

func TestInferPipeThreadsHole(t *testing.T) {
	// [1] |> foo(_, 2), where foo : fn(List(Int), Int) -> Bool
	env := types.NewEnv()
	env.InsertModuleValue("foo", &types.ValueConstructor{
		Scheme: &types.Fn{Args: []types.Type{types.ListOf(types.Int()), types.Int()}, Retrn: types.Bool()},
	})
	expr := &ast.Pipe{
		Left: &ast.ListLit{Elements: []ast.Expr{&ast.Int{Value: "1"}}},
		Right: &ast.Call{
			Fun: &ast.Var{Name: "foo"},
			Args: []ast.CallArg[ast.Expr]{
				{Value: &ast.Hole{}},
				{Value: &ast.Int{Value: "2"}},
			},
		},
	}
	typed, err := Infer(env, &Warnings{}, expr)
	require.NoError(t, err)
	assert.Equal(t, "Bool", typed.Typ().String())
}

func TestInferPipePrependsArgument(t *testing.T) {
	// 1 |> double(), where double : fn(Int) -> Int
	env := types.NewEnv()
	env.InsertModuleValue("double", &types.ValueConstructor{
		Scheme: &types.Fn{Args: []types.Type{types.Int()}, Retrn: types.Int()},
	})
	expr := &ast.Pipe{
		Left:  &ast.Int{Value: "1"},
		Right: &ast.Call{Fun: &ast.Var{Name: "double"}},
	}
	typed, err := Infer(env, &Warnings{}, expr)
	require.NoError(t, err)
	assert.Equal(t, "Int", typed.Typ().String())
}

func TestInferPipeFallsBackOnArityMismatch(t *testing.T) {
	// 1 |> add(2), where add : fn(Int, Int) -> Int. add(2) alone is arity 1
	// against a 2-arg add, so the as-written attempt fails with
	// IncorrectArity and lhs is inserted as the first positional argument.
	env := types.NewEnv()
	env.InsertModuleValue("add", &types.ValueConstructor{
		Scheme: &types.Fn{Args: []types.Type{types.Int(), types.Int()}, Retrn: types.Int()},
	})
	expr := &ast.Pipe{
		Left: &ast.Int{Value: "1"},
		Right: &ast.Call{
			Fun:  &ast.Var{Name: "add"},
			Args: []ast.CallArg[ast.Expr]{{Value: &ast.Int{Value: "2"}}},
		},
	}
	typed, err := Infer(env, &Warnings{}, expr)
	require.NoError(t, err)
	assert.Equal(t, "Int", typed.Typ().String())
}

func TestInferPipeAppliesCurriedAsWrittenResult(t *testing.T) {
	// 1 |> add(1), where add : fn(Int) -> fn(Int) -> Int. add(1) as written
	// already matches add's declared arity, so it is inferred exactly as
	// written first; the resulting fn(Int) -> Int then takes lhs as its
	// sole argument (original_source/src/typ/tests.rs:382).
	env := types.NewEnv()
	env.InsertModuleValue("add", &types.ValueConstructor{
		Scheme: &types.Fn{
			Args:  []types.Type{types.Int()},
			Retrn: &types.Fn{Args: []types.Type{types.Int()}, Retrn: types.Int()},
		},
	})
	expr := &ast.Pipe{
		Left: &ast.Int{Value: "1"},
		Right: &ast.Call{
			Fun:  &ast.Var{Name: "add"},
			Args: []ast.CallArg[ast.Expr]{{Value: &ast.Int{Value: "1"}}},
		},
	}
	typed, err := Infer(env, &Warnings{}, expr)
	require.NoError(t, err)
	assert.Equal(t, "Int", typed.Typ().String())
}

func TestInferPipeAppliesCurriedAsWrittenResultArityThree(t *testing.T) {
	// 1 |> add(1, 2, 3), where add : fn(Int, Int, Int) -> fn(Int) -> Int.
	// The as-written call already supplies all three of add's own
	// parameters, so only the returned fn(Int) -> Int takes lhs
	// (original_source/src/typ/tests.rs:384-386).
	env := types.NewEnv()
	env.InsertModuleValue("add", &types.ValueConstructor{
		Scheme: &types.Fn{
			Args:  []types.Type{types.Int(), types.Int(), types.Int()},
			Retrn: &types.Fn{Args: []types.Type{types.Int()}, Retrn: types.Int()},
		},
	})
	expr := &ast.Pipe{
		Left: &ast.Int{Value: "1"},
		Right: &ast.Call{
			Fun: &ast.Var{Name: "add"},
			Args: []ast.CallArg[ast.Expr]{
				{Value: &ast.Int{Value: "1"}},
				{Value: &ast.Int{Value: "2"}},
				{Value: &ast.Int{Value: "3"}},
			},
		},
	}
	typed, err := Infer(env, &Warnings{}, expr)
	require.NoError(t, err)
	assert.Equal(t, "Int", typed.Typ().String())
}

func TestInferCaseIncorrectPatternCount(t *testing.T) {
	expr := &ast.Case{
		Subjects: []ast.Expr{&ast.Int{Value: "1"}},
		Clauses: []ast.Clause{
			{
				Alternatives: []ast.ClauseAlternative{
					{Patterns: []ast.Pattern{&ast.PatternVar{Name: "a"}, &ast.PatternVar{Name: "b"}}},
				},
				Body: []ast.Expr{&ast.Int{Value: "0"}},
			},
		},
	}
	env := types.NewEnv()
	_, err := Infer(env, &Warnings{}, expr)
	require.Error(t, err)
	var inp *types.IncorrectNumClausePatterns
	require.ErrorAs(t, err, &inp)
	assert.Equal(t, 1, inp.Expected)
	assert.Equal(t, 2, inp.Given)
}

func TestInferCaseGuardAllowsPatternBinding(t *testing.T) {
	// case 1 { x if x -> 1 }, guard referencing only the clause's own
	// pattern binder — type mismatches (x : Int vs Bool) but is legal
	// shape-wise, so this exercises checkGuardIsLocal accepting x, then
	// the later Bool-unify error confirms we got past the locality check.
	expr := &ast.Case{
		Subjects: []ast.Expr{&ast.Int{Value: "1"}},
		Clauses: []ast.Clause{
			{
				Alternatives: []ast.ClauseAlternative{
					{Patterns: []ast.Pattern{&ast.PatternVar{Name: "x"}}},
				},
				Guard: &ast.Var{Name: "x"},
				Body:  []ast.Expr{&ast.Int{Value: "1"}},
			},
		},
	}
	env := types.NewEnv()
	_, err := Infer(env, &Warnings{}, expr)
	require.Error(t, err)
	var cnu *types.CouldNotUnify
	require.ErrorAs(t, err, &cnu)
}

func TestInferCaseGuardRejectsSiblingModuleFunction(t *testing.T) {
	// fn one() { 1 } fn main() { case 1 { _ if one -> 1 } }
	// (original_source/src/typ/tests.rs:1629-1636): referencing another
	// module-level function from a guard is rejected even though `one`
	// resolves fine as a module value anywhere else in the body.
	env := types.NewEnv()
	env.InsertModuleValue("one", &types.ValueConstructor{Scheme: types.Int()})
	expr := &ast.Case{
		Subjects: []ast.Expr{&ast.Int{Value: "1"}},
		Clauses: []ast.Clause{
			{
				Alternatives: []ast.ClauseAlternative{
					{Patterns: []ast.Pattern{&ast.PatternDiscard{}}},
				},
				Guard: &ast.Var{Name: "one"},
				Body:  []ast.Expr{&ast.Int{Value: "1"}},
			},
		},
	}
	_, err := Infer(env, &Warnings{}, expr)
	require.Error(t, err)
	var nl *types.NonLocalClauseGuardVariable
	require.ErrorAs(t, err, &nl)
	assert.Equal(t, "one", nl.Name)
}

func TestInferTodoWarns(t *testing.T) {
	env := types.NewEnv()
	w := &Warnings{}
	_, err := Infer(env, w, &ast.Todo{})
	require.NoError(t, err)
	require.Len(t, w.List(), 1)
	_, ok := w.List()[0].(*types.Todo)
	assert.True(t, ok)
}
