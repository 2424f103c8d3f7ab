package infer

import (
	"fmt"

	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/chenjianxin/gleam/internal/typedast"
	"github.com/chenjianxin/gleam/internal/types"
)

// fieldMapFor resolves the FieldMap (if any) a callee carries, by walking
// back to the Var node that named it. A callee built from an arbitrary
// expression (e.g. the result of another call) never has labelled
// parameters to reorder.
func fieldMapFor(env *types.Env, fun ast.Expr) *types.FieldMap {
	v, ok := fun.(*ast.Var)
	if !ok {
		return nil
	}
	vc, ok := env.LookupVariable(v.Name)
	if !ok {
		return nil
	}
	return vc.FieldMap
}

// inferCall types `f(args)` per spec §4.4 Call: infer f, reorder labelled
// args, eta-expand any holes, unify each arg against the callee's
// parameter type.
func inferCall(env *types.Env, warnings *Warnings, e *ast.Call) (typedast.Expr, error) {
	if holes := countHoles(e.Args); holes > 0 {
		return inferCallWithHoles(env, warnings, e)
	}
	return inferCallNoHoles(env, warnings, e)
}

func countHoles(args []ast.CallArg[ast.Expr]) int {
	n := 0
	for _, a := range args {
		if _, ok := a.Value.(*ast.Hole); ok {
			n++
		}
	}
	return n
}

func inferCallNoHoles(env *types.Env, warnings *Warnings, e *ast.Call) (typedast.Expr, error) {
	fun, err := Infer(env, warnings, e.Fun)
	if err != nil {
		return nil, err
	}

	args := append([]ast.CallArg[ast.Expr](nil), e.Args...)
	if fm := fieldMapFor(env, e.Fun); fm != nil {
		generic := make([]ast.CallArg[any], len(args))
		for i, a := range args {
			generic[i] = ast.CallArg[any]{Location: a.Location, Label: a.Label, Value: a.Value}
		}
		if err := fm.Reorder(generic, e.Location); err != nil {
			return nil, err
		}
		for i, a := range generic {
			args[i].Value = a.Value.(ast.Expr)
			args[i].Label = a.Label
		}
	}

	fnTyp, err := resolveCallee(env, fun.Typ(), e.Location, len(args))
	if err != nil {
		return nil, err
	}

	typedArgs := make([]typedast.Expr, len(args))
	for i, a := range args {
		argTyped, err := Infer(env, warnings, a.Value)
		if err != nil {
			return nil, err
		}
		if err := types.Unify(a.Value.Position(), fnTyp.Args[i], argTyped.Typ()); err != nil {
			return nil, err
		}
		typedArgs[i] = argTyped
	}

	return typedast.NewCall(e.Location, fnTyp.Retrn, fun, typedArgs), nil
}

// resolveCallee makes sure typ is a Fn of the right arity, instantiating a
// fresh Fn shape against an unbound callee type if necessary (spec §4.4:
// "instantiate its type to a Fn of fresh args if it is a Var").
func resolveCallee(env *types.Env, typ types.Type, loc ast.SrcSpan, arity int) (*types.Fn, error) {
	resolved := types.Resolve(typ)
	if fn, ok := resolved.(*types.Fn); ok {
		if len(fn.Args) != arity {
			return nil, types.NewIncorrectArity(loc, len(fn.Args), arity)
		}
		return fn, nil
	}
	if _, ok := resolved.(*types.Var); ok {
		args := make([]types.Type, arity)
		for i := range args {
			args[i] = env.FreshUnbound()
		}
		fn := &types.Fn{Args: args, Retrn: env.FreshUnbound()}
		if err := types.Unify(loc, typ, fn); err != nil {
			return nil, err
		}
		return fn, nil
	}
	return nil, types.NewCouldNotUnify(loc, &types.Fn{Args: make([]types.Type, arity), Retrn: env.FreshUnbound()}, resolved)
}

// inferCallWithHoles desugars `f(a, _, c)` into `fn(h) { f(a, h, c) }` (spec
// §4.4, §9: a desugaring that must keep the original spans).
func inferCallWithHoles(env *types.Env, warnings *Warnings, e *ast.Call) (typedast.Expr, error) {
	holeArgs := make([]ast.Arg, 0)
	newArgs := make([]ast.CallArg[ast.Expr], len(e.Args))
	for i, a := range e.Args {
		if _, ok := a.Value.(*ast.Hole); ok {
			name := fmt.Sprintf("_hole%d", len(holeArgs))
			holeArgs = append(holeArgs, ast.Arg{Name: name, Location: a.Location})
			newArgs[i] = ast.CallArg[ast.Expr]{
				Location: a.Location,
				Label:    a.Label,
				Value:    &ast.Var{Name: name, Location: a.Location},
			}
			continue
		}
		newArgs[i] = a
	}

	inner := &ast.Call{Fun: e.Fun, Args: newArgs, Location: e.Location}
	fnLit := &ast.Fn{Args: holeArgs, Body: []ast.Expr{inner}, Location: e.Location}
	return inferFn(env, warnings, fnLit)
}
