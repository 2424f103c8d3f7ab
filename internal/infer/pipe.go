package infer

import (
	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/chenjianxin/gleam/internal/typedast"
	"github.com/chenjianxin/gleam/internal/types"
)

// inferPipe desugars `lhs |> rhs` per spec §4.4 Pipe, in three shapes:
//
//  1. rhs is a call with an explicit hole `_` → the hole is replaced by lhs
//     directly (no wrapping function — this is substitution, not
//     eta-expansion).
//  2. rhs is a call without a hole → first attempt rhs exactly as written;
//     if it types and has arity matching what was written (whatever its
//     result is, commonly a curried `fn(T) -> U`), lhs becomes that
//     result's sole argument. Only when the as-written call's arity
//     doesn't line up (`IncorrectArity`) does lhs instead get inserted as
//     the first missing positional argument.
//  3. rhs is any other expression (expected to denote a function) → it is
//     called with lhs as its sole argument.
//
// Original spans are kept on the synthesized nodes (spec §9) so diagnostics
// still point where the user wrote lhs/rhs.
func inferPipe(env *types.Env, warnings *Warnings, e *ast.Pipe) (typedast.Expr, error) {
	if call, ok := e.Right.(*ast.Call); ok {
		if idx := firstHoleIndex(call.Args); idx >= 0 {
			substituted := append([]ast.CallArg[ast.Expr](nil), call.Args...)
			substituted[idx] = ast.CallArg[ast.Expr]{
				Location: substituted[idx].Location,
				Label:    substituted[idx].Label,
				Value:    e.Left,
			}
			return inferCallNoHoles(env, warnings, &ast.Call{Fun: call.Fun, Args: substituted, Location: e.Location})
		}

		asWritten, err := inferCallNoHoles(env, warnings, call)
		if err != nil {
			if _, ok := err.(*types.IncorrectArity); !ok {
				return nil, err
			}
			prepended := append([]ast.CallArg[ast.Expr]{{Location: e.Left.Position(), Value: e.Left}}, call.Args...)
			return inferCallNoHoles(env, warnings, &ast.Call{Fun: call.Fun, Args: prepended, Location: e.Location})
		}
		return applySoleArgument(env, warnings, e.Location, e.Left, asWritten)
	}

	return inferCallNoHoles(env, warnings, &ast.Call{
		Fun:      e.Right,
		Args:     []ast.CallArg[ast.Expr]{{Location: e.Left.Position(), Value: e.Left}},
		Location: e.Location,
	})
}

// applySoleArgument applies an already-typed callee to lhs as its one
// argument, mirroring inferCallNoHoles's tail end for a callee that has
// already been inferred (spec §4.4: "the target arity must match;
// otherwise the standard call-arity errors apply").
func applySoleArgument(env *types.Env, warnings *Warnings, loc ast.SrcSpan, lhs ast.Expr, fun typedast.Expr) (typedast.Expr, error) {
	fnTyp, err := resolveCallee(env, fun.Typ(), loc, 1)
	if err != nil {
		return nil, err
	}
	argTyped, err := Infer(env, warnings, lhs)
	if err != nil {
		return nil, err
	}
	if err := types.Unify(lhs.Position(), fnTyp.Args[0], argTyped.Typ()); err != nil {
		return nil, err
	}
	return typedast.NewCall(loc, fnTyp.Retrn, fun, []typedast.Expr{argTyped}), nil
}

func firstHoleIndex(args []ast.CallArg[ast.Expr]) int {
	for i, a := range args {
		if _, ok := a.Value.(*ast.Hole); ok {
			return i
		}
	}
	return -1
}
