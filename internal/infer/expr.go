package infer

import (
	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/chenjianxin/gleam/internal/typedast"
	"github.com/chenjianxin/gleam/internal/types"
)

// Warnings accumulates non-fatal diagnostics produced while inferring one
// module (spec §4.7). A fresh Warnings is created per InferModule call; the
// testing hook Infer (spec §6) takes one explicitly so callers can inspect
// it.
type Warnings struct {
	list []types.Warning
}

func (w *Warnings) add(warning types.Warning) { w.list = append(w.list, warning) }

// List returns every warning accumulated so far, in emission order.
func (w *Warnings) List() []types.Warning { return w.list }

// Infer types a single expression against env (spec §6's testing hook).
// It is also the entry point used recursively by the expression inferencer
// itself.
func Infer(env *types.Env, warnings *Warnings, expr ast.Expr) (typedast.Expr, error) {
	switch e := expr.(type) {
	case *ast.Int:
		return typedast.NewInt(e.Location, types.Int(), e.Value), nil

	case *ast.Float:
		return typedast.NewFloat(e.Location, types.Float(), e.Value), nil

	case *ast.String:
		return typedast.NewString(e.Location, types.StringT(), e.Value), nil

	case *ast.Var:
		vc, ok := env.LookupVariable(e.Name)
		if !ok {
			return nil, env.UnknownVariableError(e.Location, e.Name)
		}
		return typedast.NewVar(e.Location, env.Instantiate(vc.Scheme), e.Name), nil

	case *ast.Fn:
		return inferFn(env, warnings, e)

	case *ast.Call:
		return inferCall(env, warnings, e)

	case *ast.Pipe:
		return inferPipe(env, warnings, e)

	case *ast.BinOp:
		return inferBinOp(env, warnings, e)

	case *ast.TupleLit:
		return inferTupleLit(env, warnings, e)

	case *ast.TupleIndex:
		return inferTupleIndex(env, warnings, e)

	case *ast.FieldAccess:
		return inferFieldAccess(env, warnings, e)

	case *ast.ListLit:
		return inferListLit(env, warnings, e)

	case *ast.Let:
		return inferLet(env, warnings, e)

	case *ast.Assert:
		return inferAssert(env, warnings, e)

	case *ast.Case:
		return inferCase(env, warnings, e)

	case *ast.Todo:
		warnings.add(types.NewTodo(e.Location, e.Label))
		return typedast.NewTodo(e.Location, env.FreshUnbound(), e.Label), nil

	default:
		panic("infer: unknown expression kind")
	}
}

// inferBlock types a block of statements in sequence, in a fresh lexical
// scope, returning the typed statements and the type of the last one (or
// Nil for an empty block). It watches for implicitly-discarded Result
// values among the non-final statements (spec §4.7).
func inferBlock(env *types.Env, warnings *Warnings, body []ast.Expr) ([]typedast.Expr, types.Type, error) {
	mark := env.Mark()
	defer env.Restore(mark)

	if len(body) == 0 {
		return nil, types.Nil(), nil
	}

	typed := make([]typedast.Expr, len(body))
	for i, stmt := range body {
		t, err := Infer(env, warnings, stmt)
		if err != nil {
			return nil, nil, err
		}
		typed[i] = t

		if i < len(body)-1 && !isSuppressedDiscard(stmt) {
			if resolvesToResult(t.Typ()) {
				warnings.add(types.NewImplicitlyDiscardedResult(stmt.Position()))
			}
		}
	}
	return typed, typed[len(typed)-1].Typ(), nil
}

// isSuppressedDiscard reports whether stmt is `let _ = ...`, which spec
// §4.7 says suppresses the ImplicitlyDiscardedResult warning.
func isSuppressedDiscard(stmt ast.Expr) bool {
	let, ok := stmt.(*ast.Let)
	if !ok {
		return false
	}
	_, ok = let.Pattern.(*ast.PatternDiscard)
	return ok
}

func resolvesToResult(t types.Type) bool {
	app, ok := types.Resolve(t).(*types.App)
	return ok && app.Name == "Result" && len(app.Module) == 0
}

func inferFn(env *types.Env, warnings *Warnings, e *ast.Fn) (typedast.Expr, error) {
	mark := env.Mark()
	defer env.Restore(mark)

	scope := newAnnotationScope(env)
	args := make([]typedast.TypedArg, len(e.Args))
	argTypes := make([]types.Type, len(e.Args))
	for i, a := range e.Args {
		t, err := scope.Resolve(a.Annotation)
		if err != nil {
			return nil, err
		}
		env.InsertLocalValue(a.Name, &types.ValueConstructor{Scheme: t})
		args[i] = typedast.TypedArg{Name: a.Name, Type: t}
		argTypes[i] = t
	}

	var declaredReturn types.Type
	if e.Return != nil {
		t, err := scope.Resolve(e.Return)
		if err != nil {
			return nil, err
		}
		declaredReturn = t
	}

	body, bodyTyp, err := inferBlock(env, warnings, e.Body)
	if err != nil {
		return nil, err
	}
	if declaredReturn != nil {
		if err := types.Unify(e.Location, declaredReturn, bodyTyp); err != nil {
			return nil, err
		}
		bodyTyp = declaredReturn
	}

	return typedast.NewFn(e.Location, &types.Fn{Args: argTypes, Retrn: bodyTyp}, args, body), nil
}

func inferTupleLit(env *types.Env, warnings *Warnings, e *ast.TupleLit) (typedast.Expr, error) {
	elems := make([]typedast.Expr, len(e.Elems))
	elemTypes := make([]types.Type, len(e.Elems))
	for i, el := range e.Elems {
		t, err := Infer(env, warnings, el)
		if err != nil {
			return nil, err
		}
		elems[i] = t
		elemTypes[i] = t.Typ()
	}
	return typedast.NewTupleLit(e.Location, &types.Tuple{Elems: elemTypes}, elems), nil
}

func inferTupleIndex(env *types.Env, warnings *Warnings, e *ast.TupleIndex) (typedast.Expr, error) {
	tuple, err := Infer(env, warnings, e.Tuple)
	if err != nil {
		return nil, err
	}

	resolved := types.Resolve(tuple.Typ())
	switch t := resolved.(type) {
	case *types.Tuple:
		if int(e.Index) >= len(t.Elems) {
			return nil, types.NewOutOfBoundsTupleIndex(e.Location, e.Index, len(t.Elems))
		}
		return typedast.NewTupleIndex(e.Location, t.Elems[e.Index], tuple, e.Index), nil
	case *types.Var:
		if _, ok := t.Cell.State.(types.Unbound); ok {
			return nil, types.NewNotATupleUnbound(e.Location)
		}
		return nil, types.NewNotATuple(e.Location, resolved)
	default:
		return nil, types.NewNotATuple(e.Location, resolved)
	}
}

func inferFieldAccess(env *types.Env, warnings *Warnings, e *ast.FieldAccess) (typedast.Expr, error) {
	container, err := Infer(env, warnings, e.Container)
	if err != nil {
		return nil, err
	}

	resolved := types.Resolve(container.Typ())
	app, ok := resolved.(*types.App)
	if !ok {
		if v, ok := resolved.(*types.Var); ok {
			if _, unbound := v.Cell.State.(types.Unbound); unbound {
				return nil, types.NewRecordAccessUnknownType(e.Location)
			}
		}
		return nil, types.NewRecordAccessUnknownType(e.Location)
	}

	accessors, ok := env.LookupAccessors(app.Name)
	if !ok {
		return nil, types.NewRecordAccessUnknownType(e.Location)
	}
	field, ok := accessors.Fields[e.Label]
	if !ok {
		names := make([]string, 0, len(accessors.Fields))
		for f := range accessors.Fields {
			names = append(names, f)
		}
		return nil, types.NewUnknownField(e.Location, e.Label, names, resolved)
	}

	fieldTyp := types.InstantiateField(accessors, field, app.Args)
	return typedast.NewFieldAccess(e.Location, fieldTyp, container, e.Label, field.Index), nil
}

func inferListLit(env *types.Env, warnings *Warnings, e *ast.ListLit) (typedast.Expr, error) {
	elem := env.FreshUnbound()
	elements := make([]typedast.Expr, len(e.Elements))
	for i, el := range e.Elements {
		typed, err := Infer(env, warnings, el)
		if err != nil {
			return nil, err
		}
		if err := types.Unify(el.Position(), elem, typed.Typ()); err != nil {
			return nil, err
		}
		elements[i] = typed
	}

	listTyp := types.ListOf(elem)
	var tail typedast.Expr
	if e.Tail != nil {
		if e.TailKind == ast.TailDeprecatedPipe {
			warnings.add(types.NewDeprecatedListPrependSyntax(e.Location))
		}
		typed, err := Infer(env, warnings, e.Tail)
		if err != nil {
			return nil, err
		}
		if err := types.Unify(e.Tail.Position(), listTyp, typed.Typ()); err != nil {
			return nil, err
		}
		tail = typed
	}

	return typedast.NewListLit(e.Location, listTyp, elements, tail), nil
}

func inferLet(env *types.Env, warnings *Warnings, e *ast.Let) (typedast.Expr, error) {
	env.EnterLevel()
	value, err := Infer(env, warnings, e.Value)
	if err != nil {
		env.LeaveLevel()
		return nil, err
	}
	env.LeaveLevel()
	generalized := env.Generalize(value.Typ(), env.Level())

	if e.Annotation != nil {
		scope := newAnnotationScope(env)
		annotated, err := scope.Resolve(e.Annotation)
		if err != nil {
			return nil, err
		}
		if err := types.Unify(e.Location, annotated, generalized); err != nil {
			return nil, err
		}
	}

	pattern, err := InferPattern(env, e.Pattern, generalized)
	if err != nil {
		return nil, err
	}

	body, bodyTyp, err := inferBlock(env, warnings, e.Body)
	if err != nil {
		return nil, err
	}
	return typedast.NewLet(e.Location, bodyTyp, pattern, value, body), nil
}

func inferAssert(env *types.Env, warnings *Warnings, e *ast.Assert) (typedast.Expr, error) {
	env.EnterLevel()
	value, err := Infer(env, warnings, e.Value)
	if err != nil {
		env.LeaveLevel()
		return nil, err
	}
	env.LeaveLevel()
	generalized := env.Generalize(value.Typ(), env.Level())

	if e.Annotation != nil {
		scope := newAnnotationScope(env)
		annotated, err := scope.Resolve(e.Annotation)
		if err != nil {
			return nil, err
		}
		if err := types.Unify(e.Location, annotated, generalized); err != nil {
			return nil, err
		}
	}

	// Assert permits refutable patterns (spec §4.4): no exhaustiveness
	// check is applied here, unlike a hypothetical Let that demanded one.
	pattern, err := InferPattern(env, e.Pattern, generalized)
	if err != nil {
		return nil, err
	}

	body, bodyTyp, err := inferBlock(env, warnings, e.Body)
	if err != nil {
		return nil, err
	}
	return typedast.NewAssert(e.Location, bodyTyp, pattern, value, body), nil
}
