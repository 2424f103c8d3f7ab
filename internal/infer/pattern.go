package infer

import (
	"sort"

	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/chenjianxin/gleam/internal/typedast"
	"github.com/chenjianxin/gleam/internal/types"
)

// InferPattern types pattern against expected, introducing bindings into
// env's innermost scope as it goes (spec §4.3).
func InferPattern(env *types.Env, pattern ast.Pattern, expected types.Type) (typedast.Pattern, error) {
	bound := map[string]ast.SrcSpan{}
	return inferPattern(env, pattern, expected, bound)
}

func inferPattern(env *types.Env, pattern ast.Pattern, expected types.Type, bound map[string]ast.SrcSpan) (typedast.Pattern, error) {
	switch p := pattern.(type) {
	case *ast.PatternDiscard:
		return typedast.NewPatternDiscard(p.Location, expected), nil

	case *ast.PatternVar:
		if err := checkDuplicateBinder(bound, p.Name, p.Location); err != nil {
			return nil, err
		}
		env.InsertLocalValue(p.Name, &types.ValueConstructor{Scheme: expected})
		return typedast.NewPatternVar(p.Location, expected, p.Name), nil

	case *ast.PatternInt:
		if err := types.Unify(p.Location, expected, types.Int()); err != nil {
			return nil, err
		}
		return typedast.NewPatternInt(p.Location, types.Int(), p.Value), nil

	case *ast.PatternFloat:
		if err := types.Unify(p.Location, expected, types.Float()); err != nil {
			return nil, err
		}
		return typedast.NewPatternFloat(p.Location, types.Float(), p.Value), nil

	case *ast.PatternString:
		if err := types.Unify(p.Location, expected, types.StringT()); err != nil {
			return nil, err
		}
		return typedast.NewPatternString(p.Location, types.StringT(), p.Value), nil

	case *ast.PatternList:
		return inferPatternList(env, p, expected, bound)

	case *ast.PatternTuple:
		return inferPatternTuple(env, p, expected, bound)

	case *ast.PatternConstructor:
		return inferPatternConstructor(env, p, expected, bound)

	case *ast.PatternAssign:
		if err := checkDuplicateBinder(bound, p.Name, p.Location); err != nil {
			return nil, err
		}
		inner, err := inferPattern(env, p.Pattern, expected, bound)
		if err != nil {
			return nil, err
		}
		env.InsertLocalValue(p.Name, &types.ValueConstructor{Scheme: expected})
		return typedast.NewPatternAssign(p.Location, expected, p.Name, inner), nil

	case *ast.PatternAlternative:
		return inferPatternAlternative(env, p, expected)

	default:
		panic("infer: unknown pattern kind")
	}
}

func checkDuplicateBinder(bound map[string]ast.SrcSpan, name string, loc ast.SrcSpan) error {
	if _, ok := bound[name]; ok {
		return types.NewDuplicateVarInPattern(loc, name)
	}
	bound[name] = loc
	return nil
}

func inferPatternList(env *types.Env, p *ast.PatternList, expected types.Type, bound map[string]ast.SrcSpan) (typedast.Pattern, error) {
	elem := env.FreshUnbound()
	listTyp := types.ListOf(elem)
	if err := types.Unify(p.Location, expected, listTyp); err != nil {
		return nil, err
	}

	elements := make([]typedast.Pattern, len(p.Elements))
	for i, el := range p.Elements {
		typed, err := inferPattern(env, el, elem, bound)
		if err != nil {
			return nil, err
		}
		elements[i] = typed
	}

	var tail typedast.Pattern
	if p.Tail != nil {
		typed, err := inferPattern(env, p.Tail, listTyp, bound)
		if err != nil {
			return nil, err
		}
		tail = typed
	}

	return typedast.NewPatternList(p.Location, listTyp, elements, tail), nil
}

func inferPatternTuple(env *types.Env, p *ast.PatternTuple, expected types.Type, bound map[string]ast.SrcSpan) (typedast.Pattern, error) {
	elemVars := make([]types.Type, len(p.Elems))
	for i := range elemVars {
		elemVars[i] = env.FreshUnbound()
	}
	tupleTyp := &types.Tuple{Elems: elemVars}
	if err := types.Unify(p.Location, expected, tupleTyp); err != nil {
		return nil, err
	}

	elems := make([]typedast.Pattern, len(p.Elems))
	for i, e := range p.Elems {
		typed, err := inferPattern(env, e, elemVars[i], bound)
		if err != nil {
			return nil, err
		}
		elems[i] = typed
	}
	return typedast.NewPatternTuple(p.Location, tupleTyp, elems), nil
}

func inferPatternConstructor(env *types.Env, p *ast.PatternConstructor, expected types.Type, bound map[string]ast.SrcSpan) (typedast.Pattern, error) {
	vc, ok := env.LookupVariable(p.Name)
	if !ok {
		return nil, env.UnknownVariableError(p.Location, p.Name)
	}

	scheme := env.Instantiate(vc.Scheme)
	fieldTypes, resultTyp := constructorFieldTypes(scheme)

	fm := vc.FieldMap
	arity := len(fieldTypes)
	if fm == nil {
		fm = types.NewFieldMap(arity, map[string]int{})
	}

	numNamed := len(p.Args)
	if p.Spread {
		if numNamed >= arity {
			return nil, types.NewUnnecessarySpreadOperator(p.Location, arity)
		}
	} else if numNamed != arity {
		return nil, types.NewIncorrectArity(p.Location, arity, numNamed)
	}

	positional, err := reorderPatternArgs(fm, p, arity)
	if err != nil {
		return nil, err
	}

	args := make([]typedast.Pattern, 0, arity)
	for i := 0; i < arity; i++ {
		sub := positional[i]
		if sub == nil {
			// Spread: this positional slot was omitted entirely; treat it
			// as a wildcard so later bindings don't fall out of step.
			args = append(args, typedast.NewPatternDiscard(p.Location, fieldTypes[i]))
			continue
		}
		typed, err := inferPattern(env, sub, fieldTypes[i], bound)
		if err != nil {
			return nil, err
		}
		args = append(args, typed)
	}

	if err := types.Unify(p.Location, expected, resultTyp); err != nil {
		return nil, err
	}

	return typedast.NewPatternConstructor(p.Location, resultTyp, p.Name, args), nil
}

// constructorFieldTypes splits an instantiated constructor scheme
// fn(f1,...,fn) -> T into its field types and result type; a nullary
// constructor's scheme is just T with no fields.
func constructorFieldTypes(scheme types.Type) ([]types.Type, types.Type) {
	if fn, ok := types.Resolve(scheme).(*types.Fn); ok {
		return fn.Args, fn.Retrn
	}
	return nil, scheme
}

// reorderPatternArgs applies FieldMap.Reorder semantics to a pattern's
// constructor arguments, returning a slice indexed by field position (nil
// entries are omitted positions under a spread).
func reorderPatternArgs(fm *types.FieldMap, p *ast.PatternConstructor, arity int) ([]ast.Pattern, error) {
	generic := make([]ast.CallArg[any], len(p.Args))
	for i, a := range p.Args {
		generic[i] = ast.CallArg[any]{Location: a.Location, Label: a.Label, Value: a.Value}
	}

	if !p.Spread {
		if err := fm.Reorder(generic, p.Location); err != nil {
			return nil, err
		}
		out := make([]ast.Pattern, arity)
		for i, a := range generic {
			out[i] = a.Value.(ast.Pattern)
		}
		return out, nil
	}

	out := make([]ast.Pattern, arity)
	seenLabel := false
	nextPositional := 0
	for _, a := range generic {
		if a.Label == nil {
			for nextPositional < arity && out[nextPositional] != nil {
				nextPositional++
			}
			if seenLabel {
				return nil, types.NewPositionalArgumentAfterLabelled(a.Location)
			}
			if nextPositional >= arity {
				return nil, types.NewIncorrectArity(p.Location, arity, len(generic))
			}
			out[nextPositional] = a.Value.(ast.Pattern)
			nextPositional++
			continue
		}
		seenLabel = true
		idx, ok := fm.Fields[*a.Label]
		if !ok {
			return nil, types.NewUnexpectedLabelledArg(a.Location, *a.Label)
		}
		out[idx] = a.Value.(ast.Pattern)
	}
	return out, nil
}

func inferPatternAlternative(env *types.Env, p *ast.PatternAlternative, expected types.Type) (typedast.Pattern, error) {
	typedAlts := make([]typedast.Pattern, len(p.Patterns))
	allBindings := make([]map[string]types.Type, len(p.Patterns))

	for i, alt := range p.Patterns {
		mark := env.Mark()
		bound := map[string]ast.SrcSpan{}
		typed, err := inferPattern(env, alt, expected, bound)
		if err != nil {
			return nil, err
		}
		typedAlts[i] = typed

		bindings := map[string]types.Type{}
		for name := range bound {
			vc, _ := env.LookupVariable(name)
			bindings[name] = vc.Scheme
		}
		allBindings[i] = bindings
		env.Restore(mark)
	}

	if len(allBindings) > 0 {
		first := allBindings[0]
		names := make([]string, 0, len(first))
		for n := range first {
			names = append(names, n)
		}
		sort.Strings(names)

		for i := 1; i < len(allBindings); i++ {
			for name := range allBindings[i] {
				if _, ok := first[name]; !ok {
					return nil, types.NewExtraVarInAlternativePattern(p.Patterns[i].Position(), name)
				}
			}
			for _, name := range names {
				if _, ok := allBindings[i][name]; !ok {
					return nil, types.NewExtraVarInAlternativePattern(p.Patterns[0].Position(), name)
				}
				if err := types.Unify(p.Location, first[name], allBindings[i][name]); err != nil {
					return nil, err
				}
			}
		}
		for _, name := range names {
			env.InsertLocalValue(name, &types.ValueConstructor{Scheme: first[name]})
		}
	}

	return typedast.NewPatternAlternative(p.Location, expected, typedAlts), nil
}
