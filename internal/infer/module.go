package infer

import (
	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/chenjianxin/gleam/internal/typedast"
	"github.com/chenjianxin/gleam/internal/types"
)

// InferModule runs the six-step module inference procedure of spec §4.6. It
// is the `infer_module` entry point named in spec §6. imports maps an
// already-inferred module's dotted name to its typed result, for resolving
// cross-module references — this implementation's fixtures are all
// single-module, so imports is typically empty, but the parameter is kept
// to match the documented interface.
func InferModule(env *types.Env, mod *ast.Module, imports map[string]*typedast.Module) (*typedast.Module, []types.Warning, error) {
	warnings := &Warnings{}

	declaredLoc := map[string]ast.SrcSpan{}
	if err := registerTypes(env, mod, declaredLoc); err != nil {
		return nil, nil, err
	}

	valueLoc := map[string]ast.SrcSpan{}
	publicTypes := map[string]bool{}
	if err := registerConstructors(env, mod, valueLoc, publicTypes); err != nil {
		return nil, nil, err
	}

	schemes, err := registerSignatures(env, mod, valueLoc)
	if err != nil {
		return nil, nil, err
	}

	functions, err := inferFunctionBodies(env, warnings, mod, schemes)
	if err != nil {
		return nil, nil, err
	}

	if err := checkPrivateTypeLeaks(env, mod, functions, publicTypes); err != nil {
		return nil, nil, err
	}

	result := &typedast.Module{
		Name:      mod.Name,
		Types:     userTypes(mod, env),
		Values:    moduleValues(env),
		Accessors: moduleAccessors(env),
		Functions: functions,
	}
	return result, warnings.List(), nil
}

// registerTypes is step 1: every type/external type/type alias gets a shape
// in module_types before anything else is resolved, so later declarations
// can reference earlier (or later — see the forward-reference scenario in
// spec §8) ones by name.
func registerTypes(env *types.Env, mod *ast.Module, declaredLoc map[string]ast.SrcSpan) error {
	aliasLoc := map[string]ast.SrcSpan{}
	for _, stmt := range mod.Statements {
		switch s := stmt.(type) {
		case *ast.CustomType:
			if prev, ok := declaredLoc[s.Name]; ok {
				return types.NewDuplicateTypeName(s.Location, s.Name, prev)
			}
			declaredLoc[s.Name] = s.Location
			env.InsertType(s.Name, &types.TypeConstructor{Arity: len(s.Parameters), Public: s.Public})

		case *ast.ExternalType:
			if prev, ok := declaredLoc[s.Name]; ok {
				return types.NewDuplicateTypeName(s.Location, s.Name, prev)
			}
			declaredLoc[s.Name] = s.Location
			env.InsertType(s.Name, &types.TypeConstructor{Arity: len(s.Parameters), Public: s.Public})

		case *ast.TypeAliasDecl:
			// Aliases may shadow built-ins (spec §4.6: `type Int = Float`
			// is legal) so they don't participate in declaredLoc's
			// DuplicateTypeName tracking against other user types, only
			// against themselves.
			if prev, ok := aliasLoc[s.Name]; ok {
				return types.NewDuplicateTypeName(s.Location, s.Name, prev)
			}
			aliasLoc[s.Name] = s.Location
			env.InsertAlias(s.Name, buildAliasScheme(env, s))
		}
	}
	return nil
}

func buildAliasScheme(env *types.Env, s *ast.TypeAliasDecl) *types.TypeAliasScheme {
	return &types.TypeAliasScheme{
		Parameters: s.Parameters,
		Expand: func(args []types.Type) types.Type {
			scope := newAnnotationScope(env)
			for i, p := range s.Parameters {
				if i < len(args) {
					scope.vars[p] = args[i]
				}
			}
			t, _ := scope.Resolve(s.Annotation)
			return t
		},
	}
}

// registerConstructors is step 2: every ADT's constructors are registered
// into module_values, and accessor maps are built for single-constructor
// labelled records.
func registerConstructors(env *types.Env, mod *ast.Module, valueLoc map[string]ast.SrcSpan, publicTypes map[string]bool) error {
	for _, stmt := range mod.Statements {
		ct, ok := stmt.(*ast.CustomType)
		if !ok {
			continue
		}
		if err := registerOneType(env, ct, valueLoc, publicTypes); err != nil {
			return err
		}
	}
	return nil
}

// registerOneType builds every constructor scheme for one CustomType at a
// fresh level, then generalizes each against the level this type was
// declared at — so the type's own parameters (spec §4.2's Generalize) become
// Generic rather than staying as a single Unbound var shared, wrongly,
// across every use site.
func registerOneType(env *types.Env, ct *ast.CustomType, valueLoc map[string]ast.SrcSpan, publicTypes map[string]bool) error {
	if ct.Public {
		publicTypes[ct.Name] = true
	}

	boundary := env.Level()
	env.EnterLevel()
	defer env.LeaveLevel()

	scope := newAnnotationScope(env)
	paramVars := make([]types.Type, len(ct.Parameters))
	for i, p := range ct.Parameters {
		paramVars[i] = scope.env.FreshUnbound()
		scope.vars[p] = paramVars[i]
	}
	resultTyp := &types.App{Name: ct.Name, Args: paramVars, Public: ct.Public}

	for _, ctor := range ct.Constructors {
		if prev, ok := valueLoc[ctor.Name]; ok {
			return types.NewDuplicateName(ctor.Location, ctor.Name, prev)
		}
		valueLoc[ctor.Name] = ctor.Location

		fieldTypes := make([]types.Type, len(ctor.Args))
		fields := map[string]int{}
		allLabelled := len(ctor.Args) > 0
		for i, a := range ctor.Args {
			t, err := scope.Resolve(a.Annotation)
			if err != nil {
				return err
			}
			fieldTypes[i] = t
			if a.Label != nil {
				fields[*a.Label] = i
			} else {
				allLabelled = false
			}
		}

		var scheme types.Type = resultTyp
		if len(fieldTypes) > 0 {
			scheme = &types.Fn{Args: fieldTypes, Retrn: resultTyp}
		}
		env.InsertModuleValue(ctor.Name, &types.ValueConstructor{
			Scheme:   env.Generalize(scheme, boundary),
			Origin:   types.OriginLocal,
			FieldMap: types.NewFieldMap(len(fieldTypes), fields),
		})

		if allLabelled && len(ct.Constructors) == 1 {
			accessorFields := types.AccessorsMap{}
			for i, a := range ctor.Args {
				ft, _ := scope.Resolve(a.Annotation)
				accessorFields[*a.Label] = types.AccessorField{Index: i, Typ: ft}
			}
			env.InsertAccessors(ct.Name, &types.Accessors{Params: paramVars, Fields: accessorFields})
		}
	}
	return nil
}

// registerSignatures is step 3: every fn/external fn's declared scheme is
// built and pre-registered, so step 4 can support mutual recursion.
func registerSignatures(env *types.Env, mod *ast.Module, valueLoc map[string]ast.SrcSpan) (map[string]types.Type, error) {
	schemes := map[string]types.Type{}
	for _, stmt := range mod.Statements {
		var name string
		var args []ast.Arg
		var ret ast.TypeAst
		var loc ast.SrcSpan

		switch s := stmt.(type) {
		case *ast.Function:
			name, args, ret, loc = s.Name, s.Args, s.Return, s.Location
		case *ast.ExternalFunction:
			name, args, ret, loc = s.Name, s.Args, s.Return, s.Location
		default:
			continue
		}

		if prev, ok := valueLoc[name]; ok {
			return nil, types.NewDuplicateName(loc, name, prev)
		}
		valueLoc[name] = loc

		env.EnterLevel()
		scope := newAnnotationScope(env)
		argTypes := make([]types.Type, len(args))
		for i, a := range args {
			t, err := scope.Resolve(a.Annotation)
			if err != nil {
				env.LeaveLevel()
				return nil, err
			}
			argTypes[i] = t
		}
		retTyp, err := scope.Resolve(ret)
		if err != nil {
			env.LeaveLevel()
			return nil, err
		}
		env.LeaveLevel()

		fnTyp := &types.Fn{Args: argTypes, Retrn: retTyp}
		schemes[name] = fnTyp
		env.InsertModuleValue(name, &types.ValueConstructor{
			Scheme:   fnTyp,
			Origin:   types.OriginLocal,
			FieldMap: fieldMapFromArgs(args),
		})
	}
	return schemes, nil
}

func fieldMapFromArgs(args []ast.Arg) *types.FieldMap {
	// Named parameters in a fn declaration act like constructor labels for
	// call-site reordering; this implementation keys the label to the
	// parameter name itself, matching Gleam's labelled-argument sugar
	// where `fn f(x x: Int)` reuses one identifier as both.
	fields := map[string]int{}
	for i, a := range args {
		fields[a.Name] = i
	}
	return types.NewFieldMap(len(args), fields)
}

// inferFunctionBodies is step 4.
func inferFunctionBodies(env *types.Env, warnings *Warnings, mod *ast.Module, schemes map[string]types.Type) ([]*typedast.Function, error) {
	var functions []*typedast.Function
	for _, stmt := range mod.Statements {
		fn, ok := stmt.(*ast.Function)
		if !ok {
			continue
		}
		declared := schemes[fn.Name].(*types.Fn)

		mark := env.Mark()
		env.EnterLevel()

		args := make([]typedast.TypedArg, len(fn.Args))
		for i, a := range fn.Args {
			env.InsertLocalValue(a.Name, &types.ValueConstructor{Scheme: declared.Args[i]})
			args[i] = typedast.TypedArg{Name: a.Name, Type: declared.Args[i]}
		}

		body, bodyTyp, err := inferBlock(env, warnings, fn.Body)
		if err != nil {
			env.LeaveLevel()
			env.Restore(mark)
			return nil, err
		}
		if err := types.Unify(fn.Location, declared.Retrn, bodyTyp); err != nil {
			env.LeaveLevel()
			env.Restore(mark)
			return nil, err
		}

		env.LeaveLevel()
		env.Restore(mark)
		env.Generalize(declared, env.Level())

		functions = append(functions, &typedast.Function{
			Name:     fn.Name,
			Public:   fn.Public,
			Args:     args,
			Return:   declared.Retrn,
			Body:     body,
			Location: fn.Location,
		})
	}
	return functions, nil
}

// checkPrivateTypeLeaks is step 5: a post-pass over every pub function's
// signature AND every pub ADT's constructor field types (spec §4.6 step 5:
// "every pub function or pub ADT"; §9: this is a post-pass, not part of
// synthesis).
func checkPrivateTypeLeaks(env *types.Env, mod *ast.Module, functions []*typedast.Function, publicTypes map[string]bool) error {
	localNonPublic := map[string]bool{}
	for _, stmt := range mod.Statements {
		switch s := stmt.(type) {
		case *ast.CustomType:
			if !s.Public {
				localNonPublic[s.Name] = true
			}
		case *ast.ExternalType:
			if !s.Public {
				localNonPublic[s.Name] = true
			}
		}
	}
	if len(localNonPublic) == 0 {
		return nil
	}

	for _, fn := range functions {
		if !fn.Public {
			continue
		}
		for _, a := range fn.Args {
			if leaked := findNonPublic(a.Type, localNonPublic); leaked != nil {
				return types.NewPrivateTypeLeak(fn.Location, leaked)
			}
		}
		if leaked := findNonPublic(fn.Return, localNonPublic); leaked != nil {
			return types.NewPrivateTypeLeak(fn.Location, leaked)
		}
	}

	for _, stmt := range mod.Statements {
		ct, ok := stmt.(*ast.CustomType)
		if !ok || !ct.Public {
			continue
		}
		for _, ctor := range ct.Constructors {
			vc, ok := env.LookupModuleValue(ctor.Name)
			if !ok {
				continue
			}
			fn, ok := types.Resolve(vc.Scheme).(*types.Fn)
			if !ok {
				continue
			}
			for _, argTyp := range fn.Args {
				if leaked := findNonPublic(argTyp, localNonPublic); leaked != nil {
					return types.NewPrivateTypeLeak(ctor.Location, leaked)
				}
			}
		}
	}
	return nil
}

func findNonPublic(t types.Type, nonPublic map[string]bool) types.Type {
	switch t := types.Resolve(t).(type) {
	case *types.App:
		if len(t.Module) == 0 && nonPublic[t.Name] {
			return t
		}
		for _, a := range t.Args {
			if leaked := findNonPublic(a, nonPublic); leaked != nil {
				return leaked
			}
		}
	case *types.Fn:
		for _, a := range t.Args {
			if leaked := findNonPublic(a, nonPublic); leaked != nil {
				return leaked
			}
		}
		return findNonPublic(t.Retrn, nonPublic)
	case *types.Tuple:
		for _, e := range t.Elems {
			if leaked := findNonPublic(e, nonPublic); leaked != nil {
				return leaked
			}
		}
	}
	return nil
}

func userTypes(mod *ast.Module, env *types.Env) map[string]*types.TypeConstructor {
	out := map[string]*types.TypeConstructor{}
	for _, stmt := range mod.Statements {
		var name string
		switch s := stmt.(type) {
		case *ast.CustomType:
			name = s.Name
		case *ast.ExternalType:
			name = s.Name
		default:
			continue
		}
		if tc, ok := env.LookupType(name); ok {
			out[name] = tc
		}
	}
	return out
}

func moduleValues(env *types.Env) map[string]*types.ValueConstructor {
	out := map[string]*types.ValueConstructor{}
	for _, name := range env.VariableNames() {
		if vc, ok := env.LookupModuleValue(name); ok {
			out[name] = vc
		}
	}
	return out
}

func moduleAccessors(env *types.Env) map[string]*types.Accessors {
	out := map[string]*types.Accessors{}
	for _, name := range env.TypeNames() {
		if acc, ok := env.LookupAccessors(name); ok {
			out[name] = acc
		}
	}
	return out
}
