package types

import "github.com/chenjianxin/gleam/internal/ast"

// ValueConstructor is a value-level binding: a data constructor or a
// function, along with its scheme (a Type that may contain Generic leaves)
// and, if labelled, the FieldMap used to reorder call/pattern arguments.
type ValueConstructor struct {
	Scheme   Type
	Origin   Origin
	FieldMap *FieldMap
}

// Origin distinguishes a value declared in the current module from one
// brought in by an import.
type Origin int

const (
	OriginLocal Origin = iota
	OriginImported
)

// TypeConstructor is a type-level binding: the shape a named type was
// declared with, used to validate TypeName annotations and App arities.
type TypeConstructor struct {
	Arity  int
	Public bool
}

// AccessorField is one entry of an AccessorsMap: the positional index and
// field type a label resolves to.
type AccessorField struct {
	Index int
	Typ   Type
}

// AccessorsMap maps field labels to their (index, type) for a type whose
// single constructor has every field labelled (spec §4.4 Record field
// access).
type AccessorsMap map[string]AccessorField

// Accessors bundles a type's AccessorsMap with the type's own declared
// parameters, in declaration order. A field's stored Typ is expressed in
// terms of those parameters (e.g. `a` for `Box(a) { Box(inner: a) }`); a
// use site with concrete type arguments (`Box(Int)`) must substitute through
// InstantiateField to get the field's type at that site, rather than using
// Typ directly.
type Accessors struct {
	Params []Type
	Fields AccessorsMap
}

// InstantiateField substitutes acc's declared parameters with appArgs
// throughout field.Typ, e.g. turning `a` into `Int` for a `Box(Int)` access.
func InstantiateField(acc *Accessors, field AccessorField, appArgs []Type) Type {
	subst := map[*Cell]Type{}
	for i, p := range acc.Params {
		if i >= len(appArgs) {
			break
		}
		if v, ok := p.(*Var); ok {
			subst[v.Cell] = appArgs[i]
		}
	}
	return substCells(field.Typ, subst)
}

func substCells(t Type, subst map[*Cell]Type) Type {
	switch t := t.(type) {
	case *App:
		args := make([]Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = substCells(a, subst)
		}
		return &App{Module: t.Module, Name: t.Name, Args: args, Public: t.Public}
	case *Fn:
		args := make([]Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = substCells(a, subst)
		}
		return &Fn{Args: args, Retrn: substCells(t.Retrn, subst)}
	case *Tuple:
		elems := make([]Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = substCells(e, subst)
		}
		return &Tuple{Elems: elems}
	case *Var:
		// Check subst by the cell's own identity before following a Link —
		// generalizing a type constructor's parameters relinks its param
		// cells to fresh Generic vars (see registerOneType), so the cell a
		// field was declared against is exactly the one InstantiateField
		// needs to match, not whatever it now points to.
		if r, ok := subst[t.Cell]; ok {
			return r
		}
		if link, ok := t.Cell.State.(Link); ok {
			return substCells(link.Type, subst)
		}
		return t
	default:
		return t
	}
}

// undoAction restores one piece of mutated Env state on scope exit,
// including the error path (spec §5, §9: snapshot-and-restore via undo log
// rather than copying the whole env).
type undoAction func(e *Env)

// Env is the layered environment of spec §3.2/§4.2: fresh-id counter,
// current generalization level, and the value/type/accessor/alias maps. It
// is owned by the module inferencer for the lifetime of one module's
// inference.
type Env struct {
	nextID uint64
	level  uint32

	localValues map[string]*ValueConstructor

	moduleTypes  map[string]*TypeConstructor
	moduleValues map[string]*ValueConstructor
	accessors    map[string]*Accessors
	typeAliases  map[string]*TypeAliasScheme

	undo []undoAction
}

// TypeAliasScheme records a declared `type Name(params) = annotation` for
// later expansion at use sites.
type TypeAliasScheme struct {
	Parameters []string
	// Expand is supplied by the annotation resolver (internal/infer) at
	// registration time; Env only stores it.
	Expand func(args []Type) Type
}

// NewEnv creates an empty Env seeded with the built-in type constructors
// (spec §4.2: module_types keys include built-ins plus user types).
func NewEnv() *Env {
	e := &Env{
		localValues:  map[string]*ValueConstructor{},
		moduleTypes:  map[string]*TypeConstructor{},
		moduleValues: map[string]*ValueConstructor{},
		accessors:    map[string]*Accessors{},
		typeAliases:  map[string]*TypeAliasScheme{},
	}
	for _, builtin := range []struct {
		name  string
		arity int
	}{
		{"Int", 0}, {"Float", 0}, {"String", 0}, {"Bool", 0}, {"Nil", 0},
		{"List", 1}, {"Result", 2},
	} {
		e.moduleTypes[builtin.name] = &TypeConstructor{Arity: builtin.arity, Public: true}
	}
	return e
}

// Level returns the current generalization level.
func (e *Env) Level() uint32 { return e.level }

// EnterLevel bumps the level on entering a let/assert binding (spec §4.2).
func (e *Env) EnterLevel() { e.level++ }

// LeaveLevel restores the level on leaving a let/assert binding.
func (e *Env) LeaveLevel() { e.level-- }

// FreshUnbound allocates a new Unbound var at the current level.
func (e *Env) FreshUnbound() *Var {
	e.nextID++
	return NewUnboundVar(e.nextID, e.level)
}

// FreshGeneric allocates a new Generic var, for hand-building a scheme. The
// annotation resolver does not use it: it allocates Unbound vars and relies
// on Generalize.
func (e *Env) FreshGeneric() *Var {
	e.nextID++
	return &Var{Cell: &Cell{State: Generic{ID: e.nextID}}}
}

// Instantiate deep-copies scheme, replacing every Generic leaf with a fresh
// Unbound var at the current level. Two occurrences of the same Generic id
// within scheme receive the *same* fresh Unbound (spec §4.2).
func (e *Env) Instantiate(scheme Type) Type {
	subst := map[uint64]*Var{}
	return e.instantiate(scheme, subst)
}

func (e *Env) instantiate(t Type, subst map[uint64]*Var) Type {
	switch t := t.(type) {
	case *App:
		args := make([]Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = e.instantiate(a, subst)
		}
		return &App{Module: t.Module, Name: t.Name, Args: args, Public: t.Public}
	case *Fn:
		args := make([]Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = e.instantiate(a, subst)
		}
		return &Fn{Args: args, Retrn: e.instantiate(t.Retrn, subst)}
	case *Tuple:
		elems := make([]Type, len(t.Elems))
		for i, el := range t.Elems {
			elems[i] = e.instantiate(el, subst)
		}
		return &Tuple{Elems: elems}
	case *Var:
		switch s := t.Cell.State.(type) {
		case Link:
			return e.instantiate(s.Type, subst)
		case Generic:
			if v, ok := subst[s.ID]; ok {
				return v
			}
			v := e.FreshUnbound()
			subst[s.ID] = v
			return v
		default: // Unbound: not part of the scheme, shared as-is
			return t
		}
	default:
		return t
	}
}

// Generalize converts every Unbound var reachable in typ whose level is
// greater than boundary into a Generic, by rewriting its cell to
// Link(Generic(id)) (spec §4.2, §9: Generic and Unbound are two states of
// the same variable).
func (e *Env) Generalize(typ Type, boundary uint32) Type {
	seen := map[*Cell]bool{}
	e.generalize(typ, boundary, seen)
	return typ
}

func (e *Env) generalize(t Type, boundary uint32, seen map[*Cell]bool) {
	switch t := t.(type) {
	case *App:
		for _, a := range t.Args {
			e.generalize(a, boundary, seen)
		}
	case *Fn:
		for _, a := range t.Args {
			e.generalize(a, boundary, seen)
		}
		e.generalize(t.Retrn, boundary, seen)
	case *Tuple:
		for _, el := range t.Elems {
			e.generalize(el, boundary, seen)
		}
	case *Var:
		if seen[t.Cell] {
			return
		}
		seen[t.Cell] = true
		switch s := t.Cell.State.(type) {
		case Link:
			e.generalize(s.Type, boundary, seen)
		case Unbound:
			if s.Level > boundary {
				e.nextID++
				t.Cell.State = Link{Type: &Var{Cell: &Cell{State: Generic{ID: e.nextID}}}}
			}
		}
	}
}

// InsertLocalValue binds name in the innermost scope, recording an undo
// action that restores whatever was bound (or unbound) before.
func (e *Env) InsertLocalValue(name string, vc *ValueConstructor) {
	prev, had := e.localValues[name]
	e.localValues[name] = vc
	e.undo = append(e.undo, func(env *Env) {
		if had {
			env.localValues[name] = prev
		} else {
			delete(env.localValues, name)
		}
	})
}

// Mark returns the current length of the undo log, for a later Restore.
func (e *Env) Mark() int { return len(e.undo) }

// Restore undoes every local mutation recorded since mark, in reverse
// order. Called on every scope exit, including the error path (spec §5).
func (e *Env) Restore(mark int) {
	for i := len(e.undo) - 1; i >= mark; i-- {
		e.undo[i](e)
	}
	e.undo = e.undo[:mark]
}

// LookupVariable resolves name against local_values then module_values
// (spec §4.4 Variable).
func (e *Env) LookupVariable(name string) (*ValueConstructor, bool) {
	if vc, ok := e.localValues[name]; ok {
		return vc, true
	}
	if vc, ok := e.moduleValues[name]; ok {
		return vc, true
	}
	return nil, false
}

// VariableNames returns every name currently visible via LookupVariable, for
// UnknownVariable's candidate list.
func (e *Env) VariableNames() []string {
	names := make([]string, 0, len(e.localValues)+len(e.moduleValues))
	for n := range e.localValues {
		names = append(names, n)
	}
	for n := range e.moduleValues {
		if _, local := e.localValues[n]; !local {
			names = append(names, n)
		}
	}
	return names
}

// InsertModuleValue registers a module-level value (function or
// constructor), used by module-inference steps 2 and 3.
func (e *Env) InsertModuleValue(name string, vc *ValueConstructor) {
	e.moduleValues[name] = vc
}

// LookupModuleValue looks up a module-level value without consulting
// localValues, used by the module inferencer's post-passes (the private-type
// leak check and the assembly of the module's values).
func (e *Env) LookupModuleValue(name string) (*ValueConstructor, bool) {
	vc, ok := e.moduleValues[name]
	return vc, ok
}

// InsertType registers a type-level declaration.
func (e *Env) InsertType(name string, tc *TypeConstructor) {
	e.moduleTypes[name] = tc
}

// LookupType resolves a TypeName to its declared shape.
func (e *Env) LookupType(name string) (*TypeConstructor, bool) {
	tc, ok := e.moduleTypes[name]
	return tc, ok
}

// TypeNames returns every registered type name, for UnknownType's candidate
// list.
func (e *Env) TypeNames() []string {
	names := make([]string, 0, len(e.moduleTypes))
	for n := range e.moduleTypes {
		names = append(names, n)
	}
	return names
}

// InsertAlias registers a type alias scheme.
func (e *Env) InsertAlias(name string, alias *TypeAliasScheme) {
	e.typeAliases[name] = alias
}

// LookupAlias resolves a type alias by name.
func (e *Env) LookupAlias(name string) (*TypeAliasScheme, bool) {
	a, ok := e.typeAliases[name]
	return a, ok
}

// InsertAccessors registers the accessor map built for a single-constructor
// labelled record type (spec §4.4 Accessors map).
func (e *Env) InsertAccessors(typeName string, accessors *Accessors) {
	e.accessors[typeName] = accessors
}

// LookupAccessors returns the accessors for typeName, if any were built.
func (e *Env) LookupAccessors(typeName string) (*Accessors, bool) {
	a, ok := e.accessors[typeName]
	return a, ok
}

// UnknownVariableError builds an UnknownVariable at loc for name, populating
// its candidate list from the current scope.
func (e *Env) UnknownVariableError(loc ast.SrcSpan, name string) *UnknownVariable {
	return NewUnknownVariable(loc, name, e.VariableNames())
}

// UnknownTypeError builds an UnknownType at loc for name, populating its
// candidate list from the registered types.
func (e *Env) UnknownTypeError(loc ast.SrcSpan, name string) *UnknownType {
	return NewUnknownType(loc, name, e.TypeNames())
}
