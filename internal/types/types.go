// Package types implements the value domain of the inferencer: Type, the
// mutable unification-variable cells, the unifier, the layered environment,
// and the error/warning taxonomy.
package types

import (
	"fmt"
	"strings"
)

// Type is the value domain described by spec §3.1: a named application, a
// function arrow, a unification variable, or a tuple.
type Type interface {
	typeNode()
	// String renders the type using the canonical grammar of spec §6. Each
	// call starts a fresh generic-variable naming context, so a single
	// Type's String() is always self-consistent but two separate calls may
	// letter generics differently — callers that need consistent naming
	// across several types in one diagnostic should share a Printer.
	String() string
}

// App is a named type constructor application: List(Int), Bool, a user ADT.
// Equality is nominal — same (Module, Name) with pairwise-unifiable Args.
type App struct {
	Module []string
	Name   string
	Args   []Type
	Public bool
}

func (t *App) typeNode()      {}
func (t *App) String() string { return NewPrinter().Print(t) }

// Fn is a function arrow.
type Fn struct {
	Args  []Type
	Retrn Type
}

func (t *Fn) typeNode()      {}
func (t *Fn) String() string { return NewPrinter().Print(t) }

// Var is a pointer to a mutable unification cell. All Var values that name
// the same variable share the same *Cell — mutating the cell is observed by
// every alias (spec §3.3).
type Var struct {
	Cell *Cell
}

func (t *Var) typeNode()      {}
func (t *Var) String() string { return NewPrinter().Print(t) }

// Tuple is an anonymous, arity-sensitive product.
type Tuple struct {
	Elems []Type
}

func (t *Tuple) typeNode()      {}
func (t *Tuple) String() string { return NewPrinter().Print(t) }

// Cell is the mutable unification cell a Var points at. Exactly one of its
// three states holds at a time (spec §3.1); mutation always replaces State
// wholesale so there is never a torn read of an intermediate mix.
type Cell struct {
	State CellState
}

// CellState is the sum type spec §3.1 calls TypeVar: Unbound, Link, or
// Generic.
type CellState interface {
	cellState()
}

// Unbound is a free variable, not yet solved, introduced at Level.
type Unbound struct {
	ID    uint64
	Level uint32
}

func (Unbound) cellState() {}

// Link is a solved variable — follow Type to find the real type.
type Link struct {
	Type Type
}

func (Link) cellState() {}

// Generic is a quantified variable of a generalized scheme. It is opaque to
// the unifier except via Instantiate (spec §3.1 invariants, §9).
type Generic struct {
	ID uint64
}

func (Generic) cellState() {}

// NewUnboundCell allocates a fresh Unbound cell.
func NewUnboundCell(id uint64, level uint32) *Cell {
	return &Cell{State: Unbound{ID: id, Level: level}}
}

// NewUnboundVar wraps a fresh Unbound cell in a Var type.
func NewUnboundVar(id uint64, level uint32) *Var {
	return &Var{Cell: NewUnboundCell(id, level)}
}

// Resolve follows a chain of Link cells until it reaches a non-Var type, an
// Unbound cell, or a Generic cell. Link chains never loop (spec §3.1
// invariant); this is the only place that assumption is relied upon.
func Resolve(t Type) Type {
	for {
		v, ok := t.(*Var)
		if !ok {
			return t
		}
		link, ok := v.Cell.State.(Link)
		if !ok {
			return t
		}
		t = link.Type
	}
}

// Built-in type constructors. These are never copied into a module's `types`
// map (spec §6); each call builds a fresh App value.
func Int() Type     { return &App{Name: "Int"} }
func Float() Type   { return &App{Name: "Float"} }
func StringT() Type { return &App{Name: "String"} }
func Bool() Type    { return &App{Name: "Bool"} }
func Nil() Type     { return &App{Name: "Nil"} }

func ListOf(elem Type) Type {
	return &App{Name: "List", Args: []Type{elem}}
}

func ResultOf(ok, err Type) Type {
	return &App{Name: "Result", Args: []Type{ok, err}}
}

// IsBuiltinName reports whether name is one of the built-in App type
// constructors that NewEnv seeds into its module types.
func IsBuiltinName(name string) bool {
	switch name {
	case "Int", "Float", "String", "Bool", "Nil", "List", "Result":
		return true
	}
	return false
}

// debugString is a non-canonical, quick representation used only in
// internal panics never meant for users, where canonical letter-naming
// doesn't matter.
func debugString(t Type) string {
	switch t := Resolve(t).(type) {
	case *App:
		if len(t.Args) == 0 {
			return t.Name
		}
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = debugString(a)
		}
		return fmt.Sprintf("%s(%s)", t.Name, strings.Join(parts, ", "))
	case *Fn:
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = debugString(a)
		}
		return fmt.Sprintf("fn(%s) -> %s", strings.Join(parts, ", "), debugString(t.Retrn))
	case *Tuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = debugString(e)
		}
		return fmt.Sprintf("tuple(%s)", strings.Join(parts, ", "))
	case *Var:
		switch s := t.Cell.State.(type) {
		case Unbound:
			return fmt.Sprintf("?%d", s.ID)
		case Generic:
			return fmt.Sprintf("!%d", s.ID)
		default:
			return "?"
		}
	default:
		return "?"
	}
}
