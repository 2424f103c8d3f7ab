package ast

import (
	"fmt"
	"strings"
)

// TypeAst is a type annotation as written in source — the inference core
// resolves these into types.Type via its annotation resolver (see
// internal/infer/annotation.go); it never invents one itself.
type TypeAst interface {
	typeAstNode()
	Position() SrcSpan
	String() string
}

// TypeName refers to a named type constructor, optionally module-qualified
// and applied to argument types: Int, List(a), Module.Name(a, b).
type TypeName struct {
	Module   []string
	Name     string
	Args     []TypeAst
	Location SrcSpan
}

func (t *TypeName) typeAstNode()     {}
func (t *TypeName) Position() SrcSpan { return t.Location }
func (t *TypeName) String() string {
	name := t.Name
	if len(t.Module) > 0 {
		name = strings.Join(t.Module, "/") + "." + t.Name
	}
	if len(t.Args) == 0 {
		return name
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

// TypeVarAst refers to a lower-case type variable in an annotation, e.g. `a`.
type TypeVarAst struct {
	Name     string
	Location SrcSpan
}

func (t *TypeVarAst) typeAstNode()      {}
func (t *TypeVarAst) Position() SrcSpan { return t.Location }
func (t *TypeVarAst) String() string    { return t.Name }

// TypeFnAst is a function-arrow annotation: fn(T1, T2) -> T3.
type TypeFnAst struct {
	Args     []TypeAst
	Return   TypeAst
	Location SrcSpan
}

func (t *TypeFnAst) typeAstNode()      {}
func (t *TypeFnAst) Position() SrcSpan { return t.Location }
func (t *TypeFnAst) String() string {
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("fn(%s) -> %s", strings.Join(args, ", "), t.Return.String())
}

// TypeTupleAst is a tuple annotation: tuple(T1, T2, ...).
type TypeTupleAst struct {
	Elems    []TypeAst
	Location SrcSpan
}

func (t *TypeTupleAst) typeAstNode()      {}
func (t *TypeTupleAst) Position() SrcSpan { return t.Location }
func (t *TypeTupleAst) String() string {
	elems := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		elems[i] = e.String()
	}
	return fmt.Sprintf("tuple(%s)", strings.Join(elems, ", "))
}
