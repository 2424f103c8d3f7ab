// Package fixtures hand-builds the untyped ASTs for the worked scenarios of
// spec §8, since this repository has no lexer or parser (SPEC_FULL.md §13).
// Both the test suite and cmd/typecheck's demo CLI share these trees so a
// change to one never drifts from the other.
package fixtures

import (
	"github.com/chenjianxin/gleam/internal/ast"
)

// Fixture pairs a human-readable scenario with the module tree that exercises
// it.
type Fixture struct {
	Name        string
	Source      string // the Gleam-like source the module tree represents
	Module      *ast.Module
	WantSummary string // one-line description of the expected outcome, for display only
}

func loc(start, end uint32) ast.SrcSpan { return ast.SrcSpan{Start: start, End: end} }

func fn(name string, public bool, args []ast.Arg, ret ast.TypeAst, body []ast.Expr, at ast.SrcSpan) *ast.Function {
	return &ast.Function{Name: name, Public: public, Args: args, Return: ret, Body: body, Location: at}
}

// All returns every fixture, in spec §8's table order.
func All() []Fixture {
	return []Fixture{
		addMismatch(),
		identityGeneralization(),
		tupleIndexOk(),
		tupleIndexOutOfBounds(),
		boxAccessor(),
		duplicateName(),
		forwardReferenceADTs(),
		privateTypeLeak(),
	}
}

// addMismatch is `1 + 1.0`.
func addMismatch() Fixture {
	body := &ast.BinOp{
		Name:     "+",
		Left:     &ast.Int{Value: "1", Location: loc(0, 1)},
		Right:    &ast.Float{Value: "1.0", Location: loc(4, 7)},
		Location: loc(0, 7),
	}
	return Fixture{
		Name:   "add-mismatch",
		Source: "1 + 1.0",
		Module: &ast.Module{
			Name: []string{"scenarios", "add_mismatch"},
			Statements: []ast.Stmt{
				fn("main", true, nil, nil, []ast.Expr{body}, loc(0, 7)),
			},
		},
		WantSummary: "CouldNotUnify{expected: Int, given: Float, location: (4,7)}",
	}
}

// identityGeneralization is `let id = fn(x) { x } id(1)`.
func identityGeneralization() Fixture {
	body := &ast.Let{
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
	return Fixture{
		Name:   "identity-generalization",
		Source: "let id = fn(x) { x } id(1)",
		Module: &ast.Module{
			Name: []string{"scenarios", "identity"},
			Statements: []ast.Stmt{
				fn("main", true, nil, nil, []ast.Expr{body}, ast.SrcSpan{}),
			},
		},
		WantSummary: "Int",
	}
}

// tupleIndexOk is `tuple(1, 2.0).0`.
func tupleIndexOk() Fixture {
	body := &ast.TupleIndex{
		Tuple: &ast.TupleLit{Elems: []ast.Expr{
			&ast.Int{Value: "1"},
			&ast.Float{Value: "2.0"},
		}},
		Index: 0,
	}
	return Fixture{
		Name:   "tuple-index-ok",
		Source: "tuple(1, 2.0).0",
		Module: &ast.Module{
			Name: []string{"scenarios", "tuple_index_ok"},
			Statements: []ast.Stmt{
				fn("main", true, nil, nil, []ast.Expr{body}, ast.SrcSpan{}),
			},
		},
		WantSummary: "Int",
	}
}

// tupleIndexOutOfBounds is `tuple(0, 1).2`.
func tupleIndexOutOfBounds() Fixture {
	body := &ast.TupleIndex{
		Tuple: &ast.TupleLit{Elems: []ast.Expr{
			&ast.Int{Value: "0"},
			&ast.Int{Value: "1"},
		}},
		Index: 2,
	}
	return Fixture{
		Name:   "tuple-index-out-of-bounds",
		Source: "tuple(0, 1).2",
		Module: &ast.Module{
			Name: []string{"scenarios", "tuple_index_oob"},
			Statements: []ast.Stmt{
				fn("main", true, nil, nil, []ast.Expr{body}, ast.SrcSpan{}),
			},
		},
		WantSummary: "OutOfBoundsTupleIndex{index: 2, size: 2}",
	}
}

// boxAccessor is `pub type Box(a) { Box(inner: a) } pub fn f(b: Box(Int)) { b.inner }`.
func boxAccessor() Fixture {
	label := "inner"
	boxType := &ast.CustomType{
		Name:       "Box",
		Public:     true,
		Parameters: []string{"a"},
		Constructors: []ast.Constructor{
			{
				Name: "Box",
				Args: []ast.ConstructorArg{
					{Label: &label, Annotation: &ast.TypeVarAst{Name: "a"}},
				},
			},
		},
	}
	f := fn(
		"f", true,
		[]ast.Arg{{Name: "b", Annotation: &ast.TypeName{Name: "Box", Args: []ast.TypeAst{&ast.TypeName{Name: "Int"}}}}},
		nil,
		[]ast.Expr{&ast.FieldAccess{Container: &ast.Var{Name: "b"}, Label: "inner"}},
		ast.SrcSpan{},
	)
	return Fixture{
		Name:   "box-accessor",
		Source: "pub type Box(a) { Box(inner: a) } pub fn f(b: Box(Int)) { b.inner }",
		Module: &ast.Module{
			Name:       []string{"scenarios", "box_accessor"},
			Statements: []ast.Stmt{boxType, f},
		},
		WantSummary: "f : fn(Box(Int)) -> Int",
	}
}

// duplicateName is `fn dupe() { 1 } fn dupe() { 2 }`.
func duplicateName() Fixture {
	return Fixture{
		Name:   "duplicate-name",
		Source: "fn dupe() { 1 } fn dupe() { 2 }",
		Module: &ast.Module{
			Name: []string{"scenarios", "duplicate_name"},
			Statements: []ast.Stmt{
				fn("dupe", false, nil, nil, []ast.Expr{&ast.Int{Value: "1"}}, loc(0, 15)),
				fn("dupe", false, nil, nil, []ast.Expr{&ast.Int{Value: "2"}}, loc(16, 31)),
			},
		},
		WantSummary: "DuplicateName{name: \"dupe\"}",
	}
}

// forwardReferenceADTs is `pub type I { I(Num) } pub type Num { Num }`.
func forwardReferenceADTs() Fixture {
	iType := &ast.CustomType{
		Name:   "I",
		Public: true,
		Constructors: []ast.Constructor{
			{Name: "I", Args: []ast.ConstructorArg{{Annotation: &ast.TypeName{Name: "Num"}}}},
		},
	}
	numType := &ast.CustomType{
		Name:         "Num",
		Public:       true,
		Constructors: []ast.Constructor{{Name: "Num"}},
	}
	return Fixture{
		Name:   "forward-reference-adts",
		Source: "pub type I { I(Num) } pub type Num { Num }",
		Module: &ast.Module{
			Name:       []string{"scenarios", "forward_reference"},
			Statements: []ast.Stmt{iType, numType},
		},
		WantSummary: "succeeds",
	}
}

// privateTypeLeak is
// `external type PrivateType pub type LeakType { Variant(PrivateType) }`.
func privateTypeLeak() Fixture {
	privateType := &ast.ExternalType{Name: "PrivateType"}
	leakType := &ast.CustomType{
		Name:   "LeakType",
		Public: true,
		Constructors: []ast.Constructor{
			{Name: "Variant", Args: []ast.ConstructorArg{{Annotation: &ast.TypeName{Name: "PrivateType"}}}},
		},
	}
	return Fixture{
		Name:   "private-type-leak",
		Source: "external type PrivateType pub type LeakType { Variant(PrivateType) }",
		Module: &ast.Module{
			Name:       []string{"scenarios", "private_type_leak"},
			Statements: []ast.Stmt{privateType, leakType},
		},
		WantSummary: "PrivateTypeLeak{leaked: PrivateType}",
	}
}
