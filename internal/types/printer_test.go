package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterBuiltins(t *testing.T) {
	assert.Equal(t, "Int", Int().String())
	assert.Equal(t, "Float", Float().String())
	assert.Equal(t, "Bool", Bool().String())
}

func TestPrinterListAndTuple(t *testing.T) {
	assert.Equal(t, "List(Int)", ListOf(Int()).String())
	tup := &Tuple{Elems: []Type{Int(), Float()}}
	assert.Equal(t, "tuple(Int, Float)", tup.String())
}

func TestPrinterFn(t *testing.T) {
	fn := &Fn{Args: []Type{Int(), Bool()}, Retrn: StringT()}
	assert.Equal(t, "fn(Int, Bool) -> String", fn.String())
}

func TestPrinterQualifiedName(t *testing.T) {
	app := &App{Module: []string{"some", "module"}, Name: "Thing"}
	assert.Equal(t, "some/module.Thing", app.String())
}

func TestPrinterGenericsLetteredByFirstOccurrence(t *testing.T) {
	a := &Var{Cell: &Cell{State: Generic{ID: 7}}}
	b := &Var{Cell: &Cell{State: Generic{ID: 9}}}
	fn := &Fn{Args: []Type{b, a}, Retrn: a}

	p := NewPrinter()
	assert.Equal(t, "fn(a, b) -> b", p.Print(fn), "generics are lettered by declaration order within one Print call, not by id")
}

func TestPrinterSharesNamingAcrossCalls(t *testing.T) {
	shared := &Var{Cell: &Cell{State: Generic{ID: 1}}}
	p := NewPrinter()
	first := p.Print(shared)
	second := p.Print(&Fn{Args: []Type{shared}, Retrn: Int()})
	assert.Equal(t, "fn("+first+") -> Int", second)
}
