package types

import (
	"testing"

	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/stretchr/testify/assert"
)

func TestUnknownVariableCandidatesAreSorted(t *testing.T) {
	err := NewUnknownVariable(ast.SrcSpan{}, "missing", []string{"zebra", "apple", "mango"})
	assert.Equal(t, []string{"apple", "mango", "zebra"}, err.Variables)
}

func TestUnknownTypeCandidatesAreSorted(t *testing.T) {
	err := NewUnknownType(ast.SrcSpan{}, "Missing", []string{"String", "Bool", "Int"})
	assert.Equal(t, []string{"Bool", "Int", "String"}, err.Types)
}

func TestDuplicateNameCarriesBothLocations(t *testing.T) {
	first := ast.SrcSpan{Start: 0, End: 3}
	second := ast.SrcSpan{Start: 20, End: 23}
	err := NewDuplicateName(second, "dupe", first)
	assert.Equal(t, first, err.PreviousLocation)
	assert.Equal(t, second, err.Position())
}

func TestErrorsImplementErrorInterface(t *testing.T) {
	var errs []Error = []Error{
		NewCouldNotUnify(ast.SrcSpan{}, Int(), Bool()),
		NewRecursiveType(ast.SrcSpan{}),
		NewIncorrectArity(ast.SrcSpan{}, 2, 1),
		NewOutOfBoundsTupleIndex(ast.SrcSpan{}, 2, 2),
		NewPrivateTypeLeak(ast.SrcSpan{}, &App{Name: "Secret"}),
	}
	for _, e := range errs {
		assert.NotEmpty(t, e.Error())
	}
}
