package types

import "github.com/chenjianxin/gleam/internal/ast"

// FieldMap is per-constructor metadata mapping labels to positional indices
// (spec §3.2, §4.5). It is created once at ADT or function declaration and
// never mutated afterward.
type FieldMap struct {
	Arity  int
	Fields map[string]int
}

// NewFieldMap builds a FieldMap for a constructor/function with the given
// arity and label→index pairs.
func NewFieldMap(arity int, fields map[string]int) *FieldMap {
	if fields == nil {
		fields = map[string]int{}
	}
	return &FieldMap{Arity: arity, Fields: fields}
}

// Reorder rearranges args in place so every labelled arg lands at the index
// named by its label in the FieldMap, with positional args filling the
// remaining slots in their original relative order (spec §4.5).
//
// The concrete procedure mirrors the spec exactly: scan left-to-right;
// positional args are left where they are; a labelled arg is swapped with
// whatever currently sits at its target index. Swapping (rather than a
// stable partition-and-place) is what keeps unlabelled args in their
// original relative order without a second pass.
func (fm *FieldMap) Reorder(args []ast.CallArg[any], loc ast.SrcSpan) error {
	if len(args) != fm.Arity {
		return NewIncorrectArity(loc, fm.Arity, len(args))
	}

	// Positional-after-labelled is judged on the order as written, before
	// any swap moves a positional arg behind a labelled one.
	seenLabel := false
	for _, a := range args {
		if a.HasLabel() {
			seenLabel = true
		} else if seenLabel {
			return NewPositionalArgumentAfterLabelled(a.Location)
		}
	}

	for i := 0; i < len(args); i++ {
		if !args[i].HasLabel() {
			continue
		}
		label := *args[i].Label
		target, ok := fm.Fields[label]
		if !ok {
			return NewUnexpectedLabelledArg(args[i].Location, label)
		}
		if target != i {
			args[i], args[target] = args[target], args[i]
			// The arg swapped into position i may itself be labelled and
			// still need to move, or may be a positional arg that was
			// sitting past a labelled one — re-examine this index.
			i--
		}
	}
	return nil
}
