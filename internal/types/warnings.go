package types

import "github.com/chenjianxin/gleam/internal/ast"

// Warning is the set of diagnostics accumulated during inference but that
// never abort it (spec §4.7). Warnings carry locations but no severity — the
// caller decides policy (spec §9).
type Warning interface {
	Position() ast.SrcSpan
	warningNode()
}

type baseWarning struct {
	Location ast.SrcSpan
}

func (w baseWarning) Position() ast.SrcSpan { return w.Location }
func (baseWarning) warningNode()            {}

// DeprecatedListPrependSyntax fires on every `|` tail in a list literal
// (spec §9 Open Questions: the conservative choice, warn on every
// occurrence rather than only the first). A `|` tail in a list pattern is
// accepted but does not produce this warning: the pattern inferencer has no
// warning list to add to.
type DeprecatedListPrependSyntax struct {
	baseWarning
}

func NewDeprecatedListPrependSyntax(loc ast.SrcSpan) *DeprecatedListPrependSyntax {
	return &DeprecatedListPrependSyntax{baseWarning{loc}}
}

// Todo fires on every `todo` expression encountered.
type Todo struct {
	baseWarning
	Label *string
}

func NewTodo(loc ast.SrcSpan, label *string) *Todo {
	return &Todo{baseWarning{loc}, label}
}

// ImplicitlyDiscardedResult fires when a non-final statement in a block
// unifies with Result(_, _) and isn't bound by `let _ = ...` (which
// suppresses it).
type ImplicitlyDiscardedResult struct {
	baseWarning
}

func NewImplicitlyDiscardedResult(loc ast.SrcSpan) *ImplicitlyDiscardedResult {
	return &ImplicitlyDiscardedResult{baseWarning{loc}}
}
