package ast

import (
	"fmt"
	"strings"
)

// ListTailKind distinguishes how a list pattern or literal's tail was
// written, so the inferencer can tell deprecated `|` syntax apart from the
// modern `..` spread without re-parsing source text.
type ListTailKind int

const (
	// TailNone means the list has no tail — a fixed-length literal pattern.
	TailNone ListTailKind = iota
	// TailSpread is the modern `[h, ..t]` syntax.
	TailSpread
	// TailDeprecatedPipe is the deprecated `[h | t]` syntax.
	TailDeprecatedPipe
)

// Pattern is a pattern occurring in a let/assert binding, function argument,
// or case clause.
type Pattern interface {
	patternNode()
	Position() SrcSpan
	String() string
}

// PatternDiscard is the wildcard pattern `_`.
type PatternDiscard struct {
	Location SrcSpan
}

func (p *PatternDiscard) patternNode()      {}
func (p *PatternDiscard) Position() SrcSpan { return p.Location }
func (p *PatternDiscard) String() string    { return "_" }

// PatternVar binds a name.
type PatternVar struct {
	Name     string
	Location SrcSpan
}

func (p *PatternVar) patternNode()      {}
func (p *PatternVar) Position() SrcSpan { return p.Location }
func (p *PatternVar) String() string    { return p.Name }

// PatternInt, PatternFloat, PatternString are literal patterns.
type PatternInt struct {
	Value    string
	Location SrcSpan
}

func (p *PatternInt) patternNode()      {}
func (p *PatternInt) Position() SrcSpan { return p.Location }
func (p *PatternInt) String() string    { return p.Value }

type PatternFloat struct {
	Value    string
	Location SrcSpan
}

func (p *PatternFloat) patternNode()      {}
func (p *PatternFloat) Position() SrcSpan { return p.Location }
func (p *PatternFloat) String() string    { return p.Value }

type PatternString struct {
	Value    string
	Location SrcSpan
}

func (p *PatternString) patternNode()      {}
func (p *PatternString) Position() SrcSpan { return p.Location }
func (p *PatternString) String() string    { return fmt.Sprintf("%q", p.Value) }

// PatternList matches a list literal, optionally with a tail binding the
// remainder (spread `..t` or the deprecated `|t`).
type PatternList struct {
	Elements []Pattern
	Tail     Pattern // nil if TailKind == TailNone
	TailKind ListTailKind
	Location SrcSpan
}

func (p *PatternList) patternNode()      {}
func (p *PatternList) Position() SrcSpan { return p.Location }
func (p *PatternList) String() string {
	parts := make([]string, len(p.Elements))
	for i, e := range p.Elements {
		parts[i] = e.String()
	}
	if p.Tail != nil {
		sep := ".."
		if p.TailKind == TailDeprecatedPipe {
			sep = "|"
		}
		return fmt.Sprintf("[%s %s%s]", strings.Join(parts, ", "), sep, p.Tail.String())
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

// PatternTuple matches a fixed-arity tuple.
type PatternTuple struct {
	Elems    []Pattern
	Location SrcSpan
}

func (p *PatternTuple) patternNode()      {}
func (p *PatternTuple) Position() SrcSpan { return p.Location }
func (p *PatternTuple) String() string {
	parts := make([]string, len(p.Elems))
	for i, e := range p.Elems {
		parts[i] = e.String()
	}
	return fmt.Sprintf("tuple(%s)", strings.Join(parts, ", "))
}

// PatternConstructor matches a data constructor, possibly with labelled
// sub-patterns and a spread `..` for the remaining positions.
type PatternConstructor struct {
	Module   []string
	Name     string
	Args     []CallArg[Pattern]
	Spread   bool
	Location SrcSpan
}

func (p *PatternConstructor) patternNode()      {}
func (p *PatternConstructor) Position() SrcSpan { return p.Location }
func (p *PatternConstructor) String() string {
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		if a.HasLabel() {
			parts[i] = fmt.Sprintf("%s: %s", *a.Label, a.Value.String())
		} else {
			parts[i] = a.Value.String()
		}
	}
	if p.Spread {
		parts = append(parts, "..")
	}
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(parts, ", "))
}

// PatternAssign is `pattern as name`, binding name to whatever the nested
// pattern matches in addition to any bindings the nested pattern itself
// introduces.
type PatternAssign struct {
	Name     string
	Pattern  Pattern
	Location SrcSpan
}

func (p *PatternAssign) patternNode()      {}
func (p *PatternAssign) Position() SrcSpan { return p.Location }
func (p *PatternAssign) String() string {
	return fmt.Sprintf("%s as %s", p.Pattern.String(), p.Name)
}

// PatternAlternative is `p1 | p2 | ...` — every alternative must bind the
// same set of names (spec §4.3).
type PatternAlternative struct {
	Patterns []Pattern
	Location SrcSpan
}

func (p *PatternAlternative) patternNode()      {}
func (p *PatternAlternative) Position() SrcSpan { return p.Location }
func (p *PatternAlternative) String() string {
	parts := make([]string, len(p.Patterns))
	for i, alt := range p.Patterns {
		parts[i] = alt.String()
	}
	return strings.Join(parts, " | ")
}
