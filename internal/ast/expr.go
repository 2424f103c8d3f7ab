package ast

import (
	"fmt"
	"strings"
)

// Expr is an untyped expression node.
type Expr interface {
	exprNode()
	Position() SrcSpan
	String() string
}

// Int, Float, String are literal expressions.
type Int struct {
	Value    string
	Location SrcSpan
}

func (e *Int) exprNode()        {}
func (e *Int) Position() SrcSpan { return e.Location }
func (e *Int) String() string    { return e.Value }

type Float struct {
	Value    string
	Location SrcSpan
}

func (e *Float) exprNode()        {}
func (e *Float) Position() SrcSpan { return e.Location }
func (e *Float) String() string    { return e.Value }

type String struct {
	Value    string
	Location SrcSpan
}

func (e *String) exprNode()        {}
func (e *String) Position() SrcSpan { return e.Location }
func (e *String) String() string    { return fmt.Sprintf("%q", e.Value) }

// Var references a value by name; it is resolved against local_values then
// module_values (spec §4.4).
type Var struct {
	Name     string
	Location SrcSpan
}

func (e *Var) exprNode()        {}
func (e *Var) Position() SrcSpan { return e.Location }
func (e *Var) String() string    { return e.Name }

// Hole stands in for `_` inside a call's argument list, triggering
// eta-expansion (spec §4.4 Call).
type Hole struct {
	Location SrcSpan
}

func (e *Hole) exprNode()        {}
func (e *Hole) Position() SrcSpan { return e.Location }
func (e *Hole) String() string    { return "_" }

// Arg is a function-literal or external-fn parameter.
type Arg struct {
	Name       string
	Annotation TypeAst // nil if unannotated
	Location   SrcSpan
}

// Fn is a function literal: fn(args) -> retrn? { body }.
type Fn struct {
	Args       []Arg
	Return     TypeAst // nil if unannotated
	Body       []Expr  // block of statements; last is the result
	Location   SrcSpan
}

func (e *Fn) exprNode()        {}
func (e *Fn) Position() SrcSpan { return e.Location }
func (e *Fn) String() string {
	names := make([]string, len(e.Args))
	for i, a := range e.Args {
		names[i] = a.Name
	}
	return fmt.Sprintf("fn(%s) { ... }", strings.Join(names, ", "))
}

// Call is a function application f(args), where args may be labelled and
// may contain holes.
type Call struct {
	Fun      Expr
	Args     []CallArg[Expr]
	Location SrcSpan
}

func (e *Call) exprNode()        {}
func (e *Call) Position() SrcSpan { return e.Location }
func (e *Call) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		if a.HasLabel() {
			parts[i] = fmt.Sprintf("%s: %s", *a.Label, a.Value.String())
		} else {
			parts[i] = a.Value.String()
		}
	}
	return fmt.Sprintf("%s(%s)", e.Fun.String(), strings.Join(parts, ", "))
}

// Pipe is `lhs |> rhs`.
type Pipe struct {
	Left     Expr
	Right    Expr
	Location SrcSpan
}

func (e *Pipe) exprNode()        {}
func (e *Pipe) Position() SrcSpan { return e.Location }
func (e *Pipe) String() string    { return fmt.Sprintf("%s |> %s", e.Left, e.Right) }

// BinOp is a binary operator application; Name is the operator spelling
// (e.g. "+", "+.", "==", "&&").
type BinOp struct {
	Name     string
	Left     Expr
	Right    Expr
	Location SrcSpan
}

func (e *BinOp) exprNode()        {}
func (e *BinOp) Position() SrcSpan { return e.Location }
func (e *BinOp) String() string    { return fmt.Sprintf("%s %s %s", e.Left, e.Name, e.Right) }

// TupleLit is tuple(e1, e2, ...).
type TupleLit struct {
	Elems    []Expr
	Location SrcSpan
}

func (e *TupleLit) exprNode()        {}
func (e *TupleLit) Position() SrcSpan { return e.Location }
func (e *TupleLit) String() string {
	parts := make([]string, len(e.Elems))
	for i, el := range e.Elems {
		parts[i] = el.String()
	}
	return fmt.Sprintf("tuple(%s)", strings.Join(parts, ", "))
}

// TupleIndex is e.N.
type TupleIndex struct {
	Tuple    Expr
	Index    uint64
	Location SrcSpan
}

func (e *TupleIndex) exprNode()        {}
func (e *TupleIndex) Position() SrcSpan { return e.Location }
func (e *TupleIndex) String() string    { return fmt.Sprintf("%s.%d", e.Tuple, e.Index) }

// FieldAccess is e.label.
type FieldAccess struct {
	Container Expr
	Label     string
	Location  SrcSpan
}

func (e *FieldAccess) exprNode()        {}
func (e *FieldAccess) Position() SrcSpan { return e.Location }
func (e *FieldAccess) String() string    { return fmt.Sprintf("%s.%s", e.Container, e.Label) }

// ListLit is a list literal, with an optional tail (spread `..tail` or the
// deprecated `|tail`).
type ListLit struct {
	Elements []Expr
	Tail     Expr // nil if TailKind == TailNone
	TailKind ListTailKind
	Location SrcSpan
}

func (e *ListLit) exprNode()        {}
func (e *ListLit) Position() SrcSpan { return e.Location }
func (e *ListLit) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	if e.Tail != nil {
		sep := ".."
		if e.TailKind == TailDeprecatedPipe {
			sep = "|"
		}
		return fmt.Sprintf("[%s %s%s]", strings.Join(parts, ", "), sep, e.Tail)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

// Let is `let pattern = value  body`.
type Let struct {
	Pattern    Pattern
	Annotation TypeAst // optional annotation on pattern
	Value      Expr
	Body       []Expr
	Location   SrcSpan
}

func (e *Let) exprNode()        {}
func (e *Let) Position() SrcSpan { return e.Location }
func (e *Let) String() string    { return fmt.Sprintf("let %s = %s", e.Pattern, e.Value) }

// Assert is `assert pattern = value  body` — like Let but the pattern may be
// refutable (spec §4.4 Assert).
type Assert struct {
	Pattern    Pattern
	Annotation TypeAst
	Value      Expr
	Body       []Expr
	Location   SrcSpan
}

func (e *Assert) exprNode()        {}
func (e *Assert) Position() SrcSpan { return e.Location }
func (e *Assert) String() string    { return fmt.Sprintf("assert %s = %s", e.Pattern, e.Value) }

// ClauseAlternative is one alternative of a case clause: one pattern per
// subject.
type ClauseAlternative struct {
	Patterns []Pattern
	Location SrcSpan
}

// Clause is `alt1 | alt2 | ... if guard -> body`.
type Clause struct {
	Alternatives []ClauseAlternative
	Guard        Expr // nil if absent
	Body         []Expr
	Location     SrcSpan
}

// Case is `case subjects { clause* }`.
type Case struct {
	Subjects []Expr
	Clauses  []Clause
	Location SrcSpan
}

func (e *Case) exprNode()        {}
func (e *Case) Position() SrcSpan { return e.Location }
func (e *Case) String() string {
	subjects := make([]string, len(e.Subjects))
	for i, s := range e.Subjects {
		subjects[i] = s.String()
	}
	return fmt.Sprintf("case %s { ... }", strings.Join(subjects, ", "))
}

// Todo is an unimplemented placeholder expression.
type Todo struct {
	Label    *string
	Location SrcSpan
}

func (e *Todo) exprNode()        {}
func (e *Todo) Position() SrcSpan { return e.Location }
func (e *Todo) String() string {
	if e.Label != nil {
		return fmt.Sprintf("todo(%q)", *e.Label)
	}
	return "todo"
}
