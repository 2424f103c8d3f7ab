package types

import (
	"sort"

	"github.com/chenjianxin/gleam/internal/ast"
)

// Error is the tagged-variant taxonomy of spec §7. Every variant carries at
// least a location; the first error raised aborts the current inference
// unit (spec §5 Cancellation).
type Error interface {
	error
	Position() ast.SrcSpan
	errorNode()
}

type baseError struct {
	Location ast.SrcSpan
}

func (e baseError) Position() ast.SrcSpan { return e.Location }
func (baseError) errorNode()              {}

// CouldNotUnify is the generic unification failure, oriented so the caller's
// asserted direction (expected vs given) survives into the report.
type CouldNotUnify struct {
	baseError
	Expected Type
	Given    Type
}

func (e *CouldNotUnify) Error() string {
	return "expected type " + e.Expected.String() + ", got " + e.Given.String()
}

func NewCouldNotUnify(loc ast.SrcSpan, expected, given Type) *CouldNotUnify {
	return &CouldNotUnify{baseError{loc}, expected, given}
}

// RecursiveType is an occurs-check failure.
type RecursiveType struct {
	baseError
}

func (e *RecursiveType) Error() string { return "recursive type" }

func NewRecursiveType(loc ast.SrcSpan) *RecursiveType {
	return &RecursiveType{baseError{loc}}
}

// UnknownVariable reports a free Var reference, with the candidate names in
// scope sorted deterministically (spec §9 Deterministic diagnostics).
type UnknownVariable struct {
	baseError
	Name      string
	Variables []string
}

func (e *UnknownVariable) Error() string { return "unknown variable: " + e.Name }

func NewUnknownVariable(loc ast.SrcSpan, name string, candidates []string) *UnknownVariable {
	return &UnknownVariable{baseError{loc}, name, sortCandidates(candidates)}
}

// UnknownType reports an unresolvable TypeName annotation.
type UnknownType struct {
	baseError
	Name  string
	Types []string
}

func (e *UnknownType) Error() string { return "unknown type: " + e.Name }

func NewUnknownType(loc ast.SrcSpan, name string, candidates []string) *UnknownType {
	return &UnknownType{baseError{loc}, name, sortCandidates(candidates)}
}

// UnknownField reports a field-access label absent from the accessor map.
type UnknownField struct {
	baseError
	Label  string
	Fields []string
	Typ    Type
}

func (e *UnknownField) Error() string { return "unknown field: " + e.Label }

func NewUnknownField(loc ast.SrcSpan, label string, fields []string, typ Type) *UnknownField {
	return &UnknownField{baseError{loc}, label, sortCandidates(fields), typ}
}

// IncorrectArity reports a call or constructor application with the wrong
// argument count.
type IncorrectArity struct {
	baseError
	Expected int
	Given    int
}

func (e *IncorrectArity) Error() string { return "incorrect arity" }

func NewIncorrectArity(loc ast.SrcSpan, expected, given int) *IncorrectArity {
	return &IncorrectArity{baseError{loc}, expected, given}
}

// IncorrectTypeArity reports a named type applied with the wrong number of
// type arguments.
type IncorrectTypeArity struct {
	baseError
	Name     string
	Expected int
	Given    int
}

func (e *IncorrectTypeArity) Error() string { return "incorrect type arity: " + e.Name }

func NewIncorrectTypeArity(loc ast.SrcSpan, name string, expected, given int) *IncorrectTypeArity {
	return &IncorrectTypeArity{baseError{loc}, name, expected, given}
}

// IncorrectNumClausePatterns reports a case alternative whose pattern count
// doesn't match the subject count.
type IncorrectNumClausePatterns struct {
	baseError
	Expected int
	Given    int
}

func (e *IncorrectNumClausePatterns) Error() string { return "incorrect number of clause patterns" }

func NewIncorrectNumClausePatterns(loc ast.SrcSpan, expected, given int) *IncorrectNumClausePatterns {
	return &IncorrectNumClausePatterns{baseError{loc}, expected, given}
}

// DuplicateName reports two value-level declarations (fn/external fn,
// constructors) sharing a name; PreviousLocation points at the first.
type DuplicateName struct {
	baseError
	Name             string
	PreviousLocation ast.SrcSpan
}

func (e *DuplicateName) Error() string { return "duplicate name: " + e.Name }

func NewDuplicateName(loc ast.SrcSpan, name string, previous ast.SrcSpan) *DuplicateName {
	return &DuplicateName{baseError{loc}, name, previous}
}

// DuplicateTypeName reports two type-level declarations sharing a name.
type DuplicateTypeName struct {
	baseError
	Name             string
	PreviousLocation ast.SrcSpan
}

func (e *DuplicateTypeName) Error() string { return "duplicate type name: " + e.Name }

func NewDuplicateTypeName(loc ast.SrcSpan, name string, previous ast.SrcSpan) *DuplicateTypeName {
	return &DuplicateTypeName{baseError{loc}, name, previous}
}

// DuplicateVarInPattern reports a binder name repeated within one pattern.
type DuplicateVarInPattern struct {
	baseError
	Name string
}

func (e *DuplicateVarInPattern) Error() string { return "duplicate variable in pattern: " + e.Name }

func NewDuplicateVarInPattern(loc ast.SrcSpan, name string) *DuplicateVarInPattern {
	return &DuplicateVarInPattern{baseError{loc}, name}
}

// ExtraVarInAlternativePattern reports a binder present in one alternative
// of `p1 | p2` but absent from another.
type ExtraVarInAlternativePattern struct {
	baseError
	Name string
}

func (e *ExtraVarInAlternativePattern) Error() string {
	return "extra variable in alternative pattern: " + e.Name
}

func NewExtraVarInAlternativePattern(loc ast.SrcSpan, name string) *ExtraVarInAlternativePattern {
	return &ExtraVarInAlternativePattern{baseError{loc}, name}
}

// UnexpectedLabelledArg reports a label not present in the callee's FieldMap.
type UnexpectedLabelledArg struct {
	baseError
	Label string
}

func (e *UnexpectedLabelledArg) Error() string { return "unexpected labelled argument: " + e.Label }

func NewUnexpectedLabelledArg(loc ast.SrcSpan, label string) *UnexpectedLabelledArg {
	return &UnexpectedLabelledArg{baseError{loc}, label}
}

// PositionalArgumentAfterLabelled reports a positional argument following a
// labelled one in a call or constructor pattern.
type PositionalArgumentAfterLabelled struct {
	baseError
}

func (e *PositionalArgumentAfterLabelled) Error() string {
	return "positional argument after labelled argument"
}

func NewPositionalArgumentAfterLabelled(loc ast.SrcSpan) *PositionalArgumentAfterLabelled {
	return &PositionalArgumentAfterLabelled{baseError{loc}}
}

// OutOfBoundsTupleIndex reports `e.N` where N is >= the tuple's arity.
type OutOfBoundsTupleIndex struct {
	baseError
	Index uint64
	Size  int
}

func (e *OutOfBoundsTupleIndex) Error() string { return "out of bounds tuple index" }

func NewOutOfBoundsTupleIndex(loc ast.SrcSpan, index uint64, size int) *OutOfBoundsTupleIndex {
	return &OutOfBoundsTupleIndex{baseError{loc}, index, size}
}

// NotATuple reports `e.N` where e's resolved type is a concrete non-tuple.
type NotATuple struct {
	baseError
	Given Type
}

func (e *NotATuple) Error() string { return "not a tuple: " + e.Given.String() }

func NewNotATuple(loc ast.SrcSpan, given Type) *NotATuple {
	return &NotATuple{baseError{loc}, given}
}

// NotATupleUnbound reports `e.N` where e's type is still an unbound var.
type NotATupleUnbound struct {
	baseError
}

func (e *NotATupleUnbound) Error() string { return "not a tuple (unbound)" }

func NewNotATupleUnbound(loc ast.SrcSpan) *NotATupleUnbound {
	return &NotATupleUnbound{baseError{loc}}
}

// RecordAccessUnknownType reports `e.label` where e's type is still unbound
// at the point of access (spec §9: eager, not deferred).
type RecordAccessUnknownType struct {
	baseError
}

func (e *RecordAccessUnknownType) Error() string { return "record access on unknown type" }

func NewRecordAccessUnknownType(loc ast.SrcSpan) *RecordAccessUnknownType {
	return &RecordAccessUnknownType{baseError{loc}}
}

// PrivateTypeLeak reports a pub signature mentioning a non-pub local type.
type PrivateTypeLeak struct {
	baseError
	Leaked Type
}

func (e *PrivateTypeLeak) Error() string { return "private type leak: " + e.Leaked.String() }

func NewPrivateTypeLeak(loc ast.SrcSpan, leaked Type) *PrivateTypeLeak {
	return &PrivateTypeLeak{baseError{loc}, leaked}
}

// UnnecessarySpreadOperator reports a `..` spread in a pattern that already
// names every positional slot.
type UnnecessarySpreadOperator struct {
	baseError
	Arity int
}

func (e *UnnecessarySpreadOperator) Error() string { return "unnecessary spread operator" }

func NewUnnecessarySpreadOperator(loc ast.SrcSpan, arity int) *UnnecessarySpreadOperator {
	return &UnnecessarySpreadOperator{baseError{loc}, arity}
}

// NonLocalClauseGuardVariable reports a case clause guard referencing any
// name other than one of the clause's own pattern binders — a let-bound name
// from the enclosing function, or another module-level function, alike.
type NonLocalClauseGuardVariable struct {
	baseError
	Name string
}

func (e *NonLocalClauseGuardVariable) Error() string {
	return "non-local clause guard variable: " + e.Name
}

func NewNonLocalClauseGuardVariable(loc ast.SrcSpan, name string) *NonLocalClauseGuardVariable {
	return &NonLocalClauseGuardVariable{baseError{loc}, name}
}

// sortCandidates gives UnknownVariable/UnknownType/UnknownField a stable,
// locale-aware ordering for their candidate-name lists, matching spec §9's
// "sort before serializing" directive. collate.New provides Unicode
// collation; plain sort.Strings would misorder non-ASCII identifiers.
func sortCandidates(names []string) []string {
	out := append([]string(nil), names...)
	col := newCollator()
	sort.Slice(out, func(i, j int) bool {
		return col.CompareString(out[i], out[j]) < 0
	})
	return out
}
