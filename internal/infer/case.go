package infer

import (
	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/chenjianxin/gleam/internal/typedast"
	"github.com/chenjianxin/gleam/internal/types"
)

// inferCase types `case subjects { clause* }` per spec §4.4 Case.
func inferCase(env *types.Env, warnings *Warnings, e *ast.Case) (typedast.Expr, error) {
	n := len(e.Subjects)
	subjects := make([]typedast.Expr, n)
	subjectTypes := make([]types.Type, n)
	for i, s := range e.Subjects {
		typed, err := Infer(env, warnings, s)
		if err != nil {
			return nil, err
		}
		subjects[i] = typed
		subjectTypes[i] = typed.Typ()
	}

	var resultTyp types.Type
	clauses := make([]typedast.Clause, len(e.Clauses))
	for ci, clause := range e.Clauses {
		typedClause, err := inferClause(env, warnings, clause, n, subjectTypes)
		if err != nil {
			return nil, err
		}
		if resultTyp == nil {
			resultTyp = typedClause.Body[len(typedClause.Body)-1].Typ()
		} else if err := types.Unify(clause.Location, resultTyp, typedClause.Body[len(typedClause.Body)-1].Typ()); err != nil {
			return nil, err
		}
		clauses[ci] = typedClause
	}
	if resultTyp == nil {
		resultTyp = env.FreshUnbound()
	}

	return typedast.NewCase(e.Location, resultTyp, subjects, clauses), nil
}

func inferClause(env *types.Env, warnings *Warnings, clause ast.Clause, n int, subjectTypes []types.Type) (typedast.Clause, error) {
	mark := env.Mark()
	defer env.Restore(mark)

	alternatives := make([][]typedast.Pattern, len(clause.Alternatives))
	var patternNames map[string]bool

	for ai, alt := range clause.Alternatives {
		if len(alt.Patterns) != n {
			return typedast.Clause{}, types.NewIncorrectNumClausePatterns(alt.Location, n, len(alt.Patterns))
		}
		typedPatterns := make([]typedast.Pattern, n)
		for pi, p := range alt.Patterns {
			typed, err := InferPattern(env, p, subjectTypes[pi])
			if err != nil {
				return typedast.Clause{}, err
			}
			typedPatterns[pi] = typed
		}
		alternatives[ai] = typedPatterns
		if ai == 0 {
			patternNames = boundNamesOf(alt.Patterns)
		}
	}

	var guard typedast.Expr
	if clause.Guard != nil {
		if err := checkGuardIsLocal(clause.Guard, patternNames); err != nil {
			return typedast.Clause{}, err
		}
		typed, err := Infer(env, warnings, clause.Guard)
		if err != nil {
			return typedast.Clause{}, err
		}
		if err := types.Unify(clause.Guard.Position(), types.Bool(), typed.Typ()); err != nil {
			return typedast.Clause{}, err
		}
		guard = typed
	}

	body, _, err := inferBlock(env, warnings, clause.Body)
	if err != nil {
		return typedast.Clause{}, err
	}

	return typedast.Clause{Alternatives: alternatives, Guard: guard, Body: body}, nil
}

func boundNamesOf(patterns []ast.Pattern) map[string]bool {
	names := map[string]bool{}
	var walk func(ast.Pattern)
	walk = func(p ast.Pattern) {
		switch p := p.(type) {
		case *ast.PatternVar:
			names[p.Name] = true
		case *ast.PatternAssign:
			names[p.Name] = true
			walk(p.Pattern)
		case *ast.PatternList:
			for _, e := range p.Elements {
				walk(e)
			}
			if p.Tail != nil {
				walk(p.Tail)
			}
		case *ast.PatternTuple:
			for _, e := range p.Elems {
				walk(e)
			}
		case *ast.PatternConstructor:
			for _, a := range p.Args {
				walk(a.Value)
			}
		case *ast.PatternAlternative:
			for _, alt := range p.Patterns {
				walk(alt)
			}
		}
	}
	for _, p := range patterns {
		walk(p)
	}
	return names
}

// checkGuardIsLocal rejects a guard expression referencing any name other
// than one of this clause's own pattern binders (spec §4.4:
// NonLocalClauseGuardVariable). That excludes both a let-bound name from the
// enclosing function's own body and a sibling module-level function —
// referencing `one` from `main`'s guard in
// `fn one() { 1 } fn main() { case 1 { _ if one -> 1 } }` must be rejected
// even though `one` resolves fine as a module value everywhere else.
func checkGuardIsLocal(guard ast.Expr, patternNames map[string]bool) error {
	var firstErr error
	var walk func(ast.Expr)
	walk = func(e ast.Expr) {
		if firstErr != nil {
			return
		}
		v, ok := e.(*ast.Var)
		if !ok {
			walkSubexprs(e, walk)
			return
		}
		if patternNames[v.Name] {
			return
		}
		firstErr = types.NewNonLocalClauseGuardVariable(v.Location, v.Name)
	}
	walk(guard)
	return firstErr
}

// walkSubexprs visits the immediate child expressions of e, for the guard
// locality check above. It does not need to be exhaustive over every
// expression kind a guard could legally contain beyond var refs, binops,
// tuples, and field/tuple access, since those are the forms the grammar
// permits inside a guard.
func walkSubexprs(e ast.Expr, visit func(ast.Expr)) {
	switch e := e.(type) {
	case *ast.BinOp:
		visit(e.Left)
		visit(e.Right)
	case *ast.TupleLit:
		for _, el := range e.Elems {
			visit(el)
		}
	case *ast.TupleIndex:
		visit(e.Tuple)
	case *ast.FieldAccess:
		visit(e.Container)
	case *ast.Call:
		visit(e.Fun)
		for _, a := range e.Args {
			visit(a.Value)
		}
	}
}
