package types

import "github.com/chenjianxin/gleam/internal/ast"

// Unify equates expected and given by mutating Unbound cells, following
// spec §4.1's algorithm exactly, including which side's location survives
// into a CouldNotUnify (orientation is preserved: expected stays expected).
func Unify(loc ast.SrcSpan, expected, given Type) error {
	expected = Resolve(expected)
	given = Resolve(given)

	if ev, ok := expected.(*Var); ok {
		if gv, ok := given.(*Var); ok && ev.Cell == gv.Cell {
			return nil
		}
		return bindVar(loc, ev, given)
	}
	if gv, ok := given.(*Var); ok {
		return bindVar(loc, gv, expected)
	}

	switch e := expected.(type) {
	case *App:
		g, ok := given.(*App)
		if !ok || !sameName(e, g) {
			return NewCouldNotUnify(loc, expected, given)
		}
		if len(e.Args) != len(g.Args) {
			return NewIncorrectTypeArity(loc, e.Name, len(e.Args), len(g.Args))
		}
		for i := range e.Args {
			if err := Unify(loc, e.Args[i], g.Args[i]); err != nil {
				return err
			}
		}
		return nil
	case *Fn:
		g, ok := given.(*Fn)
		if !ok || len(e.Args) != len(g.Args) {
			return NewCouldNotUnify(loc, expected, given)
		}
		for i := range e.Args {
			if err := Unify(loc, e.Args[i], g.Args[i]); err != nil {
				return err
			}
		}
		return Unify(loc, e.Retrn, g.Retrn)
	case *Tuple:
		g, ok := given.(*Tuple)
		if !ok || len(e.Elems) != len(g.Elems) {
			return NewCouldNotUnify(loc, expected, given)
		}
		for i := range e.Elems {
			if err := Unify(loc, e.Elems[i], g.Elems[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return NewCouldNotUnify(loc, expected, given)
	}
}

func sameName(a, b *App) bool {
	if a.Name != b.Name || len(a.Module) != len(b.Module) {
		return false
	}
	for i := range a.Module {
		if a.Module[i] != b.Module[i] {
			return false
		}
	}
	return true
}

// bindVar binds variable v's cell to target, after the occurs check and
// level-lowering (spec §4.1 step 3). v has already been through Resolve, so
// its cell is guaranteed Unbound.
func bindVar(loc ast.SrcSpan, v *Var, target Type) error {
	unbound := v.Cell.State.(Unbound)
	if occurs(v.Cell, target) {
		return NewRecursiveType(loc)
	}
	lowerLevels(target, unbound.Level, map[*Cell]bool{})
	v.Cell.State = Link{Type: target}
	return nil
}

// occurs reports whether cell is reachable from t after link-compression
// (spec §3.1, §4.1 step 3).
func occurs(cell *Cell, t Type) bool {
	switch t := Resolve(t).(type) {
	case *App:
		for _, a := range t.Args {
			if occurs(cell, a) {
				return true
			}
		}
		return false
	case *Fn:
		for _, a := range t.Args {
			if occurs(cell, a) {
				return true
			}
		}
		return occurs(cell, t.Retrn)
	case *Tuple:
		for _, e := range t.Elems {
			if occurs(cell, e) {
				return true
			}
		}
		return false
	case *Var:
		return t.Cell == cell
	default:
		return false
	}
}

// lowerLevels walks t after link-compression, lowering every reachable
// Unbound cell's level to min(its level, level) (spec §3.1 invariant,
// §4.1 step 3). visited guards against re-walking shared substructure.
func lowerLevels(t Type, level uint32, visited map[*Cell]bool) {
	switch t := Resolve(t).(type) {
	case *App:
		for _, a := range t.Args {
			lowerLevels(a, level, visited)
		}
	case *Fn:
		for _, a := range t.Args {
			lowerLevels(a, level, visited)
		}
		lowerLevels(t.Retrn, level, visited)
	case *Tuple:
		for _, e := range t.Elems {
			lowerLevels(e, level, visited)
		}
	case *Var:
		if visited[t.Cell] {
			return
		}
		visited[t.Cell] = true
		if u, ok := t.Cell.State.(Unbound); ok && level < u.Level {
			t.Cell.State = Unbound{ID: u.ID, Level: level}
		}
	}
}
