package types

import (
	"fmt"
	"strings"
)

// Printer renders Type values using the canonical grammar of spec §6:
//
//	Int | Float | String | Bool | Nil
//	List(T)
//	tuple(T1, T2, ...)
//	fn(T1, T2, ...) -> T
//	Module.Name(T1, ...)
//	a, b, c, ...   (generic variables, lettered by first occurrence)
//
// A Printer letters Generic cells by the order they are first encountered
// within its own lifetime — share one Printer across several Print calls to
// keep variable names consistent in a single diagnostic; the zero-value
// NewPrinter() used by Type.String() starts a fresh naming context every
// time, which is fine for one-off rendering but not for comparing two
// related types side by side.
type Printer struct {
	names map[uint64]string
	next  int
}

// NewPrinter returns a Printer with an empty generic-naming context.
func NewPrinter() *Printer {
	return &Printer{names: make(map[uint64]string)}
}

// Print renders t using this Printer's naming context, extending it with any
// newly-seen Generic ids.
func (p *Printer) Print(t Type) string {
	var sb strings.Builder
	p.write(&sb, t)
	return sb.String()
}

func (p *Printer) write(sb *strings.Builder, t Type) {
	switch t := Resolve(t).(type) {
	case *App:
		name := t.Name
		if len(t.Module) > 0 {
			name = strings.Join(t.Module, "/") + "." + t.Name
		}
		sb.WriteString(name)
		if len(t.Args) > 0 {
			sb.WriteByte('(')
			for i, a := range t.Args {
				if i > 0 {
					sb.WriteString(", ")
				}
				p.write(sb, a)
			}
			sb.WriteByte(')')
		}
	case *Fn:
		sb.WriteString("fn(")
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.write(sb, a)
		}
		sb.WriteString(") -> ")
		p.write(sb, t.Retrn)
	case *Tuple:
		sb.WriteString("tuple(")
		for i, e := range t.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.write(sb, e)
		}
		sb.WriteByte(')')
	case *Var:
		switch s := t.Cell.State.(type) {
		case Generic:
			sb.WriteString(p.nameFor(s.ID))
		case Unbound:
			// An unresolved type leaking into a diagnostic: render it as an
			// underscore-prefixed name so it's visually distinct from a
			// properly generalized variable without claiming a letter.
			fmt.Fprintf(sb, "_%d", s.ID)
		default:
			sb.WriteString("_")
		}
	default:
		sb.WriteString("?")
	}
}

func (p *Printer) nameFor(id uint64) string {
	if n, ok := p.names[id]; ok {
		return n
	}
	n := letterName(p.next)
	p.next++
	p.names[id] = n
	return n
}

// letterName maps 0, 1, 2, ..., 25, 26, 27, ... to a, b, ..., z, a1, b1, ...
func letterName(i int) string {
	letter := rune('a' + i%26)
	round := i / 26
	if round == 0 {
		return string(letter)
	}
	return fmt.Sprintf("%c%d", letter, round)
}
