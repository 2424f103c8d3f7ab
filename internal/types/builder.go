package types

// Builder offers fluent construction of Type values for tests and fixtures,
// adapted from the teacher's type-builder convention: short top-level
// helpers for leaves, chained methods for compounds.
type Builder struct{}

// NewBuilder returns a Builder. It carries no state; its methods are plain
// constructors dressed up for readable call sites like
// types.NewBuilder().Fn(types.Int()).Returns(types.Bool()).
func NewBuilder() *Builder { return &Builder{} }

func (*Builder) Int() Type     { return Int() }
func (*Builder) Float() Type   { return Float() }
func (*Builder) String() Type  { return StringT() }
func (*Builder) Bool() Type    { return Bool() }
func (*Builder) Nil() Type     { return Nil() }

func (*Builder) List(elem Type) Type { return ListOf(elem) }

func (*Builder) Result(ok, err Type) Type { return ResultOf(ok, err) }

func (*Builder) Tuple(elems ...Type) Type { return &Tuple{Elems: elems} }

func (*Builder) Named(module []string, name string, args ...Type) Type {
	return &App{Module: module, Name: name, Args: args}
}

func (*Builder) Public(t Type) Type {
	if a, ok := t.(*App); ok {
		cp := *a
		cp.Public = true
		return &cp
	}
	return t
}

// FnBuilder accumulates argument types before Returns closes the arrow.
type FnBuilder struct {
	args []Type
}

func (*Builder) Fn(args ...Type) *FnBuilder { return &FnBuilder{args: args} }

func (fb *FnBuilder) Returns(ret Type) Type {
	return &Fn{Args: fb.args, Retrn: ret}
}

// UnboundAt returns a fresh Unbound var at the given level, for tests that
// need to construct partially-solved types directly.
func (*Builder) UnboundAt(id uint64, level uint32) Type {
	return NewUnboundVar(id, level)
}

// GenericVar returns a Var holding a Generic cell with the given id, for
// tests building scheme shapes by hand.
func (*Builder) GenericVar(id uint64) Type {
	return &Var{Cell: &Cell{State: Generic{ID: id}}}
}
