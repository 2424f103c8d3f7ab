package ast

// Stmt is a module-level statement.
type Stmt interface {
	stmtNode()
	Position() SrcSpan
}

// Function is a top-level `fn name(args) -> ret? { body }` declaration.
type Function struct {
	Name       string
	Public     bool
	Args       []Arg
	Return     TypeAst // nil if unannotated
	Body       []Expr
	Location   SrcSpan
}

func (f *Function) stmtNode()        {}
func (f *Function) Position() SrcSpan { return f.Location }

// ExternalFunction is `external fn name(args) -> ret = "..."`. Its body is
// never inferred — only its (fully annotated) signature is used.
type ExternalFunction struct {
	Name     string
	Public   bool
	Args     []Arg
	Return   TypeAst
	Location SrcSpan
}

func (f *ExternalFunction) stmtNode()        {}
func (f *ExternalFunction) Position() SrcSpan { return f.Location }

// ConstructorArg is one field of a data constructor, optionally labelled.
type ConstructorArg struct {
	Label      *string
	Annotation TypeAst
	Location   SrcSpan
}

// Constructor is one variant of a CustomType.
type Constructor struct {
	Name     string
	Args     []ConstructorArg
	Location SrcSpan
}

// CustomType is a `type Name(params) { Constructor(...) ... }` ADT
// declaration.
type CustomType struct {
	Name         string
	Public       bool
	Parameters   []string
	Constructors []Constructor
	Location     SrcSpan
}

func (t *CustomType) stmtNode()        {}
func (t *CustomType) Position() SrcSpan { return t.Location }

// ExternalType is `external type Name(params)` — opaque, no constructors.
type ExternalType struct {
	Name       string
	Public     bool
	Parameters []string
	Location   SrcSpan
}

func (t *ExternalType) stmtNode()        {}
func (t *ExternalType) Position() SrcSpan { return t.Location }

// TypeAliasDecl is `type Name(params) = Annotation`.
type TypeAliasDecl struct {
	Name       string
	Public     bool
	Parameters []string
	Annotation TypeAst
	Location   SrcSpan
}

func (t *TypeAliasDecl) stmtNode()        {}
func (t *TypeAliasDecl) Position() SrcSpan { return t.Location }

// Module is an untyped module: a name, documentation, and a flat list of
// top-level statements in source order.
type Module struct {
	Name          []string
	Documentation []string
	Statements    []Stmt
}
