package infer

import (
	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/chenjianxin/gleam/internal/typedast"
	"github.com/chenjianxin/gleam/internal/types"
)

// binOpSignature is the fixed (non-polymorphic) signature for every
// operator except `==`/`!=`, which unify their two operands against each
// other rather than a literal type (spec §4.4 Binary operators).
type binOpSignature struct {
	operand types.Type
	result  types.Type
	// dotted operators report the unification failure at the first
	// operand's span; non-dotted ones at the second's (spec §4.4, §9:
	// this orientation must be preserved to match fixed-location
	// diagnostics).
	dotted bool
}

var binOpSignatures = map[string]binOpSignature{
	"+": {types.Int(), types.Int(), false},
	"-": {types.Int(), types.Int(), false},
	"*": {types.Int(), types.Int(), false},
	"/": {types.Int(), types.Int(), false},
	"%": {types.Int(), types.Int(), false},

	"+.": {types.Float(), types.Float(), true},
	"-.": {types.Float(), types.Float(), true},
	"*.": {types.Float(), types.Float(), true},
	"/.": {types.Float(), types.Float(), true},

	">":  {types.Int(), types.Bool(), false},
	">=": {types.Int(), types.Bool(), false},
	"<":  {types.Int(), types.Bool(), false},
	"<=": {types.Int(), types.Bool(), false},

	">.":  {types.Float(), types.Bool(), true},
	">=.": {types.Float(), types.Bool(), true},
	"<.":  {types.Float(), types.Bool(), true},
	"<=.": {types.Float(), types.Bool(), true},

	"&&": {types.Bool(), types.Bool(), false},
	"||": {types.Bool(), types.Bool(), false},
}

func inferBinOp(env *types.Env, warnings *Warnings, e *ast.BinOp) (typedast.Expr, error) {
	left, err := Infer(env, warnings, e.Left)
	if err != nil {
		return nil, err
	}
	right, err := Infer(env, warnings, e.Right)
	if err != nil {
		return nil, err
	}

	if e.Name == "==" || e.Name == "!=" {
		if err := types.Unify(e.Right.Position(), left.Typ(), right.Typ()); err != nil {
			return nil, err
		}
		return typedast.NewBinOp(e.Location, types.Bool(), e.Name, left, right), nil
	}

	sig, ok := binOpSignatures[e.Name]
	if !ok {
		panic("infer: unknown binary operator " + e.Name)
	}

	// Non-dotted operators blame the second operand's span on a mismatch;
	// dotted operators blame the first's (spec §4.4, §9).
	loc := e.Right.Position()
	if sig.dotted {
		loc = e.Left.Position()
	}
	if err := types.Unify(loc, sig.operand, left.Typ()); err != nil {
		return nil, err
	}
	if err := types.Unify(loc, sig.operand, right.Typ()); err != nil {
		return nil, err
	}

	return typedast.NewBinOp(e.Location, sig.result, e.Name, left, right), nil
}
