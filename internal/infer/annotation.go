// Package infer implements the pattern, expression, and module inferencers:
// the components that turn an internal/ast tree into an internal/typedast
// tree using internal/types as its value domain.
package infer

import (
	"github.com/chenjianxin/gleam/internal/ast"
	"github.com/chenjianxin/gleam/internal/types"
)

// annotationScope resolves ast.TypeAst nodes to types.Type, sharing one
// fresh var per type-variable name so that `fn(x: a, y: a)` ties the two
// `a`s to the same variable (spec §4.4 Function literal, External function).
// A scope is created fresh per function literal, per fn/external fn
// signature, and per let/assert annotation.
type annotationScope struct {
	env  *types.Env
	vars map[string]types.Type
}

func newAnnotationScope(env *types.Env) *annotationScope {
	return &annotationScope{env: env, vars: map[string]types.Type{}}
}

// Resolve turns a TypeAst into a types.Type, consulting env's registered
// types for TypeName arity and alias expansion.
func (s *annotationScope) Resolve(t ast.TypeAst) (types.Type, error) {
	if t == nil {
		return s.env.FreshUnbound(), nil
	}
	switch t := t.(type) {
	case *ast.TypeVarAst:
		if v, ok := s.vars[t.Name]; ok {
			return v, nil
		}
		v := s.env.FreshUnbound()
		s.vars[t.Name] = v
		return v, nil
	case *ast.TypeName:
		return s.resolveTypeName(t)
	case *ast.TypeFnAst:
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			r, err := s.Resolve(a)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
		ret, err := s.Resolve(t.Return)
		if err != nil {
			return nil, err
		}
		return &types.Fn{Args: args, Retrn: ret}, nil
	case *ast.TypeTupleAst:
		elems := make([]types.Type, len(t.Elems))
		for i, e := range t.Elems {
			r, err := s.Resolve(e)
			if err != nil {
				return nil, err
			}
			elems[i] = r
		}
		return &types.Tuple{Elems: elems}, nil
	default:
		return nil, types.NewUnknownType(t.Position(), t.String(), s.env.TypeNames())
	}
}

func (s *annotationScope) resolveTypeName(t *ast.TypeName) (types.Type, error) {
	if alias, ok := s.env.LookupAlias(t.Name); ok && len(t.Module) == 0 {
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			r, err := s.Resolve(a)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
		return alias.Expand(args), nil
	}

	tc, ok := s.env.LookupType(t.Name)
	if !ok {
		return nil, s.env.UnknownTypeError(t.Position(), t.Name)
	}
	if tc.Arity != len(t.Args) {
		return nil, types.NewIncorrectTypeArity(t.Position(), t.Name, tc.Arity, len(t.Args))
	}
	args := make([]types.Type, len(t.Args))
	for i, a := range t.Args {
		r, err := s.Resolve(a)
		if err != nil {
			return nil, err
		}
		args[i] = r
	}
	if types.IsBuiltinName(t.Name) && len(t.Module) == 0 {
		return builtinNamed(t.Name, args), nil
	}
	return &types.App{Module: t.Module, Name: t.Name, Args: args, Public: tc.Public}, nil
}

func builtinNamed(name string, args []types.Type) types.Type {
	switch name {
	case "Int":
		return types.Int()
	case "Float":
		return types.Float()
	case "String":
		return types.StringT()
	case "Bool":
		return types.Bool()
	case "Nil":
		return types.Nil()
	case "List":
		return types.ListOf(args[0])
	case "Result":
		return types.ResultOf(args[0], args[1])
	default:
		return &types.App{Name: name, Args: args}
	}
}
