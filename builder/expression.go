package builder

import "github.com/relquery/relquery/ast"

// Just builds a raw, verbatim expression. text must be non-empty.
func Just(text string) *ast.JustExpression { return ast.NewJustExpression(text) }

// Func builds a named function call over args.
func Func(name string, args ...ast.Expression) *ast.SimpleFunction {
	return ast.NewSimpleFunction(name, args...)
}

// Bind builds an anonymous positional placeholder.
func Bind() *ast.BindMarker { return ast.NewBindMarker() }

// NamedBind builds a named placeholder. name must be non-empty.
func NamedBind(name string) *ast.NamedBindMarker { return ast.NewNamedBindMarker(name) }

// Subselect wraps a built Select so it can be used as a value.
func Subselect(sel *ast.Select) *ast.SubselectExpression { return ast.NewSubselectExpression(sel) }
