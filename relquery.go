// Package relquery provides a fluent SQL SELECT builder and a stack-based
// AST renderer for Go.
//
// This file re-exports the commonly used types and functions from the
// subpackages for convenience. Advanced users can import the subpackages
// directly:
//   - github.com/relquery/relquery/ast (immutable statement AST)
//   - github.com/relquery/relquery/visit (enter/leave traversal engine)
//   - github.com/relquery/relquery/render (AST to SQL text)
//   - github.com/relquery/relquery/builder (fluent construction surface)
//   - github.com/relquery/relquery/plugins (query transformers)
package relquery

import (
	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/builder"
	"github.com/relquery/relquery/render"
)

// --- Core AST Types ---

// Select is the root node of a single SELECT statement.
type Select = ast.Select

// Table represents a SQL table reference.
type Table = ast.Table

// Column represents a reference to a column owned by a table.
type Column = ast.Column

// Condition is satisfied by every WHERE/ON predicate node.
type Condition = ast.Condition

// Expression is satisfied by every projectable/referenceable value node.
type Expression = ast.Expression

// --- Builder Entry Points ---

// NewTable creates a new table reference.
func NewTable(name string) *ast.Table {
	return builder.Table(name)
}

// NewSelect starts building a SELECT statement over the given projection.
func NewSelect(exprs ...ast.Expression) *builder.SelectBuilder {
	return builder.Select(exprs...)
}

// --- Condition Constructors ---

// IsNull builds an "expr IS NULL" condition.
func IsNull(expr ast.Expression) *ast.IsNullCondition {
	return builder.IsNull(expr)
}

// IsNotNull builds an "expr IS NOT NULL" condition.
func IsNotNull(expr ast.Expression) *ast.IsNullCondition {
	return builder.IsNotNull(expr)
}

// Eq builds a "left = right" condition.
func Eq(left, right ast.Expression) *ast.EqualsCondition {
	return builder.Eq(left, right)
}

// In builds a "left IN (rights...)" condition.
func In(left ast.Expression, rights ...ast.Expression) *ast.InCondition {
	return builder.In(left, rights...)
}

// And combines two conditions with AND.
func And(left, right ast.Condition) *ast.AndCondition {
	return builder.And(left, right)
}

// Or combines two conditions with OR, rendered parenthesised.
func Or(left, right ast.Condition) *ast.OrCondition {
	return builder.Or(left, right)
}

// Group wraps a condition in parentheses without changing its meaning.
func Group(inner ast.Condition) *ast.ConditionGroup {
	return builder.Group(inner)
}

// Const wraps a raw SQL fragment as a condition, emitted verbatim.
func Const(raw string) *ast.ConstantCondition {
	return builder.Const(raw)
}

// --- Expression Constructors ---

// Just wraps a raw SQL fragment as an expression, emitted verbatim.
func Just(text string) *ast.JustExpression {
	return builder.Just(text)
}

// Func builds a simple "NAME(args...)" function call expression.
func Func(name string, args ...ast.Expression) *ast.SimpleFunction {
	return builder.Func(name, args...)
}

// Bind creates a positional bind-parameter placeholder.
func Bind() *ast.BindMarker {
	return builder.Bind()
}

// NamedBind creates a named bind-parameter placeholder.
func NamedBind(name string) *ast.NamedBindMarker {
	return builder.NamedBind(name)
}

// Subselect wraps a nested SELECT as an expression, e.g. as the right-hand
// side of In.
func Subselect(sel *ast.Select) *ast.SubselectExpression {
	return builder.Subselect(sel)
}

// --- Rendering ---

// Render walks sel and renders it to its canonical SQL text.
func Render(sel *ast.Select) (string, error) {
	return render.Render(sel)
}
