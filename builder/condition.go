package builder

import "github.com/relquery/relquery/ast"

// IsNull builds an "expr IS NULL" condition.
func IsNull(expr ast.Expression) *ast.IsNullCondition { return ast.NewIsNull(expr, false) }

// IsNotNull builds an "expr IS NOT NULL" condition.
func IsNotNull(expr ast.Expression) *ast.IsNullCondition { return ast.NewIsNull(expr, true) }

// Eq builds an equality condition.
func Eq(left, right ast.Expression) *ast.EqualsCondition { return ast.NewEquals(left, right) }

// In builds a membership condition. rights must be non-empty.
func In(left ast.Expression, rights ...ast.Expression) *ast.InCondition {
	return ast.NewIn(left, rights...)
}

// And combines two conditions with AND.
func And(left, right ast.Condition) *ast.AndCondition { return ast.NewAnd(left, right) }

// Or combines two conditions with OR.
func Or(left, right ast.Condition) *ast.OrCondition { return ast.NewOr(left, right) }

// Group parenthesizes a condition.
func Group(inner ast.Condition) *ast.ConditionGroup { return ast.NewConditionGroup(inner) }

// Const builds a raw, verbatim condition. raw must be non-empty.
func Const(raw string) *ast.ConstantCondition { return ast.NewConstantCondition(raw) }
