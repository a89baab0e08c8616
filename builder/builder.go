// Package builder is a fluent construction surface over the ast package. It
// performs no rendering itself; every method either returns an ast node
// directly or accumulates state that SelectBuilder.Build assembles into one.
package builder

import "github.com/relquery/relquery/ast"

// Table starts a new table reference.
func Table(name string) *ast.Table { return ast.NewTable(name) }

// SelectBuilder accumulates the clauses of a single SELECT statement.
//
// joins and orderBy hold raw operands rather than constructed ast.Join/
// ast.OrderByField nodes: those constructors panic on a nil operand, and
// that panic must stay inside Build's recover scope rather than escape a
// chained Join/OrderBy call.
type SelectBuilder struct {
	list     []ast.Expression
	from     []ast.TableExpression
	joins    []joinSpec
	where    ast.Condition
	orderBy  []orderBySpec
	distinct bool
	limit    *int
	offset   *int
}

type joinSpec struct {
	joinType ast.JoinType
	table    ast.TableExpression
	on       ast.Condition
}

type orderBySpec struct {
	column    *ast.Column
	direction ast.Direction
}

// Select starts a SelectBuilder over the given projection. exprs must be
// non-empty (NewSelectList enforces this at Build time).
func Select(exprs ...ast.Expression) *SelectBuilder {
	return &SelectBuilder{list: exprs}
}

// From sets the source tables explicitly, overriding the derived-from-
// projection behavior documented on Build.
func (b *SelectBuilder) From(tables ...ast.TableExpression) *SelectBuilder {
	b.from = tables
	return b
}

// Join adds a joined table with the given join type and ON condition.
func (b *SelectBuilder) Join(joinType ast.JoinType, table ast.TableExpression, on ast.Condition) *SelectBuilder {
	b.joins = append(b.joins, joinSpec{joinType, table, on})
	return b
}

// LeftJoin adds a LEFT OUTER JOIN.
func (b *SelectBuilder) LeftJoin(table ast.TableExpression, on ast.Condition) *SelectBuilder {
	return b.Join(ast.LeftOuterJoin, table, on)
}

// RightJoin adds a RIGHT OUTER JOIN.
func (b *SelectBuilder) RightJoin(table ast.TableExpression, on ast.Condition) *SelectBuilder {
	return b.Join(ast.RightOuterJoin, table, on)
}

// FullJoin adds a FULL OUTER JOIN.
func (b *SelectBuilder) FullJoin(table ast.TableExpression, on ast.Condition) *SelectBuilder {
	return b.Join(ast.FullOuterJoin, table, on)
}

// Where sets the statement's filter predicate.
func (b *SelectBuilder) Where(cond ast.Condition) *SelectBuilder {
	b.where = cond
	return b
}

// OrderBy appends one ordering field.
func (b *SelectBuilder) OrderBy(column *ast.Column, direction ast.Direction) *SelectBuilder {
	b.orderBy = append(b.orderBy, orderBySpec{column, direction})
	return b
}

// Distinct marks the projection as DISTINCT.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.distinct = true
	return b
}

// Limit sets the row limit.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = &n
	return b
}

// Offset sets the row offset.
func (b *SelectBuilder) Offset(n int) *SelectBuilder {
	b.offset = &n
	return b
}

// Build assembles the accumulated state into an *ast.Select.
//
// When From was never called, Build derives the FROM clause from the
// distinct tables referenced by the projection's Column/AliasedColumn
// expressions, in first-appearance order; other projection expressions are
// ignored for this. A projection with no table-owned column and no explicit
// From leaves the Select without one.
func (b *SelectBuilder) Build() (sel *ast.Select, err error) {
	defer func() {
		if r := recover(); r != nil {
			astErr, ok := r.(*ast.Error)
			if !ok {
				panic(r)
			}
			err = astErr
		}
	}()

	sel = ast.NewSelect(ast.NewSelectList(b.list...))

	from := b.from
	if from == nil {
		from = derivedFrom(b.list)
	}
	if len(from) > 0 {
		sel.From = ast.NewFrom(from...)
	}

	if len(b.joins) > 0 {
		joins := make([]*ast.Join, len(b.joins))
		for i, j := range b.joins {
			joins[i] = ast.NewJoin(j.joinType, j.table, j.on)
		}
		sel.Joins = joins
	}
	if b.where != nil {
		sel.Where = ast.NewWhere(b.where)
	}
	if len(b.orderBy) > 0 {
		orderBy := make([]*ast.OrderByField, len(b.orderBy))
		for i, o := range b.orderBy {
			orderBy[i] = ast.NewOrderByField(o.column, o.direction)
		}
		sel.OrderBy = orderBy
	}
	sel.Distinct = b.distinct
	sel.Limit = b.limit
	sel.Offset = b.offset

	return sel, nil
}

// derivedFrom collects the distinct owning tables of every Column or
// AliasedColumn in exprs, in first-appearance order. Expressions with no
// table (nil Table, or not a column at all) are skipped.
func derivedFrom(exprs []ast.Expression) []ast.TableExpression {
	var tables []ast.TableExpression
	seen := make(map[ast.TableExpression]bool)

	add := func(t ast.TableExpression) {
		if t == nil || seen[t] {
			return
		}
		seen[t] = true
		tables = append(tables, t)
	}

	for _, e := range exprs {
		switch c := e.(type) {
		case *ast.Column:
			add(c.Table)
		case *ast.AliasedColumn:
			add(c.Table)
		}
	}
	return tables
}
