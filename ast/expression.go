package ast

// Expression is any Segment usable where a value is expected: a column, a
// table, a bind marker, a function call, a subselect, or raw text.
type Expression interface {
	Segment
	expression()
}

// Aliased is satisfied by expressions that carry an alias (AliasedColumn,
// AliasedTable).
type Aliased interface {
	Alias() string
}

// Named is satisfied by bind markers that carry a parameter name
// (NamedBindMarker).
type Named interface {
	ParamName() string
}

// TableExpression is satisfied by anything that can own a Column and appear
// in a From clause or a Join's target: Table and AliasedTable.
type TableExpression interface {
	Expression
	// ReferenceName is the alias if aliased, else the table's name.
	ReferenceName() string
	tableExpression()
}

// Table is a plain table reference.
type Table struct {
	Name string
}

// NewTable constructs a Table. Name must be non-empty.
func NewTable(name string) *Table {
	if name == "" {
		panic(invalidArgument("Table", "name must not be empty"))
	}
	return &Table{Name: name}
}

func (t *Table) expression()      {}
func (t *Table) tableExpression() {}

// Children implements Segment. Table is a leaf.
func (t *Table) Children() []Segment { return nil }

// Walk implements Segment.
func (t *Table) Walk(v Visitor) { Walk(t, v) }

// ReferenceName implements TableExpression.
func (t *Table) ReferenceName() string { return t.Name }

// As returns an AliasedTable wrapping t under the given alias.
func (t *Table) As(alias string) *AliasedTable {
	if alias == "" {
		panic(invalidArgument("Table.As", "alias must not be empty"))
	}
	return &AliasedTable{Table: t, AliasValue: alias}
}

// Column returns a Column owned by t.
func (t *Table) Column(name string) *Column {
	return NewColumn(name, t)
}

// AliasedTable is a Table given an alias in a FROM clause or a JOIN.
type AliasedTable struct {
	Table      *Table
	AliasValue string
}

func (t *AliasedTable) expression()      {}
func (t *AliasedTable) tableExpression() {}

// Children implements Segment. AliasedTable is a leaf; its underlying Table
// is plain data, not a traversal child (data-model invariant 5).
func (t *AliasedTable) Children() []Segment { return nil }

// Walk implements Segment.
func (t *AliasedTable) Walk(v Visitor) { Walk(t, v) }

// Alias implements Aliased.
func (t *AliasedTable) Alias() string { return t.AliasValue }

// ReferenceName implements TableExpression.
func (t *AliasedTable) ReferenceName() string { return t.AliasValue }

// Column returns a Column owned by t (qualified by the alias when rendered).
func (t *AliasedTable) Column(name string) *Column {
	return NewColumn(name, t)
}

// Column is a named column owned by a table. Its reference name equals its
// Name (Column is never itself aliased; see AliasedColumn).
type Column struct {
	Name  string
	Table TableExpression
}

// NewColumn constructs a Column. Name must be non-empty; table may be nil
// for a column with no known owner (rare, but not itself invalid).
func NewColumn(name string, table TableExpression) *Column {
	if name == "" {
		panic(invalidArgument("Column", "name must not be empty"))
	}
	return &Column{Name: name, Table: table}
}

func (c *Column) expression() {}

// Children implements Segment. Column is a leaf: its owning Table is plain
// data, read directly by renderers, never a shared Walk child (data-model
// invariant 5).
func (c *Column) Children() []Segment { return nil }

// Walk implements Segment.
func (c *Column) Walk(v Visitor) { Walk(c, v) }

// ReferenceName is the column's Name (Column itself carries no alias).
func (c *Column) ReferenceName() string { return c.Name }

// As returns an AliasedColumn over the same name and table.
func (c *Column) As(alias string) *AliasedColumn {
	if alias == "" {
		panic(invalidArgument("Column.As", "alias must not be empty"))
	}
	return &AliasedColumn{Name: c.Name, Table: c.Table, AliasValue: alias}
}

// AliasedColumn is a Column given a projection alias.
type AliasedColumn struct {
	Name       string
	Table      TableExpression
	AliasValue string
}

func (c *AliasedColumn) expression() {}

// Children implements Segment. Leaf, for the same reason as Column.
func (c *AliasedColumn) Children() []Segment { return nil }

// Walk implements Segment.
func (c *AliasedColumn) Walk(v Visitor) { Walk(c, v) }

// Alias implements Aliased.
func (c *AliasedColumn) Alias() string { return c.AliasValue }

// ReferenceName implements the column reference-name rule: the alias.
func (c *AliasedColumn) ReferenceName() string { return c.AliasValue }

// BindMarker is an anonymous positional placeholder ("?").
type BindMarker struct{}

// NewBindMarker constructs an anonymous BindMarker.
func NewBindMarker() *BindMarker { return &BindMarker{} }

func (b *BindMarker) expression() {}

// Children implements Segment. Leaf.
func (b *BindMarker) Children() []Segment { return nil }

// Walk implements Segment.
func (b *BindMarker) Walk(v Visitor) { Walk(b, v) }

// NamedBindMarker is a named placeholder (":name").
type NamedBindMarker struct {
	Name string
}

// NewNamedBindMarker constructs a NamedBindMarker. Name must be non-empty.
func NewNamedBindMarker(name string) *NamedBindMarker {
	if name == "" {
		panic(invalidArgument("NamedBindMarker", "name must not be empty"))
	}
	return &NamedBindMarker{Name: name}
}

func (b *NamedBindMarker) expression() {}

// Children implements Segment. Leaf.
func (b *NamedBindMarker) Children() []Segment { return nil }

// Walk implements Segment.
func (b *NamedBindMarker) Walk(v Visitor) { Walk(b, v) }

// ParamName implements Named.
func (b *NamedBindMarker) ParamName() string { return b.Name }

// SimpleFunction is a named function call over zero or more expression
// arguments, e.g. COUNT(t.id) or NOW().
type SimpleFunction struct {
	Name string
	Args []Expression
}

// NewSimpleFunction constructs a SimpleFunction. Name must be non-empty.
func NewSimpleFunction(name string, args ...Expression) *SimpleFunction {
	if name == "" {
		panic(invalidArgument("SimpleFunction", "name must not be empty"))
	}
	return &SimpleFunction{Name: name, Args: args}
}

func (f *SimpleFunction) expression() {}

// Children implements Segment: the function's arguments, in order.
func (f *SimpleFunction) Children() []Segment {
	children := make([]Segment, len(f.Args))
	for i, a := range f.Args {
		children[i] = a
	}
	return children
}

// Walk implements Segment.
func (f *SimpleFunction) Walk(v Visitor) { Walk(f, v) }

// SubselectExpression wraps a Select so it can be used as a value, e.g. the
// right-hand side of an In condition.
type SubselectExpression struct {
	Select *Select
}

// NewSubselectExpression constructs a SubselectExpression. sel must not be nil.
func NewSubselectExpression(sel *Select) *SubselectExpression {
	if sel == nil {
		panic(invalidArgument("SubselectExpression", "select must not be nil"))
	}
	return &SubselectExpression{Select: sel}
}

func (s *SubselectExpression) expression() {}

// Children implements Segment: the wrapped Select.
func (s *SubselectExpression) Children() []Segment { return []Segment{s.Select} }

// Walk implements Segment.
func (s *SubselectExpression) Walk(v Visitor) { Walk(s, v) }

// JustExpression is a raw textual expression emitted verbatim, for values
// the AST otherwise has no dedicated node for.
type JustExpression struct {
	Text string
}

// NewJustExpression constructs a JustExpression. Text must be non-empty.
func NewJustExpression(text string) *JustExpression {
	if text == "" {
		panic(invalidArgument("JustExpression", "text must not be empty"))
	}
	return &JustExpression{Text: text}
}

func (e *JustExpression) expression() {}

// Children implements Segment. Leaf.
func (e *JustExpression) Children() []Segment { return nil }

// Walk implements Segment.
func (e *JustExpression) Walk(v Visitor) { Walk(e, v) }
