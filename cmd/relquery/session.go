package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/builder"
	"github.com/relquery/relquery/render"
)

// Session holds the query a REPL user is incrementally assembling, plus the
// tables they have registered by name.
type Session struct {
	tables map[string]ast.TableExpression // name or alias -> relation

	list     []ast.Expression
	from     []ast.TableExpression
	joins    []*ast.Join
	where    ast.Condition
	orderBy  []*ast.OrderByField
	distinct bool
	limit    *int
	offset   *int

	commands []commandEntry
}

func NewSession() *Session {
	s := &Session{tables: make(map[string]ast.TableExpression)}
	s.initCommands()
	return s
}

// Execute dispatches line to the first registered command whose prefix
// matches it, in registration order.
func (s *Session) Execute(line string) error {
	lower := strings.ToLower(line)
	for _, c := range s.commands {
		if strings.HasPrefix(lower, c.prefix) {
			return c.handler(strings.TrimSpace(line[len(c.prefix):]))
		}
	}
	return fmt.Errorf("unrecognized command: %q (try 'help')", line)
}

func (s *Session) cmdTable(args string) error {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return fmt.Errorf("usage: table <name> [as <alias>]")
	}
	name := fields[0]
	var rel ast.TableExpression = builder.Table(name)
	if len(fields) >= 3 && strings.EqualFold(fields[1], "as") {
		alias := rel.(*ast.Table).As(fields[2])
		rel = alias
		s.tables[fields[2]] = alias
	}
	s.tables[name] = rel
	fmt.Printf("  registered table %q\n", name)
	return nil
}

func (s *Session) resolveColumn(ref string) (*ast.Column, error) {
	parts := strings.SplitN(ref, ".", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected table.column, got %q", ref)
	}
	t, ok := s.tables[parts[0]]
	if !ok {
		return nil, fmt.Errorf("unknown table %q (use 'table %s' first)", parts[0], parts[0])
	}
	switch rel := t.(type) {
	case *ast.Table:
		return rel.Column(parts[1]), nil
	case *ast.AliasedTable:
		return rel.Column(parts[1]), nil
	default:
		return ast.NewColumn(parts[1], t), nil
	}
}

func (s *Session) cmdSelect(args string) error {
	if args == "" {
		return fmt.Errorf("usage: select table.col[ as alias], ...")
	}
	var exprs []ast.Expression
	for _, tok := range strings.Split(args, ",") {
		fields := strings.Fields(strings.TrimSpace(tok))
		if len(fields) == 0 {
			continue
		}
		col, err := s.resolveColumn(fields[0])
		if err != nil {
			return err
		}
		if len(fields) >= 3 && strings.EqualFold(fields[1], "as") {
			exprs = append(exprs, col.As(fields[2]))
			continue
		}
		exprs = append(exprs, col)
	}
	s.list = exprs
	return nil
}

func (s *Session) cmdFrom(args string) error {
	var tables []ast.TableExpression
	for _, name := range strings.Fields(args) {
		name = strings.TrimSuffix(name, ",")
		t, ok := s.tables[name]
		if !ok {
			return fmt.Errorf("unknown table %q (use 'table %s' first)", name, name)
		}
		tables = append(tables, t)
	}
	if len(tables) == 0 {
		return fmt.Errorf("usage: from <table> [<table> ...]")
	}
	s.from = tables
	return nil
}

func (s *Session) cmdJoin(args string, joinType ast.JoinType) error {
	fields := strings.Fields(args)
	onIdx := -1
	for i, f := range fields {
		if strings.EqualFold(f, "on") {
			onIdx = i
			break
		}
	}
	if onIdx < 0 || onIdx != len(fields)-4 {
		return fmt.Errorf("usage: join <table> on <table.col> = <table.col>")
	}
	tableName := strings.Join(fields[:onIdx], " ")
	t, ok := s.tables[tableName]
	if !ok {
		return fmt.Errorf("unknown table %q (use 'table %s' first)", tableName, tableName)
	}
	left, err := s.resolveColumn(fields[onIdx+1])
	if err != nil {
		return err
	}
	if fields[onIdx+2] != "=" {
		return fmt.Errorf("only equality joins are supported")
	}
	right, err := s.resolveColumn(fields[onIdx+3])
	if err != nil {
		return err
	}
	s.joins = append(s.joins, ast.NewJoin(joinType, t, ast.NewEquals(left, right)))
	return nil
}

// cmdWhere supports "col IS [NOT] NULL" directly; anything else is passed
// through verbatim as a constant condition rather than parsed, since this
// REPL does not implement a general expression grammar.
func (s *Session) cmdWhere(args string) error {
	if args == "" {
		return fmt.Errorf("usage: where <condition>")
	}
	var cond ast.Condition
	upper := strings.ToUpper(args)
	switch {
	case strings.HasSuffix(upper, " IS NOT NULL"):
		col, err := s.resolveColumn(strings.TrimSpace(args[:len(args)-len(" IS NOT NULL")]))
		if err != nil {
			return err
		}
		cond = builder.IsNotNull(col)
	case strings.HasSuffix(upper, " IS NULL"):
		col, err := s.resolveColumn(strings.TrimSpace(args[:len(args)-len(" IS NULL")]))
		if err != nil {
			return err
		}
		cond = builder.IsNull(col)
	default:
		cond = builder.Const(args)
	}

	if s.where == nil {
		s.where = cond
	} else {
		s.where = builder.And(s.where, cond)
	}
	return nil
}

func (s *Session) cmdOrder(args string) error {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return fmt.Errorf("usage: order <table.col> [asc|desc]")
	}
	col, err := s.resolveColumn(fields[0])
	if err != nil {
		return err
	}
	dir := ast.DirectionUnspecified
	if len(fields) > 1 {
		switch strings.ToLower(fields[1]) {
		case "asc":
			dir = ast.Asc
		case "desc":
			dir = ast.Desc
		default:
			return fmt.Errorf("unknown direction %q", fields[1])
		}
	}
	s.orderBy = append(s.orderBy, ast.NewOrderByField(col, dir))
	return nil
}

func (s *Session) cmdLimit(args string) error {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return fmt.Errorf("usage: limit <n>")
	}
	s.limit = &n
	return nil
}

func (s *Session) cmdOffset(args string) error {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return fmt.Errorf("usage: offset <n>")
	}
	s.offset = &n
	return nil
}

func (s *Session) cmdDistinct() error {
	s.distinct = true
	return nil
}

func (s *Session) build() (*ast.Select, error) {
	if len(s.list) == 0 {
		return nil, fmt.Errorf("no projection set; use 'select' first")
	}
	b := builder.Select(s.list...)
	if len(s.from) > 0 {
		b = b.From(s.from...)
	}
	for _, j := range s.joins {
		b = b.Join(j.Type, j.Table, j.On)
	}
	if s.where != nil {
		b = b.Where(s.where)
	}
	for _, o := range s.orderBy {
		b = b.OrderBy(o.Column, o.Direction)
	}
	if s.distinct {
		b = b.Distinct()
	}
	if s.limit != nil {
		b = b.Limit(*s.limit)
	}
	if s.offset != nil {
		b = b.Offset(*s.offset)
	}
	return b.Build()
}

func (s *Session) cmdSQL() error {
	sel, err := s.build()
	if err != nil {
		return err
	}
	out, err := render.Render(sel)
	if err != nil {
		return err
	}
	fmt.Println("  " + out)
	return nil
}

func (s *Session) cmdTables() error {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  %s\n", n)
	}
	return nil
}

func (s *Session) cmdReset() error {
	s.list = nil
	s.from = nil
	s.joins = nil
	s.where = nil
	s.orderBy = nil
	s.distinct = false
	s.limit = nil
	s.offset = nil
	fmt.Println("  query reset (registered tables kept)")
	return nil
}

func (s *Session) cmdHelp() {
	fmt.Println(`  table <name> [as <alias>]        register a table
  select <table.col>[ as alias], ...  set the projection
  from <table> [<table> ...]          set the source tables
  join/left join/right join/full join <table> on <table.col> = <table.col>
  where <table.col> is [not] null      (anything else is passed through verbatim)
  order <table.col> [asc|desc]
  limit <n> / offset <n>
  distinct
  sql                                render the statement built so far
  tables                             list registered tables
  reset                              clear the statement, keep registered tables
  exit / quit`)
}
