package main

import "github.com/relquery/relquery/ast"

// commandEntry maps a REPL prefix to its handler. The first registered
// prefix that matches wins, so a longer prefix must be registered ahead of
// any shorter prefix that is itself a prefix of it.
type commandEntry struct {
	prefix  string
	handler func(args string) error
}

func (s *Session) initCommands() {
	s.commands = []commandEntry{
		{prefix: "left join ", handler: func(a string) error { return s.cmdJoin(a, ast.LeftOuterJoin) }},
		{prefix: "right join ", handler: func(a string) error { return s.cmdJoin(a, ast.RightOuterJoin) }},
		{prefix: "full join ", handler: func(a string) error { return s.cmdJoin(a, ast.FullOuterJoin) }},
		{prefix: "join ", handler: func(a string) error { return s.cmdJoin(a, ast.InnerJoin) }},

		{prefix: "table ", handler: s.cmdTable},
		{prefix: "select ", handler: s.cmdSelect},
		{prefix: "from ", handler: s.cmdFrom},
		{prefix: "where ", handler: s.cmdWhere},
		{prefix: "order ", handler: s.cmdOrder},
		{prefix: "limit ", handler: s.cmdLimit},
		{prefix: "offset ", handler: s.cmdOffset},

		{prefix: "distinct", handler: func(string) error { return s.cmdDistinct() }},
		{prefix: "sql", handler: func(string) error { return s.cmdSQL() }},
		{prefix: "tables", handler: func(string) error { return s.cmdTables() }},
		{prefix: "reset", handler: func(string) error { return s.cmdReset() }},
		{prefix: "help", handler: func(string) error { s.cmdHelp(); return nil }},
	}
}
