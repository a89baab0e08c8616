package main

import "strings"

// commandNames returns every command prefix, trimmed, for tab-completion at
// the start of a line.
func commandNames() []string {
	return []string{
		"table", "select", "from", "join", "left join", "right join",
		"full join", "where", "order", "limit", "offset", "distinct",
		"sql", "tables", "reset", "help", "exit",
	}
}

// replCompleter implements readline's AutoCompleter interface, completing
// the command name at the start of a line and registered table names
// afterward.
type replCompleter struct {
	sess *Session
}

func (c *replCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	prefix := string(line[:pos])
	if !strings.Contains(prefix, " ") {
		return completions(commandNames(), prefix)
	}

	names := make([]string, 0, len(c.sess.tables))
	for name := range c.sess.tables {
		names = append(names, name)
	}
	fields := strings.Fields(prefix)
	last := ""
	if len(fields) > 0 && !strings.HasSuffix(prefix, " ") {
		last = fields[len(fields)-1]
	}
	return completions(names, last)
}

func completions(candidates []string, prefix string) (newLine [][]rune, length int) {
	length = len(prefix)
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			newLine = append(newLine, []rune(c[len(prefix):]))
		}
	}
	return newLine, length
}
