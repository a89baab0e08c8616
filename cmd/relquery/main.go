// Command relquery is an interactive REPL for assembling and rendering a
// single SELECT statement. It never executes anything against a database —
// connection management and execution are out of scope for this library.
//
// Usage:
//
//	go run ./cmd/relquery
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
)

func main() {
	sess := NewSession()

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          prompt(),
		HistoryFile:     historyPath(),
		HistoryLimit:    500,
		AutoComplete:    &replCompleter{sess: sess},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	fmt.Println("relquery REPL — type 'help' for commands, 'exit' to quit")
	fmt.Println()

	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			break
		}
		if err := sess.Execute(line); err != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
	}
	fmt.Println()
}

// prompt returns RELQUERY_PROMPT if set, else the default "relquery> ".
func prompt() string {
	if p := os.Getenv("RELQUERY_PROMPT"); p != "" {
		return p
	}
	return "relquery> "
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".relquery_history")
}
