// Package render walks an *ast.Select with a stack of composed visitors and
// produces its canonical SQL text.
package render

import (
	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/visit"
)

// Render walks sel and returns its rendered SQL text. It recovers any
// *ast.Error panicked during construction or rendering and returns it as an
// error; any other panic is not ours to handle and is re-raised.
func Render(sel *ast.Select) (out string, err error) {
	if sel == nil {
		return "", ast.NewInvariantViolation("Render", "sel must not be nil")
	}

	defer func() {
		if r := recover(); r != nil {
			astErr, ok := r.(*ast.Error)
			if !ok {
				panic(r)
			}
			err = astErr
		}
	}()

	d := visit.NewDispatcher()
	stmt := newStatementRenderer(d)
	d.Push(stmt)
	sel.Walk(d)

	return stmt.RenderedPart(), nil
}
