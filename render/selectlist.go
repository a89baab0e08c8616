package render

import (
	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/visit"
)

// selectListRenderer matches the single SelectList child of a Select and
// pushes an exprListRenderer in projection mode to build the comma-joined
// projection text.
type selectListRenderer struct {
	d     *visit.Dispatcher
	f     *visit.FilteredVisitor
	items *exprListRenderer
	part  string
}

func newSelectListRenderer(d *visit.Dispatcher) *selectListRenderer {
	r := &selectListRenderer{d: d}
	r.f = visit.NewFilteredVisitor(d, isSelectList, r)
	return r
}

func (r *selectListRenderer) Enter(seg ast.Segment) { r.f.Enter(seg) }
func (r *selectListRenderer) Leave(seg ast.Segment) { r.f.Leave(seg) }

func (r *selectListRenderer) EnterMatched(seg ast.Segment) {
	r.items = newExprListRenderer(r.d, true)
	r.d.Push(r.items)
}

func (r *selectListRenderer) LeaveMatched(seg ast.Segment) {
	r.part = r.items.RenderedPart()
}

// EnterNested/LeaveNested are unreachable: the SelectList's expression
// children are always delegated to the pushed exprListRenderer.
func (r *selectListRenderer) EnterNested(ast.Segment) {}
func (r *selectListRenderer) LeaveNested(ast.Segment) {}

// RenderedPart returns the rendered projection (no leading/trailing space).
func (r *selectListRenderer) RenderedPart() string { return r.part }
