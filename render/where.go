package render

import (
	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/visit"
)

// whereRenderer matches the optional Where child of a Select and pushes a
// conditionRenderer to render its predicate. Built on a ForwardingVisitor
// for the same reason as fromRenderer: a FilteredVisitor's Leave has no
// path to relinquish the stack when Where never matches.
type whereRenderer struct {
	d    *visit.Dispatcher
	fv   *visit.ForwardingVisitor
	cond *conditionRenderer
	part string
}

func newWhereRenderer(d *visit.Dispatcher) *whereRenderer {
	r := &whereRenderer{d: d}
	r.fv = visit.NewForwardingVisitor(d, isWhere, r)
	return r
}

func (r *whereRenderer) Enter(seg ast.Segment) { r.fv.Enter(seg) }
func (r *whereRenderer) Leave(seg ast.Segment) { r.fv.Leave(seg) }

func (r *whereRenderer) EnterMatched(seg ast.Segment) {
	r.cond = newConditionRenderer(r.d)
	r.d.Push(r.cond)
}

func (r *whereRenderer) LeaveMatched(seg ast.Segment) {
	r.part = " WHERE " + r.cond.RenderedPart()
}

func (r *whereRenderer) EnterNested(ast.Segment) {}
func (r *whereRenderer) LeaveNested(ast.Segment) {}

// RenderedPart returns "" when Where was absent, else " WHERE ...".
func (r *whereRenderer) RenderedPart() string { return r.part }
