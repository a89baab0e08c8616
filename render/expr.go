package render

import (
	"github.com/relquery/relquery/ast"
	"github.com/relquery/relquery/visit"
)

// expressionRenderer renders a single expression value, used wherever a
// condition needs exactly one operand (Equals, IsNull, each side of an In).
type expressionRenderer struct {
	d *visit.Dispatcher
	f *visit.FilteredVisitor
	w exprWriter
}

func newExpressionRenderer(d *visit.Dispatcher) *expressionRenderer {
	r := &expressionRenderer{d: d}
	r.w = exprWriter{d: d, inProjection: false}
	r.f = visit.NewFilteredVisitor(d, isExpression, r)
	return r
}

func (r *expressionRenderer) Enter(seg ast.Segment) { r.f.Enter(seg) }
func (r *expressionRenderer) Leave(seg ast.Segment) { r.f.Leave(seg) }

func (r *expressionRenderer) EnterMatched(seg ast.Segment) {
	r.w.reset()
	r.w.enter(seg)
}

func (r *expressionRenderer) LeaveMatched(seg ast.Segment) {
	r.w.leave(seg)
}

func (r *expressionRenderer) EnterNested(seg ast.Segment) { r.w.enter(seg) }
func (r *expressionRenderer) LeaveNested(seg ast.Segment) { r.w.leave(seg) }

// RenderedPart returns the rendered expression text.
func (r *expressionRenderer) RenderedPart() string { return r.w.result() }
